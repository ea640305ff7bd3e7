// Package server serves the blog listing and post pages over HTTP.
package server

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sandeshsubedi9/Sandeshblog/internal/content"
	"github.com/sandeshsubedi9/Sandeshblog/internal/logging"
	"github.com/sandeshsubedi9/Sandeshblog/internal/markdown"
	"github.com/sandeshsubedi9/Sandeshblog/internal/model"
	"github.com/sandeshsubedi9/Sandeshblog/internal/pipeline"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// TOCLevel is the heading level listed in the "On this page" sidebar.
const TOCLevel = 2

// Server is a thin HTTP front end over a Loader and a PostRenderer.
type Server struct {
	loader   *content.Loader
	renderer content.PostRenderer
	lang     string
	log      logging.Logger
	engine   *gin.Engine
}

type Option func(*Server)

func WithLogger(log logging.Logger) Option {
	return func(s *Server) { s.log = logging.OrNoOp(log) }
}

// WithLang sets the lang attribute of the generated pages.
func WithLang(lang string) Option {
	return func(s *Server) {
		if lang != "" {
			s.lang = lang
		}
	}
}

func New(loader *content.Loader, renderer content.PostRenderer, opts ...Option) (*Server, error) {
	s := &Server{
		loader:   loader,
		renderer: renderer,
		lang:     "en",
		log:      logging.NoOp(),
	}
	for _, opt := range opts {
		opt(s)
	}

	tmpl, err := template.New("").Funcs(template.FuncMap{
		"formatDate": markdown.FormatDate,
	}).ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}

	e := gin.New()
	e.Use(gin.Recovery(), s.requestLog())
	e.SetHTMLTemplate(tmpl)

	e.GET("/", func(c *gin.Context) { c.Redirect(http.StatusFound, "/blog") })
	e.GET("/blog", s.listPosts)
	e.GET("/blogpost/:slug", s.showPost)

	api := e.Group("/api")
	api.GET("/posts", s.listPostsJSON)
	api.GET("/posts/:slug", s.showPostJSON)

	e.NoRoute(func(c *gin.Context) {
		s.htmlError(c, http.StatusNotFound, "page not found")
	})

	s.engine = e
	return s, nil
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves on addr until ctx is cancelled.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serving %s: %w", addr, err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.log.Info("shutting down")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutting down: %w", err)
		}
		return nil
	}
}

func (s *Server) requestLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}

func (s *Server) listPosts(c *gin.Context) {
	posts, err := s.loader.Load()
	if err != nil {
		s.fail(c, err)
		return
	}
	c.HTML(http.StatusOK, "list.tmpl", gin.H{
		"Lang":  s.lang,
		"Posts": posts,
	})
}

func (s *Server) showPost(c *gin.Context) {
	slug := c.Param("slug")
	post, err := s.renderer.Render(slug)
	if err != nil {
		s.fail(c, err)
		return
	}
	frag, err := pipeline.Fragment(post.HTML)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.HTML(http.StatusOK, "post.tmpl", gin.H{
		"Lang":    s.lang,
		"Post":    post.Post,
		"Content": template.HTML(frag),
		"TOC":     post.TOC(TOCLevel),
	})
}

func (s *Server) listPostsJSON(c *gin.Context) {
	posts, err := s.loader.Load()
	if err != nil {
		s.failJSON(c, err)
		return
	}
	if posts == nil {
		posts = []model.Post{}
	}
	c.JSON(http.StatusOK, posts)
}

func (s *Server) showPostJSON(c *gin.Context) {
	post, err := s.renderer.Render(c.Param("slug"))
	if err != nil {
		s.failJSON(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

// statusFor maps content errors to HTTP status codes.
func statusFor(err error) int {
	if content.IsNotFound(err) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

func (s *Server) fail(c *gin.Context, err error) {
	status := statusFor(err)
	s.logFailure(c, status, err)
	msg := "something went wrong while loading this page"
	if status == http.StatusNotFound {
		msg = "post not found"
	}
	s.htmlError(c, status, msg)
}

func (s *Server) failJSON(c *gin.Context, err error) {
	status := statusFor(err)
	s.logFailure(c, status, err)
	c.AbortWithStatusJSON(status, gin.H{"error": http.StatusText(status)})
}

func (s *Server) logFailure(c *gin.Context, status int, err error) {
	if status == http.StatusNotFound {
		s.log.Debug("not found", "path", c.Request.URL.Path, "error", err)
		return
	}
	s.log.Error("request failed", "path", c.Request.URL.Path, "error", err)
}

func (s *Server) htmlError(c *gin.Context, status int, msg string) {
	c.HTML(status, "error.tmpl", gin.H{
		"Lang":    s.lang,
		"Status":  fmt.Sprintf("%d %s", status, http.StatusText(status)),
		"Message": msg,
	})
	c.Abort()
}
