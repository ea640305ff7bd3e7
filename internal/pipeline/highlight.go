package pipeline

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// CopyVisibility controls when the copy button shows.
type CopyVisibility string

const (
	CopyAlways CopyVisibility = "always"
	CopyHover  CopyVisibility = "hover"
)

const plaintext = "plaintext"

// HighlightStage syntax-highlights every <pre><code> block and attaches a
// copy-to-clipboard button to it.
type HighlightStage struct {
	Theme            string
	Visibility       CopyVisibility
	FeedbackDuration time.Duration
}

func (HighlightStage) Name() string { return "highlight" }

func (s HighlightStage) Apply(root *html.Node) error {
	blocks := collect(root, func(n *html.Node) bool {
		return n.DataAtom == atom.Pre && codeChild(n) != nil
	})
	if len(blocks) == 0 {
		return nil
	}

	// unknown names fall back to chroma's default; report what was used
	style := styles.Get(s.Theme)
	theme := style.Name
	formatter := chromahtml.New(
		chromahtml.WithClasses(false),
		chromahtml.PreventSurroundingPre(true),
		chromahtml.TabWidth(4),
	)

	for _, pre := range blocks {
		if err := s.highlight(pre, codeChild(pre), formatter, style, theme); err != nil {
			return err
		}
	}

	if head := findFirst(root, atom.Head); head != nil {
		addCopyStyle(head)
	}
	return nil
}

func (s HighlightStage) highlight(pre, code *html.Node, formatter *chromahtml.Formatter, style *chroma.Style, theme string) error {
	lang := codeLanguage(code)
	src := textContent(code)

	lexer := lexers.Get(lang)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	it, err := chroma.Coalesce(lexer).Tokenise(nil, src)
	if err != nil {
		return fmt.Errorf("tokenising %s block: %w", lang, err)
	}
	var sb strings.Builder
	if err := formatter.Format(&sb, style, it); err != nil {
		return fmt.Errorf("formatting %s block: %w", lang, err)
	}
	nodes, err := html.ParseFragment(strings.NewReader(sb.String()), code)
	if err != nil {
		return fmt.Errorf("parsing highlighted %s block: %w", lang, err)
	}

	removeChildren(code)
	for _, n := range nodes {
		code.AppendChild(n)
	}
	removeAttr(code, "class")
	setAttr(code, "data-language", lang)
	setAttr(code, "data-theme", theme)
	setAttr(code, "style", "display: grid;")

	setAttr(pre, "tabindex", "0")
	setAttr(pre, "data-language", lang)
	setAttr(pre, "data-theme", theme)
	if css := preStyle(style); css != "" {
		setAttr(pre, "style", css)
	}
	pre.AppendChild(s.copyButton(src))

	parent := pre.Parent
	figure := element(atom.Figure, "data-code-figure", "")
	parent.InsertBefore(figure, pre)
	parent.RemoveChild(pre)
	figure.AppendChild(pre)
	return nil
}

func (s HighlightStage) copyButton(src string) *html.Node {
	visibility := s.Visibility
	if visibility == "" {
		visibility = CopyAlways
	}
	feedback := s.FeedbackDuration
	if feedback <= 0 {
		feedback = 3 * time.Second
	}
	ms := strconv.FormatInt(feedback.Milliseconds(), 10)

	btn := element(atom.Button,
		"type", "button",
		"class", "copy-code copy-code-"+string(visibility),
		"data-visibility", string(visibility),
		"data-feedback-duration", ms,
		"data-code", src,
		"title", "Copy code",
		"aria-label", "Copy code",
		"onclick", "navigator.clipboard.writeText(this.dataset.code); "+
			"this.classList.add('copied'); "+
			"window.setTimeout(() => this.classList.remove('copied'), "+ms+")",
	)
	btn.AppendChild(element(atom.Span, "class", "ready"))
	btn.AppendChild(element(atom.Span, "class", "success"))
	return btn
}

// codeChild returns the single <code> element inside pre, ignoring whitespace.
func codeChild(pre *html.Node) *html.Node {
	var code *html.Node
	for c := pre.FirstChild; c != nil; c = c.NextSibling {
		switch {
		case c.Type == html.ElementNode && c.DataAtom == atom.Code && code == nil:
			code = c
		case c.Type == html.TextNode && strings.TrimSpace(c.Data) == "":
		default:
			return nil
		}
	}
	return code
}

func codeLanguage(code *html.Node) string {
	class, _ := getAttr(code, "class")
	for _, c := range strings.Fields(class) {
		if lang, ok := strings.CutPrefix(c, "language-"); ok && lang != "" {
			return strings.ToLower(lang)
		}
	}
	return plaintext
}

func preStyle(style *chroma.Style) string {
	entry := style.Get(chroma.Background)
	var parts []string
	if entry.Background.IsSet() {
		parts = append(parts, "background-color:"+entry.Background.String())
	}
	if entry.Colour.IsSet() {
		parts = append(parts, "color:"+entry.Colour.String())
	}
	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, ";") + ";"
}

const copyButtonCSS = `figure[data-code-figure]{position:relative;margin:0}
figure[data-code-figure] pre{overflow-x:auto;padding:1rem;border-radius:.5rem}
.copy-code{position:absolute;top:.5rem;right:.5rem;padding:.25rem .5rem;border:1px solid rgba(255,255,255,.2);border-radius:.375rem;background:rgba(0,0,0,.4);color:#fff;font-size:.75rem;cursor:pointer}
.copy-code-hover{opacity:0;transition:opacity .15s}
figure[data-code-figure]:hover .copy-code-hover,.copy-code-hover:focus{opacity:1}
.copy-code .ready::before{content:"Copy"}
.copy-code .success{display:none}
.copy-code .success::before{content:"Copied!"}
.copy-code.copied .ready{display:none}
.copy-code.copied .success{display:inline}
`

// addCopyStyle adds the copy button stylesheet to head once.
func addCopyStyle(head *html.Node) {
	for c := head.FirstChild; c != nil; c = c.NextSibling {
		if c.DataAtom == atom.Style {
			if _, ok := getAttr(c, "data-copy-code"); ok {
				return
			}
		}
	}
	st := element(atom.Style, "data-copy-code", "")
	st.AppendChild(&html.Node{Type: html.TextNode, Data: copyButtonCSS})
	head.AppendChild(st)
}
