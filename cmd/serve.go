package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/sandeshsubedi9/Sandeshblog/internal/content"
	"github.com/sandeshsubedi9/Sandeshblog/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the blog over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, _ := cmd.Flags().GetString("addr")
		if addr == "" {
			addr = cfg.Server.Addr
		}

		cached := content.NewCachedRenderer(renderer, logs.GetLogger("cache"))
		srv, err := server.New(loader, cached,
			server.WithLang(cfg.DocumentLang),
			server.WithLogger(logs.GetLogger("server")),
		)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return srv.Run(ctx, addr)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address, overrides server.addr")
	rootCmd.AddCommand(serveCmd)
}
