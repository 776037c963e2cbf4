package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/sitegen-ai/sitegen/internal/db"
	"github.com/sitegen-ai/sitegen/internal/server"
	"github.com/sitegen-ai/sitegen/internal/usage"
	"github.com/sitegen-ai/sitegen/internal/webui"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the website generator web server",
	Long: `Starts the sitegen HTTP server: the browser UI with a sandboxed live
preview, the generation API, and the usage log endpoints.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		if servePort > 0 {
			cfg.Server.Port = servePort
		}

		svc, err := createServiceFromConfig(cfg)
		if err != nil {
			return err
		}

		// Open the usage database. Generation still works without it.
		var usageStore *usage.Store
		if !cfg.Server.DisableLog {
			dbPath := filepath.Join(cfg.Server.DataDir, "sitegen.db")
			database, err := db.Open(dbPath)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Warning: could not open usage database at %s: %v\n", dbPath, err)
				fmt.Fprintln(os.Stderr, "Continuing without usage logging.")
			} else {
				defer database.Close()
				usageStore = usage.NewStore(database)
			}
		}

		srv := server.New(server.Config{
			Port:     cfg.Server.Port,
			AllowAll: cfg.Server.AllowAllOrigins,
		}, svc, usageStore)

		r := srv.Router()
		if usageStore != nil {
			usage.RegisterRoutes(r, usageStore)
		}
		webui.RegisterRoutes(r)

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			fmt.Fprintln(os.Stderr, "\nShutting down server...")
			srv.Shutdown(context.Background())
		}()

		fmt.Fprintf(os.Stderr, "sitegen v%s starting on port %d\n", Version, cfg.Server.Port)
		fmt.Fprintf(os.Stderr, "  Provider: %s\n", cfg.Provider)
		fmt.Fprintf(os.Stderr, "  Model: %s\n", cfg.Model)
		fmt.Fprintf(os.Stderr, "  Open http://localhost:%d in your browser\n", cfg.Server.Port)

		return srv.Start()
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "port to listen on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}
