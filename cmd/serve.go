// cmd/serve.go
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/julienpequegnot/emolex/internal/app"
	"github.com/julienpequegnot/emolex/internal/config"
	"github.com/julienpequegnot/emolex/internal/database"
	"github.com/julienpequegnot/emolex/internal/history"
	"github.com/julienpequegnot/emolex/internal/server"
	"github.com/julienpequegnot/emolex/internal/verse"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Long: `Serves the emotion API (analyze, batch, emotions, journey, progress,
daily quote) until interrupted. Analyses are recorded in history unless
--no-history is set.`,
	RunE: runServe,
}

var (
	serveAddr      string
	serveNoHistory bool
)

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Override listen address (empty = use config)")
	serveCmd.Flags().BoolVar(&serveNoHistory, "no-history", false, "Do not record analyses")
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	cfg, logger, engine, err := loadEngine(ctx)
	if err != nil {
		return err
	}
	if serveAddr != "" {
		cfg.Server.Addr = serveAddr
	}

	opts := server.Options{
		Verses:         verse.Default(),
		Logger:         logger,
		Version:        app.BuildVersion(),
		AllowedOrigins: cfg.Server.AllowedOrigins,
		MaxBatch:       cfg.Server.MaxBatch,
	}

	if !serveNoHistory {
		db, err := database.New(config.DBPath())
		if err != nil {
			return err
		}
		defer db.Close()

		repo := history.NewRepository(db)
		if cfg.History.RetentionDays > 0 {
			n, err := repo.Prune(time.Now().AddDate(0, 0, -cfg.History.RetentionDays))
			if err != nil {
				logger.Warn("history prune failed", "error", err)
			} else if n > 0 {
				logger.Info("history pruned", "removed", n)
			}
		}
		opts.Store = repo
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	go func() {
		select {
		case sig := <-sigChan:
			logger.Info("shutting down", "signal", sig.String())
			cancel()
		case <-ctx.Done():
		}
	}()

	fmt.Printf("Emolex %s listening on %s. Press Ctrl+C to stop.\n", app.BuildVersion(), cfg.Server.Addr)

	if err := server.New(engine, opts).ListenAndServe(ctx, cfg.Server); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	fmt.Println("Server stopped.")
	return nil
}
