package cmd

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/chalopaltai/somity-ledger/internal/api"
	"github.com/chalopaltai/somity-ledger/internal/config"
	"github.com/chalopaltai/somity-ledger/internal/store"
)

// serveCmd represents the serve command.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the society ledger as a JSON HTTP API",
	Long: `Serve the society ledger as a JSON HTTP API.

The database is seeded on first run. Configuration comes from the
environment (SOMITY_PORT, SOMITY_DB_PATH, SOMITY_SEED_FILE) or a .env
file.

Example:
  somity serve
  SOMITY_PORT=9090 somity serve`,
	Run: runServe,
}

func runServe(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(getConfigFile())
	exitOnError(err, "failed to load configuration")

	st, err := openStore(cfg)
	exitOnError(err, "failed to open database")
	defer func() {
		if err := st.Close(); err != nil {
			slog.Error("failed to close store", "error", err)
		}
	}()

	r := api.NewRouter(st, cfg.Income)

	addr := fmt.Sprintf(":%s", cfg.Port)
	slog.Info("starting somity ledger server", "addr", addr, "db_path", cfg.DBPath)

	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
		<-sigint

		slog.Info("shutting down server")
		if err := server.Close(); err != nil {
			slog.Error("server shutdown error", "error", err)
		}
	}()

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}

// openStore opens the ledger database and runs first-run seeding.
func openStore(cfg *config.Config) (*store.Store, error) {
	st, err := store.Open(cfg.DBPath)
	if err != nil {
		return nil, err
	}

	seed := store.Seed{}
	if cfg.SeedFile != "" {
		if seed, err = cfg.LoadSeed(cfg.SeedFile); err != nil {
			_ = st.Close()
			return nil, err
		}
	}
	if err := st.Init(seed); err != nil {
		_ = st.Close()
		return nil, err
	}
	return st, nil
}
