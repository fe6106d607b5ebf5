package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/lehigh-university-libraries/stackmap/internal/catalog"
	"github.com/lehigh-university-libraries/stackmap/internal/config"
	"github.com/lehigh-university-libraries/stackmap/internal/handlers"
	"github.com/lehigh-university-libraries/stackmap/internal/importer"
	"github.com/lehigh-university-libraries/stackmap/internal/storage"
	"github.com/lehigh-university-libraries/stackmap/internal/vocabulary"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	var port string
	var dumpPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the shelf-location display server",
		Long: `Starts the display endpoints the catalog front end embeds: item JSON
with derived call numbers and stack-map URLs, shelf-location HTML fragments,
and vocabulary display-text lookups.

Items are cached in memory; misses fall through to the configured catalog
(VuFind or FOLIO). A legacy dump can be preloaded with --dump.`,
		Example: `  # Start server on the configured port
  stackmap serve

  # Preload a legacy dump and serve on port 3000
  stackmap serve --port 3000 --dump items.parquet`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Parse()
			if err != nil {
				return err
			}
			if port != "" {
				cfg.Port = port
			}

			vocab, err := vocabulary.Load(cfg.VocabPath)
			if err != nil {
				return fmt.Errorf("failed to load vocabulary table: %w", err)
			}

			store := storage.New()
			client := catalog.NewClient(cfg.CatalogType, cfg.CatalogURL, cfg.CatalogAPIKey)

			if dumpPath != "" {
				if err := preloadDump(cmd.Context(), store, vocab, dumpPath); err != nil {
					return err
				}
			}

			handler := handlers.New(store, vocab, client)

			// Set up routes
			mux := http.NewServeMux()
			mux.HandleFunc("/api/items", handler.HandleItems)
			mux.HandleFunc("/api/items/", handler.HandleItemDetail)
			mux.HandleFunc("/api/display", handler.HandleDisplayVal)
			mux.HandleFunc("/items/", handler.HandleItemLocation)
			mux.HandleFunc("/", handler.HandleStatic)
			mux.HandleFunc("/healthcheck", func(w http.ResponseWriter, r *http.Request) {
				if _, err := w.Write([]byte("OK")); err != nil {
					slog.Error("Unable to write healthcheck", "err", err)
				}
			})

			addr := ":" + cfg.Port
			server := &http.Server{
				Addr:    addr,
				Handler: mux,
			}

			// Start server in goroutine
			serverErr := make(chan error, 1)
			go func() {
				slog.Info("Stackmap display service available", "addr", addr, "url", "http://localhost"+addr)
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					serverErr <- err
				}
			}()

			// Wait for context cancellation (Ctrl+C) or server error
			select {
			case <-cmd.Context().Done():
				slog.Info("Shutting down server...")
				// Give server 5 seconds to shut down gracefully
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := server.Shutdown(shutdownCtx); err != nil {
					slog.Error("Server shutdown failed", "err", err)
					return err
				}
				slog.Info("Server stopped")
				return nil
			case err := <-serverErr:
				return err
			}
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "", "Port to listen on (overrides STACKMAP_PORT)")
	cmd.Flags().StringVar(&dumpPath, "dump", "", "Legacy item dump to preload into the store")

	return cmd
}

func preloadDump(ctx context.Context, store *storage.ItemStore, vocab vocabulary.Table, dumpPath string) error {
	records, err := importer.NewLoader(dumpPath).Load()
	if err != nil {
		return fmt.Errorf("failed to load dump: %w", err)
	}

	validator := vocabulary.NewValidator(vocabulary.TableFetcher{Table: vocab})
	imp := importer.New(store, validator, vocabulary.ItemDefinitions(), importer.Options{})

	report, err := imp.Run(ctx, dumpPath, records)
	if err != nil {
		return fmt.Errorf("failed to preload dump: %w", err)
	}

	slog.Info("Preloaded legacy dump", "imported", report.Imported, "skipped", report.Skipped)
	return nil
}
