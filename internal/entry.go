// Package internal provides the main application initialization and runtime logic.
package internal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/starford/sitemarks/internal/api"
	"github.com/starford/sitemarks/internal/bookmarks"
	"github.com/starford/sitemarks/internal/mcpserver"
	"github.com/starford/sitemarks/internal/sse"
	"github.com/starford/sitemarks/internal/storage"
	"github.com/starford/sitemarks/internal/web"
)

func (a *application) setup() (*slog.Logger, error) {
	if a.config == nil {
		return nil, fmt.Errorf("config is required")
	}

	// Initialize structured JSON logger.
	logger := slog.New(slog.NewJSONHandler(a.logOut, &slog.HandlerOptions{
		Level: a.config.App.LogLevel,
	}))
	slog.SetDefault(logger)
	return logger, nil
}

// openController opens the configured store and loads the list from it.
// The returned store must be closed by the caller.
func (a *application) openController(logger *slog.Logger, extra ...bookmarks.Option) (*bookmarks.Controller, storage.Provider, error) {
	cfg := a.config.Storage

	store, err := storage.Open(cfg.Driver, cfg.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("init storage: %w", err)
	}

	opts := append([]bookmarks.Option{bookmarks.WithLogger(logger)}, extra...)
	ctl, err := bookmarks.NewController(bookmarks.NewSlot(store, cfg.Key), opts...)
	if err != nil {
		_ = store.Close()
		return nil, nil, fmt.Errorf("load bookmarks: %w", err)
	}
	return ctl, store, nil
}

// NewHandler builds the root router: health checks, the JSON API under
// /api and the page routes. broker may be nil.
func NewHandler(ctl *bookmarks.Controller, broker *sse.Broker) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/health/live", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	r.Get("/health/ready", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	var events http.Handler
	if broker != nil {
		events = broker
	}
	r.Mount("/api", api.NewRouter(ctl, events))
	r.Mount("/", web.NewRouter(ctl))

	return r
}

// Run starts the HTTP server with the given options.
func Run(ctx context.Context, opts ...Option) error {
	app := newApplication(opts...)
	logger, err := app.setup()
	if err != nil {
		return err
	}
	cfg := app.config

	logger.Info("Configuration loaded",
		slog.String("http_address", cfg.App.HTTP.Address()),
		slog.String("storage_driver", cfg.Storage.Driver),
		slog.String("storage_path", cfg.Storage.Path),
		slog.String("storage_key", cfg.Storage.Key),
		slog.String("log_level", cfg.App.LogLevel.String()))

	broker := sse.NewBroker(cfg.Events.Throttle)
	defer broker.Close()

	ctl, store, err := app.openController(logger, bookmarks.WithListener(func(ch bookmarks.Change) {
		broker.PublishChange(ch.Kind, ch.Index, ch.Bookmark.SiteName)
	}))
	if err != nil {
		return err
	}
	defer store.Close()

	logger.Info("Bookmarks loaded", slog.Int("count", ctl.Len()))

	httpServer := &http.Server{
		Addr:              cfg.App.HTTP.Address(),
		Handler:           NewHandler(ctl, broker),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gCtx := errgroup.WithContext(ctx)

	// Start HTTP server.
	g.Go(func() error {
		logger.Info("Starting HTTP server", slog.String("address", cfg.App.HTTP.Address()))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	})

	// Handle shutdown signals.
	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(quit)

		select {
		case sig := <-quit:
			logger.Info("Received shutdown signal", slog.String("signal", sig.String()))
		case <-gCtx.Done():
			logger.Info("Context cancelled, initiating shutdown")
		}

		logger.Info("Shutting down server...", slog.Int("sse_clients", broker.ClientCount()))

		// Open SSE streams would hold Shutdown until the timeout.
		broker.Close()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("HTTP server shutdown error", slog.String("error", err.Error()))
		}

		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("Application error", slog.String("error", err.Error()))
		return err
	}

	logger.Info("Server stopped successfully")
	return nil
}

// RunMCP serves the bookmark tools over stdio until the client disconnects.
func RunMCP(_ context.Context, opts ...Option) error {
	app := newApplication(opts...)
	logger, err := app.setup()
	if err != nil {
		return err
	}

	ctl, store, err := app.openController(logger)
	if err != nil {
		return err
	}
	defer store.Close()

	logger.Info("MCP server starting", slog.Int("bookmarks", ctl.Len()))
	if err := mcpserver.New(ctl, app.version).ServeStdio(); err != nil {
		return fmt.Errorf("mcp server: %w", err)
	}
	return nil
}

// RunCommand opens the configured list, passes it to fn and closes the
// store afterwards. It backs the one-shot CLI commands.
func RunCommand(opts []Option, fn func(*bookmarks.Controller) error) error {
	app := newApplication(opts...)
	logger, err := app.setup()
	if err != nil {
		return err
	}

	ctl, store, err := app.openController(logger)
	if err != nil {
		return err
	}
	defer store.Close()

	return fn(ctl)
}
