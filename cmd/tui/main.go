package main

import (
	"context"
	"flag"
	"log"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/rovshanmuradov/hit-calc/internal/config"
	"github.com/rovshanmuradov/hit-calc/internal/logger"
	"github.com/rovshanmuradov/hit-calc/internal/state"
	"github.com/rovshanmuradov/hit-calc/internal/storage"
	"github.com/rovshanmuradov/hit-calc/internal/ui"
	"github.com/rovshanmuradov/hit-calc/internal/ui/app"
)

func main() {
	// Parse command line flags
	configPath := flag.String("config", "", "Path to config file (yaml, json or toml)")
	dbPath := flag.String("db", "", "Path to the state database (overrides config)")
	driver := flag.String("driver", "", "Storage driver: sqlite or memory (overrides config)")
	debug := flag.Bool("debug", false, "Enable debug logging")
	reset := flag.Bool("reset", false, "Wipe saved state before starting")
	flag.Parse()

	// Load configuration
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *dbPath != "" {
		cfg.Storage.Path = *dbPath
	}
	if *driver != "" {
		cfg.Storage.Driver = *driver
	}
	if *debug {
		cfg.Debug = true
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Initialize logger
	appLogger, closeLog, err := logger.New(logger.Config{
		LogFile:    cfg.Log.File,
		MaxSize:    cfg.Log.MaxSizeMB,
		MaxAge:     cfg.Log.MaxAgeDays,
		MaxBackups: cfg.Log.MaxBackups,
		Compress:   cfg.Log.Compress,
		Debug:      cfg.Debug,
		Format:     cfg.Log.Format,
	})
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer closeLog()

	appLogger.Info("Starting H-IT calculator",
		zap.String("driver", cfg.Storage.Driver),
		zap.String("db", cfg.Storage.Path))

	// Create context with signal handling
	rootCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := storage.Open(rootCtx, storage.Options{
		Driver:      cfg.Storage.Driver,
		Path:        cfg.Storage.Path,
		OpenRetries: cfg.Storage.OpenRetries,
	}, appLogger)
	if err != nil {
		// The calculators still work, they just forget on exit
		appLogger.Warn("Storage unavailable, state will not persist", zap.Error(err))
		store = storage.NewMemoryStore()
	}
	defer func() {
		if err := store.Close(); err != nil {
			appLogger.Error("Failed to close storage", zap.Error(err))
		}
	}()

	if *reset {
		if err := resetState(rootCtx, store); err != nil {
			appLogger.Error("Failed to reset state", zap.Error(err))
		} else {
			appLogger.Info("Saved state wiped")
		}
	}

	initial := state.Load(rootCtx, store, uuid.NewString, appLogger)
	container := state.NewContainer(initial, appLogger)
	container.Subscribe(state.NewPersister(rootCtx, store, appLogger))

	rh := ui.NewRecoveryHandler(appLogger, func() (tea.Model, []tea.ProgramOption) {
		// Rebuilt from the container so a restart keeps everything typed so far
		model := ui.NewSafeUIWrapper(app.New(container, appLogger), appLogger)
		return model, []tea.ProgramOption{
			tea.WithAltScreen(),
			tea.WithContext(rootCtx),
		}
	})

	g, gCtx := errgroup.WithContext(rootCtx)

	uiDone := make(chan struct{})
	g.Go(func() error {
		defer close(uiDone)
		return rh.RunWithRecovery(gCtx)
	})

	// Wait for shutdown signal
	g.Go(func() error {
		select {
		case <-gCtx.Done():
			appLogger.Info("Shutting down")
			rh.Stop()
		case <-uiDone:
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		appLogger.Error("TUI application failed", zap.Error(err))
		closeLog()
		log.Fatalf("TUI application failed: %v", err)
	}

	appLogger.Info("Bye")
}

// resetState clears every persisted key and writes the defaults back
func resetState(ctx context.Context, store storage.Store) error {
	if err := store.Clear(ctx); err != nil {
		return err
	}
	return state.SaveAll(ctx, store, state.Default(uuid.NewString))
}
