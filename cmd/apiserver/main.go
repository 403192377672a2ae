// Package main runs the standalone classification REST API server.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ramonehamilton/deckscope/internal/api"
	"github.com/ramonehamilton/deckscope/internal/catalog"
	"github.com/ramonehamilton/deckscope/internal/config"
	"github.com/ramonehamilton/deckscope/internal/storage"
	"github.com/ramonehamilton/deckscope/internal/storage/repository"
	"github.com/ramonehamilton/deckscope/internal/version"
)

var (
	port   = flag.Int("port", 0, "API server port (overrides config)")
	dbPath = flag.String("db-path", "", "Catalog store path (default: ~/.deckscope/catalog.db)")
	seed   = flag.Bool("seed", false, "Seed the starter catalog before serving")
)

func main() {
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	level := slog.LevelInfo
	if cfg.App.DebugMode {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	storePath := *dbPath
	if storePath == "" {
		storePath = cfg.Store.Path
	}
	if storePath == "" {
		storePath, err = config.DefaultStorePath()
		if err != nil {
			log.Fatalf("Failed to resolve store path: %v", err)
		}
	}

	fmt.Printf("Deckscope %s - Classification API Server\n", version.GetVersion())
	fmt.Printf("Catalog store: %s\n", storePath)

	storeCfg := storage.DefaultConfig(storePath)
	storeCfg.AutoMigrate = cfg.Store.AutoMigrate
	db, err := storage.Open(storeCfg)
	if err != nil {
		log.Fatalf("Failed to open catalog store: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing catalog store: %v", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repo := repository.NewRuleRepository(db.Conn())
	if *seed {
		if err := catalog.Seed(ctx, repo); err != nil {
			log.Fatalf("Failed to seed catalog: %v", err)
		}
		logger.Info("starter catalog seeded")
	}

	provider, err := catalog.NewProvider(ctx, catalog.NewSQLSource(repo, logger), logger)
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}

	if cfg.Store.Watch {
		debounce, err := cfg.GetWatchDebounce()
		if err != nil {
			log.Fatalf("Invalid watch debounce: %v", err)
		}
		watcher := catalog.NewWatcher(provider, storePath, debounce, logger)
		go func() {
			if err := watcher.Start(ctx); err != nil && ctx.Err() == nil {
				logger.Error("catalog watcher stopped", "error", err)
			}
		}()
	}

	serverCfg := &api.Config{
		Port:              cfg.Server.Port,
		RequestsPerSecond: cfg.Server.RequestsPerSecond,
		BurstSize:         cfg.Server.BurstSize,
	}
	if *port != 0 {
		serverCfg.Port = *port
	}

	server := api.NewServer(serverCfg, provider, logger)
	server.Start()
	fmt.Printf("Listening on port %d\n", serverCfg.Port)

	<-ctx.Done()
	fmt.Println("\nShutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
}
