package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"monopoly_backend/internal/app/di"
	"monopoly_backend/internal/app/router"
	catalogadapters "monopoly_backend/internal/feature/catalog/adapters"
	cataloghandler "monopoly_backend/internal/feature/catalog/transport/handler"
	catalogusecase "monopoly_backend/internal/feature/catalog/usecase"
	gamehandler "monopoly_backend/internal/feature/game/transport/handler"
	gameusecase "monopoly_backend/internal/feature/game/usecase"
	"monopoly_backend/internal/platform/config"
	platformhandler "monopoly_backend/internal/platform/http/handler"
	"monopoly_backend/internal/platform/portfile"
)

const readHeaderTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// .envがあれば読み込む
	config.LoadDotEnv(".env")
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	slog.SetDefault(cfg.NewLogger())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 参照データ
	cat, err := catalogadapters.LoadCatalog(cfg.PropertiesFile, cfg.CommercialFile)
	if err != nil {
		return err
	}
	catalogUC := catalogusecase.NewCatalogUsecase(cat)
	areas, types := catalogUC.Counts()
	slog.Info("catalog loaded", "areas", areas, "commercial_types", types)

	// 状態ミラー
	backends, err := di.OpenBackends(ctx, cfg)
	if err != nil {
		return err
	}
	defer backends.Close()
	repo := di.NewStateRepository(backends.Redis, backends.DB, cfg.Redis.Prefix, cfg.StateCacheTTL)

	// Usecase
	gameUC := gameusecase.NewGameUsecase(cat, repo)
	if err := gameUC.Restore(ctx); err != nil {
		return err
	}
	slog.Info("game state restored", "players", len(gameUC.Players(ctx)))

	// Handler
	catalogH := cataloghandler.NewCatalogHandler(catalogUC)
	gameH := gamehandler.NewGameHandler(gameUC, cfg.DefaultStartingBalance)

	// ルータ生成
	r := router.NewRouter(platformhandler.NewHealth(catalogUC), catalogH, gameH, cfg.CORSOrigins)

	ln, err := net.Listen("tcp", cfg.HTTPAddr)
	if err != nil {
		return err
	}
	port := ln.Addr().(*net.TCPAddr).Port

	if cfg.PortFile != "" {
		if err := portfile.Write(cfg.PortFile, port); err != nil {
			_ = ln.Close()
			return err
		}
		defer func() {
			if err := portfile.Remove(cfg.PortFile); err != nil {
				slog.Error("failed to remove port file", "path", cfg.PortFile, "error", err)
			}
		}()
	}

	srv := &http.Server{Handler: r, ReadHeaderTimeout: readHeaderTimeout}
	errCh := make(chan error, 1)
	go func() {
		slog.Info("server listening", "addr", ln.Addr().String(), "port", port, "state_backend", cfg.StateBackend)
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return nil
}
