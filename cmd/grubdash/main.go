package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/deppfellow/grubdash/internal/config"
	"github.com/deppfellow/grubdash/internal/handler"
	"github.com/deppfellow/grubdash/internal/logger"
	"github.com/deppfellow/grubdash/internal/repository"
	"github.com/deppfellow/grubdash/internal/router"
	"github.com/deppfellow/grubdash/internal/server"
	"github.com/deppfellow/grubdash/internal/service"
)

const shutdownTimeout = 30 * time.Second

func main() {
	bootLogger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := config.LoadConfig()
	if err != nil {
		bootLogger.Fatal().Err(err).Msg("failed to load config")
	}

	loggerService, err := logger.NewLoggerService(cfg.Observability)
	if err != nil {
		bootLogger.Fatal().Err(err).Msg("failed to initialize New Relic")
	}

	log := logger.NewLoggerWithService(cfg.Observability, loggerService)

	srv, err := server.New(cfg, &log, loggerService)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize server")
	}

	repos, err := repository.NewRepositories(srv)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize repositories")
	}

	services := service.NewServices(srv, repos)
	handlers := handler.NewHandlers(srv, services, repos)

	srv.SetupHTTPServer(router.NewRouter(srv, handlers))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Fatal().Err(err).Msg("server stopped")
		}
		return
	case <-ctx.Done():
		log.Info().Msg("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
		return
	}

	log.Info().Msg("server exited")
}
