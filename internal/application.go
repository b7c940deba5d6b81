package application

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"go.uber.org/zap"

	"github.com/rocketscienceinc/gamehub-backend/internal/config"
	"github.com/rocketscienceinc/gamehub-backend/internal/entity"
	"github.com/rocketscienceinc/gamehub-backend/internal/repository"
	"github.com/rocketscienceinc/gamehub-backend/internal/repository/storage"
	"github.com/rocketscienceinc/gamehub-backend/internal/scheduler"
	"github.com/rocketscienceinc/gamehub-backend/internal/service"
	"github.com/rocketscienceinc/gamehub-backend/internal/transport/rest"
	"github.com/rocketscienceinc/gamehub-backend/internal/transport/websocket"
	"github.com/rocketscienceinc/gamehub-backend/internal/usecase"
)

type archive interface {
	Record(match *entity.MatchResult)
	Recent(ctx context.Context, limit int64) ([]*entity.MatchResult, error)
}

// RunApp - runs the application until a signal arrives or a server fails.
func RunApp(logger *zap.Logger, conf *config.Config) error {
	log := logger.With(zap.String("component", "app"))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	var (
		matches archive = service.NopArchive{}
		wg      sync.WaitGroup
		errCh   = make(chan error, 4)
	)

	run := func(name string, fn func(ctx context.Context) error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := fn(ctx); err != nil {
				log.Error("component failed", zap.String("name", name), zap.Error(err))
				errCh <- fmt.Errorf("%s: %w", name, err)
			}
		}()
	}

	if conf.Redis.Enabled {
		redisStorage, err := storage.NewRedisStorage(ctx, conf.Redis.GetRedisAddr(), conf.Redis.DB)
		if err != nil {
			return fmt.Errorf("could not connect to redis storage: %w", err)
		}

		defer func() {
			if err := redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", zap.Error(err))
			}
		}()

		matchRepo := repository.NewMatchRepository(redisStorage.Connection, conf.Archive.TTL)
		archiveService := service.NewArchiveService(logger, matchRepo, conf.Archive.Buffer,
			conf.Archive.MaxEntries, conf.Archive.PruneSchedule)

		matches = archiveService
		run("archive", archiveService.Run)

		log.Info("match archive enabled", zap.String("redis", conf.Redis.GetRedisAddr()))
	}

	registry := usecase.NewRegistry(logger, repository.NewStore(), matches)
	loop := scheduler.New(logger, registry, conf.Game.TickRate, conf.Game.EventQueue)
	directory := usecase.NewRoomDirectory(loop, registry)

	run("scheduler", loop.Run)

	wsServer := websocket.New(logger, loop)
	run("websocket", func(ctx context.Context) error {
		log.Info("starting websocket server", zap.String("port", conf.SocketPort))
		return wsServer.Start(ctx, conf.SocketPort)
	})

	router := rest.NewRouter(logger, directory, matches, loop)
	run("http", func(ctx context.Context) error {
		log.Info("starting http server", zap.String("port", conf.HTTPPort))
		return rest.Start(ctx, logger, conf.HTTPPort, router)
	})

	var runErr error

	select {
	case sig := <-sigs:
		log.Info("received signal, shutting down", zap.String("signal", sig.String()))
	case runErr = <-errCh:
	}

	cancel()
	wg.Wait()

	return runErr
}
