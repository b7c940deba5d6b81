package service

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/rocketscienceinc/gamehub-backend/internal/entity"
)

const saveTimeout = 5 * time.Second

type matchRepoDep interface {
	Save(ctx context.Context, match *entity.MatchResult) error
	ListRecent(ctx context.Context, limit int64) ([]*entity.MatchResult, error)
	Prune(ctx context.Context, keep int64) (int64, error)
}

// ArchiveService writes finished matches to the archive off the game loop. Record never
// blocks; when the queue is full the result is dropped and logged.
type ArchiveService struct {
	logger   *zap.Logger
	repo     matchRepoDep
	queue    chan *entity.MatchResult
	keep     int64
	schedule string
}

func NewArchiveService(logger *zap.Logger, repo matchRepoDep, buffer int, keep int64, schedule string) *ArchiveService {
	return &ArchiveService{
		logger:   logger.With(zap.String("component", "archive")),
		repo:     repo,
		queue:    make(chan *entity.MatchResult, buffer),
		keep:     keep,
		schedule: schedule,
	}
}

func (that *ArchiveService) Record(match *entity.MatchResult) {
	select {
	case that.queue <- match:
	default:
		that.logger.Warn("archive queue is full, dropping match", zap.String("match", match.ID))
	}
}

// Run saves queued matches and prunes on schedule until ctx is done. Matches still queued
// at shutdown are flushed before returning.
func (that *ArchiveService) Run(ctx context.Context) error {
	log := that.logger.With(zap.String("method", "Run"))

	scheduler := cron.New()
	if that.schedule != "" {
		if _, err := scheduler.AddFunc(that.schedule, that.prune); err != nil {
			return fmt.Errorf("failed to schedule archive pruning: %w", err)
		}
	}
	scheduler.Start()
	defer func() {
		<-scheduler.Stop().Done()
	}()

	for {
		select {
		case match := <-that.queue:
			that.save(match)
		case <-ctx.Done():
			for {
				select {
				case match := <-that.queue:
					that.save(match)
				default:
					log.Info("archive stopped")
					return nil
				}
			}
		}
	}
}

func (that *ArchiveService) save(match *entity.MatchResult) {
	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()

	if err := that.repo.Save(ctx, match); err != nil {
		that.logger.Error("failed to archive match", zap.String("match", match.ID), zap.Error(err))
		return
	}

	that.logger.Debug("match archived", zap.String("match", match.ID), zap.String("game", string(match.GameType)))
}

func (that *ArchiveService) prune() {
	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()

	removed, err := that.Prune(ctx)
	if err != nil {
		that.logger.Error("failed to prune archive", zap.Error(err))
		return
	}

	that.logger.Info("archive pruned", zap.Int64("removed", removed))
}

func (that *ArchiveService) Prune(ctx context.Context) (int64, error) {
	removed, err := that.repo.Prune(ctx, that.keep)
	if err != nil {
		return 0, fmt.Errorf("failed to prune matches: %w", err)
	}
	return removed, nil
}

func (that *ArchiveService) Recent(ctx context.Context, limit int64) ([]*entity.MatchResult, error) {
	matches, err := that.repo.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent matches: %w", err)
	}
	return matches, nil
}

// NopArchive is used when no archive store is configured.
type NopArchive struct{}

func (NopArchive) Record(*entity.MatchResult) {}

func (NopArchive) Recent(context.Context, int64) ([]*entity.MatchResult, error) {
	return []*entity.MatchResult{}, nil
}
