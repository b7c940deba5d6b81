package rest

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rocketscienceinc/gamehub-backend/internal/entity"
	"github.com/rocketscienceinc/gamehub-backend/internal/protocol"
	"github.com/rocketscienceinc/gamehub-backend/internal/scheduler"
)

const (
	defaultMatchLimit = 20
	maxMatchLimit     = 100
)

type roomDirectory interface {
	Rooms(ctx context.Context) ([]protocol.RoomSummary, error)
	SessionCount(ctx context.Context) (int, error)
}

type matchArchive interface {
	Recent(ctx context.Context, limit int64) ([]*entity.MatchResult, error)
}

type metricsSource interface {
	Metrics() scheduler.Snapshot
}

type handlers struct {
	logger    *zap.Logger
	directory roomDirectory
	archive   matchArchive
	metrics   metricsSource
}

func (that *handlers) ping(c *gin.Context) {
	c.String(http.StatusOK, "pong")
}

func (that *handlers) rooms(c *gin.Context) {
	rooms, err := that.directory.Rooms(c.Request.Context())
	if err != nil {
		that.logger.Error("failed to list rooms", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "rooms are unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"rooms": rooms})
}

func (that *handlers) matches(c *gin.Context) {
	limit := int64(defaultMatchLimit)

	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = min(parsed, maxMatchLimit)
	}

	matches, err := that.archive.Recent(c.Request.Context(), limit)
	if err != nil {
		that.logger.Error("failed to list matches", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "matches are unavailable"})
		return
	}

	if matches == nil {
		matches = []*entity.MatchResult{}
	}

	c.JSON(http.StatusOK, gin.H{"matches": matches})
}

func (that *handlers) stats(c *gin.Context) {
	sessions, err := that.directory.SessionCount(c.Request.Context())
	if err != nil {
		that.logger.Error("failed to count sessions", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "metrics are unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"sessions":  sessions,
		"scheduler": that.metrics.Metrics(),
	})
}
