package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/gamehub-backend/internal/entity"
)

const matchIndexKey = "matches"

var ErrMatchNotFound = errors.New("match not found")

type MatchRepository interface {
	Save(ctx context.Context, match *entity.MatchResult) error
	GetByID(ctx context.Context, id string) (*entity.MatchResult, error)
	ListRecent(ctx context.Context, limit int64) ([]*entity.MatchResult, error)
	Prune(ctx context.Context, keep int64) (int64, error)
}

type dbMatch struct {
	client *redis.Client
	ttl    time.Duration
}

// NewMatchRepository stores finished matches as JSON under match:<id>, indexed by finish time.
// A zero ttl keeps entries until they are pruned.
func NewMatchRepository(client *redis.Client, ttl time.Duration) MatchRepository {
	return &dbMatch{
		client: client,
		ttl:    ttl,
	}
}

func matchKey(id string) string {
	return "match:" + id
}

func (that *dbMatch) Save(ctx context.Context, match *entity.MatchResult) error {
	matchJSON, err := json.Marshal(match)
	if err != nil {
		return fmt.Errorf("could not marshal match: %w", err)
	}

	_, err = that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, matchKey(match.ID), matchJSON, that.ttl)
		pipe.ZAdd(ctx, matchIndexKey, redis.Z{
			Score:  float64(match.FinishedAt.UnixMilli()),
			Member: match.ID,
		})
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save match: %w", err)
	}

	return nil
}

func (that *dbMatch) GetByID(ctx context.Context, id string) (*entity.MatchResult, error) {
	response, err := that.client.Get(ctx, matchKey(id)).Result()

	if errors.Is(err, redis.Nil) {
		return nil, ErrMatchNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get match by id: %w", err)
	}

	var match entity.MatchResult
	if err = json.Unmarshal([]byte(response), &match); err != nil {
		return nil, fmt.Errorf("failed to unmarshal match: %w", err)
	}

	return &match, nil
}

// ListRecent returns up to limit matches, newest first. Expired entries are skipped.
func (that *dbMatch) ListRecent(ctx context.Context, limit int64) ([]*entity.MatchResult, error) {
	matches := []*entity.MatchResult{}

	if limit <= 0 {
		return matches, nil
	}

	ids, err := that.client.ZRevRange(ctx, matchIndexKey, 0, limit-1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read match index: %w", err)
	}

	if len(ids) == 0 {
		return matches, nil
	}

	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, matchKey(id))
	}

	values, err := that.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get matches: %w", err)
	}

	for _, value := range values {
		raw, ok := value.(string)
		if !ok {
			continue
		}

		var match entity.MatchResult
		if err = json.Unmarshal([]byte(raw), &match); err != nil {
			return nil, fmt.Errorf("failed to unmarshal match: %w", err)
		}

		matches = append(matches, &match)
	}

	return matches, nil
}

// Prune drops everything but the newest keep matches and returns how many were removed.
func (that *dbMatch) Prune(ctx context.Context, keep int64) (int64, error) {
	if keep < 0 {
		keep = 0
	}

	stale, err := that.client.ZRange(ctx, matchIndexKey, 0, -keep-1).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to read match index: %w", err)
	}

	if len(stale) == 0 {
		return 0, nil
	}

	keys := make([]string, 0, len(stale))
	members := make([]any, 0, len(stale))
	for _, id := range stale {
		keys = append(keys, matchKey(id))
		members = append(members, id)
	}

	_, err = that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, keys...)
		pipe.ZRem(ctx, matchIndexKey, members...)
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to prune matches: %w", err)
	}

	return int64(len(stale)), nil
}
