package solvestore

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/kapu/chess-melee-go/internal/domain"
	"github.com/kapu/chess-melee-go/internal/obslog"
	"github.com/kapu/chess-melee-go/pkg/meleedto"
)

const ttlRun = 7 * 24 * time.Hour

// Store keeps solve-run records in redis, indexed per scenario.
type Store struct {
	rdb *redis.Client
}

func NewStore(redisURL string) (*Store, error) {
	if strings.TrimSpace(redisURL) == "" {
		return nil, fmt.Errorf("REDIS_URL required for solve store")
	}
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	rdb := redis.NewClient(opts)
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return &Store{rdb: rdb}, nil
}

func (s *Store) Close() error {
	if s == nil || s.rdb == nil {
		return nil
	}
	return s.rdb.Close()
}

func keyRun(id string) string         { return "melee:run:" + strings.TrimSpace(id) }
func keyScenarioIdx(name string) string { return "melee:index:scenario:" + strings.TrimSpace(name) }

// SaveRun stores the run summary plus a sample of solutions and indexes it
// under its scenario. Assigns the run ID when empty; returns the ID.
func (s *Store) SaveRun(ctx context.Context, run *domain.SolveRun, sample []meleedto.SolutionDTO) (string, error) {
	if s == nil || s.rdb == nil {
		return "", fmt.Errorf("solve store not initialized")
	}
	if run == nil {
		return "", fmt.Errorf("nil run")
	}
	if strings.TrimSpace(run.ID) == "" {
		run.ID = uuid.NewString()
	}

	summary := meleedto.RunSummary{
		ID:         run.ID,
		Scenario:   run.Scenario,
		Pieces:     run.Pieces,
		Solutions:  run.Solutions,
		DeadEnds:   run.DeadEnds,
		Nodes:      run.Nodes,
		Exhausted:  run.Exhausted,
		StartedAt:  run.StartedAt,
		DurationMS: run.Duration.Milliseconds(),
		Sample:     sample,
	}
	raw, err := json.Marshal(&summary)
	if err != nil {
		return "", err
	}
	if err := s.rdb.Set(ctx, keyRun(run.ID), raw, ttlRun).Err(); err != nil {
		return "", err
	}
	if err := s.rdb.SAdd(ctx, keyScenarioIdx(run.Scenario), run.ID).Err(); err != nil {
		return "", err
	}
	if err := s.rdb.Expire(ctx, keyScenarioIdx(run.Scenario), ttlRun).Err(); err != nil {
		return "", err
	}
	obslog.L().Info("solve_run_saved",
		zap.String("run_id", run.ID),
		zap.String("scenario", run.Scenario),
		zap.Int("solutions", run.Solutions),
		zap.Int("dead_ends", run.DeadEnds),
	)
	return run.ID, nil
}

// GetRun loads one run summary; nil without error when absent or expired.
func (s *Store) GetRun(ctx context.Context, id string) (*meleedto.RunSummary, error) {
	if s == nil || s.rdb == nil {
		return nil, fmt.Errorf("solve store not initialized")
	}
	raw, err := s.rdb.Get(ctx, keyRun(id)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var summary meleedto.RunSummary
	if err := json.Unmarshal(raw, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// RunsByScenario returns the stored runs for a scenario, most recent first.
// Index entries whose run record has expired are skipped.
func (s *Store) RunsByScenario(ctx context.Context, name string) ([]*meleedto.RunSummary, error) {
	if s == nil || s.rdb == nil {
		return nil, fmt.Errorf("solve store not initialized")
	}
	ids, err := s.rdb.SMembers(ctx, keyScenarioIdx(name)).Result()
	if err != nil {
		return nil, err
	}
	var out []*meleedto.RunSummary
	for _, id := range ids {
		summary, gerr := s.GetRun(ctx, id)
		if gerr == nil && summary != nil {
			out = append(out, summary)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartedAt.After(out[j].StartedAt) })
	return out, nil
}
