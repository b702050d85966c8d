package solvestore

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/lib/pq"

	"github.com/kapu/chess-melee-go/internal/domain"
)

// Repository archives run summaries in postgres. Optional: only wired when
// DATABASE_URL is configured.
type Repository struct {
	db *sql.DB
}

func NewRepository(databaseURL string) (*Repository, error) {
	if strings.TrimSpace(databaseURL) == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(8)
	db.SetMaxIdleConns(4)
	db.SetConnMaxLifetime(30 * time.Minute)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}
	return &Repository{db: db}, nil
}

func (r *Repository) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}

// SaveRun upserts one run summary keyed by run_id.
func (r *Repository) SaveRun(ctx context.Context, run *domain.SolveRun) error {
	if r == nil || r.db == nil || run == nil {
		return nil
	}

	q := `INSERT INTO melee_runs (
	    run_id, scenario, pieces, solutions, dead_ends, nodes, exhausted,
	    started_at, finished_at, duration_ms
	  ) VALUES (
	    $1,$2,$3,$4,$5,$6,$7,$8,$9,$10
	  ) ON CONFLICT (run_id) DO UPDATE SET
	    scenario=EXCLUDED.scenario,
	    pieces=EXCLUDED.pieces,
	    solutions=EXCLUDED.solutions,
	    dead_ends=EXCLUDED.dead_ends,
	    nodes=EXCLUDED.nodes,
	    exhausted=EXCLUDED.exhausted,
	    started_at=EXCLUDED.started_at,
	    finished_at=EXCLUDED.finished_at,
	    duration_ms=EXCLUDED.duration_ms`

	_, err := r.db.ExecContext(ctx, q,
		run.ID,
		run.Scenario,
		run.Pieces,
		run.Solutions,
		run.DeadEnds,
		run.Nodes,
		run.Exhausted,
		run.StartedAt,
		run.FinishedAt,
		run.Duration.Milliseconds(),
	)
	if err != nil {
		return fmt.Errorf("save run: %w", err)
	}
	return nil
}
