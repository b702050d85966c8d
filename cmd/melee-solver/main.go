package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kapu/chess-melee-go/internal/adapter/meleepresenter"
	appcfg "github.com/kapu/chess-melee-go/internal/config"
	"github.com/kapu/chess-melee-go/internal/domain"
	"github.com/kapu/chess-melee-go/internal/melee"
	"github.com/kapu/chess-melee-go/internal/obslog"
	"github.com/kapu/chess-melee-go/internal/render"
	"github.com/kapu/chess-melee-go/internal/scenario"
	"github.com/kapu/chess-melee-go/internal/solvestore"
	"github.com/kapu/chess-melee-go/pkg/meleedto"
)

func main() {
	cfg, err := appcfg.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}
	if err := obslog.InitFromEnv(); err != nil {
		log.Fatalf("logger init error: %v", err)
	}
	defer func() { _ = obslog.L().Sync() }()

	sc, err := loadScenario(cfg)
	if err != nil {
		log.Fatalf("scenario error: %v", err)
	}
	board, err := sc.Board()
	if err != nil {
		log.Fatalf("board error: %v", err)
	}

	presenter := meleepresenter.NewPresenter(
		func(line string) error {
			_, werr := fmt.Println(line)
			return werr
		},
		func(data []byte) error {
			path := filepath.Join(cfg.RenderDir, sc.Name+"-board.png")
			if derr := os.MkdirAll(cfg.RenderDir, 0o755); derr != nil {
				return derr
			}
			return os.WriteFile(path, data, 0o644)
		},
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	if cfg.SolveTimeoutSec > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(cfg.SolveTimeoutSec)*time.Second)
		defer cancel()
	}

	if cfg.RenderDir != "" {
		img, rerr := render.RenderPNG(ctx, board, render.Options{Title: sc.Name})
		if rerr != nil {
			obslog.L().Warn("board_render_failed", zap.Error(rerr))
		} else if perr := presenter.BoardImage(img); perr != nil {
			obslog.L().Warn("board_image_write_failed", zap.Error(perr))
		}
	}

	var solutions int
	opts := melee.Options{
		NodeBudget: cfg.NodeBudget,
		OnSolution: func(seq melee.Sequence) {
			solutions++
			if !cfg.Quiet {
				_ = presenter.Solution(solutions, seq)
			}
		},
	}

	started := time.Now()
	res, solveErr := board.Solve(ctx, opts)
	finished := time.Now()
	if solveErr != nil {
		obslog.L().Warn("solve_interrupted", zap.Error(solveErr))
	}

	run := &domain.SolveRun{
		ID:         uuid.NewString(),
		Scenario:   sc.Name,
		Pieces:     len(sc.Pieces),
		Solutions:  len(res.Solutions),
		DeadEnds:   res.DeadEnds,
		Nodes:      res.Nodes,
		Exhausted:  res.Exhausted,
		StartedAt:  started,
		FinishedAt: finished,
		Duration:   finished.Sub(started),
	}
	if err := presenter.Summary(run); err != nil {
		obslog.L().Warn("summary_write_failed", zap.Error(err))
	}

	persist(cfg, run, res)

	obslog.L().Info("solve_run_complete",
		zap.String("scenario", run.Scenario),
		zap.Int("solutions", run.Solutions),
		zap.Int("dead_ends", run.DeadEnds),
		zap.Int("nodes", run.Nodes),
		zap.Bool("exhausted", run.Exhausted),
		zap.Duration("elapsed", run.Duration),
	)
}

func loadScenario(cfg *appcfg.AppConfig) (*scenario.Scenario, error) {
	if cfg.ScenarioFile != "" {
		return scenario.LoadFile(cfg.ScenarioFile)
	}
	return scenario.Default()
}

func persist(cfg *appcfg.AppConfig, run *domain.SolveRun, res *melee.Result) {
	// Persistence is best-effort; the console report already happened.
	pctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if cfg.RedisURL != "" {
		store, err := solvestore.NewStore(cfg.RedisURL)
		if err != nil {
			obslog.L().Warn("solve_store_init_failed", zap.Error(err))
		} else {
			defer func() { _ = store.Close() }()
			sample := sampleSolutions(res, cfg.StoredSolutionLimit)
			if _, err := store.SaveRun(pctx, run, sample); err != nil {
				obslog.L().Warn("solve_store_save_failed", zap.Error(err))
			}
		}
	}

	if cfg.DatabaseURL != "" {
		repo, err := solvestore.NewRepository(cfg.DatabaseURL)
		if err != nil {
			obslog.L().Warn("run_repo_init_failed", zap.Error(err))
			return
		}
		defer func() { _ = repo.Close() }()
		if err := repo.SaveRun(pctx, run); err != nil {
			obslog.L().Warn("run_repo_save_failed", zap.Error(err))
		}
	}
}

func sampleSolutions(res *melee.Result, limit int) []meleedto.SolutionDTO {
	n := len(res.Solutions)
	if limit >= 0 && n > limit {
		n = limit
	}
	out := make([]meleedto.SolutionDTO, 0, n)
	for _, seq := range res.Solutions[:n] {
		out = append(out, meleepresenter.ToSolutionDTO(seq))
	}
	return out
}
