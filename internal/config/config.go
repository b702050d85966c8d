package config

import (
	"os"
	"strconv"
	"strings"
)

type AppConfig struct {
	// ScenarioFile overrides the embedded reference melee when set.
	ScenarioFile string

	RedisURL    string
	DatabaseURL string

	// RenderDir enables board snapshot rendering when set.
	RenderDir string

	// NodeBudget caps visited search nodes; 0 runs to exhaustion.
	NodeBudget int
	// SolveTimeoutSec bounds wall time; 0 means none.
	SolveTimeoutSec int
	// StoredSolutionLimit caps how many solution sequences are persisted.
	StoredSolutionLimit int

	// Quiet suppresses per-solution output, leaving only the summary.
	Quiet bool
}

func Load() (*AppConfig, error) {
	cfg := &AppConfig{
		StoredSolutionLimit: 10,
	}

	cfg.ScenarioFile = strings.TrimSpace(os.Getenv("SCENARIO_FILE"))
	cfg.RedisURL = strings.TrimSpace(os.Getenv("REDIS_URL"))
	cfg.DatabaseURL = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	cfg.RenderDir = strings.TrimSpace(os.Getenv("RENDER_DIR"))

	if v := strings.TrimSpace(os.Getenv("NODE_BUDGET")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.NodeBudget = n
		}
	}
	if v := strings.TrimSpace(os.Getenv("SOLVE_TIMEOUT")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.SolveTimeoutSec = n
		}
	}
	if v := strings.TrimSpace(os.Getenv("STORED_SOLUTION_LIMIT")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.StoredSolutionLimit = n
		}
	}
	if v := strings.TrimSpace(os.Getenv("QUIET")); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Quiet = b
		}
	}

	return cfg, nil
}
