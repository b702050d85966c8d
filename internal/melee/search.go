package melee

import (
	"context"
	"errors"

	"github.com/kapu/chess-melee-go/internal/obslog"
	"go.uber.org/zap"
)

// Sequence is the capture history of one complete solution, in order.
type Sequence []Capture

// Options tunes a solve. The zero value runs the search to full exhaustion.
type Options struct {
	// NodeBudget caps the number of visited nodes; 0 means unbounded.
	NodeBudget int
	// OnSolution, when set, is invoked for each solution as it is found.
	OnSolution func(Sequence)
}

// Result accumulates the outcome of one solve. Counters are merged up the
// call tree; there is no process-wide mutable state.
type Result struct {
	Solutions []Sequence
	DeadEnds  int
	Nodes     int
	// Exhausted is true when the full tree was explored, false when the
	// node budget stopped the search early.
	Exhausted bool
}

var errBudgetExhausted = errors.New("node budget exhausted")

// Solve explores every alternating-capture sequence from this board, White to
// move first, and returns all solutions (one piece left) plus the dead-end
// count. Boards reachable by different move orders are deliberately treated
// as distinct states; the state space is small enough that memoization would
// buy nothing. Cancelling ctx returns the partial result with ctx.Err().
func (b *Board) Solve(ctx context.Context, opts Options) (*Result, error) {
	res := &Result{}
	err := b.solve(ctx, opts, White, nil, res)
	switch {
	case err == nil:
		res.Exhausted = true
		return res, nil
	case errors.Is(err, errBudgetExhausted):
		return res, nil
	default:
		return res, err
	}
}

func (b *Board) solve(ctx context.Context, opts Options, turn Color, trail []Capture, res *Result) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	res.Nodes++
	if opts.NodeBudget > 0 && res.Nodes > opts.NodeBudget {
		return errBudgetExhausted
	}

	if b.Len() == 1 {
		seq := make(Sequence, len(trail))
		copy(seq, trail)
		res.Solutions = append(res.Solutions, seq)
		if opts.OnSolution != nil {
			opts.OnSolution(seq)
		}
		return nil
	}

	found := false
	for _, p := range b.pieces {
		if p.Color != turn {
			continue
		}
		for _, c := range p.Captures(b) {
			found = true
			next := b.Clone()
			if !next.Apply(c) {
				// Unreachable when captures come from this exact board;
				// abandon the branch rather than abort the search.
				obslog.L().Warn("capture_apply_mismatch",
					zap.String("attacker", string(c.Attacker.Kind)+"@"+c.Attacker.Square),
					zap.String("target", string(c.Target.Kind)+"@"+c.Target.Square),
				)
				continue
			}
			if err := next.solve(ctx, opts, turn.Opposite(), append(trail, c), res); err != nil {
				return err
			}
		}
	}
	if !found {
		res.DeadEnds++
	}
	return nil
}
