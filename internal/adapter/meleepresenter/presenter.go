package meleepresenter

import (
	"github.com/kapu/chess-melee-go/internal/domain"
	"github.com/kapu/chess-melee-go/internal/melee"
)

// Presenter delivers formatted report lines and board images through injected
// sinks, keeping the solver decoupled from where output lands.
type Presenter struct {
	formatter *Formatter
	emitLine  func(line string) error
	emitImage func(png []byte) error
}

func NewPresenter(emitLine func(string) error, emitImage func([]byte) error) *Presenter {
	return &Presenter{
		formatter: NewFormatter(),
		emitLine:  emitLine,
		emitImage: emitImage,
	}
}

// Solution reports one discovered solution.
func (p *Presenter) Solution(n int, seq melee.Sequence) error {
	if p == nil || p.emitLine == nil {
		return nil
	}
	return p.emitLine(p.formatter.Solution(n, seq))
}

// Summary reports the closing run summary.
func (p *Presenter) Summary(run *domain.SolveRun) error {
	if p == nil || p.emitLine == nil || run == nil {
		return nil
	}
	return p.emitLine(p.formatter.Summary(run))
}

// BoardImage delivers a rendered board snapshot.
func (p *Presenter) BoardImage(png []byte) error {
	if p == nil || p.emitImage == nil || len(png) == 0 {
		return nil
	}
	return p.emitImage(png)
}
