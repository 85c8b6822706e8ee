// Package annotator is the concrete stage-gated position processor: it
// accumulates depth per position, checks reference concordance, applies
// threshold filters, and emits one annotated site per position.
package annotator

import (
	"fmt"

	"varanno-core/depth"
	"varanno-core/gvcf"
	"varanno-core/pileup"
	"varanno-core/posproc"

	"varanno/internal/evidence"
)

// Config holds filter thresholds. A zero threshold disables its filter.
type Config struct {
	MinGQX   float64 // sites with gqx below this get LowGQX
	MaxDepth uint32  // sites with depth above this get HighDepth
	MaxSB    float64 // variant sites with strand bias above this get HighSNVSB
}

// Site is one annotated position, handed to the visit callback.
type Site struct {
	Pos       int64
	Ref       pileup.BaseID
	Depth     uint32 // all observed calls
	UsedDepth uint32 // calls excluding unknowns
	AllRef    bool
	Smod      gvcf.SiteModifiers
}

// Annotator owns the depth buffer and pending evidence for the live
// window. Not safe for concurrent use; the pipeline drives it from a
// single goroutine.
type Annotator struct {
	gate    posproc.Gate
	cfg     Config
	depth   *depth.Buffer
	pending map[int64]evidence.Row
	visit   func(Site) error
}

// New returns an active Annotator that emits sites via visit.
func New(cfg Config, visit func(Site) error) *Annotator {
	a := &Annotator{
		cfg:     cfg,
		depth:   depth.New(),
		pending: make(map[int64]evidence.Row),
		visit:   visit,
	}
	a.gate = posproc.NewGate(a)
	return a
}

// Observe buffers one position's evidence ahead of stage dispatch.
func (a *Annotator) Observe(row evidence.Row) {
	a.pending[row.Pos] = row
}

// Dispatch runs one (stage, position) step through the gate.
func (a *Annotator) Dispatch(stage int, pos int64) error {
	return a.gate.Dispatch(stage, pos)
}

// Suppress turns all further dispatches into no-ops. The pipeline
// flips this once the evidence stream is exhausted.
func (a *Annotator) Suppress() { a.gate.Suppress() }

// DepthAt exposes the current buffered depth for a position.
func (a *Annotator) DepthAt(pos int64) uint32 { return a.depth.Value(pos) }

// ProcessPos implements posproc.Hook.
func (a *Annotator) ProcessPos(stage int, pos int64) error {
	switch stage {
	case StageCount:
		row, ok := a.pending[pos]
		if !ok {
			return nil
		}
		for range row.Calls {
			a.depth.Increment(pos)
		}
		return nil
	case StageCall:
		return a.callSite(pos)
	case StageCleanup:
		a.depth.Evict(pos)
		delete(a.pending, pos)
		return nil
	}
	return fmt.Errorf("annotator: unknown stage %d at pos %d", stage, pos)
}

func (a *Annotator) callSite(pos int64) error {
	row, ok := a.pending[pos]
	if !ok {
		return nil
	}

	// Unknown calls never reach the concordance predicate.
	used := pileup.PosInfo{}
	for _, c := range row.Calls {
		if c.Base == pileup.BaseAny {
			continue
		}
		used.Calls = append(used.Calls, c)
	}

	site := Site{
		Pos:       pos,
		Ref:       row.Ref,
		Depth:     a.depth.Value(pos),
		UsedDepth: uint32(len(used.Calls)),
	}
	smod := &site.Smod
	smod.IsCovered = len(row.Calls) > 0
	smod.IsUsedCovered = len(used.Calls) > 0

	if row.Ref == pileup.BaseAny {
		smod.IsUnknown = true
		smod.ModifiedGT = gvcf.GTUnknown
	} else {
		site.AllRef = pileup.IsAllRef(used, row.Ref)
	}

	if a.cfg.MinGQX > 0 && row.HasGQX && row.GQX < a.cfg.MinGQX {
		smod.Filters.Set(gvcf.FilterLowGQX)
	}
	if a.cfg.MaxDepth > 0 && site.Depth > a.cfg.MaxDepth {
		smod.Filters.Set(gvcf.FilterHighDepth)
	}
	if a.cfg.MaxSB > 0 && row.HasSB && row.SB > a.cfg.MaxSB && !site.AllRef && !smod.IsUnknown {
		smod.Filters.Set(gvcf.FilterHighSNVSB)
	}

	return a.visit(site)
}
