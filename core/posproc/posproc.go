// Package posproc gates per-position processing behind a suppress flag.
//
// A concrete processor embeds Gate and supplies the Hook; the owner of
// the processor flips the gate at end-of-input or end-of-contig flushing
// so that late dispatches become no-ops.
package posproc

// Hook is the per-stage processing callback a concrete processor
// supplies. The same position may be dispatched at several distinct
// stages; the caller preserves ascending stage order per position.
type Hook interface {
	ProcessPos(stage int, pos int64) error
}

// Gate dispatches (stage, position) pairs to a Hook unless suppressed.
// Two states: active (initial) and suppressed. The flag fully decides
// a call before any side effect; there is no partial dispatch.
type Gate struct {
	hook     Hook
	suppress bool
}

// NewGate returns an active Gate wired to h.
func NewGate(h Hook) Gate { return Gate{hook: h} }

// Dispatch invokes the hook exactly once with (stage, pos) while the
// gate is active, and does nothing at all while suppressed. Hook errors
// propagate unmodified.
func (g *Gate) Dispatch(stage int, pos int64) error {
	if g.suppress {
		return nil
	}
	return g.hook.ProcessPos(stage, pos)
}

// Suppress turns all further Dispatch calls into no-ops.
func (g *Gate) Suppress() { g.suppress = true }

// Resume re-enables dispatching.
func (g *Gate) Resume() { g.suppress = false }

// Suppressed reports the current gate state.
func (g *Gate) Suppressed() bool { return g.suppress }
