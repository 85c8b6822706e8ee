// Package pileup models per-position base observations and the
// reference-concordance check used to gate site filters.
package pileup

import "fmt"

// BaseID identifies one observed base from the closed DNA alphabet.
// BaseAny is the "unknown/any" sentinel; it is valid in raw evidence
// but must be excluded before concordance checks.
type BaseID uint8

const (
	BaseA BaseID = iota
	BaseC
	BaseG
	BaseT
	BaseAny
)

var baseLabels = [...]byte{'A', 'C', 'G', 'T', 'N'}

// BaseFromByte maps an ASCII base (case-insensitive) to its BaseID.
// Anything outside ACGT maps to BaseAny.
func BaseFromByte(c byte) BaseID {
	switch c {
	case 'A', 'a':
		return BaseA
	case 'C', 'c':
		return BaseC
	case 'G', 'g':
		return BaseG
	case 'T', 't':
		return BaseT
	}
	return BaseAny
}

// Byte returns the canonical ASCII letter for id.
func (id BaseID) Byte() byte {
	if int(id) >= len(baseLabels) {
		return 'N'
	}
	return baseLabels[id]
}

func (id BaseID) String() string { return string(id.Byte()) }

// Call is one observed base call at a position.
type Call struct {
	Base BaseID
}

// PosInfo is the ordered pileup evidence for a single position.
type PosInfo struct {
	Calls []Call
}

// IsAllRef reports whether every observed call in pi equals ref.
// Vacuously true when there are no calls.
//
// Precondition: no call is BaseAny. Callers strip unknown calls before
// concordance checks; a sentinel reaching this predicate is a
// programming error and panics rather than misclassifying the site.
func IsAllRef(pi PosInfo, ref BaseID) bool {
	for _, c := range pi.Calls {
		if c.Base == BaseAny {
			panic(fmt.Sprintf("pileup: BaseAny call in concordance check (ref=%s)", ref))
		}
		if c.Base != ref {
			return false
		}
	}
	return true
}
