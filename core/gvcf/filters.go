// Package gvcf holds the per-site annotation record and its
// deterministic filter encoding.
package gvcf

import (
	"io"
	"strings"
)

// Filter enumerates site filter kinds. The declared order is the
// canonical serialization order; downstream consumers depend on it
// byte-for-byte.
type Filter uint8

const (
	FilterIndelConflict Filter = iota
	FilterSiteConflict
	FilterLowGQX
	FilterHighDepth
	FilterHighSNVSB
	FilterHighSNVHPOL

	filterSize // must stay last
)

var filterLabels = [...]string{
	FilterIndelConflict: "IndelConflict",
	FilterSiteConflict:  "SiteConflict",
	FilterLowGQX:        "LowGQX",
	FilterHighDepth:     "HighDepth",
	FilterHighSNVSB:     "HighSNVSB",
	FilterHighSNVHPOL:   "HighSNVHPOL",
}

func init() {
	// Keep the enumeration and label table in lockstep.
	if len(filterLabels) != int(filterSize) {
		panic("gvcf: filter label table out of sync with enumeration")
	}
	for _, s := range filterLabels {
		if s == "" {
			panic("gvcf: missing filter label")
		}
	}
}

// Label returns the canonical display label for f.
func (f Filter) Label() string {
	if f >= filterSize {
		return "?"
	}
	return filterLabels[f]
}

// PassLabel is emitted when no filter applies.
const PassLabel = "PASS"

// FilterSet is a fixed-capacity bit-set over Filter. The zero value is
// the empty set. Logically unordered; serialization follows the
// enumeration order regardless of insertion order.
type FilterSet uint16

// Set marks f as applied.
func (s *FilterSet) Set(f Filter) { *s |= 1 << f }

// Test reports whether f is applied.
func (s FilterSet) Test(f Filter) bool { return s&(1<<f) != 0 }

// None reports whether no filter is applied.
func (s FilterSet) None() bool { return s == 0 }

// WriteFilters writes the canonical filter string to w: PASS for the
// empty set, else the set labels in enumeration order joined by ';'.
func (s FilterSet) WriteFilters(w io.Writer) error {
	_, err := io.WriteString(w, s.EncodeFilters())
	return err
}

// EncodeFilters renders the canonical filter string. Deterministic:
// the same set always yields the same string.
func (s FilterSet) EncodeFilters() string {
	if s.None() {
		return PassLabel
	}
	var sb strings.Builder
	sep := false
	for f := Filter(0); f < filterSize; f++ {
		if !s.Test(f) {
			continue
		}
		if sep {
			sb.WriteByte(';')
		} else {
			sep = true
		}
		sb.WriteString(filterLabels[f])
	}
	return sb.String()
}
