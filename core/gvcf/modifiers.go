package gvcf

import (
	"fmt"
	"strings"
)

// ModifiedGT overrides the called genotype for a site. GTNone is the
// distinguished "no override" sentinel.
type ModifiedGT uint8

const (
	GTNone ModifiedGT = iota
	GTUnknown
	GTZero
	GTOne

	modifiedGTSize // must stay last
)

var modifiedGTLabels = [...]string{
	GTNone:    ".",
	GTUnknown: "./.",
	GTZero:    "0",
	GTOne:     "1",
}

func init() {
	if len(modifiedGTLabels) != int(modifiedGTSize) {
		panic("gvcf: modified-gt label table out of sync with enumeration")
	}
}

// Label returns the display label for g.
func (g ModifiedGT) Label() string {
	if g >= modifiedGTSize {
		return "?"
	}
	return modifiedGTLabels[g]
}

// SiteModifiers is the per-site annotation record handed to the
// serializer: independent state flags, the applied filter set, and an
// optional genotype override. This layer does not police contradictory
// flag combinations (e.g. IsZeroPloidy with a real override); callers
// must not set them.
type SiteModifiers struct {
	IsUnknown     bool
	IsCovered     bool
	IsUsedCovered bool
	IsZeroPloidy  bool
	IsBlock       bool

	Filters    FilterSet
	ModifiedGT ModifiedGT
}

// String is the fixed-field diagnostic dump. The genotype override is
// appended only when set.
func (m SiteModifiers) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "is_unknown: %t", m.IsUnknown)
	fmt.Fprintf(&sb, " is_covered: %t", m.IsCovered)
	fmt.Fprintf(&sb, " is_used_coverage: %t", m.IsUsedCovered)
	fmt.Fprintf(&sb, " is_zero_ploidy: %t", m.IsZeroPloidy)
	fmt.Fprintf(&sb, " is_block: %t", m.IsBlock)
	if m.ModifiedGT != GTNone {
		fmt.Fprintf(&sb, " modgt: %s", m.ModifiedGT.Label())
	}
	return sb.String()
}
