package output

import (
	"varanno-core/gvcf"

	"varanno/internal/annotator"
	"varanno/pkg/api"
)

// ToAPI converts one annotated site to the stable v1 wire shape.
func ToAPI(s annotator.Site) api.SiteV1 {
	v := api.SiteV1{
		Pos:       s.Pos,
		Ref:       s.Ref.String(),
		Depth:     s.Depth,
		UsedDepth: s.UsedDepth,
		AllRef:    s.AllRef,
		Filter:    s.Smod.Filters.EncodeFilters(),

		Unknown:     s.Smod.IsUnknown,
		Covered:     s.Smod.IsCovered,
		UsedCovered: s.Smod.IsUsedCovered,
		ZeroPloidy:  s.Smod.IsZeroPloidy,
		Block:       s.Smod.IsBlock,
	}
	if s.Smod.ModifiedGT != gvcf.GTNone {
		v.GT = s.Smod.ModifiedGT.Label()
	}
	return v
}
