// pkg/api/sites_v1.go
package api

// SiteV1 is the stable JSON/JSONL schema for annotated sites.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type SiteV1 struct {
	Pos       int64  `json:"pos"`
	Ref       string `json:"ref"`
	Depth     uint32 `json:"depth"`
	UsedDepth uint32 `json:"used_depth"`
	AllRef    bool   `json:"all_ref"`
	Filter    string `json:"filter"`
	GT        string `json:"gt,omitempty"`

	Unknown     bool `json:"unknown,omitempty"`
	Covered     bool `json:"covered,omitempty"`
	UsedCovered bool `json:"used_covered,omitempty"`
	ZeroPloidy  bool `json:"zero_ploidy,omitempty"`
	Block       bool `json:"block,omitempty"`
}
