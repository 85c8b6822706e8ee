package annotator

// Processing stages for one position, dispatched in ascending order by
// the pipeline.
const (
	// StageCount folds the position's calls into the depth buffer.
	StageCount = iota
	// StageCall evaluates filters and emits the site record.
	StageCall
	// StageCleanup evicts per-position state once the position leaves
	// the pipeline window.
	StageCleanup

	NStages
)
