package scoring

// Named policy constants. These are the parameters most likely to be
// revisited by product policy; keep them here rather than inline.
const (
	// MaxOptionValue is the top of the answer scale. Every option value
	// lies in [1, MaxOptionValue] and normalized scores in [1.0, 5.0].
	MaxOptionValue = 5.0

	// CapacitySlack is how far willingness may push the final score
	// beyond objective capacity. Willingness marginally ahead of
	// capacity is not punished; a large gap is capped.
	CapacitySlack = 0.5

	// Risk band lower bounds over the [1.0, 5.0] scale. Each band is
	// 0.8 wide and inclusive on its lower edge, so exactly 4.2
	// classifies as Aggressive.
	BandModerateConservative = 1.8
	BandModerate             = 2.6
	BandModerateAggressive   = 3.4
	BandAggressive           = 4.2
)
