package config

// Layout constants.
const (
	// MinColumnWidth is the narrowest goal row the dashboard will draw.
	MinColumnWidth = 40

	// CompactModeThreshold hides the check-in grid below this width.
	CompactModeThreshold = 72

	// TargetTitleWidth is the preferred width for goal titles.
	TargetTitleWidth = 28

	// MinTitleWidth is the minimum width for goal titles.
	MinTitleWidth = 10

	// ProgressBarWidth is the width of the year progress bar.
	ProgressBarWidth = 40
)

// Display limits.
const (
	// MaxVisibleGoals limits goals shown before scrolling.
	MaxVisibleGoals = 12

	TruncationSuffix = "..."
)

// Input constraints.
const (
	MaxTitleLength       = 100
	MaxDescriptionLength = 500
	MaxUnitLength        = 12
	MaxKRLength          = 8
)
