package blend

// Defaults for the scoring and selection pipeline. The subriff API
// returns 20 results per page.
const (
	DefaultResultsPerQuery = 20
	DefaultTopPerCategory  = 5
	DefaultFinalLimit      = 30
)

// CompositeScore blends position, multi-appearance, and growth signals
// into a single ranking value. Pure function of the entry's fields.
//
// Factors:
//   - position: up to resultsPerQuery points per period, decaying by rank
//   - multi-appearance bonus: showing up in several result pages is a
//     more reliable trend
//   - growth: capped contribution so outliers don't dominate; negative
//     growth is not clamped and drags the score down
func CompositeScore(e *Entry, resultsPerQuery int) float64 {
	score := 0.0

	if e.DailyRank != nil {
		if pts := resultsPerQuery - *e.DailyRank; pts > 0 {
			score += float64(pts)
		}
	}
	if e.WeeklyRank != nil {
		if pts := resultsPerQuery - *e.WeeklyRank; pts > 0 {
			score += float64(pts)
		}
	}

	if e.Appearances >= 2 {
		score += 15 * float64(e.Appearances-1)
	}

	score += min(e.DailyGrowth, 100) / 10
	score += min(e.WeeklyGrowth, 500) / 50

	return score
}
