package blend

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func TestCompositeScore_PositionAndGrowth(t *testing.T) {
	// Rank 0 with 50% daily growth: 20 position points + 5 growth points.
	a := &Entry{Name: "a", DailyRank: intPtr(0), DailyGrowth: 50, Appearances: 1}
	assert.Equal(t, 25.0, CompositeScore(a, DefaultResultsPerQuery))

	// Rank 1 with 10% daily growth: 19 + 1.
	b := &Entry{Name: "b", DailyRank: intPtr(1), DailyGrowth: 10, Appearances: 1}
	assert.Equal(t, 20.0, CompositeScore(b, DefaultResultsPerQuery))
}

func TestCompositeScore_MultiAppearanceBonus(t *testing.T) {
	// Top of both daily and weekly with zero growth: 20 + 20 + 15.
	e := &Entry{DailyRank: intPtr(0), WeeklyRank: intPtr(0), Appearances: 2}
	assert.Equal(t, 55.0, CompositeScore(e, DefaultResultsPerQuery))

	// Each extra sighting adds another 15.
	e.Appearances = 4
	assert.Equal(t, 85.0, CompositeScore(e, DefaultResultsPerQuery))
}

func TestCompositeScore_GrowthCaps(t *testing.T) {
	e := &Entry{DailyGrowth: 1000, WeeklyGrowth: 10000, Appearances: 1}
	assert.Equal(t, 20.0, CompositeScore(e, DefaultResultsPerQuery))
}

func TestCompositeScore_NegativeGrowthUnclamped(t *testing.T) {
	e := &Entry{DailyRank: intPtr(0), DailyGrowth: -50, WeeklyGrowth: -100, Appearances: 1}
	assert.Equal(t, 20.0-5.0-2.0, CompositeScore(e, DefaultResultsPerQuery))
}

func TestCompositeScore_NoSignals(t *testing.T) {
	assert.Zero(t, CompositeScore(&Entry{Appearances: 1}, DefaultResultsPerQuery))
}

func TestCompositeScore_RankBeyondPage(t *testing.T) {
	// A rank at or past the page size contributes nothing, not a
	// negative amount.
	e := &Entry{DailyRank: intPtr(25), Appearances: 1}
	assert.Zero(t, CompositeScore(e, DefaultResultsPerQuery))
}

func TestCompositeScore_Deterministic(t *testing.T) {
	e := &Entry{DailyRank: intPtr(3), WeeklyRank: intPtr(7), DailyGrowth: 42, WeeklyGrowth: 123, Appearances: 3}
	first := CompositeScore(e, DefaultResultsPerQuery)
	assert.Equal(t, first, CompositeScore(e, DefaultResultsPerQuery))
}
