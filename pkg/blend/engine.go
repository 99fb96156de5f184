package blend

import (
	"context"
	"fmt"
	"os"

	"github.com/elonfeng/subradar/pkg/subriff"
)

// Fetcher retrieves one result page per (size filter, sort period) query.
type Fetcher interface {
	Fetch(ctx context.Context, sizeFilter, sortBy string) ([]subriff.Subreddit, error)
}

// Ranked is one row of the final blended list.
type Ranked struct {
	Name        string  `json:"name"`
	Score       float64 `json:"score"`
	SizeFilter  string  `json:"size_filter"`
	Appearances int     `json:"appearances"`
}

// Engine runs the fetch, aggregate, score, select pipeline.
type Engine struct {
	fetcher         Fetcher
	sizeFilters     []string
	sortPeriods     []string
	resultsPerQuery int
	topPerCategory  int
	finalLimit      int
}

// NewEngine creates an engine over the given fetcher. Nil or zero
// parameters fall back to the defaults.
func NewEngine(f Fetcher, sizeFilters, sortPeriods []string, resultsPerQuery, topPerCategory, finalLimit int) *Engine {
	if len(sizeFilters) == 0 {
		sizeFilters = []string{
			subriff.SizeMediumSmall, subriff.SizeMedium,
			subriff.SizeLarge, subriff.SizeXLarge,
		}
	}
	if len(sortPeriods) == 0 {
		sortPeriods = []string{subriff.SortDaily, subriff.SortWeekly}
	}
	if resultsPerQuery <= 0 {
		resultsPerQuery = DefaultResultsPerQuery
	}
	if topPerCategory <= 0 {
		topPerCategory = DefaultTopPerCategory
	}
	if finalLimit <= 0 {
		finalLimit = DefaultFinalLimit
	}
	return &Engine{
		fetcher:         f,
		sizeFilters:     sizeFilters,
		sortPeriods:     sortPeriods,
		resultsPerQuery: resultsPerQuery,
		topPerCategory:  topPerCategory,
		finalLimit:      finalLimit,
	}
}

// Generate runs all queries sequentially, folds the results, scores
// every entry, and returns the diversified top list. A failed query is
// logged as a warning and contributes nothing; when every query fails
// the result is simply empty.
func (e *Engine) Generate(ctx context.Context) []Ranked {
	tbl := NewTable()

	for _, sizeFilter := range e.sizeFilters {
		for _, sortBy := range e.sortPeriods {
			records, err := e.fetcher.Fetch(ctx, sizeFilter, sortBy)
			if err != nil {
				fmt.Fprintf(os.Stderr, "warning: failed to fetch %s/%s: %v\n", sizeFilter, sortBy, err)
				continue
			}
			tbl.Observe(sizeFilter, sortBy, records)
		}
	}

	for _, entry := range tbl.Entries() {
		entry.Score = CompositeScore(entry, e.resultsPerQuery)
	}

	picked := SelectTop(tbl, e.sizeFilters, e.topPerCategory, e.finalLimit)

	ranked := make([]Ranked, 0, len(picked))
	for _, entry := range picked {
		ranked = append(ranked, Ranked{
			Name:        entry.Name,
			Score:       entry.Score,
			SizeFilter:  entry.SizeFilter,
			Appearances: entry.Appearances,
		})
	}
	return ranked
}
