package blend

import (
	"github.com/elonfeng/subradar/pkg/subriff"
)

// Entry tracks accumulated signals for one subreddit across all queries.
type Entry struct {
	Name        string `json:"name"`
	Subscribers int    `json:"subscribers"`

	// Growth percentages are the maximum observed across every query
	// that returned this subreddit.
	DailyGrowth  float64 `json:"daily_growth_pct"`
	WeeklyGrowth float64 `json:"weekly_growth_pct"`

	// Best (lowest) zero-based result-page position per sort period.
	// nil means never seen in that period.
	DailyRank  *int `json:"daily_rank,omitempty"`
	WeeklyRank *int `json:"weekly_rank,omitempty"`

	// SizeFilter is the category the subreddit was first observed
	// under. Fixed at creation; later sightings under other size
	// filters do not move it.
	SizeFilter string `json:"size_filter"`

	// Appearances counts raw sightings: one per occurrence in any
	// query's result page, duplicates included.
	Appearances int `json:"appearances"`

	Score float64 `json:"score"`
}

// Table folds query result pages into one Entry per subreddit name,
// preserving first-seen order globally and per size category.
type Table struct {
	entries    map[string]*Entry
	order      []string
	byCategory map[string][]string
}

// NewTable creates an empty aggregation table.
func NewTable() *Table {
	return &Table{
		entries:    make(map[string]*Entry),
		byCategory: make(map[string][]string),
	}
}

// Observe folds one query's result page into the table. The record
// slice is in rank order. Records without a display name, or with any
// NSFW flag set, are skipped without mutating the table.
func (t *Table) Observe(sizeFilter, sortBy string, records []subriff.Subreddit) {
	for rank, rec := range records {
		name := rec.DisplayName
		if name == "" {
			continue
		}
		if rec.Nsfw() {
			continue
		}

		entry, ok := t.entries[name]
		if !ok {
			entry = &Entry{
				Name:         name,
				Subscribers:  rec.Subscribers,
				DailyGrowth:  rec.DailyGrowth,
				WeeklyGrowth: rec.WeeklyGrowth,
				SizeFilter:   sizeFilter,
			}
			t.entries[name] = entry
			t.order = append(t.order, name)
			t.byCategory[sizeFilter] = append(t.byCategory[sizeFilter], name)
		}

		entry.Appearances++

		if sortBy == subriff.SortDaily {
			if entry.DailyRank == nil || rank < *entry.DailyRank {
				r := rank
				entry.DailyRank = &r
			}
		} else {
			if entry.WeeklyRank == nil || rank < *entry.WeeklyRank {
				r := rank
				entry.WeeklyRank = &r
			}
		}

		if rec.DailyGrowth > entry.DailyGrowth {
			entry.DailyGrowth = rec.DailyGrowth
		}
		if rec.WeeklyGrowth > entry.WeeklyGrowth {
			entry.WeeklyGrowth = rec.WeeklyGrowth
		}
	}
}

// Get returns the entry for name, or nil.
func (t *Table) Get(name string) *Entry {
	return t.entries[name]
}

// Len returns the number of distinct subreddits observed.
func (t *Table) Len() int {
	return len(t.order)
}

// Entries returns all entries in first-seen order.
func (t *Table) Entries() []*Entry {
	out := make([]*Entry, 0, len(t.order))
	for _, name := range t.order {
		out = append(out, t.entries[name])
	}
	return out
}

// Category returns the names first observed under sizeFilter, in
// first-seen order.
func (t *Table) Category(sizeFilter string) []string {
	return t.byCategory[sizeFilter]
}
