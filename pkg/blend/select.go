package blend

import "sort"

// SelectTop produces the final ordered list using two-phase selection.
//
// Phase 1 walks the size categories in the given order and takes the
// top topPerCategory entries of each, so every size bucket is
// represented. Phase 2 tops the list up to finalLimit from the global
// pool, highest score first. The combined list is then re-sorted by
// score. All sorts are stable: equal scores keep first-seen order.
func SelectTop(t *Table, sizeFilters []string, topPerCategory, finalLimit int) []*Entry {
	selected := make(map[string]bool)
	var final []*Entry

	for _, sizeFilter := range sizeFilters {
		category := t.Category(sizeFilter)
		names := make([]string, len(category))
		copy(names, category)

		sort.SliceStable(names, func(i, j int) bool {
			return t.Get(names[i]).Score > t.Get(names[j]).Score
		})

		if len(names) > topPerCategory {
			names = names[:topPerCategory]
		}
		for _, name := range names {
			if !selected[name] {
				selected[name] = true
				final = append(final, t.Get(name))
			}
		}
	}

	if len(final) < finalLimit {
		pool := t.Entries()
		sort.SliceStable(pool, func(i, j int) bool {
			return pool[i].Score > pool[j].Score
		})
		for _, entry := range pool {
			if selected[entry.Name] {
				continue
			}
			selected[entry.Name] = true
			final = append(final, entry)
			if len(final) >= finalLimit {
				break
			}
		}
	}

	sort.SliceStable(final, func(i, j int) bool {
		return final[i].Score > final[j].Score
	})

	return final
}
