package engine

import (
	"github.com/stackhaven/zonemenu/internal/menu"
)

// Flatten serializes the session back into the flat row set the store
// persists.
//
// Traversal: every zone's block list in zone display order, one row per
// item in traversal order, sort orders verbatim (renumbering already
// happened during mutation). Hidden items follow in a final pass, keeping
// their last known zone and parent but taking a fresh trailing sort order
// equal to the running output length, so their positions never collide
// with visible rows. Every item key appears exactly once.
func (s *Session) Flatten() []menu.ItemConfig {
	rows := make([]menu.ItemConfig, 0, len(s.items))
	seen := make(map[string]bool, len(s.items))

	for _, zone := range s.zones {
		for _, block := range s.BlocksForZone(zone) {
			if block.Kind == BlockGroup {
				for _, it := range block.Items {
					if seen[it.Key] {
						continue
					}
					seen[it.Key] = true
					rows = append(rows, menu.ItemConfig{
						ItemKey:   it.Key,
						ParentKey: block.GroupKey,
						Zone:      zone,
						SortOrder: it.SortOrder,
						Visible:   true,
					})
				}
				continue
			}

			if seen[block.Item.Key] {
				continue
			}
			seen[block.Item.Key] = true
			rows = append(rows, menu.ItemConfig{
				ItemKey:   block.Item.Key,
				Zone:      zone,
				SortOrder: block.Item.SortOrder,
				Visible:   true,
			})
		}
	}

	for _, it := range s.items {
		if it.Type == menu.TypeGroup || seen[it.Key] || it.Visible {
			continue
		}
		seen[it.Key] = true
		zone := it.Zone
		if zone == "" {
			zone = s.defaultZone
		}
		rows = append(rows, menu.ItemConfig{
			ItemKey:   it.Key,
			ParentKey: it.ParentKey,
			Zone:      zone,
			SortOrder: len(rows),
			Visible:   false,
		})
	}

	return rows
}

// ConfigMap converts flattened rows into the keyed map shape the merge
// layer consumes.
func ConfigMap(rows []menu.ItemConfig) map[string]menu.ItemConfig {
	m := make(map[string]menu.ItemConfig, len(rows))
	for _, r := range rows {
		m[r.ItemKey] = r
	}
	return m
}
