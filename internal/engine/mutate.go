package engine

import (
	"sort"
	"strings"

	"github.com/stackhaven/zonemenu/internal/menu"
)

// Mutations. All of them are synchronous, operate on the session's item
// set in place, and treat unknown keys as no-ops (UI-driven calls should
// not reference stale keys; when they do, nothing changes).

// ToggleVisible flips the visibility of one item. No-op for unknown keys
// and for group keys.
func (s *Session) ToggleVisible(itemKey string) {
	if i := s.itemIndex(itemKey); i >= 0 {
		s.items[i].Visible = !s.items[i].Visible
	}
}

// SetGroupVisible sets visibility on every member of the group.
func (s *Session) SetGroupVisible(groupKey string, visible bool) {
	for _, i := range s.childIndexes(groupKey) {
		s.items[i].Visible = visible
	}
}

// MoveGroupToZone reassigns every member of the group to the zone. The
// group itself has no zone; moving its members is moving the group. No-op
// on empty keys.
func (s *Session) MoveGroupToZone(groupKey, zone string) {
	if groupKey == "" || zone == "" {
		return
	}
	for _, i := range s.childIndexes(groupKey) {
		s.items[i].Zone = zone
	}
}

// SetItemZone moves one item to a zone and makes it standalone: an item
// cannot change zone and stay grouped, because a group's zone is derived
// from its members.
func (s *Session) SetItemZone(itemKey, zone string) {
	i := s.itemIndex(itemKey)
	if i < 0 || zone == "" {
		return
	}
	s.items[i].Zone = zone
	s.items[i].ParentKey = ""
}

// SetItemParent reassigns an item's group. Setting a group forces the
// item into the group's derived zone and appends it after the current
// members; clearing makes the item standalone at the end of its zone's
// top level. No-op when the parent is unchanged.
func (s *Session) SetItemParent(itemKey, parentKey string) {
	i := s.itemIndex(itemKey)
	if i < 0 {
		return
	}

	parent := strings.TrimSpace(parentKey)
	if parent == s.items[i].ParentKey {
		return
	}

	if parent != "" {
		// Derive the destination zone from the group's existing members
		// before the item joins, so the item follows the group rather
		// than dragging its old zone in.
		zone := s.defaultZone
		for _, ci := range s.childIndexes(parent) {
			if s.items[ci].Key != itemKey {
				zone = s.items[ci].Zone
				break
			}
		}
		s.items[i].ParentKey = parent
		s.items[i].Zone = zone
		s.items[i].SortOrder = len(s.childIndexes(parent))
		return
	}

	s.items[i].ParentKey = ""
	count := 0
	for _, it := range s.items {
		if it.Type != menu.TypeGroup && it.Zone == s.items[i].Zone && it.Visible && it.ParentKey == "" {
			count++
		}
	}
	s.items[i].SortOrder = count
}

// ReorderZone stamps dense increasing sort orders (0, 1, 2, ...) over a
// zone's block list in the given final order. A group block id stamps all
// of that group's members in the zone sequentially, preserving their
// relative order, so reordering at the block level never disturbs
// intra-group order. Unknown ids are skipped without consuming an order
// value.
func (s *Session) ReorderZone(zone string, blockIDs []string) {
	order := 0
	for _, id := range blockIDs {
		kind, key, ok := parseBlockID(id)
		if !ok {
			continue
		}
		switch kind {
		case BlockGroup:
			members := []int{}
			for _, i := range s.childIndexes(key) {
				if s.items[i].Zone == zone {
					members = append(members, i)
				}
			}
			sort.SliceStable(members, func(a, b int) bool {
				return s.items[members[a]].SortOrder < s.items[members[b]].SortOrder
			})
			for _, i := range members {
				s.items[i].SortOrder = order
				order++
			}
		case BlockStandalone:
			if i := s.itemIndex(key); i >= 0 {
				s.items[i].SortOrder = order
				order++
			}
		}
	}
}

// ReorderGroup stamps sort orders over a group's member list in the given
// final order. The base offset is the minimum existing sort order among
// current members — excluding excludeKey, the item arriving from another
// container — so values stay monotonic relative to the group's
// established baseline. excludeKey "" means an in-place reorder.
func (s *Session) ReorderGroup(groupKey string, itemKeys []string, excludeKey string) {
	if groupKey == "" {
		return
	}

	base := 0
	first := true
	for _, i := range s.childIndexes(groupKey) {
		if excludeKey != "" && s.items[i].Key == excludeKey {
			continue
		}
		if first || s.items[i].SortOrder < base {
			base = s.items[i].SortOrder
			first = false
		}
	}

	for idx, key := range itemKeys {
		if i := s.itemIndex(key); i >= 0 {
			s.items[i].SortOrder = base + idx
		}
	}
}

// ApplyZoneDrop applies a completed zone-level drag: the dragged block id,
// the final block order of the destination zone, and — for a cross-zone
// drag — the final block order of the source zone (without the moved
// block). Both containers are reordered so no collisions are left behind.
func (s *Session) ApplyZoneDrop(fromZone, toZone, blockID string, toBlockIDs, fromBlockIDs []string) {
	if fromZone == "" || toZone == "" {
		return
	}

	if blockID != "" && fromZone != toZone {
		kind, key, ok := parseBlockID(blockID)
		if ok {
			switch kind {
			case BlockGroup:
				s.MoveGroupToZone(key, toZone)
			case BlockStandalone:
				if i := s.itemIndex(key); i >= 0 {
					s.items[i].Zone = toZone
				}
			}
		}
	}

	s.ReorderZone(toZone, toBlockIDs)
	if fromZone != toZone {
		s.ReorderZone(fromZone, fromBlockIDs)
	}
}

// ApplyGroupDrop applies a completed item-level drag between group
// containers (or from a group to a zone's top level). toKeys is the final
// member order of the destination; for a cross-group drag, fromKeys is
// the source's final order with the moved item gone, and the destination
// baseline excludes the arriving item.
func (s *Session) ApplyGroupDrop(itemKey, toGroupKey, toZone, fromGroupKey string, toKeys, fromKeys []string) {
	i := s.itemIndex(itemKey)
	if i < 0 {
		return
	}

	sameGroup := fromGroupKey == toGroupKey

	if s.items[i].ParentKey != toGroupKey {
		s.items[i].ParentKey = toGroupKey
	}
	if toZone != "" && s.items[i].Zone != toZone {
		s.items[i].Zone = toZone
	}

	exclude := ""
	if !sameGroup {
		exclude = itemKey
	}
	s.ReorderGroup(toGroupKey, toKeys, exclude)
	if !sameGroup && fromGroupKey != "" {
		s.ReorderGroup(fromGroupKey, fromKeys, "")
	}
}
