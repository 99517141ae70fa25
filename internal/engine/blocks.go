package engine

import (
	"sort"
	"strings"

	"github.com/stackhaven/zonemenu/internal/menu"
)

// BlockKind tags the Block union.
type BlockKind string

const (
	// BlockGroup is a group with its ordered member items.
	BlockGroup BlockKind = "group"
	// BlockStandalone is a single top-level item.
	BlockStandalone BlockKind = "standalone"
)

// Block is the transient edit/render unit of one zone. For BlockGroup,
// GroupKey/Label/Icon/Items are set and SortOrder is the minimum member
// order; for BlockStandalone, Item is set and SortOrder is its order.
type Block struct {
	Kind      BlockKind
	GroupKey  string
	Label     string
	Icon      string
	Items     []EditableItem
	Item      EditableItem
	SortOrder int
}

// Block identifier prefixes on the reorder wire: a zone-level container
// reports its final child order as a list of these ids.
const (
	blockIDGroupPrefix      = "g-"
	blockIDStandalonePrefix = "s-"
)

// ID returns the wire identifier of the block: "g-<groupKey>" for groups,
// "s-<itemKey>" for standalone items.
func (b Block) ID() string {
	if b.Kind == BlockGroup {
		return blockIDGroupPrefix + b.GroupKey
	}
	return blockIDStandalonePrefix + b.Item.Key
}

// parseBlockID splits a wire block identifier into kind and key.
func parseBlockID(id string) (kind BlockKind, key string, ok bool) {
	switch {
	case strings.HasPrefix(id, blockIDGroupPrefix):
		return BlockGroup, id[len(blockIDGroupPrefix):], true
	case strings.HasPrefix(id, blockIDStandalonePrefix):
		return BlockStandalone, id[len(blockIDStandalonePrefix):], true
	default:
		return "", "", false
	}
}

// BlocksForZone assembles the ordered block list for one zone from the
// visible items targeting it.
//
// Algorithm: partition the zone's visible items into grouped and
// standalone; order each group's members by sort order (stable on ties);
// a group block sorts at its minimum member order, a standalone block at
// its own. A group whose metadata is no longer discoverable is dropped —
// a group block requires a resolvable label. The merged list interleaves
// group and standalone blocks by sort order, ties broken by input order.
func (s *Session) BlocksForZone(zone string) []Block {
	var parentOrder []string
	grouped := make(map[string][]EditableItem)
	var standalone []EditableItem

	for _, it := range s.items {
		if it.Type == menu.TypeGroup || it.Zone != zone || !it.Visible {
			continue
		}
		if it.ParentKey != "" {
			if _, seen := grouped[it.ParentKey]; !seen {
				parentOrder = append(parentOrder, it.ParentKey)
			}
			grouped[it.ParentKey] = append(grouped[it.ParentKey], it)
		} else {
			standalone = append(standalone, it)
		}
	}

	var blocks []Block
	for _, gk := range parentOrder {
		meta, ok := s.groups[gk]
		if !ok {
			continue
		}
		members := grouped[gk]
		sort.SliceStable(members, func(i, j int) bool {
			return members[i].SortOrder < members[j].SortOrder
		})
		minOrder := members[0].SortOrder
		blocks = append(blocks, Block{
			Kind:      BlockGroup,
			GroupKey:  gk,
			Label:     meta.Label,
			Icon:      meta.Icon,
			Items:     members,
			SortOrder: minOrder,
		})
	}
	for _, it := range standalone {
		blocks = append(blocks, Block{
			Kind:      BlockStandalone,
			Item:      it,
			SortOrder: it.SortOrder,
		})
	}

	sort.SliceStable(blocks, func(i, j int) bool {
		return blocks[i].SortOrder < blocks[j].SortOrder
	})

	return blocks
}
