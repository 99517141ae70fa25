package discovery

import (
	"context"

	"github.com/stackhaven/zonemenu/internal/menu"
)

// Adapter produces the flat, discovery-order list of navigation elements.
// Implementations must return elements with resolvable stable keys; the
// list is the source of truth for which items exist.
type Adapter interface {
	Discover(ctx context.Context) ([]menu.Element, error)
}

// ItemsByKey indexes the item elements (groups excluded) by key.
func ItemsByKey(elements []menu.Element) map[string]menu.Element {
	m := make(map[string]menu.Element, len(elements))
	for _, el := range elements {
		if el.Type == menu.TypeItem {
			m[el.Key] = el
		}
	}
	return m
}

// GroupMetaByKey indexes group label/icon metadata by group key.
func GroupMetaByKey(elements []menu.Element) map[string]menu.GroupMeta {
	m := make(map[string]menu.GroupMeta)
	for _, el := range elements {
		if el.Type == menu.TypeGroup {
			m[el.Key] = menu.GroupMeta{Label: el.Label, Icon: el.Icon}
		}
	}
	return m
}

// Static is a fixed-element adapter. Used in tests and wherever the menu
// tree is assembled in code rather than from definition files.
type Static struct {
	elements []menu.Element
}

// NewStatic builds a Static adapter. Sort indexes are stamped from the
// given order.
func NewStatic(elements ...menu.Element) *Static {
	copied := make([]menu.Element, len(elements))
	copy(copied, elements)
	for i := range copied {
		copied[i].SortIndex = i
	}
	return &Static{elements: copied}
}

// Discover returns the fixed element list.
func (s *Static) Discover(ctx context.Context) ([]menu.Element, error) {
	out := make([]menu.Element, len(s.elements))
	copy(out, s.elements)
	return out, nil
}
