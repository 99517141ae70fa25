package engine

import (
	"slices"

	"github.com/stackhaven/zonemenu/internal/menu"
)

// EditableItem is one element of the editing session: the discovered
// element merged with its saved override (or the defaults when none is
// saved). Group elements appear in the set for label/icon lookup but never
// occupy a zone slot themselves.
type EditableItem struct {
	Key       string
	Label     string
	Icon      string
	Type      menu.ElementType
	Zone      string
	Visible   bool
	SortOrder int
	ParentKey string
}

// DefaultOrderStep spaces the fallback sort orders of unconfigured items
// so new items can be slotted between them without renumbering.
const DefaultOrderStep = 10

// Session is the in-memory editing state for one scope.
type Session struct {
	items       []EditableItem
	groups      map[string]menu.GroupMeta
	zones       []string
	baseZones   []string
	defaultZone string
}

// Option configures a Session.
type Option func(*Session)

// WithZones sets the full placement zone list (in display order) and the
// base zones that are always shown even when empty.
func WithZones(all, base []string) Option {
	return func(s *Session) {
		s.zones = slices.Clone(all)
		s.baseZones = slices.Clone(base)
	}
}

// WithDefaultZone sets the zone unconfigured items land in.
func WithDefaultZone(zone string) Option {
	return func(s *Session) {
		s.defaultZone = zone
	}
}

// NewSession builds the editable item set from the discovered elements and
// the saved config map for the scope being edited.
//
// Merge contract: discovery order is preserved as the fallback ordering
// axis. An item with a saved row takes zone, visibility, sort order and
// parent from that row; an item without one defaults to the default zone,
// visible, sort order = discovery index × DefaultOrderStep, and its
// discovery-time parent. Stale rows referencing keys no longer discovered
// are ignored.
func NewSession(discovered []menu.Element, configs map[string]menu.ItemConfig, opts ...Option) *Session {
	s := &Session{
		groups:      make(map[string]menu.GroupMeta),
		zones:       []string{menu.ZoneSidebar, menu.ZoneTopbar, menu.ZoneBottomBar},
		baseZones:   []string{menu.ZoneSidebar, menu.ZoneBottomBar},
		defaultZone: menu.DefaultZone,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.items = make([]EditableItem, 0, len(discovered))
	for _, el := range discovered {
		item := EditableItem{
			Key:       el.Key,
			Label:     el.Label,
			Icon:      el.Icon,
			Type:      el.Type,
			Zone:      s.defaultZone,
			Visible:   true,
			SortOrder: el.SortIndex * DefaultOrderStep,
			ParentKey: el.ParentKey,
		}

		if el.Type == menu.TypeGroup {
			s.groups[el.Key] = menu.GroupMeta{Label: el.Label, Icon: el.Icon}
		} else if cfg, ok := configs[el.Key]; ok {
			item.Zone = cfg.Zone
			item.Visible = cfg.Visible
			item.SortOrder = cfg.SortOrder
			item.ParentKey = cfg.ParentKey
		}

		s.items = append(s.items, item)
	}

	return s
}

// Items returns a copy of the editable item set in its stable order.
func (s *Session) Items() []EditableItem {
	return slices.Clone(s.items)
}

// Item returns the item (never a group) with the given key.
func (s *Session) Item(key string) (EditableItem, bool) {
	if i := s.itemIndex(key); i >= 0 {
		return s.items[i], true
	}
	return EditableItem{}, false
}

// Zones returns the configured placement zones in display order.
func (s *Session) Zones() []string {
	return slices.Clone(s.zones)
}

// DefaultZone returns the zone unconfigured items land in.
func (s *Session) DefaultZone() string {
	return s.defaultZone
}

// itemIndex finds the index of the item (not group) with the given key,
// or -1.
func (s *Session) itemIndex(key string) int {
	for i := range s.items {
		if s.items[i].Key == key && s.items[i].Type != menu.TypeGroup {
			return i
		}
	}
	return -1
}

// childIndexes returns the indexes of all items whose parent is groupKey.
func (s *Session) childIndexes(groupKey string) []int {
	var out []int
	if groupKey == "" {
		return out
	}
	for i := range s.items {
		if s.items[i].Type != menu.TypeGroup && s.items[i].ParentKey == groupKey {
			out = append(out, i)
		}
	}
	return out
}

// GroupKeys returns the distinct group keys in discovery order.
func (s *Session) GroupKeys() []string {
	var keys []string
	seen := make(map[string]bool)
	for _, it := range s.items {
		if it.Type == menu.TypeGroup && !seen[it.Key] {
			seen[it.Key] = true
			keys = append(keys, it.Key)
		}
	}
	return keys
}

// GroupLabel returns the group's label, falling back to the key when the
// group is unknown.
func (s *Session) GroupLabel(groupKey string) string {
	if meta, ok := s.groups[groupKey]; ok {
		return meta.Label
	}
	return groupKey
}

// GroupZone derives the group's zone from its members: the zone of the
// first child, or the default zone for an empty group. Groups never carry
// a zone of their own.
func (s *Session) GroupZone(groupKey string) string {
	for _, i := range s.childIndexes(groupKey) {
		return s.items[i].Zone
	}
	return s.defaultZone
}

// IsGroupVisible reports whether the group has at least one visible member.
func (s *Session) IsGroupVisible(groupKey string) bool {
	for _, i := range s.childIndexes(groupKey) {
		if s.items[i].Visible {
			return true
		}
	}
	return false
}

// HiddenGroups returns the groups whose every member is hidden.
func (s *Session) HiddenGroups() []string {
	var hidden []string
	for _, gk := range s.GroupKeys() {
		children := s.childIndexes(gk)
		if len(children) == 0 {
			continue
		}
		allHidden := true
		for _, i := range children {
			if s.items[i].Visible {
				allHidden = false
				break
			}
		}
		if allHidden {
			hidden = append(hidden, gk)
		}
	}
	return hidden
}

// HiddenStandaloneItems returns the hidden items that are not inside a
// fully-hidden group (those surface through HiddenGroups instead).
func (s *Session) HiddenStandaloneItems() []EditableItem {
	hiddenGroups := make(map[string]bool)
	for _, gk := range s.HiddenGroups() {
		hiddenGroups[gk] = true
	}

	var out []EditableItem
	for _, it := range s.items {
		if it.Type == menu.TypeGroup || it.Visible {
			continue
		}
		if hiddenGroups[it.ParentKey] {
			continue
		}
		out = append(out, it)
	}
	return out
}

// IsZoneVisible reports whether the zone should be offered: base zones
// always are, other zones only while at least one visible item targets
// them.
func (s *Session) IsZoneVisible(zone string) bool {
	if slices.Contains(s.baseZones, zone) {
		return true
	}
	for _, it := range s.items {
		if it.Type != menu.TypeGroup && it.Zone == zone && it.Visible {
			return true
		}
	}
	return false
}
