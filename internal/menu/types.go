package menu

// ElementType tags the Element union.
type ElementType string

const (
	// TypeItem is a leaf navigation entry (a link).
	TypeItem ElementType = "item"
	// TypeGroup is a labeled container of items.
	TypeGroup ElementType = "group"
)

// Zone names. Zones beyond these can be configured; these are the ones the
// stock layouts know about.
const (
	ZoneSidebar   = "sidebar"
	ZoneTopbar    = "topbar"
	ZoneBottomBar = "bottom_bar"
)

// DefaultZone is where unconfigured items land.
const DefaultZone = ZoneSidebar

// Element is one discovered navigation element. The discovery adapter
// produces Elements in native menu order; SortIndex records that position
// and is the fallback ordering axis for items without a saved config.
//
// ParentKey is the discovery-time nesting: for an item inside a group it
// names the group's key. It is only a default — the saved configuration
// overrides it.
type Element struct {
	Key       string      `json:"key"`
	Label     string      `json:"label"`
	Icon      string      `json:"icon,omitempty"`
	Type      ElementType `json:"type"`
	ParentKey string      `json:"parent_key,omitempty"`
	SortIndex int         `json:"sort_index"`
}

// IsGroup reports whether the element is a group.
func (e Element) IsGroup() bool { return e.Type == TypeGroup }

// GroupMeta is the renderable metadata of a group, looked up by key when
// assembling blocks.
type GroupMeta struct {
	Label string `json:"label"`
	Icon  string `json:"icon,omitempty"`
}

// Scope identifies one configuration set: a layout plus an optional user.
// UserID nil means the global (all users) configuration for that layout.
type Scope struct {
	Layout string
	UserID *int64
}

// GlobalScope returns the global scope for a layout.
func GlobalScope(layout string) Scope {
	return Scope{Layout: layout}
}

// UserScope returns a per-user scope for a layout.
func UserScope(layout string, userID int64) Scope {
	return Scope{Layout: layout, UserID: &userID}
}

// ItemConfig is one persisted override row. ParentKey "" means the item is
// standalone (top level of its zone). The row set for a scope is replaced
// wholesale on save; rows never accumulate.
type ItemConfig struct {
	ItemKey   string
	ParentKey string
	Zone      string
	SortOrder int
	Visible   bool
}

// ConfigRow is the wire shape of an ItemConfig as submitted by the editing
// client and stored per scope. ParentKey is a pointer so the JSON null of a
// standalone item survives the round trip.
type ConfigRow struct {
	Key       string  `json:"key"`
	ParentKey *string `json:"parent_key"`
	Zone      string  `json:"zone"`
	SortOrder int     `json:"sort_order"`
	Visible   bool    `json:"visible"`
}

// Config converts the wire row to the in-memory record.
func (r ConfigRow) Config() ItemConfig {
	parent := ""
	if r.ParentKey != nil {
		parent = *r.ParentKey
	}
	zone := r.Zone
	if zone == "" {
		zone = DefaultZone
	}
	return ItemConfig{
		ItemKey:   r.Key,
		ParentKey: parent,
		Zone:      zone,
		SortOrder: r.SortOrder,
		Visible:   r.Visible,
	}
}

// Row converts an in-memory record to its wire shape.
func (c ItemConfig) Row() ConfigRow {
	var parent *string
	if c.ParentKey != "" {
		p := c.ParentKey
		parent = &p
	}
	return ConfigRow{
		Key:       c.ItemKey,
		ParentKey: parent,
		Zone:      c.Zone,
		SortOrder: c.SortOrder,
		Visible:   c.Visible,
	}
}

// ZoneSetting is one persisted per-zone flag. Value is boolean-encoded:
// "1" (or legacy "true") is on, anything else is off.
type ZoneSetting struct {
	Zone  string
	Key   string
	Value string
}

// Bool decodes the boolean encoding of the setting value.
func (s ZoneSetting) Bool() bool {
	return s.Value == "1" || s.Value == "true"
}

// EncodeBool encodes a boolean as a setting value.
func EncodeBool(v bool) string {
	if v {
		return "1"
	}
	return "0"
}

// SettingAlwaysVisible is the zone setting key controlling whether a bar
// zone stays visible even while empty.
const SettingAlwaysVisible = "always_visible"
