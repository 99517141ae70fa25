package render

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/stackhaven/zonemenu/internal/discovery"
	"github.com/stackhaven/zonemenu/internal/engine"
	"github.com/stackhaven/zonemenu/internal/menu"
	"github.com/stackhaven/zonemenu/internal/store"
)

// Projector projects stored configuration into per-zone trees.
type Projector struct {
	store       *store.Store
	adapter     discovery.Adapter
	zones       []string
	baseZones   []string
	defaultZone string
	logger      *slog.Logger
}

// Option configures a Projector.
type Option func(*Projector)

// WithZones sets the placement zone list (in display order) and the base
// zones that are always active.
func WithZones(all, base []string) Option {
	return func(p *Projector) {
		p.zones = slices.Clone(all)
		p.baseZones = slices.Clone(base)
	}
}

// WithDefaultZone sets the zone unconfigured items land in.
func WithDefaultZone(zone string) Option {
	return func(p *Projector) {
		p.defaultZone = zone
	}
}

// WithLogger sets the logger used for non-fatal conditions.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Projector) {
		p.logger = logger
	}
}

// New creates a Projector over a store and a discovery adapter.
func New(st *store.Store, adapter discovery.Adapter, opts ...Option) *Projector {
	p := &Projector{
		store:       st,
		adapter:     adapter,
		zones:       []string{menu.ZoneSidebar, menu.ZoneTopbar, menu.ZoneBottomBar},
		baseZones:   []string{menu.ZoneSidebar, menu.ZoneBottomBar},
		defaultZone: menu.DefaultZone,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Zones returns the configured placement zones in display order.
func (p *Projector) Zones() []string {
	return slices.Clone(p.zones)
}

// DefaultZone returns the zone unconfigured items land in.
func (p *Projector) DefaultZone() string {
	return p.defaultZone
}

// Session loads the editing session for a scope: discovered elements merged
// with the scope's saved rows. Items discovered after the scope's last save
// appear with merge defaults so they can be placed and saved.
func (p *Projector) Session(ctx context.Context, scope menu.Scope) (*engine.Session, error) {
	discovered, configs, err := p.load(ctx, scope)
	if err != nil {
		return nil, err
	}
	return p.newSession(discovered, configs), nil
}

// load fetches the discovered elements and the scope's saved rows.
func (p *Projector) load(ctx context.Context, scope menu.Scope) ([]menu.Element, map[string]menu.ItemConfig, error) {
	discovered, err := p.adapter.Discover(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("discover menu elements: %w", err)
	}

	configs, err := p.store.ConfigMap(ctx, scope)
	if err != nil {
		return nil, nil, err
	}
	return discovered, configs, nil
}

func (p *Projector) newSession(elements []menu.Element, configs map[string]menu.ItemConfig) *engine.Session {
	return engine.NewSession(elements, configs,
		engine.WithZones(p.zones, p.baseZones),
		engine.WithDefaultZone(p.defaultZone),
	)
}

// persistedElements narrows the discovered elements to those with a saved
// row. Groups stay for label and icon lookup; an item discovered after the
// scope's last save does not render until the scope is saved again.
func persistedElements(discovered []menu.Element, configs map[string]menu.ItemConfig) []menu.Element {
	out := make([]menu.Element, 0, len(discovered))
	for _, el := range discovered {
		if el.IsGroup() {
			out = append(out, el)
			continue
		}
		if _, ok := configs[el.Key]; ok {
			out = append(out, el)
		}
	}
	return out
}

// ItemsForZone projects one zone for a scope.
//
// A scope with saved rows renders blocks built from those rows joined
// against discovery; items without a row are left out. A scope that has
// never been saved renders the discovery tree unmodified in the default
// zone and nothing elsewhere. Zones other than the default render in top
// mode.
func (p *Projector) ItemsForZone(ctx context.Context, scope menu.Scope, zone string) ([]Node, error) {
	discovered, configs, err := p.load(ctx, scope)
	if err != nil {
		return nil, err
	}

	if len(configs) == 0 {
		if zone != p.defaultZone {
			return nil, nil
		}
		return discoveryNodes(discovered), nil
	}

	session := p.newSession(persistedElements(discovered, configs), configs)
	return blockNodes(session.BlocksForZone(zone), zone == p.defaultZone), nil
}

// Project wraps ItemsForZone in a Tree for serialization.
func (p *Projector) Project(ctx context.Context, scope menu.Scope, zone string) (Tree, error) {
	nodes, err := p.ItemsForZone(ctx, scope, zone)
	if err != nil {
		return Tree{}, err
	}
	return Tree{Zone: zone, Nodes: nodes}, nil
}

// HasItemsInZone reports whether a zone projects at least one node.
func (p *Projector) HasItemsInZone(ctx context.Context, scope menu.Scope, zone string) (bool, error) {
	nodes, err := p.ItemsForZone(ctx, scope, zone)
	if err != nil {
		return false, err
	}
	return len(nodes) > 0, nil
}

// ActiveZones returns the zones to offer for a scope, in configured display
// order: base zones, zones holding at least one visible item, and zones
// flagged always_visible.
func (p *Projector) ActiveZones(ctx context.Context, scope menu.Scope) ([]string, error) {
	discovered, configs, err := p.load(ctx, scope)
	if err != nil {
		return nil, err
	}
	if len(configs) > 0 {
		discovered = persistedElements(discovered, configs)
	}
	session := p.newSession(discovered, configs)

	var active []string
	for _, zone := range p.zones {
		if session.IsZoneVisible(zone) {
			active = append(active, zone)
			continue
		}
		always, err := p.store.IsZoneAlwaysVisible(ctx, scope, zone)
		if err != nil {
			return nil, err
		}
		if always {
			active = append(active, zone)
		}
	}
	return active, nil
}

// blockNodes converts a zone's blocks to tree nodes. Nested keeps group
// blocks as group nodes with children; top mode promotes group members
// inline and drops the group header.
func blockNodes(blocks []engine.Block, nested bool) []Node {
	var nodes []Node
	for _, b := range blocks {
		switch b.Kind {
		case engine.BlockGroup:
			if nested {
				children := make([]Node, 0, len(b.Items))
				for _, it := range b.Items {
					children = append(children, itemNode(it.Key, it.Label, it.Icon))
				}
				nodes = append(nodes, groupNode(b.GroupKey, b.Label, b.Icon, children))
			} else {
				for _, it := range b.Items {
					nodes = append(nodes, itemNode(it.Key, it.Label, it.Icon))
				}
			}
		case engine.BlockStandalone:
			nodes = append(nodes, itemNode(b.Item.Key, b.Item.Label, b.Item.Icon))
		}
	}
	return nodes
}

// discoveryNodes rebuilds the native nesting of the discovered elements.
func discoveryNodes(elements []menu.Element) []Node {
	childrenOf := make(map[string][]Node)
	for _, el := range elements {
		if el.IsGroup() || el.ParentKey == "" {
			continue
		}
		childrenOf[el.ParentKey] = append(childrenOf[el.ParentKey], itemNode(el.Key, el.Label, el.Icon))
	}

	var nodes []Node
	for _, el := range elements {
		switch {
		case el.IsGroup():
			nodes = append(nodes, groupNode(el.Key, el.Label, el.Icon, childrenOf[el.Key]))
		case el.ParentKey == "":
			nodes = append(nodes, itemNode(el.Key, el.Label, el.Icon))
		}
	}
	return nodes
}
