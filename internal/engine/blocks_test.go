package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stackhaven/zonemenu/internal/menu"
)

func TestBlocksForZone_StandaloneOrder(t *testing.T) {
	// Three standalone items A(0), B(10), C(20) in the sidebar.
	s := NewSession([]menu.Element{
		{Key: "a", Label: "A", Type: menu.TypeItem, SortIndex: 0},
		{Key: "b", Label: "B", Type: menu.TypeItem, SortIndex: 1},
		{Key: "c", Label: "C", Type: menu.TypeItem, SortIndex: 2},
	}, nil)

	blocks := s.BlocksForZone(menu.ZoneSidebar)
	require.Len(t, blocks, 3)
	assert.Equal(t, "a", blocks[0].Item.Key)
	assert.Equal(t, "b", blocks[1].Item.Key)
	assert.Equal(t, "c", blocks[2].Item.Key)
	for _, b := range blocks {
		assert.Equal(t, BlockStandalone, b.Kind)
	}
}

func TestBlocksForZone_GroupBlock(t *testing.T) {
	s := newTestSession(nil)

	blocks := s.BlocksForZone(menu.ZoneSidebar)
	require.Len(t, blocks, 3)

	group := blocks[1]
	assert.Equal(t, BlockGroup, group.Kind)
	assert.Equal(t, "Reports", group.Label)
	assert.Equal(t, "chart", group.Icon)
	require.Len(t, group.Items, 2)
	assert.Equal(t, "app.Sales", group.Items[0].Key)
	assert.Equal(t, "app.Costs", group.Items[1].Key)
	assert.Equal(t, group.Items[0].SortOrder, group.SortOrder, "group sorts at its minimum member order")
}

func TestBlocksForZone_InterleavesByMinOrder(t *testing.T) {
	// Put the standalone settings item between the two group members'
	// orders: the group still sorts by its minimum.
	s := newTestSession(map[string]menu.ItemConfig{
		"app.Dashboard": {ItemKey: "app.Dashboard", Zone: menu.ZoneSidebar, SortOrder: 50, Visible: true},
		"app.Sales":     {ItemKey: "app.Sales", Zone: menu.ZoneSidebar, SortOrder: 10, Visible: true, ParentKey: reportsKey},
		"app.Costs":     {ItemKey: "app.Costs", Zone: menu.ZoneSidebar, SortOrder: 40, Visible: true, ParentKey: reportsKey},
		"app.Settings":  {ItemKey: "app.Settings", Zone: menu.ZoneSidebar, SortOrder: 20, Visible: true},
	})

	blocks := s.BlocksForZone(menu.ZoneSidebar)
	require.Len(t, blocks, 3)
	assert.Equal(t, BlockGroup, blocks[0].Kind)
	assert.Equal(t, "app.Settings", blocks[1].Item.Key)
	assert.Equal(t, "app.Dashboard", blocks[2].Item.Key)
}

func TestBlocksForZone_HiddenItemsExcluded(t *testing.T) {
	s := newTestSession(nil)
	s.ToggleVisible("app.Sales")

	blocks := s.BlocksForZone(menu.ZoneSidebar)
	require.Len(t, blocks, 3)
	group := blocks[1]
	require.Len(t, group.Items, 1)
	assert.Equal(t, "app.Costs", group.Items[0].Key)
}

func TestBlocksForZone_FullyHiddenGroupGone(t *testing.T) {
	s := newTestSession(nil)
	s.SetGroupVisible(reportsKey, false)

	blocks := s.BlocksForZone(menu.ZoneSidebar)
	require.Len(t, blocks, 2)
	for _, b := range blocks {
		assert.Equal(t, BlockStandalone, b.Kind)
	}
}

func TestBlocksForZone_UnresolvableGroupDropped(t *testing.T) {
	// An item parented to a group that discovery no longer returns: the
	// whole block is dropped, because a group block needs a label.
	s := NewSession([]menu.Element{
		{Key: "a", Label: "A", Type: menu.TypeItem, SortIndex: 0},
	}, map[string]menu.ItemConfig{
		"a": {ItemKey: "a", Zone: menu.ZoneSidebar, SortOrder: 0, Visible: true, ParentKey: "group:gone"},
	})

	assert.Empty(t, s.BlocksForZone(menu.ZoneSidebar))
}

func TestBlocksForZone_TiesKeepInputOrder(t *testing.T) {
	s := NewSession([]menu.Element{
		{Key: "a", Label: "A", Type: menu.TypeItem, SortIndex: 0},
		{Key: "b", Label: "B", Type: menu.TypeItem, SortIndex: 1},
	}, map[string]menu.ItemConfig{
		"a": {ItemKey: "a", Zone: menu.ZoneSidebar, SortOrder: 5, Visible: true},
		"b": {ItemKey: "b", Zone: menu.ZoneSidebar, SortOrder: 5, Visible: true},
	})

	blocks := s.BlocksForZone(menu.ZoneSidebar)
	require.Len(t, blocks, 2)
	assert.Equal(t, "a", blocks[0].Item.Key)
	assert.Equal(t, "b", blocks[1].Item.Key)
}

func TestBlockID(t *testing.T) {
	group := Block{Kind: BlockGroup, GroupKey: "group:reports"}
	assert.Equal(t, "g-group:reports", group.ID())

	standalone := Block{Kind: BlockStandalone, Item: EditableItem{Key: "app.Dashboard"}}
	assert.Equal(t, "s-app.Dashboard", standalone.ID())

	kind, key, ok := parseBlockID("g-group:reports")
	require.True(t, ok)
	assert.Equal(t, BlockGroup, kind)
	assert.Equal(t, "group:reports", key)

	_, _, ok = parseBlockID("x-bogus")
	assert.False(t, ok)
}
