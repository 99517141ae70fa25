package store

import (
	"context"
	"testing"

	"github.com/stackhaven/zonemenu/internal/menu"
)

func TestZoneSetting_MissingReturnsEmpty(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()
	scope := menu.GlobalScope("default")

	value, err := s.ZoneSetting(ctx, scope, "topbar", menu.SettingAlwaysVisible)
	if err != nil {
		t.Fatalf("ZoneSetting() failed: %v", err)
	}
	if value != "" {
		t.Errorf("value = %q, expected empty for missing setting", value)
	}
}

func TestSaveZoneSettings_InsertThenUpdate(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()
	scope := menu.GlobalScope("default")

	first := []menu.ZoneSetting{
		{Zone: "topbar", Key: menu.SettingAlwaysVisible, Value: "1"},
	}
	if err := s.SaveZoneSettings(ctx, scope, first); err != nil {
		t.Fatalf("first SaveZoneSettings() failed: %v", err)
	}

	value, err := s.ZoneSetting(ctx, scope, "topbar", menu.SettingAlwaysVisible)
	if err != nil {
		t.Fatalf("ZoneSetting() failed: %v", err)
	}
	if value != "1" {
		t.Errorf("value = %q, expected 1", value)
	}

	// Second write overwrites in place rather than inserting a second row.
	second := []menu.ZoneSetting{
		{Zone: "topbar", Key: menu.SettingAlwaysVisible, Value: "0"},
	}
	if err := s.SaveZoneSettings(ctx, scope, second); err != nil {
		t.Fatalf("second SaveZoneSettings() failed: %v", err)
	}

	value, err = s.ZoneSetting(ctx, scope, "topbar", menu.SettingAlwaysVisible)
	if err != nil {
		t.Fatalf("ZoneSetting() after update failed: %v", err)
	}
	if value != "0" {
		t.Errorf("value = %q, expected 0 after update", value)
	}

	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM menu_zone_settings").Scan(&count); err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Errorf("got %d setting rows, expected 1 after upsert", count)
	}
}

func TestSaveZoneSettings_LeavesOtherSettingsAlone(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()
	scope := menu.GlobalScope("default")

	if err := s.SaveZoneSettings(ctx, scope, []menu.ZoneSetting{
		{Zone: "topbar", Key: menu.SettingAlwaysVisible, Value: "1"},
		{Zone: "bottom_bar", Key: menu.SettingAlwaysVisible, Value: "1"},
	}); err != nil {
		t.Fatalf("SaveZoneSettings() failed: %v", err)
	}

	if err := s.SaveZoneSettings(ctx, scope, []menu.ZoneSetting{
		{Zone: "topbar", Key: menu.SettingAlwaysVisible, Value: "0"},
	}); err != nil {
		t.Fatalf("partial SaveZoneSettings() failed: %v", err)
	}

	settings, err := s.ZoneSettings(ctx, scope)
	if err != nil {
		t.Fatalf("ZoneSettings() failed: %v", err)
	}
	if settings["topbar"][menu.SettingAlwaysVisible] != "0" {
		t.Errorf("topbar = %q, expected 0", settings["topbar"][menu.SettingAlwaysVisible])
	}
	if settings["bottom_bar"][menu.SettingAlwaysVisible] != "1" {
		t.Errorf("bottom_bar = %q, expected untouched 1", settings["bottom_bar"][menu.SettingAlwaysVisible])
	}
}

func TestSaveZoneSettings_ScopeIsolation(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	userID, err := s.CreateUser(ctx, "alice")
	if err != nil {
		t.Fatalf("CreateUser() failed: %v", err)
	}

	global := menu.GlobalScope("default")
	user := menu.UserScope("default", userID)

	if err := s.SaveZoneSettings(ctx, global, []menu.ZoneSetting{
		{Zone: "topbar", Key: menu.SettingAlwaysVisible, Value: "1"},
	}); err != nil {
		t.Fatalf("global SaveZoneSettings() failed: %v", err)
	}
	if err := s.SaveZoneSettings(ctx, user, []menu.ZoneSetting{
		{Zone: "topbar", Key: menu.SettingAlwaysVisible, Value: "0"},
	}); err != nil {
		t.Fatalf("user SaveZoneSettings() failed: %v", err)
	}

	globalValue, err := s.ZoneSetting(ctx, global, "topbar", menu.SettingAlwaysVisible)
	if err != nil {
		t.Fatalf("ZoneSetting(global) failed: %v", err)
	}
	if globalValue != "1" {
		t.Errorf("global value = %q, expected 1", globalValue)
	}

	userValue, err := s.ZoneSetting(ctx, user, "topbar", menu.SettingAlwaysVisible)
	if err != nil {
		t.Fatalf("ZoneSetting(user) failed: %v", err)
	}
	if userValue != "0" {
		t.Errorf("user value = %q, expected 0", userValue)
	}
}

func TestIsZoneAlwaysVisible(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()
	scope := menu.GlobalScope("default")

	cases := []struct {
		value string
		want  bool
	}{
		{"1", true},
		{"true", true},
		{"0", false},
		{"false", false},
	}

	for _, tc := range cases {
		if err := s.SaveZoneSettings(ctx, scope, []menu.ZoneSetting{
			{Zone: "topbar", Key: menu.SettingAlwaysVisible, Value: tc.value},
		}); err != nil {
			t.Fatalf("SaveZoneSettings(%q) failed: %v", tc.value, err)
		}

		got, err := s.IsZoneAlwaysVisible(ctx, scope, "topbar")
		if err != nil {
			t.Fatalf("IsZoneAlwaysVisible() failed: %v", err)
		}
		if got != tc.want {
			t.Errorf("value %q: IsZoneAlwaysVisible() = %v, expected %v", tc.value, got, tc.want)
		}
	}

	// Unset zone is not always visible.
	got, err := s.IsZoneAlwaysVisible(ctx, scope, "bottom_bar")
	if err != nil {
		t.Fatalf("IsZoneAlwaysVisible(unset) failed: %v", err)
	}
	if got {
		t.Error("IsZoneAlwaysVisible() = true for unset zone")
	}
}

func TestSaveZoneSettings_EmptyIsNoop(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	if err := s.SaveZoneSettings(ctx, menu.GlobalScope("default"), nil); err != nil {
		t.Errorf("SaveZoneSettings(nil) failed: %v", err)
	}
}
