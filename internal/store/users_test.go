package store

import (
	"context"
	"testing"

	"github.com/stackhaven/zonemenu/internal/menu"
)

func TestCreateUser_ReturnsID(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	id1, err := s.CreateUser(ctx, "alice")
	if err != nil {
		t.Fatalf("CreateUser() failed: %v", err)
	}
	id2, err := s.CreateUser(ctx, "bob")
	if err != nil {
		t.Fatalf("second CreateUser() failed: %v", err)
	}
	if id1 == id2 {
		t.Errorf("ids collide: %d", id1)
	}
}

func TestDeleteUser_CascadesConfigRows(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	userID, err := s.CreateUser(ctx, "alice")
	if err != nil {
		t.Fatalf("CreateUser() failed: %v", err)
	}

	global := menu.GlobalScope("default")
	user := menu.UserScope("default", userID)

	if err := s.SaveConfig(ctx, global, []menu.ConfigRow{row("dashboard", "sidebar", 0, true)}); err != nil {
		t.Fatalf("global SaveConfig() failed: %v", err)
	}
	if err := s.SaveConfig(ctx, user, []menu.ConfigRow{row("dashboard", "topbar", 0, true)}); err != nil {
		t.Fatalf("user SaveConfig() failed: %v", err)
	}
	if err := s.SaveZoneSettings(ctx, user, []menu.ZoneSetting{
		{Zone: "topbar", Key: menu.SettingAlwaysVisible, Value: "1"},
	}); err != nil {
		t.Fatalf("user SaveZoneSettings() failed: %v", err)
	}

	if err := s.DeleteUser(ctx, userID); err != nil {
		t.Fatalf("DeleteUser() failed: %v", err)
	}

	userRows, err := s.ConfigRows(ctx, user)
	if err != nil {
		t.Fatalf("ConfigRows(user) failed: %v", err)
	}
	if len(userRows) != 0 {
		t.Errorf("user config rows survived cascade: %+v", userRows)
	}

	userSettings, err := s.ZoneSettings(ctx, user)
	if err != nil {
		t.Fatalf("ZoneSettings(user) failed: %v", err)
	}
	if len(userSettings) != 0 {
		t.Errorf("user zone settings survived cascade: %+v", userSettings)
	}

	// Global scope is untouched.
	has, err := s.HasConfig(ctx, global)
	if err != nil {
		t.Fatalf("HasConfig(global) failed: %v", err)
	}
	if !has {
		t.Error("cascade removed global rows")
	}
}
