package menu

import "testing"

func TestConfigRow_RoundTrip(t *testing.T) {
	parent := "group:reports"
	row := ConfigRow{
		Key:       "app.pages.Invoices",
		ParentKey: &parent,
		Zone:      ZoneTopbar,
		SortOrder: 4,
		Visible:   true,
	}

	cfg := row.Config()
	if cfg.ParentKey != parent {
		t.Errorf("ParentKey = %q, want %q", cfg.ParentKey, parent)
	}

	back := cfg.Row()
	if back.ParentKey == nil || *back.ParentKey != parent {
		t.Errorf("Row().ParentKey = %v, want %q", back.ParentKey, parent)
	}
	if back != row && *back.ParentKey != *row.ParentKey {
		t.Errorf("round trip mismatch: %+v vs %+v", back, row)
	}
}

func TestConfigRow_NilParentStaysNil(t *testing.T) {
	row := ConfigRow{Key: "a", Zone: ZoneSidebar}
	cfg := row.Config()
	if cfg.ParentKey != "" {
		t.Errorf("ParentKey = %q, want empty", cfg.ParentKey)
	}
	if back := cfg.Row(); back.ParentKey != nil {
		t.Errorf("Row().ParentKey = %v, want nil", back.ParentKey)
	}
}

func TestConfigRow_EmptyZoneDefaults(t *testing.T) {
	row := ConfigRow{Key: "a"}
	if got := row.Config().Zone; got != DefaultZone {
		t.Errorf("zone = %q, want %q", got, DefaultZone)
	}
}

func TestZoneSetting_Bool(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"1", true},
		{"true", true},
		{"0", false},
		{"", false},
		{"yes", false},
	}
	for _, tt := range tests {
		s := ZoneSetting{Value: tt.value}
		if got := s.Bool(); got != tt.want {
			t.Errorf("Bool(%q) = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestEncodeBool(t *testing.T) {
	if EncodeBool(true) != "1" || EncodeBool(false) != "0" {
		t.Error("EncodeBool must encode as \"1\"/\"0\"")
	}
}
