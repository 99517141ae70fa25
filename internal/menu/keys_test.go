package menu

import (
	"strings"
	"testing"
)

func TestGroupKey_Deterministic(t *testing.T) {
	a := GroupKey("Reports")
	b := GroupKey("Reports")
	if a != b {
		t.Errorf("GroupKey not deterministic: %q vs %q", a, b)
	}
}

func TestGroupKey_Format(t *testing.T) {
	key := GroupKey("Sales Reports")
	if !strings.HasPrefix(key, "group:sales-reports:") {
		t.Errorf("key = %q, want prefix %q", key, "group:sales-reports:")
	}
	parts := strings.Split(key, ":")
	if len(parts) != 3 {
		t.Fatalf("key = %q, want 3 colon-separated parts", key)
	}
	if len(parts[2]) != 32 {
		t.Errorf("digest length = %d, want 32", len(parts[2]))
	}
}

func TestGroupKey_LabelSensitive(t *testing.T) {
	// The documented limitation: a rename changes the key.
	if GroupKey("Reports") == GroupKey("Reporting") {
		t.Error("different labels must produce different keys")
	}
}

func TestGroupKey_NFCNormalized(t *testing.T) {
	// U+00E9 vs e + U+0301 combining acute: same text after NFC.
	composed := "Café"
	decomposed := "Café"
	if GroupKey(composed) != GroupKey(decomposed) {
		t.Error("NFC-equivalent labels must produce the same key")
	}
}

func TestExplicitGroupKey(t *testing.T) {
	if got := ExplicitGroupKey("Main Reports"); got != "group:main-reports" {
		t.Errorf("ExplicitGroupKey = %q, want %q", got, "group:main-reports")
	}
}

func TestFallbackKey_Unique(t *testing.T) {
	a := FallbackKey()
	b := FallbackKey()
	if a == b {
		t.Error("fallback keys must be unique")
	}
	if !strings.HasPrefix(a, "unknown:") {
		t.Errorf("fallback key = %q, want prefix %q", a, "unknown:")
	}
}

func TestSlug(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Reports", "reports"},
		{"Sales & Marketing", "sales-marketing"},
		{"  spaced  out  ", "spaced-out"},
		{"Already-Sluggy", "already-sluggy"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Slug(tt.in); got != tt.want {
			t.Errorf("Slug(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
