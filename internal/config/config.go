package config

import (
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/stackhaven/zonemenu/internal/menu"
)

// Config is the service configuration.
type Config struct {
	// Layout names the configuration set being served. Multiple layouts can
	// share one database.
	Layout string `yaml:"layout"`

	// PerUser enables per-user configuration scopes. When false every
	// request uses the global scope and user ids are ignored.
	PerUser bool `yaml:"per_user"`

	// Zones is the full placement zone list in display order.
	Zones []string `yaml:"zones"`

	// DefaultZones are the zones shown even while empty.
	DefaultZones []string `yaml:"default_zones"`

	// DefaultZone is where unconfigured items land.
	DefaultZone string `yaml:"default_zone"`

	// ZoneLabels maps zone names to human labels for listings. Zones
	// without an entry are listed under their raw name.
	ZoneLabels map[string]string `yaml:"zone_labels"`

	Database   DatabaseConfig   `yaml:"database"`
	HTTP       HTTPConfig       `yaml:"http"`
	Definition DefinitionConfig `yaml:"definition"`
}

// DatabaseConfig locates the SQLite database.
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// HTTPConfig configures the HTTP server.
type HTTPConfig struct {
	Addr string `yaml:"addr"`
}

// DefinitionConfig locates the menu definition files.
type DefinitionConfig struct {
	Dir string `yaml:"dir"`
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		Layout:       "default",
		Zones:        []string{menu.ZoneSidebar, menu.ZoneTopbar, menu.ZoneBottomBar},
		DefaultZones: []string{menu.ZoneSidebar, menu.ZoneBottomBar},
		DefaultZone:  menu.DefaultZone,
		Database:     DatabaseConfig{Path: "zonemenu.db"},
		HTTP:         HTTPConfig{Addr: ":8080"},
		Definition:   DefinitionConfig{Dir: "menu"},
	}
}

// Load reads a YAML configuration file and merges it over the defaults.
// An empty path returns the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config file %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

func (c Config) validate() error {
	if c.Layout == "" {
		return fmt.Errorf("layout must not be empty")
	}
	if len(c.Zones) == 0 {
		return fmt.Errorf("zones must not be empty")
	}
	if !slices.Contains(c.Zones, c.DefaultZone) {
		return fmt.Errorf("default_zone %q is not in zones", c.DefaultZone)
	}
	for _, zone := range c.DefaultZones {
		if !slices.Contains(c.Zones, zone) {
			return fmt.Errorf("default zone %q is not in zones", zone)
		}
	}
	return nil
}

// ZoneLabel returns the human label for a zone, falling back to the zone
// name.
func (c Config) ZoneLabel(zone string) string {
	if label, ok := c.ZoneLabels[zone]; ok {
		return label
	}
	return zone
}

// Scope resolves the configuration scope for a request. A nil or ignored
// user id yields the global scope; user ids are honored only when PerUser
// is set.
func (c Config) Scope(userID *int64) menu.Scope {
	if !c.PerUser || userID == nil {
		return menu.GlobalScope(c.Layout)
	}
	return menu.UserScope(c.Layout, *userID)
}
