package cli

import (
	"github.com/stackhaven/zonemenu/internal/config"
	"github.com/stackhaven/zonemenu/internal/discovery"
	"github.com/stackhaven/zonemenu/internal/menu"
	"github.com/stackhaven/zonemenu/internal/render"
	"github.com/stackhaven/zonemenu/internal/store"
)

// environment bundles the service collaborators a command needs: the loaded
// configuration, the open store and the projector over both.
type environment struct {
	cfg       config.Config
	store     *store.Store
	projector *render.Projector
}

// openEnvironment loads the configuration and opens the database. The
// returned cleanup closes the store.
func openEnvironment(opts *RootOptions) (*environment, func(), error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, nil, WrapExitError(ExitCommandError, "failed to load config", err)
	}

	st, err := store.Open(cfg.Database.Path)
	if err != nil {
		return nil, nil, WrapExitError(ExitCommandError, "failed to open database", err)
	}

	projector := render.New(st, discovery.NewLoader(cfg.Definition.Dir),
		render.WithZones(cfg.Zones, cfg.DefaultZones),
		render.WithDefaultZone(cfg.DefaultZone),
	)

	cleanup := func() { _ = st.Close() }
	return &environment{cfg: cfg, store: st, projector: projector}, cleanup, nil
}

// scopeFor resolves the scope for a command's --user flag. Zero means no
// user was given; user ids start at 1.
func (e *environment) scopeFor(userID int64) menu.Scope {
	if userID <= 0 {
		return e.cfg.Scope(nil)
	}
	return e.cfg.Scope(&userID)
}
