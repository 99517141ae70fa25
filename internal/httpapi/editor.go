package httpapi

import (
	"net/http"

	"github.com/stackhaven/zonemenu/internal/engine"
)

type editorItem struct {
	Key       string `json:"key"`
	Label     string `json:"label"`
	Icon      string `json:"icon,omitempty"`
	SortOrder int    `json:"sort_order"`
}

type editorBlock struct {
	ID    string       `json:"id"`
	Kind  string       `json:"kind"`
	Key   string       `json:"key"`
	Label string       `json:"label"`
	Icon  string       `json:"icon,omitempty"`
	Items []editorItem `json:"items,omitempty"`
}

type editorZone struct {
	Name   string        `json:"name"`
	Label  string        `json:"label"`
	Blocks []editorBlock `json:"blocks"`
}

type hiddenEntry struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Group bool   `json:"group,omitempty"`
}

type editorResponse struct {
	Zones       []editorZone                 `json:"zones"`
	Hidden      []hiddenEntry                `json:"hidden"`
	DefaultZone string                       `json:"default_zone"`
	Settings    map[string]map[string]string `json:"zone_settings,omitempty"`
}

// handleEditor serves the bootstrap payload for the drag-and-drop editor:
// every zone with its current blocks, the hidden tray, and the stored zone
// settings. Block ids are the drag identifiers the save payload refers to.
func (s *Server) handleEditor(w http.ResponseWriter, r *http.Request) {
	scope := s.scope(r)
	ctx := r.Context()

	session, err := s.projector.Session(ctx, scope)
	if err != nil {
		s.logger.Error("load editing session", "layout", scope.Layout, "error", err)
		s.writeJSON(w, http.StatusInternalServerError, errorResponse("failed to load menu configuration"))
		return
	}

	settings, err := s.store.ZoneSettings(ctx, scope)
	if err != nil {
		s.logger.Error("load zone settings", "layout", scope.Layout, "error", err)
		s.writeJSON(w, http.StatusInternalServerError, errorResponse("failed to load zone settings"))
		return
	}

	resp := editorResponse{
		Hidden:      []hiddenEntry{},
		DefaultZone: session.DefaultZone(),
		Settings:    settings,
	}

	for _, zone := range session.Zones() {
		ez := editorZone{
			Name:   zone,
			Label:  s.cfg.ZoneLabel(zone),
			Blocks: []editorBlock{},
		}
		for _, b := range session.BlocksForZone(zone) {
			ez.Blocks = append(ez.Blocks, toEditorBlock(b))
		}
		resp.Zones = append(resp.Zones, ez)
	}

	for _, gk := range session.HiddenGroups() {
		resp.Hidden = append(resp.Hidden, hiddenEntry{Key: gk, Label: session.GroupLabel(gk), Group: true})
	}
	for _, it := range session.HiddenStandaloneItems() {
		resp.Hidden = append(resp.Hidden, hiddenEntry{Key: it.Key, Label: it.Label})
	}

	s.writeJSON(w, http.StatusOK, resp)
}

func toEditorBlock(b engine.Block) editorBlock {
	eb := editorBlock{
		ID:   b.ID(),
		Kind: string(b.Kind),
	}
	switch b.Kind {
	case engine.BlockGroup:
		eb.Key = b.GroupKey
		eb.Label = b.Label
		eb.Icon = b.Icon
		for _, it := range b.Items {
			eb.Items = append(eb.Items, editorItem{
				Key:       it.Key,
				Label:     it.Label,
				Icon:      it.Icon,
				SortOrder: it.SortOrder,
			})
		}
	case engine.BlockStandalone:
		eb.Key = b.Item.Key
		eb.Label = b.Item.Label
		eb.Icon = b.Item.Icon
	}
	return eb
}
