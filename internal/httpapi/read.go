package httpapi

import (
	"net/http"
	"slices"

	"github.com/go-chi/chi/v5"
)

type zoneInfo struct {
	Name  string `json:"name"`
	Label string `json:"label"`
}

type zonesResponse struct {
	Zones []zoneInfo `json:"zones"`
}

// handleZones lists the active zones for the request's scope with their
// configured labels.
func (s *Server) handleZones(w http.ResponseWriter, r *http.Request) {
	scope := s.scope(r)

	active, err := s.projector.ActiveZones(r.Context(), scope)
	if err != nil {
		s.logger.Error("list active zones", "layout", scope.Layout, "error", err)
		s.writeJSON(w, http.StatusInternalServerError, errorResponse("failed to list zones"))
		return
	}

	resp := zonesResponse{Zones: []zoneInfo{}}
	for _, zone := range active {
		resp.Zones = append(resp.Zones, zoneInfo{Name: zone, Label: s.cfg.ZoneLabel(zone)})
	}
	s.writeJSON(w, http.StatusOK, resp)
}

// handleRender serves the projected tree of one zone.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	zone := chi.URLParam(r, "zone")
	if !slices.Contains(s.cfg.Zones, zone) {
		s.writeJSON(w, http.StatusNotFound, errorResponse("unknown zone"))
		return
	}

	scope := s.scope(r)

	tree, err := s.projector.Project(r.Context(), scope, zone)
	if err != nil {
		s.logger.Error("render zone", "layout", scope.Layout, "zone", zone, "error", err)
		s.writeJSON(w, http.StatusInternalServerError, errorResponse("failed to render zone"))
		return
	}

	s.writeJSON(w, http.StatusOK, tree)
}
