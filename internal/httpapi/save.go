package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/stackhaven/zonemenu/internal/menu"
)

// saveResponse is the save endpoint's fixed response shape. The editing
// client surfaces Message keyed on MessageType ("success" or "error").
type saveResponse struct {
	Message     string `json:"message"`
	MessageType string `json:"messageType"`
}

func successResponse(message string) saveResponse {
	return saveResponse{Message: message, MessageType: "success"}
}

func errorResponse(message string) saveResponse {
	return saveResponse{Message: message, MessageType: "error"}
}

// handleSave replaces a scope's configuration with the submitted rows.
//
// Form fields: "items" is the full flat row list as a JSON array (the
// replace-all contract: what is posted is the new truth, omitted rows are
// deleted), "zone_settings" is an optional JSON object of
// {zone: {key: bool}} flags. A malformed items payload is rejected before
// anything is written.
func (s *Server) handleSave(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse("invalid form data"))
		return
	}

	var rows []menu.ConfigRow
	if err := json.Unmarshal([]byte(r.PostFormValue("items")), &rows); err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse("invalid menu items payload"))
		return
	}

	settings, err := parseZoneSettings(r.PostFormValue("zone_settings"))
	if err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse("invalid zone settings payload"))
		return
	}

	scope := s.scope(r)

	if err := s.store.SaveConfig(r.Context(), scope, rows); err != nil {
		s.logger.Error("save menu configuration", "layout", scope.Layout, "error", err)
		s.writeJSON(w, http.StatusInternalServerError, errorResponse("failed to save menu configuration"))
		return
	}

	if err := s.store.SaveZoneSettings(r.Context(), scope, settings); err != nil {
		s.logger.Error("save zone settings", "layout", scope.Layout, "error", err)
		s.writeJSON(w, http.StatusInternalServerError, errorResponse("failed to save zone settings"))
		return
	}

	s.writeJSON(w, http.StatusOK, successResponse("menu configuration saved"))
}

// parseZoneSettings decodes the {zone: {key: bool}} form field. An empty
// field means no settings were touched.
func parseZoneSettings(raw string) ([]menu.ZoneSetting, error) {
	if raw == "" {
		return nil, nil
	}

	var flags map[string]map[string]bool
	if err := json.Unmarshal([]byte(raw), &flags); err != nil {
		return nil, err
	}

	var settings []menu.ZoneSetting
	for zone, keys := range flags {
		for key, value := range keys {
			settings = append(settings, menu.ZoneSetting{
				Zone:  zone,
				Key:   key,
				Value: menu.EncodeBool(value),
			})
		}
	}
	return settings, nil
}
