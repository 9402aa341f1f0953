package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/antigravity/transit-router/internal/config"
	"github.com/antigravity/transit-router/internal/gtfs"
	"github.com/antigravity/transit-router/internal/gtfsio"
	"github.com/antigravity/transit-router/internal/router"
)

func errBadPreset(name string) error {
	return fmt.Errorf("unknown preset %q", name)
}

// coordinate is the wire shape for a bare lat/lng pair.
type coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// namedLocation is the wire shape for a destination in a one-to-many body.
type namedLocation struct {
	ID  string  `json:"id"`
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func (l namedLocation) toLocation() gtfs.Location {
	return gtfs.Location{ID: l.ID, Lat: l.Lat, Lng: l.Lng}
}

type routeRequest struct {
	Origin        coordinate          `json:"origin"`
	DepartureTime string              `json:"departureTime"`
	Destination   coordinate          `json:"destination"`
	Options       config.QueryOptions `json:"options"`
}

type oneToManyRequest struct {
	Origin        coordinate          `json:"origin"`
	DepartureTime string              `json:"departureTime"`
	Destinations  []namedLocation     `json:"destinations"`
	Options       config.QueryOptions `json:"options"`
}

type oneToPresetRequest struct {
	Origin        coordinate          `json:"origin"`
	DepartureTime string              `json:"departureTime"`
	Preset        string              `json:"preset"`
	Options       config.QueryOptions `json:"options"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

// route handles POST /route (§6): a single origin/destination coordinate
// pair, returning a reconstructed Route or a null body when unreachable
// (§4.8 — unreachable is not an error).
func (h *handler) route(w http.ResponseWriter, r *http.Request) {
	var req routeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	depSecs, err := gtfsio.ParseClock(req.DepartureTime)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	origin := gtfs.Location{ID: "origin", Lat: req.Origin.Lat, Lng: req.Origin.Lng}
	destination := gtfs.Location{ID: "destination", Lat: req.Destination.Lat, Lng: req.Destination.Lng}

	result, err := router.OneToOne(h.app.Feed, h.app.WaterFilter, origin, depSecs, destination, req.Options)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// oneToMany handles POST /one-to-many (§6): one origin against an
// arbitrary destination list, returning a travel-time map.
func (h *handler) oneToMany(w http.ResponseWriter, r *http.Request) {
	var req oneToManyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	depSecs, err := gtfsio.ParseClock(req.DepartureTime)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	destinations := make([]gtfs.Location, 0, len(req.Destinations))
	for _, d := range req.Destinations {
		destinations = append(destinations, d.toLocation())
	}

	origin := gtfs.Location{ID: "origin", Lat: req.Origin.Lat, Lng: req.Origin.Lng}
	times, err := router.OneToMany(h.app.Feed, h.app.WaterFilter, origin, depSecs, destinations, req.Options)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, router.JSONSafeTimes(times))
}

// oneToPreset handles POST /one-to-preset (§6): one origin against a
// named, pre-augmented preset destination set.
func (h *handler) oneToPreset(w http.ResponseWriter, r *http.Request) {
	var req oneToPresetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	preset, ok := h.app.Presets[req.Preset]
	if !ok {
		writeError(w, http.StatusBadRequest, errBadPreset(req.Preset))
		return
	}

	depSecs, err := gtfsio.ParseClock(req.DepartureTime)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	origin := gtfs.Location{ID: "origin", Lat: req.Origin.Lat, Lng: req.Origin.Lng}
	times, err := router.OneToManyPreset(h.app.Feed, h.app.WaterFilter, preset, origin, depSecs, req.Options)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, router.JSONSafeTimes(times))
}
