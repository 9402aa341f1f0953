package httpapi

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// routes handles GET /api/v1/routes (supplemental browsing, §2 component 8
// adjacent): every route in the loaded feed.
func (h *handler) routes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.catalog.Routes())
}

// stops handles GET /api/v1/stops?lat=&lng=&radius_km=: stops within
// radius_km (default 1.0) of the query point, nearest first.
func (h *handler) stops(w http.ResponseWriter, r *http.Request) {
	lat, err := strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	lng, err := strconv.ParseFloat(r.URL.Query().Get("lng"), 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	radiusKm := 1.0
	if raw := r.URL.Query().Get("radius_km"); raw != "" {
		radiusKm, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
	}
	writeJSON(w, http.StatusOK, h.catalog.StopsNear(lat, lng, radiusKm))
}

// stopDetails handles GET /api/v1/stops/{id}: the stop plus every route
// serving it, or 404 if the id is unknown.
func (h *handler) stopDetails(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	stop, routes, ok := h.catalog.StopDetails(id)
	if !ok {
		writeError(w, http.StatusNotFound, errStopNotFound(id))
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"stop":   stop,
		"routes": routes,
	})
}

func errStopNotFound(id string) error {
	return &stopNotFoundError{id: id}
}

type stopNotFoundError struct{ id string }

func (e *stopNotFoundError) Error() string { return "stop not found: " + e.id }
