package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/baro-weather/baro/internal/geocode"
	"github.com/baro-weather/baro/internal/observability"
	"github.com/baro-weather/baro/internal/store"
)

type LocationsHandler struct {
	geocoder geocode.Geocoder
	store    store.Store
	metrics  *observability.Metrics
}

func NewLocationsHandler(g geocode.Geocoder, s store.Store, m *observability.Metrics) *LocationsHandler {
	return &LocationsHandler{geocoder: g, store: s, metrics: m}
}

func (h *LocationsHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		writeError(w, http.StatusBadRequest, "query parameter q required")
		return
	}
	lang := r.URL.Query().Get("lang")
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		limit, _ = strconv.Atoi(v)
	}

	places, err := h.geocoder.Search(r.Context(), query, lang, limit)
	if err != nil {
		h.metrics.GeocodeRequests.WithLabelValues("error").Inc()
		writeError(w, http.StatusBadGateway, "geocoding failed")
		return
	}
	if len(places) == 0 {
		h.metrics.GeocodeRequests.WithLabelValues("empty").Inc()
		writeJSON(w, http.StatusOK, []geocode.Place{})
		return
	}
	h.metrics.GeocodeRequests.WithLabelValues("success").Inc()
	writeJSON(w, http.StatusOK, places)
}

func (h *LocationsHandler) ListFavorites(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		writeError(w, http.StatusBadRequest, "user_id required")
		return
	}

	favorites, err := h.store.ListFavorites(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if favorites == nil {
		favorites = []*store.FavoriteLocation{}
	}
	writeJSON(w, http.StatusOK, favorites)
}

type CreateFavoriteRequest struct {
	UserID      string  `json:"user_id"`
	Name        string  `json:"name"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	CountryCode string  `json:"country_code,omitempty"`
}

func (h *LocationsHandler) CreateFavorite(w http.ResponseWriter, r *http.Request) {
	var req CreateFavoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.UserID == "" || req.Name == "" {
		writeError(w, http.StatusBadRequest, "user_id and name required")
		return
	}
	if req.Lat < -90 || req.Lat > 90 || req.Lon < -180 || req.Lon > 180 {
		writeError(w, http.StatusBadRequest, "coordinates out of range")
		return
	}

	fav := &store.FavoriteLocation{
		UserID:      req.UserID,
		Name:        req.Name,
		Lat:         req.Lat,
		Lon:         req.Lon,
		CountryCode: req.CountryCode,
	}
	if err := h.store.CreateFavorite(r.Context(), fav); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, fav)
}

func (h *LocationsHandler) DeleteFavorite(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid favorite id")
		return
	}
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		writeError(w, http.StatusBadRequest, "user_id required")
		return
	}

	if err := h.store.DeleteFavorite(r.Context(), userID, id); err != nil {
		writeError(w, http.StatusNotFound, "favorite not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
