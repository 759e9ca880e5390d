package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/baro-weather/baro/internal/report"
	"github.com/baro-weather/baro/internal/scoring"
	"github.com/baro-weather/baro/internal/store"
)

// ReportGenerator produces and persists one narrative report.
type ReportGenerator interface {
	Generate(ctx context.Context, req report.Request) (*store.Report, error)
}

type ReportsHandler struct {
	generator ReportGenerator
	store     store.Store
	maxDays   int
}

func NewReportsHandler(g ReportGenerator, s store.Store, maxDays int) *ReportsHandler {
	return &ReportsHandler{generator: g, store: s, maxDays: maxDays}
}

type CreateReportRequest struct {
	UserID       string   `json:"user_id"`
	LocationName string   `json:"location_name"`
	Lat          float64  `json:"lat"`
	Lon          float64  `json:"lon"`
	Days         int      `json:"days,omitempty"`
	Activities   []string `json:"activities,omitempty"`
	Language     string   `json:"language,omitempty"`
}

func (h *ReportsHandler) Create(w http.ResponseWriter, r *http.Request) {
	if h.generator == nil {
		writeError(w, http.StatusServiceUnavailable, "report generation not configured")
		return
	}

	var req CreateReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.UserID == "" || req.LocationName == "" {
		writeError(w, http.StatusBadRequest, "user_id and location_name required")
		return
	}
	if req.Lat < -90 || req.Lat > 90 || req.Lon < -180 || req.Lon > 180 {
		writeError(w, http.StatusBadRequest, "coordinates out of range")
		return
	}
	if req.Days > h.maxDays {
		req.Days = h.maxDays
	}

	activities := make([]scoring.ActivityType, 0, len(req.Activities))
	for _, name := range req.Activities {
		a, ok := scoring.ParseActivity(name)
		if !ok {
			writeError(w, http.StatusBadRequest, "unknown activity "+name)
			return
		}
		activities = append(activities, a)
	}

	rep, err := h.generator.Generate(r.Context(), report.Request{
		UserID:       req.UserID,
		LocationName: req.LocationName,
		Lat:          req.Lat,
		Lon:          req.Lon,
		Days:         req.Days,
		Activities:   activities,
		Language:     req.Language,
	})
	if err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, rep)
}

func (h *ReportsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid report id")
		return
	}

	rep, err := h.store.GetReport(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if rep == nil {
		writeError(w, http.StatusNotFound, "report not found")
		return
	}
	writeJSON(w, http.StatusOK, rep)
}

func (h *ReportsHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		writeError(w, http.StatusBadRequest, "user_id required")
		return
	}
	h.list(w, r, userID)
}

// ListAll is the admin variant: no user scoping.
func (h *ReportsHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, "")
}

func (h *ReportsHandler) list(w http.ResponseWriter, r *http.Request, userID string) {
	filter := store.ReportFilter{UserID: userID, Limit: 20}
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			filter.Limit = n
		}
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			filter.Offset = n
		}
	}

	reports, err := h.store.ListReports(r.Context(), filter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if reports == nil {
		reports = []*store.Report{}
	}
	writeJSON(w, http.StatusOK, reports)
}
