package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/baro-weather/baro/internal/events"
	"github.com/baro-weather/baro/internal/i18n"
	"github.com/baro-weather/baro/internal/scoring"
	"github.com/baro-weather/baro/internal/store"
)

type SettingsHandler struct {
	store  store.Store
	events events.Client
	langs  *i18n.Bundle
}

func NewSettingsHandler(s store.Store, ev events.Client, langs *i18n.Bundle) *SettingsHandler {
	return &SettingsHandler{store: s, events: ev, langs: langs}
}

func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "user_id")

	settings, err := h.store.GetSettings(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if settings == nil {
		settings = store.DefaultSettings(userID)
	}
	writeJSON(w, http.StatusOK, settings)
}

var validUnits = map[string]map[string]bool{
	"temperature": {"celsius": true, "fahrenheit": true},
	"wind":        {"kmh": true, "ms": true, "bft": true, "mph": true},
}

func (h *SettingsHandler) Put(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "user_id")

	var settings store.UserSettings
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	settings.UserID = userID

	if settings.Language == "" {
		settings.Language = "en"
	}
	if !h.langs.Supported(settings.Language) {
		writeError(w, http.StatusBadRequest, "unsupported language "+settings.Language)
		return
	}
	if settings.TemperatureUnit == "" {
		settings.TemperatureUnit = "celsius"
	}
	if !validUnits["temperature"][settings.TemperatureUnit] {
		writeError(w, http.StatusBadRequest, "invalid temperature_unit")
		return
	}
	if settings.WindUnit == "" {
		settings.WindUnit = "kmh"
	}
	if !validUnits["wind"][settings.WindUnit] {
		writeError(w, http.StatusBadRequest, "invalid wind_unit")
		return
	}
	for _, name := range settings.DefaultActivities {
		if _, ok := scoring.ParseActivity(name); !ok {
			writeError(w, http.StatusBadRequest, "unknown activity "+name)
			return
		}
	}

	settings.UpdatedAt = time.Now()
	if err := h.store.SaveSettings(r.Context(), &settings); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if h.events != nil {
		evt := events.SettingsUpdatedEvent{
			UserID:    settings.UserID,
			Language:  settings.Language,
			UpdatedAt: settings.UpdatedAt,
		}
		// Publish failure never fails the save.
		_ = h.events.Publish(events.SubjectSettingsUpdated(settings.UserID), evt)
	}

	writeJSON(w, http.StatusOK, &settings)
}
