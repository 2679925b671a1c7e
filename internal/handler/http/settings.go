package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/cliniquenova/timeclock-backend-go/internal/domain/settings"
	"github.com/cliniquenova/timeclock-backend-go/internal/handler/http/response"
)

type SettingsHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
}

type SettingsHandlerImpl struct {
	settingsService settings.SettingsService
}

// Get implements SettingsHandler.
func (s *SettingsHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	current, err := s.settingsService.Get(r.Context())
	if err != nil {
		slog.Error("Get settings service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, current)
}

// Update implements SettingsHandler.
func (s *SettingsHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var updateReq settings.UpdateSettingsRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update settings decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Validate DTO
	if err := updateReq.Validate(); err != nil {
		slog.Error("Update settings validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Call service
	updated, err := s.settingsService.Update(r.Context(), updateReq)
	if err != nil {
		slog.Error("Update settings service error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Success response
	slog.Info("Settings updated",
		"default_entry_time", updated.DefaultEntryTime,
		"default_exit_time", updated.DefaultExitTime,
		"lateness_threshold_minutes", updated.LatenessThresholdMinutes)
	response.SuccessWithMessage(w, "Settings updated successfully", updated)
}

func NewSettingsHandler(settingsService settings.SettingsService) SettingsHandler {
	return &SettingsHandlerImpl{
		settingsService: settingsService,
	}
}
