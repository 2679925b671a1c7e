package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/cliniquenova/timeclock-backend-go/internal/domain/backup"
	"github.com/cliniquenova/timeclock-backend-go/internal/handler/http/response"
)

type BackupHandler interface {
	Export(w http.ResponseWriter, r *http.Request)
	Import(w http.ResponseWriter, r *http.Request)
}

type BackupHandlerImpl struct {
	backupService backup.BackupService
}

// Export implements BackupHandler. The snapshot is written as a bare JSON
// document, not the usual response envelope, so the downloaded file can be
// posted back to Import unchanged.
func (b *BackupHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	snapshot, err := b.backupService.Export(r.Context())
	if err != nil {
		slog.Error("Export service error", "error", err)
		response.HandleError(w, err)
		return
	}

	filename := fmt.Sprintf("timeclock-snapshot-%s.json", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(snapshot); err != nil {
		slog.Error("Export encode error", "error", err)
		return
	}

	slog.Info("Snapshot exported", "snapshot_id", snapshot.ID,
		"users", len(snapshot.Users), "employees", len(snapshot.Employees),
		"punches", len(snapshot.Punches))
}

// Import implements BackupHandler.
func (b *BackupHandlerImpl) Import(w http.ResponseWriter, r *http.Request) {
	var snapshot backup.Snapshot

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&snapshot); err != nil {
		slog.Error("Import decode error", "error", err)
		response.BadRequest(w, "Invalid snapshot format", nil)
		return
	}

	// Call service
	if err := b.backupService.Import(r.Context(), snapshot); err != nil {
		slog.Error("Import service error", "error", err, "snapshot_id", snapshot.ID)
		response.HandleError(w, err)
		return
	}

	// Success response
	slog.Info("Snapshot imported", "snapshot_id", snapshot.ID,
		"users", len(snapshot.Users), "employees", len(snapshot.Employees),
		"punches", len(snapshot.Punches))
	response.SuccessWithMessage(w, "Snapshot imported successfully", nil)
}

func NewBackupHandler(backupService backup.BackupService) BackupHandler {
	return &BackupHandlerImpl{
		backupService: backupService,
	}
}
