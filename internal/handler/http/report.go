package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/cliniquenova/timeclock-backend-go/internal/domain/report"
	"github.com/cliniquenova/timeclock-backend-go/internal/handler/http/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ReportHandler interface {
	AttendanceReport(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.ReportService
}

// AttendanceReport implements ReportHandler. Accepts the same query
// parameters as the punch list and streams the result as an .xlsx download.
func (h *ReportHandlerImpl) AttendanceReport(w http.ResponseWriter, r *http.Request) {
	filter, ok := punchFilterFromQuery(w, r)
	if !ok {
		return
	}

	workbook, err := h.reportService.AttendanceWorkbook(r.Context(), filter)
	if err != nil {
		slog.Error("AttendanceReport service error", "error", err)
		response.HandleError(w, err)
		return
	}
	defer workbook.Close()

	filename := fmt.Sprintf("attendance-%s.xlsx", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	if err := workbook.Write(w); err != nil {
		slog.Error("AttendanceReport write error", "error", err)
	}
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &ReportHandlerImpl{
		reportService: reportService,
	}
}
