package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/cliniquenova/timeclock-backend-go/internal/domain/attendance"
	"github.com/cliniquenova/timeclock-backend-go/internal/handler/http/response"
	"github.com/cliniquenova/timeclock-backend-go/internal/pkg/validator"
)

type AttendanceHandler interface {
	ClockIn(w http.ResponseWriter, r *http.Request)
	ClockOut(w http.ResponseWriter, r *http.Request)
	ListPunches(w http.ResponseWriter, r *http.Request)
	WorkHours(w http.ResponseWriter, r *http.Request)
	MissingPunches(w http.ResponseWriter, r *http.Request)
	MarkAbsence(w http.ResponseWriter, r *http.Request)
	ListAbsences(w http.ResponseWriter, r *http.Request)
	ListLateness(w http.ResponseWriter, r *http.Request)
	LatenessStats(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

// ClockIn implements AttendanceHandler.
func (a *AttendanceHandlerImpl) ClockIn(w http.ResponseWriter, r *http.Request) {
	var clockReq attendance.ClockRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&clockReq); err != nil {
		slog.Error("ClockIn decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Validate DTO
	if err := clockReq.Validate(); err != nil {
		slog.Error("ClockIn validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Call service
	punch, err := a.attendanceService.ClockIn(r.Context(), clockReq)
	if err != nil {
		slog.Error("ClockIn service error", "error", err, "employee_id", clockReq.EmployeeID)
		response.HandleError(w, err)
		return
	}

	// Success response
	slog.Info("Employee clocked in", "employee_id", punch.EmployeeID, "time", punch.Time)
	response.Created(w, "Entry punch recorded", punch)
}

// ClockOut implements AttendanceHandler.
func (a *AttendanceHandlerImpl) ClockOut(w http.ResponseWriter, r *http.Request) {
	var clockReq attendance.ClockRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&clockReq); err != nil {
		slog.Error("ClockOut decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Validate DTO
	if err := clockReq.Validate(); err != nil {
		slog.Error("ClockOut validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Call service
	punch, err := a.attendanceService.ClockOut(r.Context(), clockReq)
	if err != nil {
		slog.Error("ClockOut service error", "error", err, "employee_id", clockReq.EmployeeID)
		response.HandleError(w, err)
		return
	}

	// Success response
	slog.Info("Employee clocked out", "employee_id", punch.EmployeeID, "time", punch.Time)
	response.Created(w, "Exit punch recorded", punch)
}

// ListPunches implements AttendanceHandler.
func (a *AttendanceHandlerImpl) ListPunches(w http.ResponseWriter, r *http.Request) {
	filter, ok := punchFilterFromQuery(w, r)
	if !ok {
		return
	}

	punches, err := a.attendanceService.ListPunches(r.Context(), filter)
	if err != nil {
		slog.Error("ListPunches service error", "error", err)
		response.HandleError(w, err)
		return
	}

	results := make([]attendance.PunchResponse, 0, len(punches))
	for _, p := range punches {
		results = append(results, attendance.ToPunchResponse(p))
	}

	response.Success(w, results)
}

// WorkHours implements AttendanceHandler.
func (a *AttendanceHandlerImpl) WorkHours(w http.ResponseWriter, r *http.Request) {
	employeeID, err := strconv.Atoi(r.URL.Query().Get("employee_id"))
	if err != nil {
		response.BadRequest(w, "Invalid employee_id", nil)
		return
	}

	date := r.URL.Query().Get("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	} else if _, ok := validator.IsValidDate(date); !ok {
		response.BadRequest(w, "Invalid date, expected YYYY-MM-DD", nil)
		return
	}

	policy := attendance.HoursPolicy(r.URL.Query().Get("policy"))
	if policy != "" && !attendance.ValidHoursPolicy(policy) {
		response.BadRequest(w, "Invalid policy, expected net or gross", nil)
		return
	}

	hours, err := a.attendanceService.WorkHours(r.Context(), employeeID, date, policy)
	if err != nil {
		slog.Error("WorkHours service error", "error", err, "employee_id", employeeID, "date", date)
		response.HandleError(w, err)
		return
	}

	response.Success(w, hours)
}

// MissingPunches implements AttendanceHandler.
func (a *AttendanceHandlerImpl) MissingPunches(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	} else if _, ok := validator.IsValidDate(date); !ok {
		response.BadRequest(w, "Invalid date, expected YYYY-MM-DD", nil)
		return
	}

	missing, err := a.attendanceService.MissingPunches(r.Context(), date)
	if err != nil {
		slog.Error("MissingPunches service error", "error", err, "date", date)
		response.HandleError(w, err)
		return
	}

	response.Success(w, missing)
}

// MarkAbsence implements AttendanceHandler.
func (a *AttendanceHandlerImpl) MarkAbsence(w http.ResponseWriter, r *http.Request) {
	var absenceReq attendance.MarkAbsenceRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&absenceReq); err != nil {
		slog.Error("MarkAbsence decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Validate DTO
	if err := absenceReq.Validate(); err != nil {
		slog.Error("MarkAbsence validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Call service
	absence, err := a.attendanceService.MarkAbsence(r.Context(), absenceReq)
	if err != nil {
		slog.Error("MarkAbsence service error", "error", err, "employee_id", absenceReq.EmployeeID)
		response.HandleError(w, err)
		return
	}

	// Success response
	slog.Info("Absence recorded", "employee_id", absence.EmployeeID, "date", absence.Date, "type", absence.Type)
	response.Created(w, "Absence recorded", attendance.ToAbsenceResponse(absence))
}

// ListAbsences implements AttendanceHandler.
func (a *AttendanceHandlerImpl) ListAbsences(w http.ResponseWriter, r *http.Request) {
	var filter attendance.AbsenceFilter

	if raw := r.URL.Query().Get("employee_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			response.BadRequest(w, "Invalid employee_id", nil)
			return
		}
		filter.EmployeeID = &id
	}

	if date := r.URL.Query().Get("date"); date != "" {
		if _, ok := validator.IsValidDate(date); !ok {
			response.BadRequest(w, "Invalid date, expected YYYY-MM-DD", nil)
			return
		}
		filter.Date = &date
	}

	absences, err := a.attendanceService.ListAbsences(r.Context(), filter)
	if err != nil {
		slog.Error("ListAbsences service error", "error", err)
		response.HandleError(w, err)
		return
	}

	results := make([]attendance.AbsenceResponse, 0, len(absences))
	for _, ab := range absences {
		results = append(results, attendance.ToAbsenceResponse(ab))
	}

	response.Success(w, results)
}

// ListLateness implements AttendanceHandler.
func (a *AttendanceHandlerImpl) ListLateness(w http.ResponseWriter, r *http.Request) {
	filter, ok := latenessFilterFromQuery(w, r)
	if !ok {
		return
	}

	events, err := a.attendanceService.ListLateness(r.Context(), filter)
	if err != nil {
		slog.Error("ListLateness service error", "error", err)
		response.HandleError(w, err)
		return
	}

	results := make([]attendance.LatenessEventResponse, 0, len(events))
	for _, e := range events {
		results = append(results, attendance.ToLatenessResponse(e))
	}

	response.Success(w, results)
}

// LatenessStats implements AttendanceHandler.
func (a *AttendanceHandlerImpl) LatenessStats(w http.ResponseWriter, r *http.Request) {
	filter, ok := latenessFilterFromQuery(w, r)
	if !ok {
		return
	}

	stats, err := a.attendanceService.Stats(r.Context(), filter)
	if err != nil {
		slog.Error("LatenessStats service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}

// punchFilterFromQuery parses the shared punch-history query parameters. On a
// malformed parameter it writes the error response and reports ok=false.
func punchFilterFromQuery(w http.ResponseWriter, r *http.Request) (attendance.PunchFilter, bool) {
	var filter attendance.PunchFilter

	if raw := r.URL.Query().Get("employee_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			response.BadRequest(w, "Invalid employee_id", nil)
			return filter, false
		}
		filter.EmployeeID = &id
	}

	for name, dst := range map[string]**string{
		"date": &filter.Date,
		"from": &filter.From,
		"to":   &filter.To,
	} {
		if raw := r.URL.Query().Get(name); raw != "" {
			if _, ok := validator.IsValidDate(raw); !ok {
				response.BadRequest(w, "Invalid "+name+", expected YYYY-MM-DD", nil)
				return filter, false
			}
			value := raw
			*dst = &value
		}
	}

	if raw := r.URL.Query().Get("kind"); raw != "" {
		kind := attendance.PunchKind(raw)
		if kind != attendance.KindEntry && kind != attendance.KindExit && kind != attendance.KindAbsence {
			response.BadRequest(w, "Invalid kind, expected entry, exit or absence", nil)
			return filter, false
		}
		filter.Kind = &kind
	}

	return filter, true
}

func latenessFilterFromQuery(w http.ResponseWriter, r *http.Request) (attendance.LatenessFilter, bool) {
	var filter attendance.LatenessFilter

	if raw := r.URL.Query().Get("employee_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			response.BadRequest(w, "Invalid employee_id", nil)
			return filter, false
		}
		filter.EmployeeID = &id
	}

	for name, dst := range map[string]**string{
		"from": &filter.From,
		"to":   &filter.To,
	} {
		if raw := r.URL.Query().Get(name); raw != "" {
			if _, ok := validator.IsValidDate(raw); !ok {
				response.BadRequest(w, "Invalid "+name+", expected YYYY-MM-DD", nil)
				return filter, false
			}
			value := raw
			*dst = &value
		}
	}

	return filter, true
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}
