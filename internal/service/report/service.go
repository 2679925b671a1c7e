package report

import (
	"context"
	"fmt"

	"github.com/cliniquenova/timeclock-backend-go/internal/domain/attendance"
	"github.com/cliniquenova/timeclock-backend-go/internal/domain/report"
	"github.com/xuri/excelize/v2"
)

const attendanceSheet = "Attendance"

var attendanceHeaders = []string{
	"ID", "Employee ID", "Last Name", "First Name", "Department", "Kind", "Time", "Date", "Status",
}

type ReportServiceImpl struct {
	attendance.PunchRepository
}

func NewReportService(punchRepository attendance.PunchRepository) report.ReportService {
	return &ReportServiceImpl{PunchRepository: punchRepository}
}

// AttendanceWorkbook implements report.ReportService.
func (s *ReportServiceImpl) AttendanceWorkbook(ctx context.Context, filter attendance.PunchFilter) (*excelize.File, error) {
	punches, err := s.PunchRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list punches: %w", err)
	}

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", attendanceSheet); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	for col, header := range attendanceHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(attendanceSheet, cell, header); err != nil {
			return nil, err
		}
	}

	for i, p := range punches {
		punchTime := ""
		if p.Time != nil {
			punchTime = *p.Time
		}
		values := []any{p.ID, p.EmployeeID, p.LastName, p.FirstName, p.Department, string(p.Kind), punchTime, p.Date, p.Status}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(attendanceSheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	return f, nil
}
