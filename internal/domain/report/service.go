package report

import (
	"context"

	"github.com/cliniquenova/timeclock-backend-go/internal/domain/attendance"
	"github.com/xuri/excelize/v2"
)

type ReportService interface {
	// AttendanceWorkbook builds an .xlsx workbook of punch history matching
	// the filter, one row per punch.
	AttendanceWorkbook(ctx context.Context, filter attendance.PunchFilter) (*excelize.File, error)
}
