package report

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/tanasitp/timesheet-management/internal/auth"
	"github.com/tanasitp/timesheet-management/internal/company"
	"github.com/tanasitp/timesheet-management/internal/timesheet"
	"github.com/tanasitp/timesheet-management/internal/transport"
	"github.com/tanasitp/timesheet-management/pkg/logger"
)

type ServiceAPI interface {
	Monthly(userID, companyID int64, year int, month time.Month) (*timesheet.MonthlyReport, error)
}

type Handler struct {
	*transport.BaseHandler
	Service   ServiceAPI
	exporters map[string]Exporter
}

func NewHandler(svc ServiceAPI) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     svc,
		exporters: map[string]Exporter{
			"csv":  NewCSVExporter(),
			"xlsx": NewXLSXExporter(),
			"pdf":  NewPDFExporter(),
		},
	}
}

// MonthlyReportResponse is the JSON shape of GET /reports/monthly.
type MonthlyReportResponse struct {
	EmployeeName  string               `json:"employee_name"`
	CompanyName   string               `json:"company_name"`
	ApprovedBy    string               `json:"approved_by"`
	PeriodLabel   string               `json:"period_label"`
	Entries       []ReportEntryPayload `json:"entries"`
	TotalHours    float64              `json:"total_hours"`
	SignatureDate string               `json:"signature_date"`
}

type ReportEntryPayload struct {
	ID          int64      `json:"id"`
	Date        string     `json:"date"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	StartTime   time.Time  `json:"start_time"`
	EndTime     *time.Time `json:"end_time"`
	Hours       float64    `json:"hours"`
}

func toResponse(r *timesheet.MonthlyReport) MonthlyReportResponse {
	entries := make([]ReportEntryPayload, 0, len(r.Entries))
	for _, e := range r.Entries {
		entries = append(entries, ReportEntryPayload{
			ID:          e.ID,
			Date:        e.Date.String(),
			Title:       e.Title,
			Description: e.Description,
			StartTime:   e.StartTime,
			EndTime:     e.EndTime,
			Hours:       e.Hours,
		})
	}
	return MonthlyReportResponse{
		EmployeeName:  r.EmployeeName,
		CompanyName:   r.CompanyName,
		ApprovedBy:    r.ApprovedBy,
		PeriodLabel:   r.PeriodLabel,
		Entries:       entries,
		TotalHours:    r.TotalHours,
		SignatureDate: r.SignatureDate.String(),
	}
}

// GetMonthlyReport handles GET /reports/monthly?company_id=&month=&year=
func (h *Handler) GetMonthlyReport(w http.ResponseWriter, r *http.Request) {
	report, _, ok := h.loadReport(w, r)
	if !ok {
		return
	}

	h.WriteJSON(w, http.StatusOK, toResponse(report))
}

// ExportMonthlyReport handles GET /reports/monthly/export?format=csv|xlsx|pdf
func (h *Handler) ExportMonthlyReport(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "xlsx"
	}
	exporter, ok := h.exporters[format]
	if !ok {
		h.WriteError(w, http.StatusBadRequest, "format must be one of csv, xlsx, pdf")
		return
	}

	report, params, ok := h.loadReport(w, r)
	if !ok {
		return
	}

	data, err := exporter.Render(report)
	if err != nil {
		h.Logger.Error("report export failed", "format", format, "error", err)
		h.WriteError(w, http.StatusInternalServerError, "failed to render export")
		return
	}

	filename := fmt.Sprintf("timesheet-%04d-%02d.%s", params.year, int(params.month), exporter.FileExtension())
	w.Header().Set("Content-Type", exporter.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		h.Logger.Error("failed to write export body", "error", err)
	}
}

type reportParams struct {
	companyID int64
	year      int
	month     time.Month
}

func (h *Handler) loadReport(w http.ResponseWriter, r *http.Request) (*timesheet.MonthlyReport, reportParams, bool) {
	var params reportParams

	principal, ok := auth.UserFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return nil, params, false
	}

	companyID, err := strconv.ParseInt(r.URL.Query().Get("company_id"), 10, 64)
	if err != nil || companyID <= 0 {
		h.WriteError(w, http.StatusBadRequest, "company_id is required")
		return nil, params, false
	}

	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil || year < 1970 || year > 9999 {
		h.WriteError(w, http.StatusBadRequest, "year is required")
		return nil, params, false
	}

	monthNum, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil || monthNum < 1 || monthNum > 12 {
		h.WriteError(w, http.StatusBadRequest, "month must be between 1 and 12")
		return nil, params, false
	}

	params = reportParams{companyID: companyID, year: year, month: time.Month(monthNum)}

	report, err := h.Service.Monthly(principal.ID, companyID, year, params.month)
	if err != nil {
		switch err {
		case company.ErrCompanyNotFound:
			h.WriteError(w, http.StatusNotFound, "company not found")
		case company.ErrNotOwner:
			h.WriteError(w, http.StatusForbidden, "company does not belong to user")
		default:
			h.Logger.Error("failed to build monthly report", "company_id", companyID, "error", err)
			h.WriteError(w, http.StatusInternalServerError, "internal server error")
		}
		return nil, params, false
	}

	return report, params, true
}
