package timeentry

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi"

	"github.com/tanasitp/timesheet-management/internal"
	"github.com/tanasitp/timesheet-management/internal/auth"
	"github.com/tanasitp/timesheet-management/internal/transport"
	"github.com/tanasitp/timesheet-management/pkg/logger"
)

type ServiceAPI interface {
	Create(userID int64, dto CreateTimeEntryDTO) (*TimeEntry, error)
	GetByID(userID, entryID int64) (*TimeEntry, error)
	Update(userID, entryID int64, dto UpdateTimeEntryDTO) (*TimeEntry, error)
	Delete(userID, entryID int64) error
	ListMonth(userID, companyID int64, year int, month time.Month) ([]*TimeEntry, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(svc ServiceAPI) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     svc,
	}
}

// TimeEntryResponse decorates an entry with its computed working hours.
type TimeEntryResponse struct {
	*TimeEntry
	Hours float64 `json:"hours"`
}

func toResponse(e *TimeEntry) TimeEntryResponse {
	return TimeEntryResponse{TimeEntry: e, Hours: e.Hours()}
}

func (h *Handler) CreateEntry(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.UserFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var dto CreateTimeEntryDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	e, err := h.Service.Create(principal.ID, dto)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, toResponse(e))
}

// ListEntries handles GET /time-entries?company_id=&month=&year=
func (h *Handler) ListEntries(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.UserFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	companyID, err := strconv.ParseInt(r.URL.Query().Get("company_id"), 10, 64)
	if err != nil || companyID <= 0 {
		h.WriteError(w, http.StatusBadRequest, "company_id is required")
		return
	}

	year, month, err := monthParams(r)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	entries, err := h.Service.ListMonth(principal.ID, companyID, year, month)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	responses := make([]TimeEntryResponse, 0, len(entries))
	for _, e := range entries {
		responses = append(responses, toResponse(e))
	}

	h.WriteJSON(w, http.StatusOK, responses)
}

func (h *Handler) GetEntry(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.UserFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	entryID, err := h.entryIDParam(r)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid entry id")
		return
	}

	e, err := h.Service.GetByID(principal.ID, entryID)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, toResponse(e))
}

func (h *Handler) UpdateEntry(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.UserFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	entryID, err := h.entryIDParam(r)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid entry id")
		return
	}

	var dto UpdateTimeEntryDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	e, err := h.Service.Update(principal.ID, entryID, dto)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, toResponse(e))
}

func (h *Handler) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.UserFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	entryID, err := h.entryIDParam(r)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid entry id")
		return
	}

	if err := h.Service.Delete(principal.ID, entryID); err != nil {
		h.writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) entryIDParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

func monthParams(r *http.Request) (int, time.Month, error) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil || year < 1970 || year > 9999 {
		return 0, 0, ValidationError{Msg: "year is required"}
	}
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil || month < 1 || month > 12 {
		return 0, 0, ValidationError{Msg: "month must be between 1 and 12"}
	}
	return year, time.Month(month), nil
}

func (h *Handler) writeServiceError(w http.ResponseWriter, err error) {
	switch err {
	case ErrEntryNotFound:
		h.WriteError(w, http.StatusNotFound, "time entry not found")
		return
	case ErrNotOwner:
		h.WriteError(w, http.StatusForbidden, "time entry does not belong to user")
		return
	}

	if _, ok := err.(ValidationError); ok {
		h.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	if _, ok := internal.IsAppError(err); ok {
		h.HandleServiceError(w, err)
		return
	}

	h.Logger.Error("time entry handler: unexpected error", "error", err)
	h.WriteError(w, http.StatusInternalServerError, "internal server error")
}
