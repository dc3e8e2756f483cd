package holiday

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/tanasitp/timesheet-management/internal/transport"
	"github.com/tanasitp/timesheet-management/pkg/logger"
)

type Handler struct {
	*transport.BaseHandler
}

func NewHandler() *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
	}
}

// GetHolidays handles GET /holidays?year=. The year defaults to the current
// one.
func (h *Handler) GetHolidays(w http.ResponseWriter, r *http.Request) {
	year := time.Now().Year()
	if raw := r.URL.Query().Get("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1970 || parsed > 9999 {
			h.WriteError(w, http.StatusBadRequest, "year must be a valid year")
			return
		}
		year = parsed
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"year":     year,
		"holidays": ForYear(year),
	})
}
