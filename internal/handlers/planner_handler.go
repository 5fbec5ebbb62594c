package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"classboard/internal/model"
	"classboard/internal/service"
	"classboard/internal/webutil"
)

type PlannerHandler struct {
	service service.PlannerService
	logger  *slog.Logger
}

func NewPlannerHandler(s service.PlannerService, logger *slog.Logger) *PlannerHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &PlannerHandler{
		service: s,
		logger:  logger,
	}
}

// GetTodos returns the aggregated to-do list across every course.
func (h *PlannerHandler) GetTodos(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetTodos"))

	todos, err := h.service.Todos(r.Context())
	if err != nil {
		logger.Error("Error building todo list in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, todos)
}

// GetCalendar returns the month index for ?year= and ?month=, defaulting to
// the current month.
func (h *PlannerHandler) GetCalendar(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetCalendar"))

	now := time.Now()
	year, month := now.Year(), now.Month()

	if v := r.URL.Query().Get("year"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			appErr := model.NewAppError("INVALID_URL_PARAM", "year must be an integer.", "year", model.ErrInvalidInput)
			webutil.HandleError(w, logger, appErr)
			return
		}
		year = parsed
	}
	if v := r.URL.Query().Get("month"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 1 || parsed > 12 {
			appErr := model.NewAppError("INVALID_URL_PARAM", "month must be an integer in [1,12].", "month", model.ErrInvalidInput)
			webutil.HandleError(w, logger, appErr)
			return
		}
		month = time.Month(parsed)
	}
	logger = logger.With(slog.Int("year", year), slog.Int("month", int(month)))

	days, err := h.service.Calendar(r.Context(), year, month)
	if err != nil {
		logger.Error("Error building calendar index in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, days)
}

// PostEvent registers a session-scoped custom calendar event.
func (h *PlannerHandler) PostEvent(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostEvent"))

	var req model.AddEventRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	ev := h.service.AddEvent(&req)
	logger.Info("Custom event added", slog.String("date", ev.Date))
	webutil.RespondWithJSON(w, http.StatusCreated, ev)
}
