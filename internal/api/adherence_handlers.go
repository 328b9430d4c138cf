package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/medtrack/internal/error_values"
	"github.com/limbo/medtrack/internal/service"
	"github.com/limbo/medtrack/pkg/entity"
	"github.com/limbo/medtrack/pkg/httputil"
)

type MarkDoseRequest struct {
	MedicationID  string    `json:"medication_id"`
	ScheduledTime time.Time `json:"scheduled_time"`
	Status        string    `json:"status"`
	Notes         string    `json:"notes"`
}

type UpdateLogRequest struct {
	Status string `json:"status"`
	Notes  string `json:"notes"`
}

type GetLogsResponse struct {
	UserID string              `json:"uid"`
	Logs   []*entity.DoseEvent `json:"logs"`
}

type TodayRemindersResponse struct {
	UserID    string             `json:"uid"`
	Date      string             `json:"date"`
	Reminders []*entity.Reminder `json:"reminders"`
}

func (s *Server) MarkDose(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("mark dose error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req MarkDoseRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("mark dose error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	medID, err := uuid.Parse(req.MedicationID)
	if err != nil {
		logger.Error("mark dose error: invalid medication id")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid medication id", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	event, err := s.adherenceService.MarkDose(ctx, uid, &service.MarkDoseRequest{
		MedicationID:  medID,
		ScheduledTime: req.ScheduledTime,
		Status:        entity.DoseStatus(req.Status),
		Notes:         req.Notes,
	}, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrInvalidStatus):
			logger.Error("mark dose error: invalid status")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "status must be Taken or Missed", nil)
		case errors.Is(err, errorvalues.ErrFutureMark):
			logger.Error("mark dose error: scheduled time in future")
			httputil.WriteErrorResponse(w, http.StatusConflict, "scheduled time hasn't arrived yet", nil)
		case errors.Is(err, errorvalues.ErrMedicationNotFound), errors.Is(err, errorvalues.ErrWrongOwner):
			logger.Error("mark dose error: unexist or foreign medication")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "medication doesn't exist", nil)
		default:
			logger.Error("mark dose error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while marking dose", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, map[string]any{"log": event})
	logger.Info("dose marked")
}

func (s *Server) UpdateLog(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("update log error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("update log error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid log id in path value", nil)
		return
	}
	var req UpdateLogRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("update log error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	event, err := s.adherenceService.UpdateLog(ctx, id, uid, &service.UpdateLogRequest{
		Status: entity.DoseStatus(req.Status),
		Notes:  req.Notes,
	}, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrInvalidStatus):
			logger.Error("update log error: invalid status")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "status must be Taken or Missed", nil)
		case errors.Is(err, errorvalues.ErrFutureMark):
			logger.Error("update log error: scheduled time in future")
			httputil.WriteErrorResponse(w, http.StatusConflict, "scheduled time hasn't arrived yet", nil)
		case errors.Is(err, errorvalues.ErrDoseEventNotFound), errors.Is(err, errorvalues.ErrWrongOwner):
			logger.Error("update log error: unexist or foreign log")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "log doesn't exist", nil)
		default:
			logger.Error("update log error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while updating log", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"log": event})
	logger.Info("log updated")
}

// logsFilterFromQuery reads optional from/to date bounds, both inclusive.
func logsFilterFromQuery(r *http.Request) (service.LogsFilter, error) {
	var filter service.LogsFilter
	if raw := r.URL.Query().Get("from"); raw != "" {
		from, err := time.Parse(dateLayout, raw)
		if err != nil {
			return filter, errors.New("from must be YYYY-MM-DD")
		}
		filter.From = &from
	}
	if raw := r.URL.Query().Get("to"); raw != "" {
		to, err := time.Parse(dateLayout, raw)
		if err != nil {
			return filter, errors.New("to must be YYYY-MM-DD")
		}
		endOfDay := to.AddDate(0, 0, 1).Add(-time.Nanosecond)
		filter.To = &endOfDay
	}
	return filter, nil
}

func (s *Server) GetLogs(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get logs error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	filter, err := logsFilterFromQuery(r)
	if err != nil {
		logger.Error("get logs error: invalid date filter")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid date filter", err)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	logs, err := s.adherenceService.GetLogs(ctx, uid, filter)
	if err != nil {
		logger.Error("getting logs error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting logs", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetLogsResponse{
		UserID: uid.String(),
		Logs:   logs,
	})
	logger.Info("logs provided")
}

func (s *Server) GetMedicationLogs(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get medication logs error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	medID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("get medication logs error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid medication id in path value", nil)
		return
	}
	filter, err := logsFilterFromQuery(r)
	if err != nil {
		logger.Error("get medication logs error: invalid date filter")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid date filter", err)
		return
	}
	filter.MedicationID = &medID
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	logs, err := s.adherenceService.GetLogs(ctx, uid, filter)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrMedicationNotFound), errors.Is(err, errorvalues.ErrWrongOwner):
			logger.Error("get medication logs error: unexist or foreign medication")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "medication doesn't exist", nil)
		default:
			logger.Error("getting medication logs error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting logs", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetLogsResponse{
		UserID: uid.String(),
		Logs:   logs,
	})
	logger.Info("medication logs provided")
}

func (s *Server) TodayReminders(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("today reminders error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	day := time.Now()
	if raw := r.URL.Query().Get("date"); raw != "" {
		day, err = time.ParseInLocation(dateLayout, raw, time.Local)
		if err != nil {
			logger.Error("today reminders error: invalid date")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "date must be YYYY-MM-DD", nil)
			return
		}
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	reminders, err := s.adherenceService.DayReminders(ctx, uid, day)
	if err != nil {
		logger.Error("getting day reminders error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting reminders", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, TodayRemindersResponse{
		UserID:    uid.String(),
		Date:      day.Format(dateLayout),
		Reminders: reminders,
	})
	logger.Info("reminders provided")
}
