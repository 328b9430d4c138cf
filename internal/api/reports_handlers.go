package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/limbo/medtrack/pkg/entity"
	"github.com/limbo/medtrack/pkg/httputil"
)

type MedicationWiseResponse struct {
	UserID string                        `json:"uid"`
	Items  []*entity.MedicationAdherence `json:"items"`
}

type WeeklyTrendResponse struct {
	UserID string               `json:"uid"`
	Days   []*entity.TrendPoint `json:"days"`
}

func (s *Server) GetStats(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get stats error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var from, to *time.Time
	if raw := r.URL.Query().Get("startDate"); raw != "" {
		parsed, err := time.Parse(dateLayout, raw)
		if err != nil {
			logger.Error("get stats error: invalid startDate")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "startDate must be YYYY-MM-DD", nil)
			return
		}
		from = &parsed
	}
	if raw := r.URL.Query().Get("endDate"); raw != "" {
		parsed, err := time.Parse(dateLayout, raw)
		if err != nil {
			logger.Error("get stats error: invalid endDate")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "endDate must be YYYY-MM-DD", nil)
			return
		}
		endOfDay := parsed.AddDate(0, 0, 1).Add(-time.Nanosecond)
		to = &endOfDay
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	stats, err := s.reportsService.Stats(ctx, uid, from, to)
	if err != nil {
		logger.Error("getting stats error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while computing stats", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, stats)
	logger.Info("stats provided")
}

func (s *Server) GetMedicationWise(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("medication-wise report error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	items, err := s.reportsService.MedicationWise(ctx, uid)
	if err != nil {
		logger.Error("medication-wise report error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while computing report", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, MedicationWiseResponse{
		UserID: uid.String(),
		Items:  items,
	})
	logger.Info("medication-wise report provided")
}

func (s *Server) GetWeeklyTrend(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("weekly trend error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	days, err := s.reportsService.WeeklyTrend(ctx, uid, time.Now())
	if err != nil {
		logger.Error("weekly trend error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while computing trend", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, WeeklyTrendResponse{
		UserID: uid.String(),
		Days:   days,
	})
	logger.Info("weekly trend provided")
}
