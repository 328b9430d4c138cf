package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/medtrack/internal/error_values"
	"github.com/limbo/medtrack/internal/service"
	"github.com/limbo/medtrack/pkg/entity"
	"github.com/limbo/medtrack/pkg/httputil"
)

const dateLayout = "2006-01-02"

type MedicationRequest struct {
	Name          string   `json:"name"`
	Dosage        string   `json:"dosage"`
	Category      string   `json:"category"`
	Frequency     int      `json:"frequency"`
	TimesPerDay   int      `json:"times_per_day"`
	ReminderTimes []string `json:"reminder_times"`
	StartDate     string   `json:"start_date"`
	EndDate       string   `json:"end_date"`
	Instructions  string   `json:"instructions"`
}

type MedicationResponse struct {
	Medication *entity.Medication `json:"medication"`
	Warning    string             `json:"warning,omitempty"`
}

type GetMedicationsResponse struct {
	UserID      string               `json:"uid"`
	Page        int                  `json:"page"`
	Limit       int                  `json:"limit"`
	Medications []*entity.Medication `json:"medications"`
}

func (req *MedicationRequest) toService() (*service.MedicationRequest, error) {
	start, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return nil, errors.New("start_date must be YYYY-MM-DD")
	}
	end, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		return nil, errors.New("end_date must be YYYY-MM-DD")
	}
	return &service.MedicationRequest{
		Name:           req.Name,
		Dosage:         req.Dosage,
		Category:       req.Category,
		FrequencyHours: req.Frequency,
		TimesPerDay:    req.TimesPerDay,
		ReminderTimes:  req.ReminderTimes,
		StartDate:      start,
		EndDate:        end,
		Instructions:   req.Instructions,
	}, nil
}

// Length mismatch between the times list and times_per_day is a data quality
// note, not an error.
func scheduleWarning(med *entity.Medication) string {
	if len(med.ReminderTimes) != med.TimesPerDay {
		return "reminder times count doesn't match times per day"
	}
	return ""
}

func (s *Server) CreateMedication(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("create medication error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req MedicationRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("create medication error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	servReq, err := req.toService()
	if err != nil {
		logger.Error("create medication error: invalid dates")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	med, err := s.medsService.CreateMedication(ctx, uid, servReq)
	if err != nil {
		if errors.Is(err, errorvalues.ErrValidation) {
			logger.Error("create medication error: invalid definition")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid medication definition", err)
			return
		}
		logger.Error("create medication error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while creating medication", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, MedicationResponse{
		Medication: med,
		Warning:    scheduleWarning(med),
	})
	logger.Info("medication created")
}

func (s *Server) GetMedications(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get medications error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit < 1 || limit > 50 {
		limit = 10
	}
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}
	offset := (page - 1) * limit
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	meds, err := s.medsService.GetUserMedications(ctx, uid, service.PaginationOpts{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		logger.Error("getting medications list error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting medications list", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetMedicationsResponse{
		UserID:      uid.String(),
		Page:        page,
		Limit:       limit,
		Medications: meds,
	})
	logger.Info("medications provided")
}

func (s *Server) GetMedication(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get medication error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("get medication error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid medication id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	med, err := s.medsService.GetMedication(ctx, id, uid)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrMedicationNotFound), errors.Is(err, errorvalues.ErrWrongOwner):
			logger.Error("get medication error: unexist or foreign medication")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "medication doesn't exist", nil)
		default:
			logger.Error("get medication error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting medication", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, MedicationResponse{
		Medication: med,
		Warning:    scheduleWarning(med),
	})
	logger.Info("medication provided")
}

func (s *Server) UpdateMedication(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("update medication error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("update medication error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid medication id in path value", nil)
		return
	}
	var req MedicationRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("update medication error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	servReq, err := req.toService()
	if err != nil {
		logger.Error("update medication error: invalid dates")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	med, err := s.medsService.UpdateMedication(ctx, id, uid, servReq)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrValidation):
			logger.Error("update medication error: invalid definition")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid medication definition", err)
		case errors.Is(err, errorvalues.ErrMedicationNotFound), errors.Is(err, errorvalues.ErrWrongOwner):
			logger.Error("update medication error: unexist or foreign medication")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "medication doesn't exist", nil)
		default:
			logger.Error("update medication error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while updating medication", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, MedicationResponse{
		Medication: med,
		Warning:    scheduleWarning(med),
	})
	logger.Info("medication updated")
}

func (s *Server) DeleteMedication(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("medication deletion error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("medication deletion error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid medication id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.medsService.DeleteMedication(ctx, id, uid)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrMedicationNotFound):
			logger.Error("medication deletion error: unexist medication")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "medication doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrWrongOwner):
			logger.Error("medication deletion error: medication has different owner")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "medication doesn't exist", nil)
		default:
			logger.Error("medication deletion error: service error")
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while deleting medication", nil)
		}
		return
	}
	logger.Info("medication deleted")
}
