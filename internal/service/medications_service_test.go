package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/medtrack/internal/error_values"
	"github.com/limbo/medtrack/internal/repository/mocks"
	"github.com/limbo/medtrack/internal/service"
	"github.com/limbo/medtrack/pkg/entity"
	"github.com/stretchr/testify/assert"
)

func validMedicationRequest() *service.MedicationRequest {
	return &service.MedicationRequest{
		Name:           "Paracetamol",
		Dosage:         "500mg",
		Category:       "Painkiller",
		FrequencyHours: 8,
		TimesPerDay:    3,
		ReminderTimes:  []string{"08:00", "14:00", "20:00"},
		StartDate:      time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		EndDate:        time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC),
		Instructions:   "after meals",
	}
}

func TestCreateMedication(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mocks.NewMockMedicationsRepositoryI(ctrl)
	ms := service.NewMedicationsService(repo)
	ctx := context.Background()
	uid := uuid.New()
	t.Run("created", func(t *testing.T) {
		req := validMedicationRequest()
		medID := uuid.New()
		repo.EXPECT().Create(ctx, gomock.Any()).Return(medID, nil)
		repo.EXPECT().GetByID(ctx, medID).Return(&entity.Medication{
			ID:     medID,
			UserID: uid,
			Name:   req.Name,
		}, nil)
		med, err := ms.CreateMedication(ctx, uid, req)
		assert.NoError(t, err)
		assert.Equal(t, medID, med.ID)
		assert.Equal(t, req.Name, med.Name)
	})
	t.Run("invalid category", func(t *testing.T) {
		req := validMedicationRequest()
		req.Category = "Vitamins"
		_, err := ms.CreateMedication(ctx, uid, req)
		assert.ErrorIs(t, err, errorvalues.ErrValidation)
	})
	t.Run("empty reminder times", func(t *testing.T) {
		req := validMedicationRequest()
		req.ReminderTimes = []string{}
		_, err := ms.CreateMedication(ctx, uid, req)
		assert.ErrorIs(t, err, errorvalues.ErrValidation)
	})
	t.Run("malformed reminder time", func(t *testing.T) {
		req := validMedicationRequest()
		req.ReminderTimes = []string{"8am"}
		_, err := ms.CreateMedication(ctx, uid, req)
		assert.ErrorIs(t, err, errorvalues.ErrValidation)
	})
	t.Run("out of range reminder time", func(t *testing.T) {
		req := validMedicationRequest()
		req.ReminderTimes = []string{"25:00"}
		_, err := ms.CreateMedication(ctx, uid, req)
		assert.ErrorIs(t, err, errorvalues.ErrValidation)
	})
	t.Run("start date after end date", func(t *testing.T) {
		req := validMedicationRequest()
		req.StartDate, req.EndDate = req.EndDate, req.StartDate
		_, err := ms.CreateMedication(ctx, uid, req)
		assert.ErrorIs(t, err, errorvalues.ErrValidation)
	})
	t.Run("non-positive frequency", func(t *testing.T) {
		req := validMedicationRequest()
		req.FrequencyHours = 0
		_, err := ms.CreateMedication(ctx, uid, req)
		assert.ErrorIs(t, err, errorvalues.ErrValidation)
	})
}

func TestGetMedication(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mocks.NewMockMedicationsRepositoryI(ctrl)
	ms := service.NewMedicationsService(repo)
	ctx := context.Background()
	uid := uuid.New()
	medID := uuid.New()
	t.Run("found", func(t *testing.T) {
		repo.EXPECT().GetByID(ctx, medID).Return(&entity.Medication{ID: medID, UserID: uid}, nil)
		med, err := ms.GetMedication(ctx, medID, uid)
		assert.NoError(t, err)
		assert.Equal(t, medID, med.ID)
	})
	t.Run("not found", func(t *testing.T) {
		repo.EXPECT().GetByID(ctx, medID).Return(nil, errorvalues.ErrMedicationNotFound)
		_, err := ms.GetMedication(ctx, medID, uid)
		assert.ErrorIs(t, err, errorvalues.ErrMedicationNotFound)
	})
	t.Run("wrong owner", func(t *testing.T) {
		repo.EXPECT().GetByID(ctx, medID).Return(&entity.Medication{ID: medID, UserID: uuid.New()}, nil)
		_, err := ms.GetMedication(ctx, medID, uid)
		assert.ErrorIs(t, err, errorvalues.ErrWrongOwner)
	})
}

func TestUpdateMedication(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mocks.NewMockMedicationsRepositoryI(ctrl)
	ms := service.NewMedicationsService(repo)
	ctx := context.Background()
	uid := uuid.New()
	medID := uuid.New()
	t.Run("updated", func(t *testing.T) {
		req := validMedicationRequest()
		req.Dosage = "250mg"
		repo.EXPECT().GetByID(ctx, medID).Return(&entity.Medication{ID: medID, UserID: uid, Dosage: "500mg"}, nil)
		repo.EXPECT().Update(ctx, gomock.Any()).Return(nil)
		med, err := ms.UpdateMedication(ctx, medID, uid, req)
		assert.NoError(t, err)
		assert.Equal(t, "250mg", med.Dosage)
	})
	t.Run("wrong owner", func(t *testing.T) {
		repo.EXPECT().GetByID(ctx, medID).Return(&entity.Medication{ID: medID, UserID: uuid.New()}, nil)
		_, err := ms.UpdateMedication(ctx, medID, uid, validMedicationRequest())
		assert.ErrorIs(t, err, errorvalues.ErrWrongOwner)
	})
	t.Run("invalid definition", func(t *testing.T) {
		req := validMedicationRequest()
		req.Name = ""
		repo.EXPECT().GetByID(ctx, medID).Return(&entity.Medication{ID: medID, UserID: uid}, nil)
		_, err := ms.UpdateMedication(ctx, medID, uid, req)
		assert.ErrorIs(t, err, errorvalues.ErrValidation)
	})
}

func TestDeleteMedication(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mocks.NewMockMedicationsRepositoryI(ctrl)
	ms := service.NewMedicationsService(repo)
	ctx := context.Background()
	uid := uuid.New()
	medID := uuid.New()
	t.Run("deleted", func(t *testing.T) {
		repo.EXPECT().GetByID(ctx, medID).Return(&entity.Medication{ID: medID, UserID: uid}, nil)
		repo.EXPECT().Delete(ctx, medID).Return(nil)
		assert.NoError(t, ms.DeleteMedication(ctx, medID, uid))
	})
	t.Run("not found", func(t *testing.T) {
		repo.EXPECT().GetByID(ctx, medID).Return(nil, errorvalues.ErrMedicationNotFound)
		err := ms.DeleteMedication(ctx, medID, uid)
		assert.ErrorIs(t, err, errorvalues.ErrMedicationNotFound)
	})
	t.Run("wrong owner", func(t *testing.T) {
		repo.EXPECT().GetByID(ctx, medID).Return(&entity.Medication{ID: medID, UserID: uuid.New()}, nil)
		err := ms.DeleteMedication(ctx, medID, uid)
		assert.ErrorIs(t, err, errorvalues.ErrWrongOwner)
	})
}
