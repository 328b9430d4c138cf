package service

import (
	"context"
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/medtrack/internal/error_values"
	"github.com/limbo/medtrack/internal/repository"
	"github.com/limbo/medtrack/pkg/entity"
)

type MedicationsService struct {
	repo repository.MedicationsRepositoryI
}

func NewMedicationsService(medsRepo repository.MedicationsRepositoryI) *MedicationsService {
	if medsRepo == nil {
		log.Fatal("provided nil medsRepo")
	}
	return &MedicationsService{
		repo: medsRepo,
	}
}

// validateDefinition checks the full medication definition and parses the
// reminder times. Every failure joins errorvalues.ErrValidation so callers can
// match the whole class with errors.Is.
func validateDefinition(req *MedicationRequest) ([]entity.TimeOfDay, error) {
	err := validate.Struct(*req)
	if err != nil {
		if validationError, ok := err.(validator.ValidationErrors); ok {
			joined := errorvalues.ErrValidation
			for _, fieldErr := range validationError {
				joined = errors.Join(joined, fieldErr)
			}
			return nil, joined
		}
		return nil, errors.New("validation unexpected error: " + err.Error())
	}
	if req.EndDate.Before(req.StartDate) {
		return nil, errors.Join(errorvalues.ErrValidation, errors.New("start date is after end date"))
	}
	times := make([]entity.TimeOfDay, 0, len(req.ReminderTimes))
	for _, raw := range req.ReminderTimes {
		tod, err := entity.ParseTimeOfDay(raw)
		if err != nil {
			return nil, errors.Join(errorvalues.ErrValidation, err)
		}
		times = append(times, tod)
	}
	return times, nil
}

func (ms *MedicationsService) CreateMedication(ctx context.Context, uid uuid.UUID, req *MedicationRequest) (*entity.Medication, error) {
	times, err := validateDefinition(req)
	if err != nil {
		return nil, err
	}
	med := entity.Medication{
		UserID:         uid,
		Name:           req.Name,
		Dosage:         req.Dosage,
		Category:       entity.MedicationCategory(req.Category),
		FrequencyHours: req.FrequencyHours,
		TimesPerDay:    req.TimesPerDay,
		ReminderTimes:  times,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		Instructions:   req.Instructions,
	}
	id, err := ms.repo.Create(ctx, &med)
	if err != nil {
		return nil, errors.New("medications repository error: " + err.Error())
	}
	created, err := ms.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrMedicationNotFound) {
			return nil, err
		}
		return nil, errors.New("medications repository error: " + err.Error())
	}
	return created, nil
}

func (ms *MedicationsService) GetMedication(ctx context.Context, medID, uid uuid.UUID) (*entity.Medication, error) {
	med, err := ms.repo.GetByID(ctx, medID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrMedicationNotFound) {
			return nil, err
		}
		return nil, errors.New("medications repository error: " + err.Error())
	}
	if med.UserID != uid {
		return nil, errorvalues.ErrWrongOwner
	}
	return med, nil
}

func (ms *MedicationsService) GetUserMedications(ctx context.Context, uid uuid.UUID, pagination PaginationOpts) ([]*entity.Medication, error) {
	meds, err := ms.repo.GetByUserID(ctx, uid, pagination.Limit, pagination.Offset)
	if err != nil {
		return nil, errors.New("medications repository error: " + err.Error())
	}
	return meds, nil
}

func (ms *MedicationsService) UpdateMedication(ctx context.Context, medID, uid uuid.UUID, req *MedicationRequest) (*entity.Medication, error) {
	med, err := ms.GetMedication(ctx, medID, uid)
	if err != nil {
		return nil, err
	}
	times, err := validateDefinition(req)
	if err != nil {
		return nil, err
	}
	med.Name = req.Name
	med.Dosage = req.Dosage
	med.Category = entity.MedicationCategory(req.Category)
	med.FrequencyHours = req.FrequencyHours
	med.TimesPerDay = req.TimesPerDay
	med.ReminderTimes = times
	med.StartDate = req.StartDate
	med.EndDate = req.EndDate
	med.Instructions = req.Instructions
	err = ms.repo.Update(ctx, med)
	if err != nil {
		if errors.Is(err, errorvalues.ErrMedicationNotFound) {
			return nil, err
		}
		return nil, errors.New("medications repository error: " + err.Error())
	}
	return med, nil
}

func (ms *MedicationsService) DeleteMedication(ctx context.Context, medID, uid uuid.UUID) error {
	_, err := ms.GetMedication(ctx, medID, uid)
	if err != nil {
		return err
	}
	// Dose events referencing this medication stay in the ledger and show up
	// under the unknown bucket in reports.
	err = ms.repo.Delete(ctx, medID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrMedicationNotFound) {
			return err
		}
		return errors.New("medications repository error: " + err.Error())
	}
	return nil
}
