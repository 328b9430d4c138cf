package service

import (
	"context"
	"errors"
	"log"
	"sort"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/medtrack/internal/error_values"
	"github.com/limbo/medtrack/internal/repository"
	"github.com/limbo/medtrack/pkg/entity"
)

// Schedules are read without pagination, this caps the per-user medication list.
const maxMedicationsPerUser = 500

type AdherenceService struct {
	medsRepo   repository.MedicationsRepositoryI
	eventsRepo repository.DoseEventsRepositoryI
}

func NewAdherenceService(medsRepo repository.MedicationsRepositoryI, eventsRepo repository.DoseEventsRepositoryI) *AdherenceService {
	if medsRepo == nil || eventsRepo == nil {
		log.Fatal("on adherence service provided nil repos")
	}
	return &AdherenceService{
		medsRepo:   medsRepo,
		eventsRepo: eventsRepo,
	}
}

func (serv *AdherenceService) MarkDose(ctx context.Context, uid uuid.UUID, req *MarkDoseRequest, now time.Time) (*entity.DoseEvent, error) {
	// Pending can't be written through here, it is the absence of a decision
	if !req.Status.Resolved() {
		return nil, errorvalues.ErrInvalidStatus
	}
	med, err := serv.medsRepo.GetByID(ctx, req.MedicationID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrMedicationNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	if med.UserID != uid {
		return nil, errorvalues.ErrWrongOwner
	}
	// The client performs the same check, but only this one counts
	if req.ScheduledTime.After(now) {
		return nil, errorvalues.ErrFutureMark
	}
	event, err := serv.eventsRepo.Upsert(ctx, &entity.DoseEvent{
		MedicationID:  req.MedicationID,
		UserID:        uid,
		ScheduledTime: req.ScheduledTime,
		Status:        req.Status,
		Notes:         req.Notes,
	})
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return event, nil
}

func (serv *AdherenceService) UpdateLog(ctx context.Context, logID, uid uuid.UUID, req *UpdateLogRequest, now time.Time) (*entity.DoseEvent, error) {
	if !req.Status.Resolved() {
		return nil, errorvalues.ErrInvalidStatus
	}
	existing, err := serv.eventsRepo.GetByID(ctx, logID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrDoseEventNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	if existing.UserID != uid {
		return nil, errorvalues.ErrWrongOwner
	}
	if existing.ScheduledTime.After(now) {
		return nil, errorvalues.ErrFutureMark
	}
	event, err := serv.eventsRepo.UpdateByID(ctx, logID, req.Status, req.Notes)
	if err != nil {
		if errors.Is(err, errorvalues.ErrDoseEventNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	return event, nil
}

func (serv *AdherenceService) GetLogs(ctx context.Context, uid uuid.UUID, filter LogsFilter) ([]*entity.DoseEvent, error) {
	if filter.MedicationID != nil {
		med, err := serv.medsRepo.GetByID(ctx, *filter.MedicationID)
		if err != nil {
			if errors.Is(err, errorvalues.ErrMedicationNotFound) {
				return nil, err
			}
			return nil, errors.New("repository error: " + err.Error())
		}
		if med.UserID != uid {
			return nil, errorvalues.ErrWrongOwner
		}
	}
	events, err := serv.eventsRepo.GetByUser(ctx, uid, repository.DoseEventFilter{
		MedicationID: filter.MedicationID,
		From:         filter.From,
		To:           filter.To,
	})
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return events, nil
}

func (serv *AdherenceService) DayReminders(ctx context.Context, uid uuid.UUID, day time.Time) ([]*entity.Reminder, error) {
	meds, err := serv.medsRepo.GetByUserID(ctx, uid, maxMedicationsPerUser, 0)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	dayEnd := dayStart.AddDate(0, 0, 1).Add(-time.Nanosecond)
	events, err := serv.eventsRepo.GetByUser(ctx, uid, repository.DoseEventFilter{
		From: &dayStart,
		To:   &dayEnd,
	})
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	statusByKey := make(map[string]entity.DoseStatus, len(events))
	for _, event := range events {
		statusByKey[doseKey(event.MedicationID, event.ScheduledTime)] = event.Status
	}
	reminders := make([]*entity.Reminder, 0)
	for _, med := range meds {
		for _, reminder := range RemindersForDay(med, day) {
			if status, ok := statusByKey[doseKey(reminder.MedicationID, reminder.ScheduledTime)]; ok {
				reminder.Status = status
			}
			reminders = append(reminders, reminder)
		}
	}
	sort.SliceStable(reminders, func(i, j int) bool {
		if !reminders[i].ScheduledTime.Equal(reminders[j].ScheduledTime) {
			return reminders[i].ScheduledTime.Before(reminders[j].ScheduledTime)
		}
		return reminders[i].Medication.Name < reminders[j].Medication.Name
	})
	return reminders, nil
}

func doseKey(medicationID uuid.UUID, scheduledTime time.Time) string {
	return medicationID.String() + "|" + scheduledTime.UTC().Format(time.RFC3339)
}
