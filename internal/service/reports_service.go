package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/medtrack/internal/repository"
	"github.com/limbo/medtrack/pkg/entity"
)

// ReportsService computes adherence reports on read, nothing is maintained
// incrementally: the dose ledger is the single source of truth.
type ReportsService struct {
	medsRepo   repository.MedicationsRepositoryI
	eventsRepo repository.DoseEventsRepositoryI
}

func NewReportsService(medsRepo repository.MedicationsRepositoryI, eventsRepo repository.DoseEventsRepositoryI) *ReportsService {
	if medsRepo == nil || eventsRepo == nil {
		log.Fatal("on reports service provided nil repos")
	}
	return &ReportsService{
		medsRepo:   medsRepo,
		eventsRepo: eventsRepo,
	}
}

func (serv *ReportsService) Stats(ctx context.Context, uid uuid.UUID, from, to *time.Time) (*entity.AdherenceSummary, error) {
	events, err := serv.eventsRepo.GetByUser(ctx, uid, repository.DoseEventFilter{
		From: from,
		To:   to,
	})
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	summary := Summarize(events)
	return &summary, nil
}

func (serv *ReportsService) MedicationWise(ctx context.Context, uid uuid.UUID) ([]*entity.MedicationAdherence, error) {
	events, err := serv.eventsRepo.GetByUser(ctx, uid, repository.DoseEventFilter{})
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	meds, err := serv.medsRepo.GetByUserID(ctx, uid, maxMedicationsPerUser, 0)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return SummarizeByMedication(events, meds), nil
}

func (serv *ReportsService) WeeklyTrend(ctx context.Context, uid uuid.UUID, now time.Time) ([]*entity.TrendPoint, error) {
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, -6)
	events, err := serv.eventsRepo.GetByUser(ctx, uid, repository.DoseEventFilter{
		From: &from,
	})
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return WeeklyTrend(events, now), nil
}
