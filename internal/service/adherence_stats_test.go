package service_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/medtrack/internal/service"
	"github.com/limbo/medtrack/pkg/entity"
	"github.com/stretchr/testify/assert"
)

func eventWithStatus(medID uuid.UUID, scheduled time.Time, status entity.DoseStatus) *entity.DoseEvent {
	return &entity.DoseEvent{
		ID:            uuid.New(),
		MedicationID:  medID,
		UserID:        uuid.New(),
		ScheduledTime: scheduled,
		Status:        status,
	}
}

func TestSummarize(t *testing.T) {
	medID := uuid.New()
	scheduled := time.Date(2026, 3, 15, 8, 0, 0, 0, time.UTC)
	t.Run("no events", func(t *testing.T) {
		summary := service.Summarize(nil)
		assert.Equal(t, entity.AdherenceSummary{}, summary)
	})
	t.Run("pending only gives zero rate", func(t *testing.T) {
		summary := service.Summarize([]*entity.DoseEvent{
			eventWithStatus(medID, scheduled, entity.DoseStatusPending),
			eventWithStatus(medID, scheduled, entity.DoseStatusPending),
		})
		assert.Equal(t, 2, summary.Total)
		assert.Equal(t, 2, summary.Pending)
		assert.Equal(t, 0, summary.AdherenceRate)
	})
	t.Run("mixed statuses", func(t *testing.T) {
		summary := service.Summarize([]*entity.DoseEvent{
			eventWithStatus(medID, scheduled, entity.DoseStatusTaken),
			eventWithStatus(medID, scheduled, entity.DoseStatusTaken),
			eventWithStatus(medID, scheduled, entity.DoseStatusMissed),
			eventWithStatus(medID, scheduled, entity.DoseStatusPending),
		})
		assert.Equal(t, entity.AdherenceSummary{
			Total:         4,
			Taken:         2,
			Missed:        1,
			Pending:       1,
			AdherenceRate: 67,
		}, summary)
	})
	t.Run("rate rounds half up", func(t *testing.T) {
		summary := service.Summarize([]*entity.DoseEvent{
			eventWithStatus(medID, scheduled, entity.DoseStatusTaken),
			eventWithStatus(medID, scheduled, entity.DoseStatusMissed),
		})
		assert.Equal(t, 50, summary.AdherenceRate)
	})
}

func TestSummarizeByMedication(t *testing.T) {
	scheduled := time.Date(2026, 3, 15, 8, 0, 0, 0, time.UTC)
	ibuprofen := &entity.Medication{ID: uuid.New(), Name: "Ibuprofen"}
	amoxicillin := &entity.Medication{ID: uuid.New(), Name: "Amoxicillin"}
	meds := []*entity.Medication{ibuprofen, amoxicillin}
	t.Run("deleted medication falls into unknown bucket", func(t *testing.T) {
		deletedID := uuid.New()
		result := service.SummarizeByMedication([]*entity.DoseEvent{
			eventWithStatus(deletedID, scheduled, entity.DoseStatusMissed),
			eventWithStatus(ibuprofen.ID, scheduled, entity.DoseStatusTaken),
		}, meds)
		assert.Len(t, result, 2)
		assert.Equal(t, "Ibuprofen", result[0].Name)
		assert.Equal(t, 100, result[0].Stats.AdherenceRate)
		assert.Equal(t, service.UnknownMedicationName, result[1].Name)
		assert.Equal(t, deletedID, result[1].MedicationID)
	})
	t.Run("sorted by rate then name", func(t *testing.T) {
		result := service.SummarizeByMedication([]*entity.DoseEvent{
			eventWithStatus(ibuprofen.ID, scheduled, entity.DoseStatusTaken),
			eventWithStatus(ibuprofen.ID, scheduled, entity.DoseStatusMissed),
			eventWithStatus(amoxicillin.ID, scheduled, entity.DoseStatusTaken),
		}, meds)
		assert.Len(t, result, 2)
		assert.Equal(t, "Amoxicillin", result[0].Name)
		assert.Equal(t, "Ibuprofen", result[1].Name)
	})
	t.Run("equal rates break tie by name", func(t *testing.T) {
		result := service.SummarizeByMedication([]*entity.DoseEvent{
			eventWithStatus(ibuprofen.ID, scheduled, entity.DoseStatusTaken),
			eventWithStatus(amoxicillin.ID, scheduled, entity.DoseStatusTaken),
		}, meds)
		assert.Len(t, result, 2)
		assert.Equal(t, "Amoxicillin", result[0].Name)
		assert.Equal(t, "Ibuprofen", result[1].Name)
	})
	t.Run("no events gives empty report", func(t *testing.T) {
		assert.Empty(t, service.SummarizeByMedication(nil, meds))
	})
}

func TestWeeklyTrend(t *testing.T) {
	medID := uuid.New()
	now := time.Date(2026, 3, 15, 18, 30, 0, 0, time.UTC)
	events := []*entity.DoseEvent{
		eventWithStatus(medID, time.Date(2026, 3, 15, 8, 0, 0, 0, time.UTC), entity.DoseStatusTaken),
		eventWithStatus(medID, time.Date(2026, 3, 13, 8, 0, 0, 0, time.UTC), entity.DoseStatusMissed),
		eventWithStatus(medID, time.Date(2026, 3, 13, 20, 0, 0, 0, time.UTC), entity.DoseStatusTaken),
		// outside the window
		eventWithStatus(medID, time.Date(2026, 3, 8, 8, 0, 0, 0, time.UTC), entity.DoseStatusTaken),
	}
	points := service.WeeklyTrend(events, now)
	assert.Len(t, points, 7)
	assert.Equal(t, time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC), points[0].Date)
	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), points[6].Date)
	assert.Equal(t, 0, points[0].Stats.Total)
	assert.Equal(t, 2, points[4].Stats.Total)
	assert.Equal(t, 50, points[4].Stats.AdherenceRate)
	assert.Equal(t, 1, points[6].Stats.Taken)
	assert.Equal(t, 100, points[6].Stats.AdherenceRate)
}
