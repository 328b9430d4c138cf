package service_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/medtrack/internal/service"
	"github.com/limbo/medtrack/pkg/entity"
	"github.com/stretchr/testify/assert"
)

func mustTimeOfDay(t *testing.T, s string) entity.TimeOfDay {
	t.Helper()
	tod, err := entity.ParseTimeOfDay(s)
	if err != nil {
		t.Fatal(err)
	}
	return tod
}

func TestRemindersForDay(t *testing.T) {
	med := &entity.Medication{
		ID:             uuid.New(),
		UserID:         uuid.New(),
		Name:           "Paracetamol",
		Dosage:         "500mg",
		Category:       entity.CategoryPainkiller,
		FrequencyHours: 8,
		TimesPerDay:    3,
		ReminderTimes: []entity.TimeOfDay{
			mustTimeOfDay(t, "20:00"),
			mustTimeOfDay(t, "08:00"),
			mustTimeOfDay(t, "14:00"),
		},
		StartDate: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC),
	}
	t.Run("inside active range", func(t *testing.T) {
		day := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
		reminders := service.RemindersForDay(med, day)
		assert.Len(t, reminders, 3)
		assert.Equal(t, "08:00", reminders[0].TimeOfDay.String())
		assert.Equal(t, "14:00", reminders[1].TimeOfDay.String())
		assert.Equal(t, "20:00", reminders[2].TimeOfDay.String())
		for _, reminder := range reminders {
			assert.Equal(t, med.ID, reminder.MedicationID)
			assert.Equal(t, entity.DoseStatusPending, reminder.Status)
			assert.Equal(t, day.Day(), reminder.ScheduledTime.Day())
		}
		assert.Equal(t, time.Date(2026, 3, 15, 8, 0, 0, 0, time.UTC), reminders[0].ScheduledTime)
	})
	t.Run("boundary days are active", func(t *testing.T) {
		assert.Len(t, service.RemindersForDay(med, med.StartDate), 3)
		assert.Len(t, service.RemindersForDay(med, med.EndDate), 3)
	})
	t.Run("before start", func(t *testing.T) {
		day := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
		assert.Empty(t, service.RemindersForDay(med, day))
	})
	t.Run("after end", func(t *testing.T) {
		day := time.Date(2026, 3, 21, 0, 0, 0, 0, time.UTC)
		assert.Empty(t, service.RemindersForDay(med, day))
	})
	t.Run("duplicate times produce duplicate reminders", func(t *testing.T) {
		doubled := *med
		doubled.ReminderTimes = []entity.TimeOfDay{
			mustTimeOfDay(t, "08:00"),
			mustTimeOfDay(t, "08:00"),
		}
		reminders := service.RemindersForDay(&doubled, med.StartDate)
		assert.Len(t, reminders, 2)
		assert.Equal(t, reminders[0].ScheduledTime, reminders[1].ScheduledTime)
	})
}
