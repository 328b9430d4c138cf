package service

import (
	"sort"
	"time"

	"github.com/limbo/medtrack/pkg/entity"
)

// RemindersForDay derives the medication's reminders for one calendar day.
// Outside the active range the result is empty, inside it there is exactly one
// reminder per configured time of day, ascending. Duplicate configured times
// produce duplicate reminders, cleaning those up is the owner's job.
// Pure function: callers pass the day explicitly, so retroactive queries work.
func RemindersForDay(med *entity.Medication, day time.Time) []*entity.Reminder {
	reminders := make([]*entity.Reminder, 0, len(med.ReminderTimes))
	if !med.ActiveOn(day) {
		return reminders
	}
	for _, tod := range med.ReminderTimes {
		reminders = append(reminders, &entity.Reminder{
			MedicationID:  med.ID,
			Medication:    med,
			TimeOfDay:     tod,
			ScheduledTime: tod.At(day),
			Status:        entity.DoseStatusPending,
		})
	}
	sort.SliceStable(reminders, func(i, j int) bool {
		return reminders[i].TimeOfDay.Minutes() < reminders[j].TimeOfDay.Minutes()
	})
	return reminders
}
