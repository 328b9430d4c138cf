package service

import (
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/medtrack/pkg/entity"
)

// Bucket name for events whose medication has been deleted. Historical totals
// must survive a deleted definition.
const UnknownMedicationName = "Unknown Medication"

// Summarize counts dose events by status. The adherence rate is
// taken/(taken+missed) as a rounded percentage, pending doses don't count
// against the rate. Zero denominator gives rate 0.
func Summarize(events []*entity.DoseEvent) entity.AdherenceSummary {
	var summary entity.AdherenceSummary
	for _, event := range events {
		summary.Total++
		switch event.Status {
		case entity.DoseStatusTaken:
			summary.Taken++
		case entity.DoseStatusMissed:
			summary.Missed++
		default:
			summary.Pending++
		}
	}
	if resolved := summary.Taken + summary.Missed; resolved > 0 {
		summary.AdherenceRate = int(math.Round(float64(summary.Taken) / float64(resolved) * 100))
	}
	return summary
}

// SummarizeByMedication groups events per referenced medication, one bucket per
// medication that has at least one event. Ordering is deterministic: adherence
// rate descending, then name ascending, then id as the final tie-break.
func SummarizeByMedication(events []*entity.DoseEvent, medications []*entity.Medication) []*entity.MedicationAdherence {
	namesByID := make(map[uuid.UUID]string, len(medications))
	for _, med := range medications {
		namesByID[med.ID] = med.Name
	}
	grouped := make(map[uuid.UUID][]*entity.DoseEvent)
	for _, event := range events {
		grouped[event.MedicationID] = append(grouped[event.MedicationID], event)
	}
	result := make([]*entity.MedicationAdherence, 0, len(grouped))
	for medID, medEvents := range grouped {
		name, ok := namesByID[medID]
		if !ok {
			name = UnknownMedicationName
		}
		result = append(result, &entity.MedicationAdherence{
			MedicationID: medID,
			Name:         name,
			Stats:        Summarize(medEvents),
		})
	}
	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Stats.AdherenceRate != result[j].Stats.AdherenceRate {
			return result[i].Stats.AdherenceRate > result[j].Stats.AdherenceRate
		}
		if result[i].Name != result[j].Name {
			return result[i].Name < result[j].Name
		}
		return result[i].MedicationID.String() < result[j].MedicationID.String()
	})
	return result
}

// WeeklyTrend buckets events by the calendar day of their scheduled time over
// the trailing 7 days ending at now's day, oldest day first.
func WeeklyTrend(events []*entity.DoseEvent, now time.Time) []*entity.TrendPoint {
	points := make([]*entity.TrendPoint, 0, 7)
	for offset := 6; offset >= 0; offset-- {
		day := now.AddDate(0, 0, -offset)
		dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
		dayEnd := dayStart.AddDate(0, 0, 1)
		dayEvents := make([]*entity.DoseEvent, 0)
		for _, event := range events {
			if !event.ScheduledTime.Before(dayStart) && event.ScheduledTime.Before(dayEnd) {
				dayEvents = append(dayEvents, event)
			}
		}
		points = append(points, &entity.TrendPoint{
			Date:  dayStart,
			Stats: Summarize(dayEvents),
		})
	}
	return points
}
