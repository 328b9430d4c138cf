package entity

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID
	Name         string
	PasswordHash string
}

type MedicationCategory string

const (
	CategoryPainkiller       MedicationCategory = "Painkiller"
	CategoryAntibiotic       MedicationCategory = "Antibiotic"
	CategoryAntiInflammatory MedicationCategory = "Anti-inflammatory"
	CategoryOther            MedicationCategory = "Other"
)

func (c MedicationCategory) Valid() bool {
	switch c {
	case CategoryPainkiller, CategoryAntibiotic, CategoryAntiInflammatory, CategoryOther:
		return true
	}
	return false
}

// TimeOfDay is a wall-clock reminder time without a date, e.g. 08:00.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// ParseTimeOfDay parses strict 24h "HH:MM" strings.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	var tod TimeOfDay
	if len(s) != 5 || s[2] != ':' {
		return tod, errors.New("time of day must be in HH:MM format")
	}
	if _, err := fmt.Sscanf(s, "%02d:%02d", &tod.Hour, &tod.Minute); err != nil {
		return tod, errors.New("time of day must be in HH:MM format")
	}
	if tod.Hour < 0 || tod.Hour > 23 || tod.Minute < 0 || tod.Minute > 59 {
		return tod, errors.New("time of day out of range")
	}
	return tod, nil
}

func (tod TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", tod.Hour, tod.Minute)
}

// Minutes since midnight, used for ordering reminders within a day.
func (tod TimeOfDay) Minutes() int {
	return tod.Hour*60 + tod.Minute
}

// At combines the time of day with the calendar date of day, in day's location.
func (tod TimeOfDay) At(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), tod.Hour, tod.Minute, 0, 0, day.Location())
}

func (tod TimeOfDay) MarshalJSON() ([]byte, error) {
	return []byte(`"` + tod.String() + `"`), nil
}

func (tod *TimeOfDay) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return errors.New("time of day must be a JSON string")
	}
	parsed, err := ParseTimeOfDay(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}
	*tod = parsed
	return nil
}

type Medication struct {
	ID             uuid.UUID          `json:"id"`
	UserID         uuid.UUID          `json:"uid"`
	Name           string             `json:"name"`
	Dosage         string             `json:"dosage"`
	Category       MedicationCategory `json:"category"`
	FrequencyHours int                `json:"frequency"`
	TimesPerDay    int                `json:"times_per_day"`
	ReminderTimes  []TimeOfDay        `json:"reminder_times"`
	StartDate      time.Time          `json:"start_date"`
	EndDate        time.Time          `json:"end_date"`
	Instructions   string             `json:"instructions,omitempty"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
}

// ActiveOn reports whether day falls inside the medication's active range.
// Both bounds are inclusive and compared as calendar dates.
func (m *Medication) ActiveOn(day time.Time) bool {
	d := dateOnly(day)
	return !d.Before(dateOnly(m.StartDate)) && !d.After(dateOnly(m.EndDate))
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

type DoseStatus string

const (
	DoseStatusPending DoseStatus = "Pending"
	DoseStatusTaken   DoseStatus = "Taken"
	DoseStatusMissed  DoseStatus = "Missed"
)

func (s DoseStatus) Valid() bool {
	switch s {
	case DoseStatusPending, DoseStatusTaken, DoseStatusMissed:
		return true
	}
	return false
}

// Resolved reports whether the status represents a user decision.
func (s DoseStatus) Resolved() bool {
	return s == DoseStatusTaken || s == DoseStatusMissed
}

type DoseEvent struct {
	ID            uuid.UUID  `json:"id"`
	MedicationID  uuid.UUID  `json:"medication_id"`
	UserID        uuid.UUID  `json:"uid"`
	ScheduledTime time.Time  `json:"scheduled_time"`
	Status        DoseStatus `json:"status"`
	Notes         string     `json:"notes,omitempty"`
	LoggedAt      time.Time  `json:"logged_at"`
}

// Reminder is derived from a medication's schedule and never persisted.
type Reminder struct {
	MedicationID  uuid.UUID   `json:"medication_id"`
	Medication    *Medication `json:"medication,omitempty"`
	TimeOfDay     TimeOfDay   `json:"time"`
	ScheduledTime time.Time   `json:"scheduled_time"`
	Status        DoseStatus  `json:"status"`
}

type AdherenceSummary struct {
	Total         int `json:"total"`
	Taken         int `json:"taken"`
	Missed        int `json:"missed"`
	Pending       int `json:"pending"`
	AdherenceRate int `json:"adherence_rate"`
}

type MedicationAdherence struct {
	MedicationID uuid.UUID        `json:"medication_id"`
	Name         string           `json:"name"`
	Stats        AdherenceSummary `json:"stats"`
}

type TrendPoint struct {
	Date  time.Time        `json:"date"`
	Stats AdherenceSummary `json:"stats"`
}
