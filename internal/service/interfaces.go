package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/medtrack/pkg/entity"
)

type RegisterRequest struct {
	Name     string `validate:"required,alphanum_underscore,min=3,max=100"`
	Password string `validate:"required,min=8,max=72"`
}

type PaginationOpts struct {
	Limit  int
	Offset int
}

type UserServiceI interface {
	// Validates user's credentials, creates new row in database. Returns user's data with ID
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	// Compares given credentials. If ok, give back user's data with ID.
	Login(ctx context.Context, name, password string) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByName(ctx context.Context, name string) (*entity.User, error)
	DeleteAccount(ctx context.Context, id uuid.UUID, password string) error
}

// MedicationRequest carries all mutable medication fields: creating and updating
// both replace the full set.
type MedicationRequest struct {
	Name           string   `validate:"required,max=200"`
	Dosage         string   `validate:"required,max=100"`
	Category       string   `validate:"required,medication_category"`
	FrequencyHours int      `validate:"required,gt=0"`
	TimesPerDay    int      `validate:"required,gt=0"`
	ReminderTimes  []string `validate:"required,min=1,dive,clock_time"`
	StartDate      time.Time
	EndDate        time.Time
	Instructions   string `validate:"max=1000"`
}

type MedicationsServiceI interface {
	// Validates the definition and stores a new medication owned by uid
	CreateMedication(ctx context.Context, uid uuid.UUID, req *MedicationRequest) (*entity.Medication, error)
	GetMedication(ctx context.Context, medID, uid uuid.UUID) (*entity.Medication, error)
	GetUserMedications(ctx context.Context, uid uuid.UUID, pagination PaginationOpts) ([]*entity.Medication, error)
	// Replaces all mutable fields. Past dose events are not touched
	UpdateMedication(ctx context.Context, medID, uid uuid.UUID, req *MedicationRequest) (*entity.Medication, error)
	// Deletes the definition only, dose history stays in the ledger
	DeleteMedication(ctx context.Context, medID, uid uuid.UUID) error
}

type MarkDoseRequest struct {
	MedicationID  uuid.UUID
	ScheduledTime time.Time
	Status        entity.DoseStatus
	Notes         string `validate:"max=500"`
}

type UpdateLogRequest struct {
	Status entity.DoseStatus
	Notes  string `validate:"max=500"`
}

// LogsFilter narrows GetLogs output. Nil means no constraint, From/To are inclusive.
type LogsFilter struct {
	MedicationID *uuid.UUID
	From         *time.Time
	To           *time.Time
}

// AdherenceServiceI owns the dose ledger. Every operation takes the caller-observed
// current time explicitly, there is no hidden clock inside.
type AdherenceServiceI interface {
	// Resolves the dose at (medication, scheduled time) as Taken or Missed.
	// Marking the same dose again replaces the previous decision
	MarkDose(ctx context.Context, uid uuid.UUID, req *MarkDoseRequest, now time.Time) (*entity.DoseEvent, error)
	// Corrects an already recorded event by its id
	UpdateLog(ctx context.Context, logID, uid uuid.UUID, req *UpdateLogRequest, now time.Time) (*entity.DoseEvent, error)
	// Lists the caller's dose events, most recent scheduled time first
	GetLogs(ctx context.Context, uid uuid.UUID, filter LogsFilter) ([]*entity.DoseEvent, error)
	// Reminders of all caller's medications for the given calendar day,
	// joined with ledger statuses. Unmarked reminders come back Pending
	DayReminders(ctx context.Context, uid uuid.UUID, day time.Time) ([]*entity.Reminder, error)
}

type ReportsServiceI interface {
	// Adherence summary over the caller's events, optionally bounded by scheduled time
	Stats(ctx context.Context, uid uuid.UUID, from, to *time.Time) (*entity.AdherenceSummary, error)
	// Per-medication breakdown, best adherence first. Events of deleted
	// medications are kept under an "Unknown Medication" bucket
	MedicationWise(ctx context.Context, uid uuid.UUID) ([]*entity.MedicationAdherence, error)
	// Per-day summaries for the trailing 7 days ending at now's day, oldest first
	WeeklyTrend(ctx context.Context, uid uuid.UUID, now time.Time) ([]*entity.TrendPoint, error)
}
