package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/medtrack/pkg/entity"
)

type UsersRepositoryI interface {
	// Creates new user in database
	Create(ctx context.Context, user *entity.User) error
	// Looks up user by name. Can be used for login
	FindByName(ctx context.Context, name string) (*entity.User, error)
	// Looks up user by uid. Can be used for authorization middleware
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Updates user's info
	Update(ctx context.Context, user *entity.User) error
	// Deletes user
	Delete(ctx context.Context, uid uuid.UUID) error
}

type MedicationsRepositoryI interface {
	// Creates new medication in database. Returns generated id
	Create(ctx context.Context, med *entity.Medication) (uuid.UUID, error)
	// Searches medication with given id
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Medication, error)
	// Lists medications owned by user with uid. Requires pagination params provided
	GetByUserID(ctx context.Context, uid uuid.UUID, limit, offset int) ([]*entity.Medication, error)
	// Updates medication by ID (ID in med is necessary)
	Update(ctx context.Context, med *entity.Medication) error
	// Deletes medication with id. Historical dose events are kept on purpose
	Delete(ctx context.Context, id uuid.UUID) error
}

// DoseEventFilter narrows GetByUser results. Nil fields mean no constraint,
// From/To bound scheduled_time inclusively.
type DoseEventFilter struct {
	MedicationID *uuid.UUID
	From         *time.Time
	To           *time.Time
}

type DoseEventsRepositoryI interface {
	// Writes the decision for (medication_id, scheduled_time). An existing row is
	// overwritten atomically, so concurrent marks resolve last-writer-wins by logged_at
	Upsert(ctx context.Context, event *entity.DoseEvent) (*entity.DoseEvent, error)
	// Searches dose event with given id
	GetByID(ctx context.Context, id uuid.UUID) (*entity.DoseEvent, error)
	// Searches dose event by its natural key
	GetByKey(ctx context.Context, medicationID uuid.UUID, scheduledTime time.Time) (*entity.DoseEvent, error)
	// Lists user's dose events, most recent scheduled_time first
	GetByUser(ctx context.Context, uid uuid.UUID, filter DoseEventFilter) ([]*entity.DoseEvent, error)
	// Rewrites status/notes of an existing event by id
	UpdateByID(ctx context.Context, id uuid.UUID, status entity.DoseStatus, notes string) (*entity.DoseEvent, error)
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
