package repository

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	errorvalues "github.com/limbo/medtrack/internal/error_values"
	"github.com/limbo/medtrack/pkg/cleanup"
	"github.com/limbo/medtrack/pkg/entity"
)

type DoseEventsRepository struct {
	conn PgConnection
}

func NewDoseEventsRepo(cfg DBConfig) *DoseEventsRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for doseEventsRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for doseEventsRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &DoseEventsRepository{
		conn: pool,
	}
}

func NewDoseEventsRepoWithConn(conn PgConnection) *DoseEventsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for doseEventsRepo: " + err.Error())
	}
	return &DoseEventsRepository{
		conn: conn,
	}
}

// Upsert relies on the (medication_id, scheduled_time) unique index: re-marking the
// same dose rewrites the row instead of inserting a duplicate, and the database
// serializes concurrent marks on that key.
func (der *DoseEventsRepository) Upsert(ctx context.Context, event *entity.DoseEvent) (*entity.DoseEvent, error) {
	stored := *event
	row := der.conn.QueryRow(ctx, `INSERT INTO dose_events (medication_id, user_id, scheduled_time, status, notes)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (medication_id, scheduled_time)
		DO UPDATE SET status = EXCLUDED.status, notes = EXCLUDED.notes, logged_at = NOW()
		RETURNING id, logged_at;`,
		event.MedicationID,
		event.UserID,
		event.ScheduledTime,
		string(event.Status),
		event.Notes,
	)
	if err := row.Scan(&stored.ID, &stored.LoggedAt); err != nil {
		return nil, errors.New("upserting dose event error: " + err.Error())
	}
	return &stored, nil
}

func (der *DoseEventsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.DoseEvent, error) {
	var event entity.DoseEvent
	var status string
	event.ID = id
	row := der.conn.QueryRow(ctx, `SELECT medication_id, user_id, scheduled_time, status, notes, logged_at
		FROM dose_events WHERE id = $1;`, id)
	err := row.Scan(&event.MedicationID, &event.UserID, &event.ScheduledTime, &status, &event.Notes, &event.LoggedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrDoseEventNotFound
		}
		return nil, errors.New("getting dose event by id error: " + err.Error())
	}
	event.Status = entity.DoseStatus(status)
	return &event, nil
}

func (der *DoseEventsRepository) GetByKey(ctx context.Context, medicationID uuid.UUID, scheduledTime time.Time) (*entity.DoseEvent, error) {
	var event entity.DoseEvent
	var status string
	row := der.conn.QueryRow(ctx, `SELECT id, medication_id, user_id, scheduled_time, status, notes, logged_at
		FROM dose_events WHERE medication_id = $1 AND scheduled_time = $2;`, medicationID, scheduledTime)
	err := row.Scan(&event.ID, &event.MedicationID, &event.UserID, &event.ScheduledTime, &status, &event.Notes, &event.LoggedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrDoseEventNotFound
		}
		return nil, errors.New("getting dose event by key error: " + err.Error())
	}
	event.Status = entity.DoseStatus(status)
	return &event, nil
}

func (der *DoseEventsRepository) GetByUser(ctx context.Context, uid uuid.UUID, filter DoseEventFilter) ([]*entity.DoseEvent, error) {
	query := `SELECT id, medication_id, user_id, scheduled_time, status, notes, logged_at FROM dose_events WHERE user_id = $1`
	args := []any{uid}
	if filter.MedicationID != nil {
		args = append(args, *filter.MedicationID)
		query += fmt.Sprintf(" AND medication_id = $%d", len(args))
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		query += fmt.Sprintf(" AND scheduled_time >= $%d", len(args))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		query += fmt.Sprintf(" AND scheduled_time <= $%d", len(args))
	}
	query += " ORDER BY scheduled_time DESC;"
	rows, err := der.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.New("getting dose events by uid error: " + err.Error())
	}
	defer rows.Close()
	events := make([]*entity.DoseEvent, 0)
	for rows.Next() {
		e := entity.DoseEvent{}
		var status string
		err = rows.Scan(&e.ID, &e.MedicationID, &e.UserID, &e.ScheduledTime, &status, &e.Notes, &e.LoggedAt)
		if err != nil {
			return nil, errors.New("dose event row parsing error: " + err.Error())
		}
		e.Status = entity.DoseStatus(status)
		events = append(events, &e)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected dose event rows error: " + rows.Err().Error())
	}
	return events, nil
}

func (der *DoseEventsRepository) UpdateByID(ctx context.Context, id uuid.UUID, status entity.DoseStatus, notes string) (*entity.DoseEvent, error) {
	var event entity.DoseEvent
	event.ID = id
	event.Status = status
	event.Notes = notes
	row := der.conn.QueryRow(ctx, `UPDATE dose_events SET status = $1, notes = $2, logged_at = NOW() WHERE id = $3
		RETURNING medication_id, user_id, scheduled_time, logged_at;`,
		string(status), notes, id,
	)
	err := row.Scan(&event.MedicationID, &event.UserID, &event.ScheduledTime, &event.LoggedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrDoseEventNotFound
		}
		return nil, errors.New("updating dose event error: " + err.Error())
	}
	return &event, nil
}
