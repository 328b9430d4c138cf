package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	errorvalues "github.com/limbo/medtrack/internal/error_values"
	"github.com/limbo/medtrack/pkg/cleanup"
	"github.com/limbo/medtrack/pkg/entity"
)

type MedicationsRepository struct {
	conn PgConnection
}

func NewMedicationsRepo(cfg DBConfig) *MedicationsRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for medicationsRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for medicationsRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &MedicationsRepository{
		conn: pool,
	}
}

func NewMedicationsRepoWithConn(conn PgConnection) *MedicationsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for medicationsRepo: " + err.Error())
	}
	return &MedicationsRepository{
		conn: conn,
	}
}

// reminder_times lives in postgres as text[] of "HH:MM" entries.
func timesToStrings(times []entity.TimeOfDay) []string {
	strs := make([]string, 0, len(times))
	for _, tod := range times {
		strs = append(strs, tod.String())
	}
	return strs
}

func timesFromStrings(strs []string) ([]entity.TimeOfDay, error) {
	times := make([]entity.TimeOfDay, 0, len(strs))
	for _, s := range strs {
		tod, err := entity.ParseTimeOfDay(s)
		if err != nil {
			return nil, errors.New("stored reminder time is corrupted: " + err.Error())
		}
		times = append(times, tod)
	}
	return times, nil
}

func (mr *MedicationsRepository) Create(ctx context.Context, med *entity.Medication) (uuid.UUID, error) {
	var id uuid.UUID
	row := mr.conn.QueryRow(ctx, `INSERT INTO medications
		(user_id, name, dosage, category, frequency_hours, times_per_day, reminder_times, start_date, end_date, instructions)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id;`,
		med.UserID,
		med.Name,
		med.Dosage,
		string(med.Category),
		med.FrequencyHours,
		med.TimesPerDay,
		timesToStrings(med.ReminderTimes),
		med.StartDate,
		med.EndDate,
		med.Instructions,
	)
	if err := row.Scan(&id); err != nil {
		return uuid.UUID{}, errors.New("creating medication db error: " + err.Error())
	}
	return id, nil
}

func (mr *MedicationsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Medication, error) {
	var med entity.Medication
	var category string
	var times []string
	med.ID = id
	row := mr.conn.QueryRow(ctx, `SELECT user_id, name, dosage, category, frequency_hours, times_per_day,
		reminder_times, start_date, end_date, instructions, created_at, updated_at FROM medications WHERE id = $1;`, id)
	err := row.Scan(&med.UserID, &med.Name, &med.Dosage, &category, &med.FrequencyHours, &med.TimesPerDay,
		&times, &med.StartDate, &med.EndDate, &med.Instructions, &med.CreatedAt, &med.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrMedicationNotFound
		}
		return nil, errors.New("getting medication by id error: " + err.Error())
	}
	med.Category = entity.MedicationCategory(category)
	med.ReminderTimes, err = timesFromStrings(times)
	if err != nil {
		return nil, err
	}
	return &med, nil
}

func (mr *MedicationsRepository) GetByUserID(ctx context.Context, uid uuid.UUID, limit, offset int) ([]*entity.Medication, error) {
	meds := make([]*entity.Medication, 0)
	rows, err := mr.conn.Query(ctx, `SELECT id, user_id, name, dosage, category, frequency_hours, times_per_day,
		reminder_times, start_date, end_date, instructions, created_at, updated_at
		FROM medications WHERE user_id = $1 ORDER BY created_at LIMIT $2 OFFSET $3;`, uid, limit, offset)
	if err != nil {
		return nil, errors.New("getting medications by uid error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		m := entity.Medication{}
		var category string
		var times []string
		err = rows.Scan(&m.ID, &m.UserID, &m.Name, &m.Dosage, &category, &m.FrequencyHours, &m.TimesPerDay,
			&times, &m.StartDate, &m.EndDate, &m.Instructions, &m.CreatedAt, &m.UpdatedAt)
		if err != nil {
			return nil, errors.New("unmarshalling medication error: " + err.Error())
		}
		m.Category = entity.MedicationCategory(category)
		m.ReminderTimes, err = timesFromStrings(times)
		if err != nil {
			return nil, err
		}
		meds = append(meds, &m)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected error after scanning: " + rows.Err().Error())
	}
	return meds, nil
}

func (mr *MedicationsRepository) Update(ctx context.Context, med *entity.Medication) error {
	ct, err := mr.conn.Exec(ctx, `UPDATE medications SET name = $1, dosage = $2, category = $3, frequency_hours = $4,
		times_per_day = $5, reminder_times = $6, start_date = $7, end_date = $8, instructions = $9, updated_at = NOW() WHERE id = $10;`,
		med.Name, med.Dosage, string(med.Category), med.FrequencyHours, med.TimesPerDay,
		timesToStrings(med.ReminderTimes), med.StartDate, med.EndDate, med.Instructions, med.ID,
	)
	if err != nil {
		return errors.New("error updating medication: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrMedicationNotFound
	}
	return nil
}

func (mr *MedicationsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := mr.conn.Exec(ctx, `DELETE FROM medications WHERE id = $1;`, id)
	if err != nil {
		return errors.New("error deleting medication: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrMedicationNotFound
	}
	return nil
}
