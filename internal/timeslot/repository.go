package timeslot

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/Uoerim/UniSphere-sub001/internal/db"
)

var (
	ErrDuplicateSlot = errors.New("timeslot already exists for this day and window")
	ErrSlotNotFound  = errors.New("timeslot not found")
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(database *sqlx.DB) Repository {
	return &repository{db: database}
}

func (r *repository) Create(ctx context.Context, dayOfWeek int, startTime, endTime string) (*Timeslot, error) {
	query := `
		INSERT INTO timeslots (day_of_week, start_time, end_time)
		VALUES ($1, $2, $3)
		RETURNING id, day_of_week, start_time, end_time, created_at
	`

	var slot Timeslot
	err := r.db.GetContext(ctx, &slot, query, dayOfWeek, startTime, endTime)
	if err != nil {
		if db.IsUniqueViolation(err, "timeslots_day_window_key") {
			return nil, ErrDuplicateSlot
		}
		return nil, err
	}

	return &slot, nil
}

func (r *repository) ListByDay(ctx context.Context, dayOfWeek int) ([]Timeslot, error) {
	query := `
		SELECT id, day_of_week, start_time, end_time, created_at
		FROM timeslots
		WHERE day_of_week = $1
		ORDER BY start_time ASC, end_time ASC
	`

	var slots []Timeslot
	err := r.db.SelectContext(ctx, &slots, query, dayOfWeek)
	if err != nil {
		return nil, err
	}

	return slots, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Timeslot, error) {
	query := `
		SELECT id, day_of_week, start_time, end_time, created_at
		FROM timeslots
		WHERE id = $1
	`

	var slot Timeslot
	err := r.db.GetContext(ctx, &slot, query, id)
	if err != nil {
		return nil, err
	}

	return &slot, nil
}

func (r *repository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM timeslots WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrSlotNotFound
	}

	return nil
}
