package reservation

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/Uoerim/UniSphere-sub001/internal/db"
)

var (
	// ErrSlotTaken is the translated unique-index violation: another
	// non-cancelled reservation holds the same room, date and timeslot.
	ErrSlotTaken = errors.New("room already reserved for this date and timeslot")

	ErrReservationNotFound = errors.New("reservation not found")
)

const detailsColumns = `
	r.id,
	r.room_id,
	r.timeslot_id,
	to_char(r.reserved_date, 'YYYY-MM-DD') AS reserved_date,
	r.reserved_for,
	r.created_by,
	r.status,
	r.created_at,
	rm.name        AS room_name,
	rm.building    AS room_building,
	rm.capacity    AS room_capacity,
	ts.day_of_week AS slot_day_of_week,
	ts.start_time  AS slot_start_time,
	ts.end_time    AS slot_end_time,
	u.name         AS created_by_name
`

type repository struct {
	db *sqlx.DB
}

func NewRepository(database *sqlx.DB) Repository {
	return &repository{db: database}
}

// Create inserts a confirmed reservation. The insert itself is the
// concurrency guard: the partial unique index on (room_id, reserved_date,
// timeslot_id) rejects a second non-cancelled row no matter how the
// racing requests interleave, and that rejection surfaces as ErrSlotTaken.
func (r *repository) Create(ctx context.Context, roomID, timeslotID int, date, reservedFor string, createdBy int) (*Reservation, error) {
	query := `
		INSERT INTO reservations (room_id, timeslot_id, reserved_date, reserved_for, created_by, status)
		VALUES ($1, $2, $3::date, $4, $5, 'confirmed')
		RETURNING id, room_id, timeslot_id, to_char(reserved_date, 'YYYY-MM-DD') AS reserved_date,
		          reserved_for, created_by, status, created_at
	`

	var res Reservation
	err := r.db.GetContext(ctx, &res, query, roomID, timeslotID, date, reservedFor, createdBy)
	if err != nil {
		if db.IsUniqueViolation(err, "reservations_slot_key") {
			return nil, ErrSlotTaken
		}
		return nil, err
	}

	return &res, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Reservation, error) {
	query := `
		SELECT id, room_id, timeslot_id, to_char(reserved_date, 'YYYY-MM-DD') AS reserved_date,
		       reserved_for, created_by, status, created_at
		FROM reservations
		WHERE id = $1
	`

	var res Reservation
	err := r.db.GetContext(ctx, &res, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}

	return &res, nil
}

func (r *repository) GetDetails(ctx context.Context, id int) (*ReservationDetails, error) {
	query := `
		SELECT ` + detailsColumns + `
		FROM reservations r
		LEFT JOIN rooms rm     ON r.room_id = rm.id
		LEFT JOIN timeslots ts ON r.timeslot_id = ts.id
		LEFT JOIN users u      ON r.created_by = u.id
		WHERE r.id = $1
	`

	var details ReservationDetails
	err := r.db.GetContext(ctx, &details, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}

	return &details, nil
}

// Cancel marks the reservation cancelled and returns the updated row.
// Cancelling an already-cancelled reservation is a successful no-op;
// only an unknown id is an error.
func (r *repository) Cancel(ctx context.Context, id int) (*Reservation, error) {
	query := `
		UPDATE reservations
		SET status = 'cancelled'
		WHERE id = $1
		RETURNING id, room_id, timeslot_id, to_char(reserved_date, 'YYYY-MM-DD') AS reserved_date,
		          reserved_for, created_by, status, created_at
	`

	var res Reservation
	err := r.db.GetContext(ctx, &res, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}

	return &res, nil
}

// ListOccupied returns the taken (room, timeslot) pairs for a date.
// Cancelled reservations never block availability.
func (r *repository) ListOccupied(ctx context.Context, date string) ([]OccupiedSlot, error) {
	query := `
		SELECT room_id, timeslot_id
		FROM reservations
		WHERE reserved_date = $1::date AND status <> 'cancelled'
	`

	var occupied []OccupiedSlot
	err := r.db.SelectContext(ctx, &occupied, query, date)
	if err != nil {
		return nil, err
	}

	return occupied, nil
}

func (r *repository) ListByUser(ctx context.Context, userID int) ([]ReservationDetails, error) {
	query := `
		SELECT ` + detailsColumns + `
		FROM reservations r
		LEFT JOIN rooms rm     ON r.room_id = rm.id
		LEFT JOIN timeslots ts ON r.timeslot_id = ts.id
		LEFT JOIN users u      ON r.created_by = u.id
		WHERE r.created_by = $1
		ORDER BY r.reserved_date DESC, r.created_at DESC
	`

	var list []ReservationDetails
	err := r.db.SelectContext(ctx, &list, query, userID)
	if err != nil {
		return nil, err
	}

	return list, nil
}

func (r *repository) ListByDate(ctx context.Context, date string) ([]ReservationDetails, error) {
	query := `
		SELECT ` + detailsColumns + `
		FROM reservations r
		LEFT JOIN rooms rm     ON r.room_id = rm.id
		LEFT JOIN timeslots ts ON r.timeslot_id = ts.id
		LEFT JOIN users u      ON r.created_by = u.id
		WHERE r.reserved_date = $1::date
		ORDER BY ts.start_time ASC, r.created_at ASC
	`

	var list []ReservationDetails
	err := r.db.SelectContext(ctx, &list, query, date)
	if err != nil {
		return nil, err
	}

	return list, nil
}
