package room

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/Uoerim/UniSphere-sub001/internal/db"
)

var (
	ErrDuplicateName = errors.New("room name already taken")
	ErrRoomNotFound  = errors.New("room not found")
)

const defaultRoomType = "classroom"

type repository struct {
	db *sqlx.DB
}

func NewRepository(database *sqlx.DB) Repository {
	return &repository{db: database}
}

func (r *repository) Create(ctx context.Context, name, building string, floor *int, capacity int, roomType string) (*Room, error) {
	if roomType == "" {
		roomType = defaultRoomType
	}

	query := `
		INSERT INTO rooms (name, building, floor, capacity, room_type)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, building, floor, capacity, room_type, is_active, created_at
	`

	var room Room
	err := r.db.GetContext(ctx, &room, query, name, building, floor, capacity, roomType)
	if err != nil {
		if db.IsUniqueViolation(err, "rooms_name_key") {
			return nil, ErrDuplicateName
		}
		return nil, err
	}

	return &room, nil
}

// ListActive returns bookable rooms in registry order (insertion order by id).
func (r *repository) ListActive(ctx context.Context) ([]Room, error) {
	query := `
		SELECT id, name, building, floor, capacity, room_type, is_active, created_at
		FROM rooms
		WHERE is_active = TRUE
		ORDER BY id ASC
	`

	var rooms []Room
	err := r.db.SelectContext(ctx, &rooms, query)
	if err != nil {
		return nil, err
	}

	return rooms, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Room, error) {
	query := `
		SELECT id, name, building, floor, capacity, room_type, is_active, created_at
		FROM rooms
		WHERE id = $1
	`

	var room Room
	err := r.db.GetContext(ctx, &room, query, id)
	if err != nil {
		return nil, err
	}

	return &room, nil
}

func (r *repository) Deactivate(ctx context.Context, id int) (*Room, error) {
	query := `
		UPDATE rooms
		SET is_active = FALSE
		WHERE id = $1
		RETURNING id, name, building, floor, capacity, room_type, is_active, created_at
	`

	var room Room
	err := r.db.GetContext(ctx, &room, query, id)
	if err != nil {
		return nil, err
	}

	return &room, nil
}

func (r *repository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM rooms WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrRoomNotFound
	}

	return nil
}
