package reservation

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, roomID, timeslotID int, date, reservedFor string, createdBy int) (*Reservation, error)
	GetByID(ctx context.Context, id int) (*Reservation, error)
	GetDetails(ctx context.Context, id int) (*ReservationDetails, error)
	Cancel(ctx context.Context, id int) (*Reservation, error)
	ListOccupied(ctx context.Context, date string) ([]OccupiedSlot, error)
	ListByUser(ctx context.Context, userID int) ([]ReservationDetails, error)
	ListByDate(ctx context.Context, date string) ([]ReservationDetails, error)
	StatsByDay(ctx context.Context, from, to time.Time) ([]StatsByDay, error)
	StatsByRoom(ctx context.Context, from, to time.Time) ([]StatsByRoom, error)
}
