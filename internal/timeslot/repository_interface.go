package timeslot

import "context"

type Repository interface {
	Create(ctx context.Context, dayOfWeek int, startTime, endTime string) (*Timeslot, error)
	ListByDay(ctx context.Context, dayOfWeek int) ([]Timeslot, error)
	GetByID(ctx context.Context, id int) (*Timeslot, error)
	Delete(ctx context.Context, id int) error
}
