package room

import "context"

type Repository interface {
	Create(ctx context.Context, name, building string, floor *int, capacity int, roomType string) (*Room, error)
	ListActive(ctx context.Context) ([]Room, error)
	GetByID(ctx context.Context, id int) (*Room, error)
	Deactivate(ctx context.Context, id int) (*Room, error)
	Delete(ctx context.Context, id int) error
}
