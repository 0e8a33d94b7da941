package room

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Uoerim/UniSphere-sub001/internal/cache"
)

var ErrInvalidRoom = errors.New("invalid room data")

type Service interface {
	Create(ctx context.Context, req CreateRoomRequest) (*Room, error)
	ListActive(ctx context.Context) ([]Room, error)
	Deactivate(ctx context.Context, id int) (*Room, error)
	Delete(ctx context.Context, id int) error
}

type service struct {
	repo  Repository
	cache *cache.Cache
}

func NewService(repo Repository, catalogCache *cache.Cache) Service {
	return &service{
		repo:  repo,
		cache: catalogCache,
	}
}

func (s *service) Create(ctx context.Context, req CreateRoomRequest) (*Room, error) {
	if req.Name == "" || req.Building == "" || req.Capacity < 1 {
		return nil, ErrInvalidRoom
	}

	room, err := s.repo.Create(ctx, req.Name, req.Building, req.Floor, req.Capacity, req.RoomType)
	if err != nil {
		return nil, err
	}

	s.cache.InvalidateCatalog(ctx)
	return room, nil
}

func (s *service) ListActive(ctx context.Context) ([]Room, error) {
	var cached []Room
	if s.cache.Get(ctx, cache.RoomsActiveKey, &cached) {
		return cached, nil
	}

	rooms, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	s.cache.Set(ctx, cache.RoomsActiveKey, rooms)
	return rooms, nil
}

func (s *service) Deactivate(ctx context.Context, id int) (*Room, error) {
	room, err := s.repo.Deactivate(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	s.cache.InvalidateCatalog(ctx)
	return room, nil
}

func (s *service) Delete(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.cache.InvalidateCatalog(ctx)
	return nil
}
