package timeslot

import (
	"context"
	"errors"
	"regexp"

	"github.com/Uoerim/UniSphere-sub001/internal/cache"
)

var ErrInvalidSlot = errors.New("invalid timeslot data")

// Zero-padded 24h clock. Lexical comparison of matching strings is
// equivalent to chronological comparison.
var timePattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

type Service interface {
	Create(ctx context.Context, req CreateTimeslotRequest) (*Timeslot, error)
	ListByDay(ctx context.Context, dayOfWeek int) ([]Timeslot, error)
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

func (s *service) Create(ctx context.Context, req CreateTimeslotRequest) (*Timeslot, error) {
	if req.DayOfWeek == nil || *req.DayOfWeek < 0 || *req.DayOfWeek > 6 {
		return nil, ErrInvalidSlot
	}

	if !timePattern.MatchString(req.StartTime) || !timePattern.MatchString(req.EndTime) {
		return nil, ErrInvalidSlot
	}

	if req.StartTime >= req.EndTime {
		return nil, ErrInvalidSlot
	}

	slot, err := s.repo.Create(ctx, *req.DayOfWeek, req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}

	s.cache.InvalidateCatalog(ctx)
	return slot, nil
}

func (s *service) ListByDay(ctx context.Context, dayOfWeek int) ([]Timeslot, error) {
	if dayOfWeek < 0 || dayOfWeek > 6 {
		return nil, ErrInvalidSlot
	}

	key := cache.TimeslotDayKey(dayOfWeek)

	var cached []Timeslot
	if s.cache.Get(ctx, key, &cached) {
		return cached, nil
	}

	slots, err := s.repo.ListByDay(ctx, dayOfWeek)
	if err != nil {
		return nil, err
	}

	s.cache.Set(ctx, key, slots)
	return slots, nil
}

func (s *service) Delete(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.cache.InvalidateCatalog(ctx)
	return nil
}
