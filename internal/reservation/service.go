package reservation

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Uoerim/UniSphere-sub001/internal/metrics"
	"github.com/Uoerim/UniSphere-sub001/internal/room"
	"github.com/Uoerim/UniSphere-sub001/internal/timeslot"
)

var (
	ErrInvalidInput     = errors.New("missing or malformed reservation fields")
	ErrInvalidDate      = errors.New("invalid date, expected YYYY-MM-DD")
	ErrRoomNotFound     = errors.New("room not found")
	ErrTimeslotNotFound = errors.New("timeslot not found")
)

type Service interface {
	Book(ctx context.Context, req CreateReservationRequest, createdBy int) (*ReservationDetails, error)
	Cancel(ctx context.Context, id int) (*Reservation, error)
	ComputeAvailability(ctx context.Context, date string) (*DayAvailability, error)
	ListMine(ctx context.Context, userID int) ([]ReservationDetails, error)
	ListForDate(ctx context.Context, date string) ([]ReservationDetails, error)
	StatsByDay(ctx context.Context, from, to time.Time) ([]StatsByDay, error)
	StatsByRoom(ctx context.Context, from, to time.Time) ([]StatsByRoom, error)
}

type service struct {
	repo     Repository
	roomRepo room.Repository
	slotRepo timeslot.Repository
}

func NewService(repo Repository, roomRepo room.Repository, slotRepo timeslot.Repository) Service {
	return &service{
		repo:     repo,
		roomRepo: roomRepo,
		slotRepo: slotRepo,
	}
}

// Book validates the request and inserts a confirmed reservation. The
// existence checks are advisory convenience for callers; the authoritative
// conflict decision is the unique index hit inside repo.Create, so two
// racing requests for the same triple cannot both succeed.
func (s *service) Book(ctx context.Context, req CreateReservationRequest, createdBy int) (*ReservationDetails, error) {
	if req.RoomID <= 0 || req.TimeslotID <= 0 || req.Date == "" || req.ReservedFor == "" || createdBy <= 0 {
		return nil, ErrInvalidInput
	}

	if _, err := time.Parse(DateLayout, req.Date); err != nil {
		return nil, ErrInvalidDate
	}

	if _, err := s.roomRepo.GetByID(ctx, req.RoomID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	if _, err := s.slotRepo.GetByID(ctx, req.TimeslotID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTimeslotNotFound
		}
		return nil, err
	}

	res, err := s.repo.Create(ctx, req.RoomID, req.TimeslotID, req.Date, req.ReservedFor, createdBy)
	if err != nil {
		if errors.Is(err, ErrSlotTaken) {
			metrics.RecordReservation("conflict")
		}
		return nil, err
	}

	metrics.RecordReservation("created")

	details, err := s.repo.GetDetails(ctx, res.ID)
	if err != nil {
		// Hydration is display-only; the booking itself committed.
		return &ReservationDetails{Reservation: *res}, nil
	}

	return details, nil
}

func (s *service) Cancel(ctx context.Context, id int) (*Reservation, error) {
	res, err := s.repo.Cancel(ctx, id)
	if err != nil {
		return nil, err
	}

	metrics.RecordCancellation()
	return res, nil
}

func (s *service) ListMine(ctx context.Context, userID int) ([]ReservationDetails, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *service) ListForDate(ctx context.Context, date string) ([]ReservationDetails, error) {
	if _, err := time.Parse(DateLayout, date); err != nil {
		return nil, ErrInvalidDate
	}
	return s.repo.ListByDate(ctx, date)
}

func (s *service) StatsByDay(ctx context.Context, from, to time.Time) ([]StatsByDay, error) {
	return s.repo.StatsByDay(ctx, from, to)
}

func (s *service) StatsByRoom(ctx context.Context, from, to time.Time) ([]StatsByRoom, error) {
	return s.repo.StatsByRoom(ctx, from, to)
}
