package reservation

import (
	"context"
	"database/sql"
	"sync"
	"time"

	"github.com/Uoerim/UniSphere-sub001/internal/room"
	"github.com/Uoerim/UniSphere-sub001/internal/timeslot"
)

// fakeLedger is an in-memory Repository that mirrors the database
// contract: creating a reservation for an occupied (room, date, timeslot)
// triple fails with ErrSlotTaken unless the holder is cancelled, and the
// check-and-insert is atomic under the mutex. That makes it usable for
// exercising racing Book calls without a live database.
type fakeLedger struct {
	mu     sync.Mutex
	nextID int
	byID   map[int]Reservation
}

func newFakeLedger() *fakeLedger {
	return &fakeLedger{byID: make(map[int]Reservation)}
}

func (f *fakeLedger) Create(ctx context.Context, roomID, timeslotID int, date, reservedFor string, createdBy int) (*Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, r := range f.byID {
		if r.RoomID == roomID && r.TimeslotID == timeslotID && r.Date == date && r.Status != StatusCancelled {
			return nil, ErrSlotTaken
		}
	}

	f.nextID++
	res := Reservation{
		ID:          f.nextID,
		RoomID:      roomID,
		TimeslotID:  timeslotID,
		Date:        date,
		ReservedFor: reservedFor,
		CreatedBy:   createdBy,
		Status:      StatusConfirmed,
		CreatedAt:   time.Now(),
	}
	f.byID[res.ID] = res
	return &res, nil
}

func (f *fakeLedger) GetByID(ctx context.Context, id int) (*Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	res, ok := f.byID[id]
	if !ok {
		return nil, ErrReservationNotFound
	}
	return &res, nil
}

func (f *fakeLedger) GetDetails(ctx context.Context, id int) (*ReservationDetails, error) {
	res, err := f.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &ReservationDetails{Reservation: *res}, nil
}

func (f *fakeLedger) Cancel(ctx context.Context, id int) (*Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	res, ok := f.byID[id]
	if !ok {
		return nil, ErrReservationNotFound
	}
	res.Status = StatusCancelled
	f.byID[id] = res
	return &res, nil
}

func (f *fakeLedger) ListOccupied(ctx context.Context, date string) ([]OccupiedSlot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var occupied []OccupiedSlot
	for _, r := range f.byID {
		if r.Date == date && r.Status != StatusCancelled {
			occupied = append(occupied, OccupiedSlot{RoomID: r.RoomID, TimeslotID: r.TimeslotID})
		}
	}
	return occupied, nil
}

func (f *fakeLedger) ListByUser(ctx context.Context, userID int) ([]ReservationDetails, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var list []ReservationDetails
	for _, r := range f.byID {
		if r.CreatedBy == userID {
			list = append(list, ReservationDetails{Reservation: r})
		}
	}
	return list, nil
}

func (f *fakeLedger) ListByDate(ctx context.Context, date string) ([]ReservationDetails, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var list []ReservationDetails
	for _, r := range f.byID {
		if r.Date == date {
			list = append(list, ReservationDetails{Reservation: r})
		}
	}
	return list, nil
}

func (f *fakeLedger) StatsByDay(ctx context.Context, from, to time.Time) ([]StatsByDay, error) {
	return nil, nil
}

func (f *fakeLedger) StatsByRoom(ctx context.Context, from, to time.Time) ([]StatsByRoom, error) {
	return nil, nil
}

// stubRoomRepo serves a fixed registry; writes are unused in these tests.
type stubRoomRepo struct {
	rooms []room.Room
}

func (s *stubRoomRepo) Create(ctx context.Context, name, building string, floor *int, capacity int, roomType string) (*room.Room, error) {
	panic("not used")
}

func (s *stubRoomRepo) ListActive(ctx context.Context) ([]room.Room, error) {
	var active []room.Room
	for _, r := range s.rooms {
		if r.IsActive {
			active = append(active, r)
		}
	}
	return active, nil
}

func (s *stubRoomRepo) GetByID(ctx context.Context, id int) (*room.Room, error) {
	for _, r := range s.rooms {
		if r.ID == id {
			rm := r
			return &rm, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (s *stubRoomRepo) Deactivate(ctx context.Context, id int) (*room.Room, error) {
	panic("not used")
}

func (s *stubRoomRepo) Delete(ctx context.Context, id int) error {
	panic("not used")
}

// stubSlotRepo serves a fixed weekly catalog.
type stubSlotRepo struct {
	slots []timeslot.Timeslot
}

func (s *stubSlotRepo) Create(ctx context.Context, dayOfWeek int, startTime, endTime string) (*timeslot.Timeslot, error) {
	panic("not used")
}

func (s *stubSlotRepo) ListByDay(ctx context.Context, dayOfWeek int) ([]timeslot.Timeslot, error) {
	var matching []timeslot.Timeslot
	for _, slot := range s.slots {
		if slot.DayOfWeek == dayOfWeek {
			matching = append(matching, slot)
		}
	}
	return matching, nil
}

func (s *stubSlotRepo) GetByID(ctx context.Context, id int) (*timeslot.Timeslot, error) {
	for _, slot := range s.slots {
		if slot.ID == id {
			ts := slot
			return &ts, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (s *stubSlotRepo) Delete(ctx context.Context, id int) error {
	panic("not used")
}
