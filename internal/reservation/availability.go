package reservation

import (
	"context"
	"time"

	"github.com/Uoerim/UniSphere-sub001/internal/metrics"
	"github.com/Uoerim/UniSphere-sub001/internal/room"
)

// ComputeAvailability projects the weekly catalog onto one calendar date
// and subtracts the occupied (room, timeslot) pairs.
//
// A day with no configured timeslots, or a registry with no active rooms,
// yields an empty slot list: an unscheduled day is a normal outcome, not
// an error. Reads here may race with concurrent bookings; a stale answer
// is acceptable because the insert-time unique index, not this view, is
// what decides a booking.
func (s *service) ComputeAvailability(ctx context.Context, date string) (*DayAvailability, error) {
	metrics.RecordAvailabilityRequest()

	parsed, err := time.Parse(DateLayout, date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	// time.Weekday counts Sunday=0, matching the catalog's convention.
	dayOfWeek := int(parsed.Weekday())

	result := &DayAvailability{
		Date:      date,
		DayOfWeek: dayOfWeek,
		Slots:     []SlotAvailability{},
	}

	slots, err := s.slotRepo.ListByDay(ctx, dayOfWeek)
	if err != nil {
		return nil, err
	}
	if len(slots) == 0 {
		return result, nil
	}

	rooms, err := s.roomRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	if len(rooms) == 0 {
		return result, nil
	}

	occupied, err := s.repo.ListOccupied(ctx, date)
	if err != nil {
		return nil, err
	}

	taken := make(map[OccupiedSlot]struct{}, len(occupied))
	for _, o := range occupied {
		taken[o] = struct{}{}
	}

	// O(|rooms| x |slots|) over two admin-curated catalogs.
	for _, slot := range slots {
		available := make([]room.Room, 0, len(rooms))
		for _, rm := range rooms {
			if _, ok := taken[OccupiedSlot{RoomID: rm.ID, TimeslotID: slot.ID}]; !ok {
				available = append(available, rm)
			}
		}

		result.Slots = append(result.Slots, SlotAvailability{
			Timeslot:       slot,
			AvailableRooms: available,
		})
	}

	return result, nil
}
