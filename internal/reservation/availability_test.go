package reservation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Uoerim/UniSphere-sub001/internal/room"
	"github.com/Uoerim/UniSphere-sub001/internal/timeslot"
)

func TestComputeAvailability_InvalidDate(t *testing.T) {
	service, _ := newTestService()

	_, err := service.ComputeAvailability(context.Background(), "not-a-date")
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = service.ComputeAvailability(context.Background(), "2024-13-45")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestComputeAvailability_DayWithoutSlots(t *testing.T) {
	service, _ := newTestService()

	// The catalog only has a Monday slot; 2024-06-04 is a Tuesday.
	result, err := service.ComputeAvailability(context.Background(), "2024-06-04")
	require.NoError(t, err)
	assert.Equal(t, 2, result.DayOfWeek)
	assert.Empty(t, result.Slots)
	assert.NotNil(t, result.Slots)
}

func TestComputeAvailability_NoActiveRooms(t *testing.T) {
	ledger := newFakeLedger()
	rooms := &stubRoomRepo{rooms: []room.Room{
		{ID: 1, Name: "R1", Capacity: 30, IsActive: false},
	}}
	slots := &stubSlotRepo{slots: []timeslot.Timeslot{
		{ID: 1, DayOfWeek: 1, StartTime: "09:00", EndTime: "10:00"},
	}}
	service := NewService(ledger, rooms, slots)

	result, err := service.ComputeAvailability(context.Background(), mondayDate)
	require.NoError(t, err)
	assert.Empty(t, result.Slots)
}

func TestComputeAvailability_BookingRemovesRoom(t *testing.T) {
	service, _ := newTestService()
	ctx := context.Background()

	result, err := service.ComputeAvailability(ctx, mondayDate)
	require.NoError(t, err)
	require.Len(t, result.Slots, 1)
	assert.Equal(t, 1, result.DayOfWeek)
	require.Len(t, result.Slots[0].AvailableRooms, 2)
	assert.Equal(t, "R1", result.Slots[0].AvailableRooms[0].Name)
	assert.Equal(t, "R2", result.Slots[0].AvailableRooms[1].Name)

	_, err = service.Book(ctx, CreateReservationRequest{
		RoomID:      1,
		TimeslotID:  1,
		Date:        mondayDate,
		ReservedFor: "seminar",
	}, 42)
	require.NoError(t, err)

	result, err = service.ComputeAvailability(ctx, mondayDate)
	require.NoError(t, err)
	require.Len(t, result.Slots, 1)
	require.Len(t, result.Slots[0].AvailableRooms, 1)
	assert.Equal(t, "R2", result.Slots[0].AvailableRooms[0].Name)

	// The same triple is still a conflict while the booking stands.
	_, err = service.Book(ctx, CreateReservationRequest{
		RoomID:      1,
		TimeslotID:  1,
		Date:        mondayDate,
		ReservedFor: "second seminar",
	}, 43)
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestComputeAvailability_CancellationRestoresRoom(t *testing.T) {
	service, _ := newTestService()
	ctx := context.Background()

	details, err := service.Book(ctx, CreateReservationRequest{
		RoomID:      1,
		TimeslotID:  1,
		Date:        mondayDate,
		ReservedFor: "seminar",
	}, 42)
	require.NoError(t, err)

	_, err = service.Cancel(ctx, details.ID)
	require.NoError(t, err)

	result, err := service.ComputeAvailability(ctx, mondayDate)
	require.NoError(t, err)
	require.Len(t, result.Slots, 1)
	assert.Len(t, result.Slots[0].AvailableRooms, 2)
}

func TestComputeAvailability_OnlyAffectedDate(t *testing.T) {
	service, _ := newTestService()
	ctx := context.Background()

	_, err := service.Book(ctx, CreateReservationRequest{
		RoomID:      1,
		TimeslotID:  1,
		Date:        mondayDate,
		ReservedFor: "seminar",
	}, 42)
	require.NoError(t, err)

	// The following Monday is untouched by this Monday's booking.
	result, err := service.ComputeAvailability(ctx, "2024-06-10")
	require.NoError(t, err)
	require.Len(t, result.Slots, 1)
	assert.Len(t, result.Slots[0].AvailableRooms, 2)
}

func TestComputeAvailability_SlotsOrderedByStartTime(t *testing.T) {
	ledger := newFakeLedger()
	rooms := &stubRoomRepo{rooms: []room.Room{
		{ID: 1, Name: "R1", Capacity: 30, IsActive: true},
	}}
	slots := &stubSlotRepo{slots: []timeslot.Timeslot{
		{ID: 1, DayOfWeek: 1, StartTime: "08:00", EndTime: "09:00"},
		{ID: 2, DayOfWeek: 1, StartTime: "09:00", EndTime: "10:00"},
		{ID: 3, DayOfWeek: 1, StartTime: "13:00", EndTime: "14:00"},
	}}
	service := NewService(ledger, rooms, slots)

	result, err := service.ComputeAvailability(context.Background(), mondayDate)
	require.NoError(t, err)
	require.Len(t, result.Slots, 3)
	assert.Equal(t, "08:00", result.Slots[0].Timeslot.StartTime)
	assert.Equal(t, "09:00", result.Slots[1].Timeslot.StartTime)
	assert.Equal(t, "13:00", result.Slots[2].Timeslot.StartTime)
}
