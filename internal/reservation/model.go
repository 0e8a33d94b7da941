package reservation

import (
	"time"

	"github.com/Uoerim/UniSphere-sub001/internal/room"
	"github.com/Uoerim/UniSphere-sub001/internal/timeslot"
)

const (
	StatusConfirmed = "confirmed"
	// StatusPending is accepted by the schema and blocks a slot like a
	// confirmed booking, but no handler creates pending reservations yet.
	// It is reserved for an approval workflow.
	StatusPending   = "pending"
	StatusCancelled = "cancelled"
)

// DateLayout is the wire format for calendar dates. Time of day is
// irrelevant to a reservation; the date is stored and compared as a day.
const DateLayout = "2006-01-02"

type Reservation struct {
	ID          int       `db:"id" json:"id"`
	RoomID      int       `db:"room_id" json:"room_id"`
	TimeslotID  int       `db:"timeslot_id" json:"timeslot_id"`
	Date        string    `db:"reserved_date" json:"date"`
	ReservedFor string    `db:"reserved_for" json:"reserved_for"`
	CreatedBy   int       `db:"created_by" json:"created_by"`
	Status      string    `db:"status" json:"status"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// ReservationDetails hydrates a reservation with catalog and principal
// display data. Join fields are pointers: deleting a room or timeslot
// does not cascade here, so a dangling reservation still renders.
type ReservationDetails struct {
	Reservation
	RoomName      *string `db:"room_name" json:"room_name,omitempty"`
	RoomBuilding  *string `db:"room_building" json:"room_building,omitempty"`
	RoomCapacity  *int    `db:"room_capacity" json:"room_capacity,omitempty"`
	SlotDayOfWeek *int    `db:"slot_day_of_week" json:"slot_day_of_week,omitempty"`
	SlotStartTime *string `db:"slot_start_time" json:"slot_start_time,omitempty"`
	SlotEndTime   *string `db:"slot_end_time" json:"slot_end_time,omitempty"`
	CreatedByName *string `db:"created_by_name" json:"created_by_name,omitempty"`
}

// OccupiedSlot is one taken (room, timeslot) pair on a given date.
type OccupiedSlot struct {
	RoomID     int `db:"room_id"`
	TimeslotID int `db:"timeslot_id"`
}

type CreateReservationRequest struct {
	RoomID      int    `json:"room_id" binding:"required"`
	TimeslotID  int    `json:"timeslot_id" binding:"required"`
	Date        string `json:"date" binding:"required"`
	ReservedFor string `json:"reserved_for" binding:"required"`
}

type SlotAvailability struct {
	Timeslot       timeslot.Timeslot `json:"timeslot"`
	AvailableRooms []room.Room       `json:"available_rooms"`
}

type DayAvailability struct {
	Date      string             `json:"date"`
	DayOfWeek int                `json:"day_of_week"`
	Slots     []SlotAvailability `json:"slots"`
}

type StatsByDay struct {
	Bucket    string `db:"bucket" json:"bucket"`
	Created   int    `db:"reservations_created" json:"reservations_created"`
	Cancelled int    `db:"reservations_cancelled" json:"reservations_cancelled"`
}

type StatsByRoom struct {
	RoomID    int     `db:"room_id" json:"room_id"`
	RoomName  *string `db:"room_name" json:"room_name,omitempty"`
	Created   int     `db:"reservations_created" json:"reservations_created"`
	Cancelled int     `db:"reservations_cancelled" json:"reservations_cancelled"`
}
