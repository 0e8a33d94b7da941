package timeslot

import "time"

// Timeslot is a recurring weekly window: it belongs to a weekday, not to
// any calendar date. Start and end are wall-clock "HH:MM" strings and are
// compared lexically, which for zero-padded 24h times matches time order.
type Timeslot struct {
	ID        int       `db:"id" json:"id"`
	DayOfWeek int       `db:"day_of_week" json:"day_of_week"`
	StartTime string    `db:"start_time" json:"start_time"`
	EndTime   string    `db:"end_time" json:"end_time"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// DayOfWeek is a pointer so Sunday (0) survives the required binding.
type CreateTimeslotRequest struct {
	DayOfWeek *int   `json:"day_of_week" binding:"required,min=0,max=6"`
	StartTime string `json:"start_time" binding:"required,hhmm"`
	EndTime   string `json:"end_time" binding:"required,hhmm"`
}
