package room

import "time"

type Room struct {
	ID        int       `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Building  string    `db:"building" json:"building"`
	Floor     *int      `db:"floor" json:"floor,omitempty"`
	Capacity  int       `db:"capacity" json:"capacity"`
	RoomType  string    `db:"room_type" json:"room_type"`
	IsActive  bool      `db:"is_active" json:"is_active"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type CreateRoomRequest struct {
	Name     string `json:"name" binding:"required"`
	Building string `json:"building" binding:"required"`
	Floor    *int   `json:"floor"`
	Capacity int    `json:"capacity" binding:"required,min=1"`
	RoomType string `json:"room_type"`
}
