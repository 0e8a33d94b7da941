package reservation

import (
	"context"
	"time"
)

func (r *repository) StatsByDay(ctx context.Context, from, to time.Time) ([]StatsByDay, error) {
	query := `
SELECT
  to_char(reserved_date, 'YYYY-MM-DD') AS bucket,
  COUNT(*) FILTER (WHERE status <> 'cancelled') AS reservations_created,
  COUNT(*) FILTER (WHERE status = 'cancelled')  AS reservations_cancelled
FROM reservations
WHERE reserved_date BETWEEN $1 AND $2
GROUP BY reserved_date
ORDER BY bucket;
`
	var stats []StatsByDay
	if err := r.db.SelectContext(ctx, &stats, query, from, to); err != nil {
		return nil, err
	}
	return stats, nil
}

func (r *repository) StatsByRoom(ctx context.Context, from, to time.Time) ([]StatsByRoom, error) {
	query := `
SELECT
  res.room_id,
  rm.name AS room_name,
  COUNT(*) FILTER (WHERE res.status <> 'cancelled') AS reservations_created,
  COUNT(*) FILTER (WHERE res.status = 'cancelled')  AS reservations_cancelled
FROM reservations res
LEFT JOIN rooms rm ON res.room_id = rm.id
WHERE res.reserved_date BETWEEN $1 AND $2
GROUP BY res.room_id, rm.name
ORDER BY reservations_created DESC, res.room_id;
`
	var stats []StatsByRoom
	if err := r.db.SelectContext(ctx, &stats, query, from, to); err != nil {
		return nil, err
	}
	return stats, nil
}
