package room

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

func setupMock(t *testing.T) (Repository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewRepository(sqlxDB)

	closer := func() {
		sqlxDB.Close()
	}

	return repo, mock, closer
}

func roomColumns() []string {
	return []string{"id", "name", "building", "floor", "capacity", "room_type", "is_active", "created_at"}
}

func TestCreateRoom(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO rooms (name, building, floor, capacity, room_type) VALUES ($1, $2, $3, $4, $5) RETURNING id, name, building, floor, capacity, room_type, is_active, created_at")).
		WithArgs("A-101", "Science Hall", nil, 30, "classroom").
		WillReturnRows(sqlmock.NewRows(roomColumns()).
			AddRow(1, "A-101", "Science Hall", nil, 30, "classroom", true, now))

	room, err := repo.Create(context.Background(), "A-101", "Science Hall", nil, 30, "")
	require.NoError(t, err)
	require.Equal(t, 1, room.ID)
	require.Equal(t, "classroom", room.RoomType)
	require.True(t, room.IsActive)
}

func TestCreateRoom_DuplicateName(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO rooms")).
		WithArgs("A-101", "Science Hall", nil, 30, "classroom").
		WillReturnError(&pq.Error{Code: "23505", Constraint: "rooms_name_key"})

	room, err := repo.Create(context.Background(), "A-101", "Science Hall", nil, 30, "classroom")
	require.Nil(t, room)
	require.ErrorIs(t, err, ErrDuplicateName)
}

func TestListActive(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	now := time.Now()
	rows := sqlmock.NewRows(roomColumns()).
		AddRow(1, "A-101", "Science Hall", nil, 30, "classroom", true, now).
		AddRow(2, "B-201", "Library", 2, 50, "lab", true, now)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, building, floor, capacity, room_type, is_active, created_at FROM rooms WHERE is_active = TRUE ORDER BY id ASC")).
		WillReturnRows(rows)

	rooms, err := repo.ListActive(context.Background())
	require.NoError(t, err)
	require.Len(t, rooms, 2)
	require.Equal(t, "A-101", rooms[0].Name)
	require.NotNil(t, rooms[1].Floor)
	require.Equal(t, 2, *rooms[1].Floor)
}

func TestDeactivateRoom(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE rooms SET is_active = FALSE WHERE id = $1 RETURNING id, name, building, floor, capacity, room_type, is_active, created_at")).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows(roomColumns()).
			AddRow(1, "A-101", "Science Hall", nil, 30, "classroom", false, now))

	room, err := repo.Deactivate(context.Background(), 1)
	require.NoError(t, err)
	require.False(t, room.IsActive)
}

func TestDeleteRoom(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM rooms WHERE id = $1")).
		WithArgs(1).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), 1))

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM rooms WHERE id = $1")).
		WithArgs(99).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.ErrorIs(t, repo.Delete(context.Background(), 99), ErrRoomNotFound)
}
