package availability

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestUpsertWeeklyAvailability(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO trainer_availability")).
		WithArgs(sqlmock.AnyArg(), "trainer-1", 1, "09:00", "17:00", true).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpsertWeeklyAvailability(context.Background(), &WeeklyAvailability{
		TrainerID:   "trainer-1",
		DayOfWeek:   1,
		StartTime:   "09:00",
		EndTime:     "17:00",
		IsAvailable: true,
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetWeeklyAvailability(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "trainer_id", "day_of_week", "start_time", "end_time", "is_available", "updated_at"}).
		AddRow("w1", "trainer-1", 1, "09:00", "17:00", true, now).
		AddRow("w2", "trainer-1", 3, "10:00", "16:00", true, now)

	mock.ExpectQuery(regexp.QuoteMeta("FROM trainer_availability")).
		WithArgs("trainer-1").
		WillReturnRows(rows)

	weekly, err := repo.GetWeeklyAvailability(context.Background(), "trainer-1")
	require.NoError(t, err)
	require.Len(t, weekly, 2)
	assert.Equal(t, 1, weekly[0].DayOfWeek)
	assert.Equal(t, "09:00", weekly[0].StartTime)
	assert.Equal(t, 3, weekly[1].DayOfWeek)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertBlockedTimeGeneratesID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRepository(db)

	date := time.Date(2025, time.March, 17, 0, 0, 0, 0, time.UTC)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO blocked_times")).
		WithArgs(sqlmock.AnyArg(), "trainer-1", date, "12:00", "13:00", "Blocked by trainer").
		WillReturnResult(sqlmock.NewResult(0, 1))

	id, err := repo.InsertBlockedTime(context.Background(), &BlockedTime{
		TrainerID: "trainer-1",
		Date:      date,
		StartTime: "12:00",
		EndTime:   "13:00",
		Reason:    "Blocked by trainer",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetActiveBlockedTimes(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRepository(db)

	date := time.Date(2025, time.March, 17, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "trainer_id", "date", "start_time", "end_time", "reason", "is_active", "created_at"}).
		AddRow("b1", "trainer-1", date, "12:00", "13:00", "Blocked by trainer", true, time.Now())

	mock.ExpectQuery(regexp.QuoteMeta("WHERE trainer_id = $1 AND is_active = TRUE")).
		WithArgs("trainer-1").
		WillReturnRows(rows)

	blocked, err := repo.GetActiveBlockedTimes(context.Background(), "trainer-1")
	require.NoError(t, err)
	require.Len(t, blocked, 1)
	assert.Equal(t, "b1", blocked[0].ID)
	assert.True(t, blocked[0].IsActive)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeactivateBlockedTime(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("SET is_active = FALSE")).
		WithArgs("b1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.DeactivateBlockedTime(context.Background(), "b1")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeactivateBlockedTimeUnknownIDIsNoOp(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("SET is_active = FALSE")).
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeactivateBlockedTime(context.Background(), "missing")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
