package booking

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

func bookingColumns() []string {
	return []string{
		"id", "service_id", "client_id", "trainer_id", "booking_date",
		"start_time", "end_time", "delivery_format_id", "delivery_format_option_id",
		"notes", "status", "price", "created_at", "updated_at",
	}
}

func TestCreateBookingGeneratesID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRepository(db)

	date := time.Date(2025, time.March, 17, 0, 0, 0, 0, time.UTC)
	start := time.Date(2025, time.March, 17, 10, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.March, 17, 10, 30, 0, 0, time.UTC)
	now := time.Now()

	rows := sqlmock.NewRows(bookingColumns()).
		AddRow("booking-1", "service-1", "client-1", "trainer-1", date,
			start, end, "fmt-1", "opt-1", "", int(StatusPending), 50.0, now, now)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO bookings")).
		WithArgs(sqlmock.AnyArg(), "service-1", "client-1", "trainer-1", date,
			start, end, "fmt-1", "opt-1", "", StatusPending, 50.0).
		WillReturnRows(rows)

	created, err := repo.CreateBooking(context.Background(), &Booking{
		ServiceID:              "service-1",
		ClientID:               "client-1",
		TrainerID:              "trainer-1",
		BookingDate:            date,
		StartTime:              start,
		EndTime:                end,
		DeliveryFormatID:       "fmt-1",
		DeliveryFormatOptionID: "opt-1",
		Status:                 StatusPending,
		Price:                  50.0,
	})
	require.NoError(t, err)
	assert.Equal(t, "booking-1", created.ID)
	assert.Equal(t, StatusPending, created.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetBookingByIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM bookings")).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(bookingColumns()))

	_, err := repo.GetBookingByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrBookingNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatus(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE bookings")).
		WithArgs("booking-1", StatusConfirmed, "see you there").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateStatus(context.Background(), "booking-1", StatusConfirmed, "see you there")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatusNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE bookings")).
		WithArgs("missing", StatusConfirmed, "").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateStatus(context.Background(), "missing", StatusConfirmed, "")
	assert.ErrorIs(t, err, ErrBookingNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQueryByTrainerAndDateRangeAppliesCap(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRepository(db)

	from := time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, time.April, 13, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE trainer_id = $1 AND booking_date >= $2 AND booking_date <= $3")).
		WithArgs("trainer-1", from, to, conflictLookupLimit).
		WillReturnRows(sqlmock.NewRows(bookingColumns()))

	bookings, err := repo.QueryByTrainerAndDateRange(context.Background(), "trainer-1", from, to)
	require.NoError(t, err)
	assert.Empty(t, bookings)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListClientIDsByTrainer(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRepository(db)

	rows := sqlmock.NewRows([]string{"client_id"}).
		AddRow("client-1").
		AddRow("client-2")

	mock.ExpectQuery(regexp.QuoteMeta("SELECT DISTINCT client_id")).
		WithArgs("trainer-1").
		WillReturnRows(rows)

	ids, err := repo.ListClientIDsByTrainer(context.Background(), "trainer-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"client-1", "client-2"}, ids)
	assert.NoError(t, mock.ExpectationsWereMet())
}
