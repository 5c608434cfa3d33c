package catalog

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

func setupMock(t *testing.T) (Repository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewRepository(sqlxDB)

	return repo, mock, func() { sqlxDB.Close() }
}

func TestGetServiceByID(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, trainer_id, title, description, price, is_active, created_at FROM services WHERE id = $1")).
		WithArgs("svc-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "trainer_id", "title", "description", "price", "is_active", "created_at"}).
			AddRow("svc-1", "trainer-1", "Personal Training", "1:1 session", 45.0, true, now))

	s, err := repo.GetServiceByID(context.Background(), "svc-1")
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, "Personal Training", s.Title)
}

func TestGetServiceByIDMissing(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, trainer_id, title, description, price, is_active, created_at FROM services WHERE id = $1")).
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows([]string{"id", "trainer_id", "title", "description", "price", "is_active", "created_at"}))

	s, err := repo.GetServiceByID(context.Background(), "ghost")
	require.NoError(t, err)
	assert.Nil(t, s)
}

func TestGetTitlesByIDs(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectQuery("SELECT id, title FROM services WHERE id IN").
		WithArgs("svc-1", "svc-2").
		WillReturnRows(sqlmock.NewRows([]string{"id", "title"}).
			AddRow("svc-1", "Personal Training").
			AddRow("svc-2", "Nutrition Review"))

	titles, err := repo.GetTitlesByIDs(context.Background(), []string{"svc-1", "svc-2"})
	require.NoError(t, err)
	assert.Equal(t, "Personal Training", titles["svc-1"])
	assert.Equal(t, "Nutrition Review", titles["svc-2"])
}

func TestGetTitlesByIDsEmpty(t *testing.T) {
	repo, _, close := setupMock(t)
	defer close()

	titles, err := repo.GetTitlesByIDs(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, titles)
}
