package locations

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	return NewRepository(gormDB), mock
}

func locationRows(location *Location) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "name", "address", "desk_info", "active",
		"check_in_instructions", "late_instructions", "contact_instructions",
		"created_at", "updated_at",
	}).AddRow(
		location.ID, location.Name, location.Address, location.DeskInfo, location.Active,
		location.CheckInInstructions, location.LateInstructions, location.ContactInstructions,
		location.CreatedAt, location.UpdatedAt,
	)
}

func TestRepositoryGetByID(t *testing.T) {
	repo, mock := newMockDB(t)

	want := &Location{
		ID:                  uuid.New(),
		Name:                "Downtown Service Center",
		Address:             "14 Harbor Street",
		Active:              true,
		CheckInInstructions: "Check in at desk 3.",
		LateInstructions:    "Ten minute grace period.",
		ContactInstructions: "Call the branch.",
		CreatedAt:           time.Now(),
		UpdatedAt:           time.Now(),
	}

	mock.ExpectQuery(`SELECT \* FROM "locations" WHERE id =`).
		WillReturnRows(locationRows(want))

	got, err := repo.GetByID(context.Background(), want.ID)

	require.NoError(t, err)
	assert.Equal(t, want.ID, got.ID)
	assert.Equal(t, want.Name, got.Name)
	assert.Equal(t, want.CheckInInstructions, got.CheckInInstructions)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryGetByIDNotFound(t *testing.T) {
	repo, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT \* FROM "locations" WHERE id =`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetByID(context.Background(), uuid.New())

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryListActiveOnly(t *testing.T) {
	repo, mock := newMockDB(t)

	first := &Location{ID: uuid.New(), Name: "Downtown Service Center", Active: true}
	rows := locationRows(first)

	mock.ExpectQuery(`SELECT \* FROM "locations" WHERE active = .+ ORDER BY name ASC`).
		WillReturnRows(rows)

	got, err := repo.List(context.Background(), true)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Downtown Service Center", got[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryDelete(t *testing.T) {
	repo, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "locations" WHERE id =`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Delete(context.Background(), uuid.New())

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
