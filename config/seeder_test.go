package config

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupSeederDB(t *testing.T) sqlmock.Sqlmock {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	old := DB
	DB = db
	t.Cleanup(func() {
		DB = old
		db.Close()
	})

	AdminPassword = "rahasia123"
	return mock
}

func TestSeedAdminUserDilewatiSaatAdminSudahAda(t *testing.T) {
	mock := setupSeederDB(t)

	mock.ExpectQuery(`SELECT EXISTS`).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	require.NoError(t, SeedAdminUser())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSeedAdminUserMembuatAkunBaru(t *testing.T) {
	mock := setupSeederDB(t)

	mock.ExpectQuery(`SELECT EXISTS`).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectExec(`INSERT INTO users .+ ON CONFLICT DO NOTHING`).
		WithArgs("admin123", "admin@gmail.com", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, SeedAdminUser())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSeedAdminUserTidakGagalSaatEmailSudahDipakaiSaver(t *testing.T) {
	mock := setupSeederDB(t)

	mock.ExpectQuery(`SELECT EXISTS`).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	// Email admin sudah dipakai akun saver: insert tidak menyentuh baris
	// apa pun dan seeding tetap dianggap berhasil
	mock.ExpectExec(`INSERT INTO users .+ ON CONFLICT DO NOTHING`).
		WithArgs("admin123", "admin@gmail.com", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, SeedAdminUser())
	assert.NoError(t, mock.ExpectationsWereMet())
}
