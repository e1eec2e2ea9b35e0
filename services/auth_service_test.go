package services

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/golang-jwt/jwt/v5"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"backend-tabungan/config"
	"backend-tabungan/models"
)

func setupJWTConfig(t *testing.T) {
	t.Helper()
	config.JWTSecret = "test-secret"
	config.JWTExpiresHours = 1
}

func TestGenerateJWTDanParseKembali(t *testing.T) {
	setupJWTConfig(t)

	user := &models.User{ID: 1, Username: "budi_santoso", Email: "budi@mail.com", Role: models.RoleSaver}
	tokenString, err := GenerateJWT(user)
	require.NoError(t, err)

	token, err := jwt.ParseWithClaims(tokenString, &models.Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(config.JWTSecret), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims := token.Claims.(*models.Claims)
	assert.Equal(t, 1, claims.ID)
	assert.Equal(t, "budi_santoso", claims.Username)
	assert.Equal(t, models.RoleSaver, claims.Role)
	assert.NotEmpty(t, claims.RegisteredClaims.ID) // jti untuk pencabutan token
}

// setupRedis mengganti config.Redis dengan server Redis in-memory selama
// satu tes
func setupRedis(t *testing.T) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	old := config.Redis
	config.Redis = client
	t.Cleanup(func() {
		config.Redis = old
		client.Close()
	})
}

func parseClaims(t *testing.T, tokenString string) *models.Claims {
	t.Helper()

	token, err := jwt.ParseWithClaims(tokenString, &models.Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(config.JWTSecret), nil
	})
	require.NoError(t, err)
	return token.Claims.(*models.Claims)
}

func TestRevokeTokenMencabutJTI(t *testing.T) {
	setupJWTConfig(t)
	setupRedis(t)
	ctx := context.Background()

	user := &models.User{ID: 1, Username: "budi_santoso", Email: "budi@mail.com", Role: models.RoleSaver}
	tokenString, err := GenerateJWT(user)
	require.NoError(t, err)
	claims := parseClaims(t, tokenString)

	revoked, err := IsTokenRevoked(ctx, claims.RegisteredClaims.ID)
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, RevokeToken(ctx, claims))

	revoked, err = IsTokenRevoked(ctx, claims.RegisteredClaims.ID)
	require.NoError(t, err)
	assert.True(t, revoked)
}

func TestRevokeTokenTidakMenyentuhTokenLain(t *testing.T) {
	setupJWTConfig(t)
	setupRedis(t)
	ctx := context.Background()

	user := &models.User{ID: 1, Username: "budi_santoso", Email: "budi@mail.com", Role: models.RoleSaver}

	tokenSatu, err := GenerateJWT(user)
	require.NoError(t, err)
	tokenDua, err := GenerateJWT(user)
	require.NoError(t, err)

	require.NoError(t, RevokeToken(ctx, parseClaims(t, tokenSatu)))

	// Pencabutan berbasis jti: token lain milik user yang sama tetap sah
	revoked, err := IsTokenRevoked(ctx, parseClaims(t, tokenDua).RegisteredClaims.ID)
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestIsTokenRevokedTanpaRedis(t *testing.T) {
	old := config.Redis
	config.Redis = nil
	t.Cleanup(func() { config.Redis = old })

	revoked, err := IsTokenRevoked(context.Background(), "jti-apa-saja")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestAuthenticateEmailTidakTerdaftar(t *testing.T) {
	mock := setupMockDB(t)

	mock.ExpectQuery(`SELECT id, username, email, password, role FROM users`).
		WithArgs("tidakada@mail.com").
		WillReturnError(sql.ErrNoRows)

	_, err := Authenticate("tidakada@mail.com", "password123")

	assert.ErrorIs(t, err, ErrKredensialSalah)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthenticatePasswordSalah(t *testing.T) {
	mock := setupMockDB(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT id, username, email, password, role FROM users`).
		WithArgs("budi@mail.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email", "password", "role"}).
			AddRow(1, "budi_santoso", "budi@mail.com", string(hash), models.RoleSaver))

	_, err = Authenticate("budi@mail.com", "salah")

	assert.ErrorIs(t, err, ErrKredensialSalah)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthenticateBerhasil(t *testing.T) {
	mock := setupMockDB(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT id, username, email, password, role FROM users`).
		WithArgs("budi@mail.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email", "password", "role"}).
			AddRow(1, "budi_santoso", "budi@mail.com", string(hash), models.RoleSaver))

	user, err := Authenticate("budi@mail.com", "password123")

	require.NoError(t, err)
	assert.Equal(t, "budi_santoso", user.Username)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateSaverEmailSudahDigunakan(t *testing.T) {
	mock := setupMockDB(t)

	mock.ExpectQuery(`INSERT INTO users`).
		WillReturnError(&pq.Error{Code: "23505", Constraint: "users_email_key"})

	_, err := CreateSaver("budi_santoso", "budi@mail.com", "password123")

	assert.ErrorIs(t, err, ErrEmailTerdaftar)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateSaverUsernameSudahDigunakan(t *testing.T) {
	mock := setupMockDB(t)

	mock.ExpectQuery(`INSERT INTO users`).
		WillReturnError(&pq.Error{Code: "23505", Constraint: "users_username_key"})

	_, err := CreateSaver("budi_santoso", "budi@mail.com", "password123")

	assert.ErrorIs(t, err, ErrUsernameTerdaftar)
	assert.NoError(t, mock.ExpectationsWereMet())
}
