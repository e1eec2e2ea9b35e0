package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"backend-tabungan/config"
	"backend-tabungan/models"
)

// GenerateJWT membuat token bearer untuk user yang diberikan
func GenerateJWT(user *models.User) (string, error) {
	expirationTime := time.Now().Add(time.Duration(config.JWTExpiresHours) * time.Hour)

	claims := models.Claims{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.JWTSecret))
}

// Authenticate memverifikasi email dan password, mengembalikan user yang cocok
func Authenticate(email, password string) (*models.User, error) {
	var user models.User

	query := `SELECT id, username, email, password, role FROM users WHERE email = $1`
	err := config.DB.QueryRow(query, email).
		Scan(&user.ID, &user.Username, &user.Email, &user.Password, &user.Role)
	if err == sql.ErrNoRows {
		return nil, ErrKredensialSalah
	} else if err != nil {
		return nil, fmt.Errorf("kesalahan saat mengambil data pengguna: %v", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrKredensialSalah
	}

	return &user, nil
}

// RevokeToken memasukkan jti token ke daftar cabut di Redis sampai token
// kedaluwarsa. Tanpa Redis, logout hanya berlaku di sisi klien.
func RevokeToken(ctx context.Context, claims *models.Claims) error {
	if config.Redis == nil || claims.ExpiresAt == nil {
		return nil
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}

	key := "revoked:" + claims.RegisteredClaims.ID
	return config.Redis.Set(ctx, key, "1", ttl).Err()
}

// IsTokenRevoked memeriksa apakah jti token sudah dicabut
func IsTokenRevoked(ctx context.Context, jti string) (bool, error) {
	if config.Redis == nil || jti == "" {
		return false, nil
	}

	_, err := config.Redis.Get(ctx, "revoked:"+jti).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("gagal memeriksa daftar cabut token: %v", err)
	}
	return true, nil
}
