package services

import (
	"errors"

	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"

	"backend-tabungan/config"
	"backend-tabungan/models"
)

// CreateSaver mendaftarkan user baru dengan role saver dan mengembalikannya
func CreateSaver(username, email, password string) (*models.User, error) {
	// Hash password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		config.Log.Error("Gagal melakukan hash password: ", err)
		return nil, errors.New("gagal melakukan hash password")
	}

	var user models.User
	query := `INSERT INTO users (username, email, password, role)
			  VALUES ($1, $2, $3, 'saver')
			  RETURNING id, username, email, role, created_at, updated_at`

	err = config.DB.QueryRow(query, username, email, string(hashedPassword)).
		Scan(&user.ID, &user.Username, &user.Email, &user.Role, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			// unique_violation pada username atau email
			if pqErr.Constraint == "users_email_key" {
				return nil, ErrEmailTerdaftar
			}
			return nil, ErrUsernameTerdaftar
		}
		config.Log.Error("Gagal membuat user: ", err)
		return nil, err
	}

	return &user, nil
}
