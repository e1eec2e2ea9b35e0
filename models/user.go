package models

import "time"

// Credentials adalah payload permintaan login
type Credentials struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest adalah payload pendaftaran saver baru
type RegisterRequest struct {
	Username string `json:"username" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,min=6"`
}

// User merepresentasikan entitas pengguna pada sistem
type User struct {
	ID        int       `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`    // Disimpan sebagai hash bcrypt
	Role      string    `json:"role"` // admin atau saver
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Role pengguna
const (
	RoleAdmin = "admin"
	RoleSaver = "saver"
)
