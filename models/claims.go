package models

import "github.com/golang-jwt/jwt/v5"

// Claims mendefinisikan isi klaim JWT
type Claims struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}
