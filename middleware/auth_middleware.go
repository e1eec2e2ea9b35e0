package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"backend-tabungan/config"
	"backend-tabungan/models"
	"backend-tabungan/services"
	"backend-tabungan/utils"
)

// JWTAuthMiddleware memverifikasi bearer token dan menaruh identitas
// pemanggil di context gin. Token yang sudah dicabut lewat logout ditolak.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Ambil Authorization header
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.Error(c, http.StatusUnauthorized, "Authorization header tidak ditemukan.")
			c.Abort()
			return
		}

		// Format token: "Bearer <token>"
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			utils.Error(c, http.StatusUnauthorized, "Format token tidak valid.")
			c.Abort()
			return
		}

		// Parse dan verifikasi token
		token, err := jwt.ParseWithClaims(tokenString, &models.Claims{}, func(token *jwt.Token) (interface{}, error) {
			return []byte(config.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			utils.Error(c, http.StatusUnauthorized, "Token tidak valid atau kedaluwarsa.")
			c.Abort()
			return
		}

		claims, ok := token.Claims.(*models.Claims)
		if !ok {
			utils.Error(c, http.StatusUnauthorized, "Klaim token tidak valid.")
			c.Abort()
			return
		}

		revoked, err := services.IsTokenRevoked(c.Request.Context(), claims.RegisteredClaims.ID)
		if err != nil {
			utils.Error(c, http.StatusInternalServerError, "Gagal memeriksa status token.")
			c.Abort()
			return
		}
		if revoked {
			utils.Error(c, http.StatusUnauthorized, "Token sudah dicabut.")
			c.Abort()
			return
		}

		// Simpan identitas pemanggil ke context
		c.Set("user", claims)
		c.Set("userID", claims.ID)
		c.Set("username", claims.Username)
		c.Set("role", claims.Role)

		c.Next()
	}
}

// RequireRole membatasi akses ke satu role tertentu
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("role") != role {
			utils.Error(c, http.StatusForbidden, "Akses ditolak untuk role ini.")
			c.Abort()
			return
		}
		c.Next()
	}
}
