package controllers

import (
	"errors"
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"

	"backend-tabungan/config"
	"backend-tabungan/models"
	"backend-tabungan/services"
	"backend-tabungan/utils"
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)

// Register mendaftarkan saver baru
func Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationError(c, bindingErrors(err))
		return
	}

	if !usernamePattern.MatchString(req.Username) {
		utils.ValidationError(c, map[string]string{
			"username": "Username hanya boleh berisi huruf, angka, garis bawah, strip, dan titik.",
		})
		return
	}

	user, err := services.CreateSaver(req.Username, req.Email, req.Password)
	if errors.Is(err, services.ErrUsernameTerdaftar) {
		utils.ValidationError(c, map[string]string{"username": "Username sudah digunakan."})
		return
	} else if errors.Is(err, services.ErrEmailTerdaftar) {
		utils.ValidationError(c, map[string]string{"email": "Email sudah digunakan."})
		return
	} else if err != nil {
		utils.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	utils.Respond(c, http.StatusCreated, "User berhasil terdaftar.", user)
}

// Login memverifikasi kredensial dan menerbitkan token JWT
func Login(c *gin.Context) {
	var credentials models.Credentials
	if err := c.ShouldBindJSON(&credentials); err != nil {
		utils.ValidationError(c, bindingErrors(err))
		return
	}

	user, err := services.Authenticate(credentials.Email, credentials.Password)
	if errors.Is(err, services.ErrKredensialSalah) {
		utils.Error(c, http.StatusUnauthorized, "Email atau password salah.")
		return
	} else if err != nil {
		config.Log.Error("Gagal mengautentikasi user: ", err)
		utils.Error(c, http.StatusInternalServerError, "Gagal mengautentikasi user.")
		return
	}

	token, err := services.GenerateJWT(user)
	if err != nil {
		config.Log.Error("Gagal menghasilkan token: ", err)
		utils.Error(c, http.StatusInternalServerError, "Gagal menghasilkan token.")
		return
	}

	utils.Respond(c, http.StatusOK, "Login berhasil.", gin.H{
		"id":    user.ID,
		"name":  user.Username,
		"email": user.Email,
		"role":  user.Role,
		"token": token,
	})
}

// Me mengembalikan profil user yang sedang login berdasarkan klaim token
func Me(c *gin.Context) {
	claims := c.MustGet("user").(*models.Claims)

	utils.Respond(c, http.StatusOK, "User ditemukan", gin.H{
		"id":       claims.ID,
		"username": claims.Username,
		"email":    claims.Email,
		"role":     claims.Role,
	})
}

// Logout mencabut token yang sedang dipakai
func Logout(c *gin.Context) {
	claims := c.MustGet("user").(*models.Claims)

	if err := services.RevokeToken(c.Request.Context(), claims); err != nil {
		config.Log.Error("Gagal mencabut token: ", err)
		utils.Error(c, http.StatusInternalServerError, "Gagal mencabut token.")
		return
	}

	utils.Respond(c, http.StatusOK, "Logout berhasil", nil)
}
