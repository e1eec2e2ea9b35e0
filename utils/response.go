package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Respond mengirim amplop respons standar {status_code, message, data}
func Respond(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, gin.H{
		"status_code": status,
		"message":     message,
		"data":        data,
	})
}

// Error mengirim amplop respons gagal tanpa data
func Error(c *gin.Context, status int, message string) {
	Respond(c, status, message, nil)
}

// ValidationError mengirim respons 422 beserta daftar kesalahan per field
func ValidationError(c *gin.Context, errs map[string]string) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{
		"status_code": http.StatusUnprocessableEntity,
		"message":     "Data yang diberikan tidak valid.",
		"errors":      errs,
	})
}
