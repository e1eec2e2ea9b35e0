package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"backend-tabungan/config"
	"backend-tabungan/models"
	"backend-tabungan/services"
	"backend-tabungan/utils"
)

// CreateProgres menangani penambahan setoran tabungan
func CreateProgres(c *gin.Context) {
	userID := c.MustGet("userID").(int)

	var req models.ProgresRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationError(c, bindingErrors(err))
		return
	}

	errs := map[string]string{}
	if _, err := time.Parse("2006-01-02", req.TanggalSetoran); err != nil {
		errs["tanggal_setoran"] = "Tanggal setoran harus berformat YYYY-MM-DD."
	}
	if _, err := time.Parse("15:04", req.WaktuSetoran); err != nil {
		errs["waktu_setoran"] = "Waktu setoran harus berformat HH:mm."
	}
	if len(errs) > 0 {
		utils.ValidationError(c, errs)
		return
	}

	progres, statusTarget, err := services.CreateProgres(c.Request.Context(), userID, &req)
	if errors.Is(err, services.ErrTargetTidakDitemukan) {
		utils.Error(c, http.StatusNotFound, "Target tidak ditemukan.")
		return
	} else if err != nil {
		config.Log.Error("Gagal menambahkan setoran: ", err)
		utils.Error(c, http.StatusInternalServerError, "Gagal menambahkan setoran.")
		return
	}

	utils.Respond(c, http.StatusCreated, "Setoran berhasil ditambahkan.", gin.H{
		"progres":       progres,
		"status_target": statusTarget,
	})
}
