package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"backend-tabungan/config"
	"backend-tabungan/services"
	"backend-tabungan/utils"
)

// ListTargets mengembalikan semua target milik pemanggil beserta progresnya
func ListTargets(c *gin.Context) {
	userID := c.MustGet("userID").(int)

	targets, err := services.ListTargets(c.Request.Context(), userID)
	if err != nil {
		config.Log.Error("Gagal mengambil daftar target: ", err)
		utils.Error(c, http.StatusInternalServerError, "Gagal mengambil daftar target.")
		return
	}

	utils.Respond(c, http.StatusOK, "Semua data target dan progres berhasil diambil.", targets)
}

// CreateTarget membuat target baru untuk pemanggil
func CreateTarget(c *gin.Context) {
	userID := c.MustGet("userID").(int)

	form, errs := parseBudgetForm(c, false)
	file := formImage(c, errs)
	if len(errs) > 0 {
		utils.ValidationError(c, errs)
		return
	}

	// Periksa invariant satu target aktif sebelum gambar diunggah agar
	// konflik tidak meninggalkan objek yatim di S3
	active, err := services.HasActiveTarget(c.Request.Context(), userID)
	if err != nil {
		config.Log.Error("Gagal memeriksa target aktif: ", err)
		utils.Error(c, http.StatusInternalServerError, "Gagal membuat target.")
		return
	}
	if active {
		utils.Error(c, http.StatusForbidden, "Kamu masih memiliki target yang belum tercapai.")
		return
	}

	imageKey := ""
	if file != nil {
		src, err := file.Open()
		if err != nil {
			utils.Error(c, http.StatusInternalServerError, "Gagal membaca berkas gambar.")
			return
		}
		defer src.Close()

		key := "targets/" + utils.ImageFilename(form.Title, file.Filename)
		imageKey, err = services.UploadImage(c.Request.Context(), key, src)
		if err != nil {
			config.Log.Error("Gagal mengunggah gambar target: ", err)
			utils.Error(c, http.StatusInternalServerError, "Gagal mengunggah gambar.")
			return
		}
	}

	target, err := services.CreateTarget(c.Request.Context(), userID, form, imageKey)
	if errors.Is(err, services.ErrTargetAktifMasihAda) {
		// Permintaan bersamaan lolos pemeriksaan awal; bersihkan gambar
		// yang terlanjur terunggah
		if imageKey != "" {
			if err := services.DeleteImage(c.Request.Context(), imageKey); err != nil {
				config.Log.Warn("Gagal menghapus gambar target yang batal: ", err)
			}
		}
		utils.Error(c, http.StatusForbidden, "Kamu masih memiliki target yang belum tercapai.")
		return
	} else if err != nil {
		config.Log.Error("Gagal membuat target: ", err)
		utils.Error(c, http.StatusInternalServerError, "Gagal membuat target.")
		return
	}

	target.ImagePath = services.ImageURL(target.ImagePath)
	utils.Respond(c, http.StatusCreated, "Target berhasil dibuat.", target)
}

// UpdateTarget memperbarui sebagian field target milik pemanggil
func UpdateTarget(c *gin.Context) {
	userID := c.MustGet("userID").(int)

	targetID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusNotFound, "Target tidak ditemukan.")
		return
	}

	form, errs := parseBudgetForm(c, true)
	file := formImage(c, errs)
	if len(errs) > 0 {
		utils.ValidationError(c, errs)
		return
	}

	existing, err := services.GetTarget(c.Request.Context(), userID, targetID)
	if errors.Is(err, services.ErrTargetTidakDitemukan) {
		utils.Error(c, http.StatusNotFound, "Target tidak ditemukan.")
		return
	} else if err != nil {
		config.Log.Error("Gagal mengambil target: ", err)
		utils.Error(c, http.StatusInternalServerError, "Gagal mengambil target.")
		return
	}

	imageKey := ""
	if file != nil {
		// Hapus gambar lama lebih dulu; kegagalan tidak menghalangi unggahan baru
		if existing.ImagePath != "" {
			if err := services.DeleteImage(c.Request.Context(), existing.ImagePath); err != nil {
				config.Log.Warn("Gagal menghapus gambar lama: ", err)
			} else {
				config.Log.Info("Gambar lama dihapus: ", existing.ImagePath)
			}
		}

		title := form.Title
		if title == "" {
			title = existing.Title
		}

		src, err := file.Open()
		if err != nil {
			utils.Error(c, http.StatusInternalServerError, "Gagal membaca berkas gambar.")
			return
		}
		defer src.Close()

		key := "targets/" + utils.ImageFilename(title, file.Filename)
		imageKey, err = services.UploadImage(c.Request.Context(), key, src)
		if err != nil {
			config.Log.Error("Gagal mengunggah gambar target: ", err)
			utils.Error(c, http.StatusInternalServerError, "Gagal mengunggah gambar.")
			return
		}
		config.Log.Info("Gambar baru disimpan: ", imageKey)
	}

	target, err := services.UpdateTarget(c.Request.Context(), userID, targetID, form, imageKey)
	if errors.Is(err, services.ErrTargetTidakDitemukan) {
		utils.Error(c, http.StatusNotFound, "Target tidak ditemukan.")
		return
	} else if err != nil {
		config.Log.Error("Gagal memperbarui target: ", err)
		utils.Error(c, http.StatusInternalServerError, "Gagal memperbarui target.")
		return
	}

	target.ImagePath = services.ImageURL(target.ImagePath)
	utils.Respond(c, http.StatusOK, "Target berhasil diperbarui.", target)
}

// DeleteTarget menghapus target milik pemanggil beserta gambarnya
func DeleteTarget(c *gin.Context) {
	userID := c.MustGet("userID").(int)

	targetID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusNotFound, "Target tidak ditemukan.")
		return
	}

	imageKey, err := services.DeleteTarget(c.Request.Context(), userID, targetID)
	if errors.Is(err, services.ErrTargetTidakDitemukan) {
		utils.Error(c, http.StatusNotFound, "Target tidak ditemukan.")
		return
	} else if err != nil {
		config.Log.Error("Gagal menghapus target: ", err)
		utils.Error(c, http.StatusInternalServerError, "Gagal menghapus target.")
		return
	}

	if err := services.DeleteImage(c.Request.Context(), imageKey); err != nil {
		config.Log.Warn("Gagal menghapus gambar target: ", err)
	}

	utils.Respond(c, http.StatusOK, "Target berhasil dihapus.", nil)
}

// ShowProgres mengembalikan detail target beserta agregat setorannya
func ShowProgres(c *gin.Context) {
	userID := c.MustGet("userID").(int)

	targetID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusNotFound, "Target tidak ditemukan.")
		return
	}

	detail, err := services.GetTargetDetail(c.Request.Context(), userID, targetID)
	if errors.Is(err, services.ErrTargetTidakDitemukan) {
		utils.Error(c, http.StatusNotFound, "Target tidak ditemukan.")
		return
	} else if err != nil {
		config.Log.Error("Gagal mengambil detail target: ", err)
		utils.Error(c, http.StatusInternalServerError, "Gagal mengambil detail target.")
		return
	}

	utils.Respond(c, http.StatusOK, "Detail target ditemukan.", detail)
}

// RiwayatTabungan mengembalikan target pemanggil yang sudah selesai
func RiwayatTabungan(c *gin.Context) {
	userID := c.MustGet("userID").(int)

	targets, err := services.RiwayatTabungan(c.Request.Context(), userID)
	if err != nil {
		config.Log.Error("Gagal mengambil riwayat tabungan: ", err)
		utils.Error(c, http.StatusInternalServerError, "Gagal mengambil riwayat tabungan.")
		return
	}

	utils.Respond(c, http.StatusOK, "Daftar target berhasil diambil.", targets)
}
