package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"backend-tabungan/config"
	"backend-tabungan/models"
	"backend-tabungan/services"
	"backend-tabungan/utils"
)

// parseRecommendationForm membaca form multipart rekomendasi
func parseRecommendationForm(c *gin.Context, partial bool) (*models.RecommendationForm, map[string]string) {
	budget, errs := parseBudgetForm(c, partial)

	form := &models.RecommendationForm{
		Title:        budget.Title,
		Ticket:       budget.Ticket,
		Food:         budget.Food,
		Transport:    budget.Transport,
		Others:       budget.Others,
		LocationName: budget.LocationName,
		Latitude:     budget.Latitude,
		Longitude:    budget.Longitude,
	}

	if _, ok := c.GetPostForm("description"); ok {
		description := c.PostForm("description")
		form.Description = &description
	}

	return form, errs
}

// ListRecommendations mengembalikan seluruh rekomendasi
func ListRecommendations(c *gin.Context) {
	recommendations, err := services.ListRecommendations(c.Request.Context())
	if err != nil {
		config.Log.Error("Gagal mengambil daftar recommendation: ", err)
		utils.Error(c, http.StatusInternalServerError, "Gagal mengambil daftar recommendation.")
		return
	}

	utils.Respond(c, http.StatusOK, "Daftar recommendation berhasil diambil.", recommendations)
}

// ShowRecommendation mengembalikan detail satu rekomendasi
func ShowRecommendation(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusNotFound, "Recommendation tidak ditemukan.")
		return
	}

	recommendation, err := services.GetRecommendation(c.Request.Context(), id)
	if errors.Is(err, services.ErrRecommendationTidakDitemukan) {
		utils.Error(c, http.StatusNotFound, "Recommendation tidak ditemukan.")
		return
	} else if err != nil {
		config.Log.Error("Gagal mengambil recommendation: ", err)
		utils.Error(c, http.StatusInternalServerError, "Gagal mengambil recommendation.")
		return
	}

	utils.Respond(c, http.StatusOK, "Detail berhasil ditemukan.", recommendation)
}

// CreateRecommendation menambahkan rekomendasi baru (khusus admin)
func CreateRecommendation(c *gin.Context) {
	form, errs := parseRecommendationForm(c, false)
	file := formImage(c, errs)
	if file == nil && errs["image_path"] == "" {
		errs["image_path"] = "Gambar wajib diunggah."
	}
	if len(errs) > 0 {
		utils.ValidationError(c, errs)
		return
	}

	src, err := file.Open()
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal membaca berkas gambar.")
		return
	}
	defer src.Close()

	key := "recommendations/" + utils.ImageFilename(form.Title, file.Filename)
	imageKey, err := services.UploadImage(c.Request.Context(), key, src)
	if err != nil {
		config.Log.Error("Gagal mengunggah gambar recommendation: ", err)
		utils.Error(c, http.StatusInternalServerError, "Gagal mengunggah gambar.")
		return
	}

	recommendation, err := services.CreateRecommendation(c.Request.Context(), form, imageKey)
	if err != nil {
		config.Log.Error("Gagal menambahkan recommendation: ", err)
		utils.Error(c, http.StatusInternalServerError, "Gagal menambahkan recommendation.")
		return
	}

	utils.Respond(c, http.StatusCreated, "Rekomendasi berhasil ditambahkan.", recommendation)
}

// UpdateRecommendation mengubah sebagian field rekomendasi (khusus admin)
func UpdateRecommendation(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusNotFound, "Rekomendasi tidak ditemukan.")
		return
	}

	form, errs := parseRecommendationForm(c, true)
	file := formImage(c, errs)
	if len(errs) > 0 {
		utils.ValidationError(c, errs)
		return
	}

	existing, err := services.GetRecommendationRaw(c.Request.Context(), id)
	if errors.Is(err, services.ErrRecommendationTidakDitemukan) {
		utils.Error(c, http.StatusNotFound, "Rekomendasi tidak ditemukan.")
		return
	} else if err != nil {
		config.Log.Error("Gagal mengambil recommendation: ", err)
		utils.Error(c, http.StatusInternalServerError, "Gagal mengambil recommendation.")
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

		src, err := file.Open()
		if err != nil {
			utils.Error(c, http.StatusInternalServerError, "Gagal membaca berkas gambar.")
			return
		}
		defer src.Close()

		// Nama berkas diturunkan dari judul baru bila dikirim
		title := form.Title
		if title == "" {
			title = existing.Title
		}

		key := "recommendations/" + utils.ImageFilename(title, file.Filename)
		imageKey, err = services.UploadImage(c.Request.Context(), key, src)
		if err != nil {
			config.Log.Error("Gagal mengunggah gambar recommendation: ", err)
			utils.Error(c, http.StatusInternalServerError, "Gagal mengunggah gambar.")
			return
		}
		config.Log.Info("Gambar baru disimpan: ", imageKey)
	}

	recommendation, err := services.UpdateRecommendation(c.Request.Context(), id, form, imageKey)
	if errors.Is(err, services.ErrRecommendationTidakDitemukan) {
		utils.Error(c, http.StatusNotFound, "Rekomendasi tidak ditemukan.")
		return
	} else if err != nil {
		config.Log.Error("Gagal memperbarui recommendation: ", err)
		utils.Error(c, http.StatusInternalServerError, "Gagal memperbarui recommendation.")
		return
	}

	utils.Respond(c, http.StatusOK, "Rekomendasi berhasil diperbarui.", recommendation)
}

// DeleteRecommendation menghapus rekomendasi beserta gambarnya (khusus admin)
func DeleteRecommendation(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusNotFound, "Rekomendasi tidak ditemukan.")
		return
	}

	imageKey, err := services.DeleteRecommendation(c.Request.Context(), id)
	if errors.Is(err, services.ErrRecommendationTidakDitemukan) {
		utils.Error(c, http.StatusNotFound, "Rekomendasi tidak ditemukan.")
		return
	} else if err != nil {
		config.Log.Error("Gagal menghapus recommendation: ", err)
		utils.Error(c, http.StatusInternalServerError, "Gagal menghapus recommendation.")
		return
	}

	if err := services.DeleteImage(c.Request.Context(), imageKey); err != nil {
		config.Log.Warn("Gagal menghapus gambar recommendation: ", err)
	}

	utils.Respond(c, http.StatusOK, "Rekomendasi berhasil dihapus.", nil)
}
