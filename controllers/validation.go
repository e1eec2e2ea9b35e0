package controllers

import (
	"errors"
	"fmt"
	"mime/multipart"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"backend-tabungan/models"
	"backend-tabungan/utils"
)

// bindingErrors menerjemahkan error binding gin menjadi daftar kesalahan per field
func bindingErrors(err error) map[string]string {
	errs := map[string]string{}

	var vErrs validator.ValidationErrors
	if errors.As(err, &vErrs) {
		for _, fe := range vErrs {
			field := strings.ToLower(fe.Field())
			switch fe.Tag() {
			case "required":
				errs[field] = fmt.Sprintf("Field %s wajib diisi.", field)
			case "email":
				errs[field] = fmt.Sprintf("Field %s harus berupa email yang valid.", field)
			case "min":
				errs[field] = fmt.Sprintf("Field %s minimal %s karakter.", field, fe.Param())
			case "max":
				errs[field] = fmt.Sprintf("Field %s maksimal %s karakter.", field, fe.Param())
			case "gt":
				errs[field] = fmt.Sprintf("Field %s harus lebih besar dari %s.", field, fe.Param())
			default:
				errs[field] = fmt.Sprintf("Field %s tidak valid.", field)
			}
		}
		return errs
	}

	errs["body"] = "Payload tidak dapat dibaca."
	return errs
}

// formFloat membaca satu field numerik opsional dari form multipart.
// Mengembalikan nil bila field tidak dikirim.
func formFloat(c *gin.Context, name string, min, max float64, errs map[string]string) *float64 {
	raw := strings.TrimSpace(c.PostForm(name))
	if raw == "" {
		return nil
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		errs[name] = fmt.Sprintf("Field %s harus berupa angka.", name)
		return nil
	}
	if v < min || v > max {
		errs[name] = fmt.Sprintf("Field %s harus di antara %v dan %v.", name, min, max)
		return nil
	}
	return &v
}

// Batas atas komponen biaya menyesuaikan kolom NUMERIC(12,2)
const maxBudgetComponent = 9999999999.99

// parseBudgetForm membaca field yang sama-sama dipakai target dan
// rekomendasi: judul, komponen biaya, dan lokasi
func parseBudgetForm(c *gin.Context, partial bool) (*models.TargetForm, map[string]string) {
	form := &models.TargetForm{}
	errs := map[string]string{}

	form.Title = strings.TrimSpace(c.PostForm("title"))
	if !partial && form.Title == "" {
		errs["title"] = "Field title wajib diisi."
	}
	if len(form.Title) > 100 {
		errs["title"] = "Field title maksimal 100 karakter."
	}

	form.LocationName = strings.TrimSpace(c.PostForm("location_name"))
	if !partial && form.LocationName == "" {
		errs["location_name"] = "Field location_name wajib diisi."
	}
	if len(form.LocationName) > 150 {
		errs["location_name"] = "Field location_name maksimal 150 karakter."
	}

	form.Ticket = formFloat(c, "ticket", 0, maxBudgetComponent, errs)
	form.Food = formFloat(c, "food", 0, maxBudgetComponent, errs)
	form.Transport = formFloat(c, "transport", 0, maxBudgetComponent, errs)
	form.Others = formFloat(c, "others", 0, maxBudgetComponent, errs)
	form.Latitude = formFloat(c, "latitude", -90, 90, errs)
	form.Longitude = formFloat(c, "longitude", -180, 180, errs)

	return form, errs
}

// formImage membaca berkas gambar opsional dari form multipart. File yang
// dikirim tapi tidak valid tercatat di errs.
func formImage(c *gin.Context, errs map[string]string) *multipart.FileHeader {
	file, err := c.FormFile("image_path")
	if err != nil {
		return nil
	}
	if !utils.ValidImage(file.Filename, file.Size) {
		errs["image_path"] = "Gambar harus jpg/jpeg/png dengan ukuran maksimal 2MB."
		return nil
	}
	return file
}
