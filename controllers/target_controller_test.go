package controllers

import (
	"bytes"
	"database/sql"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backend-tabungan/config"
	"backend-tabungan/models"
)

func setupMockDB(t *testing.T) sqlmock.Sqlmock {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	old := config.DB
	config.DB = db
	t.Cleanup(func() {
		config.DB = old
		db.Close()
	})

	return mock
}

func setupTargetRouter(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/targets", func(c *gin.Context) {
		c.Set("userID", 1)
		c.Next()
	}, CreateTarget)
	return r
}

func targetMultipartForm(t *testing.T, fields map[string]string, imageName string) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if imageName != "" {
		fw, err := w.CreateFormFile("image_path", imageName)
		require.NoError(t, err)
		_, err = fw.Write([]byte("isi gambar"))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func expectHasActiveTarget(mock sqlmock.Sqlmock, active bool) {
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS (SELECT 1 FROM target WHERE user_id = $1 AND status != $2)`)).
		WithArgs(1, models.StatusSelesai).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(active))
}

func TestCreateTargetKonflikSebelumGambarDiunggah(t *testing.T) {
	mock := setupMockDB(t)
	r := setupTargetRouter(t)

	expectHasActiveTarget(mock, true)

	// Gambar ikut dikirim: konflik harus terdeteksi sebelum ada unggahan
	// ke S3, jadi tidak ada objek yatim yang tertinggal
	body, contentType := targetMultipartForm(t, map[string]string{
		"title":         "Liburan ke Bali",
		"location_name": "Bali",
	}, "foto.jpg")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/targets", body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Kamu masih memiliki target yang belum tercapai.")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateTargetBerhasilTanpaGambar(t *testing.T) {
	mock := setupMockDB(t)
	r := setupTargetRouter(t)

	now := time.Now()
	expectHasActiveTarget(mock, false)
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`SELECT pg_advisory_xact_lock($1)`)).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT id FROM target WHERE user_id = \$1 AND status != \$2`).
		WithArgs(1, models.StatusSelesai).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery(`INSERT INTO target`).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "user_id", "title", "ticket", "food", "transport", "others",
			"image_path", "location_name", "latitude", "longitude", "status",
			"created_at", "updated_at",
		}).AddRow(3, 1, "Liburan ke Bali", 100.0, 50.0, 0.0, 0.0,
			"", "Bali", -8.409518, 115.188919, models.StatusPending, now, now))
	mock.ExpectCommit()

	body, contentType := targetMultipartForm(t, map[string]string{
		"title":         "Liburan ke Bali",
		"location_name": "Bali",
		"ticket":        "100",
		"food":          "50",
	}, "")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/targets", body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "Target berhasil dibuat.")
	assert.NoError(t, mock.ExpectationsWereMet())
}
