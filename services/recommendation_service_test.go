package services

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backend-tabungan/config"
)

var recommendationTestColumns = []string{
	"id", "title", "ticket", "food", "transport", "others", "image_path",
	"location_name", "latitude", "longitude", "coalesce", "created_at", "updated_at",
}

func recommendationTestRow() *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(recommendationTestColumns).
		AddRow(1, "Pantai Kuta", 500000.0, 300000.0, 200000.0, 100000.0, "recommendations/1700000000_pantai-kuta.jpg",
			"Bali", -8.7184, 115.1686, "Pantai populer di Bali", now, now)
}

func TestGetRecommendationMenghitungTotalDanURL(t *testing.T) {
	mock := setupMockDB(t)
	config.AWSBucketName = "tabungan-bucket"
	config.AWSRegion = "ap-southeast-1"

	mock.ExpectQuery(`SELECT .+ FROM recomendations WHERE id = \$1`).
		WithArgs(1).
		WillReturnRows(recommendationTestRow())

	r, err := GetRecommendation(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, 1100000.0, r.TotalEstimated)
	assert.Equal(t,
		"https://tabungan-bucket.s3.ap-southeast-1.amazonaws.com/recommendations/1700000000_pantai-kuta.jpg",
		r.ImagePath)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetRecommendationTidakDitemukan(t *testing.T) {
	mock := setupMockDB(t)

	mock.ExpectQuery(`SELECT .+ FROM recomendations WHERE id = \$1`).
		WithArgs(99).
		WillReturnRows(sqlmock.NewRows(recommendationTestColumns))

	_, err := GetRecommendation(context.Background(), 99)
	assert.ErrorIs(t, err, ErrRecommendationTidakDitemukan)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetRecommendationRawMempertahankanKeyGambar(t *testing.T) {
	mock := setupMockDB(t)

	mock.ExpectQuery(`SELECT .+ FROM recomendations WHERE id = \$1`).
		WithArgs(1).
		WillReturnRows(recommendationTestRow())

	r, err := GetRecommendationRaw(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, "recommendations/1700000000_pantai-kuta.jpg", r.ImagePath)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteRecommendationMengembalikanKeyGambar(t *testing.T) {
	mock := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(`DELETE FROM recomendations WHERE id = $1 RETURNING image_path`)).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"image_path"}).AddRow("recommendations/1700000000_pantai-kuta.jpg"))

	key, err := DeleteRecommendation(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "recommendations/1700000000_pantai-kuta.jpg", key)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteRecommendationTidakDitemukan(t *testing.T) {
	mock := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(`DELETE FROM recomendations WHERE id = $1 RETURNING image_path`)).
		WithArgs(99).
		WillReturnRows(sqlmock.NewRows([]string{"image_path"}))

	_, err := DeleteRecommendation(context.Background(), 99)
	assert.ErrorIs(t, err, ErrRecommendationTidakDitemukan)
	assert.NoError(t, mock.ExpectationsWereMet())
}
