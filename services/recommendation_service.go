package services

import (
	"context"
	"database/sql"
	"fmt"

	"backend-tabungan/config"
	"backend-tabungan/models"
)

const recommendationColumns = `id, title, ticket, food, transport, others, image_path, location_name, latitude, longitude, COALESCE(description, ''), created_at, updated_at`

func scanRecommendation(row rowScanner) (*models.Recommendation, error) {
	var r models.Recommendation
	err := row.Scan(&r.ID, &r.Title, &r.Ticket, &r.Food, &r.Transport, &r.Others,
		&r.ImagePath, &r.LocationName, &r.Latitude, &r.Longitude, &r.Description,
		&r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		return nil, err
	}
	r.TotalEstimated = TotalKebutuhan(r.Ticket, r.Food, r.Transport, r.Others)
	return &r, nil
}

// ListRecommendations mengambil seluruh rekomendasi, yang terbaru lebih dulu
func ListRecommendations(ctx context.Context) ([]models.Recommendation, error) {
	rows, err := config.DB.QueryContext(ctx,
		`SELECT `+recommendationColumns+` FROM recomendations ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("gagal mengambil data recommendation: %v", err)
	}
	defer rows.Close()

	result := []models.Recommendation{}
	for rows.Next() {
		r, err := scanRecommendation(rows)
		if err != nil {
			return nil, fmt.Errorf("gagal membaca data recommendation: %v", err)
		}
		r.ImagePath = ImageURL(r.ImagePath)
		result = append(result, *r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("gagal membaca data recommendation: %v", err)
	}
	return result, nil
}

// getRecommendation mengambil satu rekomendasi dengan image_path berupa key
// objek mentah, untuk kebutuhan update/delete
func getRecommendation(ctx context.Context, id int) (*models.Recommendation, error) {
	row := config.DB.QueryRowContext(ctx,
		`SELECT `+recommendationColumns+` FROM recomendations WHERE id = $1`, id)

	r, err := scanRecommendation(row)
	if err == sql.ErrNoRows {
		return nil, ErrRecommendationTidakDitemukan
	} else if err != nil {
		return nil, fmt.Errorf("gagal mengambil data recommendation: %v", err)
	}
	return r, nil
}

// GetRecommendation mengambil satu rekomendasi untuk ditampilkan
func GetRecommendation(ctx context.Context, id int) (*models.Recommendation, error) {
	r, err := getRecommendation(ctx, id)
	if err != nil {
		return nil, err
	}
	r.ImagePath = ImageURL(r.ImagePath)
	return r, nil
}

// GetRecommendationRaw mengambil satu rekomendasi dengan image_path berupa
// key objek mentah, untuk alur update yang perlu menghapus gambar lama
func GetRecommendationRaw(ctx context.Context, id int) (*models.Recommendation, error) {
	return getRecommendation(ctx, id)
}

// CreateRecommendation menambahkan rekomendasi baru
func CreateRecommendation(ctx context.Context, form *models.RecommendationForm, imageKey string) (*models.Recommendation, error) {
	var description interface{}
	if form.Description != nil {
		description = *form.Description
	}

	row := config.DB.QueryRowContext(ctx, `
		INSERT INTO recomendations (title, ticket, food, transport, others, image_path, location_name, latitude, longitude, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING `+recommendationColumns,
		form.Title,
		nilaiAtau(form.Ticket, 0), nilaiAtau(form.Food, 0), nilaiAtau(form.Transport, 0), nilaiAtau(form.Others, 0),
		imageKey, form.LocationName, nilaiAtau(form.Latitude, 0), nilaiAtau(form.Longitude, 0), description)

	r, err := scanRecommendation(row)
	if err != nil {
		return nil, fmt.Errorf("gagal menyimpan recommendation: %v", err)
	}
	r.ImagePath = ImageURL(r.ImagePath)
	return r, nil
}

// UpdateRecommendation memperbarui field yang dikirim saja. Key gambar baru
// yang kosong berarti gambar lama dipertahankan.
func UpdateRecommendation(ctx context.Context, id int, form *models.RecommendationForm, newImageKey string) (*models.Recommendation, error) {
	r, err := getRecommendation(ctx, id)
	if err != nil {
		return nil, err
	}

	if form.Title != "" {
		r.Title = form.Title
	}
	if form.LocationName != "" {
		r.LocationName = form.LocationName
	}
	if form.Description != nil {
		r.Description = *form.Description
	}
	r.Ticket = nilaiAtau(form.Ticket, r.Ticket)
	r.Food = nilaiAtau(form.Food, r.Food)
	r.Transport = nilaiAtau(form.Transport, r.Transport)
	r.Others = nilaiAtau(form.Others, r.Others)
	r.Latitude = nilaiAtau(form.Latitude, r.Latitude)
	r.Longitude = nilaiAtau(form.Longitude, r.Longitude)
	if newImageKey != "" {
		r.ImagePath = newImageKey
	}

	row := config.DB.QueryRowContext(ctx, `
		UPDATE recomendations
		SET title = $1, ticket = $2, food = $3, transport = $4, others = $5,
		    image_path = $6, location_name = $7, latitude = $8, longitude = $9,
		    description = $10, updated_at = now()
		WHERE id = $11
		RETURNING `+recommendationColumns,
		r.Title, r.Ticket, r.Food, r.Transport, r.Others,
		r.ImagePath, r.LocationName, r.Latitude, r.Longitude,
		r.Description, id)

	updated, err := scanRecommendation(row)
	if err == sql.ErrNoRows {
		return nil, ErrRecommendationTidakDitemukan
	} else if err != nil {
		return nil, fmt.Errorf("gagal memperbarui recommendation: %v", err)
	}
	updated.ImagePath = ImageURL(updated.ImagePath)
	return updated, nil
}

// DeleteRecommendation menghapus rekomendasi dan mengembalikan key gambarnya
func DeleteRecommendation(ctx context.Context, id int) (string, error) {
	var imageKey string
	err := config.DB.QueryRowContext(ctx,
		`DELETE FROM recomendations WHERE id = $1 RETURNING image_path`, id).Scan(&imageKey)
	if err == sql.ErrNoRows {
		return "", ErrRecommendationTidakDitemukan
	} else if err != nil {
		return "", fmt.Errorf("gagal menghapus recommendation: %v", err)
	}
	return imageKey, nil
}
