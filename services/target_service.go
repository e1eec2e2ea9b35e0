package services

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	"backend-tabungan/config"
	"backend-tabungan/models"
)

const targetColumns = `id, user_id, title, ticket, food, transport, others, image_path, location_name, latitude, longitude, status, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTarget(row rowScanner) (*models.Target, error) {
	var t models.Target
	err := row.Scan(&t.ID, &t.UserID, &t.Title, &t.Ticket, &t.Food, &t.Transport, &t.Others,
		&t.ImagePath, &t.LocationName, &t.Latitude, &t.Longitude, &t.Status, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func nilaiAtau(v *float64, fallback float64) float64 {
	if v == nil {
		return fallback
	}
	return *v
}

// ListTargets mengambil seluruh target milik user beserta agregat
// progresnya, yang terbaru lebih dulu
func ListTargets(ctx context.Context, userID int) ([]models.TargetProgress, error) {
	rows, err := config.DB.QueryContext(ctx,
		`SELECT `+targetColumns+` FROM target WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("gagal mengambil data target: %v", err)
	}

	result := []models.TargetProgress{}
	for rows.Next() {
		t, err := scanTarget(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("gagal membaca data target: %v", err)
		}
		result = append(result, models.TargetProgress{Target: *t})
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("gagal membaca data target: %v", err)
	}
	rows.Close()

	for i := range result {
		progres, err := ListProgres(ctx, result[i].ID, userID)
		if err != nil {
			return nil, err
		}

		var totalSetoran float64
		for _, p := range progres {
			totalSetoran += p.Setoran
		}

		result[i].Progres = progres
		result[i].TotalTarget = TotalKebutuhan(result[i].Ticket, result[i].Food, result[i].Transport, result[i].Others)
		result[i].TotalSetoran = totalSetoran
		result[i].PersentaseProgres = PersentaseProgres(totalSetoran, result[i].TotalTarget)
		result[i].ImagePath = ImageURL(result[i].ImagePath)
	}

	return result, nil
}

// GetTarget mengambil satu target milik user. Target milik user lain
// diperlakukan tidak ditemukan.
func GetTarget(ctx context.Context, userID, targetID int) (*models.Target, error) {
	row := config.DB.QueryRowContext(ctx,
		`SELECT `+targetColumns+` FROM target WHERE id = $1 AND user_id = $2`, targetID, userID)

	t, err := scanTarget(row)
	if err == sql.ErrNoRows {
		return nil, ErrTargetTidakDitemukan
	} else if err != nil {
		return nil, fmt.Errorf("gagal mengambil data target: %v", err)
	}
	return t, nil
}

// HasActiveTarget melaporkan apakah user masih punya target yang belum
// selesai
func HasActiveTarget(ctx context.Context, userID int) (bool, error) {
	var exists bool
	err := config.DB.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM target WHERE user_id = $1 AND status != $2)`,
		userID, models.StatusSelesai).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("gagal memeriksa target aktif: %v", err)
	}
	return exists, nil
}

// CreateTarget membuat target baru. Ditolak selama user masih punya target
// pending. Pemeriksaan dan insert berjalan dalam satu transaksi yang
// memegang advisory lock per user, sehingga dua permintaan bersamaan dari
// user yang sama tidak bisa sama-sama lolos.
func CreateTarget(ctx context.Context, userID int, form *models.TargetForm, imageKey string) (*models.Target, error) {
	tx, err := config.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("gagal memulai transaksi: %v", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock($1)`, int64(userID)); err != nil {
		return nil, fmt.Errorf("gagal mengambil lock pembuatan target: %v", err)
	}

	var existingID int
	err = tx.QueryRowContext(ctx,
		`SELECT id FROM target WHERE user_id = $1 AND status != $2 LIMIT 1`,
		userID, models.StatusSelesai).Scan(&existingID)
	if err == nil {
		return nil, ErrTargetAktifMasihAda
	} else if err != sql.ErrNoRows {
		return nil, fmt.Errorf("gagal memeriksa target aktif: %v", err)
	}

	row := tx.QueryRowContext(ctx, `
		INSERT INTO target (user_id, title, ticket, food, transport, others, image_path, location_name, latitude, longitude)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING `+targetColumns,
		userID, form.Title,
		nilaiAtau(form.Ticket, 0), nilaiAtau(form.Food, 0), nilaiAtau(form.Transport, 0), nilaiAtau(form.Others, 0),
		imageKey, form.LocationName, nilaiAtau(form.Latitude, 0), nilaiAtau(form.Longitude, 0))

	t, err := scanTarget(row)
	if err != nil {
		return nil, fmt.Errorf("gagal menyimpan target: %v", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("gagal menyelesaikan transaksi: %v", err)
	}
	return t, nil
}

// UpdateTarget memperbarui field yang dikirim saja; field lain dibiarkan.
// Status tidak pernah diubah lewat jalur ini.
func UpdateTarget(ctx context.Context, userID, targetID int, form *models.TargetForm, newImageKey string) (*models.Target, error) {
	t, err := GetTarget(ctx, userID, targetID)
	if err != nil {
		return nil, err
	}

	if form.Title != "" {
		t.Title = form.Title
	}
	if form.LocationName != "" {
		t.LocationName = form.LocationName
	}
	t.Ticket = nilaiAtau(form.Ticket, t.Ticket)
	t.Food = nilaiAtau(form.Food, t.Food)
	t.Transport = nilaiAtau(form.Transport, t.Transport)
	t.Others = nilaiAtau(form.Others, t.Others)
	t.Latitude = nilaiAtau(form.Latitude, t.Latitude)
	t.Longitude = nilaiAtau(form.Longitude, t.Longitude)
	if newImageKey != "" {
		t.ImagePath = newImageKey
	}

	row := config.DB.QueryRowContext(ctx, `
		UPDATE target
		SET title = $1, ticket = $2, food = $3, transport = $4, others = $5,
		    image_path = $6, location_name = $7, latitude = $8, longitude = $9,
		    updated_at = now()
		WHERE id = $10 AND user_id = $11
		RETURNING `+targetColumns,
		t.Title, t.Ticket, t.Food, t.Transport, t.Others,
		t.ImagePath, t.LocationName, t.Latitude, t.Longitude,
		targetID, userID)

	updated, err := scanTarget(row)
	if err == sql.ErrNoRows {
		return nil, ErrTargetTidakDitemukan
	} else if err != nil {
		return nil, fmt.Errorf("gagal memperbarui target: %v", err)
	}
	return updated, nil
}

// DeleteTarget menghapus target milik user dan mengembalikan key gambarnya
// agar pemanggil bisa menghapus objeknya. Baris progres ikut terhapus lewat
// foreign key cascade.
func DeleteTarget(ctx context.Context, userID, targetID int) (string, error) {
	var imageKey string
	err := config.DB.QueryRowContext(ctx,
		`DELETE FROM target WHERE id = $1 AND user_id = $2 RETURNING image_path`,
		targetID, userID).Scan(&imageKey)
	if err == sql.ErrNoRows {
		return "", ErrTargetTidakDitemukan
	} else if err != nil {
		return "", fmt.Errorf("gagal menghapus target: %v", err)
	}
	return imageKey, nil
}

// GetTargetDetail mengambil detail target beserta daftar setoran dan
// agregat progresnya
func GetTargetDetail(ctx context.Context, userID, targetID int) (*models.TargetDetail, error) {
	t, err := GetTarget(ctx, userID, targetID)
	if err != nil {
		return nil, err
	}

	progres, err := ListProgres(ctx, targetID, userID)
	if err != nil {
		return nil, err
	}

	var totalSetoran float64
	for _, p := range progres {
		totalSetoran += p.Setoran
	}

	totalTarget := TotalKebutuhan(t.Ticket, t.Food, t.Transport, t.Others)
	persentase := PersentaseProgres(totalSetoran, totalTarget)
	t.ImagePath = ImageURL(t.ImagePath)

	return &models.TargetDetail{
		Target:            *t,
		Progres:           progres,
		TotalSetoran:      totalSetoran,
		TotalTarget:       totalTarget,
		PersentaseProgres: strconv.FormatFloat(persentase, 'f', -1, 64) + "%",
	}, nil
}

// RiwayatTabungan mengambil target milik user yang sudah selesai
func RiwayatTabungan(ctx context.Context, userID int) ([]models.Target, error) {
	rows, err := config.DB.QueryContext(ctx,
		`SELECT `+targetColumns+` FROM target WHERE user_id = $1 AND status = $2 ORDER BY created_at DESC`,
		userID, models.StatusSelesai)
	if err != nil {
		return nil, fmt.Errorf("gagal mengambil riwayat tabungan: %v", err)
	}
	defer rows.Close()

	result := []models.Target{}
	for rows.Next() {
		t, err := scanTarget(rows)
		if err != nil {
			return nil, fmt.Errorf("gagal membaca riwayat tabungan: %v", err)
		}
		t.ImagePath = ImageURL(t.ImagePath)
		result = append(result, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("gagal membaca riwayat tabungan: %v", err)
	}
	return result, nil
}
