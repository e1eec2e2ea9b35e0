package services

import (
	"context"
	"database/sql"
	"fmt"

	"backend-tabungan/config"
	"backend-tabungan/models"
)

const progresColumns = `id, user_id, target_id, setoran,
	to_char(tanggal_setoran, 'YYYY-MM-DD'),
	to_char(waktu_setoran, 'HH24:MI'),
	created_at`

func scanProgres(row rowScanner) (*models.Progres, error) {
	var p models.Progres
	err := row.Scan(&p.ID, &p.UserID, &p.TargetID, &p.Setoran,
		&p.TanggalSetoran, &p.WaktuSetoran, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ListProgres mengambil daftar setoran sebuah target milik user, urut dari
// yang paling lama
func ListProgres(ctx context.Context, targetID, userID int) ([]models.Progres, error) {
	rows, err := config.DB.QueryContext(ctx,
		`SELECT `+progresColumns+` FROM progres WHERE target_id = $1 AND user_id = $2 ORDER BY created_at ASC`,
		targetID, userID)
	if err != nil {
		return nil, fmt.Errorf("gagal mengambil data setoran: %v", err)
	}
	defer rows.Close()

	result := []models.Progres{}
	for rows.Next() {
		p, err := scanProgres(rows)
		if err != nil {
			return nil, fmt.Errorf("gagal membaca data setoran: %v", err)
		}
		result = append(result, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("gagal membaca data setoran: %v", err)
	}
	return result, nil
}

// CreateProgres mencatat setoran baru dalam satu transaksi: target dikunci
// dan diperiksa lebih dulu, setoran disimpan, lalu status target dievaluasi
// ulang. Target yang tidak ada (atau milik user lain) membatalkan seluruh
// transaksi tanpa meninggalkan baris setoran.
//
// Mengembalikan setoran yang dibuat beserta status target setelah evaluasi.
func CreateProgres(ctx context.Context, userID int, req *models.ProgresRequest) (*models.Progres, string, error) {
	tx, err := config.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, "", fmt.Errorf("gagal memulai transaksi: %v", err)
	}
	defer tx.Rollback()

	// Kunci baris target agar dua setoran bersamaan tidak membaca status lama
	var t models.Target
	err = tx.QueryRowContext(ctx, `
		SELECT id, user_id, ticket, food, transport, others, status
		FROM target
		WHERE id = $1 AND user_id = $2
		FOR UPDATE`, req.TargetID, userID).
		Scan(&t.ID, &t.UserID, &t.Ticket, &t.Food, &t.Transport, &t.Others, &t.Status)
	if err == sql.ErrNoRows {
		return nil, "", ErrTargetTidakDitemukan
	} else if err != nil {
		return nil, "", fmt.Errorf("gagal mengambil data target: %v", err)
	}

	row := tx.QueryRowContext(ctx, `
		INSERT INTO progres (user_id, target_id, setoran, tanggal_setoran, waktu_setoran)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+progresColumns,
		userID, req.TargetID, req.Setoran, req.TanggalSetoran, req.WaktuSetoran)

	p, err := scanProgres(row)
	if err != nil {
		return nil, "", fmt.Errorf("gagal menyimpan setoran: %v", err)
	}

	var totalSetoran float64
	err = tx.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(setoran), 0) FROM progres WHERE target_id = $1 AND user_id = $2`,
		req.TargetID, userID).Scan(&totalSetoran)
	if err != nil {
		return nil, "", fmt.Errorf("gagal menghitung total setoran: %v", err)
	}

	// Transisi status satu arah: pending -> selesai, tidak pernah kembali
	status := t.Status
	totalKebutuhan := TotalKebutuhan(t.Ticket, t.Food, t.Transport, t.Others)
	if TabunganTercapai(totalSetoran, totalKebutuhan) && t.Status != models.StatusSelesai {
		if _, err := tx.ExecContext(ctx,
			`UPDATE target SET status = $1, updated_at = now() WHERE id = $2`,
			models.StatusSelesai, t.ID); err != nil {
			return nil, "", fmt.Errorf("gagal memperbarui status target: %v", err)
		}
		status = models.StatusSelesai
	}

	if err := tx.Commit(); err != nil {
		return nil, "", fmt.Errorf("gagal menyelesaikan transaksi: %v", err)
	}

	return p, status, nil
}
