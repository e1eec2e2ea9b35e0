package models

import "time"

// ProgresRequest adalah payload penambahan setoran
type ProgresRequest struct {
	TargetID       int     `json:"target_id" binding:"required"`
	Setoran        float64 `json:"setoran" binding:"required,gt=0"`
	TanggalSetoran string  `json:"tanggal_setoran" binding:"required"`
	WaktuSetoran   string  `json:"waktu_setoran" binding:"required"`
}

// Progres merepresentasikan satu setoran terhadap sebuah target
type Progres struct {
	ID             int       `json:"id"`
	UserID         int       `json:"user_id"`
	TargetID       int       `json:"target_id"`
	Setoran        float64   `json:"setoran"`
	TanggalSetoran string    `json:"tanggal_setoran"` // YYYY-MM-DD
	WaktuSetoran   string    `json:"waktu_setoran"`   // HH:mm
	CreatedAt      time.Time `json:"created_at"`
}
