package models

import "time"

// Status target tabungan
const (
	StatusPending = "pending"
	StatusSelesai = "selesai"
)

// Target merepresentasikan target tabungan milik seorang saver
type Target struct {
	ID           int       `json:"id"`
	UserID       int       `json:"user_id"`
	Title        string    `json:"title"`
	Ticket       float64   `json:"ticket"`
	Food         float64   `json:"food"`
	Transport    float64   `json:"transport"`
	Others       float64   `json:"others"`
	ImagePath    string    `json:"image_path"`
	LocationName string    `json:"location_name"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	Status       string    `json:"status"` // pending atau selesai
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TargetForm adalah field multipart untuk membuat atau mengubah target.
// Field numerik bertipe pointer agar update parsial bisa membedakan
// "tidak dikirim" dari nol.
type TargetForm struct {
	Title        string
	Ticket       *float64
	Food         *float64
	Transport    *float64
	Others       *float64
	LocationName string
	Latitude     *float64
	Longitude    *float64
}

// TargetProgress adalah bentuk respons target beserta agregat progresnya
type TargetProgress struct {
	Target
	TotalTarget       float64   `json:"total_target"`
	TotalSetoran      float64   `json:"total_setoran"`
	PersentaseProgres float64   `json:"persentase_progres"`
	Progres           []Progres `json:"progres"`
}

// TargetDetail adalah bentuk respons detail target untuk GET /targets/{id}/progres
type TargetDetail struct {
	Target            Target    `json:"target"`
	Progres           []Progres `json:"progres"`
	TotalSetoran      float64   `json:"total_setoran"`
	TotalTarget       float64   `json:"total_target"`
	PersentaseProgres string    `json:"persentase_progres"`
}
