package models

import "time"

// Recommendation merepresentasikan destinasi rekomendasi yang dikelola admin
type Recommendation struct {
	ID             int       `json:"id"`
	Title          string    `json:"title"`
	Ticket         float64   `json:"ticket"`
	Food           float64   `json:"food"`
	Transport      float64   `json:"transport"`
	Others         float64   `json:"others"`
	ImagePath      string    `json:"image_path"`
	LocationName   string    `json:"location_name"`
	Latitude       float64   `json:"latitude"`
	Longitude      float64   `json:"longitude"`
	Description    string    `json:"description"`
	TotalEstimated float64   `json:"total_estimated"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// RecommendationForm adalah field multipart untuk membuat atau mengubah rekomendasi
type RecommendationForm struct {
	Title        string
	Ticket       *float64
	Food         *float64
	Transport    *float64
	Others       *float64
	LocationName string
	Latitude     *float64
	Longitude    *float64
	Description  *string
}
