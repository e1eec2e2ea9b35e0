package services

import "errors"

// Error bisnis yang diterjemahkan controller ke kode HTTP
var (
	ErrTargetTidakDitemukan         = errors.New("target tidak ditemukan")
	ErrRecommendationTidakDitemukan = errors.New("recommendation tidak ditemukan")
	ErrTargetAktifMasihAda          = errors.New("masih ada target yang belum tercapai")
	ErrUsernameTerdaftar            = errors.New("username sudah terdaftar")
	ErrEmailTerdaftar               = errors.New("email sudah terdaftar")
	ErrKredensialSalah              = errors.New("email atau password salah")
)
