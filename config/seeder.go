package config

import (
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"
)

// SeedAdminUser membuat akun admin bawaan bila belum ada.
// Password diambil dari konfigurasi ADMIN_PASSWORD.
func SeedAdminUser() error {
	var exists bool
	err := DB.QueryRow(`SELECT EXISTS (SELECT 1 FROM users WHERE role = 'admin')`).Scan(&exists)
	if err != nil {
		return fmt.Errorf("gagal memeriksa akun admin: %v", err)
	}

	if exists {
		log.Println("Akun admin sudah ada, seeding dilewati")
		return nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("gagal melakukan hash password admin: %v", err)
	}

	// ON CONFLICT tanpa target mencakup kedua unique constraint: username
	// maupun email yang sudah terpakai tidak menggagalkan boot
	_, err = DB.Exec(`INSERT INTO users (username, email, password, role)
		VALUES ($1, $2, $3, 'admin')
		ON CONFLICT DO NOTHING`,
		"admin123", "admin@gmail.com", string(hashedPassword))
	if err != nil {
		return fmt.Errorf("gagal membuat akun admin: %v", err)
	}

	log.Println("🌱 Akun admin bawaan berhasil dibuat")
	return nil
}
