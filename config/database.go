package config

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	_ "github.com/lib/pq" // driver PostgreSQL
)

var (
	DB         *sql.DB
	initDBOnce sync.Once
)

// InitDB menginisialisasi koneksi PostgreSQL sebagai singleton
func InitDB() error {
	var initError error
	initDBOnce.Do(func() {
		// Susun connection string untuk PostgreSQL
		connStr := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
			PostgresUser, PostgresPassword, PostgresHost, PostgresPort, PostgresDB)

		// Buka koneksi ke PostgreSQL
		db, err := sql.Open("postgres", connStr)
		if err != nil {
			initError = fmt.Errorf("gagal membuka koneksi PostgreSQL: %v", err)
			return
		}

		// Batasi connection pool
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(25)
		db.SetConnMaxLifetime(10 * time.Minute)

		// Ping database untuk memastikan koneksi berhasil
		if err := db.Ping(); err != nil {
			initError = fmt.Errorf("gagal melakukan ping ke basis data PostgreSQL: %v", err)
			return
		}

		DB = db
		log.Println("✅ Terhubung ke basis data PostgreSQL!")
	})

	return initError
}

// CloseDB menutup koneksi database dengan rapi
func CloseDB() error {
	if DB != nil {
		return DB.Close()
	}
	return nil
}
