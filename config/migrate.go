package config

import (
	"errors"
	"fmt"
	"log"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"backend-tabungan/migrations"
)

// RunMigrations menjalankan seluruh migrasi skema yang tertanam di binary
func RunMigrations() error {
	src, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return fmt.Errorf("gagal membaca sumber migrasi: %w", err)
	}

	driver, err := postgres.WithInstance(DB, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("gagal menyiapkan driver migrasi: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "postgres", driver)
	if err != nil {
		return fmt.Errorf("gagal menyiapkan migrasi: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("gagal menjalankan migrasi: %w", err)
	}

	log.Println("✅ Migrasi database selesai")
	return nil
}
