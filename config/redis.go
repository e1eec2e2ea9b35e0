package config

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/go-redis/redis/v8"
)

var (
	Redis         *redis.Client
	initRedisOnce sync.Once
)

// InitRedis menginisialisasi koneksi Redis untuk daftar token yang dicabut.
// Bila Redis tidak tersedia, pencabutan token dinonaktifkan oleh pemanggil.
func InitRedis() error {
	var initError error
	initRedisOnce.Do(func() {
		client := redis.NewClient(&redis.Options{
			Addr:     RedisAddr,
			Password: RedisPassword,
		})

		if err := client.Ping(context.Background()).Err(); err != nil {
			initError = fmt.Errorf("gagal melakukan ping ke Redis: %v", err)
			return
		}

		Redis = client
		log.Println("✅ Terhubung ke Redis!")
	})

	return initError
}

// CloseRedis menutup koneksi Redis dengan rapi
func CloseRedis() error {
	if Redis != nil {
		return Redis.Close()
	}
	return nil
}
