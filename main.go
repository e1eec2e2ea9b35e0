package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"backend-tabungan/config"
	"backend-tabungan/routes"
	"backend-tabungan/services"
)

func main() {
	if err := config.LoadConfig(); err != nil {
		log.Fatal("Gagal memuat konfigurasi:", err)
	}

	config.InitLogger()

	if err := config.LoadAWSConfig(); err != nil {
		log.Fatal("Gagal menginisialisasi AWS:", err)
	}

	if err := config.InitDB(); err != nil {
		log.Fatal("Gagal menginisialisasi database (PostgreSQL):", err)
	}

	if err := config.RunMigrations(); err != nil {
		log.Fatal("Gagal menjalankan migrasi:", err)
	}

	if err := config.SeedAdminUser(); err != nil {
		log.Fatal("Gagal melakukan seeding akun admin:", err)
	}

	// Redis hanya dipakai untuk daftar cabut token; tanpa Redis aplikasi
	// tetap berjalan dan logout berlaku di sisi klien saja
	if err := config.InitRedis(); err != nil {
		log.Println("⚠️ Redis tidak tersedia, pencabutan token dinonaktifkan:", err)
	}

	services.InitStorage()

	if config.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(gin.Logger())

	trustedProxies := []string{"127.0.0.1", "::1"}
	if err := r.SetTrustedProxies(trustedProxies); err != nil {
		log.Fatal("Gagal menetapkan proxy tepercaya:", err)
	}

	corsConfig := cors.Config{
		AllowOrigins:     config.CORSAllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	r.Use(cors.New(corsConfig))

	// Middleware untuk menangani semua preflight OPTIONS request
	r.Use(func(c *gin.Context) {
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusOK)
			return
		}
		c.Next()
	})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("Shutting down server...")

		if err := config.CloseDB(); err != nil {
			log.Printf("Database shutdown error: %v", err)
		}
		if err := config.CloseRedis(); err != nil {
			log.Printf("Redis shutdown error: %v", err)
		}

		os.Exit(0)
	}()

	routes.SetupRoutes(r)

	serverAddr := ":" + config.Port
	log.Printf("Server starting on %s", serverAddr)
	if err := r.Run(serverAddr); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
