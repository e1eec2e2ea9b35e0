package config

import (
	"context"
	"log"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/spf13/viper"
)

var (
	Environment        string
	Port               string
	PostgresUser       string
	PostgresPassword   string
	PostgresDB         string
	PostgresHost       string
	PostgresPort       string
	RedisAddr          string
	RedisPassword      string
	JWTSecret          string
	JWTExpiresHours    int
	AdminPassword      string
	AWSRegion          string
	AWSBucketName      string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	CORSAllowOrigins   []string

	// singleton lock
	loadConfigOnce sync.Once
)

var AWSConfig aws.Config

// LoadConfig memuat konfigurasi dari .env atau config.yaml menggunakan Viper
func LoadConfig() error {
	var loadError error
	loadConfigOnce.Do(func() {
		// Coba muat konfigurasi dari .env dulu, lalu fallback ke config.yaml
		viper.SetConfigFile(".env")
		viper.AutomaticEnv()

		viper.SetDefault("PORT", "8080")
		viper.SetDefault("JWT_EXPIRES_HOURS", 24)
		viper.SetDefault("REDIS_ADDR", "localhost:6379")
		viper.SetDefault("ADMIN_PASSWORD", "rahasia123")
		viper.SetDefault("CORS_ALLOW_ORIGINS", "http://localhost:3000,http://127.0.0.1:3000")

		if err := viper.ReadInConfig(); err != nil {
			viper.SetConfigFile("config.yaml")
			if err := viper.ReadInConfig(); err != nil {
				loadError = err // Simpan error untuk dikembalikan
				log.Println("Gagal memuat file konfigurasi:", err)
				return
			}
		}

		// Isi variabel dari konfigurasi
		Environment = viper.GetString("ENVIRONMENT")
		Port = viper.GetString("PORT")
		PostgresUser = viper.GetString("POSTGRES_USER")
		PostgresPassword = viper.GetString("POSTGRES_PASSWORD")
		PostgresDB = viper.GetString("POSTGRES_DB")
		PostgresHost = viper.GetString("POSTGRES_HOST")
		PostgresPort = viper.GetString("POSTGRES_PORT")
		RedisAddr = viper.GetString("REDIS_ADDR")
		RedisPassword = viper.GetString("REDIS_PASSWORD")
		JWTSecret = viper.GetString("JWT_SECRET")
		JWTExpiresHours = viper.GetInt("JWT_EXPIRES_HOURS")
		AdminPassword = viper.GetString("ADMIN_PASSWORD")
		AWSAccessKeyID = viper.GetString("AWS_ACCESS_KEY_ID")
		AWSSecretAccessKey = viper.GetString("AWS_SECRET_ACCESS_KEY")
		AWSRegion = viper.GetString("AWS_REGION")
		AWSBucketName = viper.GetString("AWS_BUCKET_NAME")
		CORSAllowOrigins = strings.Split(viper.GetString("CORS_ALLOW_ORIGINS"), ",")

		if JWTSecret == "" {
			log.Println("⚠️ JWT_SECRET belum diatur")
		}

		log.Println("✅ Konfigurasi berhasil dimuat!")
	})

	return loadError
}

func LoadAWSConfig() error {
	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(AWSRegion),
		config.WithCredentialsProvider(
			aws.NewCredentialsCache(
				credentials.NewStaticCredentialsProvider(AWSAccessKeyID, AWSSecretAccessKey, ""),
			),
		),
	)
	if err != nil {
		return err
	}
	AWSConfig = cfg
	log.Println("✅ Konfigurasi AWS SDK berhasil dimuat (manual credentials)")
	log.Printf("📦 Menggunakan wilayah AWS: %s", cfg.Region)
	return nil
}
