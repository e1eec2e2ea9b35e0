package config

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

var Log = logrus.New()

// InitLogger menyiapkan logging dengan Logrus
func InitLogger() {
	// Buat direktori log bila belum ada
	if _, err := os.Stat("logs"); os.IsNotExist(err) {
		os.Mkdir("logs", 0755)
	}

	// Arahkan output ke file log dengan rotasi (lumberjack)
	Log.Out = &lumberjack.Logger{
		Filename:   "logs/app.log",
		MaxSize:    10,   // Megabyte sebelum log dirotasi
		MaxBackups: 3,    // Jumlah log lama yang disimpan
		MaxAge:     28,   // Jumlah hari maksimal log lama disimpan
		Compress:   true, // Kompres backup
	}

	// Ambil level log dari konfigurasi (.env atau config.yaml)
	logLevel := viper.GetString("LOG_LEVEL")
	switch logLevel {
	case "debug":
		Log.SetLevel(logrus.DebugLevel)
	case "warn":
		Log.SetLevel(logrus.WarnLevel)
	case "error":
		Log.SetLevel(logrus.ErrorLevel)
	default:
		Log.SetLevel(logrus.InfoLevel) // Level default adalah info
	}

	// Format log sebagai JSON
	Log.SetFormatter(&logrus.JSONFormatter{})

	Log.Info("Logger telah diinisialisasi dengan sukses!")
}
