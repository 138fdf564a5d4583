package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	DBPath string
	Port   string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ Tidak menemukan .env file, menggunakan ENV dari sistem")
	} else {
		log.Println("✅ .env file berhasil dimuat!")
	}

	DBPath = GetEnv("DB_PATH", "tracker.db")
	Port = GetEnv("PORT", "3000")

	log.Println("✅ DB_PATH:", DBPath)
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}
