package routes

import (
	"log"
	"time"

	mistakeRoutes "hafalanku_backend/internals/features/hafalan/mistakes/route"
	sessionRoutes "hafalanku_backend/internals/features/hafalan/sessions/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	// Semua aksi user = satu request/response; tidak ada state antar render
	api := app.Group("/api")

	log.Println("[INFO] Setting up SessionRoutes...")
	sessionRoutes.SessionRoutes(api, db)

	log.Println("[INFO] Setting up MistakeRoutes...")
	mistakeRoutes.MistakeRoutes(api, db)
}
