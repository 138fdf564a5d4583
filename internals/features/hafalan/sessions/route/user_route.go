package routes

import (
	sessionController "hafalanku_backend/internals/features/hafalan/sessions/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SessionRoutes(router fiber.Router, db *gorm.DB) {
	controller := sessionController.NewSessionController(db)
	sessionRoutes := router.Group("/sessions")

	sessionRoutes.Post("/", controller.Create)
	sessionRoutes.Get("/", controller.GetAll)
	sessionRoutes.Get("/options", controller.GetOptions)
	sessionRoutes.Get("/:id", controller.GetByID)
	sessionRoutes.Get("/:id/progress", controller.GetProgress)
	sessionRoutes.Get("/:id/mistakes", controller.GetMistakes)
}
