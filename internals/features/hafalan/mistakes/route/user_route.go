package routes

import (
	mistakeController "hafalanku_backend/internals/features/hafalan/mistakes/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func MistakeRoutes(router fiber.Router, db *gorm.DB) {
	controller := mistakeController.NewMistakeController(db)
	mistakeRoutes := router.Group("/mistakes")

	mistakeRoutes.Post("/", controller.Create)
	mistakeRoutes.Get("/", controller.GetAll)
}
