package controller

import (
	"errors"
	"fmt"
	"log"

	"hafalanku_backend/internals/features/hafalan/mistakes/dto"
	"hafalanku_backend/internals/features/hafalan/mistakes/model"
	sessionModel "hafalanku_backend/internals/features/hafalan/sessions/model"
	helper "hafalanku_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var validate = validator.New()

type MistakeController struct {
	DB *gorm.DB
}

func NewMistakeController(db *gorm.DB) *MistakeController {
	return &MistakeController{DB: db}
}

// ✅ POST create new mistake
func (ctrl *MistakeController) Create(c *fiber.Ctx) error {
	var input dto.MistakeCreateRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}

	// sura_ayah & description wajib terisi; kalau kosong tidak ada insert
	input.Normalize()
	if err := validate.Struct(&input); err != nil {
		return helper.ValidationError(c, err)
	}

	// Mistake hanya boleh menunjuk sesi yang sudah ada (padanan picker di UI lama)
	var session sessionModel.SessionModel
	if err := ctrl.DB.WithContext(c.Context()).First(&session, "id = ?", input.SessionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Session not found")
		}
		log.Println("[ERROR] Failed to fetch session:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch session")
	}

	item := input.ToModel()
	if err := ctrl.DB.WithContext(c.Context()).Create(&item).Error; err != nil {
		log.Println("[ERROR] Failed to create mistake:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create mistake")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated,
		fmt.Sprintf("Mistake logged for %s in Session #%d", item.SuraAyah, item.SessionID),
		dto.NewMistakeResponse(item))
}

// ✅ GET all mistakes (tabel "Show All Mistakes", teks panjang dipotong utk tampilan)
func (ctrl *MistakeController) GetAll(c *fiber.Ctx) error {
	var items []model.MistakeModel
	if err := ctrl.DB.WithContext(c.Context()).Find(&items).Error; err != nil {
		log.Println("[ERROR] Failed to fetch mistakes:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch mistakes")
	}

	rows := make([]dto.MistakeListItem, 0, len(items))
	for _, m := range items {
		rows = append(rows, dto.NewMistakeListItem(m))
	}

	return helper.Success(c, "OK", rows)
}
