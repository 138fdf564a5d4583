package controller

import (
	"errors"
	"fmt"
	"log"

	mistakeDto "hafalanku_backend/internals/features/hafalan/mistakes/dto"
	mistakeModel "hafalanku_backend/internals/features/hafalan/mistakes/model"
	mistakeService "hafalanku_backend/internals/features/hafalan/mistakes/service"
	"hafalanku_backend/internals/features/hafalan/sessions/dto"
	"hafalanku_backend/internals/features/hafalan/sessions/model"
	helper "hafalanku_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var validate = validator.New()

type SessionController struct {
	DB *gorm.DB
}

func NewSessionController(db *gorm.DB) *SessionController {
	return &SessionController{DB: db}
}

// ✅ POST create new session
func (ctrl *SessionController) Create(c *fiber.Ctx) error {
	var input dto.SessionCreateRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}

	input.Normalize()
	if err := validate.Struct(&input); err != nil {
		return helper.ValidationError(c, err)
	}

	// Range/enum sudah dijaga tag validate; tidak ada validasi ulang di sini
	item := input.ToModel()
	if err := ctrl.DB.WithContext(c.Context()).Create(&item).Error; err != nil {
		log.Println("[ERROR] Failed to create session:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create session")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated,
		fmt.Sprintf("Session #%d saved successfully! You recorded %d mistakes.", item.SessionID, item.MistakeCount),
		dto.NewSessionResponse(item))
}

// ✅ GET all sessions (tabel "Show All Sessions", notes dipotong utk tampilan)
func (ctrl *SessionController) GetAll(c *fiber.Ctx) error {
	var items []model.SessionModel
	if err := ctrl.DB.WithContext(c.Context()).Find(&items).Error; err != nil {
		log.Println("[ERROR] Failed to fetch sessions:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch sessions")
	}

	rows := make([]dto.SessionListItem, 0, len(items))
	for _, s := range items {
		rows = append(rows, dto.NewSessionListItem(s))
	}

	return helper.Success(c, "OK", rows)
}

// ✅ GET session options utk picker "Link Mistakes to Session"
func (ctrl *SessionController) GetOptions(c *fiber.Ctx) error {
	var items []model.SessionModel
	if err := ctrl.DB.WithContext(c.Context()).Find(&items).Error; err != nil {
		log.Println("[ERROR] Failed to fetch session options:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch session options")
	}

	options := make([]dto.SessionOption, 0, len(items))
	for _, s := range items {
		options = append(options, dto.NewSessionOption(s))
	}

	return helper.Success(c, "OK", options)
}

// ✅ GET session by ID
func (ctrl *SessionController) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")

	var item model.SessionModel
	if err := ctrl.DB.WithContext(c.Context()).First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Session not found")
		}
		log.Println("[ERROR] Failed to fetch session:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch session")
	}

	return helper.Success(c, "OK", dto.NewSessionResponse(item))
}

// ✅ GET progress: target deklarasi vs mistake yg sudah dicatat
func (ctrl *SessionController) GetProgress(c *fiber.Ctx) error {
	id := c.Params("id")

	var item model.SessionModel
	if err := ctrl.DB.WithContext(c.Context()).First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Session not found")
		}
		log.Println("[ERROR] Failed to fetch session:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch session")
	}

	logged, err := mistakeService.CountMistakesForSession(ctrl.DB.WithContext(c.Context()), item.SessionID)
	if err != nil {
		log.Println("[ERROR] Failed to count mistakes:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count mistakes")
	}

	return helper.Success(c, "OK", dto.SessionProgressResponse{
		SessionID:    item.SessionID,
		MistakeCount: item.MistakeCount,
		Logged:       logged,
		Remaining:    mistakeService.RemainingForSession(item.MistakeCount, logged),
	})
}

// ✅ GET mistakes yang tercatat pada satu sesi
func (ctrl *SessionController) GetMistakes(c *fiber.Ctx) error {
	id := c.Params("id")

	var item model.SessionModel
	if err := ctrl.DB.WithContext(c.Context()).First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Session not found")
		}
		log.Println("[ERROR] Failed to fetch session:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch session")
	}

	var mistakes []mistakeModel.MistakeModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("session_id = ?", item.SessionID).
		Find(&mistakes).Error; err != nil {
		log.Println("[ERROR] Failed to fetch mistakes by session:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch mistakes")
	}

	rows := make([]mistakeDto.MistakeResponse, 0, len(mistakes))
	for _, m := range mistakes {
		rows = append(rows, mistakeDto.NewMistakeResponse(m))
	}

	return helper.Success(c, "OK", rows)
}
