// file: internals/features/tutors/applications/controller/tutor_application_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	tutorDTO "tutorku_backend/internals/features/tutors/applications/dto"
	tutorModel "tutorku_backend/internals/features/tutors/applications/model"
	helper "tutorku_backend/internals/helpers"
)

type TutorApplicationController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewTutorApplicationController(db *gorm.DB) *TutorApplicationController {
	return &TutorApplicationController{DB: db, Validate: validator.New()}
}

// Apply: submit aplikasi tutor baru (status pending).
// Duplikat → 409. Pre-check cuma fast path; unique index yang menjamin.
func (tc *TutorApplicationController) Apply(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req tutorDTO.CreateTutorApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := tc.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.FormatValidationErrors(err))
	}

	// Fast path: kalau sudah ada, kasih tahu id & statusnya
	var existing tutorModel.TutorApplicationModel
	err = tc.DB.Where("tutor_application_user_id = ?", userID).First(&existing).Error
	if err == nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"success":        false,
			"message":        "Anda sudah pernah mengirim aplikasi tutor",
			"error_code":     "CONFLICT",
			"application_id": existing.TutorApplicationID,
			"status":         existing.TutorApplicationStatus,
		})
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonInternal(c, "tutor apply: cek duplikat", err)
	}

	app := req.ToModel(userID)
	if err := tc.DB.Create(app).Error; err != nil {
		// Dua submit bersamaan: yang kalah race tetap dapat 409 dari index
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.JsonError(c, fiber.StatusConflict, "Anda sudah pernah mengirim aplikasi tutor")
		}
		return helper.JsonInternal(c, "tutor apply: create", err)
	}

	return helper.JsonCreated(c, "Aplikasi tutor berhasil dikirim", tutorDTO.FromModel(app))
}

// GetMine: aplikasi milik user yang login
func (tc *TutorApplicationController) GetMine(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var app tutorModel.TutorApplicationModel
	if err := tc.DB.Where("tutor_application_user_id = ?", userID).First(&app).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Belum ada aplikasi tutor")
		}
		return helper.JsonInternal(c, "tutor mine: ambil aplikasi", err)
	}

	return helper.JsonOK(c, "", tutorDTO.FromModel(&app))
}

// UpdateMine: patch allow-list, hanya saat status masih pending
func (tc *TutorApplicationController) UpdateMine(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var app tutorModel.TutorApplicationModel
	if err := tc.DB.Where("tutor_application_user_id = ?", userID).First(&app).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Belum ada aplikasi tutor")
		}
		return helper.JsonInternal(c, "tutor update: ambil aplikasi", err)
	}

	if !app.IsPending() {
		return helper.JsonError(c, fiber.StatusBadRequest, "Hanya aplikasi berstatus pending yang bisa diubah")
	}

	var req tutorDTO.UpdateTutorApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := tc.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.FormatValidationErrors(err))
	}

	req.ApplyToModel(&app)
	if err := tc.DB.Save(&app).Error; err != nil {
		return helper.JsonInternal(c, "tutor update: simpan", err)
	}

	return helper.JsonUpdated(c, "Aplikasi berhasil diperbarui", tutorDTO.FromModel(&app))
}
