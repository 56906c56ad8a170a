package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authDTO "tutorku_backend/internals/features/users/auth/dto"
	userModel "tutorku_backend/internals/features/users/auth/model"
	"tutorku_backend/internals/features/users/auth/service"
	helper "tutorku_backend/internals/helpers"
)

type AuthController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db, Validate: validator.New()}
}

func (ac *AuthController) Register(c *fiber.Ctx) error {
	return service.Register(ac.DB, c)
}

func (ac *AuthController) Login(c *fiber.Ctx) error {
	return service.Login(ac.DB, c)
}

// Me: profil user yang sedang login
func (ac *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var user userModel.UserModel
	if err := ac.DB.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		return helper.JsonInternal(c, "auth: ambil profil", err)
	}

	return helper.JsonOK(c, "", fiber.Map{"user": authDTO.FromModel(&user)})
}

// UpdateProfile: hanya first/last name
func (ac *AuthController) UpdateProfile(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req authDTO.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := ac.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.FormatValidationErrors(err))
	}

	var user userModel.UserModel
	if err := ac.DB.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		return helper.JsonInternal(c, "auth: ambil profil", err)
	}

	req.ApplyToModel(&user)
	if err := ac.DB.Save(&user).Error; err != nil {
		return helper.JsonInternal(c, "auth: update profil", err)
	}

	return helper.JsonUpdated(c, "Profil berhasil diperbarui", fiber.Map{"user": authDTO.FromModel(&user)})
}

// Verify: untuk frontend cek token masih valid
func (ac *AuthController) Verify(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var user userModel.UserModel
	if err := ac.DB.First(&user, "id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User tidak ditemukan")
	}

	return helper.JsonOK(c, "", fiber.Map{
		"valid": true,
		"user":  authDTO.FromModel(&user),
	})
}

// Logout: token dibuang di sisi client
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	return helper.JsonOK(c, "Logout berhasil", nil)
}
