package service

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"tutorku_backend/internals/configs"
	"tutorku_backend/internals/constants"
	authDTO "tutorku_backend/internals/features/users/auth/dto"
	userModel "tutorku_backend/internals/features/users/auth/model"
	helper "tutorku_backend/internals/helpers"
)

const accessTTLDefault = 24 * time.Hour

func nowUTC() time.Time { return time.Now().UTC() }

func getJWTSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTSecret)
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_SECRET belum diset")
	}
	return secret, nil
}

// ========================== REGISTER ==========================
func Register(db *gorm.DB, c *fiber.Ctx) error {
	var req authDTO.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.FormatValidationErrors(err))
	}
	if req.Role != "" && !constants.InList(constants.SelfRegisterRoles, req.Role) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Role tidak diizinkan")
	}

	// Fast-path check; unique index email tetap jadi penjaga sebenarnya
	var existing userModel.UserModel
	err := db.Where("email = ?", req.Email).First(&existing).Error
	if err == nil {
		return helper.JsonError(c, fiber.StatusConflict, "Email sudah terdaftar")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonInternal(c, "register: cek email", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonInternal(c, "register: hash password", err)
	}

	user := req.ToModel()
	user.Password = string(hashed)
	user.SetDefaultValues()

	if err := db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.JsonError(c, fiber.StatusConflict, "Email sudah terdaftar")
		}
		return helper.JsonInternal(c, "register: create user", err)
	}

	token, err := GenerateAccessToken(user)
	if err != nil {
		return helper.JsonInternal(c, "register: generate token", err)
	}

	return helper.JsonCreated(c, "Registrasi berhasil", fiber.Map{
		"user":  authDTO.FromModel(user),
		"token": token,
	})
}

// ========================== LOGIN ==========================
func Login(db *gorm.DB, c *fiber.Ctx) error {
	var req authDTO.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.FormatValidationErrors(err))
	}

	var user userModel.UserModel
	if err := db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
		}
		return helper.JsonInternal(c, "login: cari user", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
	}
	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan")
	}

	now := nowUTC()
	if err := db.Model(&user).Update("last_login_at", now).Error; err == nil {
		user.LastLoginAt = &now
	}

	token, err := GenerateAccessToken(&user)
	if err != nil {
		return helper.JsonInternal(c, "login: generate token", err)
	}

	return helper.JsonOK(c, "Login berhasil", fiber.Map{
		"user":  authDTO.FromModel(&user),
		"token": token,
	})
}

// ========================== TOKEN ==========================

// GenerateAccessToken bikin access token HS256 dengan klaim id/user_name/role
func GenerateAccessToken(user *userModel.UserModel) (string, error) {
	secret, err := getJWTSecret()
	if err != nil {
		return "", err
	}
	claims := jwt.MapClaims{
		"id":        user.ID.String(),
		"user_name": user.FullName(),
		"role":      user.Role,
		"exp":       nowUTC().Add(accessTTLDefault).Unix(),
		"iat":       nowUTC().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
