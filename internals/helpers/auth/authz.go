// file: internals/helpers/auth/authz.go
//
// Capability check terpusat: ownership & role dicek sekali di awal operasi,
// bukan if-if tersebar di dalam controller.
package helper

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"tutorku_backend/internals/constants"
	helper "tutorku_backend/internals/helpers"
)

// IsAdmin true kalau role di token admin.
func IsAdmin(c *fiber.Ctx) bool {
	role, err := helper.GetRoleFromToken(c)
	return err == nil && role == constants.RoleAdmin
}

// EnsureOwner memastikan caller adalah pemilik entity.
// Return 403 kalau bukan pemilik (admin TIDAK dapat bypass di sini —
// admin hanya boleh lewat endpoint status, bukan konten milik user).
func EnsureOwner(c *fiber.Ctx, ownerID uuid.UUID) error {
	callerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	if callerID != ownerID {
		return fiber.NewError(fiber.StatusForbidden, "Bukan pemilik data ini")
	}
	return nil
}

// EnsureAdmin: 403 kalau bukan admin. Dipakai sebagai guard kedua di
// controller admin (lapisan pertama ada di middleware OnlyRoles).
func EnsureAdmin(c *fiber.Ctx) error {
	if !IsAdmin(c) {
		return fiber.NewError(fiber.StatusForbidden, "Fitur ini khusus admin")
	}
	return nil
}
