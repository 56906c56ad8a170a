package constants

import "fmt"

const (
	RoleStudent = "student"
	RoleTutor   = "tutor"
	RoleAdmin   = "admin"
)

// Template pesan error role
const (
	ErrOnlyAdminsCanAccess = "❌ Hanya admin yang boleh mengakses fitur %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleStudent,
		RoleTutor,
		RoleAdmin,
	}

	// Role yang boleh dipilih saat register sendiri
	SelfRegisterRoles = []string{
		RoleStudent,
		RoleTutor,
	}

	AdminOnly = []string{
		RoleAdmin,
	}
)
