package constants

import "fmt"

// Role dasar user
const (
	RoleOwner      = "owner" // admin global lintas sekolah
	RoleAdmin      = "admin"
	RoleStaff      = "staff"
	RoleTeacher    = "teacher"
	RoleAccountant = "accountant"
)

// Template pesan error role
const (
	ErrOnlyAdminsCanAccess  = "❌ Hanya admin yang boleh mengakses fitur %s."
	ErrOnlyOwnersCanAccess  = "❌ Hanya owner yang boleh mengakses fitur %s."
	ErrOnlyNonUserCanAccess = "❌ Hanya staf sekolah yang boleh mengakses fitur %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorOwner(feature string) string {
	return fmt.Sprintf(ErrOnlyOwnersCanAccess, feature)
}

func RoleErrorStaff(feature string) string {
	return fmt.Sprintf(ErrOnlyNonUserCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleOwner,
		RoleAdmin,
		RoleStaff,
		RoleTeacher,
		RoleAccountant,
	}

	StaffRoles = []string{
		RoleAdmin,
		RoleStaff,
		RoleTeacher,
		RoleAccountant,
	}

	AdminAndAbove = []string{
		RoleAdmin,
		RoleOwner,
	}

	OwnerOnly = []string{
		RoleOwner,
	}
)
