// file: internals/helpers/token.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Keys di c.Locals yang diisi oleh middleware auth.
const (
	LocUserID   = "user_id"
	LocRole     = "user_role"
	LocSchoolID = "school_id"
	LocBranchID = "branch_id"
	LocIsOwner  = "is_owner"
)

func uuidFromLocals(c *fiber.Ctx, key string) (uuid.UUID, error) {
	v := c.Locals(key)
	if v == nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, key+" tidak ditemukan di token")
	}
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, key+" kosong di token")
	}
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Format "+key+" tidak valid di token")
	}
	return id, nil
}

// GetUserIDFromToken mengambil user_id (UUID) hasil verifikasi middleware.
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	return uuidFromLocals(c, LocUserID)
}

// GetSchoolIDFromToken mengambil tenant (school_id) aktif dari token.
func GetSchoolIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	return uuidFromLocals(c, LocSchoolID)
}

// GetBranchIDFromToken mengambil branch user; nil = tanpa branch (admin global tenant).
func GetBranchIDFromToken(c *fiber.Ctx) *uuid.UUID {
	id, err := uuidFromLocals(c, LocBranchID)
	if err != nil {
		return nil
	}
	return &id
}

// GetRoleFromToken mengambil role string (owner/admin/staff/teacher/accountant).
func GetRoleFromToken(c *fiber.Ctx) string {
	if s, ok := c.Locals(LocRole).(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}

// IsOwnerFromToken: owner global (lintas tenant).
func IsOwnerFromToken(c *fiber.Ctx) bool {
	b, _ := c.Locals(LocIsOwner).(bool)
	return b
}
