// internals/middlewares/auth/role_middleware.go
package auth

import (
	"github.com/gofiber/fiber/v2"

	"sekolahku_backend/internals/constants"
	helper "sekolahku_backend/internals/helpers"
)

// RequireRoles menolak request bila role di token tidak termasuk allowed.
// Owner global selalu lolos.
func RequireRoles(feature string, allowed ...string) fiber.Handler {
	allowSet := make(map[string]struct{}, len(allowed))
	for _, r := range allowed {
		allowSet[r] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		if helper.IsOwnerFromToken(c) {
			return c.Next()
		}
		role := helper.GetRoleFromToken(c)
		if role == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Role tidak ditemukan di token")
		}
		if _, ok := allowSet[role]; !ok {
			return fiber.NewError(fiber.StatusForbidden, constants.RoleErrorStaff(feature))
		}
		return c.Next()
	}
}

// IsSchoolAdmin: hanya admin tenant (atau owner global).
func IsSchoolAdmin(feature string) fiber.Handler {
	return RequireRoles(feature, constants.RoleAdmin)
}

// IsOwnerGlobal: hanya owner lintas tenant.
func IsOwnerGlobal() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !helper.IsOwnerFromToken(c) {
			return fiber.NewError(fiber.StatusForbidden, "Hanya owner global yang boleh mengakses")
		}
		return c.Next()
	}
}
