// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	helper "sekolahku_backend/internals/helpers"
)

type AuthJWTOpts struct {
	Secret              string
	AllowCookieFallback bool // pakai cookie access_token jika tidak ada Bearer
}

// AuthJWT memverifikasi bearer token dan mengisi Locals yang dipercaya
// oleh seluruh controller: user_id, user_role, school_id, branch_id, is_owner.
// Resolver di feature TIDAK melakukan autentikasi sendiri, mereka percaya
// context hasil middleware ini.
func AuthJWT(o AuthJWTOpts) fiber.Handler {
	secret := strings.TrimSpace(o.Secret)
	if secret == "" {
		panic("AuthJWT: Secret wajib diisi")
	}

	return func(c *fiber.Ctx) error {
		// 1) Ambil token: Authorization: Bearer xxx (atau cookie jika diizinkan)
		raw := ""
		if authz := strings.TrimSpace(c.Get(fiber.HeaderAuthorization)); strings.HasPrefix(strings.ToLower(authz), "bearer ") {
			raw = strings.TrimSpace(authz[7:])
		} else if o.AllowCookieFallback {
			raw = strings.TrimSpace(c.Cookies("access_token"))
		}
		if raw == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
		}

		// 2) Parse + verifikasi algoritma
		tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
			}
			return []byte(secret), nil
		})
		if err != nil || !tok.Valid {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token")
		}

		claims, ok := tok.Claims.(jwt.MapClaims)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token claims")
		}
		c.Locals("jwt_claims", claims)

		// === HYDRATE LOCALS ===

		// user_id: ambil id/sub/user_id dalam urutan preferensi
		switch {
		case strClaim(claims, "id") != "":
			c.Locals(helper.LocUserID, strClaim(claims, "id"))
		case strClaim(claims, "sub") != "":
			c.Locals(helper.LocUserID, strClaim(claims, "sub"))
		case strClaim(claims, "user_id") != "":
			c.Locals(helper.LocUserID, strClaim(claims, "user_id"))
		}

		// user_id wajib UUID, fail-fast di sini
		if s, ok := c.Locals(helper.LocUserID).(string); !ok || s == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - user_id tidak ada di token")
		} else if _, err := uuid.Parse(strings.TrimSpace(s)); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - user_id tidak valid")
		}

		if r := strClaim(claims, "role"); r != "" {
			c.Locals(helper.LocRole, strings.ToLower(r))
		}
		if sid := strClaim(claims, "school_id"); sid != "" {
			c.Locals(helper.LocSchoolID, sid)
		}
		if bid := strClaim(claims, "branch_id"); bid != "" {
			c.Locals(helper.LocBranchID, bid)
		}

		// is_owner → bool
		if v, ok := claims["is_owner"]; ok {
			switch t := v.(type) {
			case bool:
				c.Locals(helper.LocIsOwner, t)
			case string:
				s := strings.ToLower(strings.TrimSpace(t))
				c.Locals(helper.LocIsOwner, s == "true" || s == "1" || s == "yes")
			}
		}

		return c.Next()
	}
}

func strClaim(claims jwt.MapClaims, key string) string {
	if v, ok := claims[key]; ok {
		if s, ok := v.(string); ok {
			return strings.TrimSpace(s)
		}
	}
	return ""
}
