// file: internals/features/identity/uniqueness/controller/check_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	checkDto "sekolahku_backend/internals/features/identity/uniqueness/dto"
	service "sekolahku_backend/internals/features/identity/uniqueness/service"
	helper "sekolahku_backend/internals/helpers"
)

type IdentityCheckController struct {
	Resolver *service.Resolver
	Validate *validator.Validate
}

func NewIdentityCheckController(db *gorm.DB, v *validator.Validate) *IdentityCheckController {
	return &IdentityCheckController{Resolver: service.NewResolver(db), Validate: v}
}

// POST /api/a/identity/check
// Pre-flight untuk form admin: "nomor/email ini sudah dipakai siapa?"
// Hasil exists:false BUKAN jaminan bebas race, constraint unik di DB
// tetap otoritatif saat write.
func (ctl *IdentityCheckController) Check(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req checkDto.IdentityCheckReq
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	if err := req.Validate(); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	res, err := ctl.Resolver.Resolve(c.UserContext(), req.ToQuery(schoolID))
	if err != nil {
		// error storage = fatal; write yang dijaga pengecekan ini harus batal
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengecek identitas")
	}

	return helper.JsonOK(c, "ok", checkDto.FromResult(res))
}
