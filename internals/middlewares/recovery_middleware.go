package middlewares

import (
	"log"
	"runtime/debug"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// RecoveryMiddleware menangkap panic dan mengembalikan error 500.
// Stack trace di-log bersama request-id (local "reqid" dari middleware
// timing) supaya gampang dicocokkan dengan baris [REQ]-nya.
func RecoveryMiddleware() fiber.Handler {
	return recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c *fiber.Ctx, e interface{}) {
			reqID, _ := c.Locals("reqid").(string)
			log.Printf("💥 [PANIC] reqid=%s %s %s: %v\n%s",
				reqID, c.Method(), c.OriginalURL(), e, debug.Stack())
		},
	})
}
