package rayid

import (
	"msforge/core/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Header is the response header carrying the ray id.
const Header = "X-Ray-ID"

// LocalsKey is the fiber locals key holding the ray id, shared with
// logger.WithRayID.
const LocalsKey = logger.RayIDKey

// New returns a middleware that tags each request with a ray id. An id sent by
// the client in Header is kept.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(Header)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Locals(LocalsKey, rid)
		c.Set(Header, rid)
		return c.Next()
	}
}
