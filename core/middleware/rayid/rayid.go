package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

// Header is the response header carrying the request id.
const Header = "X-Ray-ID"

// LocalsKey is the fiber.Ctx local holding the request id.
const LocalsKey = "ray_id"

// New returns requestid middleware that stores a request id in the ray_id local and
// echoes it in the response header. An incoming X-Ray-ID is kept.
func New() fiber.Handler {
	return requestid.New(requestid.Config{
		Header:     Header,
		Generator:  uuid.NewString,
		ContextKey: LocalsKey,
	})
}
