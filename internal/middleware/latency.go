package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// SimulatedLatency delays every request by the configured duration so the
// mobile UI can be exercised against realistic network timing. A zero delay
// returns a pass-through handler.
func SimulatedLatency(delay time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if delay > 0 {
			time.Sleep(delay)
		}
		return c.Next()
	}
}
