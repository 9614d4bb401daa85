package middleware

import "github.com/gofiber/fiber/v2"

// SecurityHeaders adds fixed response headers, such as HSTS, to every response
func SecurityHeaders(headers map[string]string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		for k, v := range headers {
			c.Set(k, v)
		}
		return c.Next()
	}
}
