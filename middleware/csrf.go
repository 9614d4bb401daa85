package middleware

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"

	"github.com/gofiber/fiber/v2"
)

// CSRFConfig holds CSRF protection configuration
type CSRFConfig struct {
	TokenLength  int
	CookieName   string
	HeaderName   string
	FormField    string
	ContextKey   string
	CookieMaxAge int
	Skipper      func(*fiber.Ctx) bool
}

// DefaultCSRFConfig returns default CSRF configuration
func DefaultCSRFConfig() CSRFConfig {
	return CSRFConfig{
		TokenLength:  32,
		CookieName:   "csrf_token",
		HeaderName:   "X-CSRF-Token",
		FormField:    "csrf_token",
		ContextKey:   "csrf",
		CookieMaxAge: 3600, // 1 hour
	}
}

// CSRFProtection checks the double-submit token on unsafe methods. The token
// may arrive in the header (script clients) or a form field (plain forms).
func CSRFProtection(config ...CSRFConfig) fiber.Handler {
	cfg := DefaultCSRFConfig()
	if len(config) > 0 {
		cfg = config[0]
	}

	return func(c *fiber.Ctx) error {
		if cfg.Skipper != nil && cfg.Skipper(c) {
			return c.Next()
		}

		if c.Method() == fiber.MethodGet ||
			c.Method() == fiber.MethodHead ||
			c.Method() == fiber.MethodOptions {
			return c.Next()
		}

		cookieToken := c.Cookies(cfg.CookieName)
		submitted := c.Get(cfg.HeaderName)
		if submitted == "" {
			submitted = c.FormValue(cfg.FormField)
		}

		if cookieToken == "" || submitted == "" {
			return fiber.NewError(fiber.StatusForbidden, "CSRF token missing")
		}

		if !tokensEqual(cookieToken, submitted) {
			return fiber.NewError(fiber.StatusForbidden, "CSRF token mismatch")
		}

		return c.Next()
	}
}

// GenerateCSRFToken returns the token already in the cookie, or issues a
// new one, and stores it in the context for the view.
func GenerateCSRFToken(c *fiber.Ctx, config ...CSRFConfig) string {
	cfg := DefaultCSRFConfig()
	if len(config) > 0 {
		cfg = config[0]
	}

	token := c.Cookies(cfg.CookieName)
	if token == "" {
		token = generateToken(cfg.TokenLength)
		c.Cookie(&fiber.Cookie{
			Name:     cfg.CookieName,
			Value:    token,
			MaxAge:   cfg.CookieMaxAge,
			HTTPOnly: true,
			SameSite: "Strict",
			Secure:   c.Protocol() == "https",
		})
	}

	c.Locals(cfg.ContextKey, token)
	return token
}

func generateToken(length int) string {
	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		return ""
	}
	return base64.URLEncoding.EncodeToString(b)
}

func tokensEqual(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
