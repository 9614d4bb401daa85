package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"

	"draftmail/utils"

	"github.com/gofiber/fiber/v2"
)

func TestMain(m *testing.M) {
	utils.Log.SetLevel(utils.ERROR)
	if err := utils.InitI18n(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func localeApp() *fiber.App {
	app := fiber.New()
	app.Use(LocaleMiddleware())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(c.Locals(LangKey).(string))
	})
	return app
}

func TestLocaleMiddleware(t *testing.T) {
	tests := []struct {
		name   string
		target string
		cookie string
		accept string
		want   string
	}{
		{"default", "/", "", "", "en"},
		{"query", "/?lang=hi", "", "", "hi"},
		{"unsupported query falls through", "/?lang=ja", "", "hi-IN,hi;q=0.9", "hi"},
		{"cookie", "/", "hi", "en-US", "hi"},
		{"accept language", "/", "", "fr-FR, hi;q=0.8", "hi"},
		{"unsupported accept language", "/", "", "de-DE", "en"},
	}

	app := localeApp()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: "lang", Value: tt.cookie})
			}
			if tt.accept != "" {
				req.Header.Set("Accept-Language", tt.accept)
			}

			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("app.Test: %v", err)
			}
			body, _ := io.ReadAll(resp.Body)
			if string(body) != tt.want {
				t.Errorf("lang = %q, want %q", body, tt.want)
			}
		})
	}
}

func csrfApp() *fiber.App {
	app := fiber.New()
	app.Use(CSRFProtection(CSRFConfig{
		TokenLength: 16,
		CookieName:  "csrf_token",
		HeaderName:  "X-CSRF-Token",
		FormField:   "csrf_token",
		ContextKey:  "csrf",
		Skipper: func(c *fiber.Ctx) bool {
			return strings.HasPrefix(c.Path(), "/api")
		},
	}))
	app.Get("/token", func(c *fiber.Ctx) error {
		return c.SendString(GenerateCSRFToken(c))
	})
	app.Post("/submit", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	app.Post("/api/submit", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func TestCSRFProtection(t *testing.T) {
	app := csrfApp()

	form := func(token string) io.Reader {
		return strings.NewReader(url.Values{"csrf_token": {token}}.Encode())
	}

	tests := []struct {
		name   string
		path   string
		cookie string
		header string
		body   io.Reader
		want   int
	}{
		{"missing token", "/submit", "", "", nil, fiber.StatusForbidden},
		{"header token", "/submit", "abc", "abc", nil, fiber.StatusOK},
		{"form token", "/submit", "abc", "", form("abc"), fiber.StatusOK},
		{"mismatch", "/submit", "abc", "xyz", nil, fiber.StatusForbidden},
		{"cookie only", "/submit", "abc", "", nil, fiber.StatusForbidden},
		{"skipped path", "/api/submit", "", "", nil, fiber.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, tt.path, tt.body)
			if tt.body != nil {
				req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			}
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: "csrf_token", Value: tt.cookie})
			}
			if tt.header != "" {
				req.Header.Set("X-CSRF-Token", tt.header)
			}

			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("app.Test: %v", err)
			}
			if resp.StatusCode != tt.want {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.want)
			}
		})
	}
}

func TestGenerateCSRFTokenReusesCookie(t *testing.T) {
	app := csrfApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/token", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	issued, _ := io.ReadAll(resp.Body)
	if len(issued) == 0 {
		t.Fatal("no token issued")
	}
	if len(resp.Cookies()) == 0 || resp.Cookies()[0].Value != string(issued) {
		t.Errorf("cookie does not carry the issued token: %v", resp.Cookies())
	}

	req := httptest.NewRequest(http.MethodGet, "/token", nil)
	req.AddCookie(&http.Cookie{Name: "csrf_token", Value: "existing"})
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	again, _ := io.ReadAll(resp.Body)
	if string(again) != "existing" {
		t.Errorf("token = %q, want existing cookie value", again)
	}
}

func TestSecurityHeaders(t *testing.T) {
	app := fiber.New()
	app.Use(SecurityHeaders(map[string]string{"Strict-Transport-Security": "max-age=60"}))
	app.Get("/", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNoContent) })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if got := resp.Header.Get("Strict-Transport-Security"); got != "max-age=60" {
		t.Errorf("HSTS = %q", got)
	}
}
