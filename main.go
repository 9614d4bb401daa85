package main

import (
	"errors"
	"strings"
	"time"

	"draftmail/backends"
	"draftmail/config"
	"draftmail/drafter"
	"draftmail/handlers/api"
	"draftmail/handlers/web"
	"draftmail/middleware"
	"draftmail/utils"
	"draftmail/views"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

// isAPIRequest reports whether the client expects JSON or a fragment
// rather than a full page.
func isAPIRequest(c *fiber.Ctx) bool {
	if c == nil {
		return false
	}

	if c.Get("HX-Request") != "" {
		return true
	}

	return strings.HasPrefix(c.Path(), "/api")
}

// errorHandler maps errors to a status and a safe message. Causes are logged,
// never shown.
func errorHandler(c *fiber.Ctx, err error) error {
	code, message := utils.PublicMessage(err)

	var appErr *utils.AppError
	if errors.As(err, &appErr) {
		utils.Log.WithField("request_id", c.Locals(requestid.ConfigDefault.ContextKey)).
			Error("Application error: %v", appErr)
	}

	if isAPIRequest(c) {
		return c.Status(code).JSON(fiber.Map{
			"error": message,
		})
	}

	return c.Status(code).Render("error", fiber.Map{
		"Error":     message,
		"Code":      code,
		"Localizer": middleware.LocalizerOf(c.Locals(middleware.LocalizerKey)),
		"Lang":      c.Locals(middleware.LangKey),
	})
}

// NewApp wires routes and middleware around an orchestrator
func NewApp(cfg *config.Config, orchestrator *drafter.Orchestrator) *fiber.App {
	app := fiber.New(fiber.Config{
		Views:        views.NewEngine(),
		ViewsLayout:  "layouts/main",
		ErrorHandler: errorHandler,
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(compress.New())
	app.Use(helmet.New(helmet.Config{
		XSSProtection:         "1; mode=block",
		ContentTypeNosniff:    "nosniff",
		XFrameOptions:         "SAMEORIGIN",
		ReferrerPolicy:        "no-referrer",
		ContentSecurityPolicy: "default-src 'self'; script-src 'self' 'unsafe-inline'; style-src 'self' 'unsafe-inline';",
	}))
	app.Use(middleware.SecurityHeaders(cfg.GetSecurityHeaders()))
	app.Use(middleware.LocaleMiddleware())
	app.Use(middleware.CSRFProtection(middleware.CSRFConfig{
		TokenLength:  32,
		CookieName:   "csrf_token",
		HeaderName:   "X-CSRF-Token",
		FormField:    "csrf_token",
		ContextKey:   "csrf",
		CookieMaxAge: 3600,
		Skipper: func(c *fiber.Ctx) bool {
			return strings.HasPrefix(c.Path(), "/api")
		},
	}))

	webDraftHandler := web.NewDraftHandler(orchestrator)
	apiDraftHandler := api.NewDraftHandler(orchestrator)
	i18nHandler := &api.I18nHandler{}

	// Page routes
	app.Get("/", webDraftHandler.ShowForm)
	app.Post("/draft", webDraftHandler.HandleGenerate)
	app.Post("/download", webDraftHandler.HandleDownload)

	// API routes
	apiRoutes := app.Group("/api")
	{
		apiRoutes.Get("/categories", apiDraftHandler.ListTemplates)
		apiRoutes.Get("/templates/:category", apiDraftHandler.GetTemplate)
		apiRoutes.Post("/draft", apiDraftHandler.CreateDraft)
		apiRoutes.Get("/i18n/:lang", i18nHandler.GetTranslations)
	}

	// Progress stream
	app.Use("/ws", api.RequireUpgrade)
	app.Get("/ws/draft", websocket.New(apiDraftHandler.HandleProgress))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	app.Use(func(c *fiber.Ctx) error {
		localizer := middleware.LocalizerOf(c.Locals(middleware.LocalizerKey))
		return fiber.NewError(fiber.StatusNotFound, utils.T(localizer, "error_404"))
	})

	return app
}

func main() {
	cfg, err := config.LoadConfig("config.toml")
	if err != nil {
		utils.Log.Error("Failed to load config: %v", err)
		return
	}
	utils.Log.SetLevel(utils.ParseLogLevel(cfg.Server.LogLevel))

	if err := utils.InitI18n(); err != nil {
		utils.Log.Error("Failed to initialize i18n: %v", err)
	}

	generator, err := backends.NewGenerator(cfg)
	if err != nil {
		utils.Log.Error("Failed to create generator: %v", err)
		return
	}
	orchestrator := drafter.New(generator, backends.NewTranslator(cfg))

	app := NewApp(cfg, orchestrator)

	utils.Log.Info("Starting server on %s (backend=%s)...", cfg.ListenAddr(), cfg.Generator.Backend)
	if cfg.SSL.Enabled {
		err = app.ListenTLS(cfg.ListenAddr(), cfg.SSL.CertFile, cfg.SSL.KeyFile)
	} else {
		err = app.Listen(cfg.ListenAddr())
	}
	if err != nil {
		utils.Log.Error("Error starting server: %v", err)
	}
}
