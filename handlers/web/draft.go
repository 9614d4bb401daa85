package web

import (
	"errors"
	"strings"

	"draftmail/drafter"
	"draftmail/middleware"
	"draftmail/models"
	"draftmail/utils"

	"github.com/gofiber/fiber/v2"
)

// DraftHandler serves the draft form page and its submissions
type DraftHandler struct {
	drafter *drafter.Orchestrator
}

// NewDraftHandler creates a new draft handler
func NewDraftHandler(d *drafter.Orchestrator) *DraftHandler {
	return &DraftHandler{drafter: d}
}

func (h *DraftHandler) viewData(c *fiber.Ctx, form models.DraftRequest) fiber.Map {
	return fiber.Map{
		"Localizer":  middleware.LocalizerOf(c.Locals(middleware.LocalizerKey)),
		"Lang":       c.Locals(middleware.LangKey),
		"CSRF":       middleware.GenerateCSRFToken(c),
		"Categories": models.Categories,
		"Tones":      models.Tones,
		"Languages":  models.Languages,
		"Form":       form,
	}
}

// ShowForm renders the form, pre-filled from ?category= when given
func (h *DraftHandler) ShowForm(c *fiber.Ctx) error {
	category := models.ParseCategory(c.Query("category"))
	subject, context := drafter.SelectTemplate(category)

	form := models.DraftRequest{
		Category: category,
		Subject:  subject,
		Context:  context,
		Tone:     models.ToneFormal,
		Language: models.English,
	}
	return c.Render("index", h.viewData(c, form))
}

// HandleGenerate runs the drafter for a submitted form. HTMX requests get
// only the result fragment back.
func (h *DraftHandler) HandleGenerate(c *fiber.Ctx) error {
	var form models.DraftRequest
	if err := c.BodyParser(&form); err != nil {
		return utils.BadRequestError("Invalid form submission", err)
	}
	form.Normalize()

	data := h.viewData(c, form)
	localizer := middleware.LocalizerOf(c.Locals(middleware.LocalizerKey))

	draft, err := h.drafter.Draft(c.UserContext(), form, nil)
	switch {
	case errors.Is(err, drafter.ErrMissingFields):
		data["Warnings"] = []string{utils.T(localizer, drafter.WarningMissingFields)}
	case err != nil:
		return utils.InternalServerError("Failed to draft email", err)
	default:
		data["Draft"] = draft
		data["Warnings"] = utils.TAll(localizer, draft.Warnings)
	}

	if c.Get("HX-Request") != "" {
		return c.Render("partials/result", data, "")
	}
	return c.Render("index", data)
}

// HandleDownload sends the posted draft back as a text file
func (h *DraftHandler) HandleDownload(c *fiber.Ctx) error {
	// browsers submit form text with CRLF line breaks
	text := strings.ReplaceAll(c.FormValue("draft"), "\r\n", "\n")
	if strings.TrimSpace(text) == "" {
		return utils.BadRequestError("Nothing to download", nil)
	}

	c.Attachment(models.DownloadFilename)
	c.Set(fiber.HeaderContentType, "text/plain; charset=utf-8")
	return c.SendString(text)
}
