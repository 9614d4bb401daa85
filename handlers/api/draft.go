package api

import (
	"errors"

	"draftmail/drafter"
	"draftmail/middleware"
	"draftmail/models"
	"draftmail/utils"

	"github.com/gofiber/fiber/v2"
)

// DraftHandler exposes the drafter as JSON
type DraftHandler struct {
	drafter *drafter.Orchestrator
}

// NewDraftHandler creates a new draft handler
func NewDraftHandler(d *drafter.Orchestrator) *DraftHandler {
	return &DraftHandler{drafter: d}
}

// ListTemplates returns every category with its pre-filled subject and context
func (h *DraftHandler) ListTemplates(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"templates": drafter.Templates(),
	})
}

// GetTemplate returns the template for one category, by name or slug.
// Unknown categories resolve to Custom and come back empty.
func (h *DraftHandler) GetTemplate(c *fiber.Ctx) error {
	category := models.ParseCategory(c.Params("category"))
	subject, context := drafter.SelectTemplate(category)

	return c.JSON(models.Template{
		Category: category,
		Subject:  subject,
		Context:  context,
	})
}

// CreateDraft runs the drafter for a JSON DraftRequest
func (h *DraftHandler) CreateDraft(c *fiber.Ctx) error {
	var req models.DraftRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestError("Invalid request", err)
	}

	localizer := middleware.LocalizerOf(c.Locals(middleware.LocalizerKey))

	draft, err := h.drafter.Draft(c.UserContext(), req, nil)
	if errors.Is(err, drafter.ErrMissingFields) {
		return utils.BadRequestError(utils.T(localizer, drafter.WarningMissingFields), err)
	}
	if err != nil {
		return utils.InternalServerError("Failed to draft email", err)
	}

	draft.Warnings = utils.TAll(localizer, draft.Warnings)

	return c.JSON(fiber.Map{
		"success": true,
		"draft":   draft,
	})
}
