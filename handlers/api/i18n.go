package api

import (
	"draftmail/utils"

	"github.com/gofiber/fiber/v2"
)

// clientMessages are the catalog entries the page script may need
var clientMessages = []string{
	"status_generating",
	"heading_preview",
	"heading_fallback",
	"warning_missing_fields",
	"warning_translation_failed",
	"error_network",
	"error_404",
	"error_500",
}

// I18nHandler handles i18n-related requests
type I18nHandler struct{}

// GetTranslations returns the client-side strings for :lang
func (h *I18nHandler) GetTranslations(c *fiber.Ctx) error {
	lang := c.Params("lang")
	if !utils.IsSupportedUILanguage(lang) {
		lang = "en"
	}

	localizer := utils.GetLocalizer(lang)

	translations := make(map[string]string, len(clientMessages))
	for _, id := range clientMessages {
		translations[id] = utils.T(localizer, id)
	}

	return c.JSON(translations)
}
