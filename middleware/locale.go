package middleware

import (
	"strings"

	"draftmail/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/nicksnyder/go-i18n/v2/i18n"
)

// Locals keys set by LocaleMiddleware
const (
	LocalizerKey = "localizer"
	LangKey      = "lang"
)

// LocaleMiddleware picks the interface language from the lang query
// parameter, then the lang cookie, then Accept-Language.
func LocaleMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		lang := c.Query("lang")
		if lang != "" && utils.IsSupportedUILanguage(lang) {
			c.Cookie(&fiber.Cookie{
				Name:     "lang",
				Value:    lang,
				HTTPOnly: true,
				SameSite: "Lax",
			})
		}

		if !utils.IsSupportedUILanguage(lang) {
			lang = c.Cookies("lang")
		}

		if !utils.IsSupportedUILanguage(lang) {
			lang = fromAcceptLanguage(c.Get(fiber.HeaderAcceptLanguage))
		}

		c.Locals(LocalizerKey, utils.GetLocalizer(lang))
		c.Locals(LangKey, lang)

		utils.Log.Debug("Locale detected: %s for path: %s", lang, c.Path())

		return c.Next()
	}
}

func fromAcceptLanguage(header string) string {
	for _, part := range strings.Split(header, ",") {
		tag := strings.ToLower(strings.TrimSpace(strings.SplitN(part, ";", 2)[0]))
		base := strings.SplitN(tag, "-", 2)[0]
		if utils.IsSupportedUILanguage(base) {
			return base
		}
	}
	return "en"
}

// LocalizerOf converts the value stored under LocalizerKey, falling back to
// the default localizer when LocaleMiddleware did not run.
func LocalizerOf(local interface{}) *i18n.Localizer {
	if loc, ok := local.(*i18n.Localizer); ok && loc != nil {
		return loc
	}
	return utils.Localizer
}
