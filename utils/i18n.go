package utils

import (
	"draftmail/locales"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// SupportedUILanguages are the interface languages with a message catalog.
// They are unrelated to the languages a draft can be translated into.
var SupportedUILanguages = []string{"en", "hi"}

var (
	// Bundle is the global translation bundle
	Bundle *i18n.Bundle
	// Localizer is the default (English) localizer
	Localizer *i18n.Localizer
)

// InitI18n loads the embedded catalogs into Bundle
func InitI18n() error {
	Bundle = i18n.NewBundle(language.English)
	Bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	for _, lang := range SupportedUILanguages {
		if _, err := Bundle.LoadMessageFileFS(locales.FS, "active."+lang+".toml"); err != nil {
			Log.Warn("Failed to load %s locale: %v", lang, err)
		}
	}

	Localizer = i18n.NewLocalizer(Bundle, language.English.String())

	Log.Debug("i18n system initialized")
	return nil
}

// IsSupportedUILanguage reports whether lang has a catalog
func IsSupportedUILanguage(lang string) bool {
	for _, l := range SupportedUILanguages {
		if l == lang {
			return true
		}
	}
	return false
}

// GetLocalizer returns a localizer for the specified language
func GetLocalizer(lang string) *i18n.Localizer {
	if lang == "" {
		lang = "en"
	}
	return i18n.NewLocalizer(Bundle, lang)
}

// T translates a message ID, returning the ID itself when it is unknown
func T(localizer *i18n.Localizer, messageID string) string {
	if localizer == nil {
		localizer = Localizer
	}
	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID: messageID,
	})
	if err != nil {
		Log.Debug("Translation error for '%s': %v", messageID, err)
		return messageID
	}
	return msg
}

// TAll translates every message ID in ids
func TAll(localizer *i18n.Localizer, ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, T(localizer, id))
	}
	return out
}
