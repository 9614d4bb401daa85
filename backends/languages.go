package backends

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// translatable are the languages the translator accepts as targets
var translatable = []language.Tag{
	language.English,
	language.Hindi,
	language.Gujarati,
	language.French,
	language.Spanish,
}

var languageCodes = func() map[string]string {
	names := display.English.Languages()
	codes := make(map[string]string, len(translatable)*2)
	for _, tag := range translatable {
		code := tag.String()
		codes[strings.ToLower(names.Name(tag))] = code
		codes[code] = code
	}
	return codes
}()

// LanguageCode resolves a lower-cased English language name ("hindi") or an
// already resolved code ("hi") to the code the translation service expects.
func LanguageCode(name string) (string, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "auto" {
		return name, nil
	}
	if code, ok := languageCodes[name]; ok {
		return code, nil
	}
	return "", fmt.Errorf("unsupported language %q", name)
}
