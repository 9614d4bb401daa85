// Package views embeds the HTML templates and builds the Fiber view engine.
package views

import (
	"embed"
	"io/fs"
	"net/http"
	"strings"

	"draftmail/utils"

	"github.com/gofiber/template/html/v2"
	"github.com/nicksnyder/go-i18n/v2/i18n"
)

//go:embed templates
var templatesFS embed.FS

// NewEngine returns the view engine over the embedded templates
func NewEngine() *html.Engine {
	sub, err := fs.Sub(templatesFS, "templates")
	if err != nil {
		panic(err) // embedded path is fixed at compile time
	}

	engine := html.NewFileSystem(http.FS(sub), ".html")

	engine.AddFunc("lower", strings.ToLower)
	engine.AddFunc("t", func(localizer *i18n.Localizer, messageID string) string {
		return utils.T(localizer, messageID)
	})
	engine.AddFunc("preview", utils.SanitizePreview)

	return engine
}
