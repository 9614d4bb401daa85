package utils

import (
	"html/template"

	"github.com/microcosm-cc/bluemonday"
)

// PreviewPolicy allows the light formatting a model tends to emit and
// nothing else.
var PreviewPolicy *bluemonday.Policy

func init() {
	PreviewPolicy = bluemonday.NewPolicy()
	PreviewPolicy.AllowElements("p", "br", "strong", "b", "em", "i", "u", "ul", "ol", "li", "blockquote")
}

// SanitizePreview makes generated text safe to drop into the preview pane
func SanitizePreview(text string) template.HTML {
	return template.HTML(PreviewPolicy.Sanitize(text))
}
