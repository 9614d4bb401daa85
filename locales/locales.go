// Package locales embeds the UI message catalogs.
package locales

import "embed"

// FS holds active.<lang>.toml for every supported UI language
//
//go:embed active.*.toml
var FS embed.FS
