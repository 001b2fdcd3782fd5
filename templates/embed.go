// Package templates embeds the starter configuration and the fallback
// document templates rendered when the collaborator cannot produce content.
package templates

import "embed"

//go:embed config.yaml prd_fallback.md.tmpl claude_md_fallback.md.tmpl readme_fallback.md.tmpl
var FS embed.FS
