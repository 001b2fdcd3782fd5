package generator

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/msageha/blueprint/internal/model"
	"github.com/msageha/blueprint/templates"
)

var fallbackTemplates = template.Must(template.ParseFS(templates.FS,
	"prd_fallback.md.tmpl",
	"claude_md_fallback.md.tmpl",
	"readme_fallback.md.tmpl",
))

// fallbackData feeds the embedded fallback templates.
type fallbackData struct {
	Name          string
	Description   string
	Note          string
	FeaturesBlock string
}

// fallback renders the local stand-in document for kind. connectivity
// selects the regenerate-later note; otherwise cause is embedded verbatim.
func fallback(kind model.DocumentKind, design *model.AppDesign, connectivity bool, cause error) string {
	data := fallbackData{
		Name:        design.Name,
		Description: design.Description,
	}
	if connectivity {
		data.Note = fmt.Sprintf("Full %s generation failed due to connection error. Please regenerate when connection is restored.", kind.DisplayName())
	} else {
		data.Note = fmt.Sprintf("%s generation encountered an error: %v", kind.DisplayName(), cause)
	}
	if kind == model.DocReadme && connectivity {
		data.FeaturesBlock = featuresBlock(design.PrimaryFeatures)
	}

	var buf strings.Builder
	name := string(kind) + "_fallback.md.tmpl"
	if err := fallbackTemplates.ExecuteTemplate(&buf, name, data); err != nil {
		// The templates are embedded and parsed at init, and the data is a
		// flat struct, so execution cannot fail for the known kinds.
		panic(err)
	}
	return buf.String()
}

// featuresBlock renders the readme feature bullets, with a stand-in bullet
// when the design has no features yet.
func featuresBlock(features []string) string {
	if len(features) == 0 {
		return "- Core functionality"
	}
	lines := make([]string, 0, len(features))
	for _, f := range features {
		lines = append(lines, "- "+f)
	}
	return strings.Join(lines, "\n")
}
