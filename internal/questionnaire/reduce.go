package questionnaire

import (
	"strings"

	"github.com/msageha/blueprint/internal/model"
)

// categories maps id substrings to the design list they feed. The pairs are
// checked independently for every answer, so one id may contribute to
// several lists. Matching is a loose substring heuristic, not a schema.
var categories = []struct {
	substrings []string
	list       func(*model.AppDesign) *[]string
}{
	{[]string{"feature"}, func(d *model.AppDesign) *[]string { return &d.PrimaryFeatures }},
	{[]string{"goal", "objective"}, func(d *model.AppDesign) *[]string { return &d.Goals }},
	{[]string{"tech", "stack"}, func(d *model.AppDesign) *[]string { return &d.TechStack }},
	{[]string{"constraint", "limitation"}, func(d *model.AppDesign) *[]string { return &d.Constraints }},
}

// Reduce folds the collected answers into the design record. Pure: the same
// answer set always reduces to a structurally equal design.
func Reduce(answers *model.AnswerSet) *model.AppDesign {
	design := &model.AppDesign{
		Name: "My Application",
		Type: "web application",
	}
	if name, ok := answers.Get("app_name"); ok {
		design.Name = name
	}
	if appType, ok := answers.Get("app_type"); ok {
		design.Type = strings.ToLower(appType)
	}
	if description, ok := answers.Get("primary_purpose"); ok {
		design.Description = description
	}
	if audience, ok := answers.Get("target_audience"); ok {
		design.TargetAudience = audience
	}

	for _, id := range answers.IDs() {
		value, _ := answers.Get(id)
		if value == "" {
			continue
		}
		key := strings.ToLower(id)
		for _, category := range categories {
			if containsAny(key, category.substrings) {
				list := category.list(design)
				*list = append(*list, splitList(value)...)
			}
		}
	}

	design.AdditionalInfo = answers
	return design
}

func containsAny(s string, substrings []string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// splitList splits a comma separated answer and trims each piece.
func splitList(value string) []string {
	parts := strings.Split(value, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}
