package questionnaire

import "github.com/msageha/blueprint/internal/model"

// DefaultQuestions returns the built-in question set used whenever question
// generation fails. A fresh slice is built on every call so callers may
// modify the result.
func DefaultQuestions() []model.Question {
	return []model.Question{
		{
			ID:       "app_type",
			Text:     "What type of application?",
			Kind:     model.KindMultipleChoice,
			Options:  []string{"Web Application", "CLI Tool", "API Service", "Mobile App"},
			Required: true,
		},
		{
			ID:       "app_name",
			Text:     "What is your application name?",
			Kind:     model.KindFreeText,
			Required: true,
		},
		{
			ID:       "primary_purpose",
			Text:     "What is the primary purpose of your application?",
			Kind:     model.KindFreeText,
			Required: true,
		},
		{
			ID:       "target_audience",
			Text:     "Who is your target audience?",
			Kind:     model.KindFreeText,
			Required: false,
		},
	}
}
