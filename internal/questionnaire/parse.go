package questionnaire

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/msageha/blueprint/internal/model"
)

// wireQuestion mirrors the JSON array shape the question prompts request.
type wireQuestion struct {
	ID       string            `json:"id"`
	Text     string            `json:"text"`
	Type     string            `json:"type"`
	Options  []string          `json:"options"`
	Required bool              `json:"required"`
	FollowUp map[string]string `json:"follow_up"`
}

var errNoQuestions = errors.New("response contains no questions")

// parseQuestions decodes a question batch from collaborator text. Responses
// often arrive wrapped in markdown fences or surrounded by prose, so decoding
// starts from the first JSON array found in the text.
func parseQuestions(raw string) ([]model.Question, error) {
	payload := extractArray(raw)
	var wire []wireQuestion
	if err := json.Unmarshal([]byte(payload), &wire); err != nil {
		return nil, fmt.Errorf("decode questions: %w", err)
	}
	if len(wire) == 0 {
		return nil, errNoQuestions
	}
	questions := make([]model.Question, 0, len(wire))
	for i, w := range wire {
		if w.ID == "" || w.Text == "" {
			return nil, fmt.Errorf("question %d missing id or text", i+1)
		}
		questions = append(questions, model.Question{
			ID:       w.ID,
			Text:     w.Text,
			Kind:     parseKind(w.Type),
			Options:  w.Options,
			Required: w.Required,
			FollowUp: w.FollowUp,
		})
	}
	return questions, nil
}

// parseKind maps the wire type to a question kind. Unknown values are kept
// verbatim; the asker treats them as optional free text.
func parseKind(wire string) model.QuestionKind {
	switch wire {
	case "", "text":
		return model.KindFreeText
	case "multiple_choice":
		return model.KindMultipleChoice
	default:
		return model.QuestionKind(wire)
	}
}

// extractArray returns the first JSON array in text, unwrapping a markdown
// code fence when present. Falls back to the trimmed input so the JSON
// decoder reports the real problem.
func extractArray(text string) string {
	trimmed := strings.TrimSpace(text)
	if fenced, ok := unfence(trimmed); ok {
		trimmed = fenced
	}
	if idx := strings.IndexByte(trimmed, '['); idx >= 0 {
		if arr := balancedArray(trimmed, idx); arr != "" {
			return arr
		}
	}
	return trimmed
}

// unfence returns the body of the first ``` code fence, skipping a language
// tag on the opening line.
func unfence(text string) (string, bool) {
	idx := strings.Index(text, "```")
	if idx < 0 {
		return "", false
	}
	start := idx + 3
	if nl := strings.IndexByte(text[start:], '\n'); nl >= 0 {
		start += nl + 1
	}
	end := strings.Index(text[start:], "```")
	if end < 0 {
		return "", false
	}
	return strings.TrimSpace(text[start : start+end]), true
}

// balancedArray walks text from idx and returns the complete bracketed
// array, ignoring brackets inside JSON strings and escape sequences.
func balancedArray(text string, idx int) string {
	depth := 0
	inString := false
	escaped := false
	for i := idx; i < len(text); i++ {
		c := text[i]
		if escaped {
			escaped = false
			continue
		}
		switch c {
		case '\\':
			if inString {
				escaped = true
			}
		case '"':
			inString = !inString
		case '[':
			if !inString {
				depth++
			}
		case ']':
			if !inString {
				depth--
				if depth == 0 {
					return text[idx : i+1]
				}
			}
		}
	}
	return ""
}
