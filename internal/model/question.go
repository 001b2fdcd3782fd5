// Package model defines the data structures for Blueprint's questions,
// answers, design records, and configuration.
package model

// QuestionKind distinguishes how a question is presented and answered.
// Kinds outside the two known values are asked as free-form prompts.
type QuestionKind string

const (
	KindMultipleChoice QuestionKind = "multiple_choice"
	KindFreeText       QuestionKind = "free_text"
)

// Question is a single prompt in the design interview.
type Question struct {
	ID       string
	Text     string
	Kind     QuestionKind
	Options  []string
	Required bool
	FollowUp map[string]string
}

// HasFollowUpFor reports whether answering with answer should trigger
// follow-up question generation.
func (q Question) HasFollowUpFor(answer string) bool {
	if len(q.FollowUp) == 0 {
		return false
	}
	_, ok := q.FollowUp[answer]
	return ok
}
