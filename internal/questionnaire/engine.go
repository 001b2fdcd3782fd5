// Package questionnaire drives the interactive interview. It asks the
// collaborator to generate questions, collects answers on the terminal with
// optional follow-ups, and reduces everything into a design record.
package questionnaire

import (
	"context"
	"strconv"

	"github.com/msageha/blueprint/internal/claude"
	"github.com/msageha/blueprint/internal/logging"
	"github.com/msageha/blueprint/internal/model"
	"github.com/msageha/blueprint/internal/prompt"
	"github.com/msageha/blueprint/internal/term"
)

// Querier issues one collaborator call and returns its response stream.
type Querier interface {
	Query(ctx context.Context, prompt string) (claude.Stream, error)
}

// Engine owns one interview run.
type Engine struct {
	collab Querier
	term   *term.Terminal
	logger *logging.Logger
}

func New(collab Querier, t *term.Terminal, logger *logging.Logger) *Engine {
	return &Engine{collab: collab, term: t, logger: logger}
}

// Run executes the full interview and returns the reduced design record.
// The only error it returns is cancellation; every collaborator failure
// degrades to defaults so the interview always completes.
func (e *Engine) Run(ctx context.Context) (*model.AppDesign, error) {
	e.term.Banner("Getting Started", "Welcome to Blueprint", "", "Let's design your application...")

	questions, err := e.generateQuestions(ctx)
	if err != nil {
		return nil, err
	}

	answers := model.NewAnswerSet()
	for _, q := range questions {
		answer, err := e.ask(ctx, q)
		if err != nil {
			return nil, err
		}
		answers.Set(q.ID, answer)

		if !q.HasFollowUpFor(answer) {
			continue
		}
		followUps, err := e.generateFollowUps(ctx, q, answer)
		if err != nil {
			return nil, err
		}
		for _, fq := range followUps {
			followUpAnswer, err := e.ask(ctx, fq)
			if err != nil {
				return nil, err
			}
			answers.Set(fq.ID, followUpAnswer)
		}
	}

	return Reduce(answers), nil
}

func (e *Engine) queryText(ctx context.Context, p string) (string, error) {
	stream, err := e.collab.Query(ctx, p)
	if err != nil {
		return "", err
	}
	defer stream.Close()
	return claude.Collect(stream)
}

// generateQuestions asks the collaborator for the opening question batch.
// Everything short of cancellation degrades to the default set.
func (e *Engine) generateQuestions(ctx context.Context) ([]model.Question, error) {
	text, err := e.queryText(ctx, prompt.InitialQuestions())
	if err != nil {
		switch {
		case claude.IsCancellation(err):
			e.term.Printf("\n")
			e.term.Notice("Question generation interrupted by user")
			return nil, err
		case claude.IsConnectivity(err):
			e.logger.Warnf("question generation: %v", err)
			e.term.Notice("Network connection error. Using default questions.")
			return DefaultQuestions(), nil
		default:
			e.logger.Warnf("question generation: %v", err)
			e.term.Notice("Error generating questions: %v. Using default questions.", err)
			return DefaultQuestions(), nil
		}
	}
	questions, err := parseQuestions(text)
	if err != nil {
		e.logger.Warnf("question parse: %v", err)
		e.term.Notice("Invalid JSON response from Claude. Using default questions.")
		return DefaultQuestions(), nil
	}
	e.logger.Infof("generated %d questions", len(questions))
	return questions, nil
}

// generateFollowUps asks for follow-ups to one answered question. Strictly
// best effort: any failure short of cancellation yields an empty batch.
func (e *Engine) generateFollowUps(ctx context.Context, parent model.Question, answer string) ([]model.Question, error) {
	text, err := e.queryText(ctx, prompt.FollowUpQuestions(parent, answer))
	if err != nil {
		switch {
		case claude.IsCancellation(err):
			return nil, err
		case claude.IsConnectivity(err):
			e.logger.Warnf("follow-up generation for %s: %v", parent.ID, err)
			e.term.Notice("Unable to generate follow-up questions due to connection error")
			return nil, nil
		default:
			e.logger.Warnf("follow-up generation for %s: %v", parent.ID, err)
			return nil, nil
		}
	}
	questions, err := parseQuestions(text)
	if err != nil {
		e.logger.Warnf("follow-up parse for %s: %v", parent.ID, err)
		e.term.Notice("Unable to generate follow-up questions due to invalid response")
		return nil, nil
	}
	return questions, nil
}

// ask renders one question and blocks until an acceptable answer arrives.
func (e *Engine) ask(ctx context.Context, q model.Question) (string, error) {
	e.term.Question(q)

	switch {
	case q.Kind == model.KindMultipleChoice && len(q.Options) > 0:
		return e.askMultipleChoice(ctx, q)
	case q.Kind == model.KindMultipleChoice:
		// No options to choose from, nothing to ask.
		return "", nil
	case q.Kind == model.KindFreeText:
		return e.askFreeText(ctx, q)
	default:
		return e.term.ReadLine(ctx, "Answer: ")
	}
}

// askMultipleChoice prompts for an option number until one in range is
// given. An empty line selects the first option.
func (e *Engine) askMultipleChoice(ctx context.Context, q model.Question) (string, error) {
	for {
		line, err := e.term.ReadLine(ctx, "Select option [1]: ")
		if err != nil {
			return "", err
		}
		choice := 1
		if line != "" {
			choice, err = strconv.Atoi(line)
			if err != nil {
				e.term.Notice("Invalid choice. Please enter a number.")
				continue
			}
		}
		if choice < 1 || choice > len(q.Options) {
			e.term.Notice("Please choose 1-%d", len(q.Options))
			continue
		}
		return q.Options[choice-1], nil
	}
}

// askFreeText prompts for a line of text. Required questions do not accept
// an empty submission.
func (e *Engine) askFreeText(ctx context.Context, q model.Question) (string, error) {
	for {
		answer, err := e.term.ReadLine(ctx, "Answer: ")
		if err != nil {
			return "", err
		}
		if answer != "" || !q.Required {
			return answer, nil
		}
		e.term.Notice("An answer is required.")
	}
}
