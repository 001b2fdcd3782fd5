// Package term renders the interview on the terminal and reads answers.
// Input flows through a single reader goroutine so a blocking prompt can be
// abandoned the moment the run is cancelled.
package term

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/msageha/blueprint/internal/model"
)

type readResult struct {
	line string
	err  error
}

// Terminal owns interview I/O. Methods are called from the single run flow.
type Terminal struct {
	in    io.Reader
	out   io.Writer
	once  sync.Once
	lines chan readResult
}

func New(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{in: in, out: out}
}

func Default() *Terminal {
	return New(os.Stdin, os.Stdout)
}

// ReadLine shows promptText and blocks until one line arrives or ctx ends.
// The returned line has surrounding whitespace trimmed.
func (t *Terminal) ReadLine(ctx context.Context, promptText string) (string, error) {
	fmt.Fprint(t.out, promptText)
	t.once.Do(t.startReader)
	select {
	case <-ctx.Done():
		fmt.Fprintln(t.out)
		return "", ctx.Err()
	case r := <-t.lines:
		if r.err != nil {
			return "", fmt.Errorf("read input: %w", r.err)
		}
		return strings.TrimSpace(r.line), nil
	}
}

// startReader pumps input lines into the channel. After input ends the
// goroutine keeps re-sending the terminal error; it lives for the process,
// which exits with the run.
func (t *Terminal) startReader() {
	t.lines = make(chan readResult)
	go func() {
		scanner := bufio.NewScanner(t.in)
		for scanner.Scan() {
			t.lines <- readResult{line: scanner.Text()}
		}
		err := scanner.Err()
		if err == nil {
			err = io.EOF
		}
		for {
			t.lines <- readResult{err: err}
		}
	}()
}

// Banner prints the titled welcome block.
func (t *Terminal) Banner(title string, lines ...string) {
	fmt.Fprintf(t.out, "== %s ==\n", title)
	for _, l := range lines {
		fmt.Fprintln(t.out, l)
	}
	fmt.Fprintln(t.out)
}

// Question shows one question and, for multiple choice, its numbered options.
func (t *Terminal) Question(q model.Question) {
	fmt.Fprintf(t.out, "\nQuestion %s\n", q.ID)
	fmt.Fprintf(t.out, "  %s\n", q.Text)
	if q.Kind == model.KindMultipleChoice && len(q.Options) > 0 {
		fmt.Fprintln(t.out)
		for i, opt := range q.Options {
			fmt.Fprintf(t.out, "  %d. %s\n", i+1, opt)
		}
	}
	fmt.Fprintln(t.out)
}

// Notice prints an informational line, typically about degraded behavior.
func (t *Terminal) Notice(format string, args ...any) {
	fmt.Fprintf(t.out, format+"\n", args...)
}

// Printf writes directly to the terminal.
func (t *Terminal) Printf(format string, args ...any) {
	fmt.Fprintf(t.out, format, args...)
}

// DesignSummary prints the reduced design before generation starts.
func (t *Terminal) DesignSummary(design *model.AppDesign) {
	fmt.Fprintln(t.out, "\nDesign summary:")
	fmt.Fprintf(t.out, "  %-12s %s\n", "Name:", design.Name)
	fmt.Fprintf(t.out, "  %-12s %s\n", "Type:", design.Type)
	if design.Description != "" {
		fmt.Fprintf(t.out, "  %-12s %s\n", "Description:", design.Description)
	}
	if design.TargetAudience != "" {
		fmt.Fprintf(t.out, "  %-12s %s\n", "Audience:", design.TargetAudience)
	}
	t.printList("Features:", design.PrimaryFeatures)
	t.printList("Goals:", design.Goals)
	t.printList("Tech stack:", design.TechStack)
	t.printList("Constraints:", design.Constraints)
}

func (t *Terminal) printList(label string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(t.out, "  %-12s %s\n", label, strings.Join(items, ", "))
}

// GeneratedFiles prints the kind to path table in generation order.
func (t *Terminal) GeneratedFiles(files map[model.DocumentKind]string) {
	if len(files) == 0 {
		fmt.Fprintln(t.out, "\nNo documents were generated.")
		return
	}
	fmt.Fprintln(t.out, "\nGenerated files:")
	for _, kind := range []model.DocumentKind{model.DocPRD, model.DocClaudeMD, model.DocReadme} {
		if path, ok := files[kind]; ok {
			fmt.Fprintf(t.out, "  %-10s %s\n", kind.DisplayName(), path)
		}
	}
}

// NextSteps prints post-generation hints.
func (t *Terminal) NextSteps() {
	fmt.Fprintln(t.out, "\nNext steps:")
	fmt.Fprintln(t.out, "  1. Review PRD.md and adjust the requirements")
	fmt.Fprintln(t.out, "  2. Keep CLAUDE.md at the project root for coding sessions")
	fmt.Fprintln(t.out, "  3. Fill in README.md sections as the project takes shape")
}
