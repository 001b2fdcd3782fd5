package claude

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"os/exec"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/msageha/blueprint/internal/logging"
)

const maxLineBytes = 1024 * 1024

const (
	typeSystem    = "system"
	typeAssistant = "assistant"
	typeResult    = "result"
)

// streamLine is the envelope of one stream-json stdout line. Only the
// fields the client acts on are decoded.
type streamLine struct {
	Type    string         `json:"type"`
	Subtype string         `json:"subtype"`
	Message *assistantBody `json:"message"`
	IsError bool           `json:"is_error"`
	Result  string         `json:"result"`
}

type assistantBody struct {
	Content []contentBlock `json:"content"`
}

type contentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

func (m *streamLine) textChunks() []Chunk {
	if m.Message == nil {
		return nil
	}
	var chunks []Chunk
	for _, b := range m.Message.Content {
		if b.Type == "text" && b.Text != "" {
			chunks = append(chunks, TextChunk{Text: b.Text})
		}
	}
	return chunks
}

// processStream reads a live subprocess. A success result line ends the
// stream with io.EOF; anything else terminal reaps the process first so no
// zombie outlives the call.
type processStream struct {
	ctx     context.Context
	cmd     *exec.Cmd
	scanner *bufio.Scanner
	grp     *errgroup.Group
	logger  *logging.Logger

	stderrBuf bytes.Buffer

	pending []Chunk
	done    bool
	err     error

	reaped  bool
	waitErr error
}

func (s *processStream) Next() (Chunk, error) {
	if len(s.pending) > 0 {
		chunk := s.pending[0]
		s.pending = s.pending[1:]
		return chunk, nil
	}
	if s.done {
		if s.err != nil {
			return nil, s.err
		}
		return nil, io.EOF
	}

	for {
		if err := s.ctx.Err(); err != nil {
			return nil, s.abort(err)
		}
		if !s.scanner.Scan() {
			return nil, s.endedEarly(s.scanner.Err())
		}
		line := bytes.TrimSpace(s.scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		var msg streamLine
		if err := json.Unmarshal(line, &msg); err != nil {
			return nil, s.abort(&ProtocolError{
				Message: "malformed stream-json line",
				Line:    string(line),
				Cause:   err,
			})
		}

		switch msg.Type {
		case typeAssistant:
			chunks := msg.textChunks()
			if len(chunks) == 0 {
				continue
			}
			s.pending = append(s.pending, chunks[1:]...)
			return chunks[0], nil
		case typeSystem:
			s.logger.Debugf("system line subtype=%s", msg.Subtype)
			continue
		case typeResult:
			if msg.IsError {
				// Reap first: the stderr tail is read only after the
				// pump goroutine has been joined.
				s.reap()
				return nil, s.abort(&ProcessError{
					Message: resultMessage(msg),
					Stderr:  stderrTail(&s.stderrBuf),
				})
			}
			s.done = true
			s.reap()
			if s.waitErr != nil {
				s.logger.Warnf("claude exited dirty after success result: %v", s.waitErr)
			}
			return nil, io.EOF
		default:
			return OpaqueChunk{Raw: string(line)}, nil
		}
	}
}

// Close kills the subprocess if the stream was not drained. Safe to call
// more than once and after a terminal Next.
func (s *processStream) Close() error {
	if !s.done {
		s.done = true
		if s.err == nil {
			s.err = errors.New("stream closed")
		}
		s.kill()
	}
	s.reap()
	return nil
}

// abort terminates the stream on err. Cancellation always wins over
// whatever failure the dying process produced.
func (s *processStream) abort(err error) error {
	s.done = true
	s.kill()
	s.reap()
	if cerr := s.ctx.Err(); cerr != nil {
		s.err = cerr
	} else {
		s.err = err
	}
	return s.err
}

// endedEarly classifies stdout ending before a result line: killed by
// cancellation, or the process died (bad flags, crash, missing login).
// The process may still be running when the scanner fails, so kill before
// waiting.
func (s *processStream) endedEarly(scanErr error) error {
	s.done = true
	s.kill()
	s.reap()
	if cerr := s.ctx.Err(); cerr != nil {
		s.err = cerr
		return s.err
	}

	exitCode := 0
	var exitErr *exec.ExitError
	if errors.As(s.waitErr, &exitErr) {
		exitCode = exitErr.ExitCode()
	}
	cause := scanErr
	if cause == nil {
		cause = s.waitErr
	}
	s.err = &ProcessError{
		Message:  "stream ended before result",
		ExitCode: exitCode,
		Stderr:   stderrTail(&s.stderrBuf),
		Cause:    cause,
	}
	return s.err
}

func (s *processStream) kill() {
	if s.cmd.Process != nil {
		_ = s.cmd.Process.Kill()
	}
}

// reap joins the stderr pump, then waits the process. Wait must come after
// the pump so the pipe is fully drained.
func (s *processStream) reap() {
	if s.reaped {
		return
	}
	s.reaped = true
	_ = s.grp.Wait()
	s.waitErr = s.cmd.Wait()
}

func resultMessage(msg streamLine) string {
	text := strings.TrimSpace(msg.Result)
	if text == "" {
		text = "error result"
	}
	if msg.Subtype != "" {
		return msg.Subtype + ": " + text
	}
	return text
}
