// Package claudetest provides a scripted collaborator for tests: queued
// responses instead of a live subprocess, with every prompt recorded.
package claudetest

import (
	"context"
	"io"

	"github.com/msageha/blueprint/internal/claude"
)

// Response scripts one Query call, consumed in order.
type Response struct {
	Chunks []claude.Chunk
	// Err makes Query itself fail before any chunk is produced.
	Err error
	// StreamErr terminates the stream after Chunks instead of io.EOF.
	StreamErr error
}

// Text scripts the common case of a single text chunk.
func Text(text string) Response {
	return Response{Chunks: []claude.Chunk{claude.TextChunk{Text: text}}}
}

// Fail scripts a Query that errors immediately.
func Fail(err error) Response {
	return Response{Err: err}
}

// Collaborator replays scripted responses. Queries past the script end
// report exhaustion, which shows up loudly in test output.
type Collaborator struct {
	Responses []Response
	Prompts   []string

	next int
}

func New(responses ...Response) *Collaborator {
	return &Collaborator{Responses: responses}
}

func (c *Collaborator) Query(ctx context.Context, prompt string) (claude.Stream, error) {
	c.Prompts = append(c.Prompts, prompt)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if c.next >= len(c.Responses) {
		return nil, &claude.ProcessError{Message: "claudetest: script exhausted"}
	}
	r := c.Responses[c.next]
	c.next++
	if r.Err != nil {
		return nil, r.Err
	}
	return &staticStream{chunks: r.Chunks, err: r.StreamErr}, nil
}

// staticStream yields queued chunks then io.EOF or the scripted error.
type staticStream struct {
	chunks []claude.Chunk
	err    error
	pos    int
}

func (s *staticStream) Next() (claude.Chunk, error) {
	if s.pos < len(s.chunks) {
		chunk := s.chunks[s.pos]
		s.pos++
		return chunk, nil
	}
	if s.err != nil {
		return nil, s.err
	}
	return nil, io.EOF
}

func (s *staticStream) Close() error {
	return nil
}
