// Package claude runs the Claude Code CLI as a one-shot subprocess per
// prompt and exposes its stream-json stdout as a chunk stream.
package claude

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"os/exec"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/msageha/blueprint/internal/logging"
	"github.com/msageha/blueprint/internal/model"
)

// Stream yields response chunks until io.EOF or a terminal error. Streams
// are consumed from a single flow; they are not safe for concurrent use.
type Stream interface {
	Next() (Chunk, error)
	Close() error
}

// Client launches the collaborator binary once per Query.
type Client struct {
	binary    string
	modelName string
	extraArgs []string
	logger    *logging.Logger
}

func NewClient(cfg model.ClaudeConfig, logger *logging.Logger) *Client {
	binary := cfg.Binary
	if binary == "" {
		binary = "claude"
	}
	return &Client{
		binary:    binary,
		modelName: cfg.Model,
		extraArgs: cfg.Args,
		logger:    logger,
	}
}

// Query sends one prompt and returns the streamed response. The subprocess
// stays alive until the stream is drained or closed; cancelling ctx kills
// it and surfaces ctx.Err() from the stream.
func (c *Client) Query(ctx context.Context, prompt string) (Stream, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	args := []string{"--print", "--output-format", "stream-json", "--verbose"}
	if c.modelName != "" {
		args = append(args, "--model", c.modelName)
	}
	args = append(args, c.extraArgs...)

	cmd := exec.CommandContext(ctx, c.binary, args...)
	cmd.Stdin = strings.NewReader(prompt)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, &ConnectError{Binary: c.binary, Cause: err}
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return nil, &ConnectError{Binary: c.binary, Cause: err}
	}

	if err := cmd.Start(); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, &ConnectError{Binary: c.binary, Cause: err}
	}
	c.logger.Debugf("spawned %s pid=%d prompt_bytes=%d", c.binary, cmd.Process.Pid, len(prompt))

	scanner := bufio.NewScanner(stdout)
	// Large buffer: a single assistant line can carry a whole document.
	scanner.Buffer(make([]byte, 64*1024), maxLineBytes)

	s := &processStream{
		ctx:     ctx,
		cmd:     cmd,
		scanner: scanner,
		grp:     &errgroup.Group{},
		logger:  c.logger,
	}
	s.grp.Go(func() error {
		_, err := io.Copy(&s.stderrBuf, stderr)
		return err
	})
	return s, nil
}

// Collect drains the stream and concatenates the content projection of
// every chunk.
func Collect(s Stream) (string, error) {
	var b strings.Builder
	for {
		chunk, err := s.Next()
		if err == io.EOF {
			return b.String(), nil
		}
		if err != nil {
			return "", err
		}
		b.WriteString(chunk.Content())
	}
}

// QueryText is the common call shape: send a prompt, drain the stream,
// return the concatenated text.
func (c *Client) QueryText(ctx context.Context, prompt string) (string, error) {
	s, err := c.Query(ctx, prompt)
	if err != nil {
		return "", err
	}
	defer func() { _ = s.Close() }()
	return Collect(s)
}

func stderrTail(buf *bytes.Buffer) string {
	const maxStderrBytes = 4096
	out := buf.String()
	if len(out) > maxStderrBytes {
		out = out[len(out)-maxStderrBytes:]
	}
	return strings.TrimSpace(out)
}
