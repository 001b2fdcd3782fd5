// Package generator turns a finished design record into the project
// documents, writing each one atomically under the requested directory.
package generator

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/msageha/blueprint/internal/claude"
	"github.com/msageha/blueprint/internal/logging"
	"github.com/msageha/blueprint/internal/model"
	"github.com/msageha/blueprint/internal/prompt"
)

// Querier issues one collaborator call and returns its response stream.
type Querier interface {
	Query(ctx context.Context, prompt string) (claude.Stream, error)
}

// kinds lists the documents in generation order.
var kinds = []model.DocumentKind{model.DocPRD, model.DocClaudeMD, model.DocReadme}

// Generator produces the requested documents for one design.
type Generator struct {
	collab Querier
	logger *logging.Logger
}

func New(collab Querier, logger *logging.Logger) *Generator {
	return &Generator{collab: collab, logger: logger}
}

// Generate writes every requested document and returns the kind to path
// mapping. Collaborator failures degrade to fallback content; cancellation
// and file system failures abort, leaving documents written so far on disk.
func (g *Generator) Generate(ctx context.Context, req model.DocumentRequest) (map[model.DocumentKind]string, error) {
	if err := os.MkdirAll(req.OutputDir, 0o755); err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return nil, &DirectoryAccessError{Path: req.OutputDir, Err: err}
		}
		return nil, &DirectoryCreationError{Path: req.OutputDir, Err: err}
	}

	files := make(map[model.DocumentKind]string)
	for _, kind := range kinds {
		if !req.Wants(kind) {
			continue
		}
		content, err := g.content(ctx, kind, req.Design)
		if err != nil {
			return nil, err
		}
		path := filepath.Join(req.OutputDir, kind.Filename())
		if err := writeAtomic(path, []byte(content)); err != nil {
			if errors.Is(err, fs.ErrPermission) {
				return nil, &FileAccessError{Dir: req.OutputDir, Err: err}
			}
			return nil, &FileWriteError{Dir: req.OutputDir, Err: err}
		}
		g.logger.Infof("wrote %s", path)
		files[kind] = path
	}
	return files, nil
}

// content produces the document body, substituting a local fallback on any
// collaborator failure short of cancellation.
func (g *Generator) content(ctx context.Context, kind model.DocumentKind, design *model.AppDesign) (string, error) {
	text, err := g.queryText(ctx, buildPrompt(kind, design))
	if err == nil {
		return text, nil
	}
	switch {
	case claude.IsCancellation(err):
		return "", err
	case claude.IsConnectivity(err):
		g.logger.Warnf("%s generation: %v", kind.DisplayName(), err)
		return fallback(kind, design, true, err), nil
	default:
		g.logger.Warnf("%s generation: %v", kind.DisplayName(), err)
		return fallback(kind, design, false, err), nil
	}
}

func (g *Generator) queryText(ctx context.Context, p string) (string, error) {
	stream, err := g.collab.Query(ctx, p)
	if err != nil {
		return "", err
	}
	defer stream.Close()
	return claude.Collect(stream)
}

func buildPrompt(kind model.DocumentKind, design *model.AppDesign) string {
	switch kind {
	case model.DocPRD:
		return prompt.PRD(design)
	case model.DocClaudeMD:
		return prompt.ClaudeMD(design)
	default:
		return prompt.Readme(design)
	}
}
