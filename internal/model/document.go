package model

// DocumentKind identifies one generated artifact.
type DocumentKind string

const (
	DocPRD      DocumentKind = "prd"
	DocClaudeMD DocumentKind = "claude_md"
	DocReadme   DocumentKind = "readme"
)

// Filename returns the on-disk name for the kind. The names are a
// compatibility contract with downstream tooling and must not change.
func (k DocumentKind) Filename() string {
	switch k {
	case DocPRD:
		return "PRD.md"
	case DocClaudeMD:
		return "CLAUDE.md"
	case DocReadme:
		return "README.md"
	}
	return ""
}

// DisplayName returns the short human name used in notices and summaries.
func (k DocumentKind) DisplayName() string {
	switch k {
	case DocPRD:
		return "PRD"
	case DocClaudeMD:
		return "CLAUDE.md"
	case DocReadme:
		return "README"
	}
	return string(k)
}

// DocumentRequest carries everything one generation run needs. It is
// constructed once by the caller and not mutated afterwards.
type DocumentRequest struct {
	OutputDir        string
	GeneratePRD      bool
	GenerateClaudeMD bool
	GenerateReadme   bool
	Design           *AppDesign
}

// Wants reports whether the request asks for kind.
func (r DocumentRequest) Wants(kind DocumentKind) bool {
	switch kind {
	case DocPRD:
		return r.GeneratePRD
	case DocClaudeMD:
		return r.GenerateClaudeMD
	case DocReadme:
		return r.GenerateReadme
	}
	return false
}
