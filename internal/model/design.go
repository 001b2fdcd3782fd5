package model

// AppDesign is the structured summary of a completed interview. Once built
// it is immutable input to document generation. List fields keep every
// contributing answer fragment in elicitation order; duplicates are not
// collapsed. TargetAudience is empty when the interview produced none.
type AppDesign struct {
	Name            string
	Type            string
	Description     string
	PrimaryFeatures []string
	Goals           []string
	TechStack       []string
	Constraints     []string
	TargetAudience  string
	AdditionalInfo  *AnswerSet
}
