// Package prompt builds the instruction strings sent to the collaborator.
// All builders are pure: design fields and question context are embedded
// verbatim, and the JSON shape for question generation is spelled out so
// parsing downstream has a fixed contract.
package prompt

import (
	"fmt"
	"strings"

	"github.com/msageha/blueprint/internal/model"
)

const initialQuestions = `Generate 4-5 essential questions for designing a software application.
Return questions in this exact JSON format:
[
  {
    "id": "app_type",
    "text": "What type of application?",
    "type": "multiple_choice",
    "options": ["Web Application", "CLI Tool", "API Service", "Mobile App"],
    "required": true,
    "follow_up": null
  },
  ...
]

Keep questions simple and focused on core application details:
- Application type
- Primary purpose/features
- Target audience
- Technology preferences
- Key constraints

Make questions concise and actionable.`

const followUpFormat = `Based on the user's answer %q to %q,
generate 1-2 relevant follow-up questions in JSON format:
[
  {
    "id": "follow_up_%s_1",
    "text": "Follow-up question text",
    "type": "text",
    "options": null,
    "required": false,
    "follow_up": null
  }
]

Keep follow-up questions specific and helpful for application design.`

// InitialQuestions asks for the opening question batch.
func InitialQuestions() string {
	return initialQuestions
}

// FollowUpQuestions asks for 1-2 follow-ups to one answered question.
func FollowUpQuestions(parent model.Question, answer string) string {
	return fmt.Sprintf(followUpFormat, answer, parent.Text, parent.ID)
}

// PRD asks for the Product Requirements Document.
func PRD(design *model.AppDesign) string {
	return fmt.Sprintf(`Generate a Product Requirements Document (PRD) for the following application:

Application Name: %s
Type: %s
Description: %s
Primary Features: %s
Tech Stack: %s
Target Audience: %s
Goals: %s
Constraints: %s

Create a comprehensive PRD following this structure:
1. Executive Summary
2. Problem Statement
3. Goals and Objectives
4. Target Audience
5. User Stories and Requirements
6. Functional Requirements
7. Non-Functional Requirements
8. Technical Constraints
9. Timeline and Milestones

Keep it concise but comprehensive. Focus on essential requirements without over-specification.`,
		design.Name,
		design.Type,
		design.Description,
		joinList(design.PrimaryFeatures),
		joinList(design.TechStack),
		audienceOr(design, "Not specified"),
		joinList(design.Goals),
		joinList(design.Constraints),
	)
}

// ClaudeMD asks for the technical guidelines document.
func ClaudeMD(design *model.AppDesign) string {
	return fmt.Sprintf(`Generate a CLAUDE.md technical guidelines document for this application:

Application Name: %s
Type: %s
Tech Stack: %s
Primary Features: %s

Create technical guidelines following this structure:
1. Project Overview
2. Development Setup
3. Common Commands
4. Architecture Principles
5. Code Quality Standards
6. Testing Approach
7. Deployment Guidelines

Focus on:
- KISS principles over complex patterns
- Essential commands and workflows
- Simple, maintainable code standards
- Basic testing requirements
- Minimal maintenance approach`,
		design.Name,
		design.Type,
		joinList(design.TechStack),
		joinList(design.PrimaryFeatures),
	)
}

// Readme asks for the user-facing README.
func Readme(design *model.AppDesign) string {
	return fmt.Sprintf(`Generate a README.md file for this application:

Application Name: %s
Type: %s
Description: %s
Primary Features: %s
Tech Stack: %s
Target Audience: %s

Create a clear, user-focused README with:
1. Project title and brief description
2. Features list
3. Installation instructions
4. Usage examples
5. Configuration (if needed)
6. Contributing guidelines
7. License information

Keep it simple and focused on user needs. Avoid unnecessary technical complexity.`,
		design.Name,
		design.Type,
		design.Description,
		joinList(design.PrimaryFeatures),
		joinList(design.TechStack),
		audienceOr(design, "General users"),
	)
}

func joinList(items []string) string {
	return strings.Join(items, ", ")
}

func audienceOr(design *model.AppDesign, fallback string) string {
	if design.TargetAudience == "" {
		return fallback
	}
	return design.TargetAudience
}
