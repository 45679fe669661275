package domain

import "time"

// SeniorityLevel labels the experience band a candidate is assessed at.
type SeniorityLevel string

const (
	LevelJunior  SeniorityLevel = "Junior"
	LevelMid     SeniorityLevel = "Mid"
	LevelSenior  SeniorityLevel = "Senior"
	LevelLead    SeniorityLevel = "Lead"
	LevelUnknown SeniorityLevel = "Unknown"
)

// Candidate is one processed upload. Optional fields stay empty when the
// parser found nothing; the repository omits them from the stored row.
type Candidate struct {
	ID        string    `json:"id" dynamodbav:"id"`
	Bucket    string    `json:"bucket" dynamodbav:"bucket"`
	Key       string    `json:"key" dynamodbav:"key"`
	RawText   string    `json:"raw_text" dynamodbav:"raw_text"`
	Name      string    `json:"name,omitempty" dynamodbav:"name,omitempty"`
	Email     string    `json:"email,omitempty" dynamodbav:"email,omitempty"`
	Phone     string    `json:"phone,omitempty" dynamodbav:"phone,omitempty"`
	Skills    []string  `json:"skills,omitempty" dynamodbav:"skills,omitempty"`
	CreatedAt time.Time `json:"created_at" dynamodbav:"created_at"`
}

// FitAssessment scores a candidate against a role description.
// Score is nil when the model response could not be parsed.
type FitAssessment struct {
	Score         *float64       `json:"score"`
	Summary       string         `json:"summary"`
	Strengths     []string       `json:"strengths"`
	Concerns      []string       `json:"concerns"`
	MatchedSkills []string       `json:"matched_skills"`
	MissingSkills []string       `json:"missing_skills"`
	Level         SeniorityLevel `json:"level"`
}

// ParsedFields is the structured output of the field parser over raw text.
type ParsedFields struct {
	Name   string
	Email  string
	Phone  string
	Skills []string
}
