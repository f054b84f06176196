// Package types provides the value records exchanged between the gap analysis
// pipeline stages. All records are plain values produced fresh per analysis;
// no stage mutates another stage's output.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "github.com/google/uuid"

// CandidateProfile is the structured candidate record assembled by the
// profile service. Field names mirror the upstream profile store payload.
type CandidateProfile struct {
	ID             uuid.UUID         `json:"id"`
	Name           string            `json:"name,omitempty"`
	Email          string            `json:"email,omitempty"`
	Phone          string            `json:"phone,omitempty"`
	City           string            `json:"city,omitempty"`
	State          string            `json:"state,omitempty"`
	Summary        string            `json:"professionalSummary,omitempty"`
	HardSkills     []string          `json:"hardSkills"`
	SoftSkills     []string          `json:"softSkills,omitempty"`
	Experiences    []ExperienceEntry `json:"experiences"`
	Education      []EducationEntry  `json:"education"`
	Languages      []LanguageEntry   `json:"languages"`
	Certifications []string          `json:"certifications"`
}

// ExperienceEntry is one professional experience. Dates use the "YYYY-MM"
// format; an empty EndDate means the candidate is currently employed there.
type ExperienceEntry struct {
	Position  string `json:"position"`
	Company   string `json:"company,omitempty"`
	Activity  string `json:"activity,omitempty"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate,omitempty"`
}

// EducationEntry is one education record tagged with its level.
type EducationEntry struct {
	Course      string         `json:"course,omitempty"`
	Institution string         `json:"institution,omitempty"`
	Level       EducationLevel `json:"level"`
}

// LanguageEntry is one language the candidate speaks.
type LanguageEntry struct {
	Name  string        `json:"name"`
	Level LanguageLevel `json:"level"`
}
