package types

import "github.com/google/uuid"

// SuggestedAction is one concrete remediation step inside a suggestion.
type SuggestedAction struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	Provider    string `json:"provider,omitempty"`
	Duration    string `json:"duration,omitempty"`
	Cost        string `json:"cost,omitempty"`
}

// Suggestion is the remediation attached to a single gap. GapID joins it back
// to the gap (type + ":" + name).
type Suggestion struct {
	GapID         string            `json:"gapId"`
	Actions       []SuggestedAction `json:"actions"`
	EstimatedTime string            `json:"estimatedTime"`
}

// PlanItem is one entry of the action plan, referencing a gap, its
// suggestion, and the priority score that ranked it.
type PlanItem struct {
	Gap        Gap        `json:"gap"`
	Suggestion Suggestion `json:"suggestion"`
	Priority   int        `json:"priority"`
}

// ActionPlan is the time-phased remediation plan. Bucket order inside each
// phase follows the priority ranking.
type ActionPlan struct {
	Immediate  []PlanItem `json:"immediate"`
	ShortTerm  []PlanItem `json:"shortTerm"`
	MediumTerm []PlanItem `json:"mediumTerm"`
	LongTerm   []PlanItem `json:"longTerm"`
}

// VacancySummary is the vacancy header echoed in the analysis result.
type VacancySummary struct {
	ID       uuid.UUID `json:"id"`
	Title    string    `json:"title"`
	Company  string    `json:"company,omitempty"`
	Location string    `json:"location,omitempty"`
}

// Result is the self-contained output of one gap analysis. It is a pure
// function of the (profile, vacancy) pair: identical inputs always produce
// identical results.
type Result struct {
	Vacancy              VacancySummary `json:"vacancy"`
	CurrentCompatibility int            `json:"currentCompatibility"`
	Gaps                 []Gap          `json:"gaps"`
	Matches              []Match        `json:"matches"`
	Suggestions          []Suggestion   `json:"suggestions"`
	ImprovementPotential int            `json:"improvementPotential"`
	ActionPlan           ActionPlan     `json:"actionPlan"`
}
