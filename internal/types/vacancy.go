package types

import "github.com/google/uuid"

// WorkFormat is the vacancy's working arrangement.
type WorkFormat string

const (
	WorkFormatRemote     WorkFormat = "REMOTE"
	WorkFormatPresential WorkFormat = "PRESENTIAL"
	WorkFormatHybrid     WorkFormat = "HYBRID"
)

// Vacancy is the vacancy record assembled by the vacancy service. The
// description and qualification fields are free text (possibly HTML) and are
// the input to requirement extraction; required skills, experience years,
// education, languages and certifications are derived, never stored verbatim.
type Vacancy struct {
	ID                 uuid.UUID  `json:"id"`
	Title              string     `json:"title"`
	Company            string     `json:"company,omitempty"`
	Description        string     `json:"description"`
	Qualification      string     `json:"qualification,omitempty"`
	City               string     `json:"city,omitempty"`
	State              string     `json:"state,omitempty"`
	WorkFormat         WorkFormat `json:"workFormat"`
	RequiresExperience bool       `json:"requiresExperience,omitempty"`
}

// Location renders the vacancy location as "City, State" for display.
func (v *Vacancy) Location() string {
	switch {
	case v.City != "" && v.State != "":
		return v.City + ", " + v.State
	case v.City != "":
		return v.City
	default:
		return v.State
	}
}

// NormalizeWorkFormat maps a raw work format string to a known WorkFormat.
// Unknown values degrade to HYBRID so the location comparison stays lenient
// rather than failing the whole analysis.
func NormalizeWorkFormat(raw string) (WorkFormat, bool) {
	switch WorkFormat(raw) {
	case WorkFormatRemote, WorkFormatPresential, WorkFormatHybrid:
		return WorkFormat(raw), true
	default:
		return WorkFormatHybrid, false
	}
}
