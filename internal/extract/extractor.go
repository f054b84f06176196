// Package extract turns vacancy free text into structured requirement
// records. Extraction is deterministic heuristic matching over the catalog
// vocabularies: phrasing outside the catalogs is missed by contract, and no
// free-form language understanding is attempted.
package extract

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/allanbrunobr/nasc-gap-analysis/internal/catalog"
	"github.com/allanbrunobr/nasc-gap-analysis/internal/types"
)

// triggerWindow is how far (in bytes of lowered text) a mandatory trigger
// phrase may sit from a mention and still count as adjacent.
const triggerWindow = 60

// Extractor scans vacancy text against the catalog vocabularies.
type Extractor struct {
	catalog *catalog.Catalog
	cleaner *Cleaner
	logger  *zap.Logger
}

// NewExtractor creates an extractor over the given catalog.
func NewExtractor(cat *catalog.Catalog, logger *zap.Logger) *Extractor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Extractor{
		catalog: cat,
		cleaner: NewCleaner(),
		logger:  logger,
	}
}

// Extract derives the structured requirements from the vacancy's description
// and qualification text.
func (e *Extractor) Extract(v *types.Vacancy) types.Requirements {
	text := e.cleaner.CleanToText(v.Description + "\n" + v.Qualification)
	lower := strings.ToLower(text)

	reqs := types.Requirements{
		Skills:          e.extractSkills(lower),
		ExperienceYears: e.extractExperienceYears(lower, v.RequiresExperience),
		Education:       e.extractEducation(lower),
		Languages:       e.extractLanguages(lower),
		Certifications:  e.extractCertifications(lower),
	}

	e.logger.Debug("extracted vacancy requirements",
		zap.String("vacancy_id", v.ID.String()),
		zap.Int("skills", len(reqs.Skills)),
		zap.Int("experience_years", reqs.ExperienceYears),
		zap.Int("languages", len(reqs.Languages)),
		zap.Int("certifications", len(reqs.Certifications)),
	)
	return reqs
}

// span is a byte range in the lowered vacancy text.
type span struct {
	start, end int
}

func (s span) within(other span) bool {
	return s.start >= other.start && s.end <= other.end
}

// findOccurrences returns all occurrences of term in text that sit on word
// boundaries. Both arguments must already be lowercase.
func findOccurrences(text, term string) []span {
	if term == "" {
		return nil
	}
	var spans []span
	offset := 0
	for {
		idx := strings.Index(text[offset:], term)
		if idx < 0 {
			break
		}
		start := offset + idx
		end := start + len(term)
		if boundaryBefore(text, start) && boundaryAfter(text, end) {
			spans = append(spans, span{start: start, end: end})
		}
		offset = start + 1
	}
	return spans
}

func boundaryBefore(text string, idx int) bool {
	if idx == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(text[:idx])
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

func boundaryAfter(text string, idx int) bool {
	if idx >= len(text) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(text[idx:])
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

// windowAround returns the text surrounding s, extended by triggerWindow
// bytes on each side, clamped to valid UTF-8 boundaries.
func windowAround(text string, s span) string {
	start := s.start - triggerWindow
	if start < 0 {
		start = 0
	}
	for start > 0 && !utf8.RuneStart(text[start]) {
		start--
	}
	end := s.end + triggerWindow
	if end > len(text) {
		end = len(text)
	}
	for end < len(text) && !utf8.RuneStart(text[end]) {
		end--
	}
	return text[start:end]
}

// containsAny reports whether any of the terms occurs as a substring.
func containsAny(text string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(text, t) {
			return true
		}
	}
	return false
}
