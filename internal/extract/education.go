package extract

import (
	"strings"

	"github.com/allanbrunobr/nasc-gap-analysis/internal/catalog"
	"github.com/allanbrunobr/nasc-gap-analysis/internal/types"
)

// extractEducation scans for education qualifiers and keeps the highest
// ordinal mentioned. Returns nil when the vacancy names no education level.
func (e *Extractor) extractEducation(text string) *types.EducationRequirement {
	var (
		best     types.EducationLevel
		bestSpan span
		found    bool
	)

	for _, kw := range catalog.EducationKeywords {
		idx := strings.Index(text, kw.Phrase)
		if idx < 0 {
			continue
		}
		if !found || kw.Level.Ordinal() > best.Ordinal() {
			best = kw.Level
			bestSpan = span{start: idx, end: idx + len(kw.Phrase)}
			found = true
		}
	}
	if !found {
		return nil
	}

	return &types.EducationRequirement{
		Level:     best,
		Mandatory: containsAny(windowAround(text, bestSpan), catalog.MandatoryTriggers),
	}
}
