package extract

import (
	"strconv"

	"github.com/allanbrunobr/nasc-gap-analysis/internal/catalog"
)

// defaultExperienceYears applies when no textual pattern matched but the
// vacancy explicitly flags that it requires experience.
const defaultExperienceYears = 2

// extractExperienceYears tries the ordered experience patterns against the
// lowered text and returns the first numeric match. With no match, an
// explicit requires-experience flag defaults to two years; otherwise the
// vacancy has no experience requirement.
func (e *Extractor) extractExperienceYears(text string, requiresExperience bool) int {
	for _, pattern := range catalog.ExperiencePatterns {
		m := pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		years, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		return years
	}
	if requiresExperience {
		return defaultExperienceYears
	}
	return 0
}
