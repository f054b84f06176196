package extract

import (
	"strings"

	"github.com/allanbrunobr/nasc-gap-analysis/internal/catalog"
	"github.com/allanbrunobr/nasc-gap-analysis/internal/types"
)

// extractCertifications matches the certification catalog's keyword sets
// against the lowered text. The keyword set travels with the requirement so
// the gap comparison can run its fuzzy containment test against candidate
// certification names.
func (e *Extractor) extractCertifications(text string) []types.CertificationRequirement {
	var reqs []types.CertificationRequirement

	for _, cert := range e.catalog.Certifications {
		terms := append([]string{strings.ToLower(cert.Name)}, cert.Keywords...)

		mention, found := firstSynonymMention(text, terms)
		if !found {
			continue
		}

		reqs = append(reqs, types.CertificationRequirement{
			Name:      cert.Name,
			Keywords:  cert.Keywords,
			Mandatory: containsAny(windowAround(text, mention), catalog.MandatoryTriggers),
		})
	}
	return reqs
}
