package gap

import (
	"fmt"
	"strings"

	"github.com/allanbrunobr/nasc-gap-analysis/internal/types"
)

// CompareCertifications runs the fuzzy containment test: a candidate
// certification satisfies a requirement when its name contains the catalog
// name or any of its keywords, case-insensitively. Missing certifications
// are high severity when mandatory, low otherwise.
func (a *Analyzer) CompareCertifications(profile *types.CandidateProfile, required []types.CertificationRequirement) ([]types.Gap, []types.Match) {
	var gaps []types.Gap
	var matches []types.Match

	for _, req := range required {
		if current, ok := findCertification(profile.Certifications, req); ok {
			matches = append(matches, types.Match{
				Type:        types.GapCertification,
				Name:        req.Name,
				Required:    req.Name,
				Current:     current,
				Description: fmt.Sprintf("O candidato possui certificação compatível com %s.", req.Name),
				Category:    types.GapCertification.Category(),
			})
			continue
		}

		severity := types.SeverityLow
		if req.Mandatory {
			severity = types.SeverityHigh
		}
		gaps = append(gaps, types.Gap{
			Type:        types.GapCertification,
			Name:        req.Name,
			Required:    req.Name,
			Severity:    severity,
			Description: fmt.Sprintf("A vaga pede a certificação %s, que o candidato não possui.", req.Name),
			Category:    types.GapCertification.Category(),
		})
	}
	return gaps, matches
}

func findCertification(owned []string, req types.CertificationRequirement) (string, bool) {
	terms := append([]string{strings.ToLower(req.Name)}, req.Keywords...)
	for _, cert := range owned {
		lower := strings.ToLower(cert)
		for _, term := range terms {
			if strings.Contains(lower, term) {
				return cert, true
			}
		}
	}
	return "", false
}
