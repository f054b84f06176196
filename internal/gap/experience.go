package gap

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/allanbrunobr/nasc-gap-analysis/internal/types"
)

// dateLayout is the "YYYY-MM" format used by profile experience entries.
const dateLayout = "2006-01"

// daysPerYear converts day counts to years under the documented 30-day-month
// approximation (12 × 30). Experience totals are intentionally not
// calendar-exact.
const daysPerYear = 360.0

// CompareExperience sums the candidate's experience and compares it against
// the required number of years. A requirement of zero years produces no
// records. A deficit is always a high severity gap.
func (a *Analyzer) CompareExperience(profile *types.CandidateProfile, requiredYears int) ([]types.Gap, []types.Match) {
	if requiredYears <= 0 {
		return nil, nil
	}

	total := a.totalExperienceYears(profile)
	name := "Experiência profissional"
	required := fmt.Sprintf("%d anos", requiredYears)
	current := fmt.Sprintf("%.1f anos", total)

	if total >= float64(requiredYears) {
		return nil, []types.Match{{
			Type:        types.GapExperience,
			Name:        name,
			Required:    required,
			Current:     current,
			Description: fmt.Sprintf("O candidato possui %.1f anos de experiência, atendendo ao mínimo de %d anos.", total, requiredYears),
			Category:    types.GapExperience.Category(),
		}}
	}

	return []types.Gap{{
		Type:        types.GapExperience,
		Name:        name,
		Required:    required,
		Current:     current,
		Severity:    types.SeverityHigh,
		Description: fmt.Sprintf("A vaga exige %d anos de experiência; o candidato possui %.1f anos.", requiredYears, total),
		Category:    types.GapExperience.Category(),
	}}, nil
}

// totalExperienceYears sums (end - start) over every experience entry,
// closing open entries at now. Entries with a malformed start date contribute
// zero and are logged rather than failing the analysis.
func (a *Analyzer) totalExperienceYears(profile *types.CandidateProfile) float64 {
	now := a.now()
	var totalDays float64

	for _, exp := range profile.Experiences {
		start, err := time.Parse(dateLayout, exp.StartDate)
		if err != nil {
			a.logger.Warn("skipping experience entry with malformed start date",
				zap.String("start_date", exp.StartDate),
				zap.String("position", exp.Position),
			)
			continue
		}

		end := now
		if exp.EndDate != "" {
			end, err = time.Parse(dateLayout, exp.EndDate)
			if err != nil {
				a.logger.Warn("open-ending experience entry with malformed end date",
					zap.String("end_date", exp.EndDate),
					zap.String("position", exp.Position),
				)
				end = now
			}
		}

		if end.Before(start) {
			continue
		}
		totalDays += end.Sub(start).Hours() / 24
	}

	return totalDays / daysPerYear
}
