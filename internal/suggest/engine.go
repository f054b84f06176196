// Package suggest maps each gap to its remediation template. The mapping is
// a pure lookup on the gap type; exactly one suggestion is produced per gap
// and the output order always mirrors the input gap list.
package suggest

import (
	"fmt"

	"github.com/allanbrunobr/nasc-gap-analysis/internal/types"
)

// template is the fixed remediation recipe for one gap type.
type template struct {
	estimatedTime string
	actions       func(gapName string) []types.SuggestedAction
}

var templates = map[types.GapType]template{
	types.GapHardSkill: {
		estimatedTime: "30-60 dias",
		actions: func(name string) []types.SuggestedAction {
			return []types.SuggestedAction{
				{
					Type:        "course",
					Description: fmt.Sprintf("Fazer um curso online de %s", name),
					Provider:    "Udemy, Alura ou Coursera",
					Duration:    "20-40 horas",
					Cost:        "R$ 30-200",
				},
				{
					Type:        "practice",
					Description: fmt.Sprintf("Criar um projeto prático usando %s e publicar no GitHub", name),
					Duration:    "2-4 semanas",
					Cost:        "Gratuito",
				},
			}
		},
	},
	types.GapCertification: {
		estimatedTime: "60-90 dias",
		actions: func(name string) []types.SuggestedAction {
			return []types.SuggestedAction{
				{
					Type:        "preparation",
					Description: fmt.Sprintf("Fazer um curso preparatório para %s", name),
					Provider:    "Plataforma oficial da certificadora",
					Duration:    "40-60 horas",
					Cost:        "R$ 100-500",
				},
				{
					Type:        "exam",
					Description: fmt.Sprintf("Agendar e realizar o exame de %s", name),
					Duration:    "1 dia",
					Cost:        "R$ 300-1500",
				},
			}
		},
	},
	types.GapLanguage: {
		estimatedTime: "3-6 meses",
		actions: func(name string) []types.SuggestedAction {
			return []types.SuggestedAction{
				{
					Type:        "course",
					Description: fmt.Sprintf("Matricular-se em um curso de %s", name),
					Provider:    "Duolingo, Cambly ou escola de idiomas",
					Duration:    "3-6 meses",
					Cost:        "R$ 0-300/mês",
				},
				{
					Type:        "practice",
					Description: fmt.Sprintf("Praticar conversação em %s semanalmente", name),
					Duration:    "Contínuo",
					Cost:        "R$ 0-100/mês",
				},
			}
		},
	},
	types.GapExperience: {
		estimatedTime: "6-12 meses",
		actions: func(string) []types.SuggestedAction {
			return []types.SuggestedAction{
				{
					Type:        "freelance",
					Description: "Aceitar projetos freelance na área para acumular experiência comprovável",
					Provider:    "Workana, 99Freelas ou Upwork",
					Duration:    "6-12 meses",
					Cost:        "Gratuito",
				},
				{
					Type:        "portfolio",
					Description: "Montar um portfólio com os projetos realizados",
					Duration:    "1-2 semanas",
					Cost:        "Gratuito",
				},
			}
		},
	},
	types.GapEducation: {
		estimatedTime: "1-4 anos",
		actions: func(string) []types.SuggestedAction {
			return []types.SuggestedAction{
				{
					Type:        "formal_education",
					Description: "Ingressar em um programa de formação no nível exigido pela vaga",
					Provider:    "Universidades e centros de ensino técnico",
					Duration:    "1-4 anos",
					Cost:        "Variável",
				},
				{
					Type:        "alternative_credential",
					Description: "Buscar certificados de extensão ou bootcamps reconhecidos na área como credencial alternativa",
					Duration:    "3-9 meses",
					Cost:        "R$ 0-5000",
				},
			}
		},
	},
	types.GapLocation: {
		estimatedTime: "Prazo variável",
		actions: func(string) []types.SuggestedAction {
			return []types.SuggestedAction{
				{
					Type:        "relocation",
					Description: "Avaliar a possibilidade de mudança para a região da vaga",
					Duration:    "Variável",
					Cost:        "Variável",
				},
				{
					Type:        "remote_search",
					Description: "Priorizar vagas remotas ou híbridas compatíveis com sua localização",
					Duration:    "Contínuo",
					Cost:        "Gratuito",
				},
			}
		},
	},
}

// ForGaps produces exactly one suggestion per gap, in the same order as the
// input list. Downstream plan items join on the gap's composite ID.
func ForGaps(gaps []types.Gap) []types.Suggestion {
	suggestions := make([]types.Suggestion, 0, len(gaps))
	for _, g := range gaps {
		tpl, ok := templates[g.Type]
		if !ok {
			suggestions = append(suggestions, types.Suggestion{GapID: g.ID()})
			continue
		}
		suggestions = append(suggestions, types.Suggestion{
			GapID:         g.ID(),
			Actions:       tpl.actions(g.Name),
			EstimatedTime: tpl.estimatedTime,
		})
	}
	return suggestions
}
