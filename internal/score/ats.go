package score

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/allanbrunobr/nasc-gap-analysis/internal/types"
)

// ATSResult is the 0-100 profile completeness score an applicant tracking
// system would assign, with the per-section breakdown and the issues found.
type ATSResult struct {
	Score            int            `json:"score"`
	Status           string         `json:"status"`
	SectionScores    map[string]int `json:"sectionScores"`
	Issues           []string       `json:"issues"`
	DetectedIndustry string         `json:"detectedIndustry,omitempty"`
}

var (
	validDatePattern  = regexp.MustCompile(`^\d{4}-\d{2}`)
	quantifiedPattern = regexp.MustCompile(`\d+%|R\$\s*\d+|\d+\s*(mil|milh[õo]es)`)
	numericPattern    = regexp.MustCompile(`^\d+$`)
)

// actionVerbs are the recommended opening verbs for experience descriptions.
var actionVerbs = []string{
	"liderou", "gerenciou", "coordenou", "supervisionou", "treinou",
	"desenvolvi", "desenvolveu", "implementei", "implementou", "programei", "programou",
	"configurei", "configurou", "otimizei", "otimizou", "automatizei", "automatizou",
	"integrei", "integrou", "migrei", "migrou", "testei", "testou",
	"analisou", "avaliou", "identificou", "mapeou", "pesquisou",
	"melhorou", "aumentou", "reduziu", "economizou", "acelerou", "padronizou",
	"criou", "projetou", "elaborou", "construiu", "estabeleceu", "lançou",
	"apresentou", "comunicou", "negociou", "documentou", "reportou", "colaborou",
}

// problematicTerms map abbreviations that confuse tracking systems to their
// expanded forms.
var problematicTerms = map[string]string{
	"JS":   "JavaScript",
	"TS":   "TypeScript",
	"RH":   "Recursos Humanos",
	"TI":   "Tecnologia da Informação",
	"BI":   "Business Intelligence",
	"CRUD": "Create, Read, Update, Delete",
	"POC":  "Proof of Concept",
	"MVP":  "Minimum Viable Product",
	"KPI":  "Key Performance Indicator",
	"ROI":  "Return on Investment",
}

// industryKeywords detect the candidate's area and feed the keyword section.
var industryKeywords = map[string][]string{
	"tecnologia": {
		"desenvolvimento", "programação", "software", "sistemas", "backend", "frontend",
		"fullstack", "api", "rest", "microserviços", "cloud", "devops", "agile", "scrum",
	},
	"vendas": {
		"vendas", "metas", "clientes", "negociação", "prospecção", "crm", "pipeline",
		"conversão", "faturamento", "b2b", "b2c",
	},
	"administrativo": {
		"administração", "gestão", "processos", "documentação", "controle", "rotinas",
		"relatórios", "planilhas", "atendimento",
	},
	"marketing": {
		"marketing", "digital", "campanhas", "branding", "conteúdo", "seo", "redes sociais",
		"métricas", "leads", "funil", "persona",
	},
}

var stopWords = map[string]bool{
	"para": true, "com": true, "por": true, "que": true, "dos": true, "das": true,
	"mas": true, "mais": true, "como": true, "foi": true, "são": true, "ter": true,
	"tem": true, "sido": true, "quando": true, "muito": true, "nos": true, "seu": true,
	"uma": true, "sua": true, "pela": true, "pelo": true, "aos": true, "nas": true,
}

// ATSScore computes the candidate profile's tracking-system readiness across
// seven weighted sections: contact 10, summary 15, experience 25, education
// 10, skills 15, formatting 15, keywords 10.
func ATSScore(profile *types.CandidateProfile) ATSResult {
	sections := make(map[string]int)
	issues := []string{}

	// Contact (10)
	contact := 0
	if profile.Email != "" {
		contact += 4
	} else {
		issues = append(issues, "Email não informado")
	}
	if profile.Phone != "" {
		contact += 3
	} else {
		issues = append(issues, "Telefone não informado")
	}
	if profile.City != "" && profile.State != "" {
		contact += 3
	} else {
		issues = append(issues, "Localização incompleta")
	}
	sections["contact"] = contact

	// Summary (15)
	summary := 0
	switch {
	case len(profile.Summary) > 50:
		summary = 10
		if len(extractKeywords(profile.Summary)) > 5 {
			summary += 5
		}
	case profile.Summary != "":
		summary = 5
		issues = append(issues, "Resumo profissional muito curto")
	default:
		issues = append(issues, "Resumo profissional não encontrado")
	}
	sections["summary"] = summary

	// Experience (25)
	experience := 0
	if len(profile.Experiences) > 0 {
		experience = 10

		validDates := 0
		verbOpenings := 0
		quantified := 0
		for _, exp := range profile.Experiences {
			if validDatePattern.MatchString(exp.StartDate) {
				validDates++
			}
			activity := strings.ToLower(exp.Activity)
			for _, verb := range actionVerbs {
				if strings.Contains(activity, verb) {
					verbOpenings++
					break
				}
			}
			if quantifiedPattern.MatchString(exp.Activity) {
				quantified++
			}
		}

		if validDates == len(profile.Experiences) {
			experience += 5
		} else {
			issues = append(issues, "Algumas experiências têm datas em formato incorreto")
		}
		if float64(verbOpenings) >= float64(len(profile.Experiences))*0.7 {
			experience += 5
		} else {
			issues = append(issues, "Poucas experiências começam com verbos de ação")
		}
		if quantified > 0 {
			experience += 5
		} else {
			issues = append(issues, "Adicione conquistas quantificadas às experiências")
		}
	} else {
		issues = append(issues, "Nenhuma experiência profissional cadastrada")
	}
	sections["experience"] = experience

	// Education (10)
	education := 0
	if len(profile.Education) > 0 {
		education = 7
		complete := true
		for _, ed := range profile.Education {
			if ed.Institution == "" || ed.Course == "" {
				complete = false
				break
			}
		}
		if complete {
			education += 3
		} else {
			issues = append(issues, "Informações de formação incompletas")
		}
	} else {
		issues = append(issues, "Formação acadêmica não informada")
	}
	sections["education"] = education

	// Skills (15)
	skillsScore := 0
	if len(profile.HardSkills) > 0 {
		skillsScore += 7
		if len(profile.HardSkills) >= 5 {
			skillsScore += 3
		}
	} else {
		issues = append(issues, "Nenhuma habilidade técnica cadastrada")
	}
	if len(profile.SoftSkills) > 0 {
		skillsScore += 3
		if len(profile.SoftSkills) >= 3 {
			skillsScore += 2
		}
	} else {
		issues = append(issues, "Nenhuma habilidade comportamental cadastrada")
	}
	sections["skills"] = skillsScore

	// Formatting (15): deduct one point per problematic abbreviation found.
	formatting := 15
	profileText := profileFullText(profile)
	for term, replacement := range problematicTerms {
		if containsWord(profileText, term) {
			formatting--
			issues = append(issues, fmt.Sprintf("Substitua '%s' por '%s'", term, replacement))
		}
	}
	if formatting < 0 {
		formatting = 0
	}
	sections["formatting"] = formatting

	// Keywords (10)
	industry := detectIndustry(profile)
	keywordScore := 5
	if industry != "" {
		matching := 0
		lower := strings.ToLower(profileText)
		for _, kw := range industryKeywords[industry] {
			if strings.Contains(lower, kw) {
				matching++
			}
		}
		switch {
		case matching >= 10:
			keywordScore = 10
		case matching >= 5:
			keywordScore = 7
		case matching >= 3:
			keywordScore = 5
		default:
			keywordScore = 3
			issues = append(issues, fmt.Sprintf("Adicione mais palavras-chave da área de %s", industry))
		}
	}
	sections["keywords"] = keywordScore

	total := contact + summary + experience + education + skillsScore + formatting + keywordScore

	status := "Precisa melhorar"
	switch {
	case total >= 85:
		status = "Excelente"
	case total >= 70:
		status = "Bom"
	case total >= 50:
		status = "Regular"
	}

	return ATSResult{
		Score:            total,
		Status:           status,
		SectionScores:    sections,
		Issues:           issues,
		DetectedIndustry: industry,
	}
}

// detectIndustry picks the industry with the most keyword matches over the
// profile text, or empty when nothing matches.
func detectIndustry(profile *types.CandidateProfile) string {
	text := strings.ToLower(profileFullText(profile))

	best, bestCount := "", 0
	for industry, keywords := range industryKeywords {
		count := 0
		for _, kw := range keywords {
			if strings.Contains(text, kw) {
				count++
			}
		}
		if count > bestCount || (count == bestCount && count > 0 && industry < best) {
			best, bestCount = industry, count
		}
	}
	if bestCount == 0 {
		return ""
	}
	return best
}

func profileFullText(profile *types.CandidateProfile) string {
	var b strings.Builder
	b.WriteString(profile.Summary)
	for _, exp := range profile.Experiences {
		b.WriteString(" ")
		b.WriteString(exp.Position)
		b.WriteString(" ")
		b.WriteString(exp.Activity)
	}
	for _, skill := range profile.HardSkills {
		b.WriteString(" ")
		b.WriteString(skill)
	}
	return b.String()
}

// extractKeywords splits text into distinct meaningful words (length >= 4,
// not a stop word, not numeric).
func extractKeywords(text string) []string {
	cleaned := strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == ' ' || r >= 0x80 {
			return r
		}
		return ' '
	}, strings.ToLower(text))

	seen := make(map[string]bool)
	var keywords []string
	for _, word := range strings.Fields(cleaned) {
		if len(word) < 4 || stopWords[word] || seen[word] || numericPattern.MatchString(word) {
			continue
		}
		seen[word] = true
		keywords = append(keywords, word)
	}
	return keywords
}

// containsWord checks for term as a standalone token, case-sensitively, so
// "TS" does not fire inside "TypeScript".
func containsWord(text, term string) bool {
	for _, field := range strings.FieldsFunc(text, func(r rune) bool {
		return r == ' ' || r == ',' || r == '.' || r == ';' || r == '(' || r == ')' || r == '\n'
	}) {
		if field == term {
			return true
		}
	}
	return false
}
