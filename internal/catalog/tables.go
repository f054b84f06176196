package catalog

import (
	"regexp"

	"github.com/allanbrunobr/nasc-gap-analysis/internal/types"
)

// ExperiencePatterns is the ordered list of textual patterns tried against
// the vacancy text to find a required number of years. The first numeric
// match wins.
var ExperiencePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\d+)\s*anos?\s+de\s+experi[êe]ncia`),
	regexp.MustCompile(`(?i)experi[êe]ncia\s+de\s+(\d+)\s*anos?`),
	regexp.MustCompile(`(?i)m[íi]nimo\s+de\s+(\d+)\s*anos?`),
	regexp.MustCompile(`(?i)pelo\s+menos\s+(\d+)\s*anos?`),
}

// MandatoryTriggers are the phrases that flag a nearby requirement as
// non-negotiable.
var MandatoryTriggers = []string{
	"obrigatório",
	"obrigatória",
	"obrigatorio",
	"obrigatoria",
	"essencial",
	"imprescindível",
	"imprescindivel",
	"indispensável",
	"indispensavel",
}

// SkillMandatoryPrefixes are trigger phrases that, placed immediately before
// a skill mention, flag the skill as mandatory ("experiência em React",
// "domínio de Docker").
var SkillMandatoryPrefixes = []string{
	"experiência em",
	"experiencia em",
	"experiência com",
	"experiencia com",
	"domínio de",
	"dominio de",
	"domínio em",
	"dominio em",
}

// FluencyRule associates fluency keywords with the proficiency level they
// imply. Rules are checked in priority order (fluent > intermediate >
// beginner); a language mentioned with no qualifier defaults to intermediate.
type FluencyRule struct {
	Level    types.LanguageLevel
	Keywords []string
}

// FluencyRules in priority order.
var FluencyRules = []FluencyRule{
	{Level: types.LanguageFluent, Keywords: []string{"fluente", "fluência", "fluencia", "avançado", "avancado", "nativo", "proficiente"}},
	{Level: types.LanguageIntermediate, Keywords: []string{"intermediário", "intermediaria", "intermediario", "intermediate"}},
	{Level: types.LanguageBeginner, Keywords: []string{"básico", "basico", "iniciante", "beginner"}},
}

// EducationKeyword maps a textual qualifier to the education level it
// implies. The extractor keeps the highest ordinal among all mentions.
type EducationKeyword struct {
	Phrase string
	Level  types.EducationLevel
}

// EducationKeywords scanned against vacancy text.
var EducationKeywords = []EducationKeyword{
	{Phrase: "doutorado", Level: types.EducationDoctorate},
	{Phrase: "mestrado", Level: types.EducationMasters},
	{Phrase: "pós-graduação", Level: types.EducationPostgraduate},
	{Phrase: "pos-graduação", Level: types.EducationPostgraduate},
	{Phrase: "pós graduação", Level: types.EducationPostgraduate},
	{Phrase: "especialização", Level: types.EducationPostgraduate},
	{Phrase: "especializacao", Level: types.EducationPostgraduate},
	{Phrase: "licenciatura", Level: types.EducationTeaching},
	{Phrase: "bacharelado", Level: types.EducationBachelors},
	{Phrase: "ensino superior", Level: types.EducationUndergraduate},
	{Phrase: "superior completo", Level: types.EducationUndergraduate},
	{Phrase: "graduação", Level: types.EducationUndergraduate},
	{Phrase: "graduacao", Level: types.EducationUndergraduate},
	{Phrase: "tecnólogo", Level: types.EducationTechnologist},
	{Phrase: "tecnologo", Level: types.EducationTechnologist},
	{Phrase: "curso técnico", Level: types.EducationTechnical},
	{Phrase: "curso tecnico", Level: types.EducationTechnical},
	{Phrase: "ensino técnico", Level: types.EducationTechnical},
	{Phrase: "ensino tecnico", Level: types.EducationTechnical},
	{Phrase: "ensino médio", Level: types.EducationHighSchool},
	{Phrase: "ensino medio", Level: types.EducationHighSchool},
	{Phrase: "ensino fundamental", Level: types.EducationElementary},
}

// MetroClusters groups municipalities treated as interchangeable for
// presential-location comparison. Entries are lowercase; accentless variants
// are listed alongside the accented spellings.
var MetroClusters = map[string][]string{
	"sao_paulo": {
		"são paulo", "sao paulo", "guarulhos", "osasco", "santo andré", "santo andre",
		"são bernardo do campo", "sao bernardo do campo", "são caetano do sul", "sao caetano do sul",
		"barueri", "campinas",
	},
	"rio_de_janeiro": {
		"rio de janeiro", "niterói", "niteroi", "duque de caxias", "nova iguaçu", "nova iguacu",
		"são gonçalo", "sao goncalo",
	},
	"belo_horizonte": {
		"belo horizonte", "contagem", "betim", "nova lima",
	},
	"porto_alegre": {
		"porto alegre", "canoas", "gravataí", "gravatai", "novo hamburgo", "são leopoldo", "sao leopoldo",
	},
	"recife": {
		"recife", "olinda", "jaboatão dos guararapes", "jaboatao dos guararapes", "paulista",
	},
	"salvador": {
		"salvador", "lauro de freitas", "camaçari", "camacari", "simões filho", "simoes filho",
	},
	"curitiba": {
		"curitiba", "são josé dos pinhais", "sao jose dos pinhais", "colombo", "araucária", "araucaria", "pinhais",
	},
}
