// Package catalog provides the versioned extraction vocabularies used by the
// requirement extractor. Keyword extraction over free text is inherently
// lossy, so the vocabularies live in YAML documents (embedded defaults,
// overridable from disk) rather than inline logic: fixtures can pin
// extraction behavior independent of catalog growth.
package catalog

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var defaultData embed.FS

// CertificationEntry is one certification in the catalog. Keywords extend
// the fuzzy containment test beyond the display name.
type CertificationEntry struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// LanguageEntry is one language in the catalog with its textual synonyms.
type LanguageEntry struct {
	Name     string   `yaml:"name"`
	Synonyms []string `yaml:"synonyms"`
}

// Catalog bundles the three extraction vocabularies. Skills is kept sorted
// longest-first so multi-word entries win over shorter entries they contain.
type Catalog struct {
	Version        int
	Skills         []string
	Certifications []CertificationEntry
	Languages      []LanguageEntry
}

type skillsDoc struct {
	Version int      `yaml:"version"`
	Skills  []string `yaml:"skills"`
}

type certificationsDoc struct {
	Version        int                  `yaml:"version"`
	Certifications []CertificationEntry `yaml:"certifications"`
}

type languagesDoc struct {
	Version   int             `yaml:"version"`
	Languages []LanguageEntry `yaml:"languages"`
}

// Default loads the embedded vocabulary documents.
func Default() (*Catalog, error) {
	read := func(name string) ([]byte, error) {
		return defaultData.ReadFile("data/" + name)
	}
	return load(read)
}

// Load reads the vocabulary documents from dir, expecting skills.yaml,
// certifications.yaml and languages.yaml.
func Load(dir string) (*Catalog, error) {
	read := func(name string) ([]byte, error) {
		return os.ReadFile(filepath.Join(dir, name))
	}
	return load(read)
}

func load(read func(string) ([]byte, error)) (*Catalog, error) {
	var skills skillsDoc
	if err := unmarshalDoc(read, "skills.yaml", &skills); err != nil {
		return nil, err
	}

	var certs certificationsDoc
	if err := unmarshalDoc(read, "certifications.yaml", &certs); err != nil {
		return nil, err
	}

	var langs languagesDoc
	if err := unmarshalDoc(read, "languages.yaml", &langs); err != nil {
		return nil, err
	}

	c := &Catalog{
		Version:        skills.Version,
		Skills:         skills.Skills,
		Certifications: certs.Certifications,
		Languages:      langs.Languages,
	}
	if len(c.Skills) == 0 {
		return nil, fmt.Errorf("skill catalog is empty")
	}

	// Longest-match-first ordering; ties stay alphabetical for determinism.
	sort.SliceStable(c.Skills, func(i, j int) bool {
		if len(c.Skills[i]) != len(c.Skills[j]) {
			return len(c.Skills[i]) > len(c.Skills[j])
		}
		return c.Skills[i] < c.Skills[j]
	})

	return c, nil
}

func unmarshalDoc(read func(string) ([]byte, error), name string, out any) error {
	data, err := read(name)
	if err != nil {
		return fmt.Errorf("failed to read catalog document %s: %w", name, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse catalog document %s: %w", name, err)
	}
	return nil
}
