package extract

import (
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var collapseWhitespace = regexp.MustCompile(`[ \t]+`)

// Cleaner strips vacancy HTML down to scannable plain text. Vacancy
// descriptions arrive from upstream job boards and often carry markup.
type Cleaner struct {
	policy *bluemonday.Policy
}

// NewCleaner creates a cleaner that strips all HTML.
func NewCleaner() *Cleaner {
	return &Cleaner{policy: bluemonday.StrictPolicy()}
}

// CleanToText removes all HTML and normalizes whitespace.
func (c *Cleaner) CleanToText(html string) string {
	text := c.policy.Sanitize(html)
	text = collapseWhitespace.ReplaceAllString(text, " ")
	text = strings.ReplaceAll(text, "\n\n\n", "\n\n")
	return strings.TrimSpace(text)
}
