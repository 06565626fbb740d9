// Package retrieval provides the in-memory semantic index behind the
// fallback path. Event summaries and festival info sections are embedded
// once at startup (and again on catalog sync) and ranked by cosine
// similarity at query time.
package retrieval

import (
	"fmt"
	"os"
	"strings"
)

const (
	// maxSections bounds how many festival info sections are indexed.
	maxSections = 12

	// minSectionLen drops fragments too short to be useful context.
	minSectionLen = 30

	// maxSectionLen keeps each section small enough to fit the generation
	// context budget.
	maxSectionLen = 600

	sectionMarker = "### SECTION:"
)

// LoadFestivalSections reads the festival info document and splits it into
// indexable sections.
func LoadFestivalSections(path string) ([]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read festival info: %w", err)
	}
	return ParseSections(string(raw)), nil
}

// ParseSections splits a festival info document on "### SECTION: NAME ###"
// markers. The section name is folded into the content so each chunk carries
// its own context.
func ParseSections(content string) []string {
	var sections []string

	for _, raw := range strings.Split(content, sectionMarker) {
		section := strings.TrimSpace(raw)
		if len(section) < minSectionLen {
			continue
		}

		section = strings.TrimSpace(strings.TrimPrefix(section, "###"))
		if name, body, ok := strings.Cut(section, "###"); ok {
			section = strings.TrimSpace(name) + ": " + strings.TrimSpace(body)
		}

		if len(section) > maxSectionLen {
			section = section[:maxSectionLen]
		}

		sections = append(sections, section)
		if len(sections) >= maxSections {
			break
		}
	}

	return sections
}
