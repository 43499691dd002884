package planner

import (
	"html"
	"strings"
)

// Glyphs the upstream content pipeline is known to inject into activity
// strings. Stripped before anything reaches the presentation layer.
var strayGlyphs = strings.NewReplacer(
	"✓", "",
	"✔", "",
	"✗", "",
	"✘", "",
	"➤", "",
	"•", "",
)

// CleanActivity decodes HTML entities, strips stray glyphs and collapses
// whitespace. A string already free of entities and glyphs comes back
// unchanged, so applying it twice is a no-op.
func CleanActivity(s string) string {
	s = html.UnescapeString(s)
	s = strayGlyphs.Replace(s)
	return strings.Join(strings.Fields(s), " ")
}

func cleanAll(activities DayActivities) []string {
	out := make([]string, 0, len(activities))
	for _, a := range activities {
		if cleaned := CleanActivity(a); cleaned != "" {
			out = append(out, cleaned)
		}
	}
	return out
}
