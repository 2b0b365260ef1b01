package formatter

import "strings"

// normalizeRules are applied in order. The exclusion-of-disjunction
// rewrite must run after the template rewrites it builds on, and the
// parenthesis cleanup must run last so template markers are matched
// with their opening parenthesis intact.
var normalizeRules = []struct {
	from string
	to   string
}{
	{"Include items that match ANY of: (", "Search for documents containing any of the following: "},
	{"Include items that match ALL of: (", "Search for documents containing all of the following: "},
	{"EXCLUDE items where: (", "but exclude documents where "},
	{"but exclude documents where Search for documents containing any of the following: ", "but exclude documents containing any of: "},
	{"; ", ", "},
	{")", ""},
	{"(", ""},
}

// Normalize rewrites deterministic technical text into its narrative
// form. It is the standalone entry point for text produced elsewhere or
// authored by hand; Parse derives narrative text from the tree instead.
//
// The rewrite matches the fixed phrase markers of the deterministic
// renderer, so free-form input passes through mostly unchanged apart
// from sentence cleanup.
func Normalize(text string) string {
	narrative := text
	for _, rule := range normalizeRules {
		narrative = strings.ReplaceAll(narrative, rule.from, rule.to)
	}
	return sentence(narrative)
}
