package textutil

import (
	"regexp"
	"strings"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

func NormalizeName(name string) string {
	name = strings.ToLower(name)
	name = strings.Trim(name, " \n\t")
	name = whitespaceRegex.ReplaceAllString(name, " ")
	return name
}

// MatchName reports whether the normalized form of name contains the
// normalized form of query. Used for client-side instructor filtering.
func MatchName(name, query string) bool {
	return strings.Contains(NormalizeName(name), NormalizeName(query))
}
