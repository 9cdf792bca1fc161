package search

import (
	"iter"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Lines yields each line of content without its terminator. Lines end at
// "\n" or "\r\n"; a trailing terminator does not start another line.
func Lines(content string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for len(content) > 0 {
			line := content
			rest := ""
			if i := strings.IndexByte(content, '\n'); i >= 0 {
				line, rest = content[:i], content[i+1:]
				line = strings.TrimSuffix(line, "\r")
			}
			if !yield(line) {
				return
			}
			content = rest
		}
	}
}

// Search returns every line of content that contains query exactly.
func Search(query, content string) []string {
	var result []string
	for line := range Lines(content) {
		if strings.Contains(line, query) {
			result = append(result, line)
		}
	}
	return result
}

// SearchCaseInsensitive returns every line of content that contains query
// once both are lowercased. The returned lines keep their original case.
func SearchCaseInsensitive(query, content string) []string {
	lower := cases.Lower(language.Und)
	query = lower.String(query)

	var result []string
	for line := range Lines(content) {
		if strings.Contains(lower.String(line), query) {
			result = append(result, line)
		}
	}
	return result
}
