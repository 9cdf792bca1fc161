package search

// Func returns the lines of content that match query.
type Func func(query, content string) []string

// For returns the search function for the requested case mode.
func For(caseSensitive bool) Func {
	if caseSensitive {
		return Search
	}
	return SearchCaseInsensitive
}
