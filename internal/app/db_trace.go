package app

import "strings"

const maxTracedQueryLength = 512

// formatDBQueryForTrace collapses whitespace runs so multi-line SQL
// reads as one line in span attributes, truncating very long queries.
func formatDBQueryForTrace(query string) string {
	normalized := strings.Join(strings.Fields(query), " ")
	if len(normalized) <= maxTracedQueryLength {
		return normalized
	}

	return normalized[:maxTracedQueryLength] + "..."
}
