package utils

import "strings"

const excerptLength = 150

// DeriveExcerpt returns the first 150 characters of content with an
// ellipsis suffix. Content at or under the limit is returned as-is.
func DeriveExcerpt(content string) string {
	runes := []rune(content)
	if len(runes) <= excerptLength {
		return content
	}
	return string(runes[:excerptLength]) + "..."
}

// CountWords counts whitespace-delimited tokens.
func CountWords(content string) int {
	return len(strings.Fields(content))
}
