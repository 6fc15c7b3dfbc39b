package domain

import (
	"regexp"
	"strconv"
)

var (
	// A backslash consumes the next character, so \" never closes a literal.
	// A literal ends at its line unless the newline is escaped; a quote with
	// no closing partner on its line does not match and stays in the text.
	quotedLiteral = regexp.MustCompile(`"(?:[^"\\\n]|\\[\s\S])*"`)

	// Triple-quoted spans are tried first so their inner quotes and newlines stay inside.
	longOrQuotedLiteral = regexp.MustCompile(`"""[\s\S]*?"""|"(?:[^"\\\n]|\\[\s\S])*"`)
)

// maskLiterals replaces double-quoted literals with tokens of ns, left to right.
func maskLiterals(text string, longStrings bool, ns namespace) (string, *placeholders) {
	literals := newPlaceholders(ns)

	pattern := quotedLiteral
	if longStrings {
		pattern = longOrQuotedLiteral
	}

	masked := pattern.ReplaceAllStringFunc(text, literals.add)

	return masked, literals
}

// restoreLiterals puts literals back into text. When preserve is false each
// literal becomes "varN", where N is its 1-based discovery order; equal
// literals get different numbers.
func restoreLiterals(text string, literals *placeholders, preserve bool) string {
	if preserve {
		return literals.original(text)
	}

	return literals.restore(text, func(index int, _ string) string {
		return strconv.Quote(anonymizedPrefix + strconv.Itoa(index+1))
	})
}
