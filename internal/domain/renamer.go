package domain

import (
	"regexp"
	"strconv"

	m "veil.dev/pkg/veil/internal/model"
)

const anonymizedPrefix = "var"

// identifierPattern matches ASCII identifiers that start at a word boundary,
// so the tail of a number such as 0xFF or 10L is never picked up.
var identifierPattern = regexp.MustCompile(`\b[A-Za-z_][A-Za-z0-9_]*`)

// renamer assigns anonymized names in order of first appearance. Call sites
// are renamed like any other identifier so they keep matching their
// definitions.
type renamer struct {
	profile     m.Profile
	names       map[string]string
	occurrences int
}

func newRenamer(profile m.Profile) *renamer {
	return &renamer{
		profile: profile,
		names:   make(map[string]string),
	}
}

// rename rewrites every non-reserved identifier in text in a single pass.
// Placeholder tokens carry no identifier characters and are skipped naturally.
func (r *renamer) rename(text string) string {
	return identifierPattern.ReplaceAllStringFunc(text, func(identifier string) string {
		if r.profile.IsKeyword(identifier) {
			return identifier
		}

		r.occurrences++

		name, ok := r.names[identifier]
		if !ok {
			name = anonymizedPrefix + strconv.Itoa(len(r.names)+1)
			r.names[identifier] = name
		}

		return name
	})
}

func (r *renamer) distinct() int {
	return len(r.names)
}
