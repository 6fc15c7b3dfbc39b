package model

import (
	"sort"
	"strings"
)

// CommentSyntax describes how a language writes comments.
// BlockStart and BlockEnd are empty when the language has no block comments.
type CommentSyntax struct {
	LinePrefix string `yaml:"line"`
	BlockStart string `yaml:"block_start,omitempty"`
	BlockEnd   string `yaml:"block_end,omitempty"`
}

// HasBlock reports whether block comments are configured.
func (c CommentSyntax) HasBlock() bool {
	return c.BlockStart != "" && c.BlockEnd != ""
}

// String renders the syntax for display, e.g. "// /* */".
func (c CommentSyntax) String() string {
	if !c.HasBlock() {
		return c.LinePrefix
	}

	return strings.Join([]string{c.LinePrefix, c.BlockStart, c.BlockEnd}, " ")
}

// Profile is the per-language configuration that drives masking and renaming.
// A Profile is never mutated after the registry that owns it has been built.
type Profile struct {
	Name       string
	Extensions []string
	Comments   CommentSyntax
	// LongStrings enables """...""" literals that may contain bare quotes.
	LongStrings bool
	// CaseInsensitive matches keywords regardless of case (SQL).
	CaseInsensitive bool

	keywords map[string]struct{}
}

// ProfileOption customizes a Profile under construction.
type ProfileOption func(*Profile)

// WithLongStrings enables triple-quoted literals.
func WithLongStrings() ProfileOption {
	return func(p *Profile) {
		p.LongStrings = true
	}
}

// WithCaseInsensitiveKeywords makes keyword matching ignore case.
func WithCaseInsensitiveKeywords() ProfileOption {
	return func(p *Profile) {
		p.CaseInsensitive = true
	}
}

// NewProfile builds a profile with the given reserved words.
func NewProfile(name string, extensions []string, comments CommentSyntax, keywords []string, options ...ProfileOption) Profile {
	profile := Profile{
		Name:       name,
		Extensions: append([]string(nil), extensions...),
		Comments:   comments,
	}

	for _, option := range options {
		option(&profile)
	}

	profile.keywords = make(map[string]struct{}, len(keywords))
	for _, keyword := range keywords {
		profile.keywords[profile.fold(keyword)] = struct{}{}
	}

	return profile
}

// IsKeyword reports whether word must never be renamed.
func (p Profile) IsKeyword(word string) bool {
	_, ok := p.keywords[p.fold(word)]
	return ok
}

// KeywordCount returns the size of the reserved word set.
func (p Profile) KeywordCount() int {
	return len(p.keywords)
}

// Keywords returns the reserved words in sorted order.
func (p Profile) Keywords() []string {
	words := make([]string, 0, len(p.keywords))
	for word := range p.keywords {
		words = append(words, word)
	}

	sort.Strings(words)

	return words
}

func (p Profile) fold(word string) string {
	if p.CaseInsensitive {
		return strings.ToLower(word)
	}

	return word
}
