// Package domain contains the anonymization pipeline and the batch workflow around it.
package domain

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"veil.dev/pkg/veil/internal/domain/languages"
	m "veil.dev/pkg/veil/internal/model"
)

var (
	// ErrAnonymize wraps an unexpected failure inside a pipeline phase.
	ErrAnonymize = errors.New("anonymization failed")
	// ErrReservedRune is returned for input containing the runes used to build placeholders.
	ErrReservedRune = errors.New("input contains reserved placeholder characters (U+FDD0..U+FDD5)")
)

// Anonymizer replaces identifiers in source text with var1, var2, ...
// Implementations keep no state between calls and are safe for concurrent use.
type Anonymizer interface {
	// Anonymize is the plain entry point: empty input yields empty output.
	Anonymize(sourceText, fileName string, preserveStringLiterals, preserveComments bool) (string, error)
	// Run anonymizes src and reports what was replaced.
	Run(src []byte, fileName string, opts m.Options) (m.Result, error)
	// Profile returns the language profile selected for fileName.
	Profile(fileName string) m.Profile
}

type anonymizer struct {
	registry *languages.Registry
}

// NewAnonymizer creates an Anonymizer backed by registry.
// A nil registry selects the built-in profiles.
func NewAnonymizer(registry *languages.Registry) Anonymizer {
	if registry == nil {
		registry = languages.Builtin()
	}

	return &anonymizer{registry: registry}
}

func (a *anonymizer) Profile(fileName string) m.Profile {
	return a.registry.ProfileFor(fileName)
}

func (a *anonymizer) Anonymize(sourceText, fileName string, preserveStringLiterals, preserveComments bool) (string, error) {
	result, err := a.Run([]byte(sourceText), fileName, m.Options{
		PreserveStrings:  preserveStringLiterals,
		PreserveComments: preserveComments,
	})
	if err != nil {
		return "", err
	}

	return result.Text, nil
}

func (a *anonymizer) Run(src []byte, fileName string, opts m.Options) (m.Result, error) {
	profile := a.registry.ProfileFor(fileName)

	if len(src) == 0 {
		slog.Debug("Empty source, nothing to anonymize", "file", fileName)
		return m.Result{Profile: profile.Name}, nil
	}

	text := string(src)
	if strings.ContainsAny(text, reservedRunes) {
		return m.Result{}, fmt.Errorf("%s: %w", fileName, ErrReservedRune)
	}

	p := &pipeline{profile: profile, opts: opts}

	out, err := p.run(text)
	if err != nil {
		slog.Error("Anonymization failed", "file", fileName, "profile", profile.Name, "phase", p.phase, "error", err)
		return m.Result{}, fmt.Errorf("%s: %w", fileName, err)
	}

	slog.Debug("Anonymized source",
		"file", fileName,
		"profile", profile.Name,
		"identifiers", p.stats.Identifiers,
		"literals", p.stats.Literals,
		"comments", p.stats.Comments,
	)

	return m.Result{Text: out, Profile: profile.Name, Stats: p.stats}, nil
}

// pipeline runs the phases for a single call. Every map it builds lives only
// for that call.
type pipeline struct {
	profile m.Profile
	opts    m.Options
	phase   string
	stats   m.Stats
}

func (p *pipeline) run(text string) (out string, err error) {
	defer func() {
		if r := recover(); r != nil {
			out = ""
			err = fmt.Errorf("%w: phase %s: %v", ErrAnonymize, p.phase, r)
		}
	}()

	var comments *placeholders

	if p.opts.PreserveComments {
		p.phase = "extract comments"
		text, comments = extractComments(text, p.profile)
		p.stats.Comments = comments.len()
	} else {
		p.phase = "strip comments"

		var stripped stripResult

		text, stripped = stripComments(text, p.profile)
		p.stats.Comments = stripped.comments
		p.stats.StrippedLines = stripped.strippedLines
	}

	p.phase = "mask literals"

	text, literals := maskLiterals(text, p.profile.LongStrings, literalNamespace)
	p.stats.Literals = literals.len()

	p.phase = "rename identifiers"
	names := newRenamer(p.profile)
	text = names.rename(text)
	p.stats.Identifiers = names.distinct()
	p.stats.Occurrences = names.occurrences

	p.phase = "restore literals"
	text = restoreLiterals(text, literals, p.opts.PreserveStrings)

	if comments != nil {
		p.phase = "restore comments"
		text = comments.original(text)
	}

	return text, nil
}
