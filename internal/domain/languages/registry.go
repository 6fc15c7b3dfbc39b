// Package languages holds the language profiles that drive anonymization:
// which words are reserved and how each language writes comments.
package languages

import (
	_ "embed"
	"errors"
	"fmt"
	"path"
	"regexp"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	m "veil.dev/pkg/veil/internal/model"
)

// DefaultName is the name of the profile used for unknown extensions.
const DefaultName = "default"

//go:embed profiles.yaml
var builtinProfiles []byte

var (
	// ErrInvalidProfile is returned when a profile document describes an unusable profile.
	ErrInvalidProfile = errors.New("invalid language profile")

	anonymizedNamePattern = regexp.MustCompile(`^var[0-9]+$`)
)

type profileDocument struct {
	Default   *profileEntry  `yaml:"default"`
	Languages []profileEntry `yaml:"languages"`
}

type profileEntry struct {
	Name            string          `yaml:"name"`
	Extensions      []string        `yaml:"extensions"`
	Comments        m.CommentSyntax `yaml:"comments"`
	LongStrings     bool            `yaml:"long_strings"`
	CaseInsensitive bool            `yaml:"case_insensitive"`
	Keywords        []string        `yaml:"keywords"`
	Builtins        []string        `yaml:"builtins"`
}

// Registry maps file extensions to language profiles. It is read-only once
// built, so it can be shared between goroutines without locking.
type Registry struct {
	fallback m.Profile
	byName   map[string]m.Profile
	byExt    map[string]m.Profile
}

var builtin = sync.OnceValues(func() (*Registry, error) {
	return NewRegistry()
})

// Builtin returns the registry built from the embedded profile table.
func Builtin() *Registry {
	registry, err := builtin()
	if err != nil {
		// The embedded table is covered by tests; failing here is a build defect.
		panic(fmt.Sprintf("languages: embedded profiles: %v", err))
	}

	return registry
}

// NewRegistry builds a registry from the embedded profiles followed by the
// given YAML documents. Later documents replace profiles with the same name
// and may replace the default profile.
func NewRegistry(overrides ...[]byte) (*Registry, error) {
	entries := make(map[string]profileEntry)
	order := make([]string, 0)

	var fallback *profileEntry

	documents := append([][]byte{builtinProfiles}, overrides...)
	for i, data := range documents {
		var doc profileDocument
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("decode profile document %d: %w", i, err)
		}

		if doc.Default != nil {
			entry := *doc.Default
			entry.Name = DefaultName
			fallback = &entry
		}

		for _, entry := range doc.Languages {
			name := strings.ToLower(strings.TrimSpace(entry.Name))
			if name == "" || name == DefaultName {
				return nil, fmt.Errorf("%w: document %d: missing or reserved name %q", ErrInvalidProfile, i, entry.Name)
			}

			entry.Name = name
			if _, ok := entries[name]; !ok {
				order = append(order, name)
			}

			entries[name] = entry
		}
	}

	if fallback == nil {
		return nil, fmt.Errorf("%w: no default profile", ErrInvalidProfile)
	}

	registry := &Registry{
		byName: make(map[string]m.Profile, len(entries)),
		byExt:  make(map[string]m.Profile),
	}

	profile, err := fallback.build()
	if err != nil {
		return nil, err
	}

	registry.fallback = profile

	for _, name := range order {
		profile, err := entries[name].build()
		if err != nil {
			return nil, err
		}

		registry.byName[name] = profile

		for _, ext := range profile.Extensions {
			registry.byExt[ext] = profile
		}
	}

	return registry, nil
}

func (e profileEntry) build() (m.Profile, error) {
	if e.Comments.LinePrefix == "" {
		return m.Profile{}, fmt.Errorf("%w: %s: empty line comment prefix", ErrInvalidProfile, e.Name)
	}

	if (e.Comments.BlockStart == "") != (e.Comments.BlockEnd == "") {
		return m.Profile{}, fmt.Errorf("%w: %s: block comments need both start and end", ErrInvalidProfile, e.Name)
	}

	reserved := make([]string, 0, len(e.Keywords)+len(e.Builtins))
	for _, word := range append(append([]string(nil), e.Keywords...), e.Builtins...) {
		if anonymizedNamePattern.MatchString(word) {
			return m.Profile{}, fmt.Errorf("%w: %s: keyword %q collides with anonymized names", ErrInvalidProfile, e.Name, word)
		}

		reserved = append(reserved, word)
	}

	extensions := make([]string, 0, len(e.Extensions))
	for _, ext := range e.Extensions {
		extensions = append(extensions, strings.ToLower(strings.TrimPrefix(ext, ".")))
	}

	var options []m.ProfileOption
	if e.LongStrings {
		options = append(options, m.WithLongStrings())
	}

	if e.CaseInsensitive {
		options = append(options, m.WithCaseInsensitiveKeywords())
	}

	return m.NewProfile(e.Name, extensions, e.Comments, reserved, options...), nil
}

// ProfileFor selects the profile for fileName by its extension, falling back
// to the default profile when the extension is missing or unknown.
func (r *Registry) ProfileFor(fileName string) m.Profile {
	if profile, ok := r.byExt[Extension(fileName)]; ok {
		return profile
	}

	return r.fallback
}

// Supports reports whether fileName has a registered (non-default) profile.
func (r *Registry) Supports(fileName string) bool {
	_, ok := r.byExt[Extension(fileName)]
	return ok
}

// Lookup returns a profile by name.
func (r *Registry) Lookup(name string) (m.Profile, bool) {
	name = strings.ToLower(name)
	if name == DefaultName {
		return r.fallback, true
	}

	profile, ok := r.byName[name]

	return profile, ok
}

// Default returns the fallback profile.
func (r *Registry) Default() m.Profile {
	return r.fallback
}

// Profiles returns all named profiles sorted by name, without the default.
func (r *Registry) Profiles() []m.Profile {
	profiles := make([]m.Profile, 0, len(r.byName))
	for _, profile := range r.byName {
		profiles = append(profiles, profile)
	}

	sort.Slice(profiles, func(i, j int) bool {
		return profiles[i].Name < profiles[j].Name
	})

	return profiles
}

// Extension returns the lower-cased text after the last dot of the file's
// base name, or "" when there is none.
func Extension(fileName string) string {
	base := path.Base(strings.ReplaceAll(fileName, "\\", "/"))

	idx := strings.LastIndex(base, ".")
	if idx < 0 || idx == len(base)-1 {
		return ""
	}

	return strings.ToLower(base[idx+1:])
}
