package adapter

import (
	"fmt"
	"os"
	"strings"

	"veil.dev/pkg/veil/internal/domain/languages"
	m "veil.dev/pkg/veil/internal/model"
)

// ProfileStore builds the language registry, merging an optional user profile file.
type ProfileStore interface {
	Load(path m.Path) (*languages.Registry, error)
}

// LocalProfileStore reads profile overrides from the local disk.
type LocalProfileStore struct{}

// NewLocalProfileStore constructs a LocalProfileStore.
func NewLocalProfileStore() *LocalProfileStore {
	return &LocalProfileStore{}
}

// Load returns the built-in registry when path is empty, otherwise a registry
// with the YAML document at path merged over the built-in profiles.
func (s *LocalProfileStore) Load(path m.Path) (*languages.Registry, error) {
	if strings.TrimSpace(string(path)) == "" {
		return languages.Builtin(), nil
	}

	data, err := os.ReadFile(string(path))
	if err != nil {
		return nil, fmt.Errorf("read profiles %s: %w", path, err)
	}

	registry, err := languages.NewRegistry(data)
	if err != nil {
		return nil, fmt.Errorf("load profiles %s: %w", path, err)
	}

	return registry, nil
}
