// Package adapter contains the infrastructure adapters used by the veil workflow.
package adapter

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	m "veil.dev/pkg/veil/internal/model"
)

const recursiveSuffix = "/..."

var (
	// ErrNoSources is returned when a path argument matches no files.
	ErrNoSources = errors.New("no source files found")
	// ErrInvalidExclude is returned for an exclude pattern that is not a valid regular expression.
	ErrInvalidExclude = errors.New("invalid exclude pattern")
	// ErrNotRegularFile is returned for a named path that is a pipe, socket or device.
	ErrNotRegularFile = errors.New("not a regular file")
)

// SourceFSAdapter hides direct os access from the workflow so discovery and
// output can be tested without touching the disk.
//
//nolint:interfacebloat // The workflow needs discovery plus output in one place.
type SourceFSAdapter interface {
	// Get resolves path patterns into sources. "./..." walks recursively, a
	// directory is scanned without descending, and a file is taken as is and
	// marked explicit. Files whose path matches any exclude regex are skipped.
	Get(ctx context.Context, paths []m.Path, exclude []string) ([]m.Source, error)

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// HashFile returns the SHA-256 fingerprint of the file at path, in the
	// format of HashContent.
	HashFile(path m.Path) (string, error)

	// FileInfo returns metadata for a path.
	FileInfo(path m.Path) (os.FileInfo, error)

	// WriteFile writes content to path, creating parent directories.
	WriteFile(path m.Path, content []byte, perm os.FileMode) error

	// JoinPath joins path elements into a single path.
	JoinPath(elem ...string) m.Path
}

// LocalSourceFSAdapter implements SourceFSAdapter on the local disk.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter ready to be wired
// into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// Get walks every path pattern and returns the sources sorted by path with
// duplicates removed.
func (a *LocalSourceFSAdapter) Get(ctx context.Context, paths []m.Path, exclude []string) ([]m.Source, error) {
	excludes, err := compileExcludes(exclude)
	if err != nil {
		return nil, err
	}

	if len(paths) == 0 {
		paths = []m.Path{"." + recursiveSuffix}
	}

	seen := make(map[m.Path]int)

	var sources []m.Source

	for _, pattern := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		found, err := a.resolve(ctx, pattern, excludes)
		if err != nil {
			return nil, err
		}

		for _, source := range found {
			if i, ok := seen[source.Origin.FullPath]; ok {
				sources[i].Explicit = sources[i].Explicit || source.Explicit
				continue
			}

			seen[source.Origin.FullPath] = len(sources)
			sources = append(sources, source)
		}
	}

	sort.Slice(sources, func(i, j int) bool {
		return sources[i].Origin.ShortPath < sources[j].Origin.ShortPath
	})

	return sources, nil
}

func (a *LocalSourceFSAdapter) resolve(ctx context.Context, pattern m.Path, excludes []*regexp.Regexp) ([]m.Source, error) {
	root, recursive := splitPattern(string(pattern))

	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", pattern, err)
	}

	if !info.IsDir() {
		if excluded(root, excludes) {
			return nil, nil
		}

		if !info.Mode().IsRegular() {
			return nil, fmt.Errorf("%s: %w", pattern, ErrNotRegularFile)
		}

		source := newSource(root)
		source.Explicit = true

		return []m.Source{source}, nil
	}

	var sources []m.Source

	err = a.walk(root, recursive, func(path string, entry fs.DirEntry) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		if entry.IsDir() || excluded(path, excludes) {
			return nil
		}

		if !isRegularFile(path, entry) {
			slog.Debug("Skipping non-regular file", "path", path, "type", entry.Type().String())
			return nil
		}

		sources = append(sources, newSource(path))

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}

	if len(sources) == 0 {
		return nil, fmt.Errorf("%s: %w", pattern, ErrNoSources)
	}

	return sources, nil
}

// walk visits root and, when recursive is set, every directory below it.
func (a *LocalSourceFSAdapter) walk(root string, recursive bool, fn func(path string, entry fs.DirEntry) error) error {
	return filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if entry.IsDir() && path != root {
			if !recursive || ignoredDir(entry.Name()) {
				return filepath.SkipDir
			}

			return nil
		}

		return fn(path, entry)
	})
}

// isRegularFile reports whether a walked entry can be read like a file.
// Symlinks count when their target is a regular file; pipes, sockets and
// devices never do, since opening a pipe blocks.
func isRegularFile(path string, entry fs.DirEntry) bool {
	if entry.Type().IsRegular() {
		return true
	}

	if entry.Type()&fs.ModeSymlink == 0 {
		return false
	}

	info, err := os.Stat(path)

	return err == nil && info.Mode().IsRegular()
}

func newSource(path string) m.Source {
	return m.Source{
		Origin: &m.File{
			FullPath:  m.Path(absPath(path)),
			ShortPath: m.Path(shortPath(path)),
		},
	}
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// HashFile returns the SHA-256 hash of the file at the provided path.
func (a *LocalSourceFSAdapter) HashFile(path m.Path) (string, error) {
	f, err := os.Open(string(path))
	if err != nil {
		return "", err
	}

	defer func() {
		_ = f.Close()
	}()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}

	return fmt.Sprintf("%x", h.Sum(nil)), nil
}

// HashContent returns the SHA-256 hash of content as lowercase hex.
func HashContent(content []byte) string {
	return fmt.Sprintf("%x", sha256.Sum256(content))
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// WriteFile writes content to path, creating missing parent directories.
func (a *LocalSourceFSAdapter) WriteFile(path m.Path, content []byte, perm os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(string(path)), 0o750); err != nil {
		return err
	}

	return os.WriteFile(string(path), content, perm)
}

// JoinPath joins path elements into a single path.
func (a *LocalSourceFSAdapter) JoinPath(elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}

func splitPattern(pattern string) (string, bool) {
	slashed := filepath.ToSlash(pattern)
	if slashed == "..." {
		return ".", true
	}

	root, recursive := strings.CutSuffix(slashed, recursiveSuffix)
	if root == "" {
		root = "/"
	}

	return filepath.FromSlash(root), recursive
}

func compileExcludes(patterns []string) ([]*regexp.Regexp, error) {
	compiled := make([]*regexp.Regexp, 0, len(patterns))

	for _, pattern := range patterns {
		if strings.TrimSpace(pattern) == "" {
			continue
		}

		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrInvalidExclude, pattern, err)
		}

		compiled = append(compiled, re)
	}

	return compiled, nil
}

func excluded(path string, excludes []*regexp.Regexp) bool {
	slashed := filepath.ToSlash(path)

	for _, re := range excludes {
		if re.MatchString(slashed) {
			return true
		}
	}

	return false
}

func ignoredDir(name string) bool {
	return name == ".git" || name == "vendor" || name == "node_modules"
}

func absPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}

	return abs
}

// shortPath is path relative to the working directory, or the cleaned path
// itself when it lies outside of it.
func shortPath(path string) string {
	wd, err := os.Getwd()
	if err != nil {
		return filepath.Clean(path)
	}

	rel, err := filepath.Rel(wd, absPath(path))
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return filepath.Clean(path)
	}

	return rel
}
