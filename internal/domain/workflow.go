package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"veil.dev/pkg/veil/internal/adapter"
	"veil.dev/pkg/veil/internal/controller"
	"veil.dev/pkg/veil/internal/domain/languages"
	m "veil.dev/pkg/veil/internal/model"
)

const outputFilePerm = 0o644

var (
	// ErrOutputDirRequired is returned when several sources are anonymized without an output directory.
	ErrOutputDirRequired = errors.New("more than one source file: --output-dir is required")
	// ErrClipboardSingleSource is returned when several sources are sent to the clipboard.
	ErrClipboardSingleSource = errors.New("the clipboard accepts a single source file")
	// ErrEmptySource is returned for an explicitly named file that has no content.
	ErrEmptySource = errors.New("source file is empty")
	// ErrNoSupportedSources is returned when discovery finds nothing with a known language.
	ErrNoSupportedSources = errors.New("no supported source files found")
	// ErrOverwriteSource is returned when an output path would replace its own input.
	ErrOverwriteSource = errors.New("output would overwrite the source file")
	// ErrNotAFile is returned by View for a directory or pattern.
	ErrNotAFile = errors.New("view expects a single file")
)

// SourceArgs selects the files to process.
type SourceArgs struct {
	Paths    []m.Path
	Exclude  []string
	Profiles m.Path
}

// AnonymizeArgs contains the arguments for anonymizing files.
type AnonymizeArgs struct {
	SourceArgs
	Options   m.Options
	Threads   int
	OutputDir m.Path
	Clipboard bool
}

// ListArgs contains the arguments for a dry run.
type ListArgs struct {
	SourceArgs
	Options m.Options
	Threads int
}

// ViewArgs contains the arguments for viewing one anonymized file.
type ViewArgs struct {
	Path     m.Path
	Profiles m.Path
	Options  m.Options
	Diff     bool
}

// LanguagesArgs contains the arguments for listing language profiles.
type LanguagesArgs struct {
	Profiles m.Path
}

// Workflow runs the anonymizer over files and hands the results to the UI.
type Workflow interface {
	Anonymize(ctx context.Context, args AnonymizeArgs) error
	List(ctx context.Context, args ListArgs) error
	View(ctx context.Context, args ViewArgs) error
	Languages(ctx context.Context, args LanguagesArgs) error
}

type workflow struct {
	adapter.SourceFSAdapter
	adapter.ClipboardAdapter
	adapter.ProfileStore
	controller.UI
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	clipboard adapter.ClipboardAdapter,
	profiles adapter.ProfileStore,
	ui controller.UI,
) Workflow {
	return &workflow{
		SourceFSAdapter:  fsAdapter,
		ClipboardAdapter: clipboard,
		ProfileStore:     profiles,
		UI:               ui,
	}
}

func (w *workflow) Anonymize(ctx context.Context, args AnonymizeArgs) error {
	registry, sources, err := w.discover(ctx, args.SourceArgs)
	if err != nil {
		return err
	}

	if len(sources) > 1 && args.OutputDir == "" {
		if args.Clipboard {
			return ErrClipboardSingleSource
		}

		return ErrOutputDirRequired
	}

	outputs, err := w.process(ctx, NewAnonymizer(registry), sources, args.Options, args.Threads)
	if err != nil {
		return err
	}

	if err := joinOutputErrors(outputs); err != nil {
		return err
	}

	switch {
	case args.OutputDir != "":
		if err := w.writeOutputs(outputs, args.OutputDir); err != nil {
			return err
		}

		w.DisplaySaved(ctx, outputs, string(args.OutputDir))
	case args.Clipboard:
		if err := w.WriteAll(outputs[0].Result.Text); err != nil {
			return fmt.Errorf("copy %s: %w", outputs[0].Source.Name(), err)
		}

		w.DisplaySaved(ctx, outputs, "clipboard")
	default:
		if err := w.DisplayAnonymized(ctx, outputs[0]); err != nil {
			return fmt.Errorf("display: %w", err)
		}
	}

	return nil
}

func (w *workflow) List(ctx context.Context, args ListArgs) error {
	registry, sources, err := w.discover(ctx, args.SourceArgs)
	if err != nil {
		return err
	}

	outputs, err := w.process(ctx, NewAnonymizer(registry), sources, args.Options, args.Threads)
	if err != nil {
		return err
	}

	if err := w.DisplaySummary(ctx, outputs); err != nil {
		slog.Error("Failed to display summary", "error", err)
		return fmt.Errorf("display: %w", err)
	}

	return joinOutputErrors(outputs)
}

func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	registry, err := w.Load(args.Profiles)
	if err != nil {
		return err
	}

	info, err := w.FileInfo(args.Path)
	if err != nil {
		return fmt.Errorf("view %s: %w", args.Path, err)
	}

	if info.IsDir() {
		return fmt.Errorf("%s: %w", args.Path, ErrNotAFile)
	}

	source := m.Source{
		Origin:   &m.File{FullPath: args.Path, ShortPath: args.Path},
		Explicit: true,
	}

	original, output := w.anonymizeSource(NewAnonymizer(registry), source, args.Options)
	if output.Err != nil {
		return output.Err
	}

	view := m.View{Output: output, Original: original, Diff: args.Diff}
	if err := w.DisplayView(ctx, view); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	return nil
}

func (w *workflow) Languages(ctx context.Context, args LanguagesArgs) error {
	registry, err := w.Load(args.Profiles)
	if err != nil {
		return err
	}

	return w.DisplayLanguages(ctx, registry.Profiles(), registry.Default())
}

// discover loads the registry and resolves the sources. Walked files are kept
// only when a language profile claims their extension.
func (w *workflow) discover(ctx context.Context, args SourceArgs) (*languages.Registry, []m.Source, error) {
	registry, err := w.Load(args.Profiles)
	if err != nil {
		return nil, nil, err
	}

	found, err := w.Get(ctx, args.Paths, args.Exclude)
	if err != nil {
		slog.Error("Failed to discover sources", "error", err)
		return nil, nil, fmt.Errorf("get sources: %w", err)
	}

	sources := make([]m.Source, 0, len(found))

	for _, source := range found {
		if source.Explicit || registry.Supports(source.Name()) {
			sources = append(sources, source)
		}
	}

	if len(sources) == 0 {
		return nil, nil, ErrNoSupportedSources
	}

	slog.Debug("Discovered sources", "found", len(found), "supported", len(sources))

	return registry, sources, nil
}

// process anonymizes sources on at most threads workers. Per-file failures
// are stored in the matching Output; only cancellation aborts the batch.
func (w *workflow) process(ctx context.Context, anonymizer Anonymizer, sources []m.Source, opts m.Options, threads int) ([]m.Output, error) {
	outputs := make([]m.Output, len(sources))

	group, groupCtx := errgroup.WithContext(ctx)
	if threads > 0 {
		group.SetLimit(threads)
	}

	slog.Debug("Anonymizing sources", "count", len(sources), "threads", threads)

	for i, source := range sources {
		i, source := i, source
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			_, outputs[i] = w.anonymizeSource(anonymizer, source, opts)

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return outputs, nil
}

func (w *workflow) anonymizeSource(anonymizer Anonymizer, source m.Source, opts m.Options) (string, m.Output) {
	output := m.Output{Source: source}

	content, err := w.ReadFile(source.Origin.FullPath)
	if err != nil {
		output.Err = fmt.Errorf("read %s: %w", source.Name(), err)
		return "", output
	}

	if source.Explicit && strings.TrimSpace(string(content)) == "" {
		output.Err = fmt.Errorf("%s: %w", source.Name(), ErrEmptySource)
		return "", output
	}

	result, err := anonymizer.Run(content, source.Name(), opts)
	if err != nil {
		output.Err = err
		return string(content), output
	}

	output.Result = result

	return string(content), output
}

func (w *workflow) writeOutputs(outputs []m.Output, dir m.Path) error {
	for _, output := range outputs {
		target := w.JoinPath(string(dir), mirrorPath(output.Source.Name()))

		if absolute(string(target)) == absolute(string(output.Source.Origin.FullPath)) {
			return fmt.Errorf("%s: %w", target, ErrOverwriteSource)
		}

		content := []byte(output.Result.Text)

		if existing, err := w.HashFile(target); err == nil && existing == adapter.HashContent(content) {
			slog.Debug("Anonymized output unchanged", "source", output.Source.Name(), "target", target)
			continue
		}

		if err := w.WriteFile(target, content, outputFilePerm); err != nil {
			return fmt.Errorf("write %s: %w", target, err)
		}

		slog.Debug("Wrote anonymized source", "source", output.Source.Name(), "target", target)
	}

	return nil
}

func joinOutputErrors(outputs []m.Output) error {
	var errs []error

	for _, output := range outputs {
		if output.Err != nil {
			errs = append(errs, output.Err)
		}
	}

	return errors.Join(errs...)
}

// mirrorPath turns a source path into a relative path that stays inside the
// output directory: volume names, leading separators and ".." are dropped.
func mirrorPath(name string) string {
	name = filepath.ToSlash(strings.TrimPrefix(name, filepath.VolumeName(name)))

	parts := strings.Split(name, "/")
	kept := make([]string, 0, len(parts))

	for _, part := range parts {
		if part == "" || part == "." || part == ".." {
			continue
		}

		kept = append(kept, part)
	}

	return filepath.Join(kept...)
}

func absolute(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}

	return abs
}
