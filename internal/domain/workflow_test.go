package domain_test

import (
	"context"
	"errors"
	"io/fs"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"veil.dev/pkg/veil/internal/adapter"
	adaptermocks "veil.dev/pkg/veil/internal/adapter/mocks"
	controllermocks "veil.dev/pkg/veil/internal/controller/mocks"
	"veil.dev/pkg/veil/internal/domain"
	"veil.dev/pkg/veil/internal/domain/languages"
	m "veil.dev/pkg/veil/internal/model"
)

type workflowMocks struct {
	fs        *adaptermocks.MockSourceFSAdapter
	clipboard *adaptermocks.MockClipboardAdapter
	profiles  *adaptermocks.MockProfileStore
	ui        *controllermocks.MockUI
}

func newWorkflowMocks(t *testing.T) (workflowMocks, domain.Workflow) {
	mocks := workflowMocks{
		fs:        adaptermocks.NewMockSourceFSAdapter(t),
		clipboard: adaptermocks.NewMockClipboardAdapter(t),
		profiles:  adaptermocks.NewMockProfileStore(t),
		ui:        controllermocks.NewMockUI(t),
	}

	wf := domain.NewWorkflow(mocks.fs, mocks.clipboard, mocks.profiles, mocks.ui)

	return mocks, wf
}

func (w workflowMocks) builtinProfiles() {
	w.profiles.EXPECT().Load(m.Path("")).Return(languages.Builtin(), nil).Once()
}

func (w workflowMocks) joinPaths() {
	w.fs.EXPECT().JoinPath(mock.Anything, mock.Anything).
		RunAndReturn(func(elem ...string) m.Path { return m.Path(filepath.Join(elem...)) })
}

func testSource(short string, explicit bool) m.Source {
	return m.Source{
		Origin:   &m.File{FullPath: m.Path("/work/" + short), ShortPath: m.Path(short)},
		Explicit: explicit,
	}
}

type fakeFileInfo struct {
	name string
	dir  bool
}

func (f fakeFileInfo) Name() string       { return f.name }
func (f fakeFileInfo) Size() int64        { return 0 }
func (f fakeFileInfo) Mode() fs.FileMode  { return 0o644 }
func (f fakeFileInfo) ModTime() time.Time { return time.Time{} }
func (f fakeFileInfo) IsDir() bool        { return f.dir }
func (f fakeFileInfo) Sys() any           { return nil }

func TestWorkflow_Anonymize_Stdout(t *testing.T) {
	// Arrange
	mocks, wf := newWorkflowMocks(t)
	source := testSource("Main.java", true)

	mocks.builtinProfiles()
	mocks.fs.EXPECT().Get(mock.Anything, []m.Path{"Main.java"}, []string(nil)).Return([]m.Source{source}, nil).Once()
	mocks.fs.EXPECT().ReadFile(source.Origin.FullPath).Return([]byte(`int userAge = 30; // age`), nil).Once()
	mocks.ui.EXPECT().DisplayAnonymized(mock.Anything, mock.MatchedBy(func(output m.Output) bool {
		return output.Result.Text == "int var1 = 30; // age" && output.Result.Profile == "java"
	})).Return(nil).Once()

	// Act
	err := wf.Anonymize(context.Background(), domain.AnonymizeArgs{
		SourceArgs: domain.SourceArgs{Paths: []m.Path{"Main.java"}},
		Options:    m.DefaultOptions(),
	})

	// Assert
	require.NoError(t, err)
}

func TestWorkflow_Anonymize_MultipleSourcesNeedOutputDir(t *testing.T) {
	mocks, wf := newWorkflowMocks(t)

	mocks.builtinProfiles()
	mocks.fs.EXPECT().Get(mock.Anything, mock.Anything, mock.Anything).
		Return([]m.Source{testSource("A.java", false), testSource("B.java", false)}, nil).Once()

	err := wf.Anonymize(context.Background(), domain.AnonymizeArgs{Options: m.DefaultOptions()})

	assert.ErrorIs(t, err, domain.ErrOutputDirRequired)
}

func TestWorkflow_Anonymize_ClipboardNeedsSingleSource(t *testing.T) {
	mocks, wf := newWorkflowMocks(t)

	mocks.builtinProfiles()
	mocks.fs.EXPECT().Get(mock.Anything, mock.Anything, mock.Anything).
		Return([]m.Source{testSource("A.java", false), testSource("B.java", false)}, nil).Once()

	err := wf.Anonymize(context.Background(), domain.AnonymizeArgs{Options: m.DefaultOptions(), Clipboard: true})

	assert.ErrorIs(t, err, domain.ErrClipboardSingleSource)
}

func TestWorkflow_Anonymize_OutputDir(t *testing.T) {
	mocks, wf := newWorkflowMocks(t)
	first := testSource("src/A.java", false)
	second := testSource("../outside/b.py", true)

	mocks.builtinProfiles()
	mocks.joinPaths()
	mocks.fs.EXPECT().Get(mock.Anything, mock.Anything, mock.Anything).Return([]m.Source{first, second}, nil).Once()
	mocks.fs.EXPECT().ReadFile(first.Origin.FullPath).Return([]byte("class Alpha {}"), nil).Once()
	mocks.fs.EXPECT().ReadFile(second.Origin.FullPath).Return([]byte("beta = 1  # note"), nil).Once()
	mocks.fs.EXPECT().HashFile(mock.Anything).Return("", fs.ErrNotExist).Times(2)
	mocks.fs.EXPECT().WriteFile(m.Path(filepath.Join("out", "src", "A.java")), []byte("class var1 {}"), fs.FileMode(0o644)).Return(nil).Once()
	mocks.fs.EXPECT().WriteFile(m.Path(filepath.Join("out", "outside", "b.py")), []byte("var1 = 1  # note"), fs.FileMode(0o644)).Return(nil).Once()
	mocks.ui.EXPECT().DisplaySaved(mock.Anything, mock.MatchedBy(func(outputs []m.Output) bool {
		return len(outputs) == 2
	}), "out").Return().Once()

	err := wf.Anonymize(context.Background(), domain.AnonymizeArgs{
		Options:   m.DefaultOptions(),
		OutputDir: "out",
		Threads:   2,
	})

	require.NoError(t, err)
}

func TestWorkflow_Anonymize_OutputDirSkipsUnchangedFiles(t *testing.T) {
	mocks, wf := newWorkflowMocks(t)
	first := testSource("A.java", false)
	second := testSource("B.java", false)
	unchanged := m.Path(filepath.Join("out", "A.java"))
	changed := m.Path(filepath.Join("out", "B.java"))

	mocks.builtinProfiles()
	mocks.joinPaths()
	mocks.fs.EXPECT().Get(mock.Anything, mock.Anything, mock.Anything).Return([]m.Source{first, second}, nil).Once()
	mocks.fs.EXPECT().ReadFile(first.Origin.FullPath).Return([]byte("class Alpha {}"), nil).Once()
	mocks.fs.EXPECT().ReadFile(second.Origin.FullPath).Return([]byte("class Beta {}"), nil).Once()
	mocks.fs.EXPECT().HashFile(unchanged).Return(adapter.HashContent([]byte("class var1 {}")), nil).Once()
	mocks.fs.EXPECT().HashFile(changed).Return(adapter.HashContent([]byte("class stale {}")), nil).Once()
	mocks.fs.EXPECT().WriteFile(changed, []byte("class var1 {}"), fs.FileMode(0o644)).Return(nil).Once()
	mocks.ui.EXPECT().DisplaySaved(mock.Anything, mock.Anything, "out").Return().Once()

	err := wf.Anonymize(context.Background(), domain.AnonymizeArgs{
		Options:   m.DefaultOptions(),
		OutputDir: "out",
	})

	require.NoError(t, err)
	mocks.fs.AssertNotCalled(t, "WriteFile", unchanged, mock.Anything, mock.Anything)
}

func TestWorkflow_Anonymize_RefusesToOverwriteSource(t *testing.T) {
	mocks, wf := newWorkflowMocks(t)
	source := testSource("Main.java", true)

	mocks.builtinProfiles()
	mocks.joinPaths()
	mocks.fs.EXPECT().Get(mock.Anything, mock.Anything, mock.Anything).Return([]m.Source{source}, nil).Once()
	mocks.fs.EXPECT().ReadFile(source.Origin.FullPath).Return([]byte("class Main {}"), nil).Once()

	err := wf.Anonymize(context.Background(), domain.AnonymizeArgs{
		Options:   m.DefaultOptions(),
		OutputDir: "/work",
	})

	assert.ErrorIs(t, err, domain.ErrOverwriteSource)
}

func TestWorkflow_Anonymize_Clipboard(t *testing.T) {
	mocks, wf := newWorkflowMocks(t)
	source := testSource("query.sql", true)

	mocks.builtinProfiles()
	mocks.fs.EXPECT().Get(mock.Anything, mock.Anything, mock.Anything).Return([]m.Source{source}, nil).Once()
	mocks.fs.EXPECT().ReadFile(source.Origin.FullPath).Return([]byte("SELECT name FROM users -- all"), nil).Once()
	mocks.clipboard.EXPECT().WriteAll("SELECT var1 FROM var2").Return(nil).Once()
	mocks.ui.EXPECT().DisplaySaved(mock.Anything, mock.Anything, "clipboard").Return().Once()

	err := wf.Anonymize(context.Background(), domain.AnonymizeArgs{
		Options:   m.Options{PreserveStrings: true, PreserveComments: false},
		Clipboard: true,
	})

	require.NoError(t, err)
}

func TestWorkflow_Anonymize_ClipboardError(t *testing.T) {
	mocks, wf := newWorkflowMocks(t)
	source := testSource("a.go", true)
	clipboardErr := errors.New("no clipboard")

	mocks.builtinProfiles()
	mocks.fs.EXPECT().Get(mock.Anything, mock.Anything, mock.Anything).Return([]m.Source{source}, nil).Once()
	mocks.fs.EXPECT().ReadFile(source.Origin.FullPath).Return([]byte("x := 1"), nil).Once()
	mocks.clipboard.EXPECT().WriteAll(mock.Anything).Return(clipboardErr).Once()

	err := wf.Anonymize(context.Background(), domain.AnonymizeArgs{Options: m.DefaultOptions(), Clipboard: true})

	assert.ErrorIs(t, err, clipboardErr)
}

func TestWorkflow_Anonymize_SkipsUnsupportedWalkedFiles(t *testing.T) {
	mocks, wf := newWorkflowMocks(t)
	supported := testSource("Main.java", false)

	mocks.builtinProfiles()
	mocks.fs.EXPECT().Get(mock.Anything, mock.Anything, mock.Anything).
		Return([]m.Source{testSource("README.md", false), supported, testSource("Makefile", false)}, nil).Once()
	mocks.fs.EXPECT().ReadFile(supported.Origin.FullPath).Return([]byte("int a;"), nil).Once()
	mocks.ui.EXPECT().DisplayAnonymized(mock.Anything, mock.Anything).Return(nil).Once()

	err := wf.Anonymize(context.Background(), domain.AnonymizeArgs{Options: m.DefaultOptions()})

	require.NoError(t, err)
}

func TestWorkflow_Anonymize_NoSupportedSources(t *testing.T) {
	mocks, wf := newWorkflowMocks(t)

	mocks.builtinProfiles()
	mocks.fs.EXPECT().Get(mock.Anything, mock.Anything, mock.Anything).
		Return([]m.Source{testSource("README.md", false)}, nil).Once()

	err := wf.Anonymize(context.Background(), domain.AnonymizeArgs{Options: m.DefaultOptions()})

	assert.ErrorIs(t, err, domain.ErrNoSupportedSources)
}

func TestWorkflow_Anonymize_ExplicitEmptyFile(t *testing.T) {
	mocks, wf := newWorkflowMocks(t)
	source := testSource("Empty.java", true)

	mocks.builtinProfiles()
	mocks.fs.EXPECT().Get(mock.Anything, mock.Anything, mock.Anything).Return([]m.Source{source}, nil).Once()
	mocks.fs.EXPECT().ReadFile(source.Origin.FullPath).Return([]byte(" \n\t\n"), nil).Once()

	err := wf.Anonymize(context.Background(), domain.AnonymizeArgs{Options: m.DefaultOptions()})

	assert.ErrorIs(t, err, domain.ErrEmptySource)
}

func TestWorkflow_Anonymize_ReservedRunes(t *testing.T) {
	mocks, wf := newWorkflowMocks(t)
	source := testSource("Main.java", true)

	mocks.builtinProfiles()
	mocks.fs.EXPECT().Get(mock.Anything, mock.Anything, mock.Anything).Return([]m.Source{source}, nil).Once()
	mocks.fs.EXPECT().ReadFile(source.Origin.FullPath).Return([]byte("int a = 1; // \uFDD2"), nil).Once()

	err := wf.Anonymize(context.Background(), domain.AnonymizeArgs{Options: m.DefaultOptions()})

	assert.ErrorIs(t, err, domain.ErrReservedRune)
}

func TestWorkflow_Anonymize_GetError(t *testing.T) {
	mocks, wf := newWorkflowMocks(t)
	getErr := errors.New("walk failed")

	mocks.builtinProfiles()
	mocks.fs.EXPECT().Get(mock.Anything, mock.Anything, mock.Anything).Return(nil, getErr).Once()

	err := wf.Anonymize(context.Background(), domain.AnonymizeArgs{Options: m.DefaultOptions()})

	require.ErrorIs(t, err, getErr)
	assert.Contains(t, err.Error(), "get sources")
}

func TestWorkflow_Anonymize_ProfileError(t *testing.T) {
	mocks, wf := newWorkflowMocks(t)

	mocks.profiles.EXPECT().Load(m.Path("profiles.yaml")).Return(nil, languages.ErrInvalidProfile).Once()

	err := wf.Anonymize(context.Background(), domain.AnonymizeArgs{
		SourceArgs: domain.SourceArgs{Profiles: "profiles.yaml"},
	})

	assert.ErrorIs(t, err, languages.ErrInvalidProfile)
}

func TestWorkflow_Anonymize_Cancelled(t *testing.T) {
	mocks, wf := newWorkflowMocks(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	mocks.builtinProfiles()
	mocks.fs.EXPECT().Get(mock.Anything, mock.Anything, mock.Anything).Return([]m.Source{testSource("A.java", true)}, nil).Once()

	err := wf.Anonymize(ctx, domain.AnonymizeArgs{Options: m.DefaultOptions()})

	assert.ErrorIs(t, err, context.Canceled)
}

func TestWorkflow_List_KeepsOrderAndReportsFailures(t *testing.T) {
	mocks, wf := newWorkflowMocks(t)
	readErr := errors.New("permission denied")

	sources := make([]m.Source, 0, 20)
	for i := 0; i < 20; i++ {
		source := testSource("File"+strconv.Itoa(i)+".java", false)
		sources = append(sources, source)

		if i == 7 {
			mocks.fs.EXPECT().ReadFile(source.Origin.FullPath).Return(nil, readErr).Once()
			continue
		}

		mocks.fs.EXPECT().ReadFile(source.Origin.FullPath).Return([]byte("int value = "+strconv.Itoa(i)+";"), nil).Once()
	}

	mocks.builtinProfiles()
	mocks.fs.EXPECT().Get(mock.Anything, mock.Anything, mock.Anything).Return(sources, nil).Once()
	mocks.ui.EXPECT().DisplaySummary(mock.Anything, mock.MatchedBy(func(outputs []m.Output) bool {
		if len(outputs) != len(sources) {
			return false
		}

		for i, output := range outputs {
			if output.Source.Name() != sources[i].Name() {
				return false
			}

			if (i == 7) != (output.Err != nil) {
				return false
			}
		}

		return outputs[0].Result.Stats.Identifiers == 1
	})).Return(nil).Once()

	err := wf.List(context.Background(), domain.ListArgs{Options: m.DefaultOptions(), Threads: 4})

	require.ErrorIs(t, err, readErr)
}

func TestWorkflow_View(t *testing.T) {
	mocks, wf := newWorkflowMocks(t)
	original := "def greet(name):\n    return name\n"

	mocks.builtinProfiles()
	mocks.fs.EXPECT().FileInfo(m.Path("app.py")).Return(fakeFileInfo{name: "app.py"}, nil).Once()
	mocks.fs.EXPECT().ReadFile(m.Path("app.py")).Return([]byte(original), nil).Once()
	mocks.ui.EXPECT().DisplayView(mock.Anything, mock.MatchedBy(func(view m.View) bool {
		return view.Diff &&
			view.Original == original &&
			view.Result.Text == "def var1(var2):\n    return var2\n" &&
			view.Result.Profile == "python"
	})).Return(nil).Once()

	err := wf.View(context.Background(), domain.ViewArgs{Path: "app.py", Options: m.DefaultOptions(), Diff: true})

	require.NoError(t, err)
}

func TestWorkflow_View_Directory(t *testing.T) {
	mocks, wf := newWorkflowMocks(t)

	mocks.builtinProfiles()
	mocks.fs.EXPECT().FileInfo(m.Path("src")).Return(fakeFileInfo{name: "src", dir: true}, nil).Once()

	err := wf.View(context.Background(), domain.ViewArgs{Path: "src"})

	assert.ErrorIs(t, err, domain.ErrNotAFile)
}

func TestWorkflow_Languages(t *testing.T) {
	mocks, wf := newWorkflowMocks(t)
	registry := languages.Builtin()

	mocks.builtinProfiles()
	mocks.ui.EXPECT().DisplayLanguages(mock.Anything, registry.Profiles(), mock.Anything).Return(nil).Once()

	err := wf.Languages(context.Background(), domain.LanguagesArgs{})

	require.NoError(t, err)
}
