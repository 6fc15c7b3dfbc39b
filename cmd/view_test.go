package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"veil.dev/pkg/veil/internal/domain"
	domainmocks "veil.dev/pkg/veil/internal/domain/mocks"
	m "veil.dev/pkg/veil/internal/model"
)

func TestViewCmd_PassesPathAndDefaults(t *testing.T) {
	resetConfig(t)

	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newViewCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	mockWorkflow.On("View", mock.Anything, mock.MatchedBy(func(args domain.ViewArgs) bool {
		return args.Path == m.Path("Main.java") &&
			!args.Diff &&
			args.Options.PreserveStrings &&
			args.Options.PreserveComments
	})).Return(nil)

	cmd.SetArgs([]string{"view", "Main.java"})
	err := cmd.Execute()
	require.NoError(t, err)
}

func TestViewCmd_DiffAndOptionFlags(t *testing.T) {
	resetConfig(t)

	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newViewCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	mockWorkflow.EXPECT().View(mock.Anything, domain.ViewArgs{
		Path:    m.Path("app.py"),
		Options: m.Options{PreserveStrings: false, PreserveComments: false},
		Diff:    true,
	}).Return(nil)

	cmd.SetArgs([]string{"view", "app.py", "--diff", "--preserve-strings=false", "--preserve-comments=false"})
	err := cmd.Execute()
	require.NoError(t, err)
}

func TestViewCmd_RequiresExactlyOneFile(t *testing.T) {
	resetConfig(t)

	mockWorkflow := domainmocks.NewMockWorkflow(t)

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	for _, args := range [][]string{{"view"}, {"view", "a.go", "b.go"}} {
		cmd := newRootCmd()
		cmd.AddCommand(newViewCmd())
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs(args)

		require.Error(t, cmd.Execute())
	}
}
