package controller

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/spf13/cobra"

	m "veil.dev/pkg/veil/internal/model"
)

const (
	diffContextLines = 3
	noValue          = "-"
)

// SimpleUI implements UI by printing to the cobra command output.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayAnonymized prints the anonymized text exactly as produced.
func (s *SimpleUI) DisplayAnonymized(ctx context.Context, output m.Output) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s", output.Result.Text)

	return nil
}

// DisplaySaved prints a one-line confirmation.
func (s *SimpleUI) DisplaySaved(ctx context.Context, outputs []m.Output, target string) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("%s\n", savedMessage(outputs, target))
}

// DisplaySummary prints the dry-run table followed by any per-file errors.
func (s *SimpleUI) DisplaySummary(ctx context.Context, outputs []m.Output) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("\n%s", renderSummaryTable(outputs))

	for _, failure := range failedOutputs(outputs) {
		s.printf("error: %s: %v\n", failure.Source.Name(), failure.Err)
	}

	return nil
}

// DisplayLanguages prints the profile table.
func (s *SimpleUI) DisplayLanguages(ctx context.Context, profiles []m.Profile, fallback m.Profile) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s", renderLanguagesTable(profiles, fallback))

	return nil
}

// DisplayView prints the anonymized text or the unified diff.
func (s *SimpleUI) DisplayView(ctx context.Context, view m.View) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if !view.Diff {
		s.printf("%s", view.Result.Text)
		return nil
	}

	diff, err := renderDiff(view)
	if err != nil {
		return err
	}

	s.printf("%s", diff)

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func savedMessage(outputs []m.Output, target string) string {
	return fmt.Sprintf("Anonymized %d file(s) -> %s", len(outputs), target)
}

func failedOutputs(outputs []m.Output) []m.Output {
	var failed []m.Output

	for _, output := range outputs {
		if output.Err != nil {
			failed = append(failed, output)
		}
	}

	return failed
}

func renderSummaryTable(outputs []m.Output) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Language", "Identifiers", "Literals", "Comments"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
	})

	var total m.Stats

	for _, output := range outputs {
		if output.Err != nil {
			table.Append([]string{output.Source.Name(), "error", noValue, noValue, noValue})
			continue
		}

		stats := output.Result.Stats
		total.Identifiers += stats.Identifiers
		total.Literals += stats.Literals
		total.Comments += stats.Comments

		table.Append([]string{
			output.Source.Name(),
			output.Result.Profile,
			strconv.Itoa(stats.Identifiers),
			strconv.Itoa(stats.Literals),
			strconv.Itoa(stats.Comments),
		})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(outputs)),
		"",
		strconv.Itoa(total.Identifiers),
		strconv.Itoa(total.Literals),
		strconv.Itoa(total.Comments),
	})

	table.Render()

	return tableBuffer.String()
}

func renderLanguagesTable(profiles []m.Profile, fallback m.Profile) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Language", "Extensions", "Comments", "Keywords"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	for _, profile := range profiles {
		table.Append(languageRow(profile))
	}

	row := languageRow(fallback)
	row[1] = "(any other)"
	table.Append(row)

	table.Render()

	return tableBuffer.String()
}

func languageRow(profile m.Profile) []string {
	extensions := make([]string, 0, len(profile.Extensions))
	for _, ext := range profile.Extensions {
		extensions = append(extensions, "."+ext)
	}

	return []string{
		profile.Name,
		strings.Join(extensions, " "),
		profile.Comments.String(),
		strconv.Itoa(profile.KeywordCount()),
	}
}

func renderDiff(view m.View) (string, error) {
	name := view.Source.Name()

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(view.Original),
		B:        difflib.SplitLines(view.Result.Text),
		FromFile: name,
		ToFile:   name + " (anonymized)",
		Context:  diffContextLines,
	})
	if err != nil {
		return "", fmt.Errorf("render diff: %w", err)
	}

	return diff, nil
}
