package controller

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	m "veil.dev/pkg/veil/internal/model"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			BorderStyle(lipgloss.RoundedBorder()).
			Padding(0, 1)
	infoStyle    = titleStyle.Foreground(lipgloss.Color("245")).Bold(false)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	addedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	removedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	hunkStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
)

// TUI implements UI using Bubble Tea for anything taller than the terminal.
type TUI struct {
	output io.Writer
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// DisplayAnonymized writes the anonymized text without decoration so it can be copied as is.
func (p *TUI) DisplayAnonymized(ctx context.Context, output m.Output) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, err := fmt.Fprint(p.output, output.Result.Text)

	return err
}

// DisplaySaved prints a styled confirmation.
func (p *TUI) DisplaySaved(ctx context.Context, outputs []m.Output, target string) {
	if err := ctx.Err(); err != nil {
		return
	}

	_, _ = fmt.Fprintln(p.output, successStyle.Render("✓ "+savedMessage(outputs, target)))
}

// DisplaySummary shows the dry-run table, paged when it does not fit.
func (p *TUI) DisplaySummary(ctx context.Context, outputs []m.Output) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var b strings.Builder

	b.WriteString(renderSummaryTable(outputs))

	for _, failure := range failedOutputs(outputs) {
		b.WriteString(errorStyle.Render(fmt.Sprintf("✗ %s: %v", failure.Source.Name(), failure.Err)))
		b.WriteString("\n")
	}

	return p.page(ctx, "veil - dry run", b.String())
}

// DisplayLanguages shows the profile table, paged when it does not fit.
func (p *TUI) DisplayLanguages(ctx context.Context, profiles []m.Profile, fallback m.Profile) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return p.page(ctx, "veil - languages", renderLanguagesTable(profiles, fallback))
}

// DisplayView opens the anonymized text (or a colored diff) in a pager.
func (p *TUI) DisplayView(ctx context.Context, view m.View) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	title := fmt.Sprintf("%s [%s]", view.Source.Name(), view.Result.Profile)
	if !view.Diff {
		return p.page(ctx, title, view.Result.Text)
	}

	diff, err := renderDiff(view)
	if err != nil {
		return err
	}

	return p.page(ctx, title+" diff", colorizeDiff(diff))
}

// page prints content directly when it fits on screen and starts a pager otherwise.
func (p *TUI) page(ctx context.Context, title, content string) error {
	model := newPagerModel(title, content)

	if f, ok := p.output.(*os.File); ok {
		width, height, err := term.GetSize(int(f.Fd()))
		if err == nil {
			model.width = width
			model.height = height
		}
	}

	if !model.needsPagination() {
		_, err := fmt.Fprint(p.output, model.staticView())
		return err
	}

	program := tea.NewProgram(model, tea.WithOutput(p.output), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run pager: %w", err)
	}

	return nil
}

func colorizeDiff(diff string) string {
	lines := strings.Split(diff, "\n")

	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			lines[i] = lipgloss.NewStyle().Bold(true).Render(line)
		case strings.HasPrefix(line, "@@"):
			lines[i] = hunkStyle.Render(line)
		case strings.HasPrefix(line, "+"):
			lines[i] = addedStyle.Render(line)
		case strings.HasPrefix(line, "-"):
			lines[i] = removedStyle.Render(line)
		}
	}

	return strings.Join(lines, "\n")
}

// pagerModel is a scrollable viewport with a title bar and a position footer.
type pagerModel struct {
	title    string
	content  string
	viewport viewport.Model
	ready    bool
	width    int
	height   int
}

func newPagerModel(title, content string) pagerModel {
	return pagerModel{title: title, content: content}
}

func (pm pagerModel) Init() tea.Cmd {
	return nil
}

func (pm pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return pm, tea.Quit
		case "g", "home":
			pm.viewport.GotoTop()
			return pm, nil
		case "G", "end":
			pm.viewport.GotoBottom()
			return pm, nil
		}

	case tea.WindowSizeMsg:
		pm.width = msg.Width
		pm.height = msg.Height
		pm = pm.resize()
	}

	var cmd tea.Cmd

	pm.viewport, cmd = pm.viewport.Update(msg)

	return pm, cmd
}

func (pm pagerModel) resize() pagerModel {
	header := lipgloss.Height(pm.headerView())
	footer := lipgloss.Height(pm.footerView())

	bodyHeight := pm.height - header - footer
	if bodyHeight < 1 {
		bodyHeight = 1
	}

	if !pm.ready {
		pm.viewport = viewport.New(pm.width, bodyHeight)
		pm.viewport.YPosition = header
		pm.viewport.SetContent(pm.content)
		pm.ready = true

		return pm
	}

	pm.viewport.Width = pm.width
	pm.viewport.Height = bodyHeight

	return pm
}

// needsPagination returns true if the content is taller than the terminal.
func (pm pagerModel) needsPagination() bool {
	if pm.height == 0 {
		return false
	}

	reserved := lipgloss.Height(pm.headerView()) + lipgloss.Height(pm.footerView())

	return strings.Count(pm.content, "\n")+1 > pm.height-reserved
}

func (pm pagerModel) View() string {
	if !pm.ready {
		return "\n  Loading..."
	}

	return fmt.Sprintf("%s\n%s\n%s", pm.headerView(), pm.viewport.View(), pm.footerView())
}

// staticView is the non-interactive rendering used when everything fits.
func (pm pagerModel) staticView() string {
	content := pm.content
	if content != "" && !strings.HasSuffix(content, "\n") {
		content += "\n"
	}

	return pm.headerView() + "\n" + content
}

func (pm pagerModel) headerView() string {
	return titleStyle.Render(pm.title)
}

func (pm pagerModel) footerView() string {
	percent := 100.0
	if pm.ready {
		percent = pm.viewport.ScrollPercent() * 100
	}

	return infoStyle.Render(fmt.Sprintf("%3.f%% | ↑/k ↓/j scroll | g/G top/bottom | q quit", percent))
}
