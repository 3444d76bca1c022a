package controller

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	m "github.com/mouse-blink/cpre/internal/model"
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output io.Writer
	config StartConfig
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output, config: newStartConfig()}
}

// Start initializes the UI.
func (t *TUI) Start(options ...StartOption) error {
	t.config = newStartConfig(options...)

	return nil
}

// Close finalizes the UI.
func (t *TUI) Close() {}

// DisplaySymbols shows the configured symbol sets.
func (t *TUI) DisplaySymbols(defined, undefined []string) {
	_, _ = fmt.Fprintf(t.output, "%s %s\n%s %s\n",
		mutedStyle.Render("defined:  "), accentStyle.Render(joinOrNone(defined)),
		mutedStyle.Render("undefined:"), accentStyle.Render(joinOrNone(undefined)),
	)
}

// DisplayResults renders the results. Short lists are printed once; longer
// estimate listings open an interactive, filterable view.
func (t *TUI) DisplayResults(results []m.FileResult, err error) error {
	if err != nil && len(results) == 0 {
		_, _ = fmt.Fprintf(t.output, "%s\n", errorStyle.Render("error: "+err.Error()))

		return err
	}

	model := newResultsModel(t.config.mode)
	model = model.handleResultsMsg(resultsMsg{results: results, err: err})

	if t.config.mode != ModeEstimate || !model.needsPagination() {
		_, _ = fmt.Fprint(t.output, model.printOnce().View())

		return err
	}

	program := tea.NewProgram(model, tea.WithOutput(t.output), tea.WithAltScreen())
	if _, runErr := program.Run(); runErr != nil {
		return runErr
	}

	return err
}
