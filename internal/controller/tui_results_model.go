package controller

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/cpre/internal/model"
)

const countWidth = 13

var (
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Padding(1, 0, 0, 2)
	summaryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Padding(0, 0, 1, 2)
	accentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

type resultDelegate struct{}

func (d resultDelegate) Height() int  { return 1 }
func (d resultDelegate) Spacing() int { return 0 }
func (d resultDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d resultDelegate) Render(w io.Writer, lm list.Model, index int, item list.Item) {
	file, ok := item.(fileItem)
	if !ok {
		return
	}

	var pathStyle, countStyle lipgloss.Style

	if index == lm.Index() {
		pathStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true)
		countStyle = pathStyle.Width(countWidth).Align(lipgloss.Right)
	} else {
		pathStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
		countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11")).
			Bold(true).
			Width(countWidth).
			Align(lipgloss.Right)
	}

	if file.err != nil {
		pathStyle = pathStyle.Foreground(lipgloss.Color("9"))
	}

	width := lm.Width() - countWidth - 2

	line := fmt.Sprintf("%s  %s",
		countStyle.Render(formatCounts(file)),
		pathStyle.Render(truncateToWidth(file.path, width)),
	)
	_, _ = fmt.Fprint(w, line)
}

func formatCounts(file fileItem) string {
	switch file.status {
	case m.StatusMalformed:
		return "malformed"
	case m.StatusIOError:
		return "io error"
	default:
		return fmt.Sprintf("%d/%d", file.kept, file.in)
	}
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	if width <= 1 {
		return ellipsis
	}

	maxWidth := width - lipgloss.Width(ellipsis)
	currentWidth := 0

	result := make([]rune, 0, len(text))
	for _, r := range text {
		rWidth := lipgloss.Width(string(r))
		if currentWidth+rWidth > maxWidth {
			break
		}

		result = append(result, r)
		currentWidth += rWidth
	}

	return string(result) + ellipsis
}

// resultsModel lists per-file outcomes of a run.
type resultsModel struct {
	mode     StartMode
	width    int
	height   int
	fileList list.Model
	sum      summary
	total    int
	err      error
	rendered bool
	// static renders every row at once, without key hints, for output
	// that is printed once instead of run as a program.
	static bool
}

func newResultsModel(mode StartMode) resultsModel {
	fileList := list.New([]list.Item{}, resultDelegate{}, 80, 20)
	fileList.SetShowPagination(false)
	fileList.SetShowFilter(true)
	fileList.SetShowHelp(false)
	fileList.SetShowTitle(false)
	fileList.SetShowStatusBar(false)
	fileList.FilterInput.Placeholder = "Filter by path…"

	return resultsModel{
		mode:     mode,
		width:    80,
		height:   24,
		fileList: fileList,
	}
}

func (rm resultsModel) Init() tea.Cmd {
	return nil
}

func (rm resultsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		rm.width = msg.Width
		rm.height = msg.Height
		rm.fileList.SetWidth(rm.width)

	case tea.KeyMsg:
		if rm.fileList.FilterState() != list.Filtering {
			switch msg.String() {
			case "q", "ctrl+c", "esc":
				return rm, tea.Quit
			}
		}

		rm.fileList, cmd = rm.fileList.Update(msg)

		return rm, cmd

	case resultsMsg:
		rm = rm.handleResultsMsg(msg)
	}

	return rm, cmd
}

func (rm resultsModel) handleResultsMsg(msg resultsMsg) resultsModel {
	items := make([]list.Item, 0, len(msg.results))
	for _, r := range msg.results {
		items = append(items, newFileItem(r))
	}

	rm.fileList.SetItems(items)
	rm.sum = summarize(msg.results)
	rm.total = len(msg.results)
	rm.err = msg.err
	rm.rendered = true

	return rm
}

// needsPagination reports whether the list would not fit on one screen.
func (rm resultsModel) needsPagination() bool {
	return rm.total > rm.listHeight()
}

// printOnce switches the model to a non-interactive view of all rows.
func (rm resultsModel) printOnce() resultsModel {
	rm.static = true
	rm.fileList.SetFilteringEnabled(false)
	rm.fileList.SetShowFilter(false)

	return rm
}

func (rm resultsModel) listHeight() int {
	if rm.static {
		return max(rm.total, 1)
	}

	// title (2) + summary (2) + footer (1) + border (2) + header (2)
	h := rm.height - 9
	if h < 5 {
		h = 5
	}

	return h
}

func (rm resultsModel) View() string {
	if !rm.rendered {
		return "Filtering…\n"
	}

	title := "cpre results"
	if rm.mode == ModeEstimate {
		title = "cpre estimate"
	}

	changed := "Filtered"
	if rm.mode == ModeEstimate {
		changed = "Would filter"
	}

	summaryLine := fmt.Sprintf(
		"Files: %s   %s: %s   Lines kept: %s/%s",
		accentStyle.Render(fmt.Sprintf("%d", rm.total)),
		changed,
		accentStyle.Render(fmt.Sprintf("%d", rm.sum.changed)),
		accentStyle.Render(fmt.Sprintf("%d", rm.sum.linesKept)),
		accentStyle.Render(fmt.Sprintf("%d", rm.sum.linesIn)),
	)
	if rm.sum.failed > 0 {
		summaryLine += "   " + errorStyle.Render(fmt.Sprintf("Failed: %d", rm.sum.failed))
	}

	parts := []string{
		titleStyle.Render(title),
		summaryStyle.Render(summaryLine),
		rm.renderTable(),
	}

	for _, it := range rm.fileList.Items() {
		if f, ok := it.(fileItem); ok && f.err != nil {
			parts = append(parts, errorStyle.Render(fmt.Sprintf("  %s: %v", f.path, f.err)))
		}
	}

	if !rm.static {
		parts = append(parts, mutedStyle.Width(rm.width).Align(lipgloss.Center).
			Render("↑/k up • ↓/j down • / filter • q quit"))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...) + "\n"
}

func (rm resultsModel) renderTable() string {
	listWidth := rm.width - 6

	rm.fileList.SetHeight(rm.listHeight())
	rm.fileList.SetWidth(listWidth)

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Bold(true).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("8")).
		Width(listWidth)

	headers := headerStyle.Render(fmt.Sprintf("%*s  %s", countWidth, "Kept/Lines", "File Path"))

	tableContainer := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Margin(0, 1).
		Padding(0, 1)

	return tableContainer.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			headers,
			rm.fileList.View(),
		),
	)
}
