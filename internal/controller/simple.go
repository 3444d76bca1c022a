package controller

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/cpre/internal/model"
)

// SimpleUI implements UI by writing plain text to the command's output.
type SimpleUI struct {
	cmd    *cobra.Command
	config StartConfig
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd, config: newStartConfig()}
}

// Start initializes the UI.
func (s *SimpleUI) Start(options ...StartOption) error {
	s.config = newStartConfig(options...)

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close() {}

// DisplaySymbols prints the configured symbol sets.
func (s *SimpleUI) DisplaySymbols(defined, undefined []string) {
	s.printf("Defined:   %s\n", joinOrNone(defined))
	s.printf("Undefined: %s\n", joinOrNone(undefined))
}

// DisplayResults prints a per-file table followed by totals.
func (s *SimpleUI) DisplayResults(results []m.FileResult, err error) error {
	if err != nil && len(results) == 0 {
		s.printf("error: %v\n", err)

		return err
	}

	if len(results) == 0 {
		s.printf("No files found\n")

		return err
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Lines", "Kept", "Size", "Status"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_LEFT,
	})

	sum := summarize(results)

	for _, r := range results {
		table.Append([]string{
			string(r.Source.Origin),
			fmt.Sprintf("%d", r.LinesIn),
			fmt.Sprintf("%d", r.LinesKept),
			sizeChange(r),
			statusText(r, s.config.mode),
		})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(results)),
		fmt.Sprintf("%d", sum.linesIn),
		fmt.Sprintf("%d", sum.linesKept),
		humanize.Bytes(uint64(sum.bytesOut)),
		fmt.Sprintf("%d failed", sum.failed),
	})

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	for _, r := range results {
		if r.Err != nil {
			s.printf("%s: %v\n", r.Source.Origin, r.Err)
		}
	}

	return err
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

type summary struct {
	linesIn   int
	linesKept int
	bytesOut  int
	changed   int
	failed    int
}

func summarize(results []m.FileResult) summary {
	var sum summary

	for _, r := range results {
		sum.linesIn += r.LinesIn
		sum.linesKept += r.LinesKept
		sum.bytesOut += r.BytesOut

		switch {
		case r.Failed():
			sum.failed++
		case r.Status == m.StatusFiltered:
			sum.changed++
		}
	}

	return sum
}

func sizeChange(r m.FileResult) string {
	if r.Failed() {
		return "-"
	}

	if r.BytesIn == r.BytesOut {
		return humanize.Bytes(uint64(r.BytesIn))
	}

	return humanize.Bytes(uint64(r.BytesIn)) + " → " + humanize.Bytes(uint64(r.BytesOut))
}

func statusText(r m.FileResult, mode StartMode) string {
	if mode == ModeEstimate && r.Status == m.StatusFiltered {
		return "would filter"
	}

	return string(r.Status)
}

func joinOrNone(names []string) string {
	if len(names) == 0 {
		return "(none)"
	}

	return strings.Join(names, ", ")
}
