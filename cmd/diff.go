package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/cpre/internal/domain"
)

var diffContextFlag int

// diffCmd represents the diff command.
var diffCmd = newDiffCmd()

func newDiffCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "diff [paths...]",
		Short:         "Print a unified diff of the changes filtering would make",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := loadOptions(cmd, args)
			if err != nil {
				return err
			}

			logger, err := newLogger(cmd, false)
			if err != nil {
				return err
			}

			return newWorkflow(cmd, logger, false).Diff(cmd.Context(), domain.DiffArgs{
				EstimateArgs: opts,
				Output:       cmd.OutOrStdout(),
				Context:      diffContextFlag,
			})
		},
	}
	addRunFlags(cmd)
	cmd.Flags().IntVarP(&diffContextFlag, "context", "U", 3, "lines of context around each change")

	return cmd
}

func init() {
	rootCmd.AddCommand(diffCmd)
}
