package cmd

import (
	"github.com/spf13/cobra"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [paths...]",
		Short: "Show what filtering would change, without writing",
		Long: `List every file cpre would process with its line counts before and after
filtering. Files are not modified. Malformed files are reported.`,
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

			return newWorkflow(cmd, logger, true).Estimate(cmd.Context(), opts)
		},
	}
	addRunFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
