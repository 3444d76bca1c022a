// Package cmd provides the root command and CLI setup for cpre.
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/cpre/internal/adapter"
	"github.com/mouse-blink/cpre/internal/controller"
	"github.com/mouse-blink/cpre/internal/domain"
	"github.com/mouse-blink/cpre/internal/log"
	m "github.com/mouse-blink/cpre/internal/model"
)

var configLoader adapter.ConfigLoader = adapter.NewYAMLConfigLoader()

// newWorkflow wires the workflow for a command. Tests replace it.
var newWorkflow = func(cmd *cobra.Command, logger *slog.Logger, interactive bool) domain.Workflow {
	ui := controller.NewUI(cmd, interactive && controller.IsTTY(cmd.OutOrStdout()))

	return domain.NewWorkflow(adapter.NewLocalSourceFSAdapter(), ui, logger)
}

var (
	defineFlags   []string
	undefineFlags []string
	excludeFlags  []string
	extFlags      []string
	parallelFlag  int
	configFlag    string
	logLevelFlag  string
	logFormatFlag string
	stdoutFlag    bool
	traceFlag     bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cpre [paths...]",
		Short: "Strip resolved #ifdef blocks from source files",
		Long: `cpre removes conditional blocks from text files according to the symbols
you declare as defined (-d) or undefined (-u).

Recognized directives, each alone on its line:
  #if, #ifdef NAME, #ifndef NAME, #else, #endif

Blocks whose condition cannot be resolved from the declared symbols are kept
verbatim, directive lines included. Directories are processed recursively.
Files are rewritten in place unless --stdout is given.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := loadOptions(cmd, args)
			if err != nil {
				return err
			}

			logger, err := newLogger(cmd, traceFlag)
			if err != nil {
				return err
			}

			wf := newWorkflow(cmd, logger, !stdoutFlag)

			return wf.Filter(cmd.Context(), domain.FilterArgs{
				EstimateArgs: opts,
				Stdout:       stdoutFlag,
				Output:       cmd.OutOrStdout(),
				Trace:        traceFlag,
			})
		},
	}

	addRunFlags(cmd)
	cmd.Flags().BoolVar(&stdoutFlag, "stdout", false, "write filtered files to stdout instead of rewriting them")
	cmd.Flags().BoolVar(&traceFlag, "trace", false, "log every line with the scope stack (implies --log-level=debug)")

	cmd.PersistentFlags().StringVar(&configFlag, "config", "", "config file (default "+adapter.DefaultConfigFile+" if present)")
	cmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "warn",
		fmt.Sprintf("log level, one of %v", log.AllLevels))
	cmd.PersistentFlags().StringVar(&logFormatFlag, "log-format", "text",
		fmt.Sprintf("log format, one of %v", log.AllFormats))

	return cmd
}

// addRunFlags registers the flags shared by every command that filters files.
func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().StringArrayVarP(&defineFlags, "define", "d", nil, "treat symbol as defined (can be repeated)")
	cmd.Flags().StringArrayVarP(&undefineFlags, "undefine", "u", nil, "treat symbol as undefined (can be repeated)")
	cmd.Flags().StringArrayVarP(&excludeFlags, "exclude", "x", nil, "exclude files matching regex (can be repeated)")
	cmd.Flags().StringArrayVarP(&extFlags, "ext", "e", nil, "only process files with this extension (can be repeated)")
	cmd.Flags().IntVarP(&parallelFlag, "parallel", "p", 1, "number of files processed in parallel")
}

// loadOptions merges the config file with flags. Flags add to list
// settings and override scalar ones.
func loadOptions(cmd *cobra.Command, args []string) (domain.EstimateArgs, error) {
	cfg, err := configLoader.Load(m.Path(configFlag))
	if err != nil {
		return domain.EstimateArgs{}, err
	}

	symbols, err := domain.NewSymbols(
		append(cfg.Define, defineFlags...),
		append(cfg.Undefine, undefineFlags...),
	)
	if err != nil {
		return domain.EstimateArgs{}, err
	}

	threads := parallelFlag
	if !cmd.Flags().Changed("parallel") && cfg.Parallel > 0 {
		threads = cfg.Parallel
	}

	if threads <= 0 {
		return domain.EstimateArgs{}, fmt.Errorf("--parallel must be positive, got %d", threads)
	}

	return domain.EstimateArgs{
		Paths: parsePaths(args),
		Filter: m.SourceFilter{
			Extensions: append(cfg.Extensions, extFlags...),
			Exclude:    append(cfg.Exclude, excludeFlags...),
		},
		Symbols: symbols,
		Threads: threads,
	}, nil
}

func newLogger(cmd *cobra.Command, trace bool) (*slog.Logger, error) {
	return log.NewLogger(cmd.ErrOrStderr(), logLevelFlag, logFormatFlag, trace)
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
