package main

import (
	"github.com/lessw2020/Color-ls/internal/configuration"
	"github.com/spf13/cobra"
)

// options holds the resolved invocation options of the root command.
type options struct {
	all         bool
	long        bool
	human       bool
	reverse     bool
	byTime      bool
	noDirCounts bool
	verbose     bool
	color       colorModeValue
}

// colorModeValue adapts [configuration.ColorMode] to the pflag value
// interface, so an unrecognized --color argument fails at parse time (before
// any listing occurs).
type colorModeValue struct {
	mode configuration.ColorMode
}

func (v *colorModeValue) String() string {
	return v.mode.String()
}

func (v *colorModeValue) Set(s string) error {
	mode, err := configuration.ParseColorMode(s)
	if err != nil {
		return err
	}
	v.mode = mode

	return nil
}

func (*colorModeValue) Type() string {
	return "mode"
}

// newRootCmd builds the root command, seeding flag defaults from the
// optional configuration sources.
func newRootCmd() *cobra.Command {
	opts := &options{}

	configHandler := configuration.NewHandler(&configuration.GodotenvProvider{})
	defaults := configHandler.LoadDefaults()

	if mode, err := configuration.ParseColorMode(defaults.Color); err == nil {
		opts.color.mode = mode
	}

	cmd := &cobra.Command{
		Use:     progName + " [flags] [path...]",
		Short:   "List directory contents with colors and child counts",
		Version: version(),
		Args:    cobra.ArbitraryArgs,

		SilenceUsage: true,

		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogging(opts.verbose)

			app := newApp(cmd.OutOrStdout(), cmd.ErrOrStderr(), opts)
			app.Run(args)

			return nil
		},
	}

	// Registering help without a shorthand frees -h for --human-readable.
	cmd.Flags().Bool("help", false, "help for "+progName)

	cmd.Flags().BoolVarP(&opts.all, "all", "a", defaults.All, "do not ignore entries starting with .")
	cmd.Flags().BoolVarP(&opts.long, "long", "l", false, "use a long listing format")
	cmd.Flags().BoolVarP(&opts.human, "human-readable", "h", defaults.Human, "print sizes like 1.0K, 2.3M")
	cmd.Flags().BoolVarP(&opts.reverse, "reverse", "r", false, "reverse order while sorting")
	cmd.Flags().BoolVarP(&opts.byTime, "time", "t", false, "sort by modification time, oldest first")
	cmd.Flags().BoolVarP(&opts.noDirCounts, "no-dir-counts", "C", defaults.NoDirCounts, "suffix directories with / instead of child counts")
	cmd.Flags().BoolVar(&opts.verbose, "verbose", false, "enable debug logging")
	cmd.Flags().Var(&opts.color, "color", "colorize the output: never, always or auto")

	return cmd
}
