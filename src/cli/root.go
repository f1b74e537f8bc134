package cli

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/eriklarko/logic-simulator/src/config"
	"github.com/eriklarko/logic-simulator/src/environment"
	"github.com/eriklarko/logic-simulator/src/simulator"
	"github.com/eriklarko/logic-simulator/src/truthtable"
	"github.com/spf13/cobra"
)

// Version is set at build time.
var Version = "0.1.0"

type app struct {
	configFile   string
	verbose      bool
	output       string
	maxVariables int
	color        string
	summary      bool

	config    *config.Config
	simulator *simulator.Simulator
}

// NewRootCmd creates the logicsim command with all subcommands.
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "logicsim [EXPRESSION]",
		Short: "Digital logic simulator: truth tables for Boolean expressions",
		Long: `logicsim parses Boolean expressions over single-letter variables and the
gates AND, OR, NOT, NAND, NOR and XOR, and prints their truth tables.

Without arguments it starts an interactive prompt on a terminal, or reads one
expression per line from stdin otherwise.`,
		Example: `  logicsim "(A AND B) OR (NOT C)"
  logicsim table A XOR B -o markdown
  logicsim eval A NAND B --set A=1 --set B=0`,
		Version:           Version,
		Args:              cobra.ArbitraryArgs,
		PersistentPreRunE: a.setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return a.printTable(cmd, joinExpression(args), "")
			}
			return a.runLoop(cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.Flags().BoolVar(&a.summary, "summary", false, "print the minterms after the table")

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", fmt.Sprintf("config file (default: ./%s)", config.DefaultPath))
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")
	flags.StringVarP(&a.output, "output", "o", "", "output format ("+strings.Join(truthtable.Formats, "|")+")")
	flags.IntVar(&a.maxVariables, "max-variables", 0, "refuse expressions with more variables than this")
	flags.StringVar(&a.color, "color", "", "color output (auto|always|never)")

	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return truthtable.Formats, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(a.newTableCommand())
	rootCmd.AddCommand(a.newVarsCommand())
	rootCmd.AddCommand(a.newEvalCommand())
	rootCmd.AddCommand(a.newREPLCommand())
	rootCmd.AddCommand(a.newConfigCommand())
	rootCmd.AddCommand(newVersionCommand(Version))

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if a.verbose {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	var err error
	if a.configFile != "" {
		// an explicitly requested config has to exist
		a.config, err = config.LoadConfig(a.configFile)
	} else {
		a.config, err = config.LoadOrDefault(config.DefaultPath)
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("output") {
		a.config.Output = a.output
	}
	if flags.Changed("max-variables") {
		a.config.MaxVariables = a.maxVariables
	}
	if flags.Changed("color") {
		a.config.Color = a.color
	}
	if err := a.config.Validate(); err != nil {
		return err
	}

	slog.Debug("loaded config", "path", a.config.Path, "output", a.config.Output, "max_variables", a.config.MaxVariables)
	a.simulator = simulator.New(a.config)
	return nil
}

func (a *app) renderOptions() truthtable.RenderOptions {
	return truthtable.RenderOptions{
		Format: a.config.Output,
		Color:  environment.UseColor(a.config.Color, os.Stdout),
	}
}

// joinExpression lets users skip the quotes: `logicsim table A AND B`.
func joinExpression(args []string) string {
	return strings.Join(args, " ")
}
