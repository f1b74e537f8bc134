package cli

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/eriklarko/logic-simulator/src/config"
	"github.com/eriklarko/logic-simulator/src/environment"
	"github.com/eriklarko/logic-simulator/src/simulator"
	"github.com/eriklarko/logic-simulator/src/truthtable"
	"github.com/eriklarko/logic-simulator/src/tui"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func (a *app) newTableCommand() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "table EXPRESSION...",
		Short: "Print the truth table of an expression",
		Long: `Print every assignment of the expression's variables together with the
result. Rows are in binary counting order with the alphabetically first
variable as the most significant bit.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.printTable(cmd, joinExpression(args), file)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "export the table as CSV to this file instead of printing it")
	cmd.Flags().BoolVar(&a.summary, "summary", false, "print the minterms after the table")

	return cmd
}

func (a *app) printTable(cmd *cobra.Command, expression string, file string) error {
	table, err := a.simulator.GenerateTable(expression)
	if err != nil {
		return err
	}

	if file != "" {
		path, err := truthtable.WriteCSVFile(file, table)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Exported %d rows to: %s\n", len(table.Rows), path)
	} else if err := truthtable.Render(cmd.OutOrStdout(), table, a.renderOptions()); err != nil {
		return err
	}

	if a.summary {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), mintermSummary(table))
	}
	return nil
}

// mintermSummary lists the rows where the expression is true, "Minterms: m(1, 2)".
func mintermSummary(table *truthtable.Table) string {
	minterms := table.Minterms()
	if len(minterms) == 0 {
		return "Minterms: none"
	}
	return "Minterms: m(" + strings.Join(lo.Map(minterms, func(m int, _ int) string { return strconv.Itoa(m) }), ", ") + ")"
}

func (a *app) newVarsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "vars EXPRESSION...",
		Short: "List the variables of an expression",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			variables, err := a.simulator.DetectVariables(joinExpression(args))
			if err != nil {
				return err
			}

			if len(variables) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No variables detected in expression")
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Detected %d variable(s): %s\n", len(variables), strings.Join(variables, ", "))
			return nil
		},
	}
}

func (a *app) newEvalCommand() *cobra.Command {
	var pairs []string

	cmd := &cobra.Command{
		Use:   "eval EXPRESSION... --set NAME=VALUE...",
		Short: "Evaluate an expression for one assignment",
		Long: `Evaluate the expression with the given variable values and print the single
matching row of its truth table. Every variable needs a value; values are
1/0, true/false or t/f.`,
		Example: `  logicsim eval "(A AND B) OR (NOT C)" --set A=1 --set B=1 --set C=0`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := simulator.ParseValues(pairs)
			if err != nil {
				return err
			}

			table, err := a.simulator.QuickEvaluate(joinExpression(args), values)
			if err != nil {
				return err
			}

			if err := truthtable.Render(cmd.OutOrStdout(), table, a.renderOptions()); err != nil {
				return err
			}
			if a.config.Output == truthtable.FormatText {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Output = %s\n", bitString(table.Rows[0].Result))
			}
			return nil
		},
	}
	cmd.Flags().StringArrayVarP(&pairs, "set", "s", nil, "variable value as NAME=VALUE, repeatable")

	return cmd
}

func bitString(v bool) string {
	if v {
		return "1"
	}
	return "0"
}

func (a *app) newREPLCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Read expressions interactively and print their truth tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runLoop(cmd)
		},
	}
}

func (a *app) runLoop(cmd *cobra.Command) error {
	opts := tui.Options{
		Format: a.config.Output,
		Color:  a.renderOptions().Color,
	}

	if !environment.IsInteractive() {
		// keeps piped csv/json output clean
		opts.Status = cmd.ErrOrStderr()
		return tui.NewFromReader(a.simulator, cmd.InOrStdin(), cmd.OutOrStdout(), opts).Run()
	}

	opts.Banner = true
	loop, err := tui.New(a.simulator, expandHome(a.config.HistoryFile), opts)
	if err != nil {
		return err
	}
	return loop.Run()
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return home + path[1:]
}

func (a *app) newConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the logicsim config file",
		// the config file may not exist yet, skip loading it
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return nil
		},
	}
	cmd.AddCommand(a.newConfigInitCommand())
	return cmd
}

func (a *app) newConfigInitCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the default settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := a.configFile
			if path == "" {
				path = config.DefaultPath
			}

			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("config file %s already exists, use --force to overwrite it", path)
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("failed to check config file %s: %w", path, err)
			}

			cfg := config.Default()
			cfg.Path = path
			if err := cfg.Write(); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote default config to: %s\n", path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")

	return cmd
}

func newVersionCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "logicsim v%s\n", version)
		},
	}
}
