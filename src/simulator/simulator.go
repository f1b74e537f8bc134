package simulator

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/eriklarko/logic-simulator/src/boolexpr"
	"github.com/eriklarko/logic-simulator/src/config"
	"github.com/eriklarko/logic-simulator/src/truthtable"
	"github.com/samber/lo"
)

// Simulator is what the front-ends talk to. It holds no state besides its
// configuration, so one instance can serve any number of callers.
type Simulator struct {
	config *config.Config
}

func New(config *config.Config) *Simulator {
	return &Simulator{config: config}
}

// DetectVariables parses the expression and returns the variables it uses in
// column order.
func (s *Simulator) DetectVariables(expression string) ([]string, error) {
	_, variables, err := boolexpr.Parse(expression)
	if err != nil {
		return nil, err
	}

	slog.Debug("detected variables", "expression", expression, "variables", variables)
	return variables, nil
}

// GenerateTable returns the full truth table of the expression, refusing
// expressions with more variables than the configured maximum.
func (s *Simulator) GenerateTable(expression string) (*truthtable.Table, error) {
	tree, variables, err := boolexpr.Parse(expression)
	if err != nil {
		return nil, err
	}

	if len(variables) > s.config.MaxVariables {
		return nil, &TooManyVariablesError{Count: len(variables), Limit: s.config.MaxVariables}
	}

	table, err := truthtable.Generate(tree, variables)
	if err != nil {
		// the generator assigns every variable Parse found, so this is a bug
		return nil, fmt.Errorf("internal error generating truth table for '%s': %w", expression, err)
	}
	table.Expression = expression

	slog.Debug("generated truth table", "expression", expression, "rows", len(table.Rows))
	return table, nil
}

// QuickEvaluate evaluates the expression for a single assignment and returns
// it as a one-row table. Every variable of the expression needs a value.
func (s *Simulator) QuickEvaluate(expression string, values boolexpr.Assignment) (*truthtable.Table, error) {
	tree, variables, err := boolexpr.Parse(expression)
	if err != nil {
		return nil, err
	}

	unused := lo.Without(lo.Keys(map[string]bool(values)), variables...)
	if len(unused) > 0 {
		slog.Warn("ignoring values for variables the expression doesn't use", "variables", unused)
	}

	result, err := tree.Solve(values)
	var unbound *boolexpr.UnboundVariableError
	if errors.As(err, &unbound) {
		return nil, &MissingValueError{VariableName: unbound.VariableName}
	} else if err != nil {
		return nil, fmt.Errorf("failed to evaluate '%s': %w", expression, err)
	}

	row := truthtable.Row{
		Values: lo.Map(variables, func(name string, _ int) bool { return values[name] }),
		Result: result,
	}
	return &truthtable.Table{
		Expression: expression,
		Variables:  variables,
		Rows:       []truthtable.Row{row},
	}, nil
}

// ParseValues turns "A=1", "B=false" style pairs into an assignment.
func ParseValues(pairs []string) (boolexpr.Assignment, error) {
	values := make(boolexpr.Assignment, len(pairs))
	for _, pair := range pairs {
		name, raw, found := strings.Cut(pair, "=")
		if !found {
			return nil, fmt.Errorf("invalid value '%s', expected NAME=VALUE", pair)
		}

		name = strings.TrimSpace(name)
		if len(name) != 1 || name[0] < 'A' || name[0] > 'Z' {
			return nil, fmt.Errorf("invalid variable name '%s' in '%s'", name, pair)
		}

		value, err := strconv.ParseBool(strings.TrimSpace(raw))
		if err != nil {
			return nil, fmt.Errorf("invalid value for %s: %w", name, err)
		}
		values[name] = value
	}
	return values, nil
}
