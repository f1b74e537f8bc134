package simulator

import (
	"testing"

	"github.com/eriklarko/logic-simulator/src/boolexpr"
	"github.com/eriklarko/logic-simulator/src/config"
	"github.com/eriklarko/logic-simulator/src/truthtable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSimulator(maxVariables int) *Simulator {
	cfg := config.Default()
	cfg.MaxVariables = maxVariables
	return New(cfg)
}

func TestDetectVariables(t *testing.T) {
	sim := newSimulator(config.DefaultMaxVariables)

	t.Run("valid expression", func(t *testing.T) {
		variables, err := sim.DetectVariables("(C AND B) OR (NOT A)")
		require.NoError(t, err)
		assert.Equal(t, []string{"A", "B", "C"}, variables)
	})

	t.Run("syntax error", func(t *testing.T) {
		var syntaxErr *boolexpr.SyntaxError
		_, err := sim.DetectVariables("(A AND B")
		assert.ErrorAs(t, err, &syntaxErr)
	})
}

func TestGenerateTable(t *testing.T) {
	t.Run("within limit", func(t *testing.T) {
		sim := newSimulator(3)

		table, err := sim.GenerateTable("A AND B OR C")
		require.NoError(t, err)
		assert.Equal(t, "A AND B OR C", table.Expression)
		assert.Len(t, table.Rows, 8)
	})

	t.Run("too many variables", func(t *testing.T) {
		sim := newSimulator(2)

		table, err := sim.GenerateTable("A AND B OR C")

		var tooMany *TooManyVariablesError
		require.ErrorAs(t, err, &tooMany)
		assert.Equal(t, 3, tooMany.Count)
		assert.Equal(t, 2, tooMany.Limit)
		assert.Contains(t, err.Error(), "8 rows")
		assert.Nil(t, table)
	})

	t.Run("syntax error", func(t *testing.T) {
		sim := newSimulator(config.DefaultMaxVariables)

		var syntaxErr *boolexpr.SyntaxError
		_, err := sim.GenerateTable("A AND")
		assert.ErrorAs(t, err, &syntaxErr)
	})
}

func TestQuickEvaluate(t *testing.T) {
	sim := newSimulator(config.DefaultMaxVariables)

	t.Run("all values given", func(t *testing.T) {
		table, err := sim.QuickEvaluate("(A AND B) OR (NOT C)", boolexpr.Assignment{"A": true, "B": true, "C": true})
		require.NoError(t, err)

		assert.Equal(t, []string{"A", "B", "C"}, table.Variables)
		assert.Equal(t, []truthtable.Row{{Values: []bool{true, true, true}, Result: true}}, table.Rows)
	})

	t.Run("extra values are ignored", func(t *testing.T) {
		table, err := sim.QuickEvaluate("NOT A", boolexpr.Assignment{"A": true, "Z": true})
		require.NoError(t, err)
		assert.False(t, table.Rows[0].Result)
	})

	t.Run("missing value", func(t *testing.T) {
		_, err := sim.QuickEvaluate("A XOR B", boolexpr.Assignment{"A": true})

		var missing *MissingValueError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, "B", missing.VariableName)
	})
}

func TestParseValues(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		values, err := ParseValues([]string{"A=1", "B=false", " C = true "})
		require.NoError(t, err)
		assert.Equal(t, boolexpr.Assignment{"A": true, "B": false, "C": true}, values)
	})

	invalid := map[string]string{
		"A":       "expected NAME=VALUE",
		"AB=1":    "invalid variable name",
		"a=1":     "invalid variable name",
		"A=maybe": "invalid value for A",
	}
	for pair, expectedError := range invalid {
		t.Run(pair, func(t *testing.T) {
			_, err := ParseValues([]string{pair})
			assert.ErrorContains(t, err, expectedError)
		})
	}
}
