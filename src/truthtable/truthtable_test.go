package truthtable_test

import (
	"fmt"
	"testing"

	"github.com/eriklarko/logic-simulator/src/boolexpr"
	"github.com/eriklarko/logic-simulator/src/truthtable"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	F = false
	T = true
)

func TestScenarios(t *testing.T) {
	testCases := map[string]struct {
		variables []string
		rows      []truthtable.Row
	}{
		"A AND B": {
			variables: []string{"A", "B"},
			rows: []truthtable.Row{
				{Values: []bool{F, F}, Result: F},
				{Values: []bool{F, T}, Result: F},
				{Values: []bool{T, F}, Result: F},
				{Values: []bool{T, T}, Result: T},
			},
		},
		"NOT A": {
			variables: []string{"A"},
			rows: []truthtable.Row{
				{Values: []bool{F}, Result: T},
				{Values: []bool{T}, Result: F},
			},
		},
		"A XOR B": {
			variables: []string{"A", "B"},
			rows: []truthtable.Row{
				{Values: []bool{F, F}, Result: F},
				{Values: []bool{F, T}, Result: T},
				{Values: []bool{T, F}, Result: T},
				{Values: []bool{T, T}, Result: F},
			},
		},
		"(A AND B) OR (NOT C)": {
			variables: []string{"A", "B", "C"},
			rows: []truthtable.Row{
				{Values: []bool{F, F, F}, Result: T},
				{Values: []bool{F, F, T}, Result: F},
				{Values: []bool{F, T, F}, Result: T},
				{Values: []bool{F, T, T}, Result: F},
				{Values: []bool{T, F, F}, Result: T},
				{Values: []bool{T, F, T}, Result: F},
				{Values: []bool{T, T, F}, Result: T},
				{Values: []bool{T, T, T}, Result: T},
			},
		},
	}

	for expression, expected := range testCases {
		t.Run(expression, func(t *testing.T) {
			table, err := truthtable.FromExpression(expression)
			require.NoError(t, err)

			assert.Equal(t, expression, table.Expression)
			assert.Equal(t, expected.variables, table.Variables)
			assert.Equal(t, expected.rows, table.Rows)
		})
	}
}

func TestRowCountAndUniqueness(t *testing.T) {
	expressions := []string{
		"A",
		"A NAND B",
		"A NOR B XOR C",
		"NOT (A AND B) OR (C XOR D)",
		"A AND B AND C AND D AND E AND F AND G AND H",
	}

	for _, expression := range expressions {
		t.Run(expression, func(t *testing.T) {
			table, err := truthtable.FromExpression(expression)
			require.NoError(t, err)

			require.Len(t, table.Rows, 1<<len(table.Variables))

			keys := lo.Map(table.Rows, func(row truthtable.Row, _ int) string {
				return fmt.Sprint(row.Values)
			})
			assert.Len(t, lo.Uniq(keys), len(keys), "every assignment should appear exactly once")
		})
	}
}

func TestCountingOrder(t *testing.T) {
	table, err := truthtable.FromExpression("A OR B OR C")
	require.NoError(t, err)

	for i, row := range table.Rows {
		counter := 0
		for _, v := range row.Values {
			counter <<= 1
			if v {
				counter |= 1
			}
		}
		assert.Equal(t, i, counter, "row %d is out of order", i)
	}
}

func TestNoVariables(t *testing.T) {
	testCases := map[string]bool{
		"1":           true,
		"0 OR FALSE":  false,
		"NOT 0 AND 1": true,
	}

	for expression, expected := range testCases {
		t.Run(expression, func(t *testing.T) {
			table, err := truthtable.FromExpression(expression)
			require.NoError(t, err)

			assert.Empty(t, table.Variables)
			require.Len(t, table.Rows, 1)
			assert.Empty(t, table.Rows[0].Values)
			assert.Equal(t, expected, table.Rows[0].Result)
		})
	}
}

func TestGenerateWithExplicitVariables(t *testing.T) {
	// a caller may pass a different column order than Parse uses
	tree, err := boolexpr.New("A AND NOT B")
	require.NoError(t, err)

	table, err := truthtable.Generate(tree, []string{"B", "A"})
	require.NoError(t, err)

	assert.Equal(t, []bool{F, T, F, F}, lo.Map(table.Rows, func(row truthtable.Row, _ int) bool {
		return row.Result
	}))
}

func TestGeneratePropagatesUnboundVariable(t *testing.T) {
	tree, err := boolexpr.New("A AND B")
	require.NoError(t, err)

	table, err := truthtable.Generate(tree, []string{"A"})

	var unbound *boolexpr.UnboundVariableError
	require.ErrorAs(t, err, &unbound)
	assert.Equal(t, "B", unbound.VariableName)
	assert.Nil(t, table)
}

func TestSyntaxErrorProducesNoTable(t *testing.T) {
	for _, expression := range []string{"A AND", "(A AND B"} {
		t.Run(expression, func(t *testing.T) {
			table, err := truthtable.FromExpression(expression)

			var syntaxErr *boolexpr.SyntaxError
			assert.ErrorAs(t, err, &syntaxErr)
			assert.Nil(t, table)
		})
	}
}

func TestAssignmentAndMinterms(t *testing.T) {
	table, err := truthtable.FromExpression("A XOR B")
	require.NoError(t, err)

	assert.Equal(t, boolexpr.Assignment{"A": true, "B": false}, table.Assignment(2))
	assert.Equal(t, []int{1, 2}, table.Minterms())
}
