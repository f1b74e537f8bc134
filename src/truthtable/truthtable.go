package truthtable

import (
	"fmt"

	"github.com/eriklarko/logic-simulator/src/boolexpr"
	"github.com/samber/lo"
)

// Row is one line of a truth table. Values are in the order of the table's
// variables.
type Row struct {
	Values []bool
	Result bool
}

type Table struct {
	// Expression is the source text, empty when the table was generated from a tree
	Expression string
	Variables  []string
	Rows       []Row
}

// Generate evaluates tree for every assignment of variables and returns the
// rows in binary counting order with the first variable as the most
// significant bit. With no variables the table has a single row.
func Generate(tree *boolexpr.Node, variables []string) (*Table, error) {
	n := len(variables)
	rowCount := 1 << n

	table := &Table{
		Variables: variables,
		Rows:      make([]Row, 0, rowCount),
	}

	assignment := make(boolexpr.Assignment, n)
	for i := 0; i < rowCount; i++ {
		values := make([]bool, n)
		for j, name := range variables {
			values[j] = i&(1<<(n-1-j)) != 0
			assignment[name] = values[j]
		}

		result, err := tree.Solve(assignment)
		if err != nil {
			return nil, fmt.Errorf("failed evaluating row %d: %w", i, err)
		}
		table.Rows = append(table.Rows, Row{Values: values, Result: result})
	}

	return table, nil
}

// FromExpression parses the expression and generates its truth table.
func FromExpression(expression string) (*Table, error) {
	tree, variables, err := boolexpr.Parse(expression)
	if err != nil {
		return nil, err
	}

	table, err := Generate(tree, variables)
	if err != nil {
		return nil, err
	}
	table.Expression = expression
	return table, nil
}

// Assignment returns the variable values of the given row as an assignment.
func (t *Table) Assignment(row int) boolexpr.Assignment {
	assignment := make(boolexpr.Assignment, len(t.Variables))
	for j, name := range t.Variables {
		assignment[name] = t.Rows[row].Values[j]
	}
	return assignment
}

// Minterms returns the indexes of the rows whose result is true.
func (t *Table) Minterms() []int {
	return lo.FilterMap(t.Rows, func(row Row, i int) (int, bool) {
		return i, row.Result
	})
}
