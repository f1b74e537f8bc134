package simulator

import (
	"fmt"
)

// TooManyVariablesError is returned when an expression uses more variables
// than the configured limit allows in a truth table.
type TooManyVariablesError struct {
	Count int
	Limit int
}

func (e TooManyVariablesError) Error() string {
	return fmt.Sprintf("expression uses %d variables, at most %d are allowed (the table would have %d rows)", e.Count, e.Limit, 1<<e.Count)
}

// MissingValueError is returned by QuickEvaluate when no value was given for a
// variable the expression uses.
type MissingValueError struct {
	VariableName string
}

func (e MissingValueError) Error() string {
	return fmt.Sprintf("no value given for variable %s", e.VariableName)
}
