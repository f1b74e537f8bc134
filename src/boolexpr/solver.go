package boolexpr

import (
	"fmt"
)

// Solve evaluates the expression with the variable values in assignment. Every
// variable in the tree must have a value, otherwise an *UnboundVariableError is
// returned.
func (n *Node) Solve(assignment Assignment) (bool, error) {
	switch n.Operator {
	case VARIABLE:
		value, ok := assignment[n.name]
		if !ok {
			return false, NewUnboundVariableError(n.name)
		}
		return value, nil

	case CONSTANT:
		return n.value, nil

	case NOT:
		result, err := n.Left.Solve(assignment)
		if err != nil {
			return false, fmt.Errorf("failed solving NOT sub-expression: %w", err)
		}
		return !result, nil
	}

	if !n.Operator.IsBinary() {
		return false, fmt.Errorf("unknown operator: %v", n.Operator)
	}

	leftResult, err := n.Left.Solve(assignment)
	if err != nil {
		return false, fmt.Errorf("failed solving left expression: %w", err)
	}
	rightResult, err := n.Right.Solve(assignment)
	if err != nil {
		return false, fmt.Errorf("failed solving right expression: %w", err)
	}
	return apply(n.Operator, leftResult, rightResult)
}

func apply(op Operator, left, right bool) (bool, error) {
	switch op {
	case AND:
		return left && right, nil
	case OR:
		return left || right, nil
	case NAND:
		return !(left && right), nil
	case NOR:
		return !(left || right), nil
	case XOR:
		return left != right, nil
	}
	return false, fmt.Errorf("not a binary operator: %v", op)
}
