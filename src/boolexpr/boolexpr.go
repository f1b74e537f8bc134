package boolexpr

import (
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"
)

type Operator int

const (
	VARIABLE Operator = iota
	CONSTANT
	NOT
	AND
	OR
	NAND
	NOR
	XOR
)

var operatorNames = map[Operator]string{
	VARIABLE: "VARIABLE",
	CONSTANT: "CONSTANT",
	NOT:      "NOT",
	AND:      "AND",
	OR:       "OR",
	NAND:     "NAND",
	NOR:      "NOR",
	XOR:      "XOR",
}

func (o Operator) String() string {
	if name, ok := operatorNames[o]; ok {
		return name
	}
	return fmt.Sprintf("Operator(%d)", int(o))
}

// IsBinary reports whether the operator takes two operands.
func (o Operator) IsBinary() bool {
	switch o {
	case AND, OR, NAND, NOR, XOR:
		return true
	}
	return false
}

// Node is one node of a parsed expression. NOT nodes keep their operand in
// Left, binary nodes use both Left and Right, and leaves use neither.
//
// Trees returned by Parse are never modified afterwards, so the same tree can
// be solved from several goroutines at once.
type Node struct {
	Operator Operator
	Left     *Node
	Right    *Node

	name  string
	value bool
}

// Assignment maps variable names to their values for one evaluation.
type Assignment map[string]bool

func newVariable(name string) *Node {
	return &Node{Operator: VARIABLE, name: name}
}

func newConstant(value bool) *Node {
	return &Node{Operator: CONSTANT, value: value}
}

func newNot(operand *Node) *Node {
	return &Node{Operator: NOT, Left: operand}
}

func newBinary(op Operator, left, right *Node) *Node {
	return &Node{Operator: op, Left: left, Right: right}
}

// New creates a new solvable boolean expression based on the given input string
// Example usage:
//
//	tree, err := boolexpr.New("A AND (B OR NOT C)")
//	if err != nil {
//		log.Fatalf("failed to create expression tree: %v", err)
//	}
//	fmt.Println(tree.Solve(boolexpr.Assignment{"A": true, "B": false, "C": false})) // Output: true
func New(expression string) (*Node, error) {
	root, _, err := Parse(expression)
	if err != nil {
		return nil, fmt.Errorf("failed to build expression tree for '%s': %w", expression, err)
	}
	return root, nil
}

// Variables returns the distinct variable names used in the tree, sorted
// alphabetically. This is the column order of a truth table.
func (n *Node) Variables() []string {
	var names []string
	n.walk(func(node *Node) {
		if node.Operator == VARIABLE {
			names = append(names, node.name)
		}
	})

	if len(names) == 0 {
		return nil
	}

	names = lo.Uniq(names)
	slices.Sort(names)
	return names
}

func (n *Node) walk(visit func(*Node)) {
	if n == nil {
		return
	}
	visit(n)
	n.Left.walk(visit)
	n.Right.walk(visit)
}

// String returns the expression fully parenthesised, e.g. "((A AND B) OR (NOT C))".
// The output parses back into an equal tree.
func (n *Node) String() string {
	var sb strings.Builder
	n.format(&sb)
	return sb.String()
}

func (n *Node) format(sb *strings.Builder) {
	switch n.Operator {
	case VARIABLE:
		sb.WriteString(n.name)
	case CONSTANT:
		if n.value {
			sb.WriteString("1")
		} else {
			sb.WriteString("0")
		}
	case NOT:
		sb.WriteString("(NOT ")
		n.Left.format(sb)
		sb.WriteString(")")
	default:
		if !n.Operator.IsBinary() {
			sb.WriteString(n.Operator.String())
			return
		}
		sb.WriteString("(")
		n.Left.format(sb)
		sb.WriteString(" ")
		sb.WriteString(n.Operator.String())
		sb.WriteString(" ")
		n.Right.format(sb)
		sb.WriteString(")")
	}
}
