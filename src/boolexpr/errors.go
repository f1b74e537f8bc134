package boolexpr

import (
	"fmt"
)

// SyntaxError is returned when an expression cannot be parsed.
type SyntaxError struct {
	// Offset is the byte offset in the input where the problem was found
	Offset int
	// Token is the offending token, empty when the input ended unexpectedly
	Token  string
	Reason string
}

// NewSyntaxError creates a new SyntaxError at the given offset.
func NewSyntaxError(offset int, token string, reason string) error {
	return &SyntaxError{Offset: offset, Token: token, Reason: reason}
}

func (e SyntaxError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("syntax error at position %d: %s", e.Offset+1, e.Reason)
	}
	return fmt.Sprintf("syntax error at position %d near '%s': %s", e.Offset+1, e.Token, e.Reason)
}

// UnboundVariableError is returned when an expression references a variable
// the assignment has no value for.
type UnboundVariableError struct {
	VariableName string
}

// NewUnboundVariableError creates a new UnboundVariableError with the given variable name.
func NewUnboundVariableError(variableName string) error {
	return &UnboundVariableError{VariableName: variableName}
}

func (e UnboundVariableError) Error() string {
	return fmt.Sprintf("unbound variable: %s", e.VariableName)
}
