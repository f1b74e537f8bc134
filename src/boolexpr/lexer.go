package boolexpr

import (
	"unicode"
)

type tokenKind int

const (
	tokenEOF tokenKind = iota
	tokenLeftParen
	tokenRightParen
	tokenOperator
	tokenConstant
	tokenVariable
)

type token struct {
	kind   tokenKind
	text   string
	offset int

	operator Operator
	value    bool
}

var keywords = map[string]Operator{
	"NOT":  NOT,
	"AND":  AND,
	"OR":   OR,
	"NAND": NAND,
	"NOR":  NOR,
	"XOR":  XOR,
}

var constants = map[string]bool{
	"0":     false,
	"1":     true,
	"FALSE": false,
	"TRUE":  true,
}

// tokenize splits the expression on whitespace and parentheses and classifies
// every word. The returned slice always ends with a tokenEOF token.
func tokenize(expression string) ([]token, error) {
	var tokens []token
	var word []rune
	wordStart := 0

	flush := func() error {
		if len(word) == 0 {
			return nil
		}
		t, err := classify(string(word), wordStart)
		if err != nil {
			return err
		}
		tokens = append(tokens, t)
		word = word[:0]
		return nil
	}

	for i, r := range expression {
		switch {
		case unicode.IsSpace(r):
			if err := flush(); err != nil {
				return nil, err
			}
		case r == '(':
			if err := flush(); err != nil {
				return nil, err
			}
			tokens = append(tokens, token{kind: tokenLeftParen, text: "(", offset: i})
		case r == ')':
			if err := flush(); err != nil {
				return nil, err
			}
			tokens = append(tokens, token{kind: tokenRightParen, text: ")", offset: i})
		default:
			if len(word) == 0 {
				wordStart = i
			}
			word = append(word, r)
		}
	}
	if err := flush(); err != nil {
		return nil, err
	}

	return append(tokens, token{kind: tokenEOF, offset: len(expression)}), nil
}

func classify(word string, offset int) (token, error) {
	if op, ok := keywords[word]; ok {
		return token{kind: tokenOperator, text: word, offset: offset, operator: op}, nil
	}
	if value, ok := constants[word]; ok {
		return token{kind: tokenConstant, text: word, offset: offset, value: value}, nil
	}
	if isVariableName(word) {
		return token{kind: tokenVariable, text: word, offset: offset}, nil
	}

	if isLetters(word) {
		// words like "AB" or "and" look like variables but aren't allowed
		return token{}, NewSyntaxError(offset, word, "invalid variable name, variables are single uppercase letters A-Z")
	}
	return token{}, NewSyntaxError(offset, word, "unrecognized token")
}

func isVariableName(word string) bool {
	return len(word) == 1 && word[0] >= 'A' && word[0] <= 'Z'
}

func isLetters(word string) bool {
	for _, r := range word {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return word != ""
}
