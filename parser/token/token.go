package token

import (
	"strconv"
	"strings"

	"github.com/aburd/mal/mal"
)

// Token is either a structural bracket marker or a wrapper around a typed
// value.  Structural tokens are consumed by the parser and never retained
// inside a container.
type Token struct {
	Type Type
	Text string   // source lexeme
	Val  *mal.Val // set when Type == DATA
}

type Type uint

// Type constants used for the mal reader.
const (
	INVALID Type = iota

	// Delimiters
	PAREN_L
	PAREN_R
	BRACE_L
	BRACE_R

	// Typed values
	DATA

	numTokenTypes
)

func (typ Type) String() string {
	typeStrings := [numTokenTypes]string{
		INVALID: "invalid",
		PAREN_L: "(",
		PAREN_R: ")",
		BRACE_L: "[",
		BRACE_R: "]",
		DATA:    "data",
	}
	if typ >= numTokenTypes {
		return typeStrings[INVALID]
	}
	return typeStrings[typ]
}

func (tok *Token) String() string {
	if tok.Type == DATA {
		return tok.Val.String()
	}
	return tok.Type.String()
}

// FromString classifies a single lexeme as a token.  Classification is purely
// lexical -- no lookahead, no external state.  First match wins.
func FromString(text string) (*Token, error) {
	switch text {
	case "(":
		return &Token{Type: PAREN_L, Text: text}, nil
	case ")":
		return &Token{Type: PAREN_R, Text: text}, nil
	case "[":
		return &Token{Type: BRACE_L, Text: text}, nil
	case "]":
		return &Token{Type: BRACE_R, Text: text}, nil
	case "nil":
		return data(text, mal.Nil()), nil
	case "true":
		return data(text, mal.Bool(true)), nil
	case "false":
		return data(text, mal.Bool(false)), nil
	}
	switch {
	case strings.HasPrefix(text, ":"):
		if strings.HasPrefix(text, "::") {
			return nil, mal.ErrorConditionf(mal.CondIllegalToken, "malformed keyword: %v", text)
		}
		return data(text, mal.Keyword(text)), nil
	case allDigits(text):
		x, err := strconv.ParseUint(text, 10, 64)
		if err != nil {
			return nil, mal.ErrorConditionf(mal.CondIntegerOverflow, "integer literal overflows uint64: %v", text)
		}
		return data(text, mal.Int(x)), nil
	case strings.HasPrefix(text, `"`):
		if len(text) < 2 || !strings.HasSuffix(text, `"`) {
			return nil, mal.ErrorConditionf(mal.CondIllegalString, "unterminated string literal: %v", text)
		}
		return data(text, mal.String(text)), nil
	default:
		if strings.ContainsRune(text, '"') {
			return nil, mal.ErrorConditionf(mal.CondIllegalSymbol, "symbol contains a quote: %v", text)
		}
		if isDigit(rune(text[0])) {
			return nil, mal.ErrorConditionf(mal.CondIllegalSymbol, "symbol starts with a digit: %v", text)
		}
		return data(text, mal.Symbol(text)), nil
	}
}

func data(text string, v *mal.Val) *Token {
	return &Token{Type: DATA, Text: text, Val: v}
}

func allDigits(s string) bool {
	for _, c := range s {
		if !isDigit(c) {
			return false
		}
	}
	return true
}

func isDigit(c rune) bool {
	return '0' <= c && c <= '9'
}
