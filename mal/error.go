package mal

import (
	"errors"
	"fmt"
)

// Error conditions raised while reading.  Every reader failure carries one of
// these condition strings so callers can dispatch without matching message
// text.
const (
	CondLexingFailure    = "lexing-failure"
	CondIllegalToken     = "illegal-token"
	CondIllegalString    = "illegal-string"
	CondIllegalSymbol    = "illegal-symbol"
	CondUnterminatedList = "unterminated-list"
	CondUnmatchedSyntax  = "unmatched-syntax"
	CondUnexpectedToken  = "unexpected-token"
	CondIntegerOverflow  = "integer-overflow-error"
)

// ReaderError is an error produced while reading text into a Val.
type ReaderError struct {
	Condition string
	Message   string
}

// ErrorConditionf returns a ReaderError with the given condition and a
// formatted message.
func ErrorConditionf(condition string, format string, v ...interface{}) *ReaderError {
	return &ReaderError{
		Condition: condition,
		Message:   fmt.Sprintf(format, v...),
	}
}

// Error implements the error interface.
func (e *ReaderError) Error() string {
	return e.Condition + ": " + e.Message
}

// Condition returns the condition string of err if it is a ReaderError and
// the empty string otherwise.
func Condition(err error) string {
	var rerr *ReaderError
	if errors.As(err, &rerr) {
		return rerr.Condition
	}
	return ""
}
