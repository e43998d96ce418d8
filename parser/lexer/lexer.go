// Package lexer scans raw source text into an ordered sequence of lexeme
// substrings.  The scan is a single pass of one pattern with no bracket-depth
// tracking -- nesting is entirely the parser's responsibility.
package lexer

import (
	"regexp"
	"strings"
	"sync"

	"github.com/aburd/mal/mal"
)

// lexemePattern recognizes, in priority order: the unquote-splice sequence,
// any single punctuation or reader-macro character, a double-quoted run that
// tolerates backslash escapes and may remain unterminated (validated during
// classification), a line comment, and otherwise a maximal run of characters
// excluding whitespace, commas and the delimiter set.
const lexemePattern = `[\s,]*(~@|[\[\]{}()'` + "`" + `~^@]|"(?:\\.|[^\\"])*"?|;.*|[^\s\[\]{}('"` + "`" + `,;)]*)`

var pattern = sync.OnceValues(func() (*regexp.Regexp, error) {
	return regexp.Compile(lexemePattern)
})

// Tokenize scans text and returns its lexemes in order.  Leading and
// trailing whitespace and commas are skipped and empty captures discarded;
// empty or whitespace-only input yields an empty sequence.  Tokenize fails
// only if the scanning pattern cannot be compiled.
func Tokenize(text string) ([]string, error) {
	re, err := pattern()
	if err != nil {
		return nil, mal.ErrorConditionf(mal.CondLexingFailure, "%v", err)
	}
	var lexemes []string
	for _, m := range re.FindAllStringSubmatch(strings.TrimSpace(text), -1) {
		if m[1] != "" {
			lexemes = append(lexemes, m[1])
		}
	}
	return lexemes, nil
}
