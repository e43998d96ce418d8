// Package parser turns source text into mal values.  Lexemes scanned by
// parser/lexer are classified by parser/token and then consumed by a
// recursive-descent reader that builds nested list and vector values.
package parser

import (
	"strings"

	"github.com/aburd/mal/mal"
	"github.com/aburd/mal/parser/lexer"
	"github.com/aburd/mal/parser/token"
)

type reader struct{}

// NewReader returns a mal.Reader backed by this package.
func NewReader() mal.Reader {
	return &reader{}
}

// ReadStr implements mal.Reader.
func (*reader) ReadStr(text string, env *mal.Env) (*mal.Val, error) {
	return ReadStr(text, env)
}

// ReadStr reads exactly one form from text and returns it.  Tokens beyond
// the first form are ignored.  Empty or whitespace-only input returns a nil
// Val with a nil error.
func ReadStr(text string, env *mal.Env) (*mal.Val, error) {
	lexemes, err := lexer.Tokenize(text)
	if err != nil {
		return nil, err
	}
	tokens, err := classify(lexemes)
	if err != nil {
		return nil, err
	}
	if len(tokens) == 0 {
		return nil, nil
	}
	p := newParser(tokens, env)
	return p.readForm()
}

// ReadProgram reads forms from text until the token stream is exhausted and
// returns them in order.  Comment lexemes between forms are skipped.
func ReadProgram(text string, env *mal.Env) ([]*mal.Val, error) {
	lexemes, err := lexer.Tokenize(text)
	if err != nil {
		return nil, err
	}
	trimmed := lexemes[:0]
	for _, l := range lexemes {
		if strings.HasPrefix(l, ";") {
			continue
		}
		trimmed = append(trimmed, l)
	}
	tokens, err := classify(trimmed)
	if err != nil {
		return nil, err
	}
	p := newParser(tokens, env)
	var forms []*mal.Val
	for p.pos < len(p.tokens) {
		form, err := p.readForm()
		if err != nil {
			return nil, err
		}
		forms = append(forms, form)
	}
	return forms, nil
}

func classify(lexemes []string) ([]*token.Token, error) {
	tokens := make([]*token.Token, 0, len(lexemes))
	for _, l := range lexemes {
		tok, err := token.FromString(l)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}

// parser reads an immutable token sequence through a monotonically advancing
// cursor.  All cursor movement happens inside readForm and readSeq; the
// parser never backtracks and visits every token at most once.
type parser struct {
	tokens []*token.Token
	pos    int
	env    *mal.Env
}

func newParser(tokens []*token.Token, env *mal.Env) *parser {
	return &parser{tokens: tokens, env: env}
}

func (p *parser) peek() (*token.Token, error) {
	if p.pos >= len(p.tokens) {
		return nil, mal.ErrorConditionf(mal.CondUnterminatedList, "unexpected end of input")
	}
	return p.tokens[p.pos], nil
}

func (p *parser) readForm() (*mal.Val, error) {
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}
	switch tok.Type {
	case token.PAREN_L:
		p.pos++
		return p.readSeq(tok, token.PAREN_R)
	case token.BRACE_L:
		p.pos++
		return p.readSeq(tok, token.BRACE_R)
	case token.PAREN_R, token.BRACE_R:
		return nil, mal.ErrorConditionf(mal.CondUnexpectedToken, "unexpected %s", tok.Text)
	default:
		p.pos++
		return p.readAtom(tok)
	}
}

// readAtom returns the value of a data token, expanding a reader-macro
// prefix over the form that follows it.
func (p *parser) readAtom(tok *token.Token) (*mal.Val, error) {
	v := tok.Val
	if v.Type == mal.VSymbol {
		if name, ok := p.env.ReaderMacro(v.Str); ok {
			form, err := p.readForm()
			if err != nil {
				return nil, err
			}
			return mal.List([]*mal.Val{mal.Symbol(name), form}), nil
		}
	}
	return v, nil
}

// readSeq accumulates forms until the closer that matches open.  The wrong
// closer fails rather than terminating the container.
func (p *parser) readSeq(open *token.Token, closer token.Type) (*mal.Val, error) {
	var cells []*mal.Val
	for {
		tok, err := p.peek()
		if err != nil {
			return nil, mal.ErrorConditionf(mal.CondUnterminatedList, "unmatched %s", open.Text)
		}
		switch tok.Type {
		case closer:
			p.pos++
			if closer == token.PAREN_R {
				return mal.List(cells), nil
			}
			return mal.Vector(cells), nil
		case token.PAREN_R, token.BRACE_R:
			return nil, mal.ErrorConditionf(mal.CondUnmatchedSyntax, "unexpected %s inside %s", tok.Text, open.Text)
		default:
			form, err := p.readForm()
			if err != nil {
				return nil, err
			}
			cells = append(cells, form)
		}
	}
}
