package mal

// Reader abstracts a parser implementation so that it may be implemented in a
// separate package as an optional/swappable component.
type Reader interface {
	// ReadStr reads one form from text and returns it.  A nil Val with a
	// nil error indicates that text contained no form.
	ReadStr(text string, env *Env) (*Val, error)
}
