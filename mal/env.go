package mal

// Env holds the per-session reader configuration.  The reader-macro table
// maps a one-character prefix lexeme to the symbol the prefix expands to.
// The table is populated once by NewEnv and read-only afterward, so a single
// Env may serve concurrent reads without synchronization.
type Env struct {
	readerMacros map[string]string
}

// NewEnv initializes and returns a new Env with the default reader macros.
func NewEnv() *Env {
	return &Env{
		readerMacros: map[string]string{
			"'": "quote",
			"@": "deref",
		},
	}
}

// ReaderMacro returns the symbol name the prefix expands to, if prefix is a
// registered reader macro.
func (env *Env) ReaderMacro(prefix string) (string, bool) {
	if env == nil {
		return "", false
	}
	name, ok := env.readerMacros[prefix]
	return name, ok
}
