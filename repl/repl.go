package repl

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/aburd/mal/mal"
	"github.com/aburd/mal/parser"
	"github.com/chzyer/readline"
)

const historyFile = ".mal_history"

// RunRepl runs a read-print loop: each line is read into a value and the
// value's canonical rendering is echoed back.  A reader error discards the
// offending line and leaves subsequent input unaffected.
func RunRepl(prompt string) {
	env := mal.NewEnv()

	rl, err := readline.NewEx(&readline.Config{
		Prompt:      prompt,
		HistoryFile: historyPath(),
	})
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	for {
		var line string
		line, err = rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err != nil {
			break
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		v, err := parser.ReadStr(line, env)
		if err != nil {
			errln("Error:", err)
			continue
		}
		if v == nil {
			continue
		}
		fmt.Println(v)
	}
	if err != io.EOF {
		errln(err)
	}
}

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "" // readline skips history persistence
	}
	return filepath.Join(home, historyFile)
}

func errln(v ...interface{}) {
	fmt.Fprintln(os.Stderr, v...)
}

func errf(format string, v ...interface{}) {
	fmt.Fprintf(os.Stderr, format, v...)
}
