package parser_test

import (
	"strings"
	"testing"

	"github.com/aburd/mal/mal"
	"github.com/aburd/mal/parser"
)

const benchForm = `(defn sum-all [xs acc] (if (empty? xs) acc (sum-all (rest xs) (+ acc (first xs)))))`

func BenchmarkReadStr(b *testing.B) {
	env := mal.NewEnv()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, err := parser.ReadStr(benchForm, env)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkReadProgram(b *testing.B) {
	env := mal.NewEnv()
	src := strings.Repeat(benchForm+"\n", 64)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, err := parser.ReadProgram(src, env)
		if err != nil {
			b.Fatal(err)
		}
	}
}
