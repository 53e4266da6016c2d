//
// Luna version 0.1
//
// A small dynamically typed scripting language: lexer, recursive-descent
// parser, and tree-walking evaluator, with a native standard library and an
// elementwise fast path for list arithmetic.
//

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/luna-lang/luna/evaluator"
	"github.com/luna-lang/luna/lexer"
	"github.com/luna-lang/luna/library"
	"github.com/luna-lang/luna/object"
	"github.com/luna-lang/luna/parser"
	"github.com/luna-lang/luna/repl"
	"github.com/luna-lang/luna/report"
)

func main() {
	library.SeedFromEntropy()

	if len(os.Args) < 2 {
		repl.Start(os.Stdin, os.Stdout)
		return
	}

	path := os.Args[1]
	if !strings.HasSuffix(path, ".lu") {
		fmt.Fprintln(os.Stderr, "Error: expected a .lu file")
		os.Exit(1)
	}

	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not read file: %s\n", path)
		os.Exit(1)
	}

	report.SetSource(path, string(src))

	p := parser.New(lexer.New(string(src)))
	program := p.Parse()
	if program == nil || p.HadError() {
		fmt.Fprintln(os.Stderr, "Parsing failed.")
		os.Exit(1)
	}

	env := object.NewEnvironment()
	library.Register(env)
	evaluator.New(os.Stdin, os.Stdout).Run(program, env)
}
