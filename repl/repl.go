package repl

import (
	"fmt"
	"io"
	"strings"

	"github.com/lmorg/readline"

	"github.com/luna-lang/luna/evaluator"
	"github.com/luna-lang/luna/lexer"
	"github.com/luna-lang/luna/library"
	"github.com/luna-lang/luna/object"
	"github.com/luna-lang/luna/parser"
	"github.com/luna-lang/luna/report"
	"github.com/luna-lang/luna/text"
)

// Start runs the interactive loop. The environment persists across lines,
// so definitions accumulate; a line that fails to parse reports and is
// discarded.
func Start(in io.Reader, out io.Writer) {
	fmt.Fprint(out, text.Banner())

	env := object.NewEnvironment()
	library.Register(env)
	ev := evaluator.New(in, out)

	rline := readline.NewInstance()
	for {
		rline.SetPrompt(text.PROMPT)
		line, err := rline.Readline()
		if err != nil {
			// Ctrl-D and Ctrl-C both land here; leave quietly.
			fmt.Fprintln(out)
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "exit" {
			return
		}

		report.SetSource("REPL input", line)
		p := parser.New(lexer.New(line))
		program := p.Parse()
		if program == nil || p.HadError() {
			continue
		}
		ev.Run(program, env)
	}
}
