package report

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/luna-lang/luna/text"
)

type Category int

const (
	Syntax Category = iota
	Type
	Name
	Index
	Argument
	Runtime
	Assertion
)

func (c Category) String() string {
	switch c {
	case Syntax:
		return "Syntax Error (Skill issue)"
	case Type:
		return "Type Error"
	case Name:
		return "Name Error"
	case Index:
		return "Index Error"
	case Argument:
		return "Argument Error"
	case Runtime:
		return "Runtime Error"
	case Assertion:
		return "Assertion Failure"
	}
	return "Error"
}

// The reporter holds the source of whatever we're currently running so that
// diagnostics can show the offending line. Native functions have no token of
// their own, so the evaluator parks the line it's working on here before
// calling out to them.
var (
	out         io.Writer = os.Stderr
	filename    = "REPL input"
	sourceLines []string
	currentLine int
)

func SetOutput(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	out = w
}

func SetSource(name, src string) {
	filename = name
	sourceLines = strings.Split(src, "\n")
}

func SetLine(n int) {
	currentLine = n
}

func CurrentLine() int {
	return currentLine
}

// Error prints a diagnostic without a hint.
func Error(cat Category, line, col int, format string, args ...any) {
	Hint(cat, line, col, "", format, args...)
}

// Hint prints a diagnostic, the source line with a caret when we know the
// column, and a suggestion when we have one.
func Hint(cat Category, line, col int, hint string, format string, args ...any) {
	pos := filename + ":" + strconv.Itoa(line)
	if col > 0 {
		pos = pos + ":" + strconv.Itoa(col)
	}
	fmt.Fprintf(out, "%s [%s] %s\n", text.Red(cat.String()), pos, fmt.Sprintf(format, args...))
	if col > 0 && line >= 1 && line <= len(sourceLines) {
		src := sourceLines[line-1]
		fmt.Fprintf(out, "    %s\n", src)
		if col <= len(src)+1 {
			fmt.Fprintf(out, "    %s%s\n", strings.Repeat(" ", col-1), text.Yellow("^~~~ here"))
		}
	}
	if hint != "" {
		fmt.Fprintf(out, "%s %s\n", text.Yellow("Hint:"), hint)
	}
}
