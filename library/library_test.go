package library

import (
	"bytes"
	"strings"
	"testing"

	"github.com/luna-lang/luna/object"
	"github.com/luna-lang/luna/report"
)

// assert is the one fatal runtime error: a falsy condition must ask for
// exit code 1 and report an assertion failure.
func TestAssertFailureExits(t *testing.T) {
	var errs bytes.Buffer
	report.SetOutput(&errs)
	defer report.SetOutput(nil)

	exitCode := -1
	oldExit := exit
	exit = func(code int) { exitCode = code }
	defer func() { exit = oldExit }()

	libAssert([]object.Object{object.FALSE})

	if exitCode != 1 {
		t.Fatalf("falsy assert should exit 1, got=%d", exitCode)
	}
	if !strings.Contains(errs.String(), "Assertion failed") {
		t.Fatalf("diagnostic wrong. expected mention of %q, got=%q",
			"Assertion failed", errs.String())
	}
}

func TestAssertWrongArityExits(t *testing.T) {
	var errs bytes.Buffer
	report.SetOutput(&errs)
	defer report.SetOutput(nil)

	exitCode := -1
	oldExit := exit
	exit = func(code int) { exitCode = code }
	defer func() { exit = oldExit }()

	libAssert([]object.Object{})

	if exitCode != 1 {
		t.Fatalf("assert with no arguments should exit 1, got=%d", exitCode)
	}
	if !strings.Contains(errs.String(), "assert() takes exactly 1 argument") {
		t.Fatalf("diagnostic wrong. got=%q", errs.String())
	}
}

func TestAssertPasses(t *testing.T) {
	exitCode := -1
	oldExit := exit
	exit = func(code int) { exitCode = code }
	defer func() { exit = oldExit }()

	got := libAssert([]object.Object{object.TRUE})

	if exitCode != -1 {
		t.Fatalf("truthy assert must not exit, requested code %d", exitCode)
	}
	if got != object.TRUE {
		t.Fatalf("truthy assert should evaluate to true, got=%T", got)
	}
}
