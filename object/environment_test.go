package object

import (
	"testing"
)

func TestDeclareAndShadow(t *testing.T) {
	outer := NewEnvironment()
	outer.Declare("x", &Integer{Value: 1})

	inner := NewEnvironment()
	inner.Ext = outer
	inner.Declare("x", &Integer{Value: 2})

	got, ok := inner.Get("x")
	if !ok {
		t.Fatalf("inner lookup failed")
	}
	if got.(*Integer).Value != 2 {
		t.Fatalf("inner x wrong. expected=2, got=%d", got.(*Integer).Value)
	}

	got, _ = outer.Get("x")
	if got.(*Integer).Value != 1 {
		t.Fatalf("outer x clobbered by shadow. expected=1, got=%d", got.(*Integer).Value)
	}
}

func TestRedeclareInSameScope(t *testing.T) {
	env := NewEnvironment()
	env.Declare("x", &Integer{Value: 1})
	env.Declare("x", &String{Value: "two"})

	got, _ := env.Get("x")
	if got.Type() != STRING_OBJ {
		t.Fatalf("redeclare didn't rebind. expected=%q, got=%q", STRING_OBJ, got.Type())
	}
}

func TestAssignWalksOutward(t *testing.T) {
	outer := NewEnvironment()
	outer.Declare("x", &Integer{Value: 1})

	inner := NewEnvironment()
	inner.Ext = outer

	if !inner.Assign("x", &Integer{Value: 99}) {
		t.Fatalf("assign to outer variable failed")
	}
	got, _ := outer.Get("x")
	if got.(*Integer).Value != 99 {
		t.Fatalf("outer x not updated. expected=99, got=%d", got.(*Integer).Value)
	}

	if inner.Assign("nope", &Integer{Value: 0}) {
		t.Fatalf("assign to undeclared name should fail")
	}
}

func TestDeclareCopiesLists(t *testing.T) {
	env := NewEnvironment()
	src := &List{Elements: []Object{&Integer{Value: 1}, &Integer{Value: 2}}}
	env.Declare("xs", src)

	src.Elements[0].(*Integer).Value = 42

	got, _ := env.Get("xs")
	if got.(*List).Elements[0].(*Integer).Value != 1 {
		t.Fatalf("stored list aliases its source")
	}
}

func TestCopyIsDeep(t *testing.T) {
	inner := &List{Elements: []Object{&Integer{Value: 1}}}
	src := &List{Elements: []Object{inner}}
	dst := Copy(src).(*List)

	inner.Elements[0].(*Integer).Value = 42

	if dst.Elements[0].(*List).Elements[0].(*Integer).Value != 1 {
		t.Fatalf("copy shares nested storage")
	}
}

// A file copy is a fresh wrapper over the same OS handle; each binding owns
// its own closed flag.
func TestFileCopyOwnsItsFlag(t *testing.T) {
	f := &File{}
	alias, ok := Copy(f).(*File)
	if !ok || alias == f {
		t.Fatalf("file copy should be a distinct wrapper. got=%T", Copy(f))
	}
	if alias.Handle != f.Handle {
		t.Fatalf("file copy lost the shared OS handle")
	}

	f.Closed = true

	if alias.Closed {
		t.Fatalf("closing one binding flipped its alias")
	}
}

func TestTruthy(t *testing.T) {
	tests := []struct {
		obj  Object
		want bool
	}{
		{&Integer{Value: 0}, false},
		{&Integer{Value: -1}, true},
		{&Float{Value: 0.0}, false},
		{&Float{Value: 0.5}, true},
		{&String{Value: ""}, false},
		{&String{Value: "x"}, true},
		{&List{}, true}, // lists are always truthy
		{&List{Elements: []Object{NULL}}, true},
		{&Char{Value: 'x'}, true},
		{TRUE, true},
		{FALSE, false},
		{NULL, false},
		{&File{Closed: true}, false},
	}
	for i, tt := range tests {
		if got := Truthy(tt.obj); got != tt.want {
			t.Fatalf("tests[%d] - truthiness wrong. expected=%v, got=%v", i, tt.want, got)
		}
	}
}
