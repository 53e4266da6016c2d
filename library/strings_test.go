package library

import (
	"testing"

	"github.com/luna-lang/luna/object"
)

func wantStr(t *testing.T, i int, got object.Object, want string) {
	t.Helper()
	s, ok := got.(*object.String)
	if !ok {
		t.Fatalf("tests[%d] - result not a string. got=%T (%+v)", i, got, got)
	}
	if s.Value != want {
		t.Fatalf("tests[%d] - value wrong. expected=%q, got=%q", i, want, s.Value)
	}
}

func wantBool(t *testing.T, i int, got object.Object, want bool) {
	t.Helper()
	b, ok := got.(*object.Boolean)
	if !ok {
		t.Fatalf("tests[%d] - result not a boolean. got=%T (%+v)", i, got, got)
	}
	if b.Value != want {
		t.Fatalf("tests[%d] - value wrong. expected=%v, got=%v", i, want, b.Value)
	}
}

func TestStringBasics(t *testing.T) {
	wantInt(t, 0, libStrLen([]object.Object{sv("hello")}), 5)
	wantInt(t, 1, libStrLen([]object.Object{&object.List{Elements: []object.Object{iv(1), iv(2)}}}), 2)
	wantBool(t, 2, libIsEmpty([]object.Object{sv("")}), true)
	wantBool(t, 3, libIsEmpty([]object.Object{sv("x")}), false)
	wantStr(t, 4, libConcat([]object.Object{sv("foo"), sv("bar")}), "foobar")
}

func TestSubstringAndSlice(t *testing.T) {
	tests := []struct {
		fn       object.NativeFn
		args     []object.Object
		expected string
	}{
		{libSubstring, []object.Object{sv("moonlight"), iv(0), iv(4)}, "moon"},
		{libSubstring, []object.Object{sv("moonlight"), iv(4), iv(99)}, "light"},
		{libSubstring, []object.Object{sv("moonlight"), iv(-2), iv(3)}, "moo"},
		{libSubstring, []object.Object{sv("moonlight"), iv(50), iv(3)}, ""},
		{libSlice, []object.Object{sv("moonlight"), iv(0), iv(4)}, "moon"},
		{libSlice, []object.Object{sv("moonlight"), iv(-5), iv(9)}, "light"},
		{libSlice, []object.Object{sv("moonlight"), iv(4), iv(-1)}, "ligh"},
		{libSlice, []object.Object{sv("moonlight"), iv(6), iv(2)}, ""},
		{libCharAt, []object.Object{sv("abc"), iv(1)}, "b"},
		{libCharAt, []object.Object{sv("abc"), iv(9)}, ""},
	}

	for i, tt := range tests {
		wantStr(t, i, tt.fn(tt.args), tt.expected)
	}
}

func TestSliceOnLists(t *testing.T) {
	src := &object.List{Elements: []object.Object{iv(10), iv(20), iv(30), iv(40)}}
	got := libSlice([]object.Object{src, iv(1), iv(3)})
	list, ok := got.(*object.List)
	if !ok {
		t.Fatalf("result not a list. got=%T", got)
	}
	if len(list.Elements) != 2 {
		t.Fatalf("length wrong. expected=2, got=%d", len(list.Elements))
	}
	wantInt(t, 0, list.Elements[0], 20)
	wantInt(t, 1, list.Elements[1], 30)

	// The slice is an independent copy.
	list.Elements[0] = iv(99)
	wantInt(t, 2, src.Elements[1], 20)
}

func TestSearching(t *testing.T) {
	wantInt(t, 0, libIndexOf([]object.Object{sv("banana"), sv("na")}), 2)
	wantInt(t, 1, libIndexOf([]object.Object{sv("banana"), sv("xyz")}), -1)
	wantInt(t, 2, libIndexOf([]object.Object{sv("banana"), sv("")}), -1)
	wantInt(t, 3, libLastIndexOf([]object.Object{sv("banana"), sv("na")}), 4)
	wantBool(t, 4, libContains([]object.Object{sv("banana"), sv("nan")}), true)
	wantBool(t, 5, libContains([]object.Object{sv("banana"), sv("xyz")}), false)
	wantBool(t, 6, libStartsWith([]object.Object{sv("banana"), sv("ban")}), true)
	wantBool(t, 7, libEndsWith([]object.Object{sv("banana"), sv("ana")}), true)
	wantBool(t, 8, libStartsWith([]object.Object{sv("ba"), sv("banana")}), false)
}

func TestTransformations(t *testing.T) {
	tests := []struct {
		fn       object.NativeFn
		args     []object.Object
		expected string
	}{
		{libToUpper, []object.Object{sv("luna v0.1")}, "LUNA V0.1"},
		{libToLower, []object.Object{sv("LUNA")}, "luna"},
		{libTrim, []object.Object{sv("  pad  ")}, "pad"},
		{libTrimLeft, []object.Object{sv("  pad  ")}, "pad  "},
		{libTrimRight, []object.Object{sv("  pad  ")}, "  pad"},
		{libReplace, []object.Object{sv("a-b-c"), sv("-"), sv("+")}, "a+b+c"},
		{libReplace, []object.Object{sv("abc"), sv(""), sv("+")}, "abc"},
		{libReverse, []object.Object{sv("drawer")}, "reward"},
		{libRepeat, []object.Object{sv("ab"), iv(3)}, "ababab"},
		{libRepeat, []object.Object{sv("ab"), iv(0)}, ""},
		{libPadLeft, []object.Object{sv("7"), iv(3), sv("0")}, "007"},
		{libPadRight, []object.Object{sv("7"), iv(3), sv(".")}, "7.."},
		{libPadLeft, []object.Object{sv("hello"), iv(3), sv("0")}, "hello"},
	}

	for i, tt := range tests {
		wantStr(t, i, tt.fn(tt.args), tt.expected)
	}
}

func TestSplitAndJoin(t *testing.T) {
	got := libSplit([]object.Object{sv("a,b,,c"), sv(",")})
	list, ok := got.(*object.List)
	if !ok {
		t.Fatalf("split result not a list. got=%T", got)
	}
	// Empty tokens are dropped.
	if len(list.Elements) != 3 {
		t.Fatalf("length wrong. expected=3, got=%d", len(list.Elements))
	}
	wantStr(t, 0, list.Elements[0], "a")
	wantStr(t, 1, list.Elements[2], "c")

	chars := libSplit([]object.Object{sv("abc"), sv("")}).(*object.List)
	if len(chars.Elements) != 3 {
		t.Fatalf("char split length wrong. expected=3, got=%d", len(chars.Elements))
	}

	wantStr(t, 2, libJoin([]object.Object{list, sv("-")}), "a-b-c")
	wantStr(t, 3, libJoin([]object.Object{&object.List{}, sv("-")}), "")
}

func TestCharacterClasses(t *testing.T) {
	wantBool(t, 0, libIsDigit([]object.Object{sv("12345")}), true)
	wantBool(t, 1, libIsDigit([]object.Object{sv("12a45")}), false)
	wantBool(t, 2, libIsDigit([]object.Object{sv("")}), false)
	wantBool(t, 3, libIsAlpha([]object.Object{sv("Luna")}), true)
	wantBool(t, 4, libIsAlnum([]object.Object{sv("Luna01")}), true)
	wantBool(t, 5, libIsAlnum([]object.Object{sv("Luna 01")}), false)
	wantBool(t, 6, libIsSpace([]object.Object{sv(" \t\n")}), true)
}

func TestStringConversions(t *testing.T) {
	wantInt(t, 0, libToInt([]object.Object{sv("42")}), 42)
	wantInt(t, 1, libToInt([]object.Object{sv("-17")}), -17)
	// Partial parses count as failures.
	wantInt(t, 2, libToInt([]object.Object{sv("42abc")}), 0)
	wantInt(t, 3, libToInt([]object.Object{sv("")}), 0)
	wantFloat(t, 4, libToFloat([]object.Object{sv("2.5")}), 2.5)
	wantFloat(t, 5, libToFloat([]object.Object{sv("nope")}), 0)
}
