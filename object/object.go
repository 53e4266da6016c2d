package object

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type ObjectType string

const (
	INTEGER_OBJ = "int"
	FLOAT_OBJ   = "float"
	STRING_OBJ  = "string"
	CHAR_OBJ    = "char"
	BOOLEAN_OBJ = "bool"
	LIST_OBJ    = "list"
	NATIVE_OBJ  = "native"
	FILE_OBJ    = "file"
	NULL_OBJ    = "null"
)

type Object interface {
	Type() ObjectType
	Inspect() string
}

type Integer struct {
	Value int64
}

func (i *Integer) Type() ObjectType { return INTEGER_OBJ }
func (i *Integer) Inspect() string  { return strconv.FormatInt(i.Value, 10) }

type Float struct {
	Value float64
}

func (f *Float) Type() ObjectType { return FLOAT_OBJ }
func (f *Float) Inspect() string  { return fmt.Sprintf("%.6g", f.Value) }

type String struct {
	Value string
}

func (s *String) Type() ObjectType { return STRING_OBJ }
func (s *String) Inspect() string  { return s.Value }

type Char struct {
	Value rune
}

func (c *Char) Type() ObjectType { return CHAR_OBJ }
func (c *Char) Inspect() string  { return string(c.Value) }

type Boolean struct {
	Value bool
}

func (b *Boolean) Type() ObjectType { return BOOLEAN_OBJ }
func (b *Boolean) Inspect() string {
	if b.Value {
		return "true"
	}
	return "false"
}

type List struct {
	Elements []Object
}

func (l *List) Type() ObjectType { return LIST_OBJ }
func (l *List) Inspect() string {
	elements := []string{}
	for _, el := range l.Elements {
		elements = append(elements, el.Inspect())
	}
	return strings.Join(elements, " ")
}

type NativeFn func(args []Object) Object

type Native struct {
	Name string
	Fn   NativeFn
}

func (n *Native) Type() ObjectType { return NATIVE_OBJ }
func (n *Native) Inspect() string  { return "<native function>" }

// A File wraps an open OS file. Each binding gets its own wrapper over the
// shared OS handle, so closing marks only the caller's wrapper: aliases
// keep a stale wrapper whose operations quietly fail.
type File struct {
	Handle *os.File
	Closed bool
}

func (f *File) Type() ObjectType { return FILE_OBJ }
func (f *File) Inspect() string {
	if f.Closed {
		return "<closed file>"
	}
	return "<file handle>"
}

type Null struct{}

func (n *Null) Type() ObjectType { return NULL_OBJ }
func (n *Null) Inspect() string  { return "null" }

var (
	TRUE  = &Boolean{Value: true}
	FALSE = &Boolean{Value: false}
	NULL  = &Null{}
)

func MakeBool(b bool) *Boolean {
	if b {
		return TRUE
	}
	return FALSE
}

// Copy implements the ownership rules: binding or assigning a value stores
// an independent copy. Lists copy deeply; scalars get fresh boxes because
// ++ and -- mutate them in place; a file copy is a fresh wrapper over the
// same OS handle; natives and the singletons are shared.
func Copy(o Object) Object {
	switch v := o.(type) {
	case *Integer:
		return &Integer{Value: v.Value}
	case *Float:
		return &Float{Value: v.Value}
	case *String:
		return &String{Value: v.Value}
	case *Char:
		return &Char{Value: v.Value}
	case *List:
		elements := make([]Object, len(v.Elements))
		for i, el := range v.Elements {
			elements[i] = Copy(el)
		}
		return &List{Elements: elements}
	case *File:
		return &File{Handle: v.Handle, Closed: v.Closed}
	default:
		return o
	}
}

// Truthy gives the language's notion of truth: zero, the empty string,
// null and a closed file handle are false, everything else true. Lists are
// always true, even empty ones.
func Truthy(o Object) bool {
	switch v := o.(type) {
	case *Integer:
		return v.Value != 0
	case *Float:
		return v.Value != 0.0
	case *Boolean:
		return v.Value
	case *String:
		return v.Value != ""
	case *File:
		return !v.Closed && v.Handle != nil
	case *Null:
		return false
	}
	return true
}
