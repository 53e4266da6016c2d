package object

import (
	"github.com/luna-lang/luna/ast"
)

// An Environment is one link of the scope chain. Variables and functions
// live in separate tables; both lookups walk outward through Ext.
type Environment struct {
	Store map[string]Object
	Funcs map[string]*ast.FunctionDefinition
	Ext   *Environment
}

func NewEnvironment() *Environment {
	return &Environment{
		Store: make(map[string]Object),
		Funcs: make(map[string]*ast.FunctionDefinition),
	}
}

// Get returns the stored object itself, not a copy. The evaluator copies at
// the points the ownership rules require.
func (e *Environment) Get(name string) (Object, bool) {
	obj, ok := e.Store[name]
	if ok || e.Ext == nil {
		return obj, ok
	}
	return e.Ext.Get(name)
}

// Declare binds a copy of val in this scope. Declaring a name twice in one
// scope rebinds it: the most recent declaration wins.
func (e *Environment) Declare(name string, val Object) {
	e.Store[name] = Copy(val)
}

// Assign walks outward for the nearest binding of name and replaces it with
// a copy of val. It returns false when no scope has the name, which the
// evaluator turns into a name error.
func (e *Environment) Assign(name string, val Object) bool {
	if _, ok := e.Store[name]; ok {
		e.Store[name] = Copy(val)
		return true
	}
	if e.Ext == nil {
		return false
	}
	return e.Ext.Assign(name, val)
}

func (e *Environment) DefineFunc(fd *ast.FunctionDefinition) {
	e.Funcs[fd.Name] = fd
}

func (e *Environment) GetFunc(name string) (*ast.FunctionDefinition, bool) {
	fd, ok := e.Funcs[name]
	if ok || e.Ext == nil {
		return fd, ok
	}
	return e.Ext.GetFunc(name)
}
