package evaluator

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/luna-lang/luna/ast"
	"github.com/luna-lang/luna/object"
	"github.com/luna-lang/luna/report"
	"github.com/luna-lang/luna/vec"
)

// Tolerance for float equality.
const epsilon = 0.000001

// A signal says how a statement finished. Control flow is threaded through
// these return values rather than shared flags, so nested calls and
// successive REPL lines can't trample each other.
type signal int

const (
	sigNone signal = iota
	sigReturn
	sigBreak
	sigContinue
)

type Evaluator struct {
	out io.Writer
	in  *bufio.Reader
}

func New(in io.Reader, out io.Writer) *Evaluator {
	return &Evaluator{out: out, in: bufio.NewReader(in)}
}

// Run executes a whole program. Stray break/continue/return signals at the
// top level are ignored.
func (ev *Evaluator) Run(program *ast.Program, env *object.Environment) {
	for _, stmt := range program.Statements {
		ev.exec(env, stmt)
	}
}

func (ev *Evaluator) exec(env *object.Environment, n ast.Node) (signal, object.Object) {
	if n == nil {
		return sigNone, object.NULL
	}
	report.SetLine(n.GetToken().Line)

	switch node := n.(type) {
	case *ast.LetStatement:
		v := ev.evalExpr(env, node.Value)
		env.Declare(node.Name, v)
		return sigNone, object.NULL

	case *ast.AssignStatement:
		v := ev.evalExpr(env, node.Value)
		if !env.Assign(node.Name, v) {
			report.Hint(report.Name, node.Token.Line, node.Token.Col,
				"Declare variables with 'let' before assigning to them",
				"Variable '%s' is not defined (did you forget 'let'?)", node.Name)
		}
		return sigNone, object.NULL

	case *ast.IndexAssignStatement:
		ev.execIndexAssign(env, node)
		return sigNone, object.NULL

	case *ast.PrintStatement:
		parts := make([]string, 0, len(node.Args))
		for _, arg := range node.Args {
			parts = append(parts, ev.evalExpr(env, arg).Inspect())
		}
		fmt.Fprintln(ev.out, strings.Join(parts, " "))
		return sigNone, object.NULL

	case *ast.ReturnStatement:
		if node.Value == nil {
			return sigReturn, object.NULL
		}
		return sigReturn, ev.evalExpr(env, node.Value)

	case *ast.BreakStatement:
		return sigBreak, object.NULL

	case *ast.ContinueStatement:
		return sigContinue, object.NULL

	case *ast.IfStatement:
		cond := ev.evalExpr(env, node.Cond)
		block := node.Then
		if !object.Truthy(cond) {
			block = node.Else
		}
		if block == nil {
			return sigNone, object.NULL
		}
		return ev.execBlock(env, block.Statements)

	case *ast.WhileStatement:
		for {
			if !object.Truthy(ev.evalExpr(env, node.Cond)) {
				break
			}
			sig, ret := ev.execBlock(env, node.Body.Statements)
			if sig == sigReturn {
				return sig, ret
			}
			if sig == sigBreak {
				break
			}
			// sigContinue just starts the next iteration.
		}
		return sigNone, object.NULL

	case *ast.ForStatement:
		// The loop variable lives in its own scope; each iteration of the
		// body gets a fresh one inside that.
		scope := object.NewEnvironment()
		scope.Ext = env
		ev.exec(scope, node.Init)
		for {
			if !object.Truthy(ev.evalExpr(scope, node.Cond)) {
				break
			}
			inner := object.NewEnvironment()
			inner.Ext = scope
			sig, ret := ev.execStatements(inner, node.Body.Statements)
			if sig == sigReturn {
				return sig, ret
			}
			if sig == sigBreak {
				// break skips the increment.
				break
			}
			ev.exec(scope, node.Incr)
		}
		return sigNone, object.NULL

	case *ast.SwitchStatement:
		return ev.execSwitch(env, node)

	case *ast.BlockStatement:
		return ev.execBlock(env, node.Statements)

	case *ast.GroupStatement:
		// Groups run in the current scope.
		return ev.execStatements(env, node.Statements)

	case *ast.FunctionDefinition:
		env.DefineFunc(node)
		return sigNone, object.NULL
	}

	// Anything else is an expression in statement position.
	ev.evalExpr(env, n)
	return sigNone, object.NULL
}

// execBlock runs statements in a fresh child scope.
func (ev *Evaluator) execBlock(env *object.Environment, stmts []ast.Node) (signal, object.Object) {
	scope := object.NewEnvironment()
	scope.Ext = env
	return ev.execStatements(scope, stmts)
}

func (ev *Evaluator) execStatements(env *object.Environment, stmts []ast.Node) (signal, object.Object) {
	for _, stmt := range stmts {
		sig, ret := ev.exec(env, stmt)
		if sig != sigNone {
			return sig, ret
		}
	}
	return sigNone, object.NULL
}

func (ev *Evaluator) execIndexAssign(env *object.Environment, node *ast.IndexAssignStatement) {
	val := ev.evalExpr(env, node.Value)

	target := ev.mutableValue(env, node.Target)
	list, ok := target.(*object.List)
	if !ok {
		report.Hint(report.Type, node.Token.Line, 0,
			"Use list indices only on list variables, e.g., myList[0] = value",
			"Cannot assign by index - target is not a list")
		return
	}

	i, ok := ev.evalExpr(env, node.Index).(*object.Integer)
	if !ok {
		report.Hint(report.Type, node.Token.Line, 0,
			"Use an integer index, e.g., myList[0] or myList[i]",
			"List index must be an integer")
		return
	}
	if i.Value < 0 || i.Value >= int64(len(list.Elements)) {
		report.Hint(report.Index, node.Token.Line, 0,
			"Valid indices run from 0 to len(list)-1",
			"Index %d is out of bounds for list of length %d", i.Value, len(list.Elements))
		return
	}
	list.Elements[i.Value] = object.Copy(val)
}

func (ev *Evaluator) execSwitch(env *object.Environment, node *ast.SwitchStatement) (signal, object.Object) {
	val := ev.evalExpr(env, node.Subject)

	for _, c := range node.Cases {
		if !caseEquals(val, ev.evalExpr(env, c.Value)) {
			continue
		}
		// First match only; a break in the body belongs to the switch.
		sig, ret := ev.execStatements(newChild(env), c.Body)
		if sig == sigBreak {
			sig = sigNone
		}
		return sig, ret
	}

	if node.Default != nil {
		sig, ret := ev.execStatements(newChild(env), node.Default.Body)
		if sig == sigBreak {
			sig = sigNone
		}
		return sig, ret
	}
	return sigNone, object.NULL
}

func newChild(env *object.Environment) *object.Environment {
	scope := object.NewEnvironment()
	scope.Ext = env
	return scope
}

// Case comparison is exact; int and float compare across types.
func caseEquals(val, cval object.Object) bool {
	switch v := val.(type) {
	case *object.Integer:
		switch c := cval.(type) {
		case *object.Integer:
			return v.Value == c.Value
		case *object.Float:
			return float64(v.Value) == c.Value
		}
	case *object.Float:
		switch c := cval.(type) {
		case *object.Float:
			return v.Value == c.Value
		case *object.Integer:
			return v.Value == float64(c.Value)
		}
	case *object.String:
		if c, ok := cval.(*object.String); ok {
			return v.Value == c.Value
		}
	case *object.Boolean:
		if c, ok := cval.(*object.Boolean); ok {
			return v.Value == c.Value
		}
	case *object.Char:
		if c, ok := cval.(*object.Char); ok {
			return v.Value == c.Value
		}
	}
	return false
}

func (ev *Evaluator) evalExpr(env *object.Environment, n ast.Node) object.Object {
	if n == nil {
		return object.NULL
	}
	report.SetLine(n.GetToken().Line)

	switch node := n.(type) {
	case *ast.IntegerLiteral:
		return &object.Integer{Value: node.Value}
	case *ast.FloatLiteral:
		return &object.Float{Value: node.Value}
	case *ast.StringLiteral:
		return &object.String{Value: node.Value}
	case *ast.CharLiteral:
		return &object.Char{Value: node.Value}
	case *ast.BooleanLiteral:
		return object.MakeBool(node.Value)

	case *ast.ListLiteral:
		elements := make([]object.Object, len(node.Elements))
		for i, el := range node.Elements {
			elements[i] = ev.evalExpr(env, el)
		}
		return &object.List{Elements: elements}

	case *ast.Identifier:
		// An identifier evaluates to a copy of its binding; aliasing
		// never leaks out of the environment.
		if v, ok := env.Get(node.Value); ok {
			return object.Copy(v)
		}
		return object.NULL

	case *ast.InfixExpression:
		// && and || short-circuit and return the deciding operand.
		if node.Operator == "&&" {
			l := ev.evalExpr(env, node.Left)
			if !object.Truthy(l) {
				return l
			}
			return ev.evalExpr(env, node.Right)
		}
		if node.Operator == "||" {
			l := ev.evalExpr(env, node.Left)
			if object.Truthy(l) {
				return l
			}
			return ev.evalExpr(env, node.Right)
		}
		l := ev.evalExpr(env, node.Left)
		r := ev.evalExpr(env, node.Right)
		return evalBinop(node.Operator, l, r)

	case *ast.NotExpression:
		return object.MakeBool(!object.Truthy(ev.evalExpr(env, node.Right)))

	case *ast.IndexExpression:
		target := ev.evalExpr(env, node.Target)
		idx := ev.evalExpr(env, node.Index)
		list, okList := target.(*object.List)
		i, okIdx := idx.(*object.Integer)
		if okList && okIdx && i.Value >= 0 && i.Value < int64(len(list.Elements)) {
			return object.Copy(list.Elements[i.Value])
		}
		// Out-of-bounds and non-list reads are quietly null.
		return object.NULL

	case *ast.IncStatement:
		return ev.evalIncDec(env, node.Name, 1)
	case *ast.DecStatement:
		return ev.evalIncDec(env, node.Name, -1)

	case *ast.CallExpression:
		return ev.evalCall(env, node)

	case *ast.InputExpression:
		if node.Prompt != "" {
			fmt.Fprint(ev.out, node.Prompt)
		}
		line, err := ev.in.ReadString('\n')
		if err != nil && line == "" {
			return &object.String{Value: ""}
		}
		return &object.String{Value: strings.TrimRight(line, "\r\n")}
	}

	return object.NULL
}

// Post-increment and -decrement mutate the binding in place and evaluate to
// the old value.
func (ev *Evaluator) evalIncDec(env *object.Environment, name string, delta int64) object.Object {
	v, ok := env.Get(name)
	if !ok {
		return object.NULL
	}
	switch stored := v.(type) {
	case *object.Integer:
		old := stored.Value
		stored.Value += delta
		return &object.Integer{Value: old}
	case *object.Float:
		old := stored.Value
		stored.Value += float64(delta)
		return &object.Float{Value: old}
	}
	return object.NULL
}

// mutableValue resolves an identifier or an index chain to the live stored
// object, so mutation reaches the caller's storage.
func (ev *Evaluator) mutableValue(env *object.Environment, n ast.Node) object.Object {
	switch node := n.(type) {
	case *ast.Identifier:
		if v, ok := env.Get(node.Value); ok {
			return v
		}
	case *ast.IndexExpression:
		list, ok := ev.mutableValue(env, node.Target).(*object.List)
		if !ok {
			return nil
		}
		idx, ok := ev.evalExpr(env, node.Index).(*object.Integer)
		if !ok || idx.Value < 0 || idx.Value >= int64(len(list.Elements)) {
			return nil
		}
		return list.Elements[idx.Value]
	}
	return nil
}

func evalBinop(op string, l, r object.Object) object.Object {
	// Pure integer arithmetic keeps integer type, except true division.
	if li, ok := l.(*object.Integer); ok {
		if ri, ok := r.(*object.Integer); ok {
			switch op {
			case "+":
				return &object.Integer{Value: li.Value + ri.Value}
			case "-":
				return &object.Integer{Value: li.Value - ri.Value}
			case "*":
				return &object.Integer{Value: li.Value * ri.Value}
			case "/":
				// Division by zero quietly yields zero.
				if ri.Value == 0 {
					return &object.Integer{Value: 0}
				}
				return &object.Float{Value: float64(li.Value) / float64(ri.Value)}
			case "%":
				if ri.Value == 0 {
					return &object.Integer{Value: 0}
				}
				return &object.Integer{Value: li.Value % ri.Value}
			case "==":
				return object.MakeBool(li.Value == ri.Value)
			case "!=":
				return object.MakeBool(li.Value != ri.Value)
			case "<":
				return object.MakeBool(li.Value < ri.Value)
			case ">":
				return object.MakeBool(li.Value > ri.Value)
			case "<=":
				return object.MakeBool(li.Value <= ri.Value)
			case ">=":
				return object.MakeBool(li.Value >= ri.Value)
			}
		}
	}

	// Mixed and float arithmetic works in float64. Equality is fuzzy,
	// ordering is exact.
	if dl, ok := numeric(l); ok {
		if dr, ok := numeric(r); ok {
			switch op {
			case "+":
				return &object.Float{Value: dl + dr}
			case "-":
				return &object.Float{Value: dl - dr}
			case "*":
				return &object.Float{Value: dl * dr}
			case "/":
				if dr == 0 {
					return &object.Float{Value: 0}
				}
				return &object.Float{Value: dl / dr}
			case "%":
				return &object.Float{Value: math.Mod(dl, dr)}
			case "==":
				return object.MakeBool(math.Abs(dl-dr) < epsilon)
			case "!=":
				return object.MakeBool(math.Abs(dl-dr) >= epsilon)
			case "<":
				return object.MakeBool(dl < dr)
			case ">":
				return object.MakeBool(dl > dr)
			case "<=":
				return object.MakeBool(dl <= dr)
			case ">=":
				return object.MakeBool(dl >= dr)
			}
		}
	}

	if ls, ok := l.(*object.String); ok {
		if rs, ok := r.(*object.String); ok {
			switch op {
			case "==":
				return object.MakeBool(ls.Value == rs.Value)
			case "!=":
				return object.MakeBool(ls.Value != rs.Value)
			}
		}
	}

	if lc, ok := l.(*object.Char); ok {
		if rc, ok := r.(*object.Char); ok {
			switch op {
			case "==":
				return object.MakeBool(lc.Value == rc.Value)
			case "!=":
				return object.MakeBool(lc.Value != rc.Value)
			}
		}
	}

	if lb, ok := l.(*object.Boolean); ok {
		if rb, ok := r.(*object.Boolean); ok {
			switch op {
			case "==":
				return object.MakeBool(lb.Value == rb.Value)
			case "!=":
				return object.MakeBool(lb.Value != rb.Value)
			}
		}
	}

	_, lNull := l.(*object.Null)
	_, rNull := r.(*object.Null)
	if lNull || rNull {
		switch op {
		case "==":
			return object.MakeBool(lNull && rNull)
		case "!=":
			return object.MakeBool(!(lNull && rNull))
		}
	}

	// + concatenates whenever either side is a string.
	if op == "+" {
		_, lStr := l.(*object.String)
		_, rStr := r.(*object.String)
		if lStr || rStr {
			return &object.String{Value: l.Inspect() + r.Inspect()}
		}
	}

	// Two lists dispatch elementwise to the vector fast path.
	if ll, ok := l.(*object.List); ok {
		if rl, ok := r.(*object.List); ok {
			switch op {
			case "+":
				return vec.Apply(vec.Add, ll, rl)
			case "-":
				return vec.Apply(vec.Sub, ll, rl)
			case "*":
				return vec.Apply(vec.Mul, ll, rl)
			case "/":
				return vec.Apply(vec.Div, ll, rl)
			}
		}
	}

	// Comparing across unrelated types is simply unequal.
	switch op {
	case "==":
		return object.FALSE
	case "!=":
		return object.TRUE
	}

	// Everything else is quietly null.
	return object.NULL
}

func numeric(o object.Object) (float64, bool) {
	switch v := o.(type) {
	case *object.Integer:
		return float64(v.Value), true
	case *object.Float:
		return v.Value, true
	}
	return 0, false
}

func (ev *Evaluator) evalCall(env *object.Environment, node *ast.CallExpression) object.Object {
	// A few builtins are structural: they need the argument nodes rather
	// than just values, so they sit ahead of function lookup.
	switch node.Name {
	case "len":
		if len(node.Args) != 1 {
			report.Error(report.Argument, node.Token.Line, 0,
				"len() takes exactly 1 argument, got %d", len(node.Args))
			return object.NULL
		}
		switch v := ev.evalExpr(env, node.Args[0]).(type) {
		case *object.String:
			return &object.Integer{Value: int64(len(v.Value))}
		case *object.List:
			return &object.Integer{Value: int64(len(v.Elements))}
		}
		return &object.Integer{Value: 0}

	case "append":
		if len(node.Args) != 2 {
			report.Error(report.Argument, node.Token.Line, 0,
				"append() takes exactly 2 arguments, got %d", len(node.Args))
			return object.NULL
		}
		item := ev.evalExpr(env, node.Args[1])
		list, ok := ev.mutableValue(env, node.Args[0]).(*object.List)
		if !ok {
			report.Hint(report.Argument, node.Token.Line, 0,
				"Pass a list variable, e.g., append(myList, value)",
				"append() expects a list as the first argument")
			return object.NULL
		}
		list.Elements = append(list.Elements, object.Copy(item))
		return object.NULL

	case "type":
		if len(node.Args) != 1 {
			report.Error(report.Argument, node.Token.Line, 0,
				"type() takes exactly 1 argument, got %d", len(node.Args))
			return object.NULL
		}
		return &object.String{Value: typeName(ev.evalExpr(env, node.Args[0]))}

	case "int":
		if len(node.Args) != 1 {
			report.Error(report.Argument, node.Token.Line, 0,
				"int() takes exactly 1 argument, got %d", len(node.Args))
			return object.NULL
		}
		return toInt(ev.evalExpr(env, node.Args[0]))

	case "float":
		if len(node.Args) != 1 {
			report.Error(report.Argument, node.Token.Line, 0,
				"float() takes exactly 1 argument, got %d", len(node.Args))
			return object.NULL
		}
		return toFloat(ev.evalExpr(env, node.Args[0]))
	}

	// User-defined functions come next; they shadow natives.
	if fn, ok := env.GetFunc(node.Name); ok {
		scope := newChild(env)
		for i, param := range fn.Params {
			// Missing arguments bind to null; extras are ignored.
			var v object.Object = object.NULL
			if i < len(node.Args) {
				v = ev.evalExpr(env, node.Args[i])
			}
			scope.Declare(param, v)
		}
		sig, ret := ev.execStatements(scope, fn.Body.Statements)
		if sig == sigReturn {
			return ret
		}
		return object.NULL
	}

	if v, ok := env.Get(node.Name); ok {
		if native, ok := v.(*object.Native); ok {
			args := make([]object.Object, len(node.Args))
			for i, argNode := range node.Args {
				// A bare identifier bound to a list passes the live
				// storage so mutating natives reach the caller's list.
				// File bindings pass through too, so close() marks the
				// caller's own handle.
				if ident, isIdent := argNode.(*ast.Identifier); isIdent {
					if stored, found := env.Get(ident.Value); found {
						switch stored.(type) {
						case *object.List, *object.File:
							args[i] = stored
							continue
						}
					}
				}
				args[i] = ev.evalExpr(env, argNode)
			}
			return native.Fn(args)
		}
	}

	return object.NULL
}

func typeName(v object.Object) string {
	switch o := v.(type) {
	case *object.Integer:
		// 32-bit magnitude decides whether the user sees int or long.
		if o.Value > math.MaxInt32 || o.Value < math.MinInt32 {
			return "long"
		}
		return "int"
	case *object.Float:
		return "float"
	case *object.String:
		return "string"
	case *object.Char:
		return "char"
	case *object.Boolean:
		return "boolean"
	case *object.List:
		return "list"
	case *object.Native:
		return "native_function"
	case *object.File:
		return "file"
	}
	return "null"
}

func toInt(v object.Object) object.Object {
	switch o := v.(type) {
	case *object.Integer:
		return &object.Integer{Value: o.Value}
	case *object.Float:
		return &object.Integer{Value: int64(o.Value)}
	case *object.String:
		n, _ := strconv.ParseInt(leadingInt(o.Value), 10, 64)
		return &object.Integer{Value: n}
	case *object.Boolean:
		if o.Value {
			return &object.Integer{Value: 1}
		}
		return &object.Integer{Value: 0}
	case *object.Char:
		return &object.Integer{Value: int64(o.Value)}
	}
	return &object.Integer{Value: 0}
}

func toFloat(v object.Object) object.Object {
	switch o := v.(type) {
	case *object.Integer:
		return &object.Float{Value: float64(o.Value)}
	case *object.Float:
		return &object.Float{Value: o.Value}
	case *object.String:
		f, _ := strconv.ParseFloat(strings.TrimSpace(o.Value), 64)
		return &object.Float{Value: f}
	case *object.Boolean:
		if o.Value {
			return &object.Float{Value: 1.0}
		}
		return &object.Float{Value: 0.0}
	}
	return &object.Float{Value: 0.0}
}

// leadingInt parses the leading integer prefix of a string and discards the
// rest, matching atoll.
func leadingInt(s string) string {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	return s[:end]
}
