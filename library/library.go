// Package library is the native standard library. Register binds every
// native function into an environment; the functions themselves live in the
// per-area files alongside this one.
package library

import (
	"os"

	"github.com/luna-lang/luna/object"
	"github.com/luna-lang/luna/report"
)

// exit is swapped out by tests so assert failures don't kill the test
// binary.
var exit = os.Exit

func def(env *object.Environment, name string, fn object.NativeFn) {
	env.Store[name] = &object.Native{Name: name, Fn: fn}
}

// checkArgs reports and returns false on an arity mismatch.
func checkArgs(args []object.Object, expected int, name string) bool {
	if len(args) != expected {
		report.Error(report.Runtime, report.CurrentLine(), 0,
			"%s() takes %d arguments", name, expected)
		return false
	}
	return true
}

func libAssert(args []object.Object) object.Object {
	if len(args) != 1 {
		report.Hint(report.Argument, report.CurrentLine(), 0,
			"Use assert(condition) to verify logic",
			"assert() takes exactly 1 argument")
		exit(1)
		return object.NULL
	}
	if !object.Truthy(args[0]) {
		report.Hint(report.Assertion, report.CurrentLine(), 0,
			"The condition evaluated to false",
			"Assertion failed")
		exit(1)
		return object.NULL
	}
	return object.TRUE
}

func Register(env *object.Environment) {
	def(env, "assert", libAssert)

	def(env, "abs", libAbs)
	def(env, "min", libMin)
	def(env, "max", libMax)
	def(env, "clamp", libClamp)
	def(env, "sign", libSign)

	def(env, "pow", float2("pow", pow))
	def(env, "sqrt", float1("sqrt", sqrt))
	def(env, "cbrt", float1("cbrt", cbrt))
	def(env, "exp", float1("exp", exp))
	def(env, "ln", float1("ln", ln))
	def(env, "log10", float1("log10", log10))

	def(env, "sin", float1("sin", sin))
	def(env, "cos", float1("cos", cos))
	def(env, "tan", float1("tan", tan))
	def(env, "asin", float1("asin", asin))
	def(env, "acos", float1("acos", acos))
	def(env, "atan", float1("atan", atan))
	def(env, "atan2", float2("atan2", atan2))

	def(env, "sinh", float1("sinh", sinh))
	def(env, "cosh", float1("cosh", cosh))
	def(env, "tanh", float1("tanh", tanh))

	def(env, "floor", int1("floor", floorf))
	def(env, "ceil", int1("ceil", ceilf))
	def(env, "round", int1("round", roundf))
	def(env, "trunc", int1("trunc", truncf))
	def(env, "fract", libFract)
	def(env, "mod", float2("mod", fmod))

	def(env, "rand", libRand)
	def(env, "srand", libSrand)
	def(env, "trand", libTrand)

	def(env, "deg_to_rad", float1("deg_to_rad", degToRad))
	def(env, "rad_to_deg", float1("rad_to_deg", radToDeg))
	def(env, "lerp", libLerp)

	def(env, "str_len", libStrLen)
	def(env, "is_empty", libIsEmpty)
	def(env, "concat", libConcat)

	def(env, "substring", libSubstring)
	def(env, "slice", libSlice)
	def(env, "char_at", libCharAt)

	def(env, "index_of", libIndexOf)
	def(env, "last_index_of", libLastIndexOf)
	def(env, "contains", libContains)
	def(env, "starts_with", libStartsWith)
	def(env, "ends_with", libEndsWith)

	def(env, "to_upper", libToUpper)
	def(env, "to_lower", libToLower)
	def(env, "trim", libTrim)
	def(env, "trim_left", libTrimLeft)
	def(env, "trim_right", libTrimRight)
	def(env, "replace", libReplace)
	def(env, "reverse", libReverse)
	def(env, "repeat", libRepeat)
	def(env, "pad_left", libPadLeft)
	def(env, "pad_right", libPadRight)

	def(env, "split", libSplit)
	def(env, "join", libJoin)

	def(env, "is_digit", libIsDigit)
	def(env, "is_alpha", libIsAlpha)
	def(env, "is_alnum", libIsAlnum)
	def(env, "is_space", libIsSpace)

	def(env, "to_int", libToInt)
	def(env, "to_float", libToFloat)

	def(env, "sort", libSort)
	def(env, "shuffle", libShuffle)

	def(env, "clock", libClock)

	def(env, "vec_add", libVecAdd)
	def(env, "vec_sub", libVecSub)
	def(env, "vec_mul", libVecMul)
	def(env, "vec_div", libVecDiv)

	def(env, "open", libFileOpen)
	def(env, "close", libFileClose)
	def(env, "read", libFileRead)
	def(env, "read_line", libFileReadLine)
	def(env, "write", libFileWrite)

	def(env, "file_exists", libFileExists)
	def(env, "remove_file", libFileRemove)
	def(env, "flush", libFileFlush)

	def(env, "db_open", libDbOpen)
	def(env, "db_exec", libDbExec)
	def(env, "db_query", libDbQuery)
	def(env, "db_close", libDbClose)

	def(env, "hash_password", libHashPassword)
	def(env, "check_password", libCheckPassword)
}
