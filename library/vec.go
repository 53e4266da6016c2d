package library

import (
	"github.com/luna-lang/luna/object"
	"github.com/luna-lang/luna/report"
	"github.com/luna-lang/luna/vec"
)

// The vec_* natives expose the elementwise fast path directly; the same
// kernels back the evaluator's list arithmetic.
func vecWrapper(name string, op vec.Op) object.NativeFn {
	return func(args []object.Object) object.Object {
		if len(args) != 2 {
			report.Error(report.Runtime, report.CurrentLine(), 0,
				"%s expects 2 lists", name)
			return object.NULL
		}
		l, ok := args[0].(*object.List)
		if !ok {
			return object.NULL
		}
		r, ok := args[1].(*object.List)
		if !ok {
			return object.NULL
		}
		return vec.Apply(op, l, r)
	}
}

var (
	libVecAdd = vecWrapper("vec_add", vec.Add)
	libVecSub = vecWrapper("vec_sub", vec.Sub)
	libVecMul = vecWrapper("vec_mul", vec.Mul)
	libVecDiv = vecWrapper("vec_div", vec.Div)
)
