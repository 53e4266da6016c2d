// Package vec is the elementwise fast path for list arithmetic. Both
// operand lists are packed into flat float64 buffers, the kernel runs over
// the buffers two lanes per step with a scalar tail, and the result is
// unpacked into a fresh list of floats.
package vec

import (
	"github.com/luna-lang/luna/object"
)

type Op int

const (
	Add Op = iota
	Sub
	Mul
	Div
)

// Pack truncates to the shorter operand and coerces non-numeric elements
// to 0.0.
func Pack(l *object.List, n int) []float64 {
	buf := make([]float64, n)
	for i := 0; i < n; i++ {
		switch el := l.Elements[i].(type) {
		case *object.Integer:
			buf[i] = float64(el.Value)
		case *object.Float:
			buf[i] = el.Value
		default:
			buf[i] = 0.0
		}
	}
	return buf
}

func Run(op Op, a, b, out []float64) {
	n := len(out)
	i := 0
	for ; i+1 < n; i += 2 {
		out[i] = lane(op, a[i], b[i])
		out[i+1] = lane(op, a[i+1], b[i+1])
	}
	for ; i < n; i++ {
		out[i] = lane(op, a[i], b[i])
	}
}

func lane(op Op, x, y float64) float64 {
	switch op {
	case Add:
		return x + y
	case Sub:
		return x - y
	case Mul:
		return x * y
	case Div:
		if y == 0.0 {
			return 0.0
		}
		return x / y
	}
	return 0.0
}

// Apply is the whole pipeline: pack, run, unpack.
func Apply(op Op, l, r *object.List) *object.List {
	n := len(l.Elements)
	if len(r.Elements) < n {
		n = len(r.Elements)
	}
	a := Pack(l, n)
	b := Pack(r, n)
	out := make([]float64, n)
	Run(op, a, b, out)
	elements := make([]object.Object, n)
	for i, v := range out {
		elements[i] = &object.Float{Value: v}
	}
	return &object.List{Elements: elements}
}
