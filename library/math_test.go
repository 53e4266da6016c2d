package library

import (
	"math"
	"testing"

	"github.com/luna-lang/luna/object"
)

func iv(v int64) object.Object   { return &object.Integer{Value: v} }
func fv(v float64) object.Object { return &object.Float{Value: v} }
func sv(v string) object.Object  { return &object.String{Value: v} }

func wantInt(t *testing.T, i int, got object.Object, want int64) {
	t.Helper()
	n, ok := got.(*object.Integer)
	if !ok {
		t.Fatalf("tests[%d] - result not an integer. got=%T (%+v)", i, got, got)
	}
	if n.Value != want {
		t.Fatalf("tests[%d] - value wrong. expected=%d, got=%d", i, want, n.Value)
	}
}

func wantFloat(t *testing.T, i int, got object.Object, want float64) {
	t.Helper()
	f, ok := got.(*object.Float)
	if !ok {
		t.Fatalf("tests[%d] - result not a float. got=%T (%+v)", i, got, got)
	}
	if math.Abs(f.Value-want) > 1e-9 {
		t.Fatalf("tests[%d] - value wrong. expected=%g, got=%g", i, want, f.Value)
	}
}

func TestAbsMinMaxKeepTypes(t *testing.T) {
	wantInt(t, 0, libAbs([]object.Object{iv(-5)}), 5)
	wantFloat(t, 1, libAbs([]object.Object{fv(-2.5)}), 2.5)
	wantInt(t, 2, libMin([]object.Object{iv(3), iv(7)}), 3)
	wantFloat(t, 3, libMin([]object.Object{iv(3), fv(7.5)}), 3)
	wantInt(t, 4, libMax([]object.Object{iv(3), iv(7)}), 7)
	wantFloat(t, 5, libMax([]object.Object{fv(3.5), iv(7)}), 7)
	if libAbs([]object.Object{sv("x")}) != object.NULL {
		t.Fatalf("abs on a string should be null")
	}
}

func TestClampAndSign(t *testing.T) {
	wantInt(t, 0, libClamp([]object.Object{iv(15), iv(0), iv(10)}), 10)
	wantInt(t, 1, libClamp([]object.Object{iv(-3), iv(0), iv(10)}), 0)
	wantInt(t, 2, libClamp([]object.Object{iv(5), iv(0), iv(10)}), 5)
	wantFloat(t, 3, libClamp([]object.Object{fv(1.5), iv(0), iv(1)}), 1)
	wantInt(t, 4, libSign([]object.Object{iv(-9)}), -1)
	wantInt(t, 5, libSign([]object.Object{fv(0.0)}), 0)
	wantInt(t, 6, libSign([]object.Object{iv(42)}), 1)
}

func TestRounding(t *testing.T) {
	tests := []struct {
		fn       object.NativeFn
		arg      float64
		expected int64
	}{
		{int1("floor", floorf), 2.7, 2},
		{int1("floor", floorf), -2.1, -3},
		{int1("ceil", ceilf), 2.1, 3},
		{int1("round", roundf), 2.5, 3},
		{int1("trunc", truncf), -2.9, -2},
	}

	for i, tt := range tests {
		wantInt(t, i, tt.fn([]object.Object{fv(tt.arg)}), tt.expected)
	}
}

func TestFloatFunctions(t *testing.T) {
	wantFloat(t, 0, float2("pow", pow)([]object.Object{iv(2), iv(10)}), 1024)
	wantFloat(t, 1, float1("sqrt", sqrt)([]object.Object{iv(9)}), 3)
	wantFloat(t, 2, libFract([]object.Object{fv(3.25)}), 0.25)
	wantFloat(t, 3, float2("mod", fmod)([]object.Object{fv(7.5), iv(2)}), 1.5)
	wantFloat(t, 4, float1("deg_to_rad", degToRad)([]object.Object{iv(180)}), math.Pi)
	wantFloat(t, 5, float1("rad_to_deg", radToDeg)([]object.Object{fv(math.Pi)}), 180)
	wantFloat(t, 6, libLerp([]object.Object{iv(0), iv(10), fv(0.25)}), 2.5)
}

func TestRandRanges(t *testing.T) {
	libSrand([]object.Object{iv(42)})

	for i := 0; i < 1000; i++ {
		f, ok := libRand(nil).(*object.Float)
		if !ok {
			t.Fatalf("rand() did not give a float")
		}
		if f.Value < 0 || f.Value >= 1 {
			t.Fatalf("rand() out of range: %g", f.Value)
		}
	}

	for i := 0; i < 1000; i++ {
		n, ok := libRand([]object.Object{iv(1), iv(6)}).(*object.Integer)
		if !ok {
			t.Fatalf("rand(1, 6) did not give an integer")
		}
		if n.Value < 1 || n.Value > 6 {
			t.Fatalf("rand(1, 6) out of range: %d", n.Value)
		}
	}

	// Swapped bounds behave the same as ordered ones.
	n := libRand([]object.Object{iv(6), iv(1)}).(*object.Integer)
	if n.Value < 1 || n.Value > 6 {
		t.Fatalf("rand(6, 1) out of range: %d", n.Value)
	}
}

func TestSrandIsReproducible(t *testing.T) {
	libSrand([]object.Object{iv(7)})
	first := []int64{}
	for i := 0; i < 10; i++ {
		first = append(first, libRand([]object.Object{iv(1000)}).(*object.Integer).Value)
	}

	libSrand([]object.Object{iv(7)})
	for i := 0; i < 10; i++ {
		got := libRand([]object.Object{iv(1000)}).(*object.Integer).Value
		if got != first[i] {
			t.Fatalf("draw %d diverged after reseeding. expected=%d, got=%d", i, first[i], got)
		}
	}
}
