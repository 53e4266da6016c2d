package library

import (
	"crypto/rand"
	"encoding/binary"
	"math"
	"time"

	"github.com/luna-lang/luna/object"
	"github.com/luna-lang/luna/report"
)

// xoroshiro128++ drives rand() and shuffle(). The fixed initial state means
// unseeded programs are reproducible; srand() rescrambles it.
var rngState = [2]uint64{0x12345678, 0x87654321}

func rotl(x uint64, k uint) uint64 {
	return (x << k) | (x >> (64 - k))
}

func rngNext() uint64 {
	s0 := rngState[0]
	s1 := rngState[1]
	result := rotl(s0+s1, 17) + s0

	s1 ^= s0
	rngState[0] = rotl(s0, 49) ^ s1 ^ (s1 << 21)
	rngState[1] = rotl(s1, 28)

	return result
}

func splitmix64(z uint64) uint64 {
	z += 0x9E3779B97F4A7C15
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

func seedRNG(seed uint64) {
	rngState[0] = splitmix64(seed)
	rngState[1] = splitmix64(rngState[0])
}

func osEntropy() uint64 {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return uint64(time.Now().UnixNano())
	}
	return binary.LittleEndian.Uint64(buf[:])
}

// SeedFromEntropy puts the generator into an unpredictable state; the CLI
// calls this on startup.
func SeedFromEntropy() {
	seedRNG(osEntropy())
}

func toDouble(v object.Object) float64 {
	switch o := v.(type) {
	case *object.Integer:
		return float64(o.Value)
	case *object.Float:
		return o.Value
	}
	return 0.0
}

func toI64(v object.Object) int64 {
	switch o := v.(type) {
	case *object.Integer:
		return o.Value
	case *object.Float:
		return int64(o.Value)
	}
	return 0
}

func isInt(v object.Object) bool {
	_, ok := v.(*object.Integer)
	return ok
}

// float1 and friends wrap the pure math functions with the uniform arity
// check so the registration table stays one line per native.
func float1(name string, f func(float64) float64) object.NativeFn {
	return func(args []object.Object) object.Object {
		if !checkArgs(args, 1, name) {
			return object.NULL
		}
		return &object.Float{Value: f(toDouble(args[0]))}
	}
}

func float2(name string, f func(float64, float64) float64) object.NativeFn {
	return func(args []object.Object) object.Object {
		if !checkArgs(args, 2, name) {
			return object.NULL
		}
		return &object.Float{Value: f(toDouble(args[0]), toDouble(args[1]))}
	}
}

func int1(name string, f func(float64) float64) object.NativeFn {
	return func(args []object.Object) object.Object {
		if !checkArgs(args, 1, name) {
			return object.NULL
		}
		return &object.Integer{Value: int64(f(toDouble(args[0])))}
	}
}

func pow(a, b float64) float64   { return math.Pow(a, b) }
func sqrt(x float64) float64     { return math.Sqrt(x) }
func cbrt(x float64) float64     { return math.Cbrt(x) }
func exp(x float64) float64      { return math.Exp(x) }
func ln(x float64) float64       { return math.Log(x) }
func log10(x float64) float64    { return math.Log10(x) }
func sin(x float64) float64      { return math.Sin(x) }
func cos(x float64) float64      { return math.Cos(x) }
func tan(x float64) float64      { return math.Tan(x) }
func asin(x float64) float64     { return math.Asin(x) }
func acos(x float64) float64     { return math.Acos(x) }
func atan(x float64) float64     { return math.Atan(x) }
func atan2(y, x float64) float64 { return math.Atan2(y, x) }
func sinh(x float64) float64     { return math.Sinh(x) }
func cosh(x float64) float64     { return math.Cosh(x) }
func tanh(x float64) float64     { return math.Tanh(x) }
func floorf(x float64) float64   { return math.Floor(x) }
func ceilf(x float64) float64    { return math.Ceil(x) }
func roundf(x float64) float64   { return math.Round(x) }
func truncf(x float64) float64   { return math.Trunc(x) }
func fmod(a, b float64) float64  { return math.Mod(a, b) }
func degToRad(x float64) float64 { return x * (math.Pi / 180.0) }
func radToDeg(x float64) float64 { return x * (180.0 / math.Pi) }

// abs keeps the argument's type: int stays int, float stays float.
func libAbs(args []object.Object) object.Object {
	if !checkArgs(args, 1, "abs") {
		return object.NULL
	}
	switch v := args[0].(type) {
	case *object.Integer:
		if v.Value < 0 {
			return &object.Integer{Value: -v.Value}
		}
		return &object.Integer{Value: v.Value}
	case *object.Float:
		return &object.Float{Value: math.Abs(v.Value)}
	}
	return object.NULL
}

func libMin(args []object.Object) object.Object {
	if !checkArgs(args, 2, "min") {
		return object.NULL
	}
	a, b := toDouble(args[0]), toDouble(args[1])
	if isInt(args[0]) && isInt(args[1]) {
		return &object.Integer{Value: int64(math.Min(a, b))}
	}
	return &object.Float{Value: math.Min(a, b)}
}

func libMax(args []object.Object) object.Object {
	if !checkArgs(args, 2, "max") {
		return object.NULL
	}
	a, b := toDouble(args[0]), toDouble(args[1])
	if isInt(args[0]) && isInt(args[1]) {
		return &object.Integer{Value: int64(math.Max(a, b))}
	}
	return &object.Float{Value: math.Max(a, b)}
}

func libClamp(args []object.Object) object.Object {
	if !checkArgs(args, 3, "clamp") {
		return object.NULL
	}
	x, lo, hi := toDouble(args[0]), toDouble(args[1]), toDouble(args[2])
	res := x
	if res < lo {
		res = lo
	}
	if res > hi {
		res = hi
	}
	if isInt(args[0]) && isInt(args[1]) && isInt(args[2]) {
		return &object.Integer{Value: int64(res)}
	}
	return &object.Float{Value: res}
}

func libSign(args []object.Object) object.Object {
	if !checkArgs(args, 1, "sign") {
		return object.NULL
	}
	x := toDouble(args[0])
	switch {
	case x > 0:
		return &object.Integer{Value: 1}
	case x < 0:
		return &object.Integer{Value: -1}
	}
	return &object.Integer{Value: 0}
}

func libFract(args []object.Object) object.Object {
	if !checkArgs(args, 1, "fract") {
		return object.NULL
	}
	_, frac := math.Modf(toDouble(args[0]))
	return &object.Float{Value: frac}
}

func libLerp(args []object.Object) object.Object {
	if !checkArgs(args, 3, "lerp") {
		return object.NULL
	}
	a, b, t := toDouble(args[0]), toDouble(args[1]), toDouble(args[2])
	return &object.Float{Value: a + t*(b-a)}
}

// rand() gives a float in [0, 1); rand(max) and rand(min, max) give an
// integer in the inclusive range, with swapped bounds tolerated.
func libRand(args []object.Object) object.Object {
	if len(args) == 0 {
		r := rngNext()
		return &object.Float{Value: float64(r>>11) * (1.0 / float64(uint64(1)<<53))}
	}

	var lo, hi int64
	switch len(args) {
	case 1:
		hi = toI64(args[0])
	case 2:
		lo = toI64(args[0])
		hi = toI64(args[1])
	default:
		report.Error(report.Runtime, report.CurrentLine(), 0,
			"rand() takes 0, 1, or 2 arguments")
		return object.NULL
	}

	if lo > hi {
		lo, hi = hi, lo
	}
	span := uint64(hi - lo + 1)
	if span == 0 {
		return &object.Integer{Value: lo}
	}
	return &object.Integer{Value: lo + int64(rngNext()%span)}
}

func libSrand(args []object.Object) object.Object {
	if len(args) == 0 {
		seedRNG(osEntropy())
	} else {
		seedRNG(uint64(toI64(args[0])))
	}
	return object.NULL
}

func libTrand(args []object.Object) object.Object {
	return &object.Integer{Value: int64(osEntropy())}
}
