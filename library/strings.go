package library

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/luna-lang/luna/object"
)

// strArg is forgiving the way the rest of the runtime is: a non-string
// argument reads as the empty string rather than raising.
func strArg(args []object.Object, i int) string {
	if s, ok := args[i].(*object.String); ok {
		return s.Value
	}
	return ""
}

func str(s string) object.Object   { return &object.String{Value: s} }
func boolean(b bool) object.Object { return object.MakeBool(b) }

func libStrLen(args []object.Object) object.Object {
	if !checkArgs(args, 1, "str_len") {
		return object.NULL
	}
	switch v := args[0].(type) {
	case *object.String:
		return &object.Integer{Value: int64(len(v.Value))}
	case *object.List:
		return &object.Integer{Value: int64(len(v.Elements))}
	}
	return object.NULL
}

func libIsEmpty(args []object.Object) object.Object {
	if !checkArgs(args, 1, "is_empty") {
		return object.NULL
	}
	return boolean(strArg(args, 0) == "")
}

func libConcat(args []object.Object) object.Object {
	if !checkArgs(args, 2, "concat") {
		return object.NULL
	}
	return str(strArg(args, 0) + strArg(args, 1))
}

// substring(s, start, length) clamps out-of-range bounds to the string.
func libSubstring(args []object.Object) object.Object {
	if !checkArgs(args, 3, "substring") {
		return object.NULL
	}
	s := strArg(args, 0)
	start := toI64(args[1])
	length := toI64(args[2])
	n := int64(len(s))

	if start < 0 {
		start = 0
	}
	if start >= n {
		return str("")
	}
	if length < 0 {
		length = 0
	}
	if start+length > n {
		length = n - start
	}
	return str(s[start : start+length])
}

// slice works on strings and lists alike, with Python-style negative
// indices.
func libSlice(args []object.Object) object.Object {
	if !checkArgs(args, 3, "slice") {
		return object.NULL
	}

	start := toI64(args[1])
	end := toI64(args[2])

	if src, ok := args[0].(*object.List); ok {
		n := int64(len(src.Elements))
		if start < 0 {
			start += n
		}
		if end < 0 {
			end += n
		}
		if start < 0 {
			start = 0
		}
		if end > n {
			end = n
		}
		if start >= end {
			return &object.List{Elements: []object.Object{}}
		}
		elements := make([]object.Object, 0, end-start)
		for _, el := range src.Elements[start:end] {
			elements = append(elements, object.Copy(el))
		}
		return &object.List{Elements: elements}
	}

	s := strArg(args, 0)
	n := int64(len(s))
	if start < 0 {
		start += n
	}
	if end < 0 {
		end += n
	}
	if start < 0 {
		start = 0
	}
	if end > n {
		end = n
	}
	if start >= end {
		return str("")
	}
	return str(s[start:end])
}

// char_at returns a one-character string, or "" out of range.
func libCharAt(args []object.Object) object.Object {
	if !checkArgs(args, 2, "char_at") {
		return object.NULL
	}
	s := strArg(args, 0)
	idx := toI64(args[1])
	if idx < 0 || idx >= int64(len(s)) {
		return str("")
	}
	return str(s[idx : idx+1])
}

func libIndexOf(args []object.Object) object.Object {
	if !checkArgs(args, 2, "index_of") {
		return object.NULL
	}
	haystack := strArg(args, 0)
	needle := strArg(args, 1)
	if haystack == "" || needle == "" {
		return &object.Integer{Value: -1}
	}
	return &object.Integer{Value: int64(strings.Index(haystack, needle))}
}

func libLastIndexOf(args []object.Object) object.Object {
	if !checkArgs(args, 2, "last_index_of") {
		return object.NULL
	}
	haystack := strArg(args, 0)
	needle := strArg(args, 1)
	if haystack == "" || needle == "" {
		return &object.Integer{Value: -1}
	}
	return &object.Integer{Value: int64(strings.LastIndex(haystack, needle))}
}

func libContains(args []object.Object) object.Object {
	idx := libIndexOf(args)
	i, ok := idx.(*object.Integer)
	return boolean(ok && i.Value != -1)
}

func libStartsWith(args []object.Object) object.Object {
	if !checkArgs(args, 2, "starts_with") {
		return object.NULL
	}
	return boolean(strings.HasPrefix(strArg(args, 0), strArg(args, 1)))
}

func libEndsWith(args []object.Object) object.Object {
	if !checkArgs(args, 2, "ends_with") {
		return object.NULL
	}
	return boolean(strings.HasSuffix(strArg(args, 0), strArg(args, 1)))
}

func libToUpper(args []object.Object) object.Object {
	if !checkArgs(args, 1, "to_upper") {
		return object.NULL
	}
	return str(strings.ToUpper(strArg(args, 0)))
}

func libToLower(args []object.Object) object.Object {
	if !checkArgs(args, 1, "to_lower") {
		return object.NULL
	}
	return str(strings.ToLower(strArg(args, 0)))
}

func libTrim(args []object.Object) object.Object {
	if !checkArgs(args, 1, "trim") {
		return object.NULL
	}
	return str(strings.TrimSpace(strArg(args, 0)))
}

func libTrimLeft(args []object.Object) object.Object {
	if !checkArgs(args, 1, "trim_left") {
		return object.NULL
	}
	return str(strings.TrimLeftFunc(strArg(args, 0), unicode.IsSpace))
}

func libTrimRight(args []object.Object) object.Object {
	if !checkArgs(args, 1, "trim_right") {
		return object.NULL
	}
	return str(strings.TrimRightFunc(strArg(args, 0), unicode.IsSpace))
}

func libReplace(args []object.Object) object.Object {
	if !checkArgs(args, 3, "replace") {
		return object.NULL
	}
	s := strArg(args, 0)
	old := strArg(args, 1)
	if s == "" || old == "" {
		return str(s)
	}
	return str(strings.ReplaceAll(s, old, strArg(args, 2)))
}

func libReverse(args []object.Object) object.Object {
	if !checkArgs(args, 1, "reverse") {
		return object.NULL
	}
	s := strArg(args, 0)
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return str(string(b))
}

func libRepeat(args []object.Object) object.Object {
	if !checkArgs(args, 2, "repeat") {
		return object.NULL
	}
	s := strArg(args, 0)
	count := toI64(args[1])
	if s == "" || count <= 0 {
		return str("")
	}
	return str(strings.Repeat(s, int(count)))
}

func padChar(args []object.Object, i int) string {
	p := strArg(args, i)
	if p == "" {
		return " "
	}
	return p[:1]
}

func libPadLeft(args []object.Object) object.Object {
	if !checkArgs(args, 3, "pad_left") {
		return object.NULL
	}
	s := strArg(args, 0)
	width := toI64(args[1])
	if s == "" {
		return str("")
	}
	if int64(len(s)) >= width {
		return str(s)
	}
	return str(strings.Repeat(padChar(args, 2), int(width)-len(s)) + s)
}

func libPadRight(args []object.Object) object.Object {
	if !checkArgs(args, 3, "pad_right") {
		return object.NULL
	}
	s := strArg(args, 0)
	width := toI64(args[1])
	if s == "" {
		return str("")
	}
	if int64(len(s)) >= width {
		return str(s)
	}
	return str(s + strings.Repeat(padChar(args, 2), int(width)-len(s)))
}

// split drops empty tokens; an empty delimiter splits into single
// characters.
func libSplit(args []object.Object) object.Object {
	if !checkArgs(args, 2, "split") {
		return object.NULL
	}
	s := strArg(args, 0)
	delim := strArg(args, 1)

	elements := []object.Object{}
	if s == "" {
		return &object.List{Elements: elements}
	}
	if delim == "" {
		for i := 0; i < len(s); i++ {
			elements = append(elements, str(s[i:i+1]))
		}
		return &object.List{Elements: elements}
	}
	for _, token := range strings.Split(s, delim) {
		if token != "" {
			elements = append(elements, str(token))
		}
	}
	return &object.List{Elements: elements}
}

// join glues the list's string elements; non-strings are skipped but still
// separated.
func libJoin(args []object.Object) object.Object {
	if !checkArgs(args, 2, "join") {
		return str("")
	}
	list, ok := args[0].(*object.List)
	if !ok {
		return str("")
	}
	delim := strArg(args, 1)

	var sb strings.Builder
	for i, el := range list.Elements {
		if i > 0 {
			sb.WriteString(delim)
		}
		if s, ok := el.(*object.String); ok {
			sb.WriteString(s.Value)
		}
	}
	return str(sb.String())
}

func classCheck(name string, pred func(byte) bool) object.NativeFn {
	return func(args []object.Object) object.Object {
		if !checkArgs(args, 1, name) {
			return object.NULL
		}
		s := strArg(args, 0)
		if s == "" {
			return object.FALSE
		}
		for i := 0; i < len(s); i++ {
			if !pred(s[i]) {
				return object.FALSE
			}
		}
		return object.TRUE
	}
}

var (
	libIsDigit = classCheck("is_digit", func(c byte) bool { return c >= '0' && c <= '9' })
	libIsAlpha = classCheck("is_alpha", func(c byte) bool {
		return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
	})
	libIsAlnum = classCheck("is_alnum", func(c byte) bool {
		return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
	})
	libIsSpace = classCheck("is_space", func(c byte) bool {
		return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f'
	})
)

// to_int and to_float require the whole string to parse; anything else is
// zero.
func libToInt(args []object.Object) object.Object {
	if !checkArgs(args, 1, "to_int") {
		return object.NULL
	}
	s := strings.TrimLeftFunc(strArg(args, 0), unicode.IsSpace)
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return &object.Integer{Value: 0}
	}
	return &object.Integer{Value: n}
}

func libToFloat(args []object.Object) object.Object {
	if !checkArgs(args, 1, "to_float") {
		return object.NULL
	}
	s := strings.TrimLeftFunc(strArg(args, 0), unicode.IsSpace)
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return &object.Float{Value: 0.0}
	}
	return &object.Float{Value: f}
}
