package schema

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Value is a Python literal carried by the schema: a parameter default or a
// member of a literal choice set. Repr returns the value as Python source
// text, matching what repr() would print for the equivalent Python object.
type Value interface {
	Repr() string
}

type (
	Str   string
	Int   int64
	Float float64
	Bool  bool
	None  struct{}
)

func (v Str) Repr() string {
	s := string(v)
	// Python prefers single quotes, switching to double quotes only when the
	// string contains a single quote and no double quote.
	quote := byte('\'')
	if strings.Contains(s, "'") && !strings.Contains(s, `"`) {
		quote = '"'
	}
	var b strings.Builder
	b.WriteByte(quote)
	for _, r := range s {
		switch {
		case r == '\\' || r == rune(quote):
			b.WriteByte('\\')
			b.WriteRune(r)
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\r':
			b.WriteString(`\r`)
		case r == '\t':
			b.WriteString(`\t`)
		case r < 0x20 || r == 0x7f:
			fmt.Fprintf(&b, `\x%02x`, r)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte(quote)
	return b.String()
}

func (v Int) Repr() string { return strconv.FormatInt(int64(v), 10) }

func (v Float) Repr() string {
	f := float64(v)
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	// Python switches to exponent notation outside [1e-4, 1e16).
	if f != 0 && (math.Abs(f) >= 1e16 || math.Abs(f) < 1e-4) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func (v Bool) Repr() string {
	if v {
		return "True"
	}
	return "False"
}

func (None) Repr() string { return "None" }

// TypeName returns the Python type name of a literal value, as used for the
// coercion type shared by a uniform literal choice set.
func TypeName(v Value) string {
	switch v.(type) {
	case Str:
		return "str"
	case Int:
		return "int"
	case Float:
		return "float"
	case Bool:
		return "bool"
	case None:
		return "NoneType"
	default:
		return ""
	}
}
