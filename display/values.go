package display

import (
	"fmt"
	"strings"
)

// TypeRef is the coercion rule attached to a generated argument. It is a
// closed set of variants rather than a generic value: a plain type is
// rendered by its bare name, an enumeration by a lookup-by-name expression.
type TypeRef interface {
	TypeExpr() string
}

// PlainType renders a concrete type by its identifier (int, str, Path, ...).
type PlainType struct{ Ident string }

func (t PlainType) TypeExpr() string { return t.Ident }

// EnumType renders an enumeration coercion as a one-line function expression
// that resolves a member by its textual name at parse time.
type EnumType struct{ Enum string }

func (t EnumType) TypeExpr() string {
	return fmt.Sprintf("lambda value: getattr(%s, value)", t.Enum)
}

// EnumValue renders an enumeration member as a symbolic Type.MEMBER
// reference instead of a plain string.
type EnumValue struct{ Enum, Member string }

func (v EnumValue) Repr() string { return v.Enum + "." + v.Member }

// TupleRepr renders pre-formatted items as Python tuple source, including
// the trailing comma a one-element tuple needs.
func TupleRepr(items []string) string {
	if len(items) == 1 {
		return "(" + items[0] + ",)"
	}
	return "(" + strings.Join(items, ", ") + ")"
}

// ListRepr renders pre-formatted items as Python list source.
func ListRepr(items []string) string {
	return "[" + strings.Join(items, ", ") + "]"
}
