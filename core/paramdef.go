package core

import (
	"github.com/vsego/argparse-gen/display"
	"github.com/vsego/argparse-gen/schema"
)

// ParamDef is one parameter's derived CLI argument definition: the schema
// parameter, its resolved help text, and the flag names assigned by the
// naming pass.
type ParamDef struct {
	Param schema.Param
	Names []string
	Help  string
}

// Required reports whether the parameter must be supplied: it has no
// declared default.
func (d *ParamDef) Required() bool { return d.Param.Default == nil }

// setNames assigns the flag names. Positional-only parameters get the bare
// name. Otherwise a one-character name claims its character and gets only a
// short flag; longer names get a short flag too when their first character
// is still unclaimed.
func (d *ParamDef) setNames(claimed map[byte]bool) {
	name := d.Param.Name
	if d.Param.Kind == schema.PositionalOnly {
		d.Names = []string{name}
		return
	}
	if len(name) == 1 {
		claimed[name[0]] = true
		d.Names = []string{"-" + name}
		return
	}
	first := name[0]
	if !claimed[first] {
		claimed[first] = true
		d.Names = []string{"-" + string(first), "--" + name}
	} else {
		d.Names = []string{"--" + name}
	}
}

// Code renders the parameter's parser.add_argument statement.
func (d *ParamDef) Code(maxWidth int) (string, error) {
	return display.Declaration(d.argument(), maxWidth)
}

// argument lowers the definition to the renderer's neutral form, deriving
// the declaration attributes in order: nargs, default, action or type,
// choices, help.
func (d *ParamDef) argument() display.Argument {
	var attrs []display.Attr
	required := d.Required()
	// A positional-only parameter with a default becomes an optional
	// positional slot rather than a required flag.
	if d.Param.Kind == schema.PositionalOnly && !required {
		attrs = append(attrs, display.Attr{Key: "nargs", Repr: schema.Str("?").Repr()})
	}
	defIdx := -1
	if !required {
		attrs = append(attrs, display.Attr{Key: "default", Repr: d.Param.Default.Repr()})
		defIdx = len(attrs) - 1
	}
	attrs = d.annotate(attrs, defIdx)
	attrs = append(attrs, display.Attr{Key: "help", Repr: schema.Str(d.Help).Repr()})
	return display.Argument{Names: d.Names, Attrs: attrs, CallArg: d.callArg()}
}

// annotate derives coercion, action and choice attributes from the
// parameter's annotation. Priority order: literal choice set, enumeration,
// plain type, no annotation.
func (d *ParamDef) annotate(attrs []display.Attr, defIdx int) []display.Attr {
	ann := d.Param.Annotation
	if ann == nil {
		return attrs
	}

	var typeRef display.TypeRef
	choices := ""
	switch {
	case len(ann.Literal) > 0:
		reprs := make([]string, len(ann.Literal))
		kinds := map[string]bool{}
		for i, v := range ann.Literal {
			reprs[i] = v.Repr()
			kinds[schema.TypeName(v)] = true
		}
		choices = display.TupleRepr(reprs)
		if len(kinds) == 1 {
			typeRef = display.PlainType{Ident: schema.TypeName(ann.Literal[0])}
		}
	case ann.Enum != nil:
		reprs := make([]string, len(ann.Enum.Members))
		for i, member := range ann.Enum.Members {
			reprs[i] = display.EnumValue{Enum: ann.Enum.Name, Member: member}.Repr()
		}
		choices = display.ListRepr(reprs)
		typeRef = display.EnumType{Enum: ann.Enum.Name}
		// Re-wrap a default naming an enum member so it renders as the
		// same symbolic reference as the choices.
		if defIdx >= 0 {
			if s, ok := d.Param.Default.(schema.Str); ok && ann.Enum.HasMember(string(s)) {
				attrs[defIdx].Repr = display.EnumValue{Enum: ann.Enum.Name, Member: string(s)}.Repr()
			}
		}
	case ann.Type != "":
		typeRef = display.PlainType{Ident: ann.Type}
	}

	if typeRef != nil {
		if pt, ok := typeRef.(display.PlainType); ok && pt.Ident == "bool" {
			action := "store_true"
			if b, ok := d.Param.Default.(schema.Bool); ok && bool(b) {
				action = "store_false"
			}
			attrs = append(attrs, display.Attr{Key: "action", Repr: schema.Str(action).Repr()})
		} else {
			attrs = append(attrs, display.Attr{Key: "type", Repr: typeRef.TypeExpr()})
		}
	}
	if choices != "" {
		attrs = append(attrs, display.Attr{Key: "choices", Repr: choices})
	}
	return attrs
}

// callArg returns the expression feeding the parsed value into the final
// call: positional-only parameters are passed positionally, the rest by
// keyword.
func (d *ParamDef) callArg() string {
	if d.Param.Kind == schema.PositionalOnly {
		return "args." + d.Param.Name
	}
	return d.Param.Name + "=args." + d.Param.Name
}
