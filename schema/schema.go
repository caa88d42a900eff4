package schema

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/vsego/argparse-gen/errors"
)

// Kind classifies how a parameter may be passed at the call site. The names
// mirror Python's inspect.Parameter kinds, which the schema describes.
type Kind string

const (
	PositionalOnly      Kind = "positional_only"
	PositionalOrKeyword Kind = "positional_or_keyword"
	KeywordOnly         Kind = "keyword_only"
	VarPositional       Kind = "var_positional"
	VarKeyword          Kind = "var_keyword"
)

func validKind(k Kind) bool {
	switch k {
	case PositionalOnly, PositionalOrKeyword, KeywordOnly, VarPositional, VarKeyword:
		return true
	}
	return false
}

// Enum describes an enumeration annotation: a named type with a fixed member
// list in definition order.
type Enum struct {
	Name    string   `yaml:"name"`
	Members []string `yaml:"members"`
}

// HasMember reports whether name is a member of the enumeration.
func (e *Enum) HasMember(name string) bool {
	for _, m := range e.Members {
		if m == name {
			return true
		}
	}
	return false
}

// Annotation is a parameter's declared type: exactly one of a plain type
// name, a literal choice set, or an enumeration.
type Annotation struct {
	Type    string
	Literal []Value
	Enum    *Enum
}

func (a *Annotation) UnmarshalYAML(node *yaml.Node) error {
	var raw struct {
		Type    string      `yaml:"type"`
		Literal []yaml.Node `yaml:"literal"`
		Enum    *Enum       `yaml:"enum"`
	}
	if err := node.Decode(&raw); err != nil {
		return err
	}
	set := 0
	if raw.Type != "" {
		set++
	}
	if len(raw.Literal) > 0 {
		set++
	}
	if raw.Enum != nil {
		set++
	}
	if set != 1 {
		return errors.NewSchema("annotation requires exactly one of type, literal or enum")
	}
	if raw.Enum != nil && (raw.Enum.Name == "" || len(raw.Enum.Members) == 0) {
		return errors.NewSchema("enum annotation requires a name and at least one member")
	}
	a.Type = raw.Type
	a.Enum = raw.Enum
	a.Literal = nil
	for i := range raw.Literal {
		v, err := decodeValue("literal", &raw.Literal[i])
		if err != nil {
			return err
		}
		a.Literal = append(a.Literal, v)
	}
	return nil
}

// Param is one introspected parameter of a callable. A nil Default means the
// parameter is required.
type Param struct {
	Name       string
	Kind       Kind
	Default    Value
	Annotation *Annotation
}

func (p *Param) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return errors.NewSchema("param must be a mapping")
	}
	p.Kind = PositionalOrKeyword
	for i := 0; i < len(node.Content); i += 2 {
		key, val := node.Content[i], node.Content[i+1]
		switch key.Value {
		case "name":
			p.Name = val.Value
		case "kind":
			k := Kind(val.Value)
			if !validKind(k) {
				return errors.NewSchema(fmt.Sprintf("unknown param kind %q", val.Value))
			}
			p.Kind = k
		case "default":
			v, err := decodeValue("default", val)
			if err != nil {
				return err
			}
			p.Default = v
		case "annotation":
			var ann Annotation
			if err := val.Decode(&ann); err != nil {
				return err
			}
			p.Annotation = &ann
		default:
			return errors.NewSchema(fmt.Sprintf("unknown param key %q", key.Value))
		}
	}
	if p.Name == "" {
		return errors.NewSchema("param missing name")
	}
	return nil
}

// decodeValue maps a YAML scalar onto the Python literal it stands for.
func decodeValue(field string, node *yaml.Node) (Value, error) {
	if node.Kind != yaml.ScalarNode {
		return nil, errors.NewUnsupportedValue(field, node.Tag)
	}
	switch node.Tag {
	case "!!str":
		return Str(node.Value), nil
	case "!!int":
		n, err := strconv.ParseInt(node.Value, 0, 64)
		if err != nil {
			return nil, errors.NewUnsupportedValue(field, node.Tag)
		}
		return Int(n), nil
	case "!!float":
		f, err := strconv.ParseFloat(node.Value, 64)
		if err != nil {
			return nil, errors.NewUnsupportedValue(field, node.Tag)
		}
		return Float(f), nil
	case "!!bool":
		b, err := strconv.ParseBool(node.Value)
		if err != nil {
			return nil, errors.NewUnsupportedValue(field, node.Tag)
		}
		return Bool(b), nil
	case "!!null":
		return None{}, nil
	}
	return nil, errors.NewUnsupportedValue(field, node.Tag)
}

// Object describes one introspectable object in a module: a plain function
// (or method) with its own parameters, or a class whose signature comes from
// its constructor. Attrs holds nested objects reachable by dotted paths.
type Object struct {
	Kind   string             `yaml:"kind"`
	Doc    string             `yaml:"doc"`
	Params []Param            `yaml:"params"`
	Init   *Object            `yaml:"init"`
	Attrs  map[string]*Object `yaml:"attrs"`
}

// IsClass reports whether the object is a class constructor target.
func (o *Object) IsClass() bool { return o.Kind == "class" }

// Signature returns the parameters a generated CLI maps onto: a class
// exposes its constructor's parameters, a function its own. A class without
// a described constructor has an empty signature.
func (o *Object) Signature() []Param {
	if o.IsClass() {
		if o.Init == nil {
			return nil
		}
		return o.Init.Params
	}
	return o.Params
}

func (o *Object) validate(name string) error {
	switch o.Kind {
	case "", "function", "class":
	default:
		return errors.NewSchema(fmt.Sprintf("object %s: unknown kind %q", name, o.Kind))
	}
	if o.Init != nil && !o.IsClass() {
		return errors.NewSchema(fmt.Sprintf("object %s: init is only valid on classes", name))
	}
	if o.Init != nil {
		if err := o.Init.validate(name + ".__init__"); err != nil {
			return err
		}
	}
	for attr, sub := range o.Attrs {
		if err := sub.validate(name + "." + attr); err != nil {
			return err
		}
	}
	return nil
}

// Module is the root of a signature schema: the owning namespace name (empty
// when no meaningful one exists) and the objects it exposes.
type Module struct {
	Name    string             `yaml:"module"`
	Objects map[string]*Object `yaml:"objects"`
}
