package argparsegen

import (
	"github.com/vsego/argparse-gen/core"
	"github.com/vsego/argparse-gen/schema"
)

// Generator derives and renders argparse CLI code for one object described
// by a signature schema.
//
// Usage:
//
//	module, err := schema.Load("module.yaml")
//	...
//	gen, err := argparsegen.New(module, "process")
//	...
//	code, err := gen.Code()
type Generator = core.Generator

// ParamDef is one parameter's derived CLI argument definition, exposed for
// callers that want the derived flag names, help and attributes without
// rendering a whole script.
type ParamDef = core.ParamDef

// Option configures a Generator. See WithParamRegex, WithIndent,
// WithSkipPrivate, WithUseCallArgs and WithMaxWidth.
type Option = core.Option

// Module is the root of a signature schema: the owning namespace name and
// the objects it exposes, keyed by name.
type Module = schema.Module

// Object describes one introspectable object: a function with parameters
// and a docstring, or a class with a constructor and nested attributes.
type Object = schema.Object

// Param is one introspected parameter: name, kind, optional default and
// optional type annotation.
type Param = schema.Param

// Kind classifies how a parameter may be passed at the call site. Only
// positional-only, positional-or-keyword and keyword-only parameters map
// onto CLI arguments; variadic kinds are always excluded.
type Kind = schema.Kind

// Annotation is a parameter's declared type: a plain type name, a literal
// choice set, or an enumeration.
type Annotation = schema.Annotation

// Enum describes an enumeration annotation: a named type with a fixed
// member list in definition order.
type Enum = schema.Enum

// Value is a Python literal carried by the schema, rendered to source text
// with Repr.
type Value = schema.Value

const (
	PositionalOnly      = schema.PositionalOnly
	PositionalOrKeyword = schema.PositionalOrKeyword
	KeywordOnly         = schema.KeywordOnly
	VarPositional       = schema.VarPositional
	VarKeyword          = schema.VarKeyword
)
