package argparsegen

import (
	"github.com/vsego/argparse-gen/core"
	"github.com/vsego/argparse-gen/schema"
)

// New returns a Generator for the named object within an already loaded
// module description. The object name may contain dots (like "Greeter.run").
//
// Usage:
//
//	gen, err := argparsegen.New(module, "process",
//		argparsegen.WithUseCallArgs(true),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	code, err := gen.Code()
var New = core.New

// DefaultParamRegex recognises reStructuredText ":param name:" directives.
const DefaultParamRegex = core.DefaultParamRegex

// Generator options, re-exported from core.
var (
	WithParamRegex  = core.WithParamRegex
	WithIndent      = core.WithIndent
	WithSkipPrivate = core.WithSkipPrivate
	WithUseCallArgs = core.WithUseCallArgs
	WithMaxWidth    = core.WithMaxWidth
)

// FromFile returns a Generator for an object described by a schema file, or
// by module.yaml inside a schema directory.
func FromFile(path, objName string, opts ...Option) (*Generator, error) {
	module, err := schema.Load(path)
	if err != nil {
		return nil, err
	}
	return core.New(module, objName, opts...)
}

// FromString returns a Generator for an object described by schema source.
func FromString(source, objName string, opts ...Option) (*Generator, error) {
	module, err := schema.Parse([]byte(source))
	if err != nil {
		return nil, err
	}
	return core.New(module, objName, opts...)
}
