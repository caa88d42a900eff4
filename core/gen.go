package core

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/vsego/argparse-gen/display"
	"github.com/vsego/argparse-gen/schema"
)

// DefaultParamRegex recognises reStructuredText ":param name:" directives in
// docstrings. The pattern must contain a capture group called "name".
const DefaultParamRegex = `^:param\s+(?P<name>\w+):\s*`

// Generator derives and renders argparse CLI code for one object described
// by a signature schema.
type Generator struct {
	module      *schema.Module
	objName     string
	pattern     string
	paramRe     *regexp.Regexp
	nameGroup   int
	indent      string
	skipPrivate bool
	useCallArgs bool
	maxWidth    int
}

// Option configures a Generator.
type Option func(*Generator)

// WithParamRegex replaces the docstring parameter directive pattern. The
// pattern must keep a capture group called "name".
func WithParamRegex(pattern string) Option {
	return func(g *Generator) { g.pattern = pattern }
}

// WithIndent applies extra leading whitespace to every generated line.
func WithIndent(indent string) Option {
	return func(g *Generator) { g.indent = indent }
}

// WithSkipPrivate controls whether parameters whose name starts with an
// underscore are excluded. The default is true.
func WithSkipPrivate(skip bool) Option {
	return func(g *Generator) { g.skipPrivate = skip }
}

// WithUseCallArgs switches the final invocation from explicit keyword
// arguments to a single delegated call_args_attr call.
func WithUseCallArgs(use bool) Option {
	return func(g *Generator) { g.useCallArgs = use }
}

// WithMaxWidth sets the column limit for generated attribute lines.
func WithMaxWidth(width int) Option {
	return func(g *Generator) { g.maxWidth = width }
}

// New returns a Generator for the named object within the module
// description. The object name may contain dots ("Greeter.run").
func New(module *schema.Module, objName string, opts ...Option) (*Generator, error) {
	g := &Generator{
		module:      module,
		objName:     objName,
		pattern:     DefaultParamRegex,
		skipPrivate: true,
		maxWidth:    display.DefaultMaxWidth,
	}
	for _, opt := range opts {
		opt(g)
	}
	re, err := regexp.Compile(g.pattern)
	if err != nil {
		return nil, fmt.Errorf("param regex: %w", err)
	}
	g.nameGroup = re.SubexpIndex("name")
	if g.nameGroup < 0 {
		return nil, fmt.Errorf("param regex %q has no \"name\" group", g.pattern)
	}
	g.paramRe = re
	return g, nil
}

// Defs returns the derived argument definitions in signature order. Flag
// names are assigned in ascending name-length order over a shared
// claimed-character set, so short forms go to the shortest names first.
func (g *Generator) Defs() ([]*ParamDef, error) {
	obj, err := g.module.Resolve(g.objName)
	if err != nil {
		return nil, err
	}
	helps := g.helpDict(obj)

	var defs []*ParamDef
	for _, param := range obj.Signature() {
		if g.skipPrivate && strings.HasPrefix(param.Name, "_") {
			continue
		}
		switch param.Kind {
		case schema.PositionalOnly, schema.PositionalOrKeyword, schema.KeywordOnly:
		default:
			continue
		}
		defs = append(defs, &ParamDef{Param: param, Help: helps[param.Name]})
	}

	byLength := make([]*ParamDef, len(defs))
	copy(byLength, defs)
	sort.SliceStable(byLength, func(i, j int) bool {
		return len(byLength[i].Param.Name) < len(byLength[j].Param.Name)
	})
	claimed := map[byte]bool{}
	for _, def := range byLength {
		def.setNames(claimed)
	}
	return defs, nil
}

// Args returns the argument lines of the final explicit invocation, one
// parameter per line in signature order.
func (g *Generator) Args() (string, error) {
	defs, err := g.Defs()
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for _, def := range defs {
		b.WriteString("        " + def.callArg() + ",\n")
	}
	return b.String(), nil
}

// Code returns the full generated CLI script for the object.
func (g *Generator) Code() (string, error) {
	obj, err := g.module.Resolve(g.objName)
	if err != nil {
		return "", err
	}
	defs, err := g.Defs()
	if err != nil {
		return "", err
	}
	args := make([]display.Argument, 0, len(defs))
	for _, def := range defs {
		args = append(args, def.argument())
	}
	return display.BuildScript(display.Script{
		Description: firstDocLine(obj.Doc),
		ModuleName:  g.module.Name,
		ObjName:     g.objName,
		UseCallArgs: g.useCallArgs,
		Indent:      g.indent,
		MaxWidth:    g.maxWidth,
		Args:        args,
	})
}

// firstDocLine returns the stripped first line of a docstring, or "".
func firstDocLine(doc string) string {
	doc = strings.TrimSpace(doc)
	if doc == "" {
		return ""
	}
	line, _, _ := strings.Cut(doc, "\n")
	return strings.TrimSpace(line)
}
