package display

import (
	"fmt"
	"strings"

	"github.com/vsego/argparse-gen/internal/common"
	"github.com/vsego/argparse-gen/schema"
)

// Attr is one rendered key=value attribute of an argument declaration. Repr
// already holds the value's exact source-syntax representation.
type Attr struct {
	Key  string
	Repr string
}

// Argument is the renderer's view of one derived CLI argument: its flag
// names, its declaration attributes in order, and the expression that feeds
// the parsed value back into the final call.
type Argument struct {
	Names   []string
	Attrs   []Attr
	CallArg string
}

// Script holds everything needed to assemble one generated CLI document.
type Script struct {
	Description string
	ModuleName  string
	ObjName     string
	UseCallArgs bool
	Indent      string
	MaxWidth    int
	Args        []Argument
}

// Declaration renders one parser.add_argument statement for the argument:
// flag names as literal strings first, then each attribute as key=value,
// width-wrapped as needed.
func Declaration(arg Argument, maxWidth int) (string, error) {
	lines := make([]string, 0, len(arg.Names)+len(arg.Attrs))
	for _, name := range arg.Names {
		lines = append(lines, schema.Str(name).Repr())
	}
	for _, attr := range arg.Attrs {
		formatted, err := FormatAttr(attr.Key, attr.Repr, maxWidth)
		if err != nil {
			return "", err
		}
		lines = append(lines, formatted)
	}

	var b strings.Builder
	b.WriteString("parser.add_argument(\n")
	for _, line := range lines {
		b.WriteString("    " + line + ",\n")
	}
	b.WriteString(")")
	return b.String(), nil
}

// BuildScript assembles the full generated document: shebang, optional
// description comment, imports, the driver block with one declaration per
// argument, and the final invocation statement.
func BuildScript(s Script) (string, error) {
	lines := []string{
		"#!/usr/bin/python3",
		"",
	}
	if s.Description != "" {
		lines = append(lines, "'''", s.Description, "'''", "")
	}
	lines = append(lines, "import argparse", "import sys")
	if s.UseCallArgs {
		lines = append(lines, "", "from call_args import call_args_attr")
	}
	useModule := s.ModuleName != "" && !strings.HasPrefix(s.ModuleName, "__")
	if useModule {
		lines = append(lines, "", "import "+s.ModuleName)
	}
	lines = append(lines,
		"",
		"",
		"if __name__ == '__main__':",
		"    parser = argparse.ArgumentParser(",
		"        description=sys.modules[__name__].__doc__,",
		"    )",
	)
	for _, arg := range s.Args {
		decl, err := Declaration(arg, s.MaxWidth)
		if err != nil {
			return "", err
		}
		lines = append(lines, common.Indent(decl, "    "))
	}
	lines = append(lines, "", "    args = parser.parse_args()", "")

	prefix := ""
	if useModule {
		prefix = s.ModuleName + "."
	}
	if s.UseCallArgs {
		lines = append(lines, fmt.Sprintf("    call_args_attr(%s%s, args)", prefix, s.ObjName))
	} else {
		var call strings.Builder
		fmt.Fprintf(&call, "    %s%s(\n", prefix, s.ObjName)
		for _, arg := range s.Args {
			call.WriteString("        " + arg.CallArg + ",\n")
		}
		call.WriteString("    )")
		lines = append(lines, call.String())
	}

	return common.Indent(strings.Join(lines, "\n"), s.Indent), nil
}
