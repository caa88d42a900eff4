package core

import (
	"testing"

	"github.com/chriso345/gore/assert"

	"github.com/vsego/argparse-gen/schema"
)

func newTestGenerator(t *testing.T, opts ...Option) *Generator {
	t.Helper()
	g, err := New(&schema.Module{}, "unused", opts...)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return g
}

func TestHelpDict_SingleParam(t *testing.T) {
	g := newTestGenerator(t)

	helps := g.helpDict(&schema.Object{Doc: ":param n: count of items"})
	assert.Equal(t, 1, len(helps))
	assert.Equal(t, "count of items", helps["n"])
}

func TestHelpDict_MultilineContinuation(t *testing.T) {
	g := newTestGenerator(t)

	doc := "Do things.\n" +
		"\n" +
		":param path: The input\n" +
		"    file to read\n" +
		":param count: How many.\n"
	helps := g.helpDict(&schema.Object{Doc: doc})
	assert.Equal(t, "The input file to read", helps["path"])
	assert.Equal(t, "How many.", helps["count"])
}

func TestHelpDict_BlankLineCommitsEntry(t *testing.T) {
	g := newTestGenerator(t)

	doc := ":param n: count\n" +
		"\n" +
		"Returns the processed total.\n"
	helps := g.helpDict(&schema.Object{Doc: doc})
	// Prose after the blank line belongs to no parameter.
	assert.Equal(t, "count", helps["n"])
	assert.Equal(t, 1, len(helps))
}

func TestHelpDict_EmptyDocstring(t *testing.T) {
	g := newTestGenerator(t)

	helps := g.helpDict(&schema.Object{})
	assert.Equal(t, 0, len(helps))
}

func TestHelpDict_CustomRegex(t *testing.T) {
	g := newTestGenerator(t, WithParamRegex(`^@param\s+(?P<name>\w+)\s+`))

	helps := g.helpDict(&schema.Object{Doc: "@param size the buffer size"})
	assert.Equal(t, "the buffer size", helps["size"])
}

func TestHelpDict_ClassMergesConstructor(t *testing.T) {
	g := newTestGenerator(t)

	obj := &schema.Object{
		Kind: "class",
		Doc: "A greeter.\n" +
			"\n" +
			":param name: from the class\n" +
			":param tone: politeness level\n",
		Init: &schema.Object{
			Doc: ":param name: from the constructor\n" +
				":param times: repeat count\n",
		},
	}
	helps := g.helpDict(obj)
	// Constructor entries are layered in last and override class entries.
	assert.Equal(t, "from the constructor", helps["name"])
	assert.Equal(t, "politeness level", helps["tone"])
	assert.Equal(t, "repeat count", helps["times"])
}

func TestHelpDict_ClassWithoutConstructor(t *testing.T) {
	g := newTestGenerator(t)

	obj := &schema.Object{Kind: "class", Doc: ":param x: from the class"}
	helps := g.helpDict(obj)
	assert.Equal(t, "from the class", helps["x"])
}

func TestNew_BadRegex(t *testing.T) {
	_, err := New(&schema.Module{}, "x", WithParamRegex(`([`))
	assert.NotNil(t, err)
}

func TestNew_RegexWithoutNameGroup(t *testing.T) {
	_, err := New(&schema.Module{}, "x", WithParamRegex(`^:param\s+(\w+):`))
	assert.NotNil(t, err)
}
