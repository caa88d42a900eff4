package schema

import (
	stderrs "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/chriso345/gore/assert"
	"github.com/chriso345/gore/vital"

	clierr "github.com/vsego/argparse-gen/errors"
)

func TestParse_DefaultsAndKinds(t *testing.T) {
	module, err := Parse([]byte(`
module: mytools
objects:
  fn:
    params:
      - name: a
      - name: b
        kind: keyword_only
        default: 3
      - name: c
        default: null
`))
	vital.Nil(t, err)
	assert.Equal(t, "mytools", module.Name)

	params := module.Objects["fn"].Params
	assert.Equal(t, 3, len(params))

	assert.Equal(t, PositionalOrKeyword, params[0].Kind)
	assert.True(t, params[0].Default == nil)

	assert.Equal(t, KeywordOnly, params[1].Kind)
	assert.Equal(t, "3", params[1].Default.Repr())

	// An explicit null default is a None default, not a required param.
	assert.True(t, params[2].Default != nil)
	assert.Equal(t, "None", params[2].Default.Repr())
}

func TestParse_AnnotationVariants(t *testing.T) {
	module, err := Parse([]byte(`
objects:
  fn:
    params:
      - name: a
        annotation: {type: int}
      - name: b
        annotation:
          literal: [fast, slow]
      - name: c
        annotation:
          enum: {name: Color, members: [RED, GREEN]}
`))
	vital.Nil(t, err)

	params := module.Objects["fn"].Params
	assert.Equal(t, "int", params[0].Annotation.Type)
	assert.Equal(t, 2, len(params[1].Annotation.Literal))
	assert.Equal(t, "'fast'", params[1].Annotation.Literal[0].Repr())
	assert.Equal(t, "Color", params[2].Annotation.Enum.Name)
	assert.True(t, params[2].Annotation.Enum.HasMember("GREEN"))
	assert.True(t, !params[2].Annotation.Enum.HasMember("PINK"))
}

func TestParse_AnnotationRequiresExactlyOneVariant(t *testing.T) {
	_, err := Parse([]byte(`
objects:
  fn:
    params:
      - name: a
        annotation:
          type: int
          enum: {name: Color, members: [RED]}
`))
	assert.NotNil(t, err)

	_, err = Parse([]byte(`
objects:
  fn:
    params:
      - name: a
        annotation: {}
`))
	assert.NotNil(t, err)
}

func TestParse_RejectsUnknownParamKey(t *testing.T) {
	_, err := Parse([]byte(`
objects:
  fn:
    params:
      - name: a
        deflt: 3
`))
	assert.NotNil(t, err)
}

func TestParse_RejectsUnknownKind(t *testing.T) {
	_, err := Parse([]byte(`
objects:
  fn:
    params:
      - name: a
        kind: sideways
`))
	assert.NotNil(t, err)
}

func TestParse_RejectsStructuredDefault(t *testing.T) {
	_, err := Parse([]byte(`
objects:
  fn:
    params:
      - name: a
        default: [1, 2]
`))
	assert.NotNil(t, err)
	var ue clierr.UnsupportedValueError
	assert.True(t, stderrs.As(err, &ue))
}

func TestParse_RejectsInitOnFunction(t *testing.T) {
	_, err := Parse([]byte(`
objects:
  fn:
    init:
      params:
        - name: a
`))
	assert.NotNil(t, err)
}

func TestSignature_ClassUsesInit(t *testing.T) {
	module, err := Parse([]byte(`
objects:
  Greeter:
    kind: class
    init:
      params:
        - name: name
  Empty:
    kind: class
`))
	vital.Nil(t, err)

	sig := module.Objects["Greeter"].Signature()
	assert.Equal(t, 1, len(sig))
	assert.Equal(t, "name", sig[0].Name)
	assert.Equal(t, 0, len(module.Objects["Empty"].Signature()))
}

func TestResolve_DottedPath(t *testing.T) {
	module, err := Parse([]byte(`
objects:
  Greeter:
    kind: class
    attrs:
      run:
        params:
          - name: msg
`))
	vital.Nil(t, err)

	obj, err := module.Resolve("Greeter.run")
	assert.Nil(t, err)
	assert.Equal(t, "msg", obj.Params[0].Name)
}

func TestResolve_UnknownPathSuggestion(t *testing.T) {
	module, err := Parse([]byte(`
objects:
  process:
    params:
      - name: n
`))
	vital.Nil(t, err)

	_, err = module.Resolve("proces")
	assert.NotNil(t, err)
	var ue clierr.UnknownObjectError
	ok := stderrs.As(err, &ue)
	assert.True(t, ok)
	assert.Equal(t, "proces", ue.Path)
	assert.Equal(t, "process", ue.Suggestion)
}

func TestLoad_FileAndDirectory(t *testing.T) {
	dir := t.TempDir()
	src := []byte("module: disk\nobjects:\n  fn:\n    params:\n      - name: a\n")
	path := filepath.Join(dir, "module.yaml")
	if err := os.WriteFile(path, src, 0o644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	fromFile, err := Load(path)
	vital.Nil(t, err)
	assert.Equal(t, "disk", fromFile.Name)

	fromDir, err := Load(dir)
	vital.Nil(t, err)
	assert.Equal(t, "disk", fromDir.Name)
}

func TestLoad_MissingSchema(t *testing.T) {
	_, err := Load(t.TempDir())
	assert.NotNil(t, err)
}
