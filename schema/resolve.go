package schema

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vsego/argparse-gen/errors"
	"github.com/vsego/argparse-gen/internal/common"
)

// Parse decodes a signature schema from YAML source.
func Parse(src []byte) (*Module, error) {
	var m Module
	if err := yaml.Unmarshal(src, &m); err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}
	for name, obj := range m.Objects {
		if obj == nil {
			return nil, errors.NewSchema(fmt.Sprintf("object %s: empty definition", name))
		}
		if err := obj.validate(name); err != nil {
			return nil, err
		}
	}
	return &m, nil
}

// Load reads a signature schema from a file, or from module.yaml (or
// module.yml) inside a directory.
func Load(path string) (*Module, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		found := ""
		for _, base := range []string{"module.yaml", "module.yml"} {
			candidate := filepath.Join(path, base)
			if _, err := os.Stat(candidate); err == nil {
				found = candidate
				break
			}
		}
		if found == "" {
			return nil, errors.NewSchema(fmt.Sprintf("no module.yaml in %s", path))
		}
		path = found
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(src)
}

// Resolve walks a dotted path ("Greeter.run") through the module's objects
// and their attributes, like attribute access on a loaded module.
func (m *Module) Resolve(path string) (*Object, error) {
	var obj *Object
	attrs := m.Objects
	for _, part := range strings.Split(path, ".") {
		next, ok := attrs[part]
		if !ok || part == "" {
			return nil, errors.NewUnknownObject(path, common.ClosestMatch(part, sortedKeys(attrs)))
		}
		obj = next
		attrs = next.Attrs
	}
	if obj == nil {
		return nil, errors.NewUnknownObject(path, "")
	}
	return obj, nil
}

func sortedKeys(objs map[string]*Object) []string {
	keys := make([]string, 0, len(objs))
	for k := range objs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
