package errors

import "fmt"

// SchemaError represents an invalid signature schema document.
// It is intended for user-facing messages.
type SchemaError struct{ Msg string }

func (e SchemaError) Error() string { return e.Msg }

// UnknownObjectError indicates a dotted object path that does not resolve
// within the loaded module description.
// Suggestion, if present, is a close match the user may have intended.
type UnknownObjectError struct{ Path, Suggestion string }

func (e UnknownObjectError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("unknown object: %s (did you mean %q?)", e.Path, e.Suggestion)
	}
	return fmt.Sprintf("unknown object: %s", e.Path)
}

// UnsupportedValueError indicates a schema value whose YAML type has no
// Python literal equivalent.
type UnsupportedValueError struct{ Field, Tag string }

func (e UnsupportedValueError) Error() string {
	return fmt.Sprintf("unsupported value for %s: %s", e.Field, e.Tag)
}

// NonReprStringError indicates a value handed to the attribute wrapper whose
// rendering is not a quoted string and therefore cannot be reflowed.
type NonReprStringError struct{ Value string }

func (e NonReprStringError) Error() string {
	return fmt.Sprintf("non-repr string %q", e.Value)
}

// Helper constructors
func NewSchema(msg string) error { return SchemaError{Msg: msg} }
func NewUnknownObject(path, suggestion string) error {
	return UnknownObjectError{Path: path, Suggestion: suggestion}
}
func NewUnsupportedValue(field, tag string) error {
	return UnsupportedValueError{Field: field, Tag: tag}
}
func NewNonReprString(value string) error { return NonReprStringError{Value: value} }
