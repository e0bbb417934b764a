package template

import "fmt"

// MissingValueError reports a placeholder whose name has no corresponding
// key in the resolution mapping. Rendering stops at the first occurrence and
// no partial output is produced.
type MissingValueError struct {
	// Name is the unresolved placeholder identifier.
	Name string
	// Template identifies the template by its label (usually a source path).
	Template string
}

// Error implements the error interface.
func (e *MissingValueError) Error() string {
	return fmt.Sprintf("template: %s: no value for placeholder %q", e.Template, e.Name)
}

// BadPlaceholderError reports a delimiter occurrence that forms neither a
// valid placeholder nor a doubled-delimiter escape.
type BadPlaceholderError struct {
	Template string
	// Offset is the byte position of the offending delimiter.
	Offset int
}

// Error implements the error interface.
func (e *BadPlaceholderError) Error() string {
	return fmt.Sprintf("template: %s: invalid placeholder at byte %d", e.Template, e.Offset)
}
