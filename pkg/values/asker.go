package values

import (
	"errors"
	"strings"
)

// ErrAborted signals the operator aborted a prompt (e.g., Ctrl+C).
var ErrAborted = errors.New("values: prompt aborted")

// Asker is the single seam between the store's resolution logic and its host
// environment. Given a message and the effective default, an implementation
// either prompts on a text channel and returns the trimmed answer (the
// default when the answer is empty), or returns the default immediately with
// no I/O when running unattended.
type Asker interface {
	Ask(message, def string) (string, error)
}

// AskerFunc adapts a plain function to the Asker interface.
type AskerFunc func(message, def string) (string, error)

// Ask calls fn.
func (fn AskerFunc) Ask(message, def string) (string, error) {
	return fn(message, def)
}

// SilentAsker resolves every prompt to its effective default without any
// I/O. It is the asker for unattended runs: resolution always terminates in
// one step.
type SilentAsker struct{}

// Ask returns def unconditionally.
func (SilentAsker) Ask(_, def string) (string, error) {
	return def, nil
}

// trimAnswer normalises a raw answer: surrounding whitespace is never
// significant, and an empty answer means "accept the default".
func trimAnswer(answer, def string) string {
	trimmed := strings.TrimSpace(answer)
	if trimmed == "" {
		return def
	}
	return trimmed
}
