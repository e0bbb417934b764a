// Package template renders literal text templates whose placeholders are
// marked by a caller-chosen delimiter character. It is pure substitution:
// no conditionals, loops, or expressions.
package template

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/goliatone/go-confgen/pkg/values"
)

// DefaultDelimiter marks placeholders when neither the engine nor the
// template specifies one.
const DefaultDelimiter = '$'

// Template is the transient input to one render call.
type Template struct {
	// Label identifies the template in error messages, usually its source
	// path.
	Label string
	// Text is the raw template content.
	Text string
	// Delim overrides the engine delimiter for this template. Zero means
	// "use the engine default". The delimiter is per-template because not
	// every output format treats the same character as safe; a format that
	// uses '$' heavily wants something like '£' or '%' instead.
	Delim rune
}

// Engine performs delimiter-parameterised substitution. The zero-cost
// construction makes one Engine reusable across every render in a run; each
// call is independent and side-effect-free.
type Engine struct {
	delim rune

	mu       sync.Mutex
	patterns map[rune]*regexp.Regexp
}

// Option customises the engine at construction time.
type Option func(*Engine)

// WithDelimiter sets the delimiter used when a template does not carry its
// own.
func WithDelimiter(delim rune) Option {
	return func(e *Engine) {
		if delim != 0 {
			e.delim = delim
		}
	}
}

// New constructs an Engine applying any provided options.
func New(options ...Option) *Engine {
	e := &Engine{
		delim:    DefaultDelimiter,
		patterns: make(map[rune]*regexp.Regexp),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(e)
	}
	return e
}

// Placeholder grammar: after the delimiter comes either a second delimiter
// (the escape for a literal one), a bare identifier, or a braced identifier.
// The trailing empty alternative catches every remaining delimiter
// occurrence so invalid placeholders fail instead of leaking through.
const identifier = `[A-Za-z_][A-Za-z0-9_]*`

func (e *Engine) pattern(delim rune) (*regexp.Regexp, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if re, ok := e.patterns[delim]; ok {
		return re, nil
	}
	quoted := regexp.QuoteMeta(string(delim))
	re, err := regexp.Compile(quoted + `(?:(` + quoted + `)|(` + identifier + `)|\{(` + identifier + `)\}|())`)
	if err != nil {
		return nil, fmt.Errorf("template: compile delimiter pattern for %q: %w", delim, err)
	}
	e.patterns[delim] = re
	return re, nil
}

// Render substitutes every placeholder in tmpl with its value from resolved.
// Contract points:
//
//   - <d>NAME and <d>{NAME} are placeholders; NAME is a conventional
//     identifier (letters, digits, underscore, not starting with a digit).
//   - <d><d> renders a single literal delimiter.
//   - any other delimiter occurrence is a *BadPlaceholderError.
//   - a placeholder absent from resolved is a *MissingValueError; the call
//     returns immediately with no partial output.
//   - keys in resolved that the template never references are ignored.
func (e *Engine) Render(tmpl Template, resolved map[string]values.Value) (string, error) {
	delim := tmpl.Delim
	if delim == 0 {
		delim = e.delim
	}
	if isIdentifierRune(delim) || delim == '{' || delim == '}' {
		return "", fmt.Errorf("template: %s: delimiter %q collides with placeholder syntax", tmpl.Label, delim)
	}

	re, err := e.pattern(delim)
	if err != nil {
		return "", err
	}

	var out strings.Builder
	last := 0
	for _, m := range re.FindAllStringSubmatchIndex(tmpl.Text, -1) {
		out.WriteString(tmpl.Text[last:m[0]])
		last = m[1]

		switch {
		case m[2] >= 0: // doubled delimiter
			out.WriteRune(delim)
		case m[4] >= 0: // bare identifier
			name := tmpl.Text[m[4]:m[5]]
			value, ok := resolved[name]
			if !ok {
				return "", &MissingValueError{Name: name, Template: tmpl.Label}
			}
			out.WriteString(value.Text())
		case m[6] >= 0: // braced identifier
			name := tmpl.Text[m[6]:m[7]]
			value, ok := resolved[name]
			if !ok {
				return "", &MissingValueError{Name: name, Template: tmpl.Label}
			}
			out.WriteString(value.Text())
		default:
			return "", &BadPlaceholderError{Template: tmpl.Label, Offset: m[0]}
		}
	}
	out.WriteString(tmpl.Text[last:])
	return out.String(), nil
}

func isIdentifierRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
		return true
	}
	return false
}
