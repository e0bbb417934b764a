// Package values resolves named configuration values under a single
// precedence rule: an externally supplied override beats the hard-coded
// default, and an explicit interactive answer beats both. The store keeps an
// ordered log of every resolution so callers can replay or inspect the run.
package values

import "strconv"

type entry struct {
	name  string
	value Value
}

// Store is an ordered collection of resolved (name, value) pairs. It is
// built once per run through the chainable Add* operations during the
// declarative phase, then read through Get and AsMap. There is no deletion.
//
// Store is not safe for concurrent use; resolution is strictly sequential by
// design, the only suspension point being a blocking interactive prompt.
type Store struct {
	overrides map[string]Value
	entries   []entry
	asker     Asker
	secrets   SecretSource
	err       error
}

// Option customises a Store at construction time.
type Option func(*Store)

// WithOverrides seeds the override map, typically from a persisted previous
// run. Overrides take precedence over the hard-coded defaults passed to Add
// and AddBoolean but are themselves superseded by explicit answers.
func WithOverrides(overrides map[string]Value) Option {
	return func(s *Store) {
		if len(overrides) == 0 {
			return
		}
		if s.overrides == nil {
			s.overrides = make(map[string]Value, len(overrides))
		}
		for name, value := range overrides {
			s.overrides[name] = value
		}
	}
}

// WithAsker injects the prompt implementation. Defaults to SilentAsker so a
// store with no configured asker never blocks.
func WithAsker(asker Asker) Option {
	return func(s *Store) {
		if asker != nil {
			s.asker = asker
		}
	}
}

// WithSecretSource injects the generator used by AddSecret defaults.
func WithSecretSource(source SecretSource) Option {
	return func(s *Store) {
		if source != nil {
			s.secrets = source
		}
	}
}

// New constructs a Store applying any provided options.
func New(options ...Option) *Store {
	s := &Store{
		asker:   SilentAsker{},
		secrets: RandomSecret,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	return s
}

// Add resolves a string value: the override for name when present, else def,
// presented through the asker so an interactive operator can type a
// replacement or accept the effective default with an empty answer. The
// resolved pair is appended to the log. Returns the store for chaining.
func (s *Store) Add(name, question, def string) *Store {
	if s.err != nil {
		return s
	}
	effective := def
	if override, ok := s.overrides[name]; ok {
		effective = override.Text()
	}
	answer, err := s.asker.Ask(question, effective)
	if err != nil {
		s.err = err
		return s
	}
	return s.Set(name, String(answer))
}

// AddBoolean resolves a boolean value under the same override precedence as
// Add. The accepted vocabulary is three-way: "y" means true, "n" means
// false, and the effective default echoed back verbatim ("true"/"false")
// resolves to the default. Any other answer re-asks the question; the loop
// has no iteration cap, so unattended askers must echo the default and
// terminate resolution in a single step.
func (s *Store) AddBoolean(name, question string, def bool) *Store {
	if s.err != nil {
		return s
	}
	effective := def
	if override, ok := s.overrides[name]; ok {
		if b, isBool := override.AsBool(); isBool {
			effective = b
		}
	}
	echo := strconv.FormatBool(effective)
	for {
		answer, err := s.asker.Ask(question, echo)
		if err != nil {
			s.err = err
			return s
		}
		switch answer {
		case "y":
			return s.Set(name, Bool(true))
		case "n":
			return s.Set(name, Bool(false))
		case echo:
			return s.Set(name, Bool(effective))
		}
	}
}

// AddSecret resolves like Add but derives the hard-coded default from the
// injected secret source, so a fresh run proposes a newly generated secret
// while an override from a previous run keeps the persisted one stable.
func (s *Store) AddSecret(name, question string) *Store {
	if s.err != nil {
		return s
	}
	return s.Add(name, question, s.secrets())
}

// Set appends (name, value) unconditionally; duplicates are not checked and
// both entries remain in the log.
func (s *Store) Set(name string, value Value) *Store {
	s.entries = append(s.entries, entry{name: name, value: value})
	return s
}

// Get performs a linear first-match lookup over the log. When a name was set
// twice, Get returns the first value while AsMap keeps the second; see the
// AsMap doc for the asymmetry.
func (s *Store) Get(name string) (Value, bool) {
	for _, e := range s.entries {
		if e.name == name {
			return e.value, true
		}
	}
	return Value{}, false
}

// AsMap materialises the log into a name→value mapping with last-write-wins
// semantics for duplicate names. This is intentionally the opposite
// precedence of Get's first-match lookup; callers relying on both must be
// aware of the asymmetry.
func (s *Store) AsMap() map[string]Value {
	out := make(map[string]Value, len(s.entries))
	for _, e := range s.entries {
		out[e.name] = e.value
	}
	return out
}

// Len reports the number of log entries, duplicates included.
func (s *Store) Len() int {
	return len(s.entries)
}

// Err returns the first prompt-transport failure (such as an aborted
// terminal) encountered during the declaration phase. Once set, subsequent
// Add* calls are no-ops, so a chained declaration can be checked once at the
// end. Resolution-rule handling (the boolean re-ask) never surfaces here.
func (s *Store) Err() error {
	return s.err
}
