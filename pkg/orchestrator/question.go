package orchestrator

import "github.com/goliatone/go-confgen/pkg/values"

// QuestionKind selects how a question resolves through the store.
type QuestionKind int

const (
	// KindText resolves a free-form string answer.
	KindText QuestionKind = iota
	// KindBoolean resolves through the y/n/default vocabulary.
	KindBoolean
	// KindSecret resolves like text but generates its default from the
	// secret source.
	KindSecret
)

// Question is one entry in the declarative script a Request carries.
type Question struct {
	Name   string
	Prompt string
	Kind   QuestionKind

	// Text is the hard-coded default for KindText questions.
	Text string
	// Bool is the hard-coded default for KindBoolean questions.
	Bool bool
}

// Text declares a free-form string question.
func Text(name, prompt, def string) Question {
	return Question{Name: name, Prompt: prompt, Kind: KindText, Text: def}
}

// Boolean declares a yes/no question.
func Boolean(name, prompt string, def bool) Question {
	return Question{Name: name, Prompt: prompt, Kind: KindBoolean, Bool: def}
}

// Secret declares a question whose default is produced by the store's
// secret source.
func Secret(name, prompt string) Question {
	return Question{Name: name, Prompt: prompt, Kind: KindSecret}
}

func (q Question) apply(store *values.Store) {
	switch q.Kind {
	case KindBoolean:
		store.AddBoolean(q.Name, q.Prompt, q.Bool)
	case KindSecret:
		store.AddSecret(q.Name, q.Prompt)
	default:
		store.Add(q.Name, q.Prompt, q.Text)
	}
}
