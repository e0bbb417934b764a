package values

import (
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// TerminalAsker prompts on the controlling terminal using survey. The
// effective default is shown inline so the operator can accept it by
// pressing enter.
type TerminalAsker struct {
	// Options are passed through to every survey invocation. Useful for
	// redirecting stdio in tests or embedding hosts.
	Options []survey.AskOpt
}

// NewTerminalAsker constructs a TerminalAsker with default survey wiring.
func NewTerminalAsker() *TerminalAsker {
	return &TerminalAsker{}
}

// Ask presents message with def pre-filled and returns the trimmed answer,
// or def when the operator just presses enter. An operator interrupt is
// translated to ErrAborted.
func (a *TerminalAsker) Ask(message, def string) (string, error) {
	var out string
	prompt := &survey.Input{
		Message: message,
		Default: def,
	}
	if err := survey.AskOne(prompt, &out, a.Options...); err != nil {
		return "", translateSurveyErr(err)
	}
	return trimAnswer(out, def), nil
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrAborted
	}
	return fmt.Errorf("values: prompt failed: %w", err)
}
