// Package confgen resolves named configuration values — from a persisted
// store, interactive prompts, and built-in defaults — and renders them
// through delimiter-marked text templates into deployable config files.
package confgen

import (
	"context"

	"github.com/goliatone/go-confgen/pkg/manifest"
	"github.com/goliatone/go-confgen/pkg/orchestrator"
	"github.com/goliatone/go-confgen/pkg/values"
)

// Question aliases the orchestrator question type for convenience.
type Question = orchestrator.Question

// Request aliases the orchestrator request type.
type Request = orchestrator.Request

// Manifest aliases the manifest type.
type Manifest = manifest.Manifest

// Value aliases the tagged string-or-boolean variant.
type Value = values.Value

// Text declares a free-form string question.
func Text(name, prompt, def string) Question {
	return orchestrator.Text(name, prompt, def)
}

// Boolean declares a yes/no question.
func Boolean(name, prompt string, def bool) Question {
	return orchestrator.Boolean(name, prompt, def)
}

// Secret declares a question with a generated default.
func Secret(name, prompt string) Question {
	return orchestrator.Secret(name, prompt)
}

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module so common wiring needs only one import.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// Generate resolves the request's questions and renders its manifest in one
// call. It is the simplest entry point for callers that do not need custom
// wiring.
func Generate(ctx context.Context, req Request, options ...orchestrator.Option) error {
	return orchestrator.New(options...).Run(ctx, req)
}
