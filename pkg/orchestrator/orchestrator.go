// Package orchestrator coordinates the full pipeline: load persisted
// answers, resolve the question script through a value store, persist the
// answers for the next run, and render every manifest target into its
// destination file.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-confgen/pkg/manifest"
	"github.com/goliatone/go-confgen/pkg/template"
	"github.com/goliatone/go-confgen/pkg/values"
)

// WriteFunc persists rendered text to a destination path. The default
// implementation creates parent directories and overwrites the file.
type WriteFunc func(path string, data []byte) error

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithAsker injects the prompt implementation handed to the value store.
func WithAsker(asker values.Asker) Option {
	return func(o *Orchestrator) {
		if asker != nil {
			o.asker = asker
		}
	}
}

// WithSecretSource injects the generator used for secret question defaults.
func WithSecretSource(source values.SecretSource) Option {
	return func(o *Orchestrator) {
		if source != nil {
			o.secrets = source
		}
	}
}

// WithEngine injects a custom render engine (for example one with a
// different default delimiter).
func WithEngine(engine *template.Engine) Option {
	return func(o *Orchestrator) {
		if engine != nil {
			o.engine = engine
		}
	}
}

// WithLogger attaches a structured logger. The default is a no-op logger so
// library callers stay quiet unless they opt in.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *Orchestrator) {
		o.logger = logger
	}
}

// WithTemplateFS supplies the filesystem template paths are resolved
// against. Defaults to the process working directory.
func WithTemplateFS(fsys fs.FS) Option {
	return func(o *Orchestrator) {
		if fsys != nil {
			o.templates = fsys
		}
	}
}

// WithWriteFunc overrides how rendered output reaches its destination.
func WithWriteFunc(write WriteFunc) Option {
	return func(o *Orchestrator) {
		if write != nil {
			o.write = write
		}
	}
}

// WithContinueOnError switches the batch from fail-fast (the default) to
// render-everything-and-aggregate. A failed target writes nothing either
// way; earlier successful outputs are never rolled back.
func WithContinueOnError(continueOnError bool) Option {
	return func(o *Orchestrator) {
		o.continueOnError = continueOnError
	}
}

// Orchestrator runs the resolve-then-render pipeline. Construct with New;
// the zero value is not usable.
type Orchestrator struct {
	asker           values.Asker
	secrets         values.SecretSource
	engine          *template.Engine
	logger          zerolog.Logger
	templates       fs.FS
	write           WriteFunc
	continueOnError bool
}

// New constructs an Orchestrator applying any provided options. Missing
// dependencies are initialised with built-in implementations so callers can
// start with a single constructor call.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		asker:   values.SilentAsker{},
		secrets: values.RandomSecret,
		engine:  template.New(),
		logger:  zerolog.Nop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	if o.templates == nil {
		o.templates = os.DirFS(".")
	}
	if o.write == nil {
		o.write = writeFile
	}
	return o
}

// Request describes one full run.
type Request struct {
	// Questions is the declarative script resolved through the value store,
	// in order.
	Questions []Question

	// Manifest lists the template → output targets to render. May be empty
	// when a caller only wants values resolved and persisted.
	Manifest manifest.Manifest

	// StatePath, when set, names the flat JSON file that pre-seeds overrides
	// and receives the resolved answers for the next run.
	StatePath string

	// OutDir, when set, is prefixed to every target output path.
	OutDir string

	// Overrides are merged under any persisted state (persisted values win).
	Overrides map[string]values.Value
}

// Run executes the resolve → persist → render sequence. Rendering is
// fail-fast unless the orchestrator was configured to continue, in which
// case the per-target failures are aggregated with errors.Join.
func (o *Orchestrator) Run(ctx context.Context, req Request) error {
	if ctx == nil {
		return errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	overrides, err := o.loadOverrides(req)
	if err != nil {
		return err
	}

	store := values.New(
		values.WithOverrides(overrides),
		values.WithAsker(o.asker),
		values.WithSecretSource(o.secrets),
	)
	for _, q := range req.Questions {
		q.apply(store)
	}
	if err := store.Err(); err != nil {
		return err
	}

	resolved := store.AsMap()
	if req.StatePath != "" {
		if err := values.SaveValues(req.StatePath, resolved); err != nil {
			return err
		}
		o.logger.Debug().Str("path", req.StatePath).Msg("saved resolved values")
	}

	var failures []error
	for _, target := range req.Manifest.Targets {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := o.renderTarget(target, req.OutDir, resolved); err != nil {
			if !o.continueOnError {
				return err
			}
			o.logger.Error().Err(err).Str("template", target.Template).Msg("render failed")
			failures = append(failures, err)
		}
	}
	return errors.Join(failures...)
}

func (o *Orchestrator) loadOverrides(req Request) (map[string]values.Value, error) {
	overrides := make(map[string]values.Value, len(req.Overrides))
	for name, value := range req.Overrides {
		overrides[name] = value
	}
	if req.StatePath == "" {
		return overrides, nil
	}
	persisted, err := values.LoadValues(req.StatePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			o.logger.Debug().Str("path", req.StatePath).Msg("no persisted values, starting fresh")
			return overrides, nil
		}
		return nil, err
	}
	for name, value := range persisted {
		overrides[name] = value
	}
	return overrides, nil
}

func (o *Orchestrator) renderTarget(target manifest.Target, outDir string, resolved map[string]values.Value) error {
	text, err := fs.ReadFile(o.templates, target.Template)
	if err != nil {
		return fmt.Errorf("orchestrator: read template %s: %w", target.Template, err)
	}

	rendered, err := o.engine.Render(template.Template{
		Label: target.Template,
		Text:  string(text),
		Delim: target.DelimiterRune(),
	}, resolved)
	if err != nil {
		return err
	}

	dest := target.Output
	if outDir != "" {
		dest = filepath.Join(outDir, dest)
	}
	if err := o.write(dest, []byte(rendered)); err != nil {
		return fmt.Errorf("orchestrator: write %s: %w", dest, err)
	}
	o.logger.Info().Str("template", target.Template).Str("output", dest).Msg("wrote config")
	return nil
}

func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o644)
}
