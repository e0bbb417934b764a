package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/goliatone/go-confgen/pkg/manifest"
	"github.com/goliatone/go-confgen/pkg/orchestrator"
	"github.com/goliatone/go-confgen/pkg/values"
)

var (
	manifestPath    string
	statePath       string
	templateDir     string
	outDir          string
	silent          bool
	continueOnError bool
	verbose         bool
)

var rootCmd = &cobra.Command{
	Use:   "confgen",
	Short: "Generate deployment config files from one set of answers",
	Long: `Confgen asks a fixed set of configuration questions (pre-seeded from the
previous run when a state file exists), then renders the manifest's template
files into deployable config artifacts. Run it with stdin redirected, or
with --silent, to accept every default without prompting.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVarP(&manifestPath, "manifest", "m", "confgen.yaml", "manifest mapping templates to output files")
	flags.StringVarP(&statePath, "state", "s", "confgen.json", "persisted answers from previous runs")
	flags.StringVarP(&templateDir, "templates", "t", ".", "directory template paths are resolved against")
	flags.StringVarP(&outDir, "out-dir", "o", "", "directory prefixed to every output path")
	flags.BoolVar(&silent, "silent", false, "resolve every question to its effective default without prompting")
	flags.BoolVar(&continueOnError, "continue-on-error", false, "render remaining targets when one fails")
	flags.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func run(cmd *cobra.Command, _ []string) error {
	logger := newLogger(cmd.ErrOrStderr(), verbose)

	m, err := manifest.Load(manifestPath)
	if err != nil {
		return err
	}

	gen := orchestrator.New(
		orchestrator.WithAsker(pickAsker()),
		orchestrator.WithLogger(logger),
		orchestrator.WithTemplateFS(os.DirFS(templateDir)),
		orchestrator.WithContinueOnError(continueOnError),
	)

	return gen.Run(cmd.Context(), orchestrator.Request{
		Questions: deploymentQuestions(),
		Manifest:  m,
		StatePath: statePath,
		OutDir:    outDir,
	})
}

// pickAsker selects interactive prompting only when stdin is a real
// terminal and the operator did not ask for a silent run.
func pickAsker() values.Asker {
	if silent || !term.IsTerminal(int(os.Stdin.Fd())) {
		return values.SilentAsker{}
	}
	return values.NewTerminalAsker()
}

func newLogger(out io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	writer := zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05"}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
