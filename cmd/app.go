package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/leonardinius/gocalc/internal/calcerrors"
	"github.com/leonardinius/gocalc/internal/solver"
)

// ExitFailure is returned by Main when anything went wrong.
const ExitFailure = 64

type CalcApp struct {
	err      error
	solver   solver.Solver
	reporter calcerrors.ErrReporter
	config   Config
	flags    appFlags

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

type appFlags struct {
	config    string
	color     string
	precision int
	maxDepth  int
	jobs      int
	format    string
}

type AppOption func(*CalcApp)

func WithStdin(r io.Reader) AppOption {
	return func(app *CalcApp) { app.stdin = r }
}

func WithStdout(w io.Writer) AppOption {
	return func(app *CalcApp) { app.stdout = w }
}

func WithStderr(w io.Writer) AppOption {
	return func(app *CalcApp) { app.stderr = w }
}

func NewCalcApp(options ...AppOption) *CalcApp {
	app := &CalcApp{
		config: DefaultConfig(),
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	for _, opt := range options {
		opt(app)
	}
	return app
}

func (app *CalcApp) Main(args []string) (code int) {
	defer func() {
		if r := recover(); r != nil {
			app.reportPanic(r)
			code = ExitFailure
		}
	}()

	root := app.rootCommand()
	root.SetArgs(guardExpressionArgs(root, args))
	root.SetIn(app.stdin)
	root.SetOut(app.stdout)
	root.SetErr(app.stderr)

	if err := root.Execute(); err != nil {
		app.reportError(err)
	}

	if app.err != nil {
		return ExitFailure
	}

	return 0
}

func (app *CalcApp) reportError(err error) {
	if app.reporter != nil {
		app.reporter.ReportError(err)
	} else {
		calcerrors.DefaultReportError(app.stderr, "ERROR", err)
	}
	app.err = err
}

func (app *CalcApp) reportPanic(r any) {
	err, ok := r.(error)
	if !ok {
		err = fmt.Errorf("%v", r)
	}
	if app.reporter != nil {
		app.reporter.ReportPanic(err)
	} else {
		calcerrors.DefaultReportPanic(app.stderr, "FATAL", err)
	}
	app.err = err
}

func (app *CalcApp) reportSourceError(source string, indent int, err error) {
	app.reporter.ReportSourceError(source, indent, err)
	app.err = err
}

func (app *CalcApp) resetError() {
	app.err = nil
}

func (app *CalcApp) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "gocalc [file]",
		Short: "Arithmetic expression calculator",
		Long: `gocalc evaluates infix arithmetic expressions with + - * / % ^,
parentheses and the functions sin cos tan asin acos atan sqrt log floor.

With no arguments it starts an interactive prompt on a terminal and
evaluates standard input line by line otherwise.`,
		Args:              cobra.MaximumNArgs(1),
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: app.setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return app.runFile(cmd.Context(), args[0])
			}
			if isTerminal(app.stdin) {
				return app.runPrompt()
			}
			return app.runBatch(cmd.Context(), app.stdin, "<stdin>")
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&app.flags.config, "config", "", "config file (default: nearest "+ConfigFileName+")")
	flags.StringVar(&app.flags.color, "color", ColorAuto, "colorize output (auto|on|off)")
	flags.IntVar(&app.flags.precision, "precision", solver.DefaultPrecision, "significant digits in results, -1 for shortest")
	flags.IntVar(&app.flags.maxDepth, "max-depth", solver.DefaultMaxDepth, "maximum evaluation depth, 0 for unlimited")

	root.AddCommand(
		app.replCommand(),
		app.evalCommand(),
		app.runCommand(),
		app.explainCommand(),
		app.tuiCommand(),
	)
	root.SetHelpTemplate(root.HelpTemplate() + "\n" + helpText() + "\n")

	return root
}

// setup loads the configuration, applies explicit flags over it and builds
// the solver and reporter every command uses.
func (app *CalcApp) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := ResolveConfig(app.flags.config)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("color") {
		cfg.Output.Color = app.flags.color
	}
	if flags.Changed("precision") {
		cfg.Eval.Precision = int64(app.flags.precision)
	}
	if flags.Changed("max-depth") {
		cfg.Eval.MaxDepth = int64(app.flags.maxDepth)
	}
	if flags.Changed("jobs") {
		cfg.Batch.Jobs = int64(app.flags.jobs)
	}
	if flags.Changed("format") {
		cfg.Batch.Format = app.flags.format
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	maxDepth, err := cfg.maxDepth()
	if err != nil {
		return err
	}
	precision, err := cfg.precision()
	if err != nil {
		return err
	}

	app.config = cfg
	app.solver = solver.NewSolver(solver.WithMaxDepth(maxDepth), solver.WithPrecision(precision))
	app.reporter = calcerrors.NewErrReporter(app.stderr, cfg.colorize(isTerminal(app.stderr)))
	return nil
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
