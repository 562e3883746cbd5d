package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/leonardinius/gocalc/internal/ui"
)

const evalIndent = 2

// expressionCommands take a free-form expression as their arguments.
var expressionCommands = map[string]bool{"eval": true, "explain": true}

// guardExpressionArgs inserts "--" after an expression command so that an
// expression starting with '-' reaches the solver instead of the flag
// parser. Flags for these commands go before the command name.
func guardExpressionArgs(root *cobra.Command, args []string) []string {
	flags := root.PersistentFlags()
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			return args
		case strings.HasPrefix(arg, "-") && len(arg) > 1:
			if flagTakesValue(flags, arg) {
				i++
			}
		case expressionCommands[arg]:
			rest := args[i+1:]
			if len(rest) == 0 || rest[0] == "--" || isHelpRequest(rest) {
				return args
			}
			guarded := make([]string, 0, len(args)+1)
			guarded = append(guarded, args[:i+1]...)
			guarded = append(guarded, "--")
			return append(guarded, rest...)
		default:
			return args
		}
	}
	return args
}

func flagTakesValue(flags *pflag.FlagSet, arg string) bool {
	if strings.Contains(arg, "=") {
		return false
	}
	var flag *pflag.Flag
	if name, ok := strings.CutPrefix(arg, "--"); ok {
		flag = flags.Lookup(name)
	} else if len(arg) == 2 {
		flag = flags.ShorthandLookup(arg[1:])
	}
	return flag != nil && flag.NoOptDefVal == ""
}

func isHelpRequest(args []string) bool {
	return len(args) == 1 && (args[0] == "-h" || args[0] == "--help")
}

func (app *CalcApp) replCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive prompt",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return app.runPrompt()
		},
	}
}

func (app *CalcApp) evalCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "eval EXPR...",
		Short:   "Evaluate one expression given as arguments",
		Long: `Evaluate one expression given as arguments. The arguments are joined
with spaces. Everything after eval is part of the expression, so global
flags such as --precision go before it.`,
		Example: `  gocalc eval "sin(4*(2+8)^2)"` + "\n" + `  gocalc eval -5 + 3` + "\n" + `  gocalc --precision 3 eval 2 / 3`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			app.eval(strings.Join(args, " "))
			return nil
		},
	}
}

func (app *CalcApp) runCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [FILE]",
		Short: "Evaluate a file with one expression per line",
		Long: `Evaluate a file with one expression per line. Blank lines and lines
starting with # are skipped. With no FILE, or when FILE is -, standard
input is read.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 || args[0] == "-" {
				return app.runBatch(cmd.Context(), app.stdin, "<stdin>")
			}
			return app.runFile(cmd.Context(), args[0])
		},
	}
	cmd.Flags().IntVarP(&app.flags.jobs, "jobs", "j", DefaultJobs, "number of expressions evaluated concurrently")
	cmd.Flags().StringVar(&app.flags.format, "format", FormatText, "output format (text|msgpack)")
	return cmd
}

func (app *CalcApp) explainCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "explain EXPR...",
		Short: "Show the tokens, operator order and tree of an expression",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			app.explain(strings.Join(args, " "))
			return nil
		},
	}
}

func (app *CalcApp) tuiCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Start the keystroke calculator",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return ui.Run(app.solver, app.solver.Format)
		},
	}
}

func (app *CalcApp) eval(expression string) {
	out, err := app.solver.Solve(expression)
	if err != nil {
		app.reportExpressionError(expression, err)
		return
	}
	fmt.Fprintln(app.stdout, out)
}

func (app *CalcApp) explain(expression string) {
	explanation, err := app.solver.Explain(expression)
	if err != nil {
		app.reportExpressionError(expression, err)
		return
	}

	lexemes := make([]string, len(explanation.Tokens))
	for i, tok := range explanation.Tokens {
		lexemes[i] = tok.Lexeme()
	}
	fmt.Fprintf(app.stdout, "tokens: %s\n", strings.Join(lexemes, " "))
	fmt.Fprintf(app.stdout, "rpn:    %s\n", explanation.RPN)
	fmt.Fprintf(app.stdout, "tree:   %s\n", explanation.Tree)
}

// reportExpressionError echoes the expression so the caret has a line to
// point into.
func (app *CalcApp) reportExpressionError(expression string, err error) {
	fmt.Fprintf(app.stderr, "%s%s\n", strings.Repeat(" ", evalIndent), expression)
	app.reportSourceError(expression, evalIndent, err)
}

func (app *CalcApp) runFile(ctx context.Context, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return app.runBatch(ctx, f, path)
}
