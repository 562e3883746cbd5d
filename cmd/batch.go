package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/vmihailenco/msgpack/v5"
	"golang.org/x/sync/errgroup"

	"github.com/leonardinius/gocalc/internal/solver"
)

// Result is the outcome of one batch line. It is also the msgpack record
// written with --format msgpack.
type Result struct {
	Line       int     `msgpack:"line"`
	Expression string  `msgpack:"expression"`
	Value      float64 `msgpack:"value"`
	Kind       string  `msgpack:"kind"`
	Error      string  `msgpack:"error,omitempty"`

	err error
}

func (r Result) Failed() bool {
	return r.err != nil
}

type expression struct {
	line int
	text string
}

// readExpressions returns the non-blank, non-comment lines of r with
// their 1-based line numbers.
func readExpressions(r io.Reader) ([]expression, error) {
	var exprs []expression
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		text := strings.TrimSuffix(sc.Text(), "\r")
		trimmed := strings.TrimSpace(text)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		exprs = append(exprs, expression{line: n, text: text})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return exprs, nil
}

// evaluateAll evaluates exprs with at most jobs goroutines. Results keep
// the input order.
func evaluateAll(ctx context.Context, s solver.Solver, exprs []expression, jobs int) ([]Result, error) {
	results := make([]Result, len(exprs))
	if len(exprs) == 0 {
		return results, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, min(jobs, len(exprs))))

	for i, e := range exprs {
		i, e := i, e
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			value, err := s.Evaluate(e.text)
			results[i] = Result{
				Line:       e.line,
				Expression: e.text,
				Value:      value,
				Kind:       solver.Kind(err).String(),
				err:        err,
			}
			if err != nil {
				results[i].Error = err.Error()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (app *CalcApp) runBatch(ctx context.Context, r io.Reader, name string) error {
	exprs, err := readExpressions(r)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	jobs, err := app.config.jobs()
	if err != nil {
		return err
	}

	results, err := evaluateAll(ctx, app.solver, exprs, jobs)
	if err != nil {
		return err
	}

	if app.config.Batch.Format == FormatMsgpack {
		err = app.writeMsgpack(results)
	} else {
		app.writeText(results, name)
	}
	if err != nil {
		return err
	}

	failed := 0
	for _, res := range results {
		if res.Failed() {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%s: %d of %d expressions failed", name, failed, len(results))
	}
	return nil
}

func (app *CalcApp) writeText(results []Result, name string) {
	for _, res := range results {
		if res.Failed() {
			prefix := fmt.Sprintf("%s:%d: ", name, res.Line)
			fmt.Fprintf(app.stderr, "%s%s\n", prefix, res.Expression)
			app.reporter.ReportSourceError(res.Expression, runewidth.StringWidth(prefix), res.err)
			continue
		}
		fmt.Fprintln(app.stdout, app.solver.Format(res.Value))
	}
}

func (app *CalcApp) writeMsgpack(results []Result) error {
	enc := msgpack.NewEncoder(app.stdout)
	for _, res := range results {
		if err := enc.Encode(&res); err != nil {
			return err
		}
	}
	return nil
}
