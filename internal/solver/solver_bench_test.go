package solver_test

import (
	"strings"
	"testing"

	"github.com/leonardinius/gocalc/internal/solver"
)

func BenchmarkEvaluate(b *testing.B) {
	benchmarks := map[string]string{
		"literal":    "42",
		"precedence": "1 + 2 * 3 - 4 / 5 % 6 ^ 2",
		"functions":  "sin(4*(2+8)^2) + sqrt(floor(17.9)) * log(10)",
		"long chain": strings.Repeat("1 + ", 500) + "1",
		"deep nest":  strings.Repeat("(", 200) + "1" + strings.Repeat(" + 1)", 200),
	}

	s := solver.NewSolver()
	for name, expr := range benchmarks {
		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()
			for n := 0; n < b.N; n++ {
				if _, err := s.Evaluate(expr); err != nil {
					b.Fatalf("%s: %v", expr, err)
				}
			}
		})
	}
}
