package cmd

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/exp/maps"

	"github.com/leonardinius/gocalc/internal/token"
)

var (
	helpHeading = lipgloss.NewStyle().Bold(true)
	helpSymbol  = lipgloss.NewStyle().Width(6).PaddingLeft(2)
)

var operatorHelp = []struct {
	kind        token.OperatorKind
	description string
}{
	{token.Add, "addition"},
	{token.Sub, "subtraction, or a sign at the start or after '('"},
	{token.Mul, "multiplication"},
	{token.Div, "division"},
	{token.Mod, "floating point remainder"},
	{token.Pow, "exponentiation, right associative"},
}

func functionNames() []string {
	names := maps.Keys(token.Functions())
	slices.Sort(names)
	return names
}

func helpText() string {
	var b strings.Builder

	b.WriteString(helpHeading.Render("Operators"))
	b.WriteString("\n")
	for _, op := range operatorHelp {
		fmt.Fprintf(&b, "%s%s (precedence %d)\n", helpSymbol.Render(op.kind.String()), op.description, op.kind.Precedence())
	}

	b.WriteString("\n")
	b.WriteString(helpHeading.Render("Functions"))
	b.WriteString("\n  ")
	b.WriteString(strings.Join(functionNames(), " "))
	b.WriteString("\n  names are case insensitive; arguments are in radians\n")

	b.WriteString("\n")
	b.WriteString(helpHeading.Render("Example"))
	b.WriteString("\n  sin(4*(2+8)^2) = -0.8509193596\n")

	b.WriteString("\nType exit or q to leave the prompt.")
	return b.String()
}
