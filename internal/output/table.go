package output

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/contractshard/shardc/internal/constraint"
	"github.com/contractshard/shardc/internal/digest"
)

// RenderTransitions renders one table per transition: its constraint set,
// kind first, then the field/PCM/parameter detail that kind carries.
func RenderTransitions(results []digest.TransitionResult) string {
	var out string
	for _, r := range results {
		out += styleNoun.Render(r.Name) + "\n"
		out += renderConstraintTable(r.Name, r.Constraints) + "\n\n"
	}
	return out
}

func renderConstraintTable(transitionName string, constraints []constraint.Constraint) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorGray)).
		Headers("KIND", "FIELD", "PCM", "DETAIL").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return lipgloss.NewStyle().Bold(true).Foreground(ColorCyan)
			}
			if col == 0 && row < len(constraints) {
				return constraintKindStyle(constraints[row].Kind)
			}
			return lipgloss.NewStyle()
		})

	if len(constraints) == 0 {
		t.Row("(none)", "", "", "")
	}
	for _, c := range constraints {
		detail := ""
		if c.Kind == constraint.AddrMustBeNonContract {
			detail = "param#" + strconv.Itoa(c.ProcParamIdx)
		}
		if len(c.Indices) > 0 {
			detail = indicesString(c.Indices)
		}
		field := ""
		if c.Field.Field != "" {
			field = c.Field.String()
		}
		t.Row(c.Kind.String(), field, c.PCMID, detail)
	}
	return t.String()
}

func indicesString(idx []int) string {
	out := ""
	for i, n := range idx {
		if i > 0 {
			out += ","
		}
		out += strconv.Itoa(n)
	}
	return out
}
