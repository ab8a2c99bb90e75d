package output

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/contractshard/shardc/internal/constraint"
)

// Color palette — the single source of truth for every styled element
// this package renders.
var (
	ColorCyan   = lipgloss.Color("14")
	colorGreen  = lipgloss.Color("82")
	ColorYellow = lipgloss.Color("220")
	colorRed    = lipgloss.Color("196")
	colorGray   = lipgloss.Color("240")
)

var (
	styleNoun = lipgloss.NewStyle().Foreground(ColorCyan)
	styleDim  = lipgloss.NewStyle().Faint(true)
)

// constraintKindStyle colors a constraint kind by how strong a claim it
// makes about shard placement: Unsat (cannot shard) reads hardest, the
// ownership/PCM constraints read as attention-worthy, everything else
// neutral.
func constraintKindStyle(kind constraint.Kind) lipgloss.Style {
	switch kind {
	case constraint.Unsat:
		return lipgloss.NewStyle().Bold(true).Foreground(colorRed)
	case constraint.MustOwn, constraint.AddrMustBeNonContract:
		return lipgloss.NewStyle().Foreground(ColorYellow)
	case constraint.MustHavePCM:
		return lipgloss.NewStyle().Foreground(colorGreen)
	default:
		return lipgloss.NewStyle()
	}
}
