package terminal

import "github.com/charmbracelet/lipgloss"

var (
	colorBright = lipgloss.AdaptiveColor{Light: "#0f172a", Dark: "#f1f5f9"}
	colorDim    = lipgloss.AdaptiveColor{Light: "#94a3b8", Dark: "#64748b"}
	colorList   = lipgloss.AdaptiveColor{Light: "#7c3aed", Dark: "#a78bfa"} // purple
	colorScalar = lipgloss.AdaptiveColor{Light: "#059669", Dark: "#34d399"} // emerald
)

var (
	styleTitle = lipgloss.NewStyle().Foreground(colorBright).Bold(true)
	styleMeta  = lipgloss.NewStyle().Foreground(colorDim)

	styleStat      = lipgloss.NewStyle().Foreground(colorBright).Bold(true)
	styleStatLabel = lipgloss.NewStyle().Foreground(colorDim)

	styleListCount   = lipgloss.NewStyle().Foreground(colorList).Bold(true)
	styleScalarCount = lipgloss.NewStyle().Foreground(colorScalar).Bold(true)

	styleSeparator = lipgloss.NewStyle().Foreground(colorDim)
)
