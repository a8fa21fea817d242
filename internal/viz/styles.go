package viz

import "github.com/charmbracelet/lipgloss"

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(38)
	chartStyle  = lipgloss.NewStyle().Padding(1, 2)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(2)
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))

	statusPlaying  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("82"))
	statusPaused   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
	statusFinished = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))

	// Bar colors keyed by the current step: plain elements, the pair under
	// comparison, swapped elements, the partition pivot, merge write-backs,
	// and the fully sorted final state.
	barPlain   = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	barCompare = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	barSwap    = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	barPivot   = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
	barMerge   = lipgloss.NewStyle().Foreground(lipgloss.Color("51"))
	barSorted  = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
)
