package cmd

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Colors adapt to light and dark terminals
var (
	colorTitle   = lipgloss.AdaptiveColor{Light: "#B5651D", Dark: "#F5A623"}
	colorSuccess = lipgloss.AdaptiveColor{Light: "#5F7A3A", Dark: "#A8B545"}
	colorError   = lipgloss.AdaptiveColor{Light: "#B5382A", Dark: "#E05A3A"}
	colorMuted   = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#A89984"}
)

// styles renders for one writer; colors are dropped when it is not a terminal
type styles struct {
	title   lipgloss.Style
	key     lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
	muted   lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		title:   r.NewStyle().Bold(true).Foreground(colorTitle),
		key:     r.NewStyle().Bold(true),
		success: r.NewStyle().Foreground(colorSuccess),
		failure: r.NewStyle().Foreground(colorError),
		muted:   r.NewStyle().Foreground(colorMuted),
	}
}
