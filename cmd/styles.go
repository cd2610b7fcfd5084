package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

//nolint:gochecknoglobals // Style palette
var (
	colorSuccess = lipgloss.Color("#04B575")
	colorWarning = lipgloss.Color("#F2A900")
	colorMuted   = lipgloss.Color("#888888")

	styleSuccess = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)
	styleWarning = lipgloss.NewStyle().Foreground(colorWarning)
	styleMuted   = lipgloss.NewStyle().Foreground(colorMuted)
	styleHeading = lipgloss.NewStyle().Bold(true).Underline(true)
)

func printSuccess(format string, args ...interface{}) {
	fmt.Println(styleSuccess.Render("✓ " + fmt.Sprintf(format, args...)))
}

func printWarning(format string, args ...interface{}) {
	fmt.Println(styleWarning.Render("Warning: " + fmt.Sprintf(format, args...)))
}

func printDetail(format string, args ...interface{}) {
	fmt.Println(styleMuted.Render("  " + fmt.Sprintf(format, args...)))
}
