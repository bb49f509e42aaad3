// Package ui renders user-facing status lines and the confirmation
// prompt.
package ui

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	successMark = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	errorMark   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	infoMark    = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	warnMark    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
)

// Success prints a ✓-prefixed status line.
func Success(format string, a ...any) {
	fmt.Printf("%s %s\n", successMark.Render("✓"), fmt.Sprintf(format, a...))
}

// Info prints an ℹ-prefixed status line.
func Info(format string, a ...any) {
	fmt.Printf("%s %s\n", infoMark.Render("ℹ"), fmt.Sprintf(format, a...))
}

// Warn prints a ⚠-prefixed status line.
func Warn(format string, a ...any) {
	fmt.Printf("%s %s\n", warnMark.Render("⚠"), fmt.Sprintf(format, a...))
}

// Error prints a ✗-prefixed line to stderr.
func Error(format string, a ...any) {
	fmt.Fprintf(os.Stderr, "%s %s\n", errorMark.Render("✗"), fmt.Sprintf(format, a...))
}

// Confirm asks a yes/no question on the terminal. Anything but "y" or
// "yes" declines.
func Confirm(prompt string) (bool, error) {
	fmt.Printf("%s [y/N]: ", promptStyle.Render(prompt))

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return false, err
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}
