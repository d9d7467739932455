package tui

import "github.com/charmbracelet/lipgloss"

// MinFormWidth is the minimum character width for the form pane.
const MinFormWidth = 36

// FocusedBorder returns a lipgloss style with an accent-colored rounded border.
func FocusedBorder() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.AdaptiveColor{Light: "4", Dark: "12"})
}

// UnfocusedBorder returns a lipgloss style with a dim rounded border.
func UnfocusedBorder() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.AdaptiveColor{Light: "240", Dark: "240"})
}

// ErrorText styles inline field errors and failure notices.
func ErrorText() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "1", Dark: "9"})
}

// SuccessText styles success notices.
func SuccessText() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "2", Dark: "10"})
}

// DimText styles secondary information like timestamps and counts.
func DimText() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "240", Dark: "245"})
}

// PaneWidths calculates the form and list pane widths from a total
// width. The form gets 1/3 (minimum MinFormWidth), the list the rest.
func PaneWidths(totalWidth int) (form, list int) {
	if totalWidth <= 0 {
		return 0, 0
	}
	form = totalWidth / 3
	if form < MinFormWidth {
		form = MinFormWidth
	}
	list = totalWidth - form
	if list < 0 {
		list = 0
	}
	return form, list
}
