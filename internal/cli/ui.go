package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/plotstyles/pkg/color"
	"github.com/matzehuels/plotstyles/pkg/styles"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorBlue   = lipgloss.Color("75")  // Light blue - commands
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Public Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleHighlight for emphasized values.
	StyleHighlight = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

// =============================================================================
// Internal Styles
// =============================================================================

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleHeader      = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	styleCommand     = lipgloss.NewStyle().Foreground(colorBlue)
	styleKey         = lipgloss.NewStyle().Foreground(colorGray).Width(16)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconArrow   = "→"
	swatchWidth = 4
)

// =============================================================================
// Status Output
// =============================================================================

// printSuccess prints a success message.
func printSuccess(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconSuccess.Render(iconSuccess)+" "+msg)
}

// printDetail prints a detail line (indented).
func printDetail(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, "  "+StyleDim.Render(msg))
}

// printFile prints a file output line.
func printFile(w io.Writer, path string) {
	fmt.Fprintln(w, "  "+StyleDim.Render(iconArrow)+" "+StyleValue.Render(path))
}

// printNextStep prints a suggested next command.
func printNextStep(w io.Writer, description, cmd string) {
	fmt.Fprintln(w, StyleDim.Render(description+":")+" "+styleCommand.Render(cmd))
}

// =============================================================================
// Swatches
// =============================================================================

// swatch renders a block in colour c, or a placeholder when c cannot be parsed.
func swatch(c color.Color) string {
	if c == color.None {
		return StyleDim.Render(strings.Repeat("·", swatchWidth))
	}
	hex, err := color.Hex(c)
	if err != nil {
		return StyleWarning.Render(strings.Repeat("?", swatchWidth))
	}
	return lipgloss.NewStyle().Background(lipgloss.Color(string(hex))).Render(strings.Repeat(" ", swatchWidth))
}

// formatValue renders a descriptor value; colours get a swatch.
func formatValue(v any) string {
	switch v := v.(type) {
	case color.Color:
		return swatch(v) + " " + StyleValue.Render(string(v))
	case float64:
		return StyleValue.Render(fmt.Sprintf("%g", v))
	default:
		return StyleValue.Render(fmt.Sprint(v))
	}
}

// printDescriptor prints the attributes of d, one per line in key order.
func printDescriptor(w io.Writer, d styles.Descriptor) {
	for _, k := range d.Keys() {
		fmt.Fprintln(w, "  "+styleKey.Render(k)+" "+formatValue(d[k]))
	}
}

// =============================================================================
// Tables
// =============================================================================

// newTable returns a rounded table with the shared header style.
func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
}

// descriptorColor returns the colour shown for d in listings.
func descriptorColor(d styles.Descriptor) color.Color {
	key, err := styles.ColorKey(d)
	if err != nil {
		return color.None
	}
	c, _ := d.Color(key)
	return c
}

// summarize renders the non-colour attributes of d on one line.
func summarize(d styles.Descriptor) string {
	var parts []string
	for _, k := range d.Keys() {
		if k == styles.KeyColor || k == styles.KeyFaceColor {
			continue
		}
		v := d[k]
		if f, ok := v.(float64); ok {
			v = fmt.Sprintf("%g", f)
		}
		parts = append(parts, fmt.Sprintf("%s=%v", k, v))
	}
	return strings.Join(parts, " ")
}
