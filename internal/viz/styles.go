package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00ffff"))

	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff4444")).Bold(true)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 2)

	keyHint = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688")).
		Italic(true)
)

// Sparkline renders values as a row of block characters, coloured by the
// palette band each value falls in.
func Sparkline(values []float64, width int, palette []string) string {
	if len(values) == 0 || width <= 0 {
		return strings.Repeat("─", max(width, 0))
	}

	chars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	lo, hi := values[0], values[0]
	for _, v := range values {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	rng := hi - lo
	if rng == 0 {
		rng = 1
	}

	step := len(values) / width
	if step < 1 {
		step = 1
	}

	var result strings.Builder
	for i := 0; i < width && i*step < len(values); i++ {
		norm := (values[i*step] - lo) / rng
		idx := min(int(norm*float64(len(chars)-1)), len(chars)-1)
		c := string(chars[max(idx, 0)])

		if len(palette) == 0 {
			result.WriteString(c)
			continue
		}
		band := min(int(norm*float64(len(palette))), len(palette)-1)
		result.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(palette[band])).Render(c))
	}

	return result.String()
}
