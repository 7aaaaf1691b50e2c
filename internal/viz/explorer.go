package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/vortex/internal/analysis"
	"github.com/san-kum/vortex/internal/diagram"
	"github.com/san-kum/vortex/internal/palette"
)

// Explorer is an interactive bubbletea model for stepping through
// multipliers and moduli.
type Explorer struct {
	cfg           diagram.Config
	palettes      []palette.Palette
	paletteIdx    int
	diagram       *diagram.Diagram
	err           error
	width, height int
	showHelp      bool
}

// NewExplorer starts from cfg. Its palette is the first of the cycle; the
// registered palettes follow.
func NewExplorer(cfg diagram.Config) Explorer {
	palettes := []palette.Palette{{Name: "initial", Colors: cfg.Palette}}
	palettes = append(palettes, palette.Palettes...)

	e := Explorer{
		cfg:      cfg,
		palettes: palettes,
		width:    80,
		height:   24,
	}
	e.rebuild()
	return e
}

func (e *Explorer) rebuild() {
	e.diagram, e.err = diagram.Build(e.cfg)
}

func (e Explorer) Config() diagram.Config {
	return e.cfg
}

func (e Explorer) Diagram() *diagram.Diagram {
	return e.diagram
}

func (e Explorer) Init() tea.Cmd { return nil }

func (e Explorer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return e.handleKey(msg)
	case tea.WindowSizeMsg:
		e.width, e.height = msg.Width, msg.Height
	}
	return e, nil
}

func (e Explorer) handleKey(msg tea.KeyMsg) (Explorer, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return e, tea.Quit
	case "right", "l":
		e.cfg.Multiplier++
	case "left", "h":
		if e.cfg.Multiplier > 0 {
			e.cfg.Multiplier--
		}
	case "up", "k":
		e.cfg.Modulus++
	case "down", "j":
		if e.cfg.Modulus > 2 {
			e.cfg.Modulus--
		}
	case "pgup":
		e.cfg.Modulus += 10
	case "pgdown":
		e.cfg.Modulus = max(e.cfg.Modulus-10, 2)
	case "p":
		e.paletteIdx = (e.paletteIdx + 1) % len(e.palettes)
		e.cfg.Palette = e.palettes[e.paletteIdx].Colors
	case "c":
		e.cfg.DrawCircle = !e.cfg.DrawCircle
	case "?":
		e.showHelp = !e.showHelp
		return e, nil
	default:
		return e, nil
	}
	e.rebuild()
	return e, nil
}

func (e Explorer) View() string {
	if e.err != nil {
		return errorStyle.Render(e.err.Error()) + "\n"
	}

	canvasW := max(e.width-40, 20)
	canvasH := max(e.height-2, 8)
	canvas := Render(e.diagram, canvasW, canvasH).Colorize(e.cfg.Palette)

	s := analysis.Summarize(e.diagram)
	var stats strings.Builder
	stats.WriteString(titleStyle.Render(fmt.Sprintf("%d × x mod %d", e.cfg.Multiplier, e.cfg.Modulus)) + "\n\n")
	row := func(label, value string) {
		stats.WriteString(labelStyle.Render(label) + valueStyle.Render(value) + "\n")
	}
	row("orbits", fmt.Sprintf("%d", s.Orbits))
	row("longest", fmt.Sprintf("%d", s.LongestOrbit))
	row("fixed", fmt.Sprintf("%d", s.FixedPoints))
	row("segments", fmt.Sprintf("%d", s.Segments))
	row("palette", e.palettes[e.paletteIdx].Name)
	row("", palette.Swatch(e.cfg.Palette))
	row("buckets", fmt.Sprintf("%v", s.BucketCounts))
	stats.WriteString("\n" + Sparkline(analysis.SortedMagnitudes(e.diagram), 28, e.cfg.Palette) + "\n")

	if e.showHelp {
		stats.WriteString("\n" + keyHint.Render("←/→ multiplier  ↑/↓ modulus\npgup/pgdn modulus ±10\np palette  c circle  q quit"))
	} else {
		stats.WriteString("\n" + keyHint.Render("? help"))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, canvas, panelStyle.Render(stats.String()))
}
