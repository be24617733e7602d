package ribbon

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// rect is a box placed on the canvas, in terminal cells.
type rect struct {
	top, left, width, height int
}

func (r rect) contains(x, y int) bool {
	return x >= r.left && x < r.left+r.width && y >= r.top && y < r.top+r.height
}

// View renders the frame.
func (m Model) View() string {
	if m.quitting || m.width <= 0 || m.height <= 0 {
		return ""
	}

	ribbon := m.paintRibbon()
	canvas := m.renderCanvas()

	lines := make([]string, m.height)
	for y := range lines {
		lines[y] = canvas[y] + ribbon[y]
	}
	return strings.Join(lines, "\n")
}

// paintRibbon applies the draw operations for the current snapshot to a
// column of m.height rows.
func (m Model) paintRibbon() []string {
	width := m.columns()
	rows := make([]string, m.height)
	track := m.cell(trackCellStyle, " ", width)
	for y := range rows {
		rows[y] = track
	}
	if width == 0 {
		return rows
	}

	ops := Render(m.src.Store().Snapshot(), m.handler.Geometry())
	for _, op := range ops {
		var painted string
		switch {
		case op.Kind == OpSeparator:
			painted = m.cell(separatorCellStyle, GlyphSeparator, width)
		case op.Healthy:
			painted = m.cell(healthyCellStyle, GlyphHealthy, width)
		default:
			painted = m.cell(unhealthyCellStyle, GlyphUnhealthy, width)
		}
		for y := op.Start; y < op.End && y < len(rows); y++ {
			rows[y] = painted
		}
	}
	return rows
}

// cell renders one ribbon row: a colored block, or a glyph run when the
// terminal has no colors.
func (m Model) cell(style lipgloss.Style, glyph string, width int) string {
	if m.glyphs {
		if glyph == " " {
			return strings.Repeat(" ", width)
		}
		return strings.Repeat(glyph, width)
	}
	return style.Render(strings.Repeat(" ", width))
}

// renderCanvas renders the area left of the ribbon: blank, with the help
// overlay, the command menu, or the tooltip drawn on top.
func (m Model) renderCanvas() []string {
	width := m.canvasWidth()
	blank := strings.Repeat(" ", width)
	canvas := make([]string, m.height)
	for y := range canvas {
		canvas[y] = blank
	}
	if width == 0 {
		return canvas
	}

	if m.showHelp {
		return padLines(m.renderHelpOverlay(), width, m.height)
	}

	if box, r, ok := m.menuBox(); ok {
		place(canvas, box, r, width)
		return canvas
	}

	if box, r, ok := m.tooltipBox(); ok {
		place(canvas, box, r, width)
	}

	footer := m.help.View(m.keys)
	if lipgloss.Width(footer) <= width && strings.TrimSpace(canvas[m.height-1]) == "" {
		canvas[m.height-1] = footer + strings.Repeat(" ", width-lipgloss.Width(footer))
	}

	return canvas
}

func (m Model) tooltipBox() (string, rect, bool) {
	tip, ok := m.handler.Tooltip()
	if !ok {
		return "", rect{}, false
	}
	body := tip.Text() + "\n" + tooltipAgeStyle.Render(tip.Age(m.now()))
	box := tooltipStyle.Render(body)
	r, ok := m.anchor(box, tip.Index)
	return box, r, ok
}

func (m Model) menuBox() (string, rect, bool) {
	idx, open := m.handler.Menu()
	if !open {
		return "", rect{}, false
	}
	box := menuBoxStyle.Render(strings.Join(m.menuLines(idx), "\n"))
	r, ok := m.anchor(box, idx)
	return box, r, ok
}

func (m Model) menuLines(index int) []string {
	title := ""
	if spec, ok := m.src.Registry().At(index); ok {
		title = spec.Name
	}
	lines := []string{menuTitleStyle.Render(title)}
	for i, cmd := range MenuCommands {
		if i == m.menuCursor {
			lines = append(lines, menuItemSelectedStyle.Render("> "+cmd.String()))
			continue
		}
		lines = append(lines, menuItemStyle.Render("  "+cmd.String()))
	}
	return lines
}

// menuItemAt returns the menu entry under the pointer.
func (m Model) menuItemAt(x, y int) (int, bool) {
	_, r, ok := m.menuBox()
	if !ok || !r.contains(x, y) {
		return 0, false
	}
	// Row 0 is the border, row 1 the title.
	item := y - r.top - 2
	if item < 0 || item >= len(MenuCommands) {
		return 0, false
	}
	return item, true
}

// anchor places box to the left of the ribbon, level with the top of the
// segment at index and kept on screen.
func (m Model) anchor(box string, index int) (rect, bool) {
	w, h := lipgloss.Width(box), lipgloss.Height(box)
	canvas := m.canvasWidth()
	if w > canvas || h > m.height {
		return rect{}, false
	}

	top, _ := m.handler.Geometry().SegmentBounds(index)
	if top+h > m.height {
		top = m.height - h
	}
	if top < 0 {
		top = 0
	}

	left := canvas - w - 1
	if left < 0 {
		left = 0
	}
	return rect{top: top, left: left, width: w, height: h}, true
}

// place writes box lines into canvas rows starting at r.top, r.left.
func place(canvas []string, box string, r rect, width int) {
	for i, line := range strings.Split(box, "\n") {
		y := r.top + i
		if y >= len(canvas) {
			return
		}
		pad := width - r.left - lipgloss.Width(line)
		if pad < 0 {
			pad = 0
		}
		canvas[y] = strings.Repeat(" ", r.left) + line + strings.Repeat(" ", pad)
	}
}

// padLines splits s into exactly height lines.
func padLines(s string, width, height int) []string {
	lines := strings.Split(s, "\n")
	for len(lines) < height {
		lines = append(lines, strings.Repeat(" ", width))
	}
	return lines[:height]
}
