package ribbon

import "github.com/charmbracelet/lipgloss"

// Ribbon color palette
const (
	ColorHealthy   = lipgloss.Color("#39FF14") // Neon green
	ColorUnhealthy = lipgloss.Color("#FF0055") // Hot red-pink
	ColorTrack     = lipgloss.Color("#0A0A0F") // Rows outside every segment
	ColorSeparator = lipgloss.Color("#000000")

	ColorTooltipBg = lipgloss.Color("#FFFFC8") // Pale yellow
	ColorTooltipFg = lipgloss.Color("#000000")

	ColorSurfaceBg     = lipgloss.Color("#12121A")
	ColorAccent        = lipgloss.Color("#FF2E97")
	ColorTextPrimary   = lipgloss.Color("#FFFFFF")
	ColorTextSecondary = lipgloss.Color("#B4B4D0")
	ColorTextMuted     = lipgloss.Color("#6B6B8D")
)

// Glyphs used when the terminal can't show background colors.
const (
	GlyphHealthy   = "█"
	GlyphUnhealthy = "░"
	GlyphSeparator = "─"
)

var (
	healthyCellStyle   = lipgloss.NewStyle().Background(ColorHealthy)
	unhealthyCellStyle = lipgloss.NewStyle().Background(ColorUnhealthy)
	separatorCellStyle = lipgloss.NewStyle().Background(ColorSeparator)
	trackCellStyle     = lipgloss.NewStyle().Background(ColorTrack)

	tooltipStyle = lipgloss.NewStyle().
			Background(ColorTooltipBg).
			Foreground(ColorTooltipFg).
			Padding(0, 1)

	tooltipAgeStyle = lipgloss.NewStyle().
			Background(ColorTooltipBg).
			Foreground(ColorTextMuted)

	menuBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorAccent).
			Background(ColorSurfaceBg).
			Padding(0, 1)

	menuTitleStyle = lipgloss.NewStyle().
			Foreground(ColorTextSecondary)

	menuItemStyle = lipgloss.NewStyle().
			Foreground(ColorTextPrimary)

	menuItemSelectedStyle = lipgloss.NewStyle().
				Foreground(ColorAccent).
				Bold(true)

	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)
)
