package ribbon

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/rileyhilliard/panicribbon/internal/errors"
	"github.com/rileyhilliard/panicribbon/internal/logger"
)

// DefaultWidth is the ribbon width in terminal columns.
const DefaultWidth = 2

// Source is a Controller that also reports when its store changed.
// *health.Engine implements it.
type Source interface {
	Controller
	Invalidations() <-chan struct{}
}

// Options configures the ribbon model.
type Options struct {
	Width  int
	Logger logger.Logger
}

// Model is the Bubble Tea model that owns the ribbon display.
type Model struct {
	src     Source
	handler *Handler
	log     logger.Logger
	keys    keyMap
	help    help.Model

	width       int
	height      int
	ribbonWidth int
	glyphs      bool

	selected   int
	menuCursor int
	showHelp   bool
	quitting   bool

	now func() time.Time
}

// invalidateMsg asks for a redraw after the status store changed.
type invalidateMsg struct{}

// NewModel creates the ribbon model for src.
func NewModel(src Source, opts Options) Model {
	log := opts.Logger
	if log == nil {
		log = logger.Noop()
	}
	width := opts.Width
	if width <= 0 {
		width = DefaultWidth
	}

	h := help.New()
	h.Styles.ShortKey = FooterStyle
	h.Styles.ShortDesc = FooterStyle
	h.Styles.ShortSeparator = FooterStyle
	h.Styles.FullKey = lipgloss.NewStyle().Foreground(ColorTextPrimary).Bold(true)
	h.Styles.FullDesc = lipgloss.NewStyle().Foreground(ColorTextSecondary)
	h.Styles.FullSeparator = FooterStyle

	m := Model{
		src:         src,
		handler:     NewHandler(src, log),
		log:         log,
		keys:        defaultKeyMap(),
		help:        h,
		ribbonWidth: width,
		glyphs:      lipgloss.ColorProfile() == termenv.Ascii,
		now:         time.Now,
	}

	if m.glyphs {
		err := errors.New(errors.ErrRender,
			"Terminal has no color support, drawing the ribbon with glyphs", "")
		log.Warn("%s", errors.Short(err))
	}

	return m
}

// ProgramOptions returns the Bubble Tea options the ribbon needs:
// the alternate screen and mouse motion reporting.
func ProgramOptions() []tea.ProgramOption {
	return []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	}
}

// Handler returns the interaction handler.
func (m Model) Handler() *Handler {
	return m.handler
}

// Init waits for the first store change.
func (m Model) Init() tea.Cmd {
	return waitForInvalidation(m.src.Invalidations())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		handled, cmd := m.HandleKeyMsg(msg)
		if handled {
			return m, cmd
		}

	case tea.MouseMsg:
		cmd := m.HandleMouseMsg(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = m.canvasWidth()
		m.handler.Resize(m.height)

	case invalidateMsg:
		// The redraw reads a fresh snapshot; only the tooltip caches values.
		m.handler.RefreshTooltip()
		return m, waitForInvalidation(m.src.Invalidations())
	}

	return m, nil
}

// waitForInvalidation turns the next store change into an invalidateMsg.
func waitForInvalidation(ch <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return invalidateMsg{}
	}
}

// HandleMouseMsg processes pointer input.
func (m *Model) HandleMouseMsg(msg tea.MouseMsg) tea.Cmd {
	if idx, open := m.handler.Menu(); open {
		item, onItem := m.menuItemAt(msg.X, msg.Y)
		switch msg.Action {
		case tea.MouseActionMotion:
			if onItem {
				m.menuCursor = item
			}
		case tea.MouseActionPress:
			if onItem && msg.Button == tea.MouseButtonLeft {
				return m.invoke(MenuCommands[item], idx)
			}
			// A click anywhere else only dismisses the menu.
			m.handler.CloseMenu()
		}
		return nil
	}

	if !m.inRibbon(msg.X) {
		if msg.Action == tea.MouseActionMotion {
			m.handler.Leave()
		}
		return nil
	}

	switch msg.Action {
	case tea.MouseActionMotion:
		if tip, ok := m.handler.Hover(msg.Y); ok {
			m.selected = tip.Index
		}

	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			m.handler.Click(ButtonPrimary, msg.Y)
		case tea.MouseButtonRight:
			if m.handler.Click(ButtonSecondary, msg.Y) == ClickMenuOpened {
				idx, _ := m.handler.Menu()
				m.selected = idx
				m.menuCursor = 0
			}
		}
	}
	return nil
}

func (m *Model) openMenu(index int) {
	if m.handler.Activate(ButtonSecondary, index) == ClickMenuOpened {
		m.menuCursor = 0
	}
}

// invoke runs a menu command and quits the program on Exit.
func (m *Model) invoke(cmd Command, index int) tea.Cmd {
	if m.handler.Invoke(cmd, index) {
		m.quitting = true
		return tea.Quit
	}
	return nil
}

func (m Model) count() int {
	return m.src.Registry().Len()
}

// columns returns the ribbon width, capped to the terminal width.
func (m Model) columns() int {
	if m.ribbonWidth > m.width {
		return m.width
	}
	return m.ribbonWidth
}

// canvasWidth is the area left of the ribbon used for overlays.
func (m Model) canvasWidth() int {
	return m.width - m.columns()
}

func (m Model) inRibbon(x int) bool {
	return x >= m.canvasWidth() && x < m.width
}
