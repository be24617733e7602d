package ribbon

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/rileyhilliard/panicribbon/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withProfile(t *testing.T, p termenv.Profile) {
	t.Helper()
	prev := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(p)
	t.Cleanup(func() { lipgloss.SetColorProfile(prev) })
}

// sized returns a model that already received a window size.
func sized(t *testing.T, ctl *fakeController, width, height int) Model {
	t.Helper()
	m := NewModel(ctl, Options{Width: 2})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	return updated.(Model)
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	return updated.(Model), cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func press(x, y int, b tea.MouseButton) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: b}
}

func motion(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion}
}

func TestModel_ViewPaintsOneRowPerLine(t *testing.T) {
	withProfile(t, termenv.Ascii)
	ctl := newFakeController("api", "db")
	ctl.setHealthy(0, 5)
	m := sized(t, ctl, 40, 10)

	lines := strings.Split(m.View(), "\n")
	require.Len(t, lines, 10)

	for y, line := range lines {
		runes := []rune(line)
		require.GreaterOrEqual(t, len(runes), 2, "row %d", y)
		tail := string(runes[len(runes)-2:])
		switch {
		case y < 4:
			assert.Equal(t, GlyphHealthy+GlyphHealthy, tail, "row %d", y)
		case y == 4:
			assert.Equal(t, GlyphSeparator+GlyphSeparator, tail, "row %d", y)
		default:
			assert.Equal(t, GlyphUnhealthy+GlyphUnhealthy, tail, "row %d", y)
		}
	}
}

func TestModel_GlyphModeWarnsOnce(t *testing.T) {
	withProfile(t, termenv.Ascii)
	log := logger.NewBufferLogger()

	NewModel(newFakeController("api"), Options{Logger: log})

	assert.True(t, log.HasLevel("warn"))
	assert.Len(t, log.Snapshot(), 1)
}

func TestModel_ColorModeDoesNotWarn(t *testing.T) {
	withProfile(t, termenv.TrueColor)
	log := logger.NewBufferLogger()

	m := NewModel(newFakeController("api"), Options{Logger: log})

	assert.False(t, m.glyphs)
	assert.Empty(t, log.Snapshot())
}

func TestModel_InvalidationRedrawsAndRearms(t *testing.T) {
	withProfile(t, termenv.Ascii)
	ctl := newFakeController("api")
	m := sized(t, ctl, 20, 4)

	assert.Contains(t, m.View(), GlyphUnhealthy)

	ctl.setHealthy(0, 3)
	ctl.inval <- struct{}{}

	msg := m.Init()()
	require.IsType(t, invalidateMsg{}, msg)

	m, cmd := update(t, m, msg)
	require.NotNil(t, cmd)
	assert.Contains(t, m.View(), GlyphHealthy)
	assert.NotContains(t, m.View(), GlyphUnhealthy)
}

func TestModel_WaitForInvalidationStopsOnClose(t *testing.T) {
	ch := make(chan struct{})
	close(ch)

	assert.Nil(t, waitForInvalidation(ch)())
}

func TestModel_MouseHoverInsideRibbon(t *testing.T) {
	withProfile(t, termenv.Ascii)
	ctl := newFakeController("api", "db")
	ctl.setHealthy(1, 12)
	m := sized(t, ctl, 40, 20)

	m, _ = update(t, m, motion(39, 15))

	tip, ok := m.Handler().Tooltip()
	require.True(t, ok)
	assert.Equal(t, "db", tip.Name)
	assert.Contains(t, m.View(), "Latency: 12ms")

	m, _ = update(t, m, motion(5, 15))
	_, ok = m.Handler().Tooltip()
	assert.False(t, ok)
}

func TestModel_LeftClickRestartsUnhealthy(t *testing.T) {
	withProfile(t, termenv.Ascii)
	ctl := newFakeController("api", "db")
	ctl.setHealthy(0, 5)
	m := sized(t, ctl, 40, 20)

	m, _ = update(t, m, press(38, 2, tea.MouseButtonLeft))
	assert.Zero(t, ctl.restartCount())

	_, _ = update(t, m, press(38, 12, tea.MouseButtonLeft))
	assert.Equal(t, []int{1}, ctl.restarts)
}

func TestModel_ClickLeftOfRibbonIgnored(t *testing.T) {
	withProfile(t, termenv.Ascii)
	ctl := newFakeController("api")
	m := sized(t, ctl, 40, 20)

	_, _ = update(t, m, press(10, 5, tea.MouseButtonLeft))

	assert.Zero(t, ctl.restartCount())
}

func TestModel_RightClickMenuRefresh(t *testing.T) {
	withProfile(t, termenv.Ascii)
	ctl := newFakeController("api", "db")
	m := sized(t, ctl, 40, 20)

	m, _ = update(t, m, press(39, 12, tea.MouseButtonRight))
	idx, open := m.Handler().Menu()
	require.True(t, open)
	assert.Equal(t, 1, idx)
	assert.Contains(t, m.View(), "Refresh now")

	_, r, ok := m.menuBox()
	require.True(t, ok)

	// First entry sits below the border and the title.
	m, cmd := update(t, m, press(r.left+2, r.top+2, tea.MouseButtonLeft))
	assert.Nil(t, cmd)
	assert.Equal(t, []int{1}, ctl.refreshes)
	_, open = m.Handler().Menu()
	assert.False(t, open)
}

func TestModel_RightClickMenuExit(t *testing.T) {
	withProfile(t, termenv.Ascii)
	ctl := newFakeController("api")
	m := sized(t, ctl, 40, 20)

	m, _ = update(t, m, press(39, 3, tea.MouseButtonRight))
	_, r, ok := m.menuBox()
	require.True(t, ok)

	m, cmd := update(t, m, press(r.left+2, r.top+3, tea.MouseButtonLeft))
	assert.True(t, isQuit(cmd))
	assert.Equal(t, 1, ctl.shutdowns)
	assert.Empty(t, m.View())
}

func TestModel_ClickOutsideMenuDismisses(t *testing.T) {
	withProfile(t, termenv.Ascii)
	ctl := newFakeController("api")
	m := sized(t, ctl, 40, 20)

	m, _ = update(t, m, press(39, 3, tea.MouseButtonRight))
	m, _ = update(t, m, press(0, 19, tea.MouseButtonLeft))

	_, open := m.Handler().Menu()
	assert.False(t, open)
	assert.Zero(t, ctl.restartCount())
	assert.Empty(t, ctl.refreshes)
}

func TestModel_KeyboardSelectAndRestart(t *testing.T) {
	withProfile(t, termenv.Ascii)
	ctl := newFakeController("api", "db", "queue")
	ctl.setHealthy(0, 1)
	m := sized(t, ctl, 40, 30)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Zero(t, ctl.restartCount())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	tip, ok := m.Handler().Tooltip()
	require.True(t, ok)
	assert.Equal(t, "db", tip.Name)

	_, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, []int{1}, ctl.restarts)
}

func TestModel_KeyboardRefresh(t *testing.T) {
	withProfile(t, termenv.Ascii)
	ctl := newFakeController("api", "db")
	m := sized(t, ctl, 40, 20)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	_, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})

	assert.Equal(t, []int{1}, ctl.refreshes)
}

func TestModel_KeyboardMenu(t *testing.T) {
	withProfile(t, termenv.Ascii)
	ctl := newFakeController("api")
	m := sized(t, ctl, 40, 20)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("m")})
	_, open := m.Handler().Menu()
	require.True(t, open)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, m.menuCursor)

	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, isQuit(cmd))
	assert.Equal(t, 1, ctl.shutdowns)
}

func TestModel_QuitKey(t *testing.T) {
	withProfile(t, termenv.Ascii)
	ctl := newFakeController("api")
	m := sized(t, ctl, 40, 20)

	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})

	assert.True(t, isQuit(cmd))
	assert.Equal(t, 1, ctl.shutdowns)
}

func TestModel_HelpToggle(t *testing.T) {
	withProfile(t, termenv.Ascii)
	ctl := newFakeController("api")
	m := sized(t, ctl, 100, 30)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")})
	assert.True(t, m.showHelp)
	assert.Contains(t, m.View(), "Keyboard Shortcuts")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.showHelp)
}

func TestModel_TinyTerminal(t *testing.T) {
	withProfile(t, termenv.Ascii)
	ctl := newFakeController("a", "b", "c")
	m := sized(t, ctl, 1, 2)

	view := m.View()
	assert.Len(t, strings.Split(view, "\n"), 2)

	_, _ = update(t, m, press(0, 1, tea.MouseButtonLeft))
	assert.Zero(t, ctl.restartCount())
}

func TestModel_ViewBeforeWindowSize(t *testing.T) {
	m := NewModel(newFakeController("api"), Options{})
	assert.Empty(t, m.View())
}

func TestProgramOptions(t *testing.T) {
	assert.Len(t, ProgramOptions(), 2)
}

func TestModel_TooltipAge(t *testing.T) {
	withProfile(t, termenv.Ascii)
	ctl := newFakeController("api")
	m := sized(t, ctl, 60, 20)
	m.now = func() time.Time { return time.Now() }

	m, _ = update(t, m, motion(59, 5))

	assert.Contains(t, m.View(), "not checked yet")
}
