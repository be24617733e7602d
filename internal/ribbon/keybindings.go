package ribbon

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// keyMap defines the keyboard equivalents of the pointer actions.
type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Restart key.Binding
	Menu    key.Binding
	Refresh key.Binding
	Close   key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "previous service"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next service"),
		),
		Restart: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "restart if unhealthy"),
		),
		Menu: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "command menu"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh now"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "exit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Restart, k.Menu},
		{k.Refresh, k.Close, k.Help, k.Quit},
	}
}

// HandleKeyMsg processes keyboard input and returns updated model state and command.
// Returns true if the key was handled, false otherwise.
func (m *Model) HandleKeyMsg(msg tea.KeyMsg) (bool, tea.Cmd) {
	// Help toggle takes priority
	if key.Matches(msg, m.keys.Help) {
		m.showHelp = !m.showHelp
		return true, nil
	}

	if m.showHelp && key.Matches(msg, m.keys.Close) {
		m.showHelp = false
		return true, nil
	}

	if idx, open := m.handler.Menu(); open {
		return m.handleMenuKey(msg, idx)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return true, m.invoke(CommandExit, m.selected)

	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}
		m.handler.Focus(m.selected)
		return true, nil

	case key.Matches(msg, m.keys.Down):
		if m.selected < m.count()-1 {
			m.selected++
		}
		m.handler.Focus(m.selected)
		return true, nil

	case key.Matches(msg, m.keys.Restart):
		m.handler.Activate(ButtonPrimary, m.selected)
		return true, nil

	case key.Matches(msg, m.keys.Menu):
		m.openMenu(m.selected)
		return true, nil

	case key.Matches(msg, m.keys.Refresh):
		return true, m.invoke(CommandRefresh, m.selected)

	case key.Matches(msg, m.keys.Close):
		m.handler.Leave()
		return true, nil
	}

	return false, nil
}

func (m *Model) handleMenuKey(msg tea.KeyMsg, index int) (bool, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.menuCursor > 0 {
			m.menuCursor--
		}
		return true, nil

	case key.Matches(msg, m.keys.Down):
		if m.menuCursor < len(MenuCommands)-1 {
			m.menuCursor++
		}
		return true, nil

	case key.Matches(msg, m.keys.Restart):
		return true, m.invoke(MenuCommands[m.menuCursor], index)

	case key.Matches(msg, m.keys.Close), key.Matches(msg, m.keys.Menu):
		m.handler.CloseMenu()
		return true, nil

	case key.Matches(msg, m.keys.Quit):
		return true, m.invoke(CommandExit, index)
	}
	return false, nil
}
