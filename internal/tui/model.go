// Package tui provides the BubbleTea-based interactive theme picker.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jmylchreest/tiny-theme-switcher/internal/model"
)

// themeItem wraps a theme for the list component.
type themeItem struct {
	name    string
	theme   model.Theme
	current bool
}

func (i themeItem) Title() string {
	if i.current {
		return i.name + " (current)"
	}
	return i.name
}

func (i themeItem) Description() string {
	return Summary(i.theme)
}

func (i themeItem) FilterValue() string {
	return i.name
}

// Model is the picker model.
type Model struct {
	list   list.Model
	help   help.Model
	keys   KeyMap
	width  int
	height int

	chosen   string
	quitting bool
}

// New creates a picker over the given themes. names fixes the display order;
// current is highlighted and initially focused.
func New(names []string, themes map[string]model.Theme, current string) Model {
	items := make([]list.Item, 0, len(names))
	focus := 0
	for i, name := range names {
		if name == current {
			focus = i
		}
		items = append(items, themeItem{
			name:    name,
			theme:   themes[name],
			current: name == current,
		})
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Themes"
	l.SetShowStatusBar(true)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(true)
	l.DisableQuitKeybindings()
	l.Select(focus)

	return Model{
		list: l,
		help: help.New(),
		keys: DefaultKeyMap(),
	}
}

// Init initializes the picker.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.list.SetSize(msg.Width, max(msg.Height-1, 1))
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}

		// Typing a filter or clearing one belongs to the list
		if m.list.FilterState() == list.Filtering {
			break
		}
		if m.list.FilterState() == list.FilterApplied && msg.String() == "esc" {
			break
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Choose):
			if item, ok := m.list.SelectedItem().(themeItem); ok {
				m.chosen = item.name
				return m, tea.Quit
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View renders the picker.
func (m Model) View() string {
	if m.chosen != "" || m.quitting {
		return ""
	}

	bar := lipgloss.NewStyle().Padding(0, 2).Render(m.help.View(m.keys))
	return m.list.View() + "\n" + bar
}

// Chosen returns the picked theme name, or empty if the picker was cancelled.
func (m Model) Chosen() string {
	return m.chosen
}

// RunOptions configures the picker.
type RunOptions struct {
	Names   []string
	Themes  map[string]model.Theme
	Current string
}

// Run shows the picker and returns the chosen name.
// An empty name means the user quit without choosing.
func Run(opts RunOptions) (string, error) {
	p := tea.NewProgram(New(opts.Names, opts.Themes, opts.Current), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return "", err
	}

	if m, ok := final.(Model); ok {
		return m.Chosen(), nil
	}
	return "", nil
}
