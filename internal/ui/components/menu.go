package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/keizoku/internal/ui/theme"
)

// MenuItem is one button of a Menu.
type MenuItem struct {
	Label string

	// Key, when set, activates the item directly, e.g. "s" for start.
	Key string

	// Hint is shown under the menu while the item is selected. Disabled
	// items show it as the reason they are unavailable.
	Hint string

	Action   func() tea.Cmd
	Disabled bool
}

// Menu is a vertical list of buttons. Selection wraps around and skips
// disabled items.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu selects the first enabled item.
func NewMenu(items []MenuItem) Menu {
	m := Menu{Items: items, Selected: -1}
	m.move(1)
	return m
}

// move steps the selection by dir (+1 or -1) to the next enabled item.
// It stays put when no other item is enabled.
func (m *Menu) move(dir int) {
	n := len(m.Items)
	for step := 1; step <= n; step++ {
		i := ((m.Selected+dir*step)%n + n) % n
		if !m.Items[i].Disabled {
			m.Selected = i
			return
		}
	}
}

func (m Menu) activate(i int) tea.Cmd {
	if i < 0 || i >= len(m.Items) || m.Items[i].Disabled || m.Items[i].Action == nil {
		return nil
	}
	return m.Items[i].Action()
}

// Update handles arrows, j/k, Enter and item hotkeys.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(m.Items) == 0 {
		return m, nil
	}

	switch k := kmsg.String(); k {
	case "up", "k":
		m.move(-1)
	case "down", "j", "tab":
		m.move(1)
	case "enter":
		return m, m.activate(m.Selected)
	default:
		for i, item := range m.Items {
			if item.Key != "" && item.Key == k && !item.Disabled {
				m.Selected = i
				return m, m.activate(i)
			}
		}
	}
	return m, nil
}

// View renders the buttons centred in cw, followed by the selected item's
// hint.
func (m Menu) View(buttonWidth, cw int) string {
	lines := make([]string, 0, len(m.Items)+2)
	var hint string
	for i, item := range m.Items {
		label := item.Label
		if item.Key != "" {
			label = "[" + strings.ToUpper(item.Key) + "] " + label
		}
		switch {
		case item.Disabled:
			lines = append(lines, button(label, buttonDisabled, buttonWidth))
		case i == m.Selected:
			lines = append(lines, button(label, buttonSelected, buttonWidth))
			hint = item.Hint
		default:
			lines = append(lines, button(label, buttonIdle, buttonWidth))
		}
	}
	for _, item := range m.Items {
		if item.Disabled && item.Hint != "" {
			lines = append(lines, theme.Hint.Render(item.Label+": "+item.Hint))
		}
	}
	if hint != "" {
		lines = append(lines, "", lipgloss.NewStyle().Foreground(theme.TextDim).Render(hint))
	}

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(lines, "\n"))
}
