package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestLikert_StartsNeutral(t *testing.T) {
	l := NewLikert("I like plans.")
	if l.Selected != 3 || l.Submitted {
		t.Errorf("initial state = %+v", l)
	}
}

func TestLikert_ArrowsClampAndEnterSubmits(t *testing.T) {
	l := NewLikert("I like plans.")
	for i := 0; i < 5; i++ {
		l, _ = l.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	}
	if l.Selected != 1 {
		t.Fatalf("Selected = %d, want 1", l.Selected)
	}
	l, _ = l.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	l, _ = l.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !l.Submitted || l.Chosen != 2 {
		t.Errorf("after enter = %+v, want chosen 2", l)
	}

	// Submitted selectors ignore further input.
	l, _ = l.Update(keyPress('5'))
	if l.Chosen != 2 {
		t.Errorf("Chosen changed after submit: %d", l.Chosen)
	}
}

func TestLikert_DigitSubmits(t *testing.T) {
	l := NewLikert("I like plans.")
	l, _ = l.Update(keyPress('5'))
	if !l.Submitted || l.Chosen != 5 {
		t.Errorf("after '5' = %+v", l)
	}

	l = NewLikert("I like plans.")
	for _, r := range []rune{'0', '6', 'x'} {
		l, _ = l.Update(keyPress(r))
	}
	if l.Submitted {
		t.Errorf("out-of-range keys should not submit: %+v", l)
	}
}

func TestLikert_ViewListsLabels(t *testing.T) {
	view := NewLikert("I like plans.").View()
	for _, want := range []string{"I like plans.", "strongly disagree", "neither agree nor disagree", "strongly agree"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestMenu(t *testing.T) {
	called := ""
	item := func(label, key string, disabled bool) MenuItem {
		return MenuItem{Label: label, Key: key, Hint: label + " hint", Disabled: disabled, Action: func() tea.Cmd {
			called = label
			return nil
		}}
	}
	m := NewMenu([]MenuItem{item("A", "", true), item("B", "b", false), item("C", "c", true), item("D", "", false)})
	if m.Selected != 1 {
		t.Fatalf("Selected = %d, want first enabled item", m.Selected)
	}

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if m.Selected != 3 {
		t.Fatalf("Selected = %d, want 3", m.Selected)
	}
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if m.Selected != 1 {
		t.Fatalf("Selected = %d, want wrap to 1", m.Selected)
	}
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if called != "D" {
		t.Errorf("called = %q, want D", called)
	}

	m, _ = m.Update(keyPress('c'))
	if called != "D" || m.Selected != 3 {
		t.Errorf("disabled hotkey ran: called = %q, selected = %d", called, m.Selected)
	}
	m, _ = m.Update(keyPress('b'))
	if called != "B" || m.Selected != 1 {
		t.Errorf("hotkey: called = %q, selected = %d", called, m.Selected)
	}

	view := m.View(20, 40)
	for _, want := range []string{"[B] B", "B hint", "A: A hint"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if strings.Contains(view, "D hint") {
		t.Error("only the selected item's hint should show")
	}
}

func TestMenu_AllDisabled(t *testing.T) {
	m := NewMenu([]MenuItem{{Label: "A", Disabled: true}})
	m, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil || m.Selected != -1 {
		t.Errorf("selected = %d, cmd = %v", m.Selected, cmd)
	}
}

func TestScoreBar(t *testing.T) {
	for _, score := range []int{-20, 0, 40, 100, 170} {
		bar := ScoreBar{Label: "Commander", LabelWidth: 12, Score: score, Width: 40}
		if w := lipgloss.Width(bar.View()); w != 40 {
			t.Errorf("width at %d = %d, want 40", score, w)
		}
	}
	if v := (ScoreBar{Label: "Sage", Score: 140, Width: 30}).View(); !strings.Contains(v, " 100") {
		t.Errorf("score should clamp to 100: %q", v)
	}
}

func TestSteps(t *testing.T) {
	s := Steps(3, 10)
	if got := strings.Count(s, "●"); got != 3 {
		t.Errorf("answered dots = %d, want 3", got)
	}
	if got := strings.Count(s, "◉"); got != 1 {
		t.Errorf("current dots = %d, want 1", got)
	}
	if got := strings.Count(s, "○"); got != 6 {
		t.Errorf("pending dots = %d, want 6", got)
	}
}

func TestContentWidth(t *testing.T) {
	tests := []struct{ frame, want int }{
		{10, 20},
		{64, 58},
		{120, 72},
	}
	for _, tt := range tests {
		if got := ContentWidth(tt.frame); got != tt.want {
			t.Errorf("ContentWidth(%d) = %d, want %d", tt.frame, got, tt.want)
		}
	}
}

func TestButton_SelectedIsMarked(t *testing.T) {
	if !strings.Contains(button("Start", buttonSelected, 20), "▸ Start") {
		t.Error("selected button lacks marker")
	}
	if strings.Contains(button("Start", buttonIdle, 20), "▸") {
		t.Error("idle button has marker")
	}
	if !strings.Contains(button("Start", buttonDisabled, 20), "Start") {
		t.Error("disabled button lost its label")
	}
}
