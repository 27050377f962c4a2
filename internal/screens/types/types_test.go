package types

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/keizoku/internal/quiz"
	"github.com/abhisek/keizoku/internal/router"
)

func TestTypesScreen_ListsAllTypes(t *testing.T) {
	view := New().View(100, 30)
	for _, p := range quiz.Profiles() {
		if !strings.Contains(view, p.Name) || !strings.Contains(view, p.LocalName) {
			t.Errorf("view missing %s", p)
		}
	}
}

func TestTypesScreen_NavigationClamped(t *testing.T) {
	s := New()
	s.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if s.cursor != 0 {
		t.Errorf("cursor = %d, want 0", s.cursor)
	}
	for i := 0; i < 20; i++ {
		s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	if s.cursor != quiz.NumTypes-1 {
		t.Errorf("cursor = %d, want %d", s.cursor, quiz.NumTypes-1)
	}
}

func TestTypesScreen_EnterPushesDetail(t *testing.T) {
	s := New()
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on Enter")
	}
	msg, ok := cmd().(router.NavMsg)
	if !ok || msg.Op != router.OpPush {
		t.Fatalf("expected a push, got %#v", msg)
	}
	d, ok := msg.Screen.(*DetailScreen)
	if !ok {
		t.Fatalf("pushed %T, want *DetailScreen", msg.Screen)
	}
	if d.Title() != "Analyzer (分析者型)" {
		t.Errorf("detail title = %q", d.Title())
	}
}

func TestDetailScreen_View(t *testing.T) {
	p, _ := quiz.LookupType("stabilizer")
	view := NewDetail(p).View(100, 60)
	for _, want := range []string{p.Name, "Strengths", "Recommended roles", "Growth points", p.Strengths[0]} {
		if !strings.Contains(view, want) {
			t.Errorf("detail view missing %q", want)
		}
	}
}

func TestRenderProfile_Nil(t *testing.T) {
	if RenderProfile(nil, 80) != "" {
		t.Error("nil profile should render empty")
	}
}

func TestTruncate(t *testing.T) {
	got := truncate("Excels at setting goals", 10)
	if lipgloss.Width(got) > 10 || !strings.HasSuffix(got, "…") {
		t.Errorf("truncate = %q", got)
	}
}
