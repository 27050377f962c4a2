package welcome

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/keizoku/internal/quiz"
	"github.com/abhisek/keizoku/internal/router"
	"github.com/abhisek/keizoku/internal/screen"
)

type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "home" }
func (s *stubScreen) Title() string                           { return "Home" }

func newWelcome() (*WelcomeScreen, *int) {
	calls := 0
	return New(func() screen.Screen {
		calls++
		return &stubScreen{}
	}), &calls
}

func advance(w *WelcomeScreen, n int) tea.Cmd {
	var cmd tea.Cmd
	for range n {
		_, cmd = w.Update(tickMsg(time.Now()))
	}
	return cmd
}

func TestRingLightsOneTypePerTick(t *testing.T) {
	w, _ := newWelcome()
	if v := w.View(100, 40); strings.Contains(v, "◆") || strings.Contains(v, tagline) {
		t.Fatal("nothing should be lit before the first tick")
	}

	advance(w, 3)
	v := w.View(100, 40)
	if got := strings.Count(v, "◆"); got != 3 {
		t.Errorf("lit marks = %d, want 3", got)
	}
	if !strings.Contains(v, quiz.Profile(quiz.TypeOrder[2]).String()) {
		t.Errorf("third type should be named:\n%s", v)
	}
	if strings.Contains(v, tagline) {
		t.Error("tagline shown before the ring is complete")
	}

	advance(w, quiz.NumTypes-3)
	v = w.View(100, 40)
	if got := strings.Count(v, "◆"); got != quiz.NumTypes {
		t.Errorf("lit marks = %d, want %d", got, quiz.NumTypes)
	}
	if !strings.Contains(v, tagline) || !strings.Contains(v, "press any key") {
		t.Error("tagline and hint should follow a complete ring")
	}
}

func TestNamesCycleAfterRing(t *testing.T) {
	w, _ := newWelcome()
	advance(w, quiz.NumTypes)
	if got, want := w.currentName(), quiz.Profile(quiz.TypeOrder[0]).String(); got != want {
		t.Errorf("name = %q, want %q", got, want)
	}
	advance(w, nameTicks)
	if got, want := w.currentName(), quiz.Profile(quiz.TypeOrder[1]).String(); got != want {
		t.Errorf("name = %q, want %q", got, want)
	}
	advance(w, nameTicks*(quiz.NumTypes-1))
	if got, want := w.currentName(), quiz.Profile(quiz.TypeOrder[0]).String(); got != want {
		t.Errorf("cycle should wrap: name = %q, want %q", got, want)
	}
}

func TestKeyPressReplacesWithHome(t *testing.T) {
	w, calls := newWelcome()
	advance(w, 2)

	_, cmd := w.Update(tea.KeyPressMsg{Code: ' '})
	if cmd == nil {
		t.Fatal("key press should leave the splash")
	}
	msg, ok := cmd().(router.NavMsg)
	if !ok || msg.Op != router.OpReplace || msg.Screen == nil {
		t.Fatalf("expected a replacement, got %#v", msg)
	}

	if _, cmd := w.Update(tea.KeyPressMsg{Code: 'b'}); cmd != nil {
		t.Error("second key press should do nothing")
	}
	if advance(w, 1) != nil {
		t.Error("ticks should stop after leaving")
	}
	if *calls != 1 {
		t.Errorf("home built %d times, want 1", *calls)
	}
}

func TestNoAutoTransition(t *testing.T) {
	w, calls := newWelcome()
	if advance(w, 100) == nil {
		t.Error("animation should keep ticking")
	}
	if *calls != 0 {
		t.Errorf("home built %d times without a key press", *calls)
	}
	if w.Title() != "" {
		t.Errorf("Title = %q, want empty", w.Title())
	}
}

func TestBannerCompact(t *testing.T) {
	if !strings.Contains(RenderBanner(40), bannerCompact) {
		t.Error("narrow terminals should get the compact banner")
	}
}
