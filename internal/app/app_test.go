package app

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/keizoku/internal/diagnosis"
	"github.com/abhisek/keizoku/internal/router"
	"github.com/abhisek/keizoku/internal/screens/diagnose"
	"github.com/abhisek/keizoku/internal/screens/home"
)

func testModel() AppModel {
	m := newAppModel(Options{Classifier: diagnosis.NewClassifier(nil, diagnosis.DefaultConfig())})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return next.(AppModel)
}

// run delivers msg and then every message produced by the returned
// commands that the router understands.
func run(m AppModel, msg tea.Msg) AppModel {
	next, cmd := m.Update(msg)
	m = next.(AppModel)
	for cmd != nil {
		out := cmd()
		switch out.(type) {
		case router.NavMsg:
			next, cmd = m.Update(out)
			m = next.(AppModel)
		default:
			cmd = nil
		}
	}
	return m
}

func TestApp_SplashThenHome(t *testing.T) {
	m := testModel()
	m = run(m, tea.KeyPressMsg{Code: ' '})
	if _, ok := m.router.Active().(*home.HomeScreen); !ok {
		t.Fatalf("active = %T, want home", m.router.Active())
	}
	if !strings.Contains(m.render(), "START DIAGNOSIS") {
		t.Error("home view should list the menu")
	}
}

func TestApp_EscDuringQuizOpensConfirm(t *testing.T) {
	m := testModel()
	m = run(m, tea.KeyPressMsg{Code: ' '})
	m = run(m, tea.KeyPressMsg{Code: tea.KeyEnter})

	if _, ok := m.router.Active().(*diagnose.DiagnoseScreen); !ok {
		t.Fatalf("active = %T, want diagnosis", m.router.Active())
	}

	m = run(m, tea.KeyPressMsg{Code: tea.KeyEscape})
	if m.router.Depth() != 2 {
		t.Fatalf("Esc popped the quiz; depth = %d", m.router.Depth())
	}
	if !strings.Contains(m.render(), "Quit the diagnosis?") {
		t.Error("expected the quit confirmation")
	}

	m = run(m, tea.KeyPressMsg{Code: 'y', Text: "y"})
	if m.router.Depth() != 1 {
		t.Errorf("depth = %d after confirming quit, want 1", m.router.Depth())
	}
}

func TestApp_EscPopsTypes(t *testing.T) {
	m := testModel()
	m = run(m, tea.KeyPressMsg{Code: ' '})
	m = run(m, tea.KeyPressMsg{Code: tea.KeyDown})
	m = run(m, tea.KeyPressMsg{Code: tea.KeyEnter})
	if m.router.Depth() != 2 {
		t.Fatalf("depth = %d, want 2", m.router.Depth())
	}
	m = run(m, tea.KeyPressMsg{Code: tea.KeyEscape})
	if m.router.Depth() != 1 {
		t.Errorf("depth = %d after Esc, want 1", m.router.Depth())
	}
}

func TestApp_TooSmall(t *testing.T) {
	m := newAppModel(Options{})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	if !strings.Contains(next.(AppModel).render(), "needs at least") {
		t.Error("expected the min-size message")
	}
}

func TestApp_CtrlCQuits(t *testing.T) {
	m := testModel()
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}
