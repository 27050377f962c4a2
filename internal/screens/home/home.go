package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/keizoku/internal/router"
	"github.com/abhisek/keizoku/internal/screen"
	"github.com/abhisek/keizoku/internal/screens/diagnose"
	"github.com/abhisek/keizoku/internal/screens/history"
	"github.com/abhisek/keizoku/internal/screens/types"
	"github.com/abhisek/keizoku/internal/screens/welcome"
	sess "github.com/abhisek/keizoku/internal/session"
	"github.com/abhisek/keizoku/internal/ui/components"
	"github.com/abhisek/keizoku/internal/ui/theme"
)

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 28

// Options carries the dependencies of the screens reachable from home.
type Options struct {
	Classifier sess.Classifier

	// History is nil when no event store is open; the menu entry is then
	// disabled.
	History history.ClassificationLog

	// Model names the LLM used for classification, empty when only the
	// local scorer is available.
	Model string

	Logger *zap.Logger
}

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	menu  components.Menu
	model string
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.StatusProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(opts Options) *HomeScreen {
	push := func(factory func() screen.Screen) func() tea.Cmd {
		return func() tea.Cmd { return router.Push(factory()) }
	}

	items := []components.MenuItem{
		{Label: "START DIAGNOSIS", Key: "s", Hint: "Ten statements, rated 1 to 5", Action: push(func() screen.Screen {
			return diagnose.New(opts.Classifier, opts.Logger)
		})},
		{Label: "BROWSE TYPES", Key: "t", Hint: "Read about all eight types", Action: push(func() screen.Screen {
			return types.New()
		})},
		{Label: "HISTORY", Key: "h", Hint: "Your past results", Action: push(func() screen.Screen {
			return history.New(opts.History)
		})},
		{Label: "EXIT", Key: "q", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
	if opts.History == nil {
		items[2].Disabled = true
		items[2].Hint = "no result store open"
	}

	return &HomeScreen{
		menu:  components.NewMenu(items),
		model: opts.Model,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) Title() string {
	return "Home"
}

// Status names the classifier in use.
func (h *HomeScreen) Status() string {
	if h.model == "" {
		return "local scoring"
	}
	return h.model
}

func (h *HomeScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	sections := []string{
		welcome.RenderBanner(cw),
		lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Foreground(theme.Text).
			Render("Ten questions. Eight ways of keeping going."),
	}

	if h.model == "" {
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.Accent).
			Width(cw).
			Align(lipgloss.Center).
			Render("⚠ No LLM API key set: results use local scoring (see keizoku --help)"))
	}

	sections = append(sections, h.menu.View(buttonWidth, cw))

	return components.Frame(strings.Join(sections, "\n\n"), width, height)
}
