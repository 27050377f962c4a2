// Package theme holds the TUI palette and shared styles.
package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/keizoku/internal/quiz"
)

// Base palette: indigo on navy with an amber accent.
var (
	Primary   = lipgloss.Color("#6366F1")
	Secondary = lipgloss.Color("#14B8A6")
	Accent    = lipgloss.Color("#F59E0B")
	Error     = lipgloss.Color("#F43F5E")
	Text      = lipgloss.Color("#F8FAFC")
	TextDim   = lipgloss.Color("#94A3B8")
	BgDark    = lipgloss.Color("#0F172A")
	BgCard    = lipgloss.Color("#1E293B")
	Border    = lipgloss.Color("#334155")
)

// typeColors gives each continuity type its own hue, used for its mark in
// lists and its heading on the result and detail screens.
var typeColors = map[quiz.TypeID]color.Color{
	quiz.Commander:   lipgloss.Color("#EF4444"),
	quiz.Analyzer:    lipgloss.Color("#3B82F6"),
	quiz.Implementer: lipgloss.Color("#10B981"),
	quiz.Creator:     lipgloss.Color("#EC4899"),
	quiz.Coordinator: lipgloss.Color("#F59E0B"),
	quiz.Stabilizer:  lipgloss.Color("#8B5CF6"),
	quiz.Finisher:    lipgloss.Color("#14B8A6"),
	quiz.Catalyst:    lipgloss.Color("#F97316"),
}

// TypeColor returns id's hue, or Primary for an unknown id.
func TypeColor(id quiz.TypeID) color.Color {
	if c, ok := typeColors[id]; ok {
		return c
	}
	return Primary
}

// TypeName renders a type's name bold in its own hue.
func TypeName(id quiz.TypeID, name string) string {
	return lipgloss.NewStyle().Foreground(TypeColor(id)).Bold(true).Render(name)
}

var (
	Body    = lipgloss.NewStyle().Foreground(Text)
	Hint    = lipgloss.NewStyle().Foreground(TextDim).Italic(true)
	Section = lipgloss.NewStyle().Foreground(Secondary).Bold(true)

	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)

	Notice = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Accent).
		Foreground(Accent).
		Padding(0, 1)

	Selected   = lipgloss.NewStyle().Foreground(Primary).Bold(true)
	Unselected = lipgloss.NewStyle().Foreground(Text)
	Highlight  = lipgloss.NewStyle().Foreground(Accent).Bold(true)
)

// Meter styles for ScoreBar; ProgressMain marks the main type.
var (
	ProgressFilled = lipgloss.NewStyle().Background(Secondary)
	ProgressEmpty  = lipgloss.NewStyle().Background(Border)
	ProgressMain   = lipgloss.NewStyle().Background(Accent)
)
