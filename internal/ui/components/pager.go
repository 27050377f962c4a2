package components

import (
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
)

// Pager is a scrollable block of text that is re-rendered whenever the
// available width changes.
type Pager struct {
	vp     viewport.Model
	render func(width int) string
	width  int
}

// NewPager creates a pager whose content is produced by render.
func NewPager(render func(width int) string) Pager {
	return Pager{
		vp:     viewport.New(),
		render: render,
	}
}

// Update forwards scroll keys and mouse wheel events to the viewport.
func (p Pager) Update(msg tea.Msg) (Pager, tea.Cmd) {
	var cmd tea.Cmd
	p.vp, cmd = p.vp.Update(msg)
	return p, cmd
}

// View sizes the pager to width x height and renders the visible lines.
func (p *Pager) View(width, height int) string {
	if width != p.width {
		p.width = width
		p.vp.SetWidth(width)
		p.vp.SetContent(p.render(width))
	}
	p.vp.SetHeight(height)
	return p.vp.View()
}

// AtBottom reports whether the last line is visible.
func (p Pager) AtBottom() bool {
	return p.vp.AtBottom()
}

// ScrollPercent returns how far the pager is scrolled, in [0,1].
func (p Pager) ScrollPercent() float64 {
	return p.vp.ScrollPercent()
}
