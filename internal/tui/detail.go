package tui

import (
	"log/slog"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/leadboard/internal/models"
	"github.com/thenoetrevino/leadboard/internal/render"
	"github.com/thenoetrevino/leadboard/internal/tui/state"
)

// detailStyle is fixed so glamour never queries the terminal while the
// program owns it.
const detailStyle = "dark"

// detailView is the read-only lead card opened by activating a card.
type detailView struct {
	lead *models.Lead
	vp   viewport.Model
}

func newDetailView(l *models.Lead, width, height int) *detailView {
	d := &detailView{lead: l, vp: viewport.New()}
	d.resize(width, height)
	return d
}

func (d *detailView) resize(width, height int) {
	w := max(width*2/3, 40)
	h := max(height*2/3, 10)
	d.vp.SetWidth(w)
	d.vp.SetHeight(h)

	content, err := render.Lead(d.lead, w-2, detailStyle)
	if err != nil {
		slog.Warn("falling back to raw markdown", "lead", d.lead.ID, "error", err)
		content = render.Markdown(d.lead)
	}
	d.vp.SetContent(content)
}

func (m Model) updateDetail(msg tea.KeyPressMsg) tea.Cmd {
	if key.Matches(msg, m.keys.Cancel, m.keys.Open, m.keys.Quit) {
		m.modals.detail = nil
		m.ui.SetMode(state.BoardMode)
		return nil
	}

	var cmd tea.Cmd
	m.modals.detail.vp, cmd = m.modals.detail.vp.Update(msg)
	return cmd
}
