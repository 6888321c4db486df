package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/leadboard/internal/board"
	"github.com/thenoetrevino/leadboard/internal/drag"
	"github.com/thenoetrevino/leadboard/internal/notify"
	"github.com/thenoetrevino/leadboard/internal/projection"
	"github.com/thenoetrevino/leadboard/internal/tui/state"
)

// View renders the current state of the application
// This implements the "View" part of the Model-View-Update pattern
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true
	view.MouseMode = tea.MouseModeCellMotion

	if !m.ui.Sized() {
		view.Content = "Loading..."
		return view
	}
	view.Content = m.render()
	return view
}

// render draws the board and any modal on top of it.
func (m Model) render() string {
	if msg, ok := m.placeholder(); ok {
		return lipgloss.Place(m.ui.Width(), m.ui.Height(), lipgloss.Center, lipgloss.Center, msg)
	}

	pv := m.board.View()
	l := computeLayout(pv, m.ui.Width(), m.ui.Height(), m.ui.ScrollOffsets())

	layers := []*lipgloss.Layer{
		lipgloss.NewLayer(m.renderHeader(pv)),
	}
	layers = append(layers, m.columnLayers(pv, l)...)
	if ov := m.overlayLayer(pv, l); ov != nil {
		layers = append(layers, ov)
	}
	layers = append(layers, lipgloss.NewLayer(m.renderFooter()).Y(m.ui.Height()-footerHeight))
	layers = append(layers, m.noticeLayers()...)
	if modal := m.modalLayer(); modal != nil {
		layers = append(layers, modal)
	}

	return lipgloss.NewCanvas(layers...).Render()
}

// placeholder covers the states where there is no board to draw yet.
func (m Model) placeholder() (string, bool) {
	switch m.board.LoadState() {
	case board.Loading:
		if m.board.Columns().Total() == 0 {
			return m.styles.Subtle.Render("Loading leads..."), true
		}
	case board.Failed:
		if m.board.Columns().Total() == 0 {
			msg := fmt.Sprintf("Could not load leads: %v\n\nPress %s to retry, %s to quit.",
				m.board.LoadErr(), m.config.KeyMappings.RefreshBoard, m.config.KeyMappings.Quit)
			return m.styles.notice(notify.LevelError).box.Render(msg), true
		}
	}
	return "", false
}

func (m Model) renderHeader(pv projection.View) string {
	total := 0
	for _, col := range pv.Columns {
		total += col.Count
	}

	parts := []string{m.styles.Header.Render("Leadboard")}
	switch {
	case m.board.Empty():
		parts = append(parts, m.styles.Subtle.Render(
			fmt.Sprintf("No leads yet. Press %s to add one.", m.config.KeyMappings.AddLead)))
	default:
		parts = append(parts, m.styles.Subtle.Render(fmt.Sprintf("%d leads", total)))
	}
	if n := m.board.InFlight(); n > 0 {
		parts = append(parts, m.styles.Pending.Render(fmt.Sprintf("⟳ saving %d", n)))
	}
	if m.board.LoadState() == board.Loading {
		parts = append(parts, m.styles.Subtle.Render("refreshing..."))
	}
	if pv.Phase == drag.Dragging {
		parts = append(parts, m.styles.Subtle.Render("dragging: drop to move, esc to cancel"))
	}
	return strings.Join(parts, "  ")
}

func (m Model) renderFooter() string {
	return lipgloss.NewStyle().
		MaxWidth(m.ui.Width()).
		Render(m.help.ShortHelpView(m.keys.ShortHelp()))
}

// columnLayers draws each column box and its visible cards at the
// positions computed by the layout.
func (m Model) columnLayers(pv projection.View, l layout) []*lipgloss.Layer {
	var layers []*lipgloss.Layer
	for i, col := range pv.Columns {
		slot := l.Columns[i]
		layers = append(layers, lipgloss.NewLayer(m.renderColumn(col, slot)).
			X(int(slot.Rect.X)).
			Y(int(slot.Rect.Y)))
	}
	for _, c := range l.Cards {
		col := pv.Column(c.Status)
		card := col.Cards[c.Index]
		layers = append(layers, lipgloss.NewLayer(m.renderCard(card, int(c.Rect.W))).
			X(int(c.Rect.X)).
			Y(int(c.Rect.Y)).
			Z(1))
	}
	return layers
}

func (m Model) renderColumn(col projection.ColumnView, slot columnSlot) string {
	innerW := int(slot.Rect.W) - 2
	innerH := int(slot.Rect.H) - 2

	style := m.styles.Column
	if col.DropTarget {
		style = m.styles.DropColumn
	}

	count := fmt.Sprintf("%d +", col.Count)
	title := lipgloss.NewStyle().MaxWidth(max(innerW-len(count)-1, 1)).Render(col.Title)
	gap := max(innerW-lipgloss.Width(title)-lipgloss.Width(count), 1)
	heading := m.styles.ColumnHead.Render(title) + strings.Repeat(" ", gap) + m.styles.Subtle.Render(count)

	top := heading + "\n" + m.styles.Subtle.Render(strings.Repeat("─", innerW))
	more := ""
	if hidden := col.Count - (slot.First + slot.Visible); hidden > 0 {
		more = m.styles.Subtle.Render(fmt.Sprintf("+%d more", hidden))
	}

	body := lipgloss.Place(innerW, innerH-1, lipgloss.Left, lipgloss.Top, top) + "\n" +
		lipgloss.PlaceHorizontal(innerW, lipgloss.Left, more)
	return style.Render(body)
}

// renderCard draws a card of the given outer width and cardHeight rows.
func (m Model) renderCard(card projection.CardView, width int) string {
	innerW := max(width-2, 1)
	l := card.Lead

	name := lipgloss.NewStyle().MaxWidth(innerW).Render(l.Name)
	meta := l.Estimate()
	if l.EstimateCents == 0 {
		meta = "no estimate"
	}
	meta += " · " + string(l.Priority)
	if card.Pending {
		meta = "⟳ " + meta
	}
	meta = lipgloss.NewStyle().MaxWidth(innerW).Render(meta)

	style := m.styles.Card
	nameStyle, metaStyle := m.styles.Name, m.styles.Meta
	switch {
	case card.Ghost:
		style = m.styles.Ghost
		nameStyle, metaStyle = m.styles.GhostText, m.styles.GhostText
	case card.Selected:
		style = m.styles.Selected
	}
	if card.Pending && !card.Ghost {
		metaStyle = m.styles.Pending
	}

	body := lipgloss.Place(innerW, cardHeight-2, lipgloss.Left, lipgloss.Top,
		nameStyle.Render(name)+"\n"+metaStyle.Render(meta))
	return style.Render(body)
}

// overlayLayer draws the floating copy of the dragged card. Pointer drags
// follow the pointer; keyboard drags sit on the candidate slot.
func (m Model) overlayLayer(pv projection.View, l layout) *lipgloss.Layer {
	ov := pv.Overlay
	if ov == nil {
		return nil
	}

	rect := ov.Rect
	if rect.W == 0 {
		var ok bool
		if rect, ok = targetRect(l, ov.Target); !ok {
			return nil
		}
	}

	innerW := max(int(rect.W)-2, 1)
	body := lipgloss.Place(innerW, cardHeight-2, lipgloss.Left, lipgloss.Top,
		m.styles.Name.Render(lipgloss.NewStyle().MaxWidth(innerW).Render(ov.Lead.Name))+"\n"+
			m.styles.Meta.Render(ov.Lead.Estimate()))

	return lipgloss.NewLayer(m.styles.Overlay.Render(body)).
		X(max(int(rect.X), 0)).
		Y(max(int(rect.Y), 0)).
		Z(2)
}

// targetRect is the on-screen slot of a candidate location.
func targetRect(l layout, target *board.Location) (drag.Rect, bool) {
	if target == nil {
		return drag.Rect{}, false
	}
	for _, col := range l.Columns {
		if col.Status != target.Status {
			continue
		}
		row := min(max(target.Index-col.First, 0), col.Visible-1)
		return drag.Rect{
			X: col.Rect.X + 1,
			Y: col.Rect.Y + columnChrome + float64(row*cardHeight),
			W: col.Rect.W - 2,
			H: cardHeight,
		}, true
	}
	return drag.Rect{}, false
}

// noticeLayers stacks notifications in the top right corner.
func (m Model) noticeLayers() []*lipgloss.Layer {
	var layers []*lipgloss.Layer
	y := 0
	for _, n := range m.notes.All() {
		ns := m.styles.notice(n.Level)
		content := ns.box.Render(ns.head.Render(ns.icon+" "+ns.title) + "\n" + n.Message)
		x := max(m.ui.Width()-lipgloss.Width(content), 0)
		layers = append(layers, lipgloss.NewLayer(content).X(x).Y(y).Z(3))
		y += lipgloss.Height(content)
	}
	return layers
}

// modalLayer centers the open detail, form or help over the board.
func (m Model) modalLayer() *lipgloss.Layer {
	var content string
	switch m.ui.Mode() {
	case state.DetailMode:
		if m.modals.detail == nil {
			return nil
		}
		content = m.styles.Modal.Render(m.modals.detail.vp.View() + "\n" +
			m.styles.Subtle.Render(fmt.Sprintf("%s / %s to close", m.config.KeyMappings.CancelDrag, m.config.KeyMappings.OpenLead)))
	case state.FormMode:
		if m.modals.form == nil {
			return nil
		}
		content = m.styles.Modal.
			Width(max(m.ui.Width()/2, 50)).
			Render("New lead\n\n" + m.modals.form.form.View())
	case state.HelpMode:
		content = m.styles.Modal.Render("Keys\n\n" + m.help.FullHelpView(m.keys.FullHelp()))
	default:
		return nil
	}

	x := max((m.ui.Width()-lipgloss.Width(content))/2, 0)
	y := max((m.ui.Height()-lipgloss.Height(content))/2, 0)
	return lipgloss.NewLayer(content).X(x).Y(y).Z(4)
}
