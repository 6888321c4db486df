package tui

import (
	"charm.land/huh/v2"
	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/leadboard/internal/config/colors"
	"github.com/thenoetrevino/leadboard/internal/notify"
)

// styles is every lipgloss style the board uses, derived from one scheme.
type styles struct {
	Header     lipgloss.Style
	Subtle     lipgloss.Style
	Column     lipgloss.Style
	DropColumn lipgloss.Style
	ColumnHead lipgloss.Style

	Card      lipgloss.Style
	Selected  lipgloss.Style
	Ghost     lipgloss.Style
	GhostText lipgloss.Style
	Overlay   lipgloss.Style
	Pending   lipgloss.Style
	Name      lipgloss.Style
	Meta      lipgloss.Style

	Modal lipgloss.Style

	notices map[notify.Level]noticeStyle
}

type noticeStyle struct {
	icon  string
	title string
	box   lipgloss.Style
	head  lipgloss.Style
}

func newStyles(c colors.ColorScheme) styles {
	border := lipgloss.RoundedBorder()

	card := lipgloss.NewStyle().
		Border(border).
		BorderForeground(lipgloss.Color(c.CardBorder)).
		Background(lipgloss.Color(c.CardBackground))

	notice := func(icon, title, fg, bg string) noticeStyle {
		return noticeStyle{
			icon:  icon,
			title: title,
			box: lipgloss.NewStyle().
				Border(border).
				BorderForeground(lipgloss.Color(bg)).
				Foreground(lipgloss.Color(fg)).
				Padding(0, 1),
			head: lipgloss.NewStyle().
				Foreground(lipgloss.Color(fg)).
				Bold(true),
		}
	}

	return styles{
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(c.Accent)),
		Subtle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.Subtle)),
		Column: lipgloss.NewStyle().
			Border(border).
			BorderForeground(lipgloss.Color(c.ColumnBorder)),
		DropColumn: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(lipgloss.Color(c.DropTarget)),
		ColumnHead: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(c.Title)),

		Card:     card,
		Selected: card.BorderForeground(lipgloss.Color(c.SelectedBorder)),
		Ghost: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color(c.Ghost)).
			Foreground(lipgloss.Color(c.Ghost)).
			Faint(true),
		GhostText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.Ghost)).
			Faint(true),
		Overlay: card.
			Border(lipgloss.ThickBorder()).
			BorderForeground(lipgloss.Color(c.DropTarget)),
		Pending: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.Pending)),
		Name: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(c.Normal)),
		Meta: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.Subtle)),

		Modal: lipgloss.NewStyle().
			Border(border).
			BorderForeground(lipgloss.Color(c.Accent)).
			Padding(1, 2),

		notices: map[notify.Level]noticeStyle{
			notify.LevelInfo:    notice("🔔", "Info", c.InfoFg, c.InfoBg),
			notify.LevelWarning: notice("⚠", "Warning", c.WarningFg, c.WarningBg),
			notify.LevelError:   notice("✕", "Error", c.ErrorFg, c.ErrorBg),
		},
	}
}

func (s styles) notice(level notify.Level) noticeStyle {
	if ns, ok := s.notices[level]; ok {
		return ns
	}
	return s.notices[notify.LevelInfo]
}

// formTheme matches huh forms to the board colors.
func formTheme(c colors.ColorScheme) huh.Theme {
	return huh.ThemeFunc(func(isDark bool) *huh.Styles {
		t := huh.ThemeBase(isDark)

		accent := lipgloss.Color(c.Accent)
		subtle := lipgloss.Color(c.Subtle)
		normal := lipgloss.Color(c.Normal)
		errorColor := lipgloss.Color(c.ErrorFg)
		title := lipgloss.Color(c.Title)

		t.Focused.Base = t.Focused.Base.BorderForeground(accent)
		t.Focused.Title = t.Focused.Title.Foreground(title).Bold(true)
		t.Focused.Description = t.Focused.Description.Foreground(subtle)
		t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(errorColor)
		t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(errorColor)
		t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(accent)
		t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(accent)
		t.Focused.UnselectedOption = t.Focused.UnselectedOption.Foreground(normal)
		t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(accent)
		t.Focused.TextInput.Placeholder = t.Focused.TextInput.Placeholder.Foreground(subtle)
		t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(accent)

		t.Blurred = t.Focused
		t.Blurred.Base = t.Blurred.Base.BorderStyle(lipgloss.HiddenBorder())
		t.Blurred.Title = t.Blurred.Title.Foreground(subtle)

		return t
	})
}
