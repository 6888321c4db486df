package tui

import (
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"

	"github.com/thenoetrevino/leadboard/internal/config/colors"
	"github.com/thenoetrevino/leadboard/internal/models"
	"github.com/thenoetrevino/leadboard/internal/notify"
	leadservice "github.com/thenoetrevino/leadboard/internal/services/lead"
	"github.com/thenoetrevino/leadboard/internal/tui/state"
)

const notesLimit = 2000

// createForm collects a new lead. Its stage starts at the column the add
// action came from.
type createForm struct {
	form *huh.Form

	name     string
	phone    string
	email    string
	address  string
	source   string
	notes    string
	estimate string
	status   models.Status
	priority models.Priority
}

func newCreateForm(status models.Status, scheme colors.ColorScheme) *createForm {
	f := &createForm{status: status, priority: models.DefaultPriority}

	statusOptions := make([]huh.Option[models.Status], 0, len(models.Statuses()))
	for _, s := range models.Statuses() {
		statusOptions = append(statusOptions, huh.NewOption(s.Title(), s))
	}
	priorityOptions := make([]huh.Option[models.Priority], 0, len(models.Priorities()))
	for _, p := range models.Priorities() {
		priorityOptions = append(priorityOptions, huh.NewOption(string(p), p))
	}

	f.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("name").
				Title("Name").
				Placeholder("Customer name...").
				Validate(validateName).
				Value(&f.name),
			huh.NewInput().
				Key("phone").
				Title("Phone").
				Value(&f.phone),
			huh.NewInput().
				Key("email").
				Title("Email").
				Value(&f.email),
			huh.NewInput().
				Key("address").
				Title("Address").
				Value(&f.address),
		),
		huh.NewGroup(
			huh.NewSelect[models.Status]().
				Key("status").
				Title("Stage").
				Options(statusOptions...).
				Value(&f.status),
			huh.NewSelect[models.Priority]().
				Key("priority").
				Title("Priority").
				Options(priorityOptions...).
				Value(&f.priority),
			huh.NewInput().
				Key("estimate").
				Title("Estimate").
				Placeholder("1250.00").
				Validate(validateEstimate).
				Value(&f.estimate),
			huh.NewInput().
				Key("source").
				Title("Source").
				Placeholder("Website, referral, yard sign...").
				Value(&f.source),
			huh.NewText().
				Key("notes").
				Title("Notes").
				CharLimit(notesLimit).
				Lines(3).
				Value(&f.notes),
		),
	).WithTheme(formTheme(scheme))

	return f
}

func validateName(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("name is required")
	}
	return nil
}

func validateEstimate(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	_, err := models.ParseCents(s)
	return err
}

// request turns the answers into a create request.
func (f *createForm) request() (leadservice.CreateLeadRequest, error) {
	var cents int64
	if strings.TrimSpace(f.estimate) != "" {
		var err error
		if cents, err = models.ParseCents(f.estimate); err != nil {
			return leadservice.CreateLeadRequest{}, err
		}
	}
	return leadservice.CreateLeadRequest{
		Name:          strings.TrimSpace(f.name),
		Status:        f.status,
		Email:         strings.TrimSpace(f.email),
		Phone:         strings.TrimSpace(f.phone),
		Address:       strings.TrimSpace(f.address),
		Source:        strings.TrimSpace(f.source),
		Notes:         f.notes,
		Priority:      f.priority,
		EstimateCents: cents,
	}, nil
}

// updateForm forwards msg to the open form. Esc abandons it.
func (m Model) updateForm(msg tea.Msg) tea.Cmd {
	f := m.modals.form
	if f == nil {
		m.ui.SetMode(state.BoardMode)
		return nil
	}

	if kp, ok := msg.(tea.KeyPressMsg); ok && kp.String() == "esc" {
		m.closeForm()
		return nil
	}

	model, cmd := f.form.Update(msg)
	if form, ok := model.(*huh.Form); ok {
		f.form = form
	}

	switch f.form.State {
	case huh.StateCompleted:
		m.closeForm()
		req, err := f.request()
		if err != nil {
			m.notes.Add(notify.LevelError, fmt.Sprintf("Could not add lead: %v", err))
			return nil
		}
		return m.create(req)
	case huh.StateAborted:
		m.closeForm()
		return nil
	}
	return cmd
}

func (m Model) closeForm() {
	m.modals.form = nil
	m.ui.SetMode(state.BoardMode)
}
