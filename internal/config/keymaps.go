package config

// KeyMappings defines all configurable key bindings. Arrow keys always
// navigate in addition to these.
type KeyMappings struct {
	// Leads
	AddLead      string `yaml:"add_lead"`
	OpenLead     string `yaml:"open_lead"`
	PickUp       string `yaml:"pick_up"`
	CancelDrag   string `yaml:"cancel_drag"`
	RefreshBoard string `yaml:"refresh_board"`

	// Navigation
	PrevColumn string `yaml:"prev_column"`
	NextColumn string `yaml:"next_column"`
	PrevLead   string `yaml:"prev_lead"`
	NextLead   string `yaml:"next_lead"`

	// Other
	DismissNotification string `yaml:"dismiss_notification"`
	ShowHelp            string `yaml:"show_help"`
	Quit                string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		AddLead:      "a",
		OpenLead:     "enter",
		PickUp:       "space",
		CancelDrag:   "esc",
		RefreshBoard: "r",

		PrevColumn: "h",
		NextColumn: "l",
		PrevLead:   "k",
		NextLead:   "j",

		DismissNotification: "x",
		ShowHelp:            "?",
		Quit:                "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	d := DefaultKeyMappings()
	for _, f := range [][2]*string{
		{&k.AddLead, &d.AddLead},
		{&k.OpenLead, &d.OpenLead},
		{&k.PickUp, &d.PickUp},
		{&k.CancelDrag, &d.CancelDrag},
		{&k.RefreshBoard, &d.RefreshBoard},
		{&k.PrevColumn, &d.PrevColumn},
		{&k.NextColumn, &d.NextColumn},
		{&k.PrevLead, &d.PrevLead},
		{&k.NextLead, &d.NextLead},
		{&k.DismissNotification, &d.DismissNotification},
		{&k.ShowHelp, &d.ShowHelp},
		{&k.Quit, &d.Quit},
	} {
		if *f[0] == "" {
			*f[0] = *f[1]
		}
	}
}
