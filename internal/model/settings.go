package model

// Theme selects the application color scheme.
type Theme string

const (
	// ThemeLight forces the light color scheme.
	ThemeLight Theme = "light"
	// ThemeDark forces the dark color scheme.
	ThemeDark Theme = "dark"
	// ThemeSystem follows the platform preference.
	ThemeSystem Theme = "system"
)

// Settings is the singleton user preferences record. Updates are shallow
// merges; unset fields keep their previous values.
//
// PinCode is stored in plaintext. This mirrors the app's demo-grade PIN
// gate and is not a security boundary.
type Settings struct {
	Currency       string `json:"currency"`
	Theme          Theme  `json:"theme"`
	PinEnabled     bool   `json:"pinEnabled"`
	PinCode        string `json:"pinCode,omitempty"`
	SeenOnboarding bool   `json:"seenOnboarding,omitempty"`
}

// SettingsPatch carries a partial settings update.
type SettingsPatch struct {
	Currency       *string
	Theme          *Theme
	PinEnabled     *bool
	PinCode        *string
	SeenOnboarding *bool
}

// Apply merges the patch into s.
func (p SettingsPatch) Apply(s *Settings) {
	if p.Currency != nil {
		s.Currency = *p.Currency
	}
	if p.Theme != nil {
		s.Theme = *p.Theme
	}
	if p.PinEnabled != nil {
		s.PinEnabled = *p.PinEnabled
	}
	if p.PinCode != nil {
		s.PinCode = *p.PinCode
	}
	if p.SeenOnboarding != nil {
		s.SeenOnboarding = *p.SeenOnboarding
	}
}
