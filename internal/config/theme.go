package config

// Theme defines the configurable TUI colors
type Theme struct {
	// Preset name ("default" or "monochrome")
	Preset string `yaml:"preset"`

	Accent string `yaml:"accent"` // title and cursor
	Subtle string `yaml:"subtle"` // completed tasks, help line
	Normal string `yaml:"normal"`
	Error  string `yaml:"error"`
}

// DefaultTheme returns the default purple theme
func DefaultTheme() Theme {
	return Theme{
		Preset: "default",
		Accent: "#874BFD",
		Subtle: "#585858",
		Normal: "#D0D0D0",
		Error:  "#FF0000",
	}
}

// MonochromeTheme returns a black and white theme
func MonochromeTheme() Theme {
	return Theme{
		Preset: "monochrome",
		Accent: "#FFFFFF",
		Subtle: "#808080",
		Normal: "#D0D0D0",
		Error:  "#FFFFFF",
	}
}

// ThemePreset returns a preset by name, falling back to the default
func ThemePreset(name string) Theme {
	if name == "monochrome" {
		return MonochromeTheme()
	}
	return DefaultTheme()
}

// ApplyDefaults fills missing colors from the selected preset
func (t *Theme) ApplyDefaults() {
	preset := ThemePreset(t.Preset)

	if t.Preset == "" {
		t.Preset = preset.Preset
	}
	if t.Accent == "" {
		t.Accent = preset.Accent
	}
	if t.Subtle == "" {
		t.Subtle = preset.Subtle
	}
	if t.Normal == "" {
		t.Normal = preset.Normal
	}
	if t.Error == "" {
		t.Error = preset.Error
	}
}

// MergeFrom overrides colors with the non-empty values of other
func (t *Theme) MergeFrom(other Theme) {
	if other.Preset != "" {
		t.Preset = other.Preset
	}
	if other.Accent != "" {
		t.Accent = other.Accent
	}
	if other.Subtle != "" {
		t.Subtle = other.Subtle
	}
	if other.Normal != "" {
		t.Normal = other.Normal
	}
	if other.Error != "" {
		t.Error = other.Error
	}
}
