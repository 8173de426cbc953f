package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome")
	Preset string `yaml:"preset"`

	// Primary accent color (used for headings, prompts, form focus)
	Accent string `yaml:"accent"`

	// Semantic colors
	Success string `yaml:"success"` // Green - confirmations
	Warning string `yaml:"warning"` // Yellow - hints
	Error   string `yaml:"error"`   // Red - failures

	// Dashboard cards
	CardBorder string `yaml:"card_border"`
	Amount     string `yaml:"amount"`

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Muted/placeholder text
	Normal string `yaml:"normal"`

	// Markdown style handed to glamour ("dark", "light", "notty", "auto")
	Markdown string `yaml:"markdown"`
}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	default:
		return Default()
	}
}

// ApplyDefaults fills in missing color values using the preset as base
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)

	fill := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}
	fill(&c.Accent, preset.Accent)
	fill(&c.Success, preset.Success)
	fill(&c.Warning, preset.Warning)
	fill(&c.Error, preset.Error)
	fill(&c.CardBorder, preset.CardBorder)
	fill(&c.Amount, preset.Amount)
	fill(&c.Title, preset.Title)
	fill(&c.Subtle, preset.Subtle)
	fill(&c.Normal, preset.Normal)
	fill(&c.Markdown, preset.Markdown)
}
