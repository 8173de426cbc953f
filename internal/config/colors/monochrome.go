package colors

// Monochrome returns a black and white color scheme
func Monochrome() *ColorScheme {
	return &ColorScheme{
		Preset: "monochrome",

		Accent: "#FFFFFF",

		Success: "#FFFFFF",
		Warning: "#FFFFFF",
		Error:   "#FFFFFF",

		CardBorder: "#585858",
		Amount:     "#FFFFFF",

		Title:  "#FFFFFF",
		Subtle: "#585858",
		Normal: "#D0D0D0",

		Markdown: "notty",
	}
}
