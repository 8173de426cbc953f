package colors

// Default returns the default color scheme (purple theme)
func Default() *ColorScheme {
	return &ColorScheme{
		Preset: "default",

		Accent: "#874BFD",

		Success: "#5FD75F",
		Warning: "#FFD700",
		Error:   "#FF5F5F",

		CardBorder: "#5F87D7",
		Amount:     "#87D787",

		Title:  "#D75FD7",
		Subtle: "#585858",
		Normal: "#D0D0D0",

		Markdown: "dark",
	}
}
