package theme

func GetPredefinedThemes() map[string]*Theme {
	return map[string]*Theme{
		"default": DefaultTheme(),
		"dark":    DarkTheme(),
		"light":   LightTheme(),
		"dracula": DraculaTheme(),
		"nord":    NordTheme(),
		"gruvbox": GruvboxTheme(),
	}
}

func GetThemeNames() []string {
	return []string{
		"default",
		"dark",
		"light",
		"dracula",
		"nord",
		"gruvbox",
	}
}

func DefaultTheme() *Theme {
	return &Theme{
		Name: "default",

		// semantic
		Primary:   "#7D56F4",
		Secondary: "#8aa4eb",
		Success:   "#04B575",
		Error:     "#FF0000",
		Warning:   "#FF8800",
		Info:      "#0088FF",

		// text
		TextPrimary:   "#FAFAFA",
		TextSecondary: "#888888",
		TextMuted:     "#6C6C6C",

		// background
		BgPrimary:   "#000000",
		BgSecondary: "#1a1a1a",

		// rating buckets
		RatingHigh:   "#04B575",
		RatingMedium: "#FFD700",
		RatingLow:    "#FF8800",
		Unrated:      "#6C6C6C",

		// UI element
		BorderColor:  "#7D56F4",
		SelectedBg:   "#7D56F4",
		SelectedFg:   "#FAFAFA",
		HeaderBg:     "#7D56F4",
		HeaderFg:     "#FAFAFA",
		Separator:    "#444444",
		HelpText:     "#626262",
		SubtitleText: "#888888",
	}
}

func DarkTheme() *Theme {
	return &Theme{
		Name: "dark",

		Primary:   "#BB86FC",
		Secondary: "#03DAC6",
		Success:   "#00C853",
		Error:     "#CF6679",
		Warning:   "#FFB74D",
		Info:      "#64B5F6",

		TextPrimary:   "#E0E0E0",
		TextSecondary: "#A0A0A0",
		TextMuted:     "#616161",

		BgPrimary:   "#121212",
		BgSecondary: "#1E1E1E",

		RatingHigh:   "#00C853",
		RatingMedium: "#FFB74D",
		RatingLow:    "#CF6679",
		Unrated:      "#616161",

		BorderColor:  "#BB86FC",
		SelectedBg:   "#3700B3",
		SelectedFg:   "#E0E0E0",
		HeaderBg:     "#1F1B24",
		HeaderFg:     "#BB86FC",
		Separator:    "#2C2C2C",
		HelpText:     "#757575",
		SubtitleText: "#A0A0A0",
	}
}

func LightTheme() *Theme {
	return &Theme{
		Name: "light",

		Primary:   "#6200EE",
		Secondary: "#018786",
		Success:   "#2E7D32",
		Error:     "#B00020",
		Warning:   "#E65100",
		Info:      "#1565C0",

		TextPrimary:   "#212121",
		TextSecondary: "#5F6368",
		TextMuted:     "#9E9E9E",

		BgPrimary:   "#FFFFFF",
		BgSecondary: "#F5F5F5",

		RatingHigh:   "#2E7D32",
		RatingMedium: "#F9A825",
		RatingLow:    "#E65100",
		Unrated:      "#9E9E9E",

		BorderColor:  "#6200EE",
		SelectedBg:   "#6200EE",
		SelectedFg:   "#FFFFFF",
		HeaderBg:     "#EDE7F6",
		HeaderFg:     "#6200EE",
		Separator:    "#E0E0E0",
		HelpText:     "#757575",
		SubtitleText: "#5F6368",
	}
}

func DraculaTheme() *Theme {
	return &Theme{
		Name: "dracula",

		Primary:   "#BD93F9",
		Secondary: "#8BE9FD",
		Success:   "#50FA7B",
		Error:     "#FF5555",
		Warning:   "#FFB86C",
		Info:      "#8BE9FD",

		TextPrimary:   "#F8F8F2",
		TextSecondary: "#BFBFBF",
		TextMuted:     "#6272A4",

		BgPrimary:   "#282A36",
		BgSecondary: "#44475A",

		RatingHigh:   "#50FA7B",
		RatingMedium: "#F1FA8C",
		RatingLow:    "#FFB86C",
		Unrated:      "#6272A4",

		BorderColor:  "#BD93F9",
		SelectedBg:   "#44475A",
		SelectedFg:   "#F8F8F2",
		HeaderBg:     "#44475A",
		HeaderFg:     "#BD93F9",
		Separator:    "#6272A4",
		HelpText:     "#6272A4",
		SubtitleText: "#BFBFBF",
	}
}

func NordTheme() *Theme {
	return &Theme{
		Name: "nord",

		Primary:   "#88C0D0",
		Secondary: "#81A1C1",
		Success:   "#A3BE8C",
		Error:     "#BF616A",
		Warning:   "#D08770",
		Info:      "#5E81AC",

		TextPrimary:   "#ECEFF4",
		TextSecondary: "#D8DEE9",
		TextMuted:     "#4C566A",

		BgPrimary:   "#2E3440",
		BgSecondary: "#3B4252",

		RatingHigh:   "#A3BE8C",
		RatingMedium: "#EBCB8B",
		RatingLow:    "#D08770",
		Unrated:      "#4C566A",

		BorderColor:  "#88C0D0",
		SelectedBg:   "#434C5E",
		SelectedFg:   "#ECEFF4",
		HeaderBg:     "#3B4252",
		HeaderFg:     "#88C0D0",
		Separator:    "#4C566A",
		HelpText:     "#4C566A",
		SubtitleText: "#D8DEE9",
	}
}

func GruvboxTheme() *Theme {
	return &Theme{
		Name: "gruvbox",

		Primary:   "#D79921",
		Secondary: "#458588",
		Success:   "#98971A",
		Error:     "#CC241D",
		Warning:   "#D65D0E",
		Info:      "#458588",

		TextPrimary:   "#EBDBB2",
		TextSecondary: "#BDAE93",
		TextMuted:     "#665C54",

		BgPrimary:   "#282828",
		BgSecondary: "#3C3836",

		RatingHigh:   "#98971A",
		RatingMedium: "#D79921",
		RatingLow:    "#D65D0E",
		Unrated:      "#665C54",

		BorderColor:  "#D79921",
		SelectedBg:   "#504945",
		SelectedFg:   "#EBDBB2",
		HeaderBg:     "#3C3836",
		HeaderFg:     "#D79921",
		Separator:    "#504945",
		HelpText:     "#665C54",
		SubtitleText: "#BDAE93",
	}
}
