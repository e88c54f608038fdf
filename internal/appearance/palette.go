package appearance

// Palette describes named color and font roles for a visual treatment.
type Palette struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	Type        string            `json:"type"` // "dark", "light", "custom"
	Colors      map[string]string `json:"colors"`
	Fonts       map[string]string `json:"fonts,omitempty"`
}

// Dark returns the default dark palette.
func Dark() Palette {
	return Palette{
		ID:          "dark",
		Name:        "Dark",
		Description: "Default dark palette",
		Type:        "dark",
		Colors: map[string]string{
			"background": "#1a1a1a",
			"surface":    "#252525",
			"primary":    "#3b82f6",
			"accent":     "#10b981",
			"text":       "#ffffff",
			"textMuted":  "#a0a0a0",
			"border":     "#404040",
		},
		Fonts: map[string]string{
			"sans": "Inter, system-ui, sans-serif",
			"mono": "JetBrains Mono, monospace",
		},
	}
}

// Light returns the default light palette.
func Light() Palette {
	return Palette{
		ID:          "light",
		Name:        "Light",
		Description: "Default light palette",
		Type:        "light",
		Colors: map[string]string{
			"background": "#ffffff",
			"surface":    "#f5f5f5",
			"primary":    "#3b82f6",
			"accent":     "#10b981",
			"text":       "#1a1a1a",
			"textMuted":  "#666666",
			"border":     "#e0e0e0",
		},
		Fonts: map[string]string{
			"sans": "Inter, system-ui, sans-serif",
			"mono": "JetBrains Mono, monospace",
		},
	}
}

// HighContrast returns the accessibility palette.
func HighContrast() Palette {
	return Palette{
		ID:          "high-contrast",
		Name:        "High Contrast",
		Description: "High contrast palette for accessibility",
		Type:        "dark",
		Colors: map[string]string{
			"background": "#000000",
			"surface":    "#1a1a1a",
			"primary":    "#00ffff",
			"accent":     "#00ff00",
			"text":       "#ffffff",
			"textMuted":  "#cccccc",
			"border":     "#ffffff",
		},
		Fonts: map[string]string{
			"sans": "Inter, system-ui, sans-serif",
			"mono": "JetBrains Mono, monospace",
		},
	}
}
