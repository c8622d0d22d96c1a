package router

// DefaultAppName is shown when the caller does not supply one.
const DefaultAppName = "Weaver"

// Palette holds the color tokens of a page theme.
type Palette struct {
	Background string
	Surface    string
	Text       string
	Muted      string
	Accent     string
}

var (
	darkPalette = Palette{
		Background: "#1e1e1e",
		Surface:    "#2a2a2a",
		Text:       "#f2f2f2",
		Muted:      "#9a9996",
		Accent:     "#78aeed",
	}
	lightPalette = Palette{
		Background: "#fafafa",
		Surface:    "#ffffff",
		Text:       "#2e3436",
		Muted:      "#5e5c64",
		Accent:     "#1c71d8",
	}
)

// PaletteFor returns the dark or light palette.
func PaletteFor(dark bool) Palette {
	if dark {
		return darkPalette
	}
	return lightPalette
}

// Fonts overrides the families and base size used by internal pages.
type Fonts struct {
	Sans      string
	Serif     string
	Monospace string
	Size      int
}

func (f Fonts) withDefaults() Fonts {
	if f.Sans == "" {
		f.Sans = "sans-serif"
	}
	if f.Serif == "" {
		f.Serif = "serif"
	}
	if f.Monospace == "" {
		f.Monospace = "monospace"
	}
	if f.Size <= 0 {
		f.Size = 16
	}
	return f
}

// AboutMeta is the application information shown on the about page.
type AboutMeta struct {
	Description string
	Developer   string
	Copyright   string
	License     string
	Website     string
	AppID       string
}

// About returns the application information.
func About() AboutMeta {
	return AboutMeta{
		Description: "A simple web browser built on GTK4, libadwaita and WebKitGTK.",
		Developer:   "RedVelvetCake11",
		Copyright:   "© Twilight, Inc",
		License:     "GPL-3.0",
		Website:     "https://rvc11.is-a.dev/weaver",
		AppID:       "org.twilight.weaver",
	}
}
