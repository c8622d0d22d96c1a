package port

// ColorSchemePreference is the resolved light/dark choice for internal pages.
type ColorSchemePreference struct {
	PrefersDark bool
	// Source names the detector that decided; "config" for an explicit
	// setting and "fallback" when nothing could tell.
	Source string
}

// ColorSchemeDetector reports the desktop's light/dark preference.
type ColorSchemeDetector interface {
	Name() string

	// Priority orders detectors; higher values are consulted first.
	Priority() int

	// Available reports whether the detector can run in this environment.
	Available() bool

	// Detect returns the preference, with ok false when it cannot tell.
	Detect() (prefersDark bool, ok bool)
}

// ColorSchemeResolver combines the appearance setting with system detectors.
type ColorSchemeResolver interface {
	Resolve() ColorSchemePreference
	RegisterDetector(detector ColorSchemeDetector)
}
