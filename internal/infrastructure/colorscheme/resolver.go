// Package colorscheme resolves whether internal pages render dark or light.
package colorscheme

import (
	"sort"
	"sync"

	"github.com/twilight/weaver/internal/application/port"
	"github.com/twilight/weaver/internal/infrastructure/config"
)

const (
	sourceFallback = "fallback"
	sourceConfig   = "config"
)

// Resolver applies the appearance.color_scheme setting, consulting the
// registered detectors when it is "default".
type Resolver struct {
	mu        sync.RWMutex
	scheme    config.ColorScheme
	detectors []port.ColorSchemeDetector
}

var _ port.ColorSchemeResolver = (*Resolver)(nil)

// NewResolver creates a resolver for the configured scheme.
func NewResolver(scheme config.ColorScheme) *Resolver {
	return &Resolver{scheme: scheme}
}

// NewDefaultResolver creates a resolver with the environment, gsettings and
// terminal detectors registered.
func NewDefaultResolver(scheme config.ColorScheme) *Resolver {
	r := NewResolver(scheme)
	r.RegisterDetector(NewEnvDetector())
	r.RegisterDetector(NewGsettingsDetector())
	r.RegisterDetector(NewTerminalDetector())
	return r
}

// Resolve returns the effective preference. Dark wins when nothing can tell.
func (r *Resolver) Resolve() port.ColorSchemePreference {
	r.mu.RLock()
	defer r.mu.RUnlock()

	switch r.scheme {
	case config.ThemePreferDark:
		return port.ColorSchemePreference{PrefersDark: true, Source: sourceConfig}
	case config.ThemePreferLight:
		return port.ColorSchemePreference{PrefersDark: false, Source: sourceConfig}
	}

	sorted := make([]port.ColorSchemeDetector, len(r.detectors))
	copy(sorted, r.detectors)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority() > sorted[j].Priority()
	})

	for _, detector := range sorted {
		if !detector.Available() {
			continue
		}
		if prefersDark, ok := detector.Detect(); ok {
			return port.ColorSchemePreference{PrefersDark: prefersDark, Source: detector.Name()}
		}
	}

	return port.ColorSchemePreference{PrefersDark: true, Source: sourceFallback}
}

// RegisterDetector adds a detector.
func (r *Resolver) RegisterDetector(detector port.ColorSchemeDetector) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.detectors = append(r.detectors, detector)
}

// SetScheme replaces the configured scheme, e.g. after a settings reload.
func (r *Resolver) SetScheme(scheme config.ColorScheme) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.scheme = scheme
}
