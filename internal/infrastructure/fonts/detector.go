// Package fonts queries fontconfig for installed font families.
package fonts

import (
	"bufio"
	"bytes"
	"context"
	"os/exec"
	"strings"
	"sync"

	"github.com/twilight/weaver/internal/application/port"
	"github.com/twilight/weaver/internal/logging"
)

const fcList = "fc-list"

var (
	sansCandidates = []string{"Cantarell", "Noto Sans", "DejaVu Sans", "Liberation Sans", "FreeSans"}
	serifCandidates = []string{"DejaVu Serif", "Noto Serif", "Liberation Serif", "FreeSerif"}
	monoCandidates  = []string{"DejaVu Sans Mono", "Noto Sans Mono", "Liberation Mono", "FreeMono"}
)

// Candidates returns the preferred families for category, best first.
func Candidates(category port.FontCategory) []string {
	var src []string
	switch category {
	case port.FontCategorySerif:
		src = serifCandidates
	case port.FontCategoryMonospace:
		src = monoCandidates
	default:
		src = sansCandidates
	}
	out := make([]string, len(src))
	copy(out, src)
	return out
}

// Detector implements port.FontDetector on top of fc-list.
type Detector struct {
	lookPath func(string) (string, error)
	run      func(ctx context.Context) ([]byte, error)

	mu       sync.Mutex
	families []string
	cached   bool
}

var _ port.FontDetector = (*Detector)(nil)

// NewDetector returns a detector that shells out to fc-list.
func NewDetector() *Detector {
	return &Detector{
		lookPath: exec.LookPath,
		run: func(ctx context.Context) ([]byte, error) {
			return exec.CommandContext(ctx, fcList, ":", "family").Output()
		},
	}
}

// Available reports whether fc-list is on PATH.
func (d *Detector) Available(_ context.Context) bool {
	_, err := d.lookPath(fcList)
	return err == nil
}

// Families returns the installed families. The first successful query is cached.
func (d *Detector) Families(ctx context.Context) ([]string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.cached {
		return d.families, nil
	}

	out, err := d.run(ctx)
	if err != nil {
		logging.FromContext(ctx).Debug().Err(err).Msg("fc-list failed")
		return nil, err
	}

	families, err := parseFamilies(out)
	if err != nil {
		return nil, err
	}
	d.families = families
	d.cached = true
	logging.FromContext(ctx).Debug().Int("count", len(families)).Msg("cached system fonts")
	return families, nil
}

// Pick returns the first installed candidate or the generic family.
func (d *Detector) Pick(ctx context.Context, category port.FontCategory, candidates []string) string {
	log := logging.FromContext(ctx)

	families, err := d.Families(ctx)
	if err != nil {
		return generic(category)
	}

	installed := make(map[string]struct{}, len(families))
	for _, f := range families {
		installed[f] = struct{}{}
	}
	for _, c := range candidates {
		if _, ok := installed[c]; ok {
			log.Debug().Str("category", string(category)).Str("font", c).Msg("selected font")
			return c
		}
	}

	log.Debug().Str("category", string(category)).Msg("no candidate font installed")
	return generic(category)
}

// parseFamilies reads fc-list output. A line may list aliases separated
// by commas, e.g. "DejaVu Sans,DejaVu Sans Light".
func parseFamilies(out []byte) ([]string, error) {
	seen := make(map[string]struct{})
	var families []string

	scanner := bufio.NewScanner(bytes.NewReader(out))
	for scanner.Scan() {
		for _, family := range strings.Split(scanner.Text(), ",") {
			family = strings.TrimSpace(family)
			if family == "" {
				continue
			}
			if _, dup := seen[family]; dup {
				continue
			}
			seen[family] = struct{}{}
			families = append(families, family)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return families, nil
}

func generic(category port.FontCategory) string {
	switch category {
	case port.FontCategorySerif, port.FontCategoryMonospace:
		return string(category)
	default:
		return string(port.FontCategorySansSerif)
	}
}
