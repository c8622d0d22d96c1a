package usecase

import (
	"context"
	_ "embed"
	"fmt"
	"strings"

	"github.com/twilight/weaver/internal/application/port"
	"github.com/twilight/weaver/internal/domain/url"
	"github.com/twilight/weaver/internal/logging"
)

//go:embed scripts/youtube_adblock.js
var youtubeAdBlockScript string

const youtubeHost = "youtube.com"

// InjectContentUseCase injects content scripts into finished pages.
type InjectContentUseCase struct {
	youtubeAdBlock func() bool
}

// NewInjectContentUseCase creates a content injection use case.
// youtubeAdBlock is consulted on every page so settings changes apply immediately;
// nil disables injection.
func NewInjectContentUseCase(youtubeAdBlock func() bool) *InjectContentUseCase {
	if youtubeAdBlock == nil {
		youtubeAdBlock = func() bool { return false }
	}
	return &InjectContentUseCase{youtubeAdBlock: youtubeAdBlock}
}

// Execute injects the YouTube ad-skipping script when uri is a YouTube page
// and the filter is enabled. It reports whether a script was injected.
func (uc *InjectContentUseCase) Execute(ctx context.Context, view port.NavigableView, uri string) (bool, error) {
	if view == nil {
		return false, ErrNoView
	}
	if !uc.youtubeAdBlock() || !IsYouTubeURL(uri) {
		return false, nil
	}

	if err := view.RunJavaScript(ctx, youtubeAdBlockScript); err != nil {
		return false, fmt.Errorf("failed to inject youtube script: %w", err)
	}

	logging.FromContext(ctx).Debug().Str("url", logging.TruncateURL(uri, logURLMaxLen)).Msg("youtube ad filter injected")
	return true, nil
}

// IsYouTubeURL reports whether uri is served from youtube.com or one of its subdomains.
func IsYouTubeURL(uri string) bool {
	if !url.HasWebScheme(uri) {
		return false
	}
	host := url.ExtractHost(uri)
	return host == youtubeHost || strings.HasSuffix(host, "."+youtubeHost)
}
