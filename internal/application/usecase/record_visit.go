package usecase

import (
	"context"
	"fmt"

	"github.com/twilight/weaver/internal/domain/repository"
	"github.com/twilight/weaver/internal/domain/url"
	"github.com/twilight/weaver/internal/logging"
)

// RecordVisitUseCase records finished page loads in history.
type RecordVisitUseCase struct {
	historyRepo  repository.HistoryRepository
	bookmarkRepo repository.BookmarkRepository
}

// NewRecordVisitUseCase creates a new visit recording use case.
func NewRecordVisitUseCase(
	historyRepo repository.HistoryRepository,
	bookmarkRepo repository.BookmarkRepository,
) *RecordVisitUseCase {
	return &RecordVisitUseCase{historyRepo: historyRepo, bookmarkRepo: bookmarkRepo}
}

// RecordVisitInput describes a finished load.
type RecordVisitInput struct {
	URI   string
	Title string
}

// RecordVisitOutput reports what was recorded.
type RecordVisitOutput struct {
	// Recorded is true when a history entry was appended.
	Recorded bool
	// Bookmarked is true when the URI has at least one bookmark.
	Bookmarked bool
	// Secure is true for https URIs.
	Secure bool
}

// Execute appends a history entry for http and https URIs; internal pages,
// blank and data: documents are not recorded. An empty title falls back to the URI.
func (uc *RecordVisitUseCase) Execute(ctx context.Context, input RecordVisitInput) (*RecordVisitOutput, error) {
	log := logging.FromContext(ctx)
	out := &RecordVisitOutput{Secure: url.IsSecure(input.URI)}

	if !url.HasWebScheme(input.URI) {
		log.Debug().Str("url", logging.TruncateURL(input.URI, logURLMaxLen)).Msg("skipping history for non-web address")
		return out, nil
	}

	title := input.Title
	if title == "" {
		title = input.URI
	}

	if _, err := uc.historyRepo.Append(ctx, input.URI, title); err != nil {
		return nil, fmt.Errorf("failed to record visit: %w", err)
	}
	out.Recorded = true

	bookmarked, err := uc.bookmarkRepo.ExistsByURL(ctx, input.URI)
	if err != nil {
		return nil, fmt.Errorf("failed to check bookmark: %w", err)
	}
	out.Bookmarked = bookmarked

	log.Debug().
		Str("url", logging.TruncateURL(input.URI, logURLMaxLen)).
		Bool("bookmarked", bookmarked).
		Msg("visit recorded")
	return out, nil
}
