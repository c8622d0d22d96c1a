package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/twilight/weaver/internal/domain/entity"
	"github.com/twilight/weaver/internal/domain/repository"
	"github.com/twilight/weaver/internal/logging"
)

// ManageHistoryUseCase handles history listing and deletion.
type ManageHistoryUseCase struct {
	historyRepo repository.HistoryRepository
}

// NewManageHistoryUseCase creates a new history management use case.
func NewManageHistoryUseCase(historyRepo repository.HistoryRepository) *ManageHistoryUseCase {
	return &ManageHistoryUseCase{historyRepo: historyRepo}
}

// List returns every entry, most recent first.
func (uc *ManageHistoryUseCase) List(ctx context.Context) ([]*entity.HistoryEntry, error) {
	entries, err := uc.historyRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}
	return entries, nil
}

// Filter returns entries whose URL or title contains query (case-insensitive),
// most recent first. A limit of zero or less returns every match.
func (uc *ManageHistoryUseCase) Filter(ctx context.Context, query string, limit int) ([]*entity.HistoryEntry, error) {
	entries, err := uc.List(ctx)
	if err != nil {
		return nil, err
	}

	query = strings.ToLower(strings.TrimSpace(query))
	matches := make([]*entity.HistoryEntry, 0, len(entries))
	for _, e := range entries {
		if query != "" &&
			!strings.Contains(strings.ToLower(e.URL), query) &&
			!strings.Contains(strings.ToLower(e.Title), query) {
			continue
		}
		matches = append(matches, e)
		if limit > 0 && len(matches) == limit {
			break
		}
	}
	return matches, nil
}

// Delete removes the entries matching url, title and visitedAt exactly.
func (uc *ManageHistoryUseCase) Delete(ctx context.Context, url, title string, visitedAt time.Time) (int64, error) {
	if url == "" {
		return 0, ErrEmptyURL
	}
	log := logging.FromContext(ctx)
	log.Debug().Str("url", logging.TruncateURL(url, logURLMaxLen)).Msg("deleting history entry")

	n, err := uc.historyRepo.Delete(ctx, url, title, visitedAt)
	if err != nil {
		return 0, fmt.Errorf("failed to delete history entry: %w", err)
	}

	log.Info().Int64("deleted", n).Msg("history entry deleted")
	return n, nil
}

// Clear removes every entry present when called.
func (uc *ManageHistoryUseCase) Clear(ctx context.Context) (int64, error) {
	log := logging.FromContext(ctx)
	log.Debug().Msg("clearing history")

	n, err := uc.historyRepo.DeleteAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to clear history: %w", err)
	}

	log.Info().Int64("deleted", n).Msg("history cleared")
	return n, nil
}
