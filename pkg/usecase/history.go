package usecase

import (
	"context"
	"math"
	"time"

	"github.com/argus-lab/argus/pkg/domain/interfaces"
	"github.com/argus-lab/argus/pkg/domain/model"
	"github.com/argus-lab/argus/pkg/domain/types"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

const (
	defaultPerPage = 10
	maxPerPage     = 100

	// recentWindow bounds the "recent reviews" stat
	recentWindow = 7 * 24 * time.Hour
)

// History implements HistoryUseCase over the review repository
type History struct {
	repo interfaces.Repository
}

// NewHistory creates a History use case
func NewHistory(repo interfaces.Repository) *History {
	return &History{repo: repo}
}

// List returns one page of stored reviews, newest first. Out-of-range paging
// parameters are clamped rather than rejected.
func (u *History) List(ctx context.Context, page, perPage int) (*model.HistoryPage, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}

	offset := (page - 1) * perPage
	records, total, err := u.repo.ListReviews(ctx, offset, perPage)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list reviews",
			goerr.V("page", page),
			goerr.V("perPage", perPage))
	}

	return &model.HistoryPage{
		Reviews:    records,
		TotalCount: total,
		Page:       page,
		PerPage:    perPage,
	}, nil
}

// Get returns a stored review including the full report body
func (u *History) Get(ctx context.Context, id types.ReviewID) (*model.ReviewDetail, error) {
	record, err := u.repo.GetReview(ctx, id)
	if err != nil {
		return nil, err
	}

	report, err := record.Report()
	if err != nil {
		return nil, goerr.Wrap(err, "stored review has no report body",
			goerr.V("id", id))
	}

	return &model.ReviewDetail{
		ReviewRecord: record,
		Report:       report,
	}, nil
}

// Delete removes a stored review and returns the removed record
func (u *History) Delete(ctx context.Context, id types.ReviewID) (*model.ReviewRecord, error) {
	record, err := u.repo.GetReview(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := u.repo.DeleteReview(ctx, id); err != nil {
		return nil, err
	}

	ctxlog.From(ctx).Info("Deleted review",
		"reviewID", id,
		"filename", record.Filename,
	)
	return record, nil
}

// Stats summarizes all stored reviews
func (u *History) Stats(ctx context.Context) (*model.ReviewStats, error) {
	records, total, err := u.repo.ListReviews(ctx, 0, 0)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load reviews for stats")
	}

	stats := &model.ReviewStats{
		TotalReviews: total,
		Languages:    map[string]int{},
	}
	if total == 0 {
		return stats, nil
	}

	var scoreSum float64
	cutoff := time.Now().Add(-recentWindow)
	for _, record := range records {
		scoreSum += float64(record.OverallScore)
		stats.TotalIssues += record.TotalIssues
		if record.Language != "" {
			stats.Languages[record.Language.String()]++
		}
		if record.CreatedAt.After(cutoff) {
			stats.RecentReviews++
		}
	}
	stats.AverageScore = math.Round(scoreSum/float64(len(records))*100) / 100

	return stats, nil
}
