package repository_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/argus-lab/argus/pkg/domain/interfaces"
	"github.com/argus-lab/argus/pkg/domain/model"
	"github.com/argus-lab/argus/pkg/domain/types"
	"github.com/argus-lab/argus/pkg/repository"
	"github.com/m-mizutani/gt"
)

func newRecord(t *testing.T, filename string, score int) *model.ReviewRecord {
	t.Helper()

	counts := model.NewTypeCounts()
	report := &model.FormattedReport{
		Filename:     filename,
		OverallScore: score,
		Summary:      fmt.Sprintf("Code quality review for %s", filename),
		IssuesByType: counts,
	}
	record, err := model.NewReviewRecord(report, "Python", 0.01, 0.5)
	gt.NoError(t, err)
	return record
}

func TestMemoryRepository(t *testing.T) {
	testRepository(t, repository.NewMemory())
}

// testRepository exercises the Repository contract so that any implementation
// can reuse the same suite
func testRepository(t *testing.T, repo interfaces.Repository) {
	ctx := context.Background()

	t.Run("Save and get review", func(t *testing.T) {
		record := newRecord(t, "sample.py", 7)
		gt.NoError(t, repo.SaveReview(ctx, record))

		got, err := repo.GetReview(ctx, record.ID)
		gt.NoError(t, err)
		gt.Equal(t, record.ID, got.ID)
		gt.Equal(t, "sample.py", got.Filename)
		gt.Equal(t, 7, got.OverallScore)
		gt.Equal(t, record.ReportJSON, got.ReportJSON)
	})

	t.Run("Get returns a copy", func(t *testing.T) {
		record := newRecord(t, "copy.py", 6)
		gt.NoError(t, repo.SaveReview(ctx, record))

		first, err := repo.GetReview(ctx, record.ID)
		gt.NoError(t, err)
		first.Filename = "mutated.py"

		second, err := repo.GetReview(ctx, record.ID)
		gt.NoError(t, err)
		gt.Equal(t, "copy.py", second.Filename)
	})

	t.Run("Get missing review", func(t *testing.T) {
		_, err := repo.GetReview(ctx, types.NewReviewID())
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrReviewNotFound))
	})

	t.Run("Get with empty ID", func(t *testing.T) {
		_, err := repo.GetReview(ctx, "")
		gt.Error(t, err)
	})

	t.Run("Save nil record", func(t *testing.T) {
		gt.Error(t, repo.SaveReview(ctx, nil))
	})

	t.Run("Save invalid record", func(t *testing.T) {
		record := newRecord(t, "bad.py", 7)
		record.OverallScore = 0
		gt.Error(t, repo.SaveReview(ctx, record))
	})

	t.Run("Delete review", func(t *testing.T) {
		record := newRecord(t, "gone.py", 5)
		gt.NoError(t, repo.SaveReview(ctx, record))
		gt.NoError(t, repo.DeleteReview(ctx, record.ID))

		_, err := repo.GetReview(ctx, record.ID)
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrReviewNotFound))
	})

	t.Run("Delete missing review", func(t *testing.T) {
		err := repo.DeleteReview(ctx, types.NewReviewID())
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrReviewNotFound))
	})
}

func TestMemoryListReviews(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemory()

	// Three records with distinct creation times
	var records []*model.ReviewRecord
	for i := 0; i < 3; i++ {
		record := newRecord(t, fmt.Sprintf("file%d.py", i), 5+i)
		record.CreatedAt = time.Now().Add(time.Duration(i) * time.Minute)
		gt.NoError(t, repo.SaveReview(ctx, record))
		records = append(records, record)
	}

	t.Run("Newest first", func(t *testing.T) {
		listed, total, err := repo.ListReviews(ctx, 0, 0)
		gt.NoError(t, err)
		gt.Equal(t, 3, total)
		gt.Equal(t, 3, len(listed))
		gt.Equal(t, records[2].ID, listed[0].ID)
		gt.Equal(t, records[0].ID, listed[2].ID)
	})

	t.Run("Offset and limit", func(t *testing.T) {
		listed, total, err := repo.ListReviews(ctx, 1, 1)
		gt.NoError(t, err)
		gt.Equal(t, 3, total)
		gt.Equal(t, 1, len(listed))
		gt.Equal(t, records[1].ID, listed[0].ID)
	})

	t.Run("Offset beyond total", func(t *testing.T) {
		listed, total, err := repo.ListReviews(ctx, 10, 5)
		gt.NoError(t, err)
		gt.Equal(t, 3, total)
		gt.Equal(t, 0, len(listed))
	})

	t.Run("Negative offset rejected", func(t *testing.T) {
		_, _, err := repo.ListReviews(ctx, -1, 5)
		gt.Error(t, err)
	})

	t.Run("Zero limit returns all", func(t *testing.T) {
		listed, _, err := repo.ListReviews(ctx, 0, 0)
		gt.NoError(t, err)
		gt.Equal(t, 3, len(listed))
	})
}
