package interfaces

import (
	"context"

	"github.com/argus-lab/argus/pkg/domain/model"
	"github.com/argus-lab/argus/pkg/domain/types"
)

// Repository defines the interface for review record persistence
type Repository interface {
	// SaveReview persists a review record
	SaveReview(ctx context.Context, record *model.ReviewRecord) error

	// GetReview retrieves a review record by ID.
	// Returns model.ErrReviewNotFound if no record exists.
	GetReview(ctx context.Context, id types.ReviewID) (*model.ReviewRecord, error)

	// ListReviews returns one page of records ordered newest-first, plus the
	// total record count. offset is the number of records to skip; limit <= 0
	// returns all remaining records.
	ListReviews(ctx context.Context, offset, limit int) ([]*model.ReviewRecord, int, error)

	// DeleteReview removes a review record by ID.
	// Returns model.ErrReviewNotFound if no record exists.
	DeleteReview(ctx context.Context, id types.ReviewID) error

	// Close closes the repository connection
	Close() error
}
