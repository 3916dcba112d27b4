package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/argus-lab/argus/pkg/domain/interfaces"
	"github.com/argus-lab/argus/pkg/domain/model"
	"github.com/argus-lab/argus/pkg/domain/types"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	reviewsCollection = "reviews"

	fieldCreatedAt = "createdAt"
)

// Firestore implements Repository interface with Firestore
type Firestore struct {
	client *firestore.Client
}

// NewFirestore creates a new Firestore repository
func NewFirestore(ctx context.Context, projectID, databaseID string) (interfaces.Repository, error) {
	logger := ctxlog.From(ctx)

	client, err := firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client")
	}

	// Fail fast on credential or project problems; an empty collection is fine
	_, err = client.Collection(reviewsCollection).Limit(1).Documents(ctx).Next()
	if err != nil && err != iterator.Done {
		if status.Code(err) == codes.PermissionDenied || status.Code(err) == codes.Unauthenticated {
			_ = client.Close()
			return nil, goerr.Wrap(err, "failed to connect to firestore project",
				goerr.V("firestore error code", status.Code(err).String()),
			)
		}
		logger.Warn("Firestore connection check returned an error, continuing",
			"error", err,
		)
	}

	return &Firestore{client: client}, nil
}

// SaveReview saves a review record to Firestore
func (f *Firestore) SaveReview(ctx context.Context, record *model.ReviewRecord) error {
	if record == nil {
		return goerr.New("review record is nil")
	}
	if err := record.Validate(); err != nil {
		return goerr.Wrap(err, "invalid review record")
	}

	_, err := f.client.Collection(reviewsCollection).Doc(record.ID.String()).Set(ctx, record)
	if err != nil {
		return goerr.Wrap(err, "failed to save review record",
			goerr.V("id", record.ID))
	}
	return nil
}

// GetReview retrieves a review record by ID
func (f *Firestore) GetReview(ctx context.Context, id types.ReviewID) (*model.ReviewRecord, error) {
	if id == "" {
		return nil, goerr.New("review ID is empty")
	}

	doc, err := f.client.Collection(reviewsCollection).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(model.ErrReviewNotFound, "no such review",
				goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get review record",
			goerr.V("id", id))
	}

	var record model.ReviewRecord
	if err := doc.DataTo(&record); err != nil {
		return nil, goerr.Wrap(err, "failed to decode review record",
			goerr.V("id", id))
	}
	return &record, nil
}

// ListReviews returns one page of records ordered newest-first plus the total
// record count
func (f *Firestore) ListReviews(ctx context.Context, offset, limit int) ([]*model.ReviewRecord, int, error) {
	if offset < 0 {
		return nil, 0, goerr.New("offset must not be negative",
			goerr.V("offset", offset))
	}

	iter := f.client.Collection(reviewsCollection).
		OrderBy(fieldCreatedAt, firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	var records []*model.ReviewRecord
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, goerr.Wrap(err, "failed to iterate review records")
		}

		var record model.ReviewRecord
		if err := doc.DataTo(&record); err != nil {
			ctxlog.From(ctx).Warn("Skipping undecodable review record",
				"docID", doc.Ref.ID,
				"error", err,
			)
			continue
		}
		records = append(records, &record)
	}

	total := len(records)
	if offset >= total {
		return []*model.ReviewRecord{}, total, nil
	}
	records = records[offset:]
	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}

	return records, total, nil
}

// DeleteReview removes a review record by ID
func (f *Firestore) DeleteReview(ctx context.Context, id types.ReviewID) error {
	if id == "" {
		return goerr.New("review ID is empty")
	}

	docRef := f.client.Collection(reviewsCollection).Doc(id.String())
	if _, err := docRef.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(model.ErrReviewNotFound, "no such review",
				goerr.V("id", id))
		}
		return goerr.Wrap(err, "failed to check review record",
			goerr.V("id", id))
	}

	if _, err := docRef.Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to delete review record",
			goerr.V("id", id))
	}
	return nil
}

// Close closes the Firestore client
func (f *Firestore) Close() error {
	if f.client != nil {
		return f.client.Close()
	}
	return nil
}
