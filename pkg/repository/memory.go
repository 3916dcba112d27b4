package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/argus-lab/argus/pkg/domain/interfaces"
	"github.com/argus-lab/argus/pkg/domain/model"
	"github.com/argus-lab/argus/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// Memory implements Repository interface with in-memory storage
type Memory struct {
	mu      sync.RWMutex
	reviews map[types.ReviewID]*model.ReviewRecord
}

// NewMemory creates a new memory repository
func NewMemory() interfaces.Repository {
	return &Memory{
		reviews: make(map[types.ReviewID]*model.ReviewRecord),
	}
}

// SaveReview saves a review record to memory
func (m *Memory) SaveReview(ctx context.Context, record *model.ReviewRecord) error {
	if record == nil {
		return goerr.New("review record is nil")
	}
	if err := record.Validate(); err != nil {
		return goerr.Wrap(err, "invalid review record")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	// Store a copy to prevent external modification
	recordCopy := *record
	m.reviews[record.ID] = &recordCopy
	return nil
}

// GetReview retrieves a review record by ID
func (m *Memory) GetReview(ctx context.Context, id types.ReviewID) (*model.ReviewRecord, error) {
	if id == "" {
		return nil, goerr.New("review ID is empty")
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	record, exists := m.reviews[id]
	if !exists {
		return nil, goerr.Wrap(model.ErrReviewNotFound, "no such review",
			goerr.V("id", id))
	}

	recordCopy := *record
	return &recordCopy, nil
}

// ListReviews returns one page of records ordered newest-first plus the total
// record count
func (m *Memory) ListReviews(ctx context.Context, offset, limit int) ([]*model.ReviewRecord, int, error) {
	if offset < 0 {
		return nil, 0, goerr.New("offset must not be negative",
			goerr.V("offset", offset))
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	records := make([]*model.ReviewRecord, 0, len(m.reviews))
	for _, record := range m.reviews {
		recordCopy := *record
		records = append(records, &recordCopy)
	}

	// Sort by creation time, newest first
	sort.Slice(records, func(i, j int) bool {
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})

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
func (m *Memory) DeleteReview(ctx context.Context, id types.ReviewID) error {
	if id == "" {
		return goerr.New("review ID is empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.reviews[id]; !exists {
		return goerr.Wrap(model.ErrReviewNotFound, "no such review",
			goerr.V("id", id))
	}
	delete(m.reviews, id)
	return nil
}

// Close is a no-op for the memory repository
func (m *Memory) Close() error {
	return nil
}
