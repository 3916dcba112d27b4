package usecase

import (
	"context"

	"github.com/argus-lab/argus/pkg/domain/model"
	"github.com/argus-lab/argus/pkg/domain/types"
)

// ReviewUseCase defines the interface for the upload-and-review flow
type ReviewUseCase interface {
	// ReviewFile validates, analyzes, formats, optionally renders a PDF for,
	// and persists one uploaded file
	ReviewFile(ctx context.Context, upload model.FileUpload, exportPDF bool) (*model.ReviewResult, error)

	// ReviewFiles reviews up to MaxFilesPerRequest files; per-file failures
	// are reported inline rather than failing the batch
	ReviewFiles(ctx context.Context, uploads []model.FileUpload, exportPDF bool) ([]model.BatchReviewResult, error)

	// SupportedFormats describes the upload constraints
	SupportedFormats() model.SupportedFormats
}

// HistoryUseCase defines the interface for stored review access
type HistoryUseCase interface {
	// List returns one page of stored reviews, newest first
	List(ctx context.Context, page, perPage int) (*model.HistoryPage, error)

	// Get returns a stored review including the full report body
	Get(ctx context.Context, id types.ReviewID) (*model.ReviewDetail, error)

	// Delete removes a stored review and returns the removed record
	Delete(ctx context.Context, id types.ReviewID) (*model.ReviewRecord, error)

	// Stats summarizes all stored reviews
	Stats(ctx context.Context) (*model.ReviewStats, error)
}
