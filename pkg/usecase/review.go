package usecase

import (
	"context"
	"math"
	"time"
	"unicode/utf8"

	"github.com/argus-lab/argus/pkg/domain/interfaces"
	"github.com/argus-lab/argus/pkg/domain/model"
	"github.com/argus-lab/argus/pkg/service/lang"
	"github.com/argus-lab/argus/pkg/service/report"
	"github.com/argus-lab/argus/pkg/utils/apperr"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// DefaultMaxFileSizeKB is the default upload size ceiling
const DefaultMaxFileSizeKB = 200

// MaxFilesPerRequest bounds multi-file uploads
const MaxFilesPerRequest = 5

// ReviewConfig holds configuration for the Review use case
type ReviewConfig struct {
	maxFileSizeKB int
}

// ReviewOption is a functional option for configuring Review
type ReviewOption func(*ReviewConfig)

// WithMaxFileSizeKB sets the upload size ceiling in kilobytes
func WithMaxFileSizeKB(kb int) ReviewOption {
	return func(c *ReviewConfig) {
		if kb > 0 {
			c.maxFileSizeKB = kb
		}
	}
}

// Review implements ReviewUseCase
type Review struct {
	classifier *lang.Classifier
	analyzer   interfaces.CodeAnalyzer
	formatter  *report.Formatter
	renderer   interfaces.ReportRenderer
	repo       interfaces.Repository
	config     ReviewConfig
}

// NewReview creates a Review use case. renderer may be nil when PDF export is
// disabled; repo must not be nil.
func NewReview(
	classifier *lang.Classifier,
	analyzer interfaces.CodeAnalyzer,
	formatter *report.Formatter,
	renderer interfaces.ReportRenderer,
	repo interfaces.Repository,
	opts ...ReviewOption,
) *Review {
	config := ReviewConfig{maxFileSizeKB: DefaultMaxFileSizeKB}
	for _, opt := range opts {
		opt(&config)
	}

	return &Review{
		classifier: classifier,
		analyzer:   analyzer,
		formatter:  formatter,
		renderer:   renderer,
		repo:       repo,
		config:     config,
	}
}

// ReviewFile runs the full review flow for one uploaded file
func (u *Review) ReviewFile(ctx context.Context, upload model.FileUpload, exportPDF bool) (*model.ReviewResult, error) {
	start := time.Now()

	if err := u.validateUpload(upload); err != nil {
		return nil, err
	}

	content := string(upload.Content)
	review, err := u.analyzer.Analyze(ctx, content, upload.Filename)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to analyze code",
			goerr.V("filename", upload.Filename))
	}

	language := u.classifier.Detect(upload.Filename)
	processingTime := roundSeconds(time.Since(start))

	formatted := u.formatter.Format(review, upload.Filename)

	result := &model.ReviewResult{
		FormattedReport: formatted,
		FileSizeMB:      sizeMB(len(upload.Content)),
		Language:        language,
		ProcessingTime:  processingTime,
	}

	if exportPDF && u.renderer != nil {
		name, err := u.renderer.Render(ctx, formatted)
		if err != nil {
			apperr.Handle(ctx, goerr.Wrap(err, "failed to generate PDF report",
				goerr.V("filename", upload.Filename)))
			result.PDFError = "Failed to generate PDF report"
		} else {
			result.PDFReport = "/api/download-pdf/" + name
		}
	}

	record, err := model.NewReviewRecord(formatted, language, result.FileSizeMB, processingTime)
	if err != nil {
		apperr.Handle(ctx, err)
		return result, nil
	}
	if err := u.repo.SaveReview(ctx, record); err != nil {
		// Persistence failure degrades: the response simply carries no ID
		apperr.Handle(ctx, goerr.Wrap(err, "failed to save review record",
			goerr.V("filename", upload.Filename)))
		return result, nil
	}
	result.ReviewID = record.ID

	ctxlog.From(ctx).Info("Reviewed file",
		"filename", upload.Filename,
		"language", language,
		"score", formatted.OverallScore,
		"issues", formatted.TotalIssues,
		"reviewID", record.ID,
	)
	return result, nil
}

// ReviewFiles reviews a batch of files, reporting per-file failures inline
func (u *Review) ReviewFiles(ctx context.Context, uploads []model.FileUpload, exportPDF bool) ([]model.BatchReviewResult, error) {
	if len(uploads) > MaxFilesPerRequest {
		return nil, goerr.Wrap(model.ErrTooManyFiles, "batch upload rejected",
			goerr.V("files", len(uploads)),
			goerr.V("max", MaxFilesPerRequest))
	}

	results := make([]model.BatchReviewResult, 0, len(uploads))
	for _, upload := range uploads {
		result, err := u.ReviewFile(ctx, upload, exportPDF)
		if err != nil {
			filename := upload.Filename
			if filename == "" {
				filename = "unknown"
			}
			results = append(results, model.BatchReviewResult{
				Failure: &model.ReviewFailure{
					Filename: filename,
					Language: "Unknown",
					Error:    err.Error(),
				},
			})
			continue
		}
		results = append(results, model.BatchReviewResult{Result: result})
	}
	return results, nil
}

// SupportedFormats describes the upload constraints
func (u *Review) SupportedFormats() model.SupportedFormats {
	return model.SupportedFormats{
		SupportedExtensions: u.classifier.Extensions(),
		MaxFileSizeKB:       u.config.maxFileSizeKB,
		MaxFilesPerRequest:  MaxFilesPerRequest,
	}
}

func (u *Review) validateUpload(upload model.FileUpload) error {
	if !u.classifier.IsSupported(upload.Filename) {
		return goerr.Wrap(model.ErrUnsupportedFileType, "extension not allowed",
			goerr.V("filename", upload.Filename))
	}
	if len(upload.Content) > u.config.maxFileSizeKB*1024 {
		return goerr.Wrap(model.ErrFileTooLarge, "upload exceeds size ceiling",
			goerr.V("filename", upload.Filename),
			goerr.V("size", len(upload.Content)),
			goerr.V("maxKB", u.config.maxFileSizeKB))
	}
	if len(upload.Content) == 0 {
		return goerr.Wrap(model.ErrEmptyFile, "empty upload",
			goerr.V("filename", upload.Filename))
	}
	if !utf8.Valid(upload.Content) {
		return goerr.Wrap(model.ErrInvalidEncoding, "upload is not UTF-8",
			goerr.V("filename", upload.Filename))
	}
	return nil
}

func sizeMB(bytes int) float64 {
	return math.Round(float64(bytes)/(1024*1024)*100) / 100
}

func roundSeconds(d time.Duration) float64 {
	return math.Round(d.Seconds()*100) / 100
}
