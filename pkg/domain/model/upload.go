package model

import (
	"encoding/json"

	"github.com/argus-lab/argus/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// FileUpload is one uploaded source file
type FileUpload struct {
	Filename string
	Content  []byte
}

// ReviewResult is the upload response: the formatted report plus file
// metadata and the artifacts attached by the upload flow. PDF and persistence
// failures degrade into marker fields instead of failing the response.
type ReviewResult struct {
	*FormattedReport
	FileSizeMB     float64        `json:"file_size"`
	Language       types.Language `json:"language"`
	ProcessingTime float64        `json:"processing_time"`
	PDFReport      string         `json:"pdf_report,omitempty"`
	PDFError       string         `json:"pdf_error,omitempty"`
	ReviewID       types.ReviewID `json:"review_id,omitempty"`
}

// ReviewFailure is the per-file error entry in a batch upload response
type ReviewFailure struct {
	Filename       string         `json:"filename"`
	FileSizeMB     float64        `json:"file_size"`
	Language       types.Language `json:"language"`
	Error          string         `json:"error"`
	ProcessingTime float64        `json:"processing_time"`
}

// BatchReviewResult is one entry of a multi-file upload response: either a
// full review result or a failure marker
type BatchReviewResult struct {
	Result  *ReviewResult
	Failure *ReviewFailure
}

// MarshalJSON emits whichever half is present
func (b BatchReviewResult) MarshalJSON() ([]byte, error) {
	if b.Result != nil {
		return json.Marshal(b.Result)
	}
	if b.Failure != nil {
		return json.Marshal(b.Failure)
	}
	return nil, goerr.New("batch review result is empty")
}

// HistoryPage is one page of stored reviews, newest first
type HistoryPage struct {
	Reviews    []*ReviewRecord `json:"reviews"`
	TotalCount int             `json:"total_count"`
	Page       int             `json:"page"`
	PerPage    int             `json:"per_page"`
}

// ReviewDetail is a stored review including the full report body
type ReviewDetail struct {
	*ReviewRecord
	Report json.RawMessage `json:"review_json"`
}

// ReviewStats summarizes all stored reviews
type ReviewStats struct {
	TotalReviews  int            `json:"total_reviews"`
	AverageScore  float64        `json:"average_score"`
	TotalIssues   int            `json:"total_issues"`
	Languages     map[string]int `json:"languages"`
	RecentReviews int            `json:"recent_reviews"`
}

// SupportedFormats describes the upload constraints
type SupportedFormats struct {
	SupportedExtensions []string `json:"supported_extensions"`
	MaxFileSizeKB       int      `json:"max_file_size_kb"`
	MaxFilesPerRequest  int      `json:"max_files_per_request"`
}
