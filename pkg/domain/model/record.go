package model

import (
	"encoding/json"
	"time"

	"github.com/argus-lab/argus/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// ReviewRecord is the durable shape of a formatted report plus the file
// metadata attached by the upload flow. The full report is kept as serialized
// JSON so the stored shape stays identical to the HTTP response.
type ReviewRecord struct {
	ID             types.ReviewID `json:"id" firestore:"id"`
	Filename       string         `json:"filename" firestore:"filename"`
	ReportJSON     string         `json:"-" firestore:"reportJson"`
	OverallScore   int            `json:"overall_score" firestore:"overallScore"`
	Language       types.Language `json:"language" firestore:"language"`
	FileSizeMB     float64        `json:"file_size" firestore:"fileSizeMb"`
	ProcessingTime float64        `json:"processing_time" firestore:"processingTime"`
	TotalIssues    int            `json:"total_issues" firestore:"totalIssues"`
	CriticalIssues int            `json:"critical_issues" firestore:"criticalIssues"`
	HighIssues     int            `json:"high_issues" firestore:"highIssues"`
	MediumIssues   int            `json:"medium_issues" firestore:"mediumIssues"`
	LowIssues      int            `json:"low_issues" firestore:"lowIssues"`
	CreatedAt      time.Time      `json:"created_at" firestore:"createdAt"`
	UpdatedAt      time.Time      `json:"updated_at" firestore:"updatedAt"`
}

// NewReviewRecord builds a record from a formatted report and file metadata
func NewReviewRecord(report *FormattedReport, language types.Language, fileSizeMB, processingTime float64) (*ReviewRecord, error) {
	if report == nil {
		return nil, goerr.New("report is nil")
	}

	raw, err := json.Marshal(report)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to serialize report",
			goerr.V("filename", report.Filename))
	}

	now := time.Now().UTC()
	return &ReviewRecord{
		ID:             types.NewReviewID(),
		Filename:       report.Filename,
		ReportJSON:     string(raw),
		OverallScore:   report.OverallScore,
		Language:       language,
		FileSizeMB:     fileSizeMB,
		ProcessingTime: processingTime,
		TotalIssues:    report.TotalIssues,
		CriticalIssues: report.CriticalIssues,
		HighIssues:     report.HighIssues,
		MediumIssues:   report.MediumIssues,
		LowIssues:      report.LowIssues,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}

// Validate checks the record invariants before persistence
func (r *ReviewRecord) Validate() error {
	if r.ID == "" {
		return goerr.New("review record ID is required")
	}
	if r.Filename == "" {
		return goerr.New("review record filename is required")
	}
	if r.OverallScore < 1 || r.OverallScore > 10 {
		return goerr.New("overall score must be between 1 and 10",
			goerr.V("score", r.OverallScore))
	}
	return nil
}

// Report deserializes the stored report JSON
func (r *ReviewRecord) Report() (json.RawMessage, error) {
	if r.ReportJSON == "" {
		return nil, goerr.New("review record has no report",
			goerr.V("id", r.ID))
	}
	return json.RawMessage(r.ReportJSON), nil
}
