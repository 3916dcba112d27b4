package model_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/argus-lab/argus/pkg/domain/model"
	"github.com/argus-lab/argus/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

func testReport() *model.FormattedReport {
	return &model.FormattedReport{
		Filename:       "sample.py",
		OverallScore:   7,
		Summary:        "Code quality is good with an overall score of 7/10.",
		Suggestions:    []string{"Add unit tests"},
		IssuesByType:   model.NewTypeCounts(),
		TotalIssues:    2,
		CriticalIssues: 1,
		HighIssues:     0,
		MediumIssues:   1,
		LowIssues:      0,
	}
}

func TestNewReviewRecord(t *testing.T) {
	t.Run("Builds record from report", func(t *testing.T) {
		record, err := model.NewReviewRecord(testReport(), "Python", 0.01, 0.5)
		gt.NoError(t, err)
		gt.NotEqual(t, types.ReviewID(""), record.ID)
		gt.Equal(t, "sample.py", record.Filename)
		gt.Equal(t, 7, record.OverallScore)
		gt.Equal(t, types.Language("Python"), record.Language)
		gt.Equal(t, 0.01, record.FileSizeMB)
		gt.Equal(t, 0.5, record.ProcessingTime)
		gt.Equal(t, 2, record.TotalIssues)
		gt.Equal(t, 1, record.CriticalIssues)
		gt.Equal(t, 1, record.MediumIssues)
		gt.True(t, time.Since(record.CreatedAt) < time.Second)
		gt.Equal(t, record.CreatedAt, record.UpdatedAt)
	})

	t.Run("Nil report rejected", func(t *testing.T) {
		_, err := model.NewReviewRecord(nil, "Python", 0, 0)
		gt.Error(t, err)
	})

	t.Run("Stored report round-trips", func(t *testing.T) {
		record, err := model.NewReviewRecord(testReport(), "Python", 0.01, 0.5)
		gt.NoError(t, err)

		raw, err := record.Report()
		gt.NoError(t, err)

		var restored model.FormattedReport
		gt.NoError(t, json.Unmarshal(raw, &restored))
		gt.Equal(t, "sample.py", restored.Filename)
		gt.Equal(t, 7, restored.OverallScore)
		gt.Equal(t, []string{"Add unit tests"}, restored.Suggestions)
	})
}

func TestReviewRecordValidate(t *testing.T) {
	valid := func() *model.ReviewRecord {
		record, err := model.NewReviewRecord(testReport(), "Python", 0.01, 0.5)
		gt.NoError(t, err)
		return record
	}

	t.Run("Valid record", func(t *testing.T) {
		gt.NoError(t, valid().Validate())
	})

	t.Run("Missing ID", func(t *testing.T) {
		record := valid()
		record.ID = ""
		gt.Error(t, record.Validate())
	})

	t.Run("Missing filename", func(t *testing.T) {
		record := valid()
		record.Filename = ""
		gt.Error(t, record.Validate())
	})

	t.Run("Score out of range", func(t *testing.T) {
		record := valid()
		record.OverallScore = 0
		gt.Error(t, record.Validate())

		record = valid()
		record.OverallScore = 11
		gt.Error(t, record.Validate())
	})

	t.Run("Empty report JSON", func(t *testing.T) {
		record := valid()
		record.ReportJSON = ""
		_, err := record.Report()
		gt.Error(t, err)
	})
}
