package model

import (
	"github.com/argus-lab/argus/pkg/domain/types"
)

// Issue represents one detected problem in a reviewed file.
// Issues are immutable once produced by an analyzer.
type Issue struct {
	// LineNumber is 1-based. Zero means the issue is not line-specific.
	LineNumber  int             `json:"line_number,omitempty" firestore:"lineNumber"`
	Type        types.IssueType `json:"type" firestore:"type"`
	Severity    Severity        `json:"severity" firestore:"severity"`
	Description string          `json:"description" firestore:"description"`
	Suggestion  string          `json:"suggestion,omitempty" firestore:"suggestion"`
}

// Review is the raw analyzer output prior to formatting. It is transient:
// produced once per analysis, consumed by the formatter, then discarded.
type Review struct {
	Readability   string   `json:"readability"`
	Modularity    string   `json:"modularity"`
	PotentialBugs string   `json:"potential_bugs"`
	Suggestions   []string `json:"suggestions"`
	Issues        []Issue  `json:"issues"`
	OverallScore  int      `json:"overall_score"` // 1-10
	Summary       string   `json:"summary"`
}

// CountBySeverity returns the number of issues with the given severity
func (r *Review) CountBySeverity(sev Severity) int {
	var n int
	for _, issue := range r.Issues {
		if issue.Severity == sev {
			n++
		}
	}
	return n
}

// IssuesBySeverity returns the issues with the given severity in detection order
func (r *Review) IssuesBySeverity(sev Severity) []Issue {
	var issues []Issue
	for _, issue := range r.Issues {
		if issue.Severity == sev {
			issues = append(issues, issue)
		}
	}
	return issues
}
