package report

import (
	"fmt"
	"math"
	"strings"

	"github.com/argus-lab/argus/pkg/domain/model"
)

// Formatter folds a raw review into the finalized report shape. Formatting is
// a pure function: the same review and filename always yield an identical
// report. The engine's own overall score is discarded here in favor of the
// recomputed one.
type Formatter struct{}

// New creates a report formatter
func New() *Formatter {
	return &Formatter{}
}

// Format produces a FormattedReport from a raw review
func (f *Formatter) Format(review *model.Review, filename string) *model.FormattedReport {
	score := f.calculateScore(review)

	counts := make(map[model.Severity]int, 4)
	for _, issue := range review.Issues {
		counts[issue.Severity]++
	}

	return &model.FormattedReport{
		Filename:         filename,
		OverallScore:     score,
		Summary:          f.buildSummary(review, score),
		Readability:      review.Readability,
		Modularity:       review.Modularity,
		PotentialBugs:    review.PotentialBugs,
		Suggestions:      review.Suggestions,
		IssuesBySeverity: groupBySeverity(review.Issues),
		IssuesByType:     countByType(review.Issues),
		QualityMetrics:   qualityMetrics(review),
		TotalIssues:      len(review.Issues),
		CriticalIssues:   counts[model.SeverityCritical],
		HighIssues:       counts[model.SeverityHigh],
		MediumIssues:     counts[model.SeverityMedium],
		LowIssues:        counts[model.SeverityLow],
	}
}

// calculateScore recomputes the overall score from issue severities and
// suggestion volume: 10 minus half the severity weight per issue, minus a
// flat penalty when the suggestion list is long
func (f *Formatter) calculateScore(review *model.Review) int {
	score := 10.0
	for _, issue := range review.Issues {
		score -= float64(issue.Severity.Weight()) * 0.5
	}

	switch {
	case len(review.Suggestions) > 5:
		score -= 1.0
	case len(review.Suggestions) > 3:
		score -= 0.5
	}

	return model.RoundScore(score)
}

func (f *Formatter) buildSummary(review *model.Review, score int) string {
	totalIssues := len(review.Issues)
	criticalIssues := review.CountBySeverity(model.SeverityCritical)
	highIssues := review.CountBySeverity(model.SeverityHigh)

	var qualityLevel string
	switch {
	case score >= 8:
		qualityLevel = "excellent"
	case score >= 6:
		qualityLevel = "good"
	case score >= 4:
		qualityLevel = "fair"
	default:
		qualityLevel = "needs improvement"
	}

	parts := []string{fmt.Sprintf("Code quality is %s with an overall score of %d/10.", qualityLevel, score)}

	if totalIssues == 0 {
		parts = append(parts, "No issues were identified.")
	} else {
		var breakdown []string
		if criticalIssues > 0 {
			breakdown = append(breakdown, fmt.Sprintf("%d critical", criticalIssues))
		}
		if highIssues > 0 {
			breakdown = append(breakdown, fmt.Sprintf("%d high", highIssues))
		}
		if minor := totalIssues - criticalIssues - highIssues; minor > 0 {
			breakdown = append(breakdown, fmt.Sprintf("%d minor", minor))
		}
		parts = append(parts, fmt.Sprintf("Found %d issues: %s.", totalIssues, strings.Join(breakdown, ", ")))
	}

	if len(review.Suggestions) > 0 {
		parts = append(parts, fmt.Sprintf("Provided %d improvement suggestions.", len(review.Suggestions)))
	}

	return strings.Join(parts, " ")
}

// groupBySeverity partitions issues into the four severity buckets, each
// preserving original detection order. All buckets are present even when
// empty. Issues with unknown severities are dropped.
func groupBySeverity(issues []model.Issue) map[model.Severity][]model.IssueDetail {
	grouped := make(map[model.Severity][]model.IssueDetail, 4)
	for _, sev := range model.Severities() {
		grouped[sev] = []model.IssueDetail{}
	}

	for _, issue := range issues {
		if !issue.Severity.IsValid() {
			continue
		}
		grouped[issue.Severity] = append(grouped[issue.Severity], model.IssueDetail{
			LineNumber:  issue.LineNumber,
			Type:        issue.Type,
			Description: issue.Description,
			Suggestion:  issue.Suggestion,
		})
	}
	return grouped
}

func countByType(issues []model.Issue) *model.TypeCounts {
	counts := model.NewTypeCounts()
	for _, issue := range issues {
		counts.Add(issue.Type)
	}
	return counts
}

// qualityMetrics derives complexity and maintainability scores from issue and
// suggestion counts. Both are monotonically non-increasing in either count and
// floored at 1.
func qualityMetrics(review *model.Review) model.QualityMetrics {
	totalIssues := float64(len(review.Issues))
	suggestions := len(review.Suggestions)

	complexity := clampMetric(10 - totalIssues*0.5 - float64(suggestions)*0.2)
	maintainability := clampMetric(10 - totalIssues*0.3 - float64(suggestions)*0.1)

	return model.QualityMetrics{
		ComplexityScore:      round1(complexity),
		MaintainabilityScore: round1(maintainability),
		SuggestionsCount:     suggestions,
		IssuesPerSuggestion:  round2(totalIssues / float64(max(1, suggestions))),
	}
}

func clampMetric(v float64) float64 {
	return math.Min(10, math.Max(1, v))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
