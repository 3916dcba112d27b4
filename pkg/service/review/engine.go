package review

import (
	"context"
	"strings"

	"github.com/argus-lab/argus/pkg/domain/model"
	"github.com/argus-lab/argus/pkg/service/lang"
)

// Engine is the deterministic heuristic analyzer. It scans source text
// line-by-line with the detector catalogue, synthesizes templated feedback,
// and computes a base score. It performs no I/O and never fails.
type Engine struct {
	classifier *lang.Classifier
}

// NewEngine creates a heuristic review engine
func NewEngine(classifier *lang.Classifier) *Engine {
	return &Engine{classifier: classifier}
}

// Analyze produces a raw review for the given source text
func (e *Engine) Analyze(ctx context.Context, content, filename string) (*model.Review, error) {
	language := e.classifier.Detect(filename)

	lines := strings.Split(content, "\n")
	lineCount := len(lines)

	issues := detectIssues(lines)

	criticalCount := countSeverity(issues, model.SeverityCritical)
	highCount := countSeverity(issues, model.SeverityHigh)
	mediumCount := countSeverity(issues, model.SeverityMedium)

	score := 8.0
	score -= float64(criticalCount) * 3
	score -= float64(highCount) * 2
	score -= float64(mediumCount) * 1

	if lineCount > 200 {
		score--
	}
	if strings.Contains(content, "global ") {
		score--
	}
	if strings.Contains(content, "print(") {
		score -= 0.5
	}

	return &model.Review{
		Readability:   readabilityFeedback(content, lineCount),
		Modularity:    modularityFeedback(content, lineCount),
		PotentialBugs: bugsFeedback(content, issues),
		Suggestions:   buildSuggestions(content, lineCount, language),
		Issues:        issues,
		OverallScore:  model.RoundScore(score),
		Summary:       buildSummary(score, len(issues), language, criticalCount, highCount),
	}, nil
}

func countSeverity(issues []model.Issue, sev model.Severity) int {
	var n int
	for _, issue := range issues {
		if issue.Severity == sev {
			n++
		}
	}
	return n
}
