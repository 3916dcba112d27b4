package review

import (
	"fmt"
	"strings"

	"github.com/argus-lab/argus/pkg/domain/model"
	"github.com/argus-lab/argus/pkg/domain/types"
)

// Qualitative feedback is templated, not generative: canned sentence
// fragments selected by fixed thresholds over the source text. The triggering
// conditions and their order are part of the engine contract.

func readabilityFeedback(content string, lineCount int) string {
	var parts []string

	switch {
	case lineCount < 50:
		parts = append(parts, "Code is concise and well-structured.")
	case lineCount < 150:
		parts = append(parts, "Code is moderately sized with decent organization.")
	default:
		parts = append(parts, "Code is quite lengthy and could benefit from better modularization.")
	}

	lower := strings.ToLower(content)
	if strings.Contains(lower, "temp") || strings.Contains(lower, "tmp") ||
		strings.Contains(lower, "var") || strings.Contains(lower, "data") {
		parts = append(parts, "Some variable names could be more descriptive.")
	} else {
		parts = append(parts, "Variable naming is generally clear and meaningful.")
	}

	commentLines := 0
	for _, line := range strings.Split(content, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			commentLines++
		}
	}
	switch {
	case commentLines == 0:
		parts = append(parts, "No comments found - consider adding inline documentation.")
	case float64(commentLines) < float64(lineCount)*0.1:
		parts = append(parts, "Minimal comments present - more documentation would improve readability.")
	default:
		parts = append(parts, "Good use of comments for code documentation.")
	}

	if strings.Contains(content, "    ") {
		parts = append(parts, "Proper indentation and whitespace usage.")
	} else {
		parts = append(parts, "Consider improving code formatting and indentation.")
	}

	return strings.Join(parts, " ")
}

func modularityFeedback(content string, lineCount int) string {
	functionCount := strings.Count(content, "def ") +
		strings.Count(content, "function ") +
		strings.Count(content, "public ")

	switch {
	case functionCount == 0:
		return "No functions detected. Consider breaking code into reusable functions for better modularity."
	case float64(lineCount)/float64(max(functionCount, 1)) > 30:
		return "Functions are quite long. Consider splitting large functions into smaller, more focused ones."
	default:
		return "Good modular structure with appropriately sized functions."
	}
}

func bugsFeedback(content string, issues []model.Issue) string {
	var parts []string

	critical := issuesWithSeverity(issues, model.SeverityCritical)
	high := issuesWithSeverity(issues, model.SeverityHigh)
	medium := issuesWithSeverity(issues, model.SeverityMedium)

	if len(critical) > 0 {
		parts = append(parts, fmt.Sprintf("CRITICAL: Found %d critical issues that will cause runtime errors or crashes.", len(critical)))
		for _, issue := range firstN(critical, 2) {
			parts = append(parts, fmt.Sprintf("- Line %d: %s", issue.LineNumber, issue.Description))
		}
	}
	if len(high) > 0 {
		parts = append(parts, fmt.Sprintf("HIGH PRIORITY: %d high-priority issues that could cause problems.", len(high)))
		for _, issue := range firstN(high, 2) {
			parts = append(parts, fmt.Sprintf("- Line %d: %s", issue.LineNumber, issue.Description))
		}
	}
	if len(medium) > 0 {
		parts = append(parts, fmt.Sprintf("MEDIUM PRIORITY: %d medium-priority issues for code quality.", len(medium)))
	}

	if strings.Contains(content, "/") && strings.Contains(content, "n") {
		parts = append(parts, "Potential division by zero detected - add validation.")
	}
	if strings.Contains(content, "input(") && strings.Contains(content, "int(") {
		parts = append(parts, "Missing input validation - add try-catch blocks.")
	}
	if strings.Contains(content, "range(") && strings.Contains(content, "[") {
		parts = append(parts, "Potential array bounds issues - verify index ranges.")
	}

	if len(parts) == 0 {
		return "No obvious bugs detected, but consider adding comprehensive input validation and error handling."
	}
	return strings.Join(parts, " ")
}

// maxSuggestions caps the suggestion list
const maxSuggestions = 6

func buildSuggestions(content string, lineCount int, language types.Language) []string {
	var suggestions []string

	if lineCount > 100 {
		suggestions = append(suggestions, "Consider breaking this file into smaller, focused modules for better maintainability")
	}
	if !strings.Contains(content, "TODO") && !strings.Contains(content, "FIXME") {
		suggestions = append(suggestions, "Add TODO comments for future improvements and known limitations")
	}

	if language == "Python" {
		if strings.Contains(content, "import") {
			suggestions = append(suggestions, "Organize imports according to PEP 8: standard library, third-party, local imports")
		}
		if strings.Contains(content, "def ") && !strings.Contains(content, "type:") {
			suggestions = append(suggestions, "Add type hints to function parameters and return values for better code documentation")
		}
		if strings.Contains(content, "global ") {
			suggestions = append(suggestions, "Refactor to avoid global variables - use dependency injection or return values instead")
		}
	}

	if strings.Contains(content, "input(") && !strings.Contains(content, "try:") {
		suggestions = append(suggestions, "Add comprehensive input validation with try-catch blocks to handle invalid user input")
	}
	if strings.Contains(content, "/") && !strings.Contains(content, "if") {
		suggestions = append(suggestions, "Add validation to prevent division by zero and other mathematical errors")
	}
	if strings.Contains(content, "print(") || strings.Contains(content, "console.log") {
		suggestions = append(suggestions, "Replace print statements with proper logging framework for production code")
	}

	suggestions = append(suggestions, "Add comprehensive unit tests to cover edge cases and error conditions")
	suggestions = append(suggestions, "Implement proper error handling and graceful failure modes")

	if strings.Contains(content, "for ") && strings.Contains(content, "range(") {
		suggestions = append(suggestions, "Consider using list comprehensions or generator expressions for better performance")
	}

	return firstN(suggestions, maxSuggestions)
}

// buildSummary renders the engine summary from the pre-clamp score so that
// the quality band reflects the raw deductions
func buildSummary(score float64, issueCount int, language types.Language, criticalCount, highCount int) string {
	var parts []string

	switch {
	case score >= 8:
		parts = append(parts, fmt.Sprintf("Excellent %s code with high quality standards.", language))
	case score >= 6:
		parts = append(parts, fmt.Sprintf("Good %s code with room for improvement.", language))
	case score >= 4:
		parts = append(parts, fmt.Sprintf("Fair %s code that needs attention to several issues.", language))
	default:
		parts = append(parts, fmt.Sprintf("Poor %s code requiring significant refactoring.", language))
	}

	if issueCount == 0 {
		parts = append(parts, "No issues detected.")
	} else {
		var breakdown []string
		if criticalCount > 0 {
			breakdown = append(breakdown, fmt.Sprintf("%d critical", criticalCount))
		}
		if highCount > 0 {
			breakdown = append(breakdown, fmt.Sprintf("%d high-priority", highCount))
		}
		if rest := issueCount - criticalCount - highCount; rest > 0 {
			breakdown = append(breakdown, fmt.Sprintf("%d medium/low", rest))
		}
		parts = append(parts, fmt.Sprintf("Found %d total issues: %s.", issueCount, strings.Join(breakdown, ", ")))
	}

	switch {
	case criticalCount > 0:
		parts = append(parts, "URGENT: Address critical issues immediately to prevent runtime errors.")
	case highCount > 0:
		parts = append(parts, "PRIORITY: Focus on high-priority issues for better code reliability.")
	case issueCount > 0:
		parts = append(parts, "Consider addressing medium-priority issues for improved code quality.")
	default:
		parts = append(parts, "Code is in good shape - consider adding tests and documentation.")
	}

	return strings.Join(parts, " ")
}

func issuesWithSeverity(issues []model.Issue, sev model.Severity) []model.Issue {
	var matched []model.Issue
	for _, issue := range issues {
		if issue.Severity == sev {
			matched = append(matched, issue)
		}
	}
	return matched
}

func firstN[T any](items []T, n int) []T {
	if len(items) <= n {
		return items
	}
	return items[:n]
}
