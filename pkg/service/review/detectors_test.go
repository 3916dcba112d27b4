package review

import (
	"strings"
	"testing"

	"github.com/argus-lab/argus/pkg/domain/model"
	"github.com/argus-lab/argus/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

func TestDetectIssues(t *testing.T) {
	t.Run("Long line", func(t *testing.T) {
		lines := []string{"x = 1", strings.Repeat("a", 101)}
		issues := detectIssues(lines)
		gt.Equal(t, 1, len(issues))
		gt.Equal(t, 2, issues[0].LineNumber)
		gt.Equal(t, types.IssueTypeStyle, issues[0].Type)
		gt.Equal(t, model.SeverityLow, issues[0].Severity)
	})

	t.Run("Line of exactly 100 characters passes", func(t *testing.T) {
		issues := detectIssues([]string{strings.Repeat("a", 100)})
		gt.Equal(t, 0, len(issues))
	})

	t.Run("Division heuristic", func(t *testing.T) {
		issues := detectIssues([]string{"avg = total / n"})
		gt.Equal(t, 1, len(issues))
		gt.Equal(t, types.IssueTypeBug, issues[0].Type)
		gt.Equal(t, model.SeverityCritical, issues[0].Severity)
	})

	t.Run("Range indexing heuristic", func(t *testing.T) {
		issues := detectIssues([]string{"for i in range(10): print(items[i])"})
		found := false
		for _, issue := range issues {
			if issue.Type == types.IssueTypeBug && issue.Severity == model.SeverityHigh {
				found = true
			}
		}
		gt.True(t, found)
	})

	t.Run("Unvalidated input", func(t *testing.T) {
		issues := detectIssues([]string{`age = int(input("age: "))`})
		found := false
		for _, issue := range issues {
			if issue.Type == types.IssueTypeSecurity {
				found = true
				gt.Equal(t, model.SeverityMedium, issue.Severity)
			}
		}
		gt.True(t, found)
	})

	t.Run("Global variable", func(t *testing.T) {
		issues := detectIssues([]string{"global counter"})
		gt.Equal(t, 1, len(issues))
		gt.Equal(t, types.IssueTypeMaintainability, issues[0].Type)
		gt.Equal(t, model.SeverityMedium, issues[0].Severity)
	})

	t.Run("Print statement", func(t *testing.T) {
		issues := detectIssues([]string{`print("hello")`})
		gt.Equal(t, 1, len(issues))
		gt.Equal(t, types.IssueTypeStyle, issues[0].Type)
		gt.Equal(t, model.SeverityLow, issues[0].Severity)
	})

	t.Run("Indented print is still detected", func(t *testing.T) {
		issues := detectIssues([]string{`    print("hello")`})
		gt.Equal(t, 1, len(issues))
		gt.Equal(t, types.IssueTypeStyle, issues[0].Type)
	})

	t.Run("Hardcoded URL", func(t *testing.T) {
		issues := detectIssues([]string{`fetch("http://example.com/path")`})
		gt.Equal(t, 1, len(issues))
		gt.Equal(t, types.IssueTypeMaintainability, issues[0].Type)
	})

	t.Run("One line can raise several issues", func(t *testing.T) {
		// Assignment with a slash also trips the division heuristic
		issues := detectIssues([]string{`endpoint = "https://api.example.com"`})
		gt.Equal(t, 2, len(issues))
		gt.Equal(t, types.IssueTypeBug, issues[0].Type)
		gt.Equal(t, types.IssueTypeMaintainability, issues[1].Type)
	})

	t.Run("Blank lines are skipped", func(t *testing.T) {
		issues := detectIssues([]string{"", "   ", "\t"})
		gt.Equal(t, 0, len(issues))
	})

	t.Run("Caps at ten issues", func(t *testing.T) {
		var lines []string
		for i := 0; i < 15; i++ {
			lines = append(lines, `print("x")`)
		}
		issues := detectIssues(lines)
		gt.Equal(t, maxIssues, len(issues))
	})

	t.Run("Issues are ordered by line", func(t *testing.T) {
		issues := detectIssues([]string{
			"global state",
			"x = 1",
			`print("x")`,
		})
		gt.Equal(t, 2, len(issues))
		gt.Equal(t, 1, issues[0].LineNumber)
		gt.Equal(t, 3, issues[1].LineNumber)
	})
}

func TestDetectMissingDocstring(t *testing.T) {
	t.Run("Function without docstring", func(t *testing.T) {
		lines := []string{"def add(a, b):", "    return a + b"}
		issues := detectIssues(lines)
		gt.Equal(t, 1, len(issues))
		gt.Equal(t, types.IssueTypeDocumentation, issues[0].Type)
		gt.Equal(t, 1, issues[0].LineNumber)
	})

	t.Run("Documented function", func(t *testing.T) {
		// Docstring both below the def and within the look-behind window
		lines := []string{
			`"""Helpers."""`,
			"def add(a, b):",
			`    """Add two numbers."""`,
			"    return a + b",
		}
		issues := detectIssues(lines)
		gt.Equal(t, 0, len(issues))
	})

	t.Run("Single-quoted docstring", func(t *testing.T) {
		lines := []string{
			"'''Helpers.'''",
			"def add(a, b):",
			"    '''Add two numbers.'''",
			"    return a + b",
		}
		issues := detectIssues(lines)
		gt.Equal(t, 0, len(issues))
	})

	t.Run("Docstring below without one above still flags", func(t *testing.T) {
		lines := []string{
			"def add(a, b):",
			`    """Add two numbers."""`,
			"    return a + b",
		}
		issues := detectIssues(lines)
		gt.Equal(t, 1, len(issues))
		gt.Equal(t, types.IssueTypeDocumentation, issues[0].Type)
	})

	t.Run("One issue per undocumented function", func(t *testing.T) {
		lines := []string{
			"def first():",
			"    pass",
			"",
			"",
			"def second():",
			"    pass",
		}
		issues := detectIssues(lines)
		gt.Equal(t, 2, len(issues))
		gt.Equal(t, 1, issues[0].LineNumber)
		gt.Equal(t, 5, issues[1].LineNumber)
	})
}
