package review

import (
	"fmt"
	"strings"

	"github.com/argus-lab/argus/pkg/domain/model"
	"github.com/argus-lab/argus/pkg/domain/types"
)

// detector inspects one non-blank line and returns zero or one issue.
// line is the trimmed line text, num its 1-based number, lines the raw file
// lines for detectors that need surrounding context.
type detector func(line string, num int, lines []string) *model.Issue

// catalogue lists the detectors in evaluation order. Issue order within a
// line follows this order, so it must stay stable.
var catalogue = []detector{
	detectLongLine,
	detectDivisionByZero,
	detectRangeIndexing,
	detectUnvalidatedInput,
	detectGlobalVariable,
	detectPrintStatement,
	detectMissingDocstring,
	detectHardcodedURL,
}

// maxIssues caps the number of reported issues per file
const maxIssues = 10

// detectIssues scans all lines top-to-bottom and collects up to maxIssues
// issues in line order, catalogue order within a line
func detectIssues(lines []string) []model.Issue {
	var issues []model.Issue
	for i, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		num := i + 1
		for _, detect := range catalogue {
			if issue := detect(line, num, lines); issue != nil {
				issues = append(issues, *issue)
				if len(issues) >= maxIssues {
					return issues
				}
			}
		}
	}
	return issues
}

func detectLongLine(line string, num int, _ []string) *model.Issue {
	if len(line) <= 100 {
		return nil
	}
	return &model.Issue{
		LineNumber:  num,
		Type:        types.IssueTypeStyle,
		Severity:    model.SeverityLow,
		Description: fmt.Sprintf("Line %d is too long (%d characters)", num, len(line)),
		Suggestion:  "Consider breaking this line into multiple lines",
	}
}

// detectDivisionByZero is a deliberately crude lexical heuristic: a division
// operator next to a variable-looking "n" and an assignment. It is not a
// data-flow check.
func detectDivisionByZero(line string, num int, _ []string) *model.Issue {
	if !strings.Contains(line, "/") || !strings.Contains(line, "n") || !strings.Contains(line, "=") {
		return nil
	}
	return &model.Issue{
		LineNumber:  num,
		Type:        types.IssueTypeBug,
		Severity:    model.SeverityCritical,
		Description: fmt.Sprintf("Potential division by zero on line %d", num),
		Suggestion:  "Add validation to ensure divisor is not zero before division",
	}
}

func detectRangeIndexing(line string, num int, _ []string) *model.Issue {
	if !strings.Contains(line, "range(") || !strings.Contains(line, "[") {
		return nil
	}
	return &model.Issue{
		LineNumber:  num,
		Type:        types.IssueTypeBug,
		Severity:    model.SeverityHigh,
		Description: fmt.Sprintf("Potential array index out of bounds on line %d", num),
		Suggestion:  "Verify array size matches range bounds",
	}
}

func detectUnvalidatedInput(line string, num int, _ []string) *model.Issue {
	if !strings.Contains(line, "input(") || !strings.Contains(line, "int(") {
		return nil
	}
	return &model.Issue{
		LineNumber:  num,
		Type:        types.IssueTypeSecurity,
		Severity:    model.SeverityMedium,
		Description: fmt.Sprintf("Missing input validation on line %d", num),
		Suggestion:  "Add try-catch block to handle invalid input",
	}
}

func detectGlobalVariable(line string, num int, _ []string) *model.Issue {
	if !strings.HasPrefix(line, "global ") {
		return nil
	}
	return &model.Issue{
		LineNumber:  num,
		Type:        types.IssueTypeMaintainability,
		Severity:    model.SeverityMedium,
		Description: fmt.Sprintf("Use of global variables on line %d", num),
		Suggestion:  "Consider refactoring to avoid global state",
	}
}

func detectPrintStatement(line string, num int, _ []string) *model.Issue {
	if !strings.HasPrefix(line, "print(") {
		return nil
	}
	return &model.Issue{
		LineNumber:  num,
		Type:        types.IssueTypeStyle,
		Severity:    model.SeverityLow,
		Description: fmt.Sprintf("Use of print statement on line %d", num),
		Suggestion:  "Consider using proper logging instead of print statements",
	}
}

// detectMissingDocstring fires for a function definition that is neither
// immediately followed by a docstring opener nor covered by a docstring
// delimiter within the two preceding lines. One issue per qualifying line.
func detectMissingDocstring(line string, num int, lines []string) *model.Issue {
	if !strings.HasPrefix(line, "def ") {
		return nil
	}

	undocumentedBelow := false
	if num <= len(lines)-2 {
		next := strings.TrimSpace(lines[num])
		undocumentedBelow = !strings.HasPrefix(next, `"""`) && !strings.HasPrefix(next, "'''")
	}

	undocumentedAbove := true
	for i := max(0, num-3); i < num; i++ {
		if strings.Contains(lines[i], `"""`) || strings.Contains(lines[i], "'''") {
			undocumentedAbove = false
			break
		}
	}

	if !undocumentedBelow && !undocumentedAbove {
		return nil
	}
	return &model.Issue{
		LineNumber:  num,
		Type:        types.IssueTypeDocumentation,
		Severity:    model.SeverityMedium,
		Description: fmt.Sprintf("Function on line %d lacks documentation", num),
		Suggestion:  "Add a docstring to describe the function's purpose and parameters",
	}
}

func detectHardcodedURL(line string, num int, _ []string) *model.Issue {
	if !strings.Contains(line, "http://") && !strings.Contains(line, "https://") {
		return nil
	}
	return &model.Issue{
		LineNumber:  num,
		Type:        types.IssueTypeMaintainability,
		Severity:    model.SeverityMedium,
		Description: fmt.Sprintf("Hardcoded URL found at line %d", num),
		Suggestion:  "Consider using environment variables or configuration files",
	}
}
