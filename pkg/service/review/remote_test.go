package review_test

import (
	"context"
	"testing"

	"github.com/argus-lab/argus/pkg/domain/model"
	"github.com/argus-lab/argus/pkg/domain/types"
	"github.com/argus-lab/argus/pkg/service/lang"
	"github.com/argus-lab/argus/pkg/service/review"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"
	"github.com/m-mizutani/gollem/mock"
	"github.com/m-mizutani/gt"
)

func mockLLM(texts []string, genErr error) *mock.LLMClientMock {
	return &mock.LLMClientMock{
		NewSessionFunc: func(ctx context.Context, options ...gollem.SessionOption) (gollem.Session, error) {
			mockSession := &mock.SessionMock{
				GenerateContentFunc: func(ctx context.Context, input ...gollem.Input) (*gollem.Response, error) {
					if genErr != nil {
						return nil, genErr
					}
					return &gollem.Response{Texts: texts}, nil
				},
			}
			return mockSession, nil
		},
	}
}

func newRemote(t *testing.T, llm gollem.LLMClient) *review.RemoteAnalyzer {
	classifier := lang.New()
	analyzer, err := review.NewRemoteAnalyzer(llm, review.NewEngine(classifier), classifier)
	gt.NoError(t, err)
	return analyzer
}

func TestRemoteAnalyzer_Success(t *testing.T) {
	ctx := context.Background()

	llm := mockLLM([]string{`{
		"overall_score": 7,
		"summary": "Solid utility module with a few rough edges",
		"readability": "Clear naming throughout",
		"modularity": "Functions are small and focused",
		"potential_bugs": "Division lacks a zero check",
		"suggestions": ["Guard the divisor", "Add type hints"],
		"line_wise_issues": [
			{"line": 3, "type": "bug", "severity": "critical", "issue": "Division by zero", "fix_suggestion": "Check the divisor"},
			{"line": 7, "type": "style", "severity": "low", "issue": "Print statement", "fix_suggestion": "Use logging"}
		]
	}`}, nil)

	result, err := newRemote(t, llm).Analyze(ctx, "a = b / c", "calc.py")
	gt.NoError(t, err)

	gt.Equal(t, 7, result.OverallScore)
	gt.Equal(t, "Solid utility module with a few rough edges", result.Summary)
	gt.Equal(t, "Clear naming throughout", result.Readability)
	gt.Equal(t, 2, len(result.Issues))
	gt.Equal(t, 3, result.Issues[0].LineNumber)
	gt.Equal(t, model.SeverityCritical, result.Issues[0].Severity)
	gt.Equal(t, types.IssueTypeBug, result.Issues[0].Type)
	gt.Equal(t, []string{"Guard the divisor", "Add type hints"}, result.Suggestions)
}

func TestRemoteAnalyzer_FencedJSON(t *testing.T) {
	ctx := context.Background()

	// Models sometimes wrap the object in prose or code fences
	llm := mockLLM([]string{"Here is the review:\n```json\n" +
		`{"overall_score": 6, "summary": "Fine", "readability": "ok", "modularity": "ok", "potential_bugs": "none", "suggestions": [], "line_wise_issues": []}` +
		"\n```"}, nil)

	result, err := newRemote(t, llm).Analyze(ctx, "a = b + c", "calc.py")
	gt.NoError(t, err)
	gt.Equal(t, 6, result.OverallScore)
	gt.Equal(t, "Fine", result.Summary)
}

func TestRemoteAnalyzer_Defaults(t *testing.T) {
	ctx := context.Background()

	t.Run("Missing fields are filled", func(t *testing.T) {
		llm := mockLLM([]string{`{"overall_score": 4, "line_wise_issues": []}`}, nil)

		result, err := newRemote(t, llm).Analyze(ctx, "a = b + c", "calc.py")
		gt.NoError(t, err)
		gt.Equal(t, 4, result.OverallScore)
		gt.Equal(t, "No readability assessment provided", result.Readability)
		gt.Equal(t, "No modularity assessment provided", result.Modularity)
		gt.Equal(t, "No bug analysis provided", result.PotentialBugs)
		gt.Equal(t, "Code review completed for Python file", result.Summary)
	})

	t.Run("Zero score defaults to five", func(t *testing.T) {
		llm := mockLLM([]string{`{"summary": "minimal", "line_wise_issues": []}`}, nil)

		result, err := newRemote(t, llm).Analyze(ctx, "a = b + c", "calc.py")
		gt.NoError(t, err)
		gt.Equal(t, 5, result.OverallScore)
	})

	t.Run("Invalid severity issues are skipped", func(t *testing.T) {
		llm := mockLLM([]string{`{
			"overall_score": 6,
			"summary": "ok",
			"line_wise_issues": [
				{"line": 1, "type": "bug", "severity": "catastrophic", "issue": "bad"},
				{"line": 2, "type": "style", "severity": "low", "issue": "minor"}
			]
		}`}, nil)

		result, err := newRemote(t, llm).Analyze(ctx, "a = b + c", "calc.py")
		gt.NoError(t, err)
		gt.Equal(t, 1, len(result.Issues))
		gt.Equal(t, 2, result.Issues[0].LineNumber)
	})
}

func TestRemoteAnalyzer_Fallback(t *testing.T) {
	ctx := context.Background()

	// The engine result on this input is deterministic: no issues, score 8
	const content = "a = b + c"

	t.Run("Generation error falls back to engine", func(t *testing.T) {
		llm := mockLLM(nil, goerr.New("model unavailable"))

		result, err := newRemote(t, llm).Analyze(ctx, content, "calc.py")
		gt.NoError(t, err)
		gt.Equal(t, 8, result.OverallScore)
		gt.Equal(t, 0, len(result.Issues))
	})

	t.Run("Empty response falls back to engine", func(t *testing.T) {
		llm := mockLLM([]string{}, nil)

		result, err := newRemote(t, llm).Analyze(ctx, content, "calc.py")
		gt.NoError(t, err)
		gt.Equal(t, 8, result.OverallScore)
	})

	t.Run("Unparseable response falls back to engine", func(t *testing.T) {
		llm := mockLLM([]string{"I could not review this file"}, nil)

		result, err := newRemote(t, llm).Analyze(ctx, content, "calc.py")
		gt.NoError(t, err)
		gt.Equal(t, 8, result.OverallScore)
	})

	t.Run("Session creation error falls back to engine", func(t *testing.T) {
		llm := &mock.LLMClientMock{
			NewSessionFunc: func(ctx context.Context, options ...gollem.SessionOption) (gollem.Session, error) {
				return nil, goerr.New("no credentials")
			},
		}

		result, err := newRemote(t, llm).Analyze(ctx, content, "calc.py")
		gt.NoError(t, err)
		gt.Equal(t, 8, result.OverallScore)
	})
}
