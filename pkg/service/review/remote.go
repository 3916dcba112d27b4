package review

import (
	"bytes"
	"context"
	"embed"
	"encoding/json"
	"regexp"
	"text/template"

	"github.com/argus-lab/argus/pkg/domain/interfaces"
	"github.com/argus-lab/argus/pkg/domain/model"
	"github.com/argus-lab/argus/pkg/domain/types"
	"github.com/argus-lab/argus/pkg/service/lang"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"
)

// Error tags for categorization
var (
	ErrTagInvalidJSON   = goerr.NewTag("invalid_json")
	ErrTagEmptyResponse = goerr.NewTag("empty_response")
)

//go:embed templates/*.md
var templateFS embed.FS

// jsonObjectPattern extracts the outermost JSON object from a response that
// wraps it in prose or code fences
var jsonObjectPattern = regexp.MustCompile(`(?s)\{.*\}`)

// RemoteAnalyzer asks an LLM for a structured review and degrades to the
// fallback analyzer on any failure: network, empty response, or unparseable
// JSON. It satisfies the same contract as the heuristic engine.
type RemoteAnalyzer struct {
	llm        gollem.LLMClient
	fallback   interfaces.CodeAnalyzer
	classifier *lang.Classifier
	tmpl       *template.Template
}

// promptData carries the values rendered into the review prompt template
type promptData struct {
	Language types.Language
	Content  string
}

// llmReview mirrors the JSON shape the prompt instructs the model to return
type llmReview struct {
	OverallScore   float64    `json:"overall_score"`
	Summary        string     `json:"summary"`
	Readability    string     `json:"readability"`
	Modularity     string     `json:"modularity"`
	PotentialBugs  string     `json:"potential_bugs"`
	Suggestions    []string   `json:"suggestions"`
	LineWiseIssues []llmIssue `json:"line_wise_issues"`
}

type llmIssue struct {
	Line          int    `json:"line"`
	Type          string `json:"type"`
	Severity      string `json:"severity"`
	Issue         string `json:"issue"`
	FixSuggestion string `json:"fix_suggestion"`
}

// NewRemoteAnalyzer creates an LLM-backed analyzer with the given fallback
func NewRemoteAnalyzer(llm gollem.LLMClient, fallback interfaces.CodeAnalyzer, classifier *lang.Classifier) (*RemoteAnalyzer, error) {
	raw, err := templateFS.ReadFile("templates/code_review.md")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read code review template")
	}
	tmpl, err := template.New("code_review").Parse(string(raw))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse code review template")
	}

	return &RemoteAnalyzer{
		llm:        llm,
		fallback:   fallback,
		classifier: classifier,
		tmpl:       tmpl,
	}, nil
}

// Analyze requests a review from the LLM, falling back to the heuristic
// analyzer when the call or the response parsing fails
func (a *RemoteAnalyzer) Analyze(ctx context.Context, content, filename string) (*model.Review, error) {
	language := a.classifier.Detect(filename)

	review, err := a.analyzeRemote(ctx, content, language)
	if err != nil {
		ctxlog.From(ctx).Warn("LLM review failed, falling back to heuristic analysis",
			"filename", filename,
			"error", err,
		)
		return a.fallback.Analyze(ctx, content, filename)
	}
	return review, nil
}

func (a *RemoteAnalyzer) analyzeRemote(ctx context.Context, content string, language types.Language) (*model.Review, error) {
	var buf bytes.Buffer
	if err := a.tmpl.Execute(&buf, promptData{Language: language, Content: content}); err != nil {
		return nil, goerr.Wrap(err, "failed to render review prompt")
	}

	session, err := a.llm.NewSession(ctx, gollem.WithSessionContentType(gollem.ContentTypeJSON))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create LLM session")
	}

	response, err := session.GenerateContent(ctx, gollem.Text(buf.String()))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to generate LLM response")
	}
	if len(response.Texts) == 0 || response.Texts[0] == "" {
		return nil, goerr.New("empty response from LLM", goerr.T(ErrTagEmptyResponse))
	}

	parsed, err := parseReviewJSON(response.Texts[0])
	if err != nil {
		return nil, err
	}
	return buildReview(parsed, language), nil
}

// parseReviewJSON decodes the response, retrying on the extracted JSON object
// when the model wrapped it in extra text
func parseReviewJSON(text string) (*llmReview, error) {
	var parsed llmReview
	if err := json.Unmarshal([]byte(text), &parsed); err == nil {
		return &parsed, nil
	}

	extracted := jsonObjectPattern.FindString(text)
	if extracted == "" {
		return nil, goerr.New("no JSON object in LLM response",
			goerr.T(ErrTagInvalidJSON))
	}
	if err := json.Unmarshal([]byte(extracted), &parsed); err != nil {
		return nil, goerr.Wrap(err, "failed to parse LLM response as JSON",
			goerr.T(ErrTagInvalidJSON))
	}
	return &parsed, nil
}

// buildReview converts the decoded payload into a Review, skipping issues
// with malformed severities and filling defaults for missing fields
func buildReview(parsed *llmReview, language types.Language) *model.Review {
	var issues []model.Issue
	for _, raw := range parsed.LineWiseIssues {
		severity, err := model.ParseSeverity(raw.Severity)
		if err != nil {
			continue
		}
		issueType := types.IssueType(raw.Type)
		if issueType == "" {
			issueType = types.IssueTypeGeneral
		}
		issues = append(issues, model.Issue{
			LineNumber:  raw.Line,
			Type:        issueType,
			Severity:    severity,
			Description: raw.Issue,
			Suggestion:  raw.FixSuggestion,
		})
	}

	review := &model.Review{
		Readability:   parsed.Readability,
		Modularity:    parsed.Modularity,
		PotentialBugs: parsed.PotentialBugs,
		Suggestions:   parsed.Suggestions,
		Issues:        issues,
		OverallScore:  model.ClampScore(int(parsed.OverallScore)),
		Summary:       parsed.Summary,
	}

	if review.Readability == "" {
		review.Readability = "No readability assessment provided"
	}
	if review.Modularity == "" {
		review.Modularity = "No modularity assessment provided"
	}
	if review.PotentialBugs == "" {
		review.PotentialBugs = "No bug analysis provided"
	}
	if review.Summary == "" {
		review.Summary = "Code review completed for " + language.String() + " file"
	}
	if parsed.OverallScore == 0 {
		review.OverallScore = 5
	}

	return review
}
