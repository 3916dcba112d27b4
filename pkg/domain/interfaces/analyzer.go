package interfaces

import (
	"context"

	"github.com/argus-lab/argus/pkg/domain/model"
)

// CodeAnalyzer produces a raw review from source text. Implementations are
// interchangeable strategies: the heuristic engine is deterministic and never
// fails; the LLM-backed analyzer degrades to the heuristic one on any failure.
type CodeAnalyzer interface {
	Analyze(ctx context.Context, content, filename string) (*model.Review, error)
}

// ReportRenderer renders a formatted report into a downloadable document and
// returns the generated file name. Failures must not abort the caller's
// primary response.
type ReportRenderer interface {
	Render(ctx context.Context, report *model.FormattedReport) (string, error)
}
