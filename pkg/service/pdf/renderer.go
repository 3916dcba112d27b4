package pdf

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/argus-lab/argus/pkg/domain/model"
	"github.com/go-pdf/fpdf"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// Renderer writes formatted reports as PDF documents into a reports
// directory. It is a side-effecting sink: callers treat render failures as
// degradation, not as request failures.
type Renderer struct {
	dir string
}

// New creates a renderer, ensuring the reports directory exists
func New(dir string) (*Renderer, error) {
	if dir == "" {
		return nil, goerr.New("reports directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, goerr.Wrap(err, "failed to create reports directory",
			goerr.V("dir", dir))
	}
	return &Renderer{dir: dir}, nil
}

// Render generates the PDF report and returns the generated file name
func (r *Renderer) Render(ctx context.Context, report *model.FormattedReport) (string, error) {
	if report == nil {
		return "", goerr.New("report is nil")
	}

	base := strings.TrimSuffix(report.Filename, filepath.Ext(report.Filename))
	name := base + "_review_report.pdf"
	path := filepath.Join(r.dir, filepath.Base(name))

	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetAutoPageBreak(true, 15)
	doc.AddPage()

	writeTitle(doc, "Code Review Report")
	writeFileInfo(doc, report)
	writeParagraph(doc, "Summary", report.Summary)
	writeQualityMetrics(doc, report.QualityMetrics)
	writeParagraph(doc, "Readability", report.Readability)
	writeParagraph(doc, "Modularity", report.Modularity)
	writeParagraph(doc, "Potential Bugs", report.PotentialBugs)
	writeIssues(doc, report)
	writeSuggestions(doc, report.Suggestions)

	if err := doc.OutputFileAndClose(path); err != nil {
		return "", goerr.Wrap(err, "failed to write PDF report",
			goerr.V("path", path))
	}

	ctxlog.From(ctx).Info("Generated PDF report",
		"filename", report.Filename,
		"path", path,
	)
	return filepath.Base(name), nil
}

// Path resolves a generated report name to its path inside the reports
// directory. The name is reduced to its base to keep lookups inside the
// directory.
func (r *Renderer) Path(name string) string {
	return filepath.Join(r.dir, filepath.Base(name))
}

// Sweep deletes generated reports older than maxAge and returns the number
// of removed files
func (r *Renderer) Sweep(ctx context.Context, maxAge time.Duration) (int, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return 0, goerr.Wrap(err, "failed to read reports directory",
			goerr.V("dir", r.dir))
	}

	cutoff := time.Now().Add(-maxAge)
	removed := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".pdf") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().After(cutoff) {
			continue
		}
		if err := os.Remove(filepath.Join(r.dir, entry.Name())); err != nil {
			ctxlog.From(ctx).Warn("Failed to remove stale PDF report",
				"name", entry.Name(),
				"error", err,
			)
			continue
		}
		removed++
	}
	return removed, nil
}

func writeTitle(doc *fpdf.Fpdf, title string) {
	doc.SetFont("Helvetica", "B", 22)
	doc.SetTextColor(0, 0, 128)
	doc.CellFormat(0, 14, title, "", 1, "C", false, 0, "")
	doc.Ln(6)
}

func writeFileInfo(doc *fpdf.Fpdf, report *model.FormattedReport) {
	writeHeading(doc, "File Information")

	rows := [][2]string{
		{"File Name", report.Filename},
		{"Overall Score", fmt.Sprintf("%d/10", report.OverallScore)},
		{"Total Issues", fmt.Sprintf("%d", report.TotalIssues)},
		{"Generated", time.Now().Format("2006-01-02 15:04:05")},
	}

	doc.SetFont("Helvetica", "", 10)
	doc.SetTextColor(0, 0, 0)
	for _, row := range rows {
		doc.SetFont("Helvetica", "B", 10)
		doc.CellFormat(50, 8, row[0], "1", 0, "L", false, 0, "")
		doc.SetFont("Helvetica", "", 10)
		doc.CellFormat(0, 8, row[1], "1", 1, "L", false, 0, "")
	}
	doc.Ln(6)
}

func writeQualityMetrics(doc *fpdf.Fpdf, metrics model.QualityMetrics) {
	writeHeading(doc, "Quality Metrics")

	rows := [][2]string{
		{"Complexity Score", fmt.Sprintf("%.1f/10", metrics.ComplexityScore)},
		{"Maintainability Score", fmt.Sprintf("%.1f/10", metrics.MaintainabilityScore)},
		{"Suggestions Count", fmt.Sprintf("%d", metrics.SuggestionsCount)},
		{"Issues per Suggestion", fmt.Sprintf("%.2f", metrics.IssuesPerSuggestion)},
	}

	doc.SetFont("Helvetica", "", 10)
	doc.SetTextColor(0, 0, 0)
	for _, row := range rows {
		doc.CellFormat(60, 8, row[0], "1", 0, "L", false, 0, "")
		doc.CellFormat(40, 8, row[1], "1", 1, "C", false, 0, "")
	}
	doc.Ln(6)
}

func writeIssues(doc *fpdf.Fpdf, report *model.FormattedReport) {
	if report.TotalIssues == 0 {
		return
	}
	writeHeading(doc, "Issues by Severity")

	for _, sev := range model.Severities() {
		details := report.IssuesBySeverity[sev]
		if len(details) == 0 {
			continue
		}

		doc.SetFont("Helvetica", "B", 11)
		doc.SetTextColor(0, 100, 0)
		doc.CellFormat(0, 8, fmt.Sprintf("%s (%d)", strings.ToUpper(sev.String()), len(details)), "", 1, "L", false, 0, "")

		doc.SetFont("Helvetica", "", 9)
		doc.SetTextColor(0, 0, 0)
		for _, detail := range details {
			line := fmt.Sprintf("Line %d [%s]: %s", detail.LineNumber, detail.Type, detail.Description)
			if detail.LineNumber == 0 {
				line = fmt.Sprintf("[%s]: %s", detail.Type, detail.Description)
			}
			doc.MultiCell(0, 5, line, "", "L", false)
			if detail.Suggestion != "" {
				doc.MultiCell(0, 5, "  Fix: "+detail.Suggestion, "", "L", false)
			}
		}
		doc.Ln(3)
	}
}

func writeSuggestions(doc *fpdf.Fpdf, suggestions []string) {
	if len(suggestions) == 0 {
		return
	}
	writeHeading(doc, "Improvement Suggestions")

	doc.SetFont("Helvetica", "", 10)
	doc.SetTextColor(0, 0, 0)
	for i, suggestion := range suggestions {
		doc.MultiCell(0, 6, fmt.Sprintf("%d. %s", i+1, suggestion), "", "L", false)
	}
}

func writeParagraph(doc *fpdf.Fpdf, heading, text string) {
	if text == "" {
		return
	}
	writeHeading(doc, heading)
	doc.SetFont("Helvetica", "", 10)
	doc.SetTextColor(0, 0, 0)
	doc.MultiCell(0, 6, text, "", "L", false)
	doc.Ln(4)
}

func writeHeading(doc *fpdf.Fpdf, text string) {
	doc.SetFont("Helvetica", "B", 14)
	doc.SetTextColor(0, 0, 128)
	doc.CellFormat(0, 10, text, "", 1, "L", false, 0, "")
}
