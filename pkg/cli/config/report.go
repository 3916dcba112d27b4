package config

import (
	"log/slog"
	"time"

	"github.com/urfave/cli/v3"
)

// Report holds PDF report configuration
type Report struct {
	Dir       string
	Disabled  bool
	Retention time.Duration
}

// Flags returns CLI flags for Report configuration
func (r *Report) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "report-dir",
			Usage:       "Directory for generated PDF reports",
			Category:    "Report",
			Value:       "reports",
			Sources:     cli.EnvVars("ARGUS_REPORT_DIR"),
			Destination: &r.Dir,
		},
		&cli.BoolFlag{
			Name:        "report-disabled",
			Usage:       "Disable PDF report generation entirely",
			Category:    "Report",
			Sources:     cli.EnvVars("ARGUS_REPORT_DISABLED"),
			Destination: &r.Disabled,
		},
		&cli.DurationFlag{
			Name:        "report-retention",
			Usage:       "How long generated PDF files are kept before sweeping",
			Category:    "Report",
			Value:       24 * time.Hour,
			Sources:     cli.EnvVars("ARGUS_REPORT_RETENTION"),
			Destination: &r.Retention,
		},
	}
}

// LogValue returns structured log value
func (r Report) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("dir", r.Dir),
		slog.Bool("disabled", r.Disabled),
		slog.Duration("retention", r.Retention),
	)
}
