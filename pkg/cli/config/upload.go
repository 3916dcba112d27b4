package config

import (
	"log/slog"

	"github.com/urfave/cli/v3"
)

// Upload holds upload validation configuration
type Upload struct {
	MaxFileSizeKB int
	LanguagesFile string
}

// Flags returns CLI flags for Upload configuration
func (u *Upload) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:        "max-file-size-kb",
			Usage:       "Upload size ceiling per file in kilobytes",
			Category:    "Upload",
			Value:       200,
			Sources:     cli.EnvVars("ARGUS_MAX_FILE_SIZE_KB"),
			Destination: &u.MaxFileSizeKB,
		},
		&cli.StringFlag{
			Name:        "languages-file",
			Usage:       "YAML file with extra extension to language mappings",
			Category:    "Upload",
			Sources:     cli.EnvVars("ARGUS_LANGUAGES_FILE"),
			Destination: &u.LanguagesFile,
		},
	}
}

// LogValue returns structured log value
func (u Upload) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("max_file_size_kb", u.MaxFileSizeKB),
		slog.String("languages_file", u.LanguagesFile),
	)
}
