package config

import (
	"log/slog"
	"strings"

	"github.com/urfave/cli/v3"
)

// Server holds server configuration
type Server struct {
	Addr           string
	AllowedOrigins []string
}

// Flags returns CLI flags for Server configuration
func (s *Server) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Server address",
			Value:       "localhost:8080",
			Sources:     cli.EnvVars("ARGUS_ADDR"),
			Destination: &s.Addr,
		},
		&cli.StringSliceFlag{
			Name:        "allowed-origin",
			Usage:       "CORS allowed origin, repeatable (empty allows any origin)",
			Sources:     cli.EnvVars("ARGUS_ALLOWED_ORIGINS"),
			Destination: &s.AllowedOrigins,
		},
	}
}

// LogValue returns structured log value
func (s Server) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("addr", s.Addr),
		slog.String("allowed_origins", strings.Join(s.AllowedOrigins, ",")),
	)
}
