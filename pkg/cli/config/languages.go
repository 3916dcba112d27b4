package config

import (
	"os"
	"strings"

	"github.com/argus-lab/argus/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"gopkg.in/yaml.v3"
)

// languageEntry is one extension to language mapping in the YAML file
type languageEntry struct {
	Extension string `yaml:"extension"`
	Language  string `yaml:"language"`
}

type languagesFile struct {
	Languages []languageEntry `yaml:"languages"`
}

// LoadLanguagesFromFile loads extra extension mappings from a YAML file.
// Entries are merged over the built-in table by the classifier.
func LoadLanguagesFromFile(path string) (map[string]types.Language, error) {
	if path == "" {
		return nil, goerr.New("configuration file path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(err, "configuration file not found",
				goerr.V("path", path))
		}
		return nil, goerr.Wrap(err, "failed to read configuration file",
			goerr.V("path", path))
	}

	var config languagesFile
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, goerr.Wrap(err, "failed to parse YAML configuration",
			goerr.V("path", path))
	}

	table := make(map[string]types.Language, len(config.Languages))
	for _, entry := range config.Languages {
		if entry.Extension == "" || entry.Language == "" {
			return nil, goerr.New("language entry requires extension and language",
				goerr.V("path", path),
				goerr.V("extension", entry.Extension),
				goerr.V("language", entry.Language))
		}
		ext := strings.ToLower(entry.Extension)
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		table[ext] = types.Language(entry.Language)
	}

	return table, nil
}
