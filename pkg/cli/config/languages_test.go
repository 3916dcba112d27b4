package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/argus-lab/argus/pkg/cli/config"
	"github.com/argus-lab/argus/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

func writeLanguagesFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "languages.yml")
	gt.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadLanguagesFromFile(t *testing.T) {
	t.Run("Load mappings", func(t *testing.T) {
		path := writeLanguagesFile(t, `languages:
  - extension: .kt
    language: Kotlin
  - extension: .scala
    language: Scala
`)
		table, err := config.LoadLanguagesFromFile(path)
		gt.NoError(t, err)
		gt.Equal(t, 2, len(table))
		gt.Equal(t, types.Language("Kotlin"), table[".kt"])
		gt.Equal(t, types.Language("Scala"), table[".scala"])
	})

	t.Run("Extension gains leading dot", func(t *testing.T) {
		path := writeLanguagesFile(t, `languages:
  - extension: kt
    language: Kotlin
`)
		table, err := config.LoadLanguagesFromFile(path)
		gt.NoError(t, err)
		gt.Equal(t, types.Language("Kotlin"), table[".kt"])
	})

	t.Run("Extension is lowercased", func(t *testing.T) {
		path := writeLanguagesFile(t, `languages:
  - extension: .KT
    language: Kotlin
`)
		table, err := config.LoadLanguagesFromFile(path)
		gt.NoError(t, err)
		gt.Equal(t, types.Language("Kotlin"), table[".kt"])
	})

	t.Run("Empty path rejected", func(t *testing.T) {
		_, err := config.LoadLanguagesFromFile("")
		gt.Error(t, err)
	})

	t.Run("Missing file rejected", func(t *testing.T) {
		_, err := config.LoadLanguagesFromFile(filepath.Join(t.TempDir(), "absent.yml"))
		gt.Error(t, err)
	})

	t.Run("Invalid YAML rejected", func(t *testing.T) {
		path := writeLanguagesFile(t, "languages: [unclosed")
		_, err := config.LoadLanguagesFromFile(path)
		gt.Error(t, err)
	})

	t.Run("Entry without language rejected", func(t *testing.T) {
		path := writeLanguagesFile(t, `languages:
  - extension: .kt
    language: ""
`)
		_, err := config.LoadLanguagesFromFile(path)
		gt.Error(t, err)
	})

	t.Run("Empty file yields empty table", func(t *testing.T) {
		path := writeLanguagesFile(t, "")
		table, err := config.LoadLanguagesFromFile(path)
		gt.NoError(t, err)
		gt.Equal(t, 0, len(table))
	})
}
