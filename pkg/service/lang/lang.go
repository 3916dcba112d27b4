package lang

import (
	"sort"
	"strings"

	"github.com/argus-lab/argus/pkg/domain/types"
)

// defaultTable maps file extensions to language labels
var defaultTable = map[string]types.Language{
	".py":   "Python",
	".js":   "JavaScript",
	".java": "Java",
	".cpp":  "C++",
	".c":    "C",
	".ts":   "TypeScript",
	".go":   "Go",
	".rs":   "Rust",
	".php":  "PHP",
	".rb":   "Ruby",
	".txt":  "Text",
}

// Classifier maps filename extensions to language labels. The table is
// read-only after construction.
type Classifier struct {
	table map[string]types.Language
}

// New creates a classifier with the default extension table
func New() *Classifier {
	return NewWithTable(nil)
}

// NewWithTable creates a classifier with extra extension mappings merged over
// the default table. Keys must include the leading dot.
func NewWithTable(extra map[string]types.Language) *Classifier {
	table := make(map[string]types.Language, len(defaultTable)+len(extra))
	for ext, label := range defaultTable {
		table[ext] = label
	}
	for ext, label := range extra {
		table[strings.ToLower(ext)] = label
	}
	return &Classifier{table: table}
}

// Detect returns the language label for the filename's extension.
// Unrecognized extensions, and filenames without a dot, return Unknown.
func (c *Classifier) Detect(filename string) types.Language {
	if label, ok := c.table[extensionOf(filename)]; ok {
		return label
	}
	return types.LanguageUnknown
}

// IsSupported reports whether the filename's extension is in the table
func (c *Classifier) IsSupported(filename string) bool {
	_, ok := c.table[extensionOf(filename)]
	return ok
}

// Extensions returns the supported extensions sorted alphabetically
func (c *Classifier) Extensions() []string {
	exts := make([]string, 0, len(c.table))
	for ext := range c.table {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// Languages returns the distinct language labels sorted alphabetically
func (c *Classifier) Languages() []string {
	seen := make(map[types.Language]bool, len(c.table))
	var labels []string
	for _, label := range c.table {
		if !seen[label] {
			seen[label] = true
			labels = append(labels, label.String())
		}
	}
	sort.Strings(labels)
	return labels
}

// extensionOf extracts the lower-cased extension including the leading dot.
// A dotless filename yields the whole name as a pseudo-extension, which never
// matches the table.
func extensionOf(filename string) string {
	after := filename
	if idx := strings.LastIndex(filename, "."); idx >= 0 {
		after = filename[idx+1:]
	}
	return "." + strings.ToLower(after)
}
