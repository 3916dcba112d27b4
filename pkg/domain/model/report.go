package model

import (
	"bytes"
	"encoding/json"

	"github.com/argus-lab/argus/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// IssueDetail is the reduced issue record carried by a formatted report
type IssueDetail struct {
	LineNumber  int             `json:"line_number,omitempty"`
	Type        types.IssueType `json:"type"`
	Description string          `json:"description"`
	Suggestion  string          `json:"suggestion,omitempty"`
}

// QualityMetrics holds derived quality scores computed from issue and
// suggestion counts
type QualityMetrics struct {
	ComplexityScore      float64 `json:"complexity_score"`
	MaintainabilityScore float64 `json:"maintainability_score"`
	SuggestionsCount     int     `json:"suggestions_count"`
	IssuesPerSuggestion  float64 `json:"issues_per_suggestion"`
}

// FormattedReport is the finalized, externally-consumable report shape.
// It is the unit handed to persistence, PDF rendering, and the HTTP response.
type FormattedReport struct {
	Filename         string                     `json:"filename"`
	OverallScore     int                        `json:"overall_score"`
	Summary          string                     `json:"summary"`
	Readability      string                     `json:"readability"`
	Modularity       string                     `json:"modularity"`
	PotentialBugs    string                     `json:"potential_bugs"`
	Suggestions      []string                   `json:"suggestions"`
	IssuesBySeverity map[Severity][]IssueDetail `json:"issues_by_severity"`
	IssuesByType     *TypeCounts                `json:"issues_by_type"`
	QualityMetrics   QualityMetrics             `json:"quality_metrics"`
	TotalIssues      int                        `json:"total_issues"`
	CriticalIssues   int                        `json:"critical_issues"`
	HighIssues       int                        `json:"high_issues"`
	MediumIssues     int                        `json:"medium_issues"`
	LowIssues        int                        `json:"low_issues"`
}

// TypeCounts counts issues per type while preserving first-seen order.
// It marshals to a JSON object whose keys appear in insertion order.
type TypeCounts struct {
	order  []types.IssueType
	counts map[types.IssueType]int
}

// NewTypeCounts creates an empty TypeCounts
func NewTypeCounts() *TypeCounts {
	return &TypeCounts{
		counts: make(map[types.IssueType]int),
	}
}

// Add increments the count for the given type, registering it on first sight
func (c *TypeCounts) Add(t types.IssueType) {
	if c.counts == nil {
		c.counts = make(map[types.IssueType]int)
	}
	if _, seen := c.counts[t]; !seen {
		c.order = append(c.order, t)
	}
	c.counts[t]++
}

// Count returns the count for the given type, zero if unseen
func (c *TypeCounts) Count(t types.IssueType) int {
	return c.counts[t]
}

// Types returns the issue types in first-seen order
func (c *TypeCounts) Types() []types.IssueType {
	return append([]types.IssueType(nil), c.order...)
}

// Len returns the number of distinct types seen
func (c *TypeCounts) Len() int {
	return len(c.order)
}

// MarshalJSON emits an object keyed by type in first-seen order
func (c *TypeCounts) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, t := range c.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(t.String())
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(c.counts[t])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON restores counts preserving the object's key order
func (c *TypeCounts) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return goerr.Wrap(err, "failed to decode type counts")
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return goerr.New("type counts must be a JSON object")
	}

	c.order = nil
	c.counts = make(map[types.IssueType]int)

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return goerr.Wrap(err, "failed to decode type counts key")
		}
		key, ok := keyTok.(string)
		if !ok {
			return goerr.New("type counts key must be a string")
		}

		var count int
		if err := dec.Decode(&count); err != nil {
			return goerr.Wrap(err, "failed to decode type counts value",
				goerr.V("type", key))
		}

		t := types.IssueType(key)
		if _, seen := c.counts[t]; !seen {
			c.order = append(c.order, t)
		}
		c.counts[t] = count
	}

	return nil
}
