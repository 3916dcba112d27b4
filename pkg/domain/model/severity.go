package model

import (
	"github.com/m-mizutani/goerr/v2"
)

// Severity represents an issue severity level. The order is significant:
// higher severity dominates score deduction and report emphasis.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// severityWeights maps each severity to its fixed scoring weight
var severityWeights = map[Severity]int{
	SeverityLow:      1,
	SeverityMedium:   2,
	SeverityHigh:     3,
	SeverityCritical: 4,
}

// ParseSeverity parses a severity string. Unrecognized values return an error
// so that issues from untrusted sources can be skipped rather than mislabeled.
func ParseSeverity(s string) (Severity, error) {
	sev := Severity(s)
	if _, ok := severityWeights[sev]; !ok {
		return "", goerr.New("unknown severity", goerr.V("severity", s))
	}
	return sev, nil
}

// String returns the string representation
func (s Severity) String() string {
	return string(s)
}

// Weight returns the fixed scoring weight (low=1, medium=2, high=3, critical=4).
// Unknown severities weigh 1.
func (s Severity) Weight() int {
	if w, ok := severityWeights[s]; ok {
		return w
	}
	return 1
}

// IsValid reports whether the severity is one of the four known levels
func (s Severity) IsValid() bool {
	_, ok := severityWeights[s]
	return ok
}

// Severities returns all severity levels ordered from most to least severe
func Severities() []Severity {
	return []Severity{SeverityCritical, SeverityHigh, SeverityMedium, SeverityLow}
}
