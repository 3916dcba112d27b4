package types

import (
	"github.com/google/uuid"
)

// ReviewID represents a stored review record identifier
type ReviewID string

// String returns the string representation
func (id ReviewID) String() string {
	return string(id)
}

// NewReviewID creates a new ReviewID
func NewReviewID() ReviewID {
	return ReviewID(uuid.New().String())
}

// Language represents a detected programming language label
type Language string

// String returns the string representation
func (l Language) String() string {
	return string(l)
}

// LanguageUnknown is returned for unrecognized or absent file extensions
const LanguageUnknown Language = "Unknown"

// IssueType represents a free-form issue category (bug, security, style, ...)
type IssueType string

// String returns the string representation
func (t IssueType) String() string {
	return string(t)
}

// Issue type tags produced by the review engine
const (
	IssueTypeBug             IssueType = "bug"
	IssueTypeSecurity        IssueType = "security"
	IssueTypeStyle           IssueType = "style"
	IssueTypeDocumentation   IssueType = "documentation"
	IssueTypeMaintainability IssueType = "maintainability"
	IssueTypePerformance     IssueType = "performance"
	IssueTypeGeneral         IssueType = "general"
)
