package model

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for domain operations
var (
	ErrReviewNotFound      = goerr.New("review not found")
	ErrUnsupportedFileType = goerr.New("file type not supported")
	ErrFileTooLarge        = goerr.New("file size too large")
	ErrEmptyFile           = goerr.New("file is empty")
	ErrInvalidEncoding     = goerr.New("file is not valid UTF-8")
	ErrTooManyFiles        = goerr.New("too many files in one request")
	ErrReportNotFound      = goerr.New("report file not found")
)
