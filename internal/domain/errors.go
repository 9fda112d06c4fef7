package domain

import "errors"

var (
	ErrNotFound                = errors.New("resource not found")
	ErrUnauthorized            = errors.New("unauthorized")
	ErrPlanNotFound            = errors.New("plan not found")
	ErrPlanNotParsed           = errors.New("plan has not been parsed yet")
	ErrDocumentEmpty           = errors.New("document is empty")
	ErrDocumentTooLarge        = errors.New("document exceeds maximum allowed size")
	ErrDocumentNotText         = errors.New("document is not valid UTF-8 text")
	ErrUploadFailed            = errors.New("document upload to storage failed")
	ErrUnsupportedExportFormat = errors.New("unsupported export format")
	ErrInvalidEmail            = errors.New("invalid email address")
)
