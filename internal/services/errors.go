package services

import "errors"

var (
	ErrInvalidCursor = errors.New("invalid pagination cursor")
	ErrExportFailed  = errors.New("export failed")
)
