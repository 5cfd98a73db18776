package dashboard

import "errors"

var (
	ErrMemberNotFound   = errors.New("team member not found")
	ErrConfigMissing    = errors.New("team configuration missing")
	ErrSheetNotFound    = errors.New("sheet not found")
	ErrUpstreamFetch    = errors.New("failed to fetch rows from data source")
	ErrInvalidDateRange = errors.New("invalid date range")
)
