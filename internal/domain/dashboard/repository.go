package dashboard

import (
	"context"
)

// RawRow is one spreadsheet row. Cells are strings, numbers or nil.
type RawRow []any

// RowSource reads raw rows from the tabular data source.
type RowSource interface {
	// FetchRows returns every row of the named sheet, header row included
	FetchRows(ctx context.Context, sheet string) ([]RawRow, error)
}

// ConfigSource loads the team configuration.
type ConfigSource interface {
	LoadTeamConfig(ctx context.Context) (*TeamConfig, error)
}
