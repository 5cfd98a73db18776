package sheets

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/elly-bignell/sales-dashboard/internal/domain/dashboard"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"
)

// sheetColumns covers date plus the five metric columns.
const sheetColumns = "A:F"

type rowRepositoryImpl struct {
	service       *sheetsapi.Service
	spreadsheetID string
}

// NewRowRepository reads member tabs through the Sheets values API.
// client is expected to carry the service-account credentials. An empty
// endpoint uses the public Google endpoint.
func NewRowRepository(ctx context.Context, client *http.Client, endpoint, spreadsheetID string) (dashboard.RowSource, error) {
	opts := []option.ClientOption{option.WithHTTPClient(client)}
	if endpoint != "" {
		opts = append(opts, option.WithEndpoint(strings.TrimRight(endpoint, "/")+"/"))
	}

	service, err := sheetsapi.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}
	return &rowRepositoryImpl{service: service, spreadsheetID: spreadsheetID}, nil
}

func (r *rowRepositoryImpl) FetchRows(ctx context.Context, sheet string) ([]dashboard.RawRow, error) {
	resp, err := r.service.Spreadsheets.Values.Get(r.spreadsheetID, a1Range(sheet)).
		ValueRenderOption("UNFORMATTED_VALUE").
		DateTimeRenderOption("FORMATTED_STRING").
		Context(ctx).
		Do()
	if err != nil {
		return nil, mapAPIError(err, sheet)
	}

	rows := make([]dashboard.RawRow, len(resp.Values))
	for i, v := range resp.Values {
		rows[i] = dashboard.RawRow(v)
	}
	return rows, nil
}

// a1Range quotes the tab name so names with spaces resolve.
func a1Range(sheet string) string {
	return "'" + strings.ReplaceAll(sheet, "'", "''") + "'!" + sheetColumns
}

// mapAPIError turns a missing tab into ErrSheetNotFound. Sheets answers
// 400 "Unable to parse range" rather than 404 for an unknown tab name.
func mapAPIError(err error, sheet string) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		if apiErr.Code == http.StatusNotFound ||
			(apiErr.Code == http.StatusBadRequest && strings.Contains(apiErr.Message, "Unable to parse range")) {
			return fmt.Errorf("%w: %s", dashboard.ErrSheetNotFound, sheet)
		}
		return fmt.Errorf("sheets api returned %d for %q: %w", apiErr.Code, sheet, err)
	}
	return fmt.Errorf("failed to fetch sheet %q: %w", sheet, err)
}
