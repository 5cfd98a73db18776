// Package workbook reads member sheets from an exported .xlsx copy of the
// tracking spreadsheet.
package workbook

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/elly-bignell/sales-dashboard/internal/domain/dashboard"
	"github.com/elly-bignell/sales-dashboard/internal/pkg/cellparse"
	"github.com/xuri/excelize/v2"
)

// maxColumns matches the A:F range read from the live sheet.
const maxColumns = 6

type rowRepositoryImpl struct {
	path string
}

// NewRowRepository opens path on every fetch, so a re-exported workbook is
// picked up without a restart.
func NewRowRepository(path string) dashboard.RowSource {
	return &rowRepositoryImpl{path: path}
}

func (r *rowRepositoryImpl) FetchRows(ctx context.Context, sheet string) ([]dashboard.RawRow, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := excelize.OpenFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		return nil, fmt.Errorf("%w: %s", dashboard.ErrSheetNotFound, sheet)
	}

	formatted, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	raw, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}

	date1904 := false
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		date1904 = *props.Date1904
	}

	rows := make([]dashboard.RawRow, len(formatted))
	for i, cells := range formatted {
		if len(cells) > maxColumns {
			cells = cells[:maxColumns]
		}
		row := make(dashboard.RawRow, len(cells))
		for j, v := range cells {
			row[j] = normalizeCell(v, rawCell(raw, i, j), date1904)
		}
		rows[i] = row
	}
	return rows, nil
}

func rawCell(raw [][]string, row, col int) string {
	if row < len(raw) && col < len(raw[row]) {
		return raw[row][col]
	}
	return ""
}

// normalizeCell rewrites date-formatted serial numbers as ISO dates. Locale
// number formats such as "1/12/26 0:00" are otherwise ambiguous.
func normalizeCell(formatted, raw string, date1904 bool) string {
	if formatted == raw || !looksLikeDate(formatted) {
		return formatted
	}
	if _, ok := cellparse.ParseDate(formatted); ok {
		return formatted
	}
	serial, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return formatted
	}
	t, err := excelize.ExcelDateToTime(serial, date1904)
	if err != nil {
		return formatted
	}
	return dashboard.DateKey(t)
}

func looksLikeDate(s string) bool {
	return strings.IndexAny(s, "/-") > 0
}
