package export

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/api/option"
	sheets "google.golang.org/api/sheets/v4"
)

// defaultRange appends to the first sheet when no range is configured.
const defaultRange = "Sheet1!A:Z"

// SheetsExporter appends grading rows to a Google Sheet. It is a pure
// append sink; it never reads back or rewrites existing rows.
type SheetsExporter struct {
	svc           *sheets.Service
	spreadsheetID string
	writeRange    string
}

// NewSheetsExporter builds an exporter from service-account credentials.
func NewSheetsExporter(ctx context.Context, credentialsJSON []byte, spreadsheetID, writeRange string) (*SheetsExporter, error) {
	if spreadsheetID == "" {
		return nil, errors.New("spreadsheet ID is required")
	}
	if writeRange == "" {
		writeRange = defaultRange
	}
	svc, err := sheets.NewService(ctx,
		option.WithCredentialsJSON(credentialsJSON),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("sheets service: %w", err)
	}
	return &SheetsExporter{svc: svc, spreadsheetID: spreadsheetID, writeRange: writeRange}, nil
}

// Append writes the rows after the last non-empty row of the target range.
func (e *SheetsExporter) Append(ctx context.Context, rows [][]string) error {
	vr := &sheets.ValueRange{Values: toValueRows(rows)}
	_, err := e.svc.Spreadsheets.Values.Append(e.spreadsheetID, e.writeRange, vr).
		ValueInputOption("USER_ENTERED").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("append to sheet: %w", err)
	}
	return nil
}

func toValueRows(rows [][]string) [][]any {
	out := make([][]any, len(rows))
	for i, row := range rows {
		cells := make([]any, len(row))
		for j, c := range row {
			cells[j] = c
		}
		out[i] = cells
	}
	return out
}
