package ingest

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// SheetsSource reads submissions straight from a Google Sheet using a
// read-only service account.
type SheetsSource struct {
	spreadsheetID string
	sheetName     string
	valueRange    string // optional A1 override; defaults to "<sheet>!A:Z"
	credsFile     string
}

// NewSheetsSource creates a row source backed by the Sheets API.
func NewSheetsSource(spreadsheetID, sheetName, valueRange, credsFile string) *SheetsSource {
	return &SheetsSource{
		spreadsheetID: spreadsheetID,
		sheetName:     sheetName,
		valueRange:    valueRange,
		credsFile:     credsFile,
	}
}

// Fetch pulls the configured range and resolves its header. Both the
// service construction and the values call honor ctx cancellation.
func (s *SheetsSource) Fetch(ctx context.Context) ([]RawRow, error) {
	service, err := sheets.NewService(ctx,
		option.WithCredentialsFile(s.credsFile),
		option.WithScopes(sheets.SpreadsheetsReadonlyScope),
	)
	if err != nil {
		return nil, unavailable("create sheets client", err)
	}

	rangeName := s.valueRange
	if rangeName == "" {
		rangeName = fmt.Sprintf("%s!A:Z", s.sheetName)
	}

	resp, err := service.Spreadsheets.Values.Get(s.spreadsheetID, rangeName).Context(ctx).Do()
	if err != nil {
		return nil, unavailable("fetch sheet values", err)
	}

	values := make([][]string, 0, len(resp.Values))
	for _, raw := range resp.Values {
		cells := make([]string, len(raw))
		for i, cell := range raw {
			cells[i] = fmt.Sprint(cell)
		}
		values = append(values, cells)
	}

	return tableToRows(values)
}
