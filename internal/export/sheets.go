package export

import (
	"context"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// SheetsPusher appends tabular rows to an external spreadsheet.
type SheetsPusher interface {
	Append(ctx context.Context, spreadsheetID, sheetRange string, rows [][]any) error
}

type googleSheetsPusher struct {
	keyJSON []byte
}

// NewSheetsPusher authenticates with a Google service-account key. The key
// exchange (RS256-signed JWT for an access token) is handled by the oauth2
// JWT config.
func NewSheetsPusher(serviceAccountKey []byte) SheetsPusher {
	return &googleSheetsPusher{keyJSON: serviceAccountKey}
}

func (p *googleSheetsPusher) Append(ctx context.Context, spreadsheetID, sheetRange string, rows [][]any) error {
	conf, err := google.JWTConfigFromJSON(p.keyJSON, sheets.SpreadsheetsScope)
	if err != nil {
		return err
	}

	svc, err := sheets.NewService(ctx, option.WithHTTPClient(conf.Client(ctx)))
	if err != nil {
		return err
	}

	values := make([][]interface{}, len(rows))
	for i, r := range rows {
		values[i] = r
	}

	_, err = svc.Spreadsheets.Values.
		Append(spreadsheetID, sheetRange, &sheets.ValueRange{Values: values}).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	return err
}
