package sheets

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Client implements the Gateway interface over the Google Sheets API.
type Client struct {
	service *sheets.Service
	logger  *slog.Logger
}

var _ Gateway = (*Client)(nil)

// NewClient creates a Google Sheets gateway using a previously cached
// OAuth token. It does not start an interactive flow; callers should
// direct users to `budget auth` when no token exists.
func NewClient(ctx context.Context, config Config, logger *slog.Logger) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	token, err := LoadToken(config.TokenFile)
	if err != nil {
		return nil, fmt.Errorf("no cached credentials (run 'budget auth' first): %w", err)
	}

	oauthConfig := &oauth2.Config{
		ClientID:     config.ClientID,
		ClientSecret: config.ClientSecret,
		Endpoint:     google.Endpoint,
		Scopes:       []string{sheets.SpreadsheetsScope},
	}

	httpClient := oauth2.NewClient(ctx, oauthConfig.TokenSource(ctx, token))
	service, err := sheets.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("unable to create sheets service: %w", err)
	}

	return &Client{service: service, logger: logger}, nil
}

// ReadRange implements the Gateway interface.
func (c *Client) ReadRange(ctx context.Context, spreadsheetID, rangeExpr string) ([][]string, error) {
	resp, err := c.service.Spreadsheets.Values.Get(spreadsheetID, rangeExpr).Context(ctx).Do()
	if err != nil {
		return nil, &ReadError{SpreadsheetID: spreadsheetID, Err: err}
	}

	rows := make([][]string, 0, len(resp.Values))
	for _, row := range resp.Values {
		cells := make([]string, 0, len(row))
		for _, cell := range row {
			cells = append(cells, fmt.Sprintf("%v", cell))
		}
		rows = append(rows, cells)
	}

	c.logger.Debug("read range", "spreadsheet_id", spreadsheetID, "range", rangeExpr, "rows", len(rows))
	return rows, nil
}

// WriteRange implements the Gateway interface.
func (c *Client) WriteRange(ctx context.Context, spreadsheetID, rangeExpr string, values [][]string) (int64, error) {
	rows := make([][]any, 0, len(values))
	for _, row := range values {
		cells := make([]any, 0, len(row))
		for _, cell := range row {
			cells = append(cells, cell)
		}
		rows = append(rows, cells)
	}

	resp, err := c.service.Spreadsheets.Values.Update(spreadsheetID, rangeExpr, &sheets.ValueRange{Values: rows}).
		ValueInputOption("USER_ENTERED").
		Context(ctx).
		Do()
	if err != nil {
		return 0, fmt.Errorf("failed to write range %s: %w", rangeExpr, err)
	}

	c.logger.Debug("wrote range", "spreadsheet_id", spreadsheetID, "range", rangeExpr, "updated_cells", resp.UpdatedCells)
	return resp.UpdatedCells, nil
}
