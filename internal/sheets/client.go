package sheets

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"google.golang.org/api/option"
	sheets "google.golang.org/api/sheets/v4"

	"github.com/drivepipe/drivepipe/internal/google"
	"github.com/drivepipe/drivepipe/internal/instrumentation"
	"github.com/drivepipe/drivepipe/internal/logging"
)

// Client wraps the Google Sheets API service
type Client struct {
	service *sheets.Service
	logger  *slog.Logger
	metrics *instrumentation.Metrics
}

// ClientConfig holds the dependencies for constructing a Client.
type ClientConfig struct {
	// Credentials supplies the authenticated HTTP client. Required.
	Credentials google.CredentialsProvider

	// Logger receives operation logs; defaults to slog.Default().
	Logger *slog.Logger

	// Metrics records API operation metrics; may be nil.
	Metrics *instrumentation.Metrics
}

// NewClient creates a new Google Sheets client authenticated with a service
// account.
func NewClient(ctx context.Context, cfg ClientConfig) (*Client, error) {
	if cfg.Credentials == nil {
		return nil, fmt.Errorf("credentials provider is required")
	}

	httpClient, err := cfg.Credentials.HTTPClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("no usable service account credentials: %w", err)
	}

	sheetsService, err := sheets.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create Sheets service: %w", err)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		service: sheetsService,
		logger:  logging.WithService(logger, instrumentation.ServiceSheets),
		metrics: cfg.Metrics,
	}, nil
}

// UpdateValues writes rows into a range of a spreadsheet.
func (c *Client) UpdateValues(ctx context.Context, spreadsheetID, rng string, rows [][]interface{}, options *UpdateOptions) (*UpdateResult, error) {
	if spreadsheetID == "" {
		return nil, fmt.Errorf("spreadsheetID is required")
	}
	if rng == "" {
		return nil, fmt.Errorf("range is required")
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("at least one row of values is required")
	}

	ctx, span := instrumentation.StartSpan(ctx, "sheets.update_values",
		instrumentation.ServiceSheets, "update",
		attribute.String(instrumentation.SpanAttrSpreadsheetID, spreadsheetID),
		attribute.String(instrumentation.SpanAttrRange, rng))

	body := &sheets.ValueRange{
		Range:  rng,
		Values: rows,
	}

	start := time.Now()
	resp, err := c.service.Spreadsheets.Values.Update(spreadsheetID, rng, body).
		ValueInputOption(options.InputOption()).
		Context(ctx).
		Do()
	duration := time.Since(start)
	status := instrumentation.StatusFromError(err)
	c.metrics.RecordAPIOperation(ctx, instrumentation.ServiceSheets, "update", status, duration)
	instrumentation.EndSpan(span, err)
	if err != nil {
		c.metrics.RecordRowsPushed(ctx, instrumentation.StatusError, 0)
		c.logger.Warn("values update failed",
			logging.SpreadsheetID(spreadsheetID),
			logging.Range(rng),
			logging.Err(err),
		)
		return nil, fmt.Errorf("failed to update values in %s: %w", rng, err)
	}

	c.metrics.RecordRowsPushed(ctx, instrumentation.StatusSuccess, resp.UpdatedRows)
	c.logger.Info("values updated",
		logging.SpreadsheetID(spreadsheetID),
		logging.Range(resp.UpdatedRange),
		logging.Rows(resp.UpdatedRows),
	)

	return &UpdateResult{
		SpreadsheetID:  resp.SpreadsheetId,
		UpdatedRange:   resp.UpdatedRange,
		UpdatedRows:    resp.UpdatedRows,
		UpdatedColumns: resp.UpdatedColumns,
		UpdatedCells:   resp.UpdatedCells,
	}, nil
}

// PushTable writes rows into a sheet starting at the given anchor cell.
// An empty cell defaults to A2, keeping row 1 for headers.
func (c *Client) PushTable(ctx context.Context, spreadsheetID, sheetName, cell string, rows [][]interface{}, options *UpdateOptions) (*UpdateResult, error) {
	if cell == "" {
		cell = DefaultCell
	}
	return c.UpdateValues(ctx, spreadsheetID, Range(sheetName, cell), rows, options)
}

// ClearValues clears a range of a spreadsheet.
func (c *Client) ClearValues(ctx context.Context, spreadsheetID, rng string) error {
	if spreadsheetID == "" {
		return fmt.Errorf("spreadsheetID is required")
	}
	if rng == "" {
		return fmt.Errorf("range is required")
	}

	start := time.Now()
	_, err := c.service.Spreadsheets.Values.Clear(spreadsheetID, rng, &sheets.ClearValuesRequest{}).
		Context(ctx).
		Do()
	c.metrics.RecordAPIOperation(ctx, instrumentation.ServiceSheets, "clear", instrumentation.StatusFromError(err), time.Since(start))
	if err != nil {
		return fmt.Errorf("failed to clear values in %s: %w", rng, err)
	}

	return nil
}

// Range builds an A1-notation range from a sheet name and cell address.
// Sheet names that contain anything beyond letters, digits, and underscores
// are quoted, with embedded quotes doubled.
func Range(sheetName, cell string) string {
	if sheetName == "" {
		return cell
	}
	if needsQuoting(sheetName) {
		return "'" + strings.ReplaceAll(sheetName, "'", "''") + "'!" + cell
	}
	return sheetName + "!" + cell
}

func needsQuoting(sheetName string) bool {
	for _, r := range sheetName {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '_':
		default:
			return true
		}
	}
	return false
}
