package drive

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/drivepipe/drivepipe/internal/instrumentation"
	"github.com/drivepipe/drivepipe/internal/logging"
)

// timestampLayout is the suffix layout for timestamped downloads.
const timestampLayout = "20060102150405"

// DownloadSpreadsheet resolves a spreadsheet by name and writes it to disk.
// Names ending in .xlsx or .xls are fetched with a direct media download;
// anything else is treated as a Google-native spreadsheet and exported to
// xlsx, with an .xlsx extension appended to the output name.
func (c *Client) DownloadSpreadsheet(ctx context.Context, name string, options *DownloadOptions) (result *DownloadResult, err error) {
	if name == "" {
		return nil, fmt.Errorf("file name is required")
	}

	ctx, span := instrumentation.StartSpan(ctx, "drive.download_spreadsheet",
		instrumentation.ServiceDrive, "download",
		attribute.String("drive.file_name", name))
	defer func() { instrumentation.EndSpan(span, err) }()

	opts := DownloadOptions{}
	if options != nil {
		opts = *options
	}
	if opts.Dir == "" {
		opts.Dir = "outputs"
	}

	file, err := c.FindFileByName(ctx, name)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w", opts.Dir, err)
	}

	outName, direct := outputFileName(name, opts.WithTimestamp, time.Now())
	outPath := filepath.Join(opts.Dir, outName)

	out, err := os.Create(outPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file %s: %w", outPath, err)
	}

	var n int64
	if direct {
		n, err = c.DownloadFile(ctx, file.ID, out)
	} else {
		n, err = c.ExportFile(ctx, file.ID, opts.ExportMimeType, out)
	}
	if closeErr := out.Close(); closeErr != nil && err == nil {
		err = fmt.Errorf("failed to close output file %s: %w", outPath, closeErr)
	}
	if err != nil {
		// Do not leave a truncated file behind
		_ = os.Remove(outPath)
		return nil, err
	}

	c.logger.Info("spreadsheet downloaded",
		logging.FileName(name),
		logging.FileID(file.ID),
		logging.Path(outPath),
		logging.Bytes(n),
	)

	return &DownloadResult{
		FileID:   file.ID,
		Path:     outPath,
		Bytes:    n,
		Exported: !direct,
	}, nil
}

// outputFileName builds the local file name for a spreadsheet download and
// reports whether the file is an Office file fetched with a direct media
// download. A timestamp suffix is inserted before the extension; exported
// files gain an .xlsx extension.
func outputFileName(name string, withTimestamp bool, now time.Time) (string, bool) {
	suffix := ""
	if withTimestamp {
		suffix = "_" + now.Format(timestampLayout)
	}

	lower := strings.ToLower(name)
	if strings.HasSuffix(lower, ".xlsx") || strings.HasSuffix(lower, ".xls") {
		ext := filepath.Ext(name)
		base := strings.TrimSuffix(name, ext)
		return base + suffix + ext, true
	}

	return name + suffix + ".xlsx", false
}
