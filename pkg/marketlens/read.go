package marketlens

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/ukaji3/marketlens-go/pkg/marketlens/models"
	"github.com/ukaji3/marketlens-go/pkg/marketlens/parser"
)

// ReadFile reads and parses a workbook from disk.
func ReadFile(path string, opts Options) (*models.Workbook, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Read(f, filepath.Base(path), opts)
}

// Read consumes r completely, then parses it as a workbook. It fails with
// a *ParseError for malformed content and ErrEmptyWorkbook when no sheet
// holds data.
func Read(r io.Reader, fileName string, opts Options) (*models.Workbook, error) {
	limit := opts.maxFileSize()
	content, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, fmt.Errorf("read %q: %w", fileName, err)
	}
	if int64(len(content)) > limit {
		return nil, fmt.Errorf("%w: %q is larger than %d bytes", ErrFileTooLarge, fileName, limit)
	}

	return ReadBytes(content, fileName, opts)
}

// ReadBytes parses workbook content already held in memory.
func ReadBytes(content []byte, fileName string, opts Options) (*models.Workbook, error) {
	log := opts.logger()
	if limit := opts.maxFileSize(); int64(len(content)) > limit {
		return nil, fmt.Errorf("%w: %q is larger than %d bytes", ErrFileTooLarge, fileName, limit)
	}

	start := time.Now()
	meta := models.FileMetadata{
		FileName:    fileName,
		FileSize:    int64(len(content)),
		ProcessedAt: start.UTC(),
	}

	wb, err := parser.ReadWorkbook(content, meta)
	if err != nil {
		log.Warn("workbook parse failed", "file", fileName, "error", err)
		return nil, &ParseError{FileName: fileName, Err: unwrapOpen(err)}
	}
	if wb.Len() == 0 {
		return nil, fmt.Errorf("%w: %q", ErrEmptyWorkbook, fileName)
	}

	log.Debug("workbook parsed",
		"file", fileName,
		"sheets", wb.Len(),
		"brands", wb.Brands.Len(),
		"duration", time.Since(start))
	return wb, nil
}

func unwrapOpen(err error) error {
	var openErr *parser.OpenError
	if errors.As(err, &openErr) {
		return openErr.Err
	}
	return err
}
