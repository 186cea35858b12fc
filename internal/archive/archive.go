// Package archive reads season CSV files out of a zip archive and streams
// their rows to a handler.
//
// Members may sit at the archive root or inside one top-level directory, as
// cfbstats.com ships them. Members compressed with zstd (zip method 93) are
// read as well as deflate and store.
package archive

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"log/slog"
	"path"
	"strings"

	"github.com/klauspost/compress/zip"
	"github.com/klauspost/compress/zstd"

	"github.com/andybug/predcfb/internal/errs"
	"github.com/andybug/predcfb/internal/schema"
)

// RowHandler consumes tokenized rows. Line 1 of every file is its header.
type RowHandler interface {
	HandleRow(file string, row schema.Row) error
}

// Reader is an open season archive.
type Reader struct {
	closer io.Closer
	files  map[string]*zip.File
	logger *slog.Logger
}

// Open opens the zip archive at filename. A file that is not a readable
// zip archive is a format error.
func Open(filename string, logger *slog.Logger) (*Reader, error) {
	rc, err := zip.OpenReader(filename)
	if err != nil {
		return nil, errs.Wrap(errs.KindFormat, err, "open archive %s", filename)
	}
	r := newReader(&rc.Reader, logger)
	r.closer = rc
	return r, nil
}

// NewReader reads an archive of the given size from ra.
func NewReader(ra io.ReaderAt, size int64, logger *slog.Logger) (*Reader, error) {
	zr, err := zip.NewReader(ra, size)
	if err != nil {
		return nil, errs.Wrap(errs.KindFormat, err, "read archive")
	}
	return newReader(zr, logger), nil
}

func newReader(zr *zip.Reader, logger *slog.Logger) *Reader {
	if logger == nil {
		logger = slog.Default()
	}
	zr.RegisterDecompressor(zstd.ZipMethodWinZip, zstd.ZipDecompressor())

	files := make(map[string]*zip.File, len(zr.File))
	for _, f := range zr.File {
		if f.FileInfo().IsDir() {
			continue
		}
		// An exact root-level name wins over a nested one.
		base := path.Base(f.Name)
		if _, ok := files[base]; !ok || f.Name == base {
			files[base] = f
		}
	}
	return &Reader{files: files, logger: logger}
}

// Close releases the underlying file, if Open created one.
func (r *Reader) Close() error {
	if r.closer == nil {
		return nil
	}
	return r.closer.Close()
}

// Has reports whether the archive holds a member named name.
func (r *Reader) Has(name string) bool {
	_, ok := r.files[name]
	return ok
}

// Load streams every named file, in order, to h. ctx is checked between
// files. A missing member is a format error naming the file.
func (r *Reader) Load(ctx context.Context, names []string, h RowHandler) error {
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return err
		}
		n, err := r.ReadFile(name, h)
		if err != nil {
			return err
		}
		r.logger.Info("file loaded", "file", name, "rows", n)
	}
	return nil
}

// ReadFile streams one member to h and returns the number of data rows
// (header excluded).
func (r *Reader) ReadFile(name string, h RowHandler) (int, error) {
	f, ok := r.files[name]
	if !ok {
		return 0, errs.New(errs.KindFormat, "archive has no %s", name)
	}

	rc, err := f.Open()
	if err != nil {
		return 0, errs.Wrap(errs.KindFormat, err, "open %s", name)
	}
	defer rc.Close()

	return readCSV(name, rc, h)
}

// readCSV tokenizes src and hands each record to h. Field counts are left
// to the handler's schema.
func readCSV(name string, src io.Reader, h RowHandler) (int, error) {
	cr := csv.NewReader(src)
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = true

	rows := 0
	for {
		fields, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return rows, csvError(name, err)
		}

		line, _ := cr.FieldPos(0)
		if line == 1 && len(fields) > 0 {
			fields[0] = strings.TrimPrefix(fields[0], "\ufeff")
		}
		if err := h.HandleRow(name, schema.Row{Line: line, Fields: fields}); err != nil {
			return rows, err
		}
		if line > 1 {
			rows++
		}
	}

	if rows == 0 && cr.InputOffset() == 0 {
		return 0, errs.New(errs.KindFormat, "%s is empty", name)
	}
	return rows, nil
}

func csvError(name string, err error) error {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return errs.AtLine(errs.Wrap(errs.KindFormat, pe.Err, "malformed csv"), name, pe.Line)
	}
	return errs.Wrap(errs.KindFormat, err, "read %s", name)
}
