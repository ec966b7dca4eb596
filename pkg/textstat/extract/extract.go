// Package extract turns uploaded documents into raw text.
//
// Supported kinds are PDF, DOCX, HTML and plain text. The kind is chosen
// from the file extension and confirmed against the leading bytes, so a
// renamed binary is rejected instead of being analyzed as text.
package extract

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/sirupsen/logrus"

	"github.com/cognicore/textstat/internal/log"
	"github.com/cognicore/textstat/pkg/textstat/internalerr"
)

// DefaultMaxBytes is the largest document File accepts by default.
const DefaultMaxBytes int64 = 50 << 20

// sniffLen is how many leading bytes Detect inspects.
const sniffLen = 512

var (
	pdfMagic = []byte("%PDF-")
	zipMagic = []byte("PK\x03\x04")
)

// Kind identifies a document format.
type Kind int

// Document kinds.
const (
	KindUnknown Kind = iota
	KindText
	KindPDF
	KindDOCX
	KindHTML
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindPDF:
		return "pdf"
	case KindDOCX:
		return "docx"
	case KindHTML:
		return "html"
	default:
		return "unknown"
	}
}

var extensions = map[string]Kind{
	".txt":  KindText,
	".text": KindText,
	".md":   KindText,
	".pdf":  KindPDF,
	".docx": KindDOCX,
	".html": KindHTML,
	".htm":  KindHTML,
}

// Detect determines the kind of the document at path from its extension
// and its first bytes. A mismatch between the two, or an unknown
// extension whose content is not a PDF or DOCX, is unsupported.
func Detect(path string, head []byte) (Kind, error) {
	ext := strings.ToLower(filepath.Ext(path))
	kind, known := extensions[ext]

	switch {
	case bytes.HasPrefix(head, pdfMagic):
		if known && kind != KindPDF {
			return KindUnknown, fmt.Errorf("%w: %s has PDF content", internalerr.ErrUnsupportedDocument, path)
		}
		return KindPDF, nil
	case bytes.HasPrefix(head, zipMagic):
		if known && kind != KindDOCX {
			return KindUnknown, fmt.Errorf("%w: %s is a zip archive", internalerr.ErrUnsupportedDocument, path)
		}
		return KindDOCX, nil
	case !known:
		return KindUnknown, fmt.Errorf("%w: %s", internalerr.ErrUnsupportedDocument, path)
	case kind == KindPDF || kind == KindDOCX:
		return KindUnknown, fmt.Errorf("%w: %s is not a valid %s file", internalerr.ErrUnsupportedDocument, path, kind)
	case !utf8.Valid(trimPartialRune(head)):
		return KindUnknown, fmt.Errorf("%w: %s is not UTF-8 text", internalerr.ErrUnsupportedDocument, path)
	}
	return kind, nil
}

// trimPartialRune drops an incomplete UTF-8 sequence cut off at the end of
// a sniffed prefix.
func trimPartialRune(b []byte) []byte {
	for i := 0; i < utf8.UTFMax && len(b) > 0; i++ {
		r, size := utf8.DecodeLastRune(b)
		if r != utf8.RuneError || size != 1 {
			return b
		}
		b = b[:len(b)-1]
	}
	return b
}

// Options configures an Extractor.
type Options struct {
	// MaxBytes caps the document size (0 selects DefaultMaxBytes).
	MaxBytes int64
	Logger   *logrus.Entry
}

// Extractor reads documents from disk.
type Extractor struct {
	maxBytes int64
	log      *logrus.Entry
}

// New creates an Extractor.
func New(opts Options) *Extractor {
	if opts.MaxBytes <= 0 {
		opts.MaxBytes = DefaultMaxBytes
	}
	logger := log.OrDiscard(opts.Logger)
	return &Extractor{maxBytes: opts.MaxBytes, log: logger.WithField("component", "extract")}
}

// File extracts the text of the document at path.
func (e *Extractor) File(ctx context.Context, path string) (string, error) {
	f, err := os.Open(path) //nolint:gosec // user-selected document
	if err != nil {
		return "", fmt.Errorf("open document: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("stat document: %w", err)
	}
	if info.Size() > e.maxBytes {
		return "", fmt.Errorf("%w: %s is %d bytes, limit %d", internalerr.ErrDocumentTooLarge, path, info.Size(), e.maxBytes)
	}

	head := make([]byte, sniffLen)
	n, err := f.ReadAt(head, 0)
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("read document: %w", err)
	}

	kind, err := Detect(path, head[:n])
	if err != nil {
		return "", err
	}

	e.log.WithFields(logrus.Fields{"path": path, "kind": kind, "bytes": info.Size()}).Debug("extracting document")

	text, err := Reader(ctx, kind, f, info.Size())
	if err != nil {
		return "", fmt.Errorf("extract %s: %w", path, err)
	}
	return text, nil
}

// Reader extracts text of the given kind from r.
func Reader(ctx context.Context, kind Kind, r io.ReaderAt, size int64) (string, error) {
	switch kind {
	case KindPDF:
		return pdfText(ctx, r, size)
	case KindDOCX:
		return docxText(ctx, r, size)
	case KindHTML:
		return htmlText(io.NewSectionReader(r, 0, size))
	case KindText:
		data, err := io.ReadAll(io.NewSectionReader(r, 0, size))
		if err != nil {
			return "", err
		}
		return string(data), nil
	default:
		return "", internalerr.ErrUnsupportedDocument
	}
}
