package extract

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cognicore/textstat/pkg/textstat/internalerr"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		path string
		head []byte
		want Kind
	}{
		{"text", "notes.txt", []byte("hello"), KindText},
		{"markdown", "README.md", []byte("# Title"), KindText},
		{"html upper ext", "page.HTML", []byte("<html>"), KindHTML},
		{"pdf", "paper.pdf", []byte("%PDF-1.7\n"), KindPDF},
		{"docx", "report.docx", []byte("PK\x03\x04rest"), KindDOCX},
		{"pdf without extension", "upload", []byte("%PDF-1.4"), KindPDF},
		{"empty text file", "empty.txt", nil, KindText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Detect(tt.path, tt.head)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetectUnsupported(t *testing.T) {
	tests := []struct {
		name string
		path string
		head []byte
	}{
		{"unknown extension", "image.png", []byte("\x89PNG")},
		{"fake pdf", "paper.pdf", []byte("just text")},
		{"fake docx", "report.docx", []byte("just text")},
		{"pdf renamed to txt", "notes.txt", []byte("%PDF-1.4")},
		{"binary text file", "notes.txt", []byte{0xff, 0xfe, 0x00, 0x41}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Detect(tt.path, tt.head)
			assert.True(t, errors.Is(err, internalerr.ErrUnsupportedDocument), "got %v", err)
		})
	}
}

func TestDetectToleratesCutRune(t *testing.T) {
	// "ção" cut in the middle of a multi-byte rune by the sniff window.
	head := []byte("informa\xc3")
	kind, err := Detect("notes.txt", head)
	require.NoError(t, err)
	assert.Equal(t, KindText, kind)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "pdf", KindPDF.String())
	assert.Equal(t, "docx", KindDOCX.String())
	assert.Equal(t, "html", KindHTML.String())
	assert.Equal(t, "text", KindText.String())
	assert.Equal(t, "unknown", KindUnknown.String())
}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestFileText(t *testing.T) {
	path := writeFile(t, "doc.txt", []byte("O gato correu."))

	text, err := New(Options{}).File(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "O gato correu.", text)
}

func TestFileHTML(t *testing.T) {
	page := `<html><head><title>Relatório</title><style>p { color: red }</style></head>
<body><p>Primeiro parágrafo</p><div>segundo<br>bloco</div><script>var x = 1;</script></body></html>`
	path := writeFile(t, "page.html", []byte(page))

	text, err := New(Options{}).File(context.Background(), path)
	require.NoError(t, err)

	assert.Contains(t, text, "Relatório")
	assert.Contains(t, text, "Primeiro parágrafo")
	assert.Equal(t, []string{"Relatório", "Primeiro", "parágrafo", "segundo", "bloco"}, strings.Fields(text))
	assert.NotContains(t, text, "color")
	assert.NotContains(t, text, "var x")
}

func buildDOCX(t *testing.T, body string) []byte {
	t.Helper()
	return buildDOCXParts(t, [][2]string{{"word/document.xml", body}})
}

// buildDOCXParts zips the given name/content parts in order.
func buildDOCXParts(t *testing.T, parts [][2]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, part := range parts {
		w, err := zw.Create(part[0])
		require.NoError(t, err)
		_, err = w.Write([]byte(part[1]))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

const wordDoc = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:body>
<w:p><w:r><w:t>Primeiro</w:t></w:r><w:r><w:t xml:space="preserve"> parágrafo</w:t></w:r></w:p>
<w:p><w:r><w:t>coluna</w:t><w:tab/><w:t>valor</w:t></w:r></w:p>
<w:p><w:r><w:t>linha</w:t><w:br/><w:t>quebrada</w:t></w:r></w:p>
</w:body>
</w:document>`

func TestFileDOCX(t *testing.T) {
	path := writeFile(t, "report.docx", buildDOCX(t, wordDoc))

	text, err := New(Options{}).File(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "Primeiro parágrafo\ncoluna\tvalor\nlinha\nquebrada", text)
}

func wordPart(root, text string) string {
	return `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:` + root + ` xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:p><w:r><w:t>` + text + `</w:t></w:r></w:p>
</w:` + root + `>`
}

func TestFileDOCXHeadersAndFooters(t *testing.T) {
	data := buildDOCXParts(t, [][2]string{
		{"word/footer1.xml", wordPart("ftr", "Rodapé da página")},
		{"word/document.xml", wordDoc},
		{"word/header2.xml", wordPart("hdr", "Segundo cabeçalho")},
		{"word/header1.xml", wordPart("hdr", "Relatório anual")},
		{"word/styles.xml", wordPart("styles", "ignorado")},
	})
	path := writeFile(t, "report.docx", data)

	text, err := New(Options{}).File(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "Relatório anual\nSegundo cabeçalho\n"+
		"Primeiro parágrafo\ncoluna\tvalor\nlinha\nquebrada\n"+
		"Rodapé da página", text)
}

func TestFileDOCXMissingBody(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	_, err := zw.Create("other.xml")
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	path := writeFile(t, "broken.docx", buf.Bytes())

	_, err = New(Options{}).File(context.Background(), path)
	assert.Error(t, err)
}

// buildPDF writes a minimal PDF with one Helvetica text line per page and a
// correct xref table.
func buildPDF(t *testing.T, pages ...string) []byte {
	t.Helper()
	n := len(pages)
	fontObj := 3 + n
	pageObj := func(i int) int { return 3 + i }
	contentObj := func(i int) int { return 4 + n + i }

	var objects []string
	kids := make([]string, n)
	for i := range pages {
		kids[i] = fmt.Sprintf("%d 0 R", pageObj(i))
	}
	objects = append(objects,
		"<< /Type /Catalog /Pages 2 0 R >>",
		fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), n),
	)
	for i := range pages {
		objects = append(objects, fmt.Sprintf(
			"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 %d 0 R >> >> /Contents %d 0 R >>",
			fontObj, contentObj(i)))
	}
	objects = append(objects, "<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>")
	for _, text := range pages {
		stream := fmt.Sprintf("BT /F1 12 Tf 72 720 Td (%s) Tj ET", text)
		objects = append(objects, fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(stream), stream))
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n0000000000 65535 f \n", len(objects)+1)
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)
	return buf.Bytes()
}

func TestFilePDF(t *testing.T) {
	path := writeFile(t, "report.pdf", buildPDF(t, "O gato correu.", "O GATO pulou!"))

	text, err := New(Options{}).File(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "O gato correu.\nO GATO pulou!", text)
}

func TestReaderPDFCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	data := buildPDF(t, "primeira", "segunda")
	_, err := Reader(ctx, KindPDF, bytes.NewReader(data), int64(len(data)))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFileMalformedPDF(t *testing.T) {
	path := writeFile(t, "broken.pdf", []byte("%PDF-1.4\nthis is not really a pdf\n"))

	_, err := New(Options{}).File(context.Background(), path)
	assert.Error(t, err)
}

func TestFileTooLarge(t *testing.T) {
	path := writeFile(t, "big.txt", bytes.Repeat([]byte("a"), 64))

	_, err := New(Options{MaxBytes: 16}).File(context.Background(), path)
	assert.True(t, errors.Is(err, internalerr.ErrDocumentTooLarge), "got %v", err)
}

func TestFileMissing(t *testing.T) {
	_, err := New(Options{}).File(context.Background(), "/nonexistent/doc.txt")
	assert.Error(t, err)
}

func TestFileUnsupported(t *testing.T) {
	path := writeFile(t, "image.png", []byte("\x89PNG\r\n"))

	_, err := New(Options{}).File(context.Background(), path)
	assert.True(t, errors.Is(err, internalerr.ErrUnsupportedDocument), "got %v", err)
}

func TestReaderCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	data := buildDOCX(t, wordDoc)
	_, err := Reader(ctx, KindDOCX, bytes.NewReader(data), int64(len(data)))
	assert.ErrorIs(t, err, context.Canceled)
}
