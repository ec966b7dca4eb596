package extract

import (
	"archive/zip"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strings"
)

const docxBody = "word/document.xml"

// docxHeader and docxFooter match header and footer parts such as
// word/header1.xml.
var (
	docxHeader = regexp.MustCompile(`^word/header[0-9]*\.xml$`)
	docxFooter = regexp.MustCompile(`^word/footer[0-9]*\.xml$`)
)

// docxText returns the text of the header parts, the main document and the
// footer parts, in that order, one paragraph per line.
func docxText(ctx context.Context, r io.ReaderAt, size int64) (string, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return "", fmt.Errorf("open docx: %w", err)
	}

	var body *zip.File
	var headers, footers []*zip.File
	for _, f := range zr.File {
		switch {
		case f.Name == docxBody:
			body = f
		case docxHeader.MatchString(f.Name):
			headers = append(headers, f)
		case docxFooter.MatchString(f.Name):
			footers = append(footers, f)
		}
	}
	if body == nil {
		return "", fmt.Errorf("open docx: missing %s", docxBody)
	}
	byName := func(files []*zip.File) {
		sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })
	}
	byName(headers)
	byName(footers)

	parts := append(append(headers, body), footers...)
	texts := make([]string, 0, len(parts))
	for _, f := range parts {
		text, err := docxPart(ctx, f)
		if err != nil {
			return "", err
		}
		if text != "" {
			texts = append(texts, text)
		}
	}
	return strings.Join(texts, "\n"), nil
}

func docxPart(ctx context.Context, f *zip.File) (string, error) {
	rc, err := f.Open()
	if err != nil {
		return "", fmt.Errorf("open %s: %w", f.Name, err)
	}
	defer rc.Close()

	return wordML(ctx, rc)
}

// wordML walks WordprocessingML, collecting w:t runs. Tabs and breaks
// become whitespace; each w:p ends with a newline.
func wordML(ctx context.Context, r io.Reader) (string, error) {
	dec := xml.NewDecoder(r)

	var b strings.Builder
	inText := false
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", fmt.Errorf("parse docx body: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				inText = true
			case "tab":
				b.WriteByte('\t')
			case "br", "cr":
				b.WriteByte('\n')
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				b.WriteByte('\n')
				if err := ctx.Err(); err != nil {
					return "", err
				}
			}
		case xml.CharData:
			if inText {
				b.Write(t)
			}
		}
	}
	return strings.TrimRight(b.String(), "\n"), nil
}
