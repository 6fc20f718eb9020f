package extract

import (
	"archive/zip"
	"bytes"
	"errors"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
)

// extractWordDocument pulls text out of an OOXML word-processor file:
// body paragraphs first, then table text with cells joined by spaces and
// rows separated by newlines, in document order. Legacy binary .doc files
// are not zip archives and degrade to empty text here.
func (e *Extractor) extractWordDocument(data []byte) string {
	docXML, err := readDocumentXML(data)
	if err != nil {
		e.log.Warn("failed to read word document", zap.Error(err))
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(docXML))
	if err != nil {
		e.log.Warn("failed to parse word document xml", zap.Error(err))
		return ""
	}

	var sb strings.Builder

	// Body paragraphs; paragraphs nested in tables are handled below.
	doc.Find(`w\:p`).Each(func(_ int, p *goquery.Selection) {
		if p.Closest(`w\:tbl`).Length() > 0 {
			return
		}
		sb.WriteString(runText(p))
		sb.WriteString("\n")
	})

	doc.Find(`w\:tbl`).Each(func(_ int, tbl *goquery.Selection) {
		tbl.Find(`w\:tr`).Each(func(_ int, row *goquery.Selection) {
			var cells []string
			row.Find(`w\:tc`).Each(func(_ int, cell *goquery.Selection) {
				cells = append(cells, runText(cell))
			})
			sb.WriteString(strings.Join(cells, " "))
			sb.WriteString("\n")
		})
	})

	return sb.String()
}

// runText concatenates the text runs under a node.
func runText(sel *goquery.Selection) string {
	var parts []string
	sel.Find(`w\:t`).Each(func(_ int, t *goquery.Selection) {
		parts = append(parts, t.Text())
	})
	return strings.TrimSpace(strings.Join(parts, ""))
}

// readDocumentXML extracts word/document.xml from the OOXML zip container.
func readDocumentXML(data []byte) ([]byte, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, err
	}

	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, err
		}
		defer func() { _ = rc.Close() }()
		return io.ReadAll(rc)
	}
	return nil, errors.New("no word/document.xml in archive")
}
