// Package extract turns uploaded file bytes into plain text for AI context.
//
// Dispatch is substring matching on the declared MIME type. Extraction
// failures are non-fatal: a context file with no extractable text is still
// a valid context file, so every failure path yields an empty string.
package extract

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"

	"github.com/fumiama/go-docx"
	"github.com/ledongthuc/pdf"
	"github.com/otiai10/gosseract/v2"
	"github.com/xuri/excelize/v2"
)

type Extractor struct {
	ocrLanguage string
}

func NewExtractor(ocrLanguage string) *Extractor {
	if ocrLanguage == "" {
		ocrLanguage = "eng"
	}
	return &Extractor{ocrLanguage: ocrLanguage}
}

// Extract returns the plain text of the file, or "" for unsupported types
// and extraction failures.
func (e *Extractor) Extract(data []byte, mimeType string) string {
	var text string
	var err error

	switch {
	case strings.Contains(mimeType, "pdf"):
		text, err = extractPDF(data)
	case strings.Contains(mimeType, "word"), strings.Contains(mimeType, "document"):
		text, err = extractWord(data)
	case strings.Contains(mimeType, "spreadsheet"), strings.Contains(mimeType, "excel"):
		text, err = extractSpreadsheet(data)
	case strings.Contains(mimeType, "image"):
		text, err = e.extractImage(data)
	default:
		return ""
	}

	if err != nil {
		slog.Warn("file extraction failed", "mime_type", mimeType, "error", err)
		return ""
	}

	return text
}

func extractPDF(data []byte) (text string, err error) {
	// The pdf package panics on some malformed inputs; treat that as a
	// normal extraction failure.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("pdf parse panic: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	_, err = buf.ReadFrom(plain)
	if err != nil {
		return "", err
	}

	return buf.String(), nil
}

func extractWord(data []byte) (string, error) {
	doc, err := docx.Parse(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, item := range doc.Document.Body.Items {
		switch item.(type) {
		case *docx.Paragraph, *docx.Table:
			fmt.Fprintln(&sb, item)
		}
	}

	return sb.String(), nil
}

// extractSpreadsheet renders each sheet as a comma-delimited block
// prefixed by its sheet name.
func extractSpreadsheet(data []byte) (string, error) {
	workbook, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	defer func() { _ = workbook.Close() }()

	var sb strings.Builder
	for _, sheet := range workbook.GetSheetList() {
		rows, err := workbook.GetRows(sheet)
		if err != nil {
			return "", err
		}

		fmt.Fprintf(&sb, "\n--- Sheet: %s ---\n", sheet)
		for _, row := range rows {
			sb.WriteString(strings.Join(row, ","))
			sb.WriteString("\n")
		}
	}

	return sb.String(), nil
}

func (e *Extractor) extractImage(data []byte) (string, error) {
	client := gosseract.NewClient()
	defer func() { _ = client.Close() }()

	err := client.SetLanguage(e.ocrLanguage)
	if err != nil {
		return "", err
	}

	err = client.SetImageFromBytes(data)
	if err != nil {
		return "", err
	}

	return client.Text()
}
