// Package extractor pulls text out of statement PDFs. Parsing proper
// happens downstream; this package only has to deliver one readable
// newline-delimited blob per document.
package extractor

import (
	"fmt"
	"io"
	"os/exec"
	"strings"
	"unicode"

	"github.com/ledongthuc/pdf"
)

// ExtractText reads a statement PDF and returns its text as a single
// newline-delimited blob. The structured library is tried first; when it
// fails or yields garbage (custom font encodings, scanned pages), the
// external pdftotext command (poppler-utils) is the fallback.
func ExtractText(filePath string) (string, error) {
	text, libErr := extractWithLibrary(filePath)
	if libErr == nil && isReadableText(text) {
		return text, nil
	}

	popplerText, popplerErr := extractWithPdftotext(filePath)
	if popplerErr == nil && isReadableText(popplerText) {
		return popplerText, nil
	}

	if libErr != nil {
		return "", fmt.Errorf("PDF text extraction failed: %v; the file may be image-based or use custom fonts", libErr)
	}
	return "", fmt.Errorf("no readable text could be extracted; the statement may be a scanned image")
}

// extractWithLibrary uses ledongthuc/pdf, trying the row-oriented method
// first because it preserves the line structure the parser depends on.
func extractWithLibrary(filePath string) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("PDF library crashed: %v", r)
		}
	}()

	f, r, openErr := pdf.Open(filePath)
	if openErr != nil {
		return "", openErr
	}
	defer f.Close()

	if r.NumPage() == 0 {
		return "", fmt.Errorf("PDF has no pages")
	}

	if text := extractByRow(r); isReadableText(text) {
		return text, nil
	}
	if text := extractByPagePlainText(r); isReadableText(text) {
		return text, nil
	}
	return extractByReaderPlainText(r), nil
}

func extractByRow(r *pdf.Reader) string {
	var lines []string
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			continue
		}
		for _, row := range rows {
			var parts []string
			for _, word := range row.Content {
				parts = append(parts, word.S)
			}
			line := strings.TrimSpace(strings.Join(parts, " "))
			if line != "" {
				lines = append(lines, line)
			}
		}
	}
	return strings.Join(lines, "\n")
}

func extractByPagePlainText(r *pdf.Reader) string {
	var pages []string
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		fonts := make(map[string]*pdf.Font)
		for _, name := range page.Fonts() {
			f := page.Font(name)
			fonts[name] = &f
		}
		text, err := page.GetPlainText(fonts)
		if err != nil {
			continue
		}
		if text = strings.TrimSpace(text); text != "" {
			pages = append(pages, text)
		}
	}
	return strings.Join(pages, "\n")
}

func extractByReaderPlainText(r *pdf.Reader) string {
	reader, err := r.GetPlainText()
	if err != nil {
		return ""
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// extractWithPdftotext shells out to poppler's pdftotext with layout
// preservation, which handles most font encodings the Go library cannot.
func extractWithPdftotext(filePath string) (string, error) {
	if _, err := exec.LookPath("pdftotext"); err != nil {
		return "", fmt.Errorf("pdftotext not available: %v", err)
	}
	out, err := exec.Command("pdftotext", "-layout", filePath, "-").Output()
	if err != nil {
		return "", fmt.Errorf("pdftotext failed: %v", err)
	}
	text := strings.TrimSpace(string(out))
	if text == "" {
		return "", fmt.Errorf("pdftotext produced no output")
	}
	return text, nil
}

// turkishLetters are counted as readable alongside ASCII so a proper
// Turkish statement does not get mistaken for font garbage.
const turkishLetters = "çğıöşüÇĞİÖŞÜ"

// textQuality returns the ratio of characters expected in statement text
// to total characters (0.0-1.0). Identity-encoded font garbage scores low.
func textQuality(text string) float64 {
	total := 0
	readable := 0
	for _, r := range text {
		total++
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
			(r >= '0' && r <= '9') || unicode.IsSpace(r) ||
			strings.ContainsRune(turkishLetters, r) ||
			strings.ContainsRune(".,-/:;()'\"%&@#!?+=*\t", r) {
			readable++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(readable) / float64(total)
}

// statementWords appear in virtually every Turkish card or account
// statement; text containing none of them is likely garbage.
var statementWords = []string{
	"ekstre", "hesap", "tutar", "tarih", "kart", "borcu", "borç",
	"işlem", "islem", "ödeme", "odeme", "toplam", "banka", "tl",
}

func containsStatementWords(text string) bool {
	lower := strings.ToLower(text)
	for _, word := range statementWords {
		if strings.Contains(lower, word) {
			return true
		}
	}
	return false
}

// isReadableText gates every extraction method: enough text, mostly
// readable characters, and at least one recognizable statement word.
func isReadableText(text string) bool {
	if len(strings.TrimSpace(text)) <= 50 {
		return false
	}
	if textQuality(text) <= 0.6 {
		return false
	}
	return containsStatementWords(text)
}
