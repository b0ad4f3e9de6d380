// Package extract turns uploaded document bytes into cleaned text and
// retrieval-sized chunks. PDF parsing uses github.com/ledongthuc/pdf; plain
// text is decoded tolerantly.
package extract

import (
	"bytes"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/devHamzaIrshad/study-buddy-agent/pkg/serrors"
)

// minMeaningfulText is the smallest extracted text considered usable.
const minMeaningfulText = 10

// Text decodes plain-text bytes and normalizes the result. Invalid UTF-8
// sequences are dropped rather than failing the document.
func Text(raw []byte) string {
	return Clean(strings.ToValidUTF8(string(raw), ""))
}

// PDF extracts text from PDF bytes, processing at most maxPages pages
// (zero means all). Pages that fail to parse or carry no text are skipped;
// the whole document only fails when no page yields text. It returns the
// cleaned text and the number of pages processed.
func PDF(raw []byte, maxPages int) (string, int, error) {
	reader, err := pdf.NewReader(bytes.NewReader(raw), int64(len(raw)))
	if err != nil {
		return "", 0, serrors.Wrap(serrors.ErrUnprocessable, err, "could not open PDF")
	}

	total := reader.NumPage()
	if total == 0 {
		return "", 0, serrors.With(serrors.ErrUnprocessable, "PDF has no pages")
	}

	pages := total
	if maxPages > 0 && pages > maxPages {
		pages = maxPages
	}

	var parts []string

	for num := 1; num <= pages; num++ {
		page := reader.Page(num)
		if page.V.IsNull() {
			continue
		}

		// a single broken page should not fail the whole document
		text, err := page.GetPlainText(nil)
		if err != nil || strings.TrimSpace(text) == "" {
			continue
		}

		parts = append(parts, text)
	}

	if len(parts) == 0 {
		return "", pages,
			serrors.With(serrors.ErrUnprocessable, "no text could be extracted, document may be image-based")
	}

	cleaned := Clean(strings.Join(parts, "\n\n"))
	if len(cleaned) < minMeaningfulText {
		return "", pages, serrors.With(serrors.ErrUnprocessable, "no meaningful text found in PDF")
	}

	return cleaned, pages, nil
}
