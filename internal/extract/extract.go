package extract

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"

	"jobhunt-backend/internal/shared/storage/object"
)

// ErrNotPDF is returned when the byte stream is not a parseable PDF document.
var ErrNotPDF = errors.New("not a valid pdf document")

// Text pulls the plain text out of a PDF resume. Page texts are concatenated
// in page order separated by a newline; a page without extractable text
// contributes an empty string at its position, so page count and order are
// preserved in the spacing.
func Text(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNotPDF, err)
	}

	pages := make([]string, 0, reader.NumPage())
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// A page that yields nothing still occupies its slot.
			pages = append(pages, "")
			continue
		}
		pages = append(pages, text)
	}
	return strings.Join(pages, "\n"), nil
}

// TextFromStore reads a named resume out of the store and extracts its text.
func TextFromStore(ctx context.Context, store object.ObjectStore, name string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	body, err := store.Open(ctx, name)
	if err != nil {
		return "", fmt.Errorf("extract text name=%s: %w", name, err)
	}
	defer body.Close()

	raw, err := io.ReadAll(body)
	if err != nil {
		return "", fmt.Errorf("extract text name=%s: read: %w", name, err)
	}

	text, err := Text(raw)
	if err != nil {
		return "", fmt.Errorf("extract text name=%s: %w", name, err)
	}
	return text, nil
}
