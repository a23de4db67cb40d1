package render

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"jobhunt-backend/internal/shared/util"
)

const dateLayout = "Jan 02, 2006"

// CoverLetterPDF lays out the letter text plus the user's contact header into
// a paginated PDF: header block (name, email and website when present, the
// generation date, company), a blank gap, the body paragraphs, and a closing
// signature line repeating the name. The website renders as a clickable link.
// Auto page break handles body overflow; an empty body still yields a valid
// document with header and signature only.
func CoverLetterPDF(letterText, userName, userEmail, userWebsite, company string, generated time.Time) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 20)
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, userName, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	if strings.TrimSpace(userEmail) != "" {
		pdf.CellFormat(0, 6, userEmail, "", 1, "L", false, 0, "")
	}
	if strings.TrimSpace(userWebsite) != "" {
		pdf.SetTextColor(0, 0, 200)
		pdf.SetFont("Helvetica", "U", 11)
		pdf.CellFormat(0, 6, userWebsite, "", 1, "L", false, 0, linkURL(userWebsite))
		pdf.SetFont("Helvetica", "", 11)
		pdf.SetTextColor(0, 0, 0)
	}
	pdf.CellFormat(0, 6, generated.Format(dateLayout), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, company, "", 1, "L", false, 0, "")

	pdf.Ln(8)

	for _, paragraph := range splitParagraphs(letterText) {
		pdf.MultiCell(0, 6, paragraph, "", "L", false)
		pdf.Ln(3)
	}

	pdf.Ln(4)
	pdf.CellFormat(0, 6, userName, "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render cover letter pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// FileName derives the output document name from the user and company.
func FileName(userName, company string) string {
	return util.Slugify(userName) + "_" + util.Slugify(company) + "_cover_letter.pdf"
}

// splitParagraphs splits letter text on newline into non-empty paragraphs;
// blank lines separate blocks and are never rendered themselves.
func splitParagraphs(text string) []string {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	paragraphs := make([]string, 0, len(lines))
	for _, line := range lines {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			paragraphs = append(paragraphs, trimmed)
		}
	}
	return paragraphs
}

func linkURL(website string) string {
	if strings.HasPrefix(website, "http://") || strings.HasPrefix(website, "https://") {
		return website
	}
	return "https://" + website
}
