package export

import (
	"bytes"
	"fmt"
	"strings"

	"edugen/internal/domain"

	"github.com/go-pdf/fpdf"
)

// PDFExporter renders generated text into a paginated A4 document with a
// title header on every page and "Page X of Y" pagination in the footer.
type PDFExporter struct{}

func NewPDFExporter() *PDFExporter {
	return &PDFExporter{}
}

// Render produces the complete document in memory. Callers must only write
// response headers after Render returns successfully, so an export failure
// can still be reported as a JSON error.
func (e *PDFExporter) Render(title, text string) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(title, true)
	pdf.AliasNbPages("")
	pdf.SetMargins(20, 25, 20)
	pdf.SetAutoPageBreak(true, 25)

	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetHeaderFunc(func() {
		pdf.SetFont("Helvetica", "B", 14)
		pdf.CellFormat(0, 10, tr(title), "", 1, "C", false, 0, "")
		pdf.Ln(4)
	})
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d of {nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	pdf.AddPage()
	pdf.SetFont("Helvetica", "", 12)

	// Paragraph breaks in the source text survive as vertical spacing.
	for _, paragraph := range strings.Split(text, "\n\n") {
		paragraph = strings.TrimSpace(paragraph)
		if paragraph == "" {
			continue
		}
		pdf.MultiCell(0, 6, tr(paragraph), "", "L", false)
		pdf.Ln(3)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, domain.NewExportFailedError(err)
	}
	return buf.Bytes(), nil
}

// Filename derives a safe attachment filename from the document title,
// keeping only alphanumerics.
func Filename(title string) string {
	var sb strings.Builder
	for _, r := range title {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			sb.WriteRune(r)
		}
	}
	name := sb.String()
	if name == "" {
		name = "document"
	}
	return name + ".pdf"
}
