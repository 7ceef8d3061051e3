package app

import (
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/hyperifyio/goarticle/internal/article"
)

// writeArticlePDF renders the extraction result as a minimal PDF: title,
// byline and source line, then content paragraphs. This is intentionally
// simple and does not attempt page layout beyond paragraph flow.
func writeArticlePDF(r article.Result, outPath string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.AddPage()

	if r.Title != "" {
		pdf.SetFont("Helvetica", "B", 14)
		pdf.MultiCell(0, 8, r.Title, "", "L", false)
		pdf.SetFont("Helvetica", "", 11)
	}
	meta := make([]string, 0, 3)
	if r.Author != "" {
		meta = append(meta, "By "+r.Author)
	}
	if r.Domain != "unknown" {
		meta = append(meta, r.Domain)
	}
	meta = append(meta, fmt.Sprintf("%d words", r.WordCount))
	pdf.SetFont("Helvetica", "I", 9)
	pdf.MultiCell(0, 5, strings.Join(meta, " · "), "", "L", false)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Ln(4)

	for _, para := range strings.Split(r.Content, "\n\n") {
		p := strings.TrimSpace(para)
		if p == "" {
			continue
		}
		pdf.MultiCell(0, 5, p, "", "L", false)
		pdf.Ln(3)
	}

	return pdf.OutputFileAndClose(outPath)
}
