// Package export turns rendered chart images into downloadable PDF
// documents. It performs no data transformation; the PDF encoding itself is
// delegated to fpdf.
package export

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/go-pdf/fpdf"
)

// CorrelationFileName is the deterministic name of the downloadable
// correlation chart artifact.
const CorrelationFileName = "gambling_txn_vs_spend_correlation.pdf"

const pageMarginPt = 36

var ErrEmptyImage = errors.New("no image data to export")

type Exporter struct {
	docTitle string
}

func NewExporter() *Exporter {
	return &Exporter{docTitle: "Gambling Transaction vs Spend Correlation"}
}

// ChartPDF embeds a rendered PNG chart into a single landscape A4 page and
// returns the encoded document.
func (e *Exporter) ChartPDF(pngData []byte) ([]byte, error) {
	if len(pngData) == 0 {
		return nil, ErrEmptyImage
	}

	pdf := fpdf.New("L", "pt", "A4", "")
	pdf.SetTitle(e.docTitle, true)
	pdf.AddPage()

	opts := fpdf.ImageOptions{ImageType: "PNG"}
	info := pdf.RegisterImageOptionsReader("chart", opts, bytes.NewReader(pngData))
	if pdf.Err() {
		return nil, fmt.Errorf("register chart image: %w", pdf.Error())
	}

	pageW, pageH := pdf.GetPageSize()
	maxW := pageW - 2*pageMarginPt
	maxH := pageH - 2*pageMarginPt

	imgW, imgH := info.Extent()
	scale := maxW / imgW
	if imgH*scale > maxH {
		scale = maxH / imgH
	}
	drawW := imgW * scale
	drawH := imgH * scale

	// Center the figure on the page.
	x := (pageW - drawW) / 2
	y := (pageH - drawH) / 2
	pdf.ImageOptions("chart", x, y, drawW, drawH, false, opts, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("encode pdf: %w", err)
	}

	return buf.Bytes(), nil
}
