package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"
	"github.com/piwi3910/rvegen/internal/model"
	qrcode "github.com/skip2/go-qrcode"
)

// Page layout constants (A4 portrait in mm).
const (
	pageWidth    = 210.0
	pageHeight   = 297.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	qrBlockSize  = 30.0
)

// ExportPDF generates a one-page datasheet for the distribution: run
// statistics, a scaled drawing of the packed container, and a QR code
// encoding the generation settings as JSON so a run can be reproduced from
// the printed sheet.
func ExportPDF(path string, dist *model.Distribution, settings model.GenerationSettings) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)
	pdf.AddPage()

	// Title
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("Inclusion Distribution %s (%s)", dist.ID, dist.Kind)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	// Stats line
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	stats := fmt.Sprintf("Inclusions: %d | Container: %g x %g | Inclusion area: %.5f | Volume fraction: %.2f%%",
		dist.Count(), dist.Container.Width, dist.Container.Height, dist.TotalArea(), dist.VolumeFraction()*100)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, stats, "", 0, "L", false, 0, "")

	// Scale the container into the drawing area.
	drawTop := marginTop + headerHeight + 8
	drawWidth := pageWidth - marginLeft - marginRight
	drawHeight := pageHeight - drawTop - marginBottom - qrBlockSize - 10
	scale := math.Min(drawWidth/dist.Container.Width, drawHeight/dist.Container.Height)

	canvasW := dist.Container.Width * scale
	canvasH := dist.Container.Height * scale
	offsetX := marginLeft + (drawWidth-canvasW)/2
	offsetY := drawTop

	// Matrix background
	pdf.SetFillColor(235, 235, 235)
	pdf.SetDrawColor(100, 100, 100)
	pdf.SetLineWidth(0.4)
	pdf.Rect(offsetX, offsetY, canvasW, canvasH, "FD")

	// Inclusions
	pdf.SetFillColor(33, 150, 243)
	pdf.SetDrawColor(30, 30, 30)
	pdf.SetLineWidth(0.2)
	for _, s := range dist.Shapes {
		centre := s.Position()
		px := offsetX + centre.X*scale
		// Flip y so the report's bottom-left origin draws upright.
		py := offsetY + (dist.Container.Height-centre.Y)*scale
		switch shape := s.(type) {
		case model.Circle:
			pdf.Circle(px, py, shape.Radius*scale, "FD")
		case model.Ellipse:
			// fpdf rotates clockwise in page space; the flipped y axis
			// cancels the sign, so the angle passes through directly.
			pdf.Ellipse(px, py, shape.LongAxis*scale, shape.ShortAxis*scale, shape.Angle*180/math.Pi, "FD")
		}
	}

	if err := renderSettingsQR(pdf, settings, offsetY+canvasH+6); err != nil {
		return err
	}

	// Footer
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 4, "Generated by RVEGen - Microstructure Inclusion Generator", "", 0, "C", false, 0, "")

	return pdf.OutputFileAndClose(path)
}

// renderSettingsQR draws a QR code encoding the run settings JSON, with a
// short caption beside it.
func renderSettingsQR(pdf *fpdf.Fpdf, settings model.GenerationSettings, y float64) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	qrPNG, err := qrcode.Encode(string(data), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}

	imgName := fmt.Sprintf("qr_settings_%d_%d", settings.NumInclusions, settings.Seed)
	pdf.RegisterImageOptionsReader(imgName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))
	pdf.ImageOptions(imgName, marginLeft, y, qrBlockSize, qrBlockSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(marginLeft+qrBlockSize+4, y+2)
	pdf.CellFormat(100, 4, "Scan to reproduce this run:", "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	pdf.SetTextColor(100, 100, 100)
	caption := fmt.Sprintf("kind=%s n=%d buffer=%g scale=%g equal=%t seed=%d",
		settings.Kind, settings.NumInclusions, settings.BufferSize, settings.ScaleFactor, settings.EqualSize, settings.Seed)
	pdf.SetXY(marginLeft+qrBlockSize+4, y+7)
	pdf.CellFormat(150, 4, caption, "", 0, "L", false, 0, "")

	return nil
}
