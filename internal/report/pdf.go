package report

import (
	"bytes"
	"fmt"
	"time"

	"github.com/signintech/gopdf"
)

// PDFRenderer turns a report into a downloadable PDF.
type PDFRenderer struct {
	fontPaths []string
}

func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{
		// Common DejaVu locations across base images.
		fontPaths: []string{
			"/usr/share/fonts/ttf-dejavu/DejaVuSans.ttf",
			"/usr/share/fonts/dejavu/DejaVuSans.ttf",
			"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
		},
	}
}

func (r *PDFRenderer) Render(rep *Report) ([]byte, error) {
	pdf := gopdf.GoPdf{}
	pdf.Start(gopdf.Config{PageSize: *gopdf.PageSizeA4})
	pdf.AddPage()

	var fontErr error
	loaded := false
	for _, path := range r.fontPaths {
		if err := pdf.AddTTFFont("DejaVu", path); err == nil {
			loaded = true
			break
		} else {
			fontErr = err
		}
	}
	if !loaded {
		return nil, fmt.Errorf("failed to load PDF font, install ttf-dejavu: %w", fontErr)
	}

	if err := pdf.SetFont("DejaVu", "", 20); err != nil {
		return nil, err
	}
	pdf.Cell(nil, "Clinical Simulation Report")
	pdf.Br(30)

	if err := pdf.SetFont("DejaVu", "", 12); err != nil {
		return nil, err
	}
	pdf.Cell(nil, fmt.Sprintf("Date: %s", time.Now().Format("02.01.2006 15:04")))
	pdf.Br(15)
	pdf.Cell(nil, fmt.Sprintf("Trainee: %s", rep.UserID))
	pdf.Br(15)
	pdf.Cell(nil, fmt.Sprintf("Case: %s (%s mode)", rep.Condition, rep.Mode))
	pdf.Br(15)
	pdf.Cell(nil, fmt.Sprintf("Result: %d/%d (%d%%) — grade %s, %d minutes",
		rep.Score, rep.MaxScore, rep.Percentage, rep.Grade, rep.DurationMinutes))
	pdf.Br(25)

	writeList := func(title string, items []string, empty string) error {
		if err := pdf.SetFont("DejaVu", "", 14); err != nil {
			return err
		}
		pdf.Cell(nil, title)
		pdf.Br(15)
		if err := pdf.SetFont("DejaVu", "", 11); err != nil {
			return err
		}
		if len(items) == 0 {
			pdf.Cell(nil, "- "+empty)
			pdf.Br(15)
			return nil
		}
		for _, item := range items {
			lines, _ := pdf.SplitText("- "+item, 500)
			for _, l := range lines {
				pdf.Cell(nil, l)
				pdf.Br(12)
			}
			pdf.Br(3)
		}
		pdf.Br(10)
		return nil
	}

	if err := writeList("Strengths:", rep.Strengths, "None noted this session."); err != nil {
		return nil, err
	}
	if err := writeList("Areas for improvement:", rep.AreasForImprovement, "Nothing specific, keep practicing."); err != nil {
		return nil, err
	}
	if err := writeList("Objectives met:", rep.ObjectivesMet, "No objectives completed."); err != nil {
		return nil, err
	}
	if err := writeList("Suggested resources:", rep.Resources, "None."); err != nil {
		return nil, err
	}

	if rep.Summary != "" {
		if err := pdf.SetFont("DejaVu", "", 11); err != nil {
			return nil, err
		}
		lines, _ := pdf.SplitText(rep.Summary, 500)
		for _, l := range lines {
			pdf.Cell(nil, l)
			pdf.Br(12)
		}
	}

	var buf bytes.Buffer
	if _, err := pdf.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to write PDF: %w", err)
	}
	return buf.Bytes(), nil
}
