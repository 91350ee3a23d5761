// Package export renders a comparison worksheet to PDF.
package export

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/jung-kurt/gofpdf"

	"CompareBoard/internal/engine"
	"CompareBoard/internal/state"
)

// Page geometry in millimetres (A4 landscape).
const (
	pageWidth  = 297.0
	pageHeight = 210.0
	margin     = 15.0
	captionH   = 25.0
)

// Options control the worksheet drawing.
type Options struct {
	Layout     state.StackLayout
	GlyphScale float32
	Style      state.StrokeStyle
	OuterColor color.NRGBA
	InnerColor color.NRGBA
}

func DefaultOptions() Options {
	return Options{
		Layout:     state.DefaultStackLayout,
		GlyphScale: state.DefaultGlyphScale,
		Style:      state.DefaultStrokeStyle,
		// White outlines vanish on paper, so the outer stroke prints grey.
		OuterColor: color.NRGBA{R: 0x90, G: 0x90, B: 0x90, A: 0xff},
		InnerColor: color.NRGBA{R: 0x1e, G: 0x6f, B: 0xd9, A: 0xff},
	}
}

// virtual is the logical surface the worksheet is laid out on before scaling to paper.
var virtual = state.Size{Width: 800, Height: 500}

// GlyphFrame returns the strokes of glyph g laid out on a surface of the given size.
func GlyphFrame(g state.Glyph, size state.Size, scale float32, style state.StrokeStyle) engine.Frame {
	target := state.TargetFor(g, size, scale)
	f := make(engine.Frame, 0, 4)
	for _, seg := range []state.Segment{target.Top, target.Bottom} {
		for _, s := range (state.Line{Segment: seg, Style: style}).Strokes() {
			f = append(f, engine.RenderStroke{Stroke: s, Opacity: 1})
		}
	}
	return f
}

// Caption is the worksheet's headline, e.g. "3 > 2".
func Caption(one, two int) string {
	return fmt.Sprintf("%d %s %d", one, state.GlyphFor(one, two), two)
}

// Worksheet writes a one-page PDF with both stacks and the glyph that compares them.
func Worksheet(w io.Writer, one, two int, opts Options) error {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetTitle("Comparison "+Caption(one, two), true)
	pdf.SetCreator("CompareBoard", true)
	pdf.AddPage()

	surface := newPDFSurface(pdf, opts)
	surface.Resize(virtual)

	stacks := opts.Layout.Arrange(virtual, one, two)
	pdf.SetDrawColor(60, 60, 60)
	pdf.SetFillColor(240, 200, 80)
	pdf.SetLineWidth(0.3)
	for _, r := range append(append([]state.Rect{}, stacks.One...), stacks.Two...) {
		x, y := surface.toPage(state.Point{X: r.X, Y: r.Y})
		pdf.Rect(x, y, float64(r.Width)*surface.k, float64(r.Height)*surface.k, "FD")
	}

	engine.Paint(surface, GlyphFrame(state.GlyphFor(one, two), virtual, opts.GlyphScale, opts.Style))

	pdf.SetFont("Helvetica", "B", 32)
	pdf.SetTextColor(30, 30, 30)
	pdf.SetXY(margin, pageHeight-margin-captionH)
	pdf.CellFormat(pageWidth-2*margin, captionH, Caption(one, two), "", 0, "C", false, 0, "")

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to write worksheet: %w", err)
	}
	log.Printf("[EXPORT] Wrote worksheet %s", Caption(one, two))
	return nil
}

// pdfSurface draws engine strokes onto a gofpdf page, scaling logical pixels to millimetres.
type pdfSurface struct {
	pdf     *gofpdf.Fpdf
	opts    Options
	k       float64
	originX float64
	originY float64
}

func newPDFSurface(pdf *gofpdf.Fpdf, opts Options) *pdfSurface {
	return &pdfSurface{pdf: pdf, opts: opts, k: 1}
}

// Resize fits a surface of the given size into the page area above the caption.
func (s *pdfSurface) Resize(size state.Size) {
	if size.Empty() {
		return
	}
	availW := pageWidth - 2*margin
	availH := pageHeight - 2*margin - captionH
	s.k = availW / float64(size.Width)
	if kh := availH / float64(size.Height); kh < s.k {
		s.k = kh
	}
	s.originX = margin + (availW-float64(size.Width)*s.k)/2
	s.originY = margin + (availH-float64(size.Height)*s.k)/2
}

func (s *pdfSurface) toPage(p state.Point) (float64, float64) {
	return s.originX + float64(p.X)*s.k, s.originY + float64(p.Y)*s.k
}

// Clear is a no-op: each worksheet starts on a fresh page.
func (s *pdfSurface) Clear() {}

func (s *pdfSurface) DrawStroke(st engine.RenderStroke) {
	c := s.opts.OuterColor
	if st.Color == state.ColorInner {
		c = s.opts.InnerColor
	}
	s.pdf.SetDrawColor(int(c.R), int(c.G), int(c.B))
	s.pdf.SetAlpha(float64(st.Opacity), "Normal")
	s.pdf.SetLineWidth(float64(st.Width) * s.k)
	s.pdf.SetLineCapStyle("round")
	x1, y1 := s.toPage(st.Start)
	x2, y2 := s.toPage(st.End)
	s.pdf.Line(x1, y1, x2, y2)
	s.pdf.SetAlpha(1, "Normal")
}
