package epass

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"epass-backend/internal/visitor"
)

// Letter page in points, the same page the original passes were printed on.
const (
	pageWidth   = 612.0
	pageHeight  = 792.0
	pageMargin  = 72.0
	borderInset = 10.0
	lineHeight  = 1.15

	logoBox   = 100.0
	qrSide    = 80.0
	mapBoxW   = 500.0
	mapBoxH   = 400.0
	bottomPad = 20.0

	// free-text values longer than this are cut on the pass (the record keeps them whole),
	// so the body cannot push the map section off the page
	maxFieldRunes = 120
	// below this height the map is replaced by the placeholder line
	minMapHeight = 40.0

	PassHeading     = "Visitor E-Pass"
	ThankYouLine    = "Thank you for visiting us!"
	MapPlaceholder  = "Map not available."
	CreatedAtLayout = "1/2/2006, 3:04:05 PM"
)

type rgb struct{ r, g, b int }

var (
	black = rgb{0, 0, 0}
	blue  = rgb{0, 0, 255}
)

// instruction is one step of the pass layout. Steps run in order, once, with no look-back.
type instruction interface {
	draw(d *drawer)
}

type borderOp struct{ inset float64 }

// placedImageOp draws at a fixed position without moving the text cursor.
type placedImageOp struct {
	img  *pdfImage
	x, y float64
}

type textOp struct {
	family string
	style  string
	size   float64
	color  rgb
	text   string
	align  string
}

// gapOp moves the cursor down one line of the given font size.
type gapOp struct{ size float64 }

// flowImageOp draws centered at the cursor, shrinking further if the page would overflow.
type flowImageOp struct{ img *pdfImage }

type passAssets struct {
	logo *pdfImage
	qr   *pdfImage
	site *pdfImage
}

func buildPlan(rec visitor.VisitorRecord, o Options, a passAssets) []instruction {
	plan := []instruction{borderOp{inset: borderInset}}

	if a.logo != nil {
		// right-aligned inside a 100pt box at the top-right corner
		x := pageWidth - borderInset - logoBox + (logoBox - a.logo.w)
		plan = append(plan, placedImageOp{img: a.logo, x: x, y: borderInset})
	}
	if a.qr != nil {
		plan = append(plan, placedImageOp{img: a.qr, x: 2 * borderInset, y: 2 * borderInset})
	}

	plan = append(plan,
		textOp{family: "Times", style: "B", size: 28, color: blue, text: o.Institution, align: "C"},
		gapOp{size: 28},
		textOp{family: "Times", style: "BU", size: 22, color: blue, text: PassHeading, align: "C"},
		gapOp{size: 22},
	)
	for _, line := range bodyLines(rec, o.Location) {
		plan = append(plan, textOp{family: "Helvetica", size: 18, color: black, text: line, align: "L"})
	}
	plan = append(plan,
		gapOp{size: 18},
		textOp{family: "Helvetica", size: 20, color: black, text: ThankYouLine, align: "C"},
		gapOp{size: 20},
		textOp{family: "Helvetica", size: 22, color: blue, text: o.ShortName + " Map", align: "C"},
		gapOp{size: 22},
	)

	if a.site != nil {
		plan = append(plan, flowImageOp{img: a.site})
	} else {
		plan = append(plan, textOp{family: "Helvetica", size: 22, color: blue, text: MapPlaceholder, align: "L"})
	}
	return plan
}

func bodyLines(rec visitor.VisitorRecord, loc *time.Location) []string {
	return []string{
		"Visitor Name: " + clip(rec.VisitorName),
		fmt.Sprintf("Number of Persons: %d", rec.NoOfPersons),
		"Purpose: " + clip(rec.Purpose),
		"Contact Number: " + clip(rec.ContactNumber),
		"Visit Date: " + clip(rec.VisitDate),
		"Created At: " + FormatCreatedAt(rec.CreatedAt, loc),
	}
}

func clip(s string) string {
	r := []rune(s)
	if len(r) <= maxFieldRunes {
		return s
	}
	return string(r[:maxFieldRunes-3]) + "..."
}

// FormatCreatedAt prints t in loc the way en-US locale strings look, e.g. "5/1/2024, 3:00:00 PM".
func FormatCreatedAt(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(CreatedAtLayout)
}

// ===== drawing =====

type drawer struct {
	pdf *fpdf.Fpdf
}

func (o borderOp) draw(d *drawer) {
	d.pdf.SetDrawColor(0, 0, 0)
	d.pdf.SetLineWidth(1)
	d.pdf.Rect(o.inset, o.inset, pageWidth-2*o.inset, pageHeight-2*o.inset, "D")
}

func (o placedImageOp) draw(d *drawer) {
	d.image(o.img, o.x, o.y, o.img.w, o.img.h)
}

func (o textOp) draw(d *drawer) {
	d.pdf.SetFont(o.family, o.style, o.size)
	d.pdf.SetTextColor(o.color.r, o.color.g, o.color.b)
	d.pdf.MultiCell(0, o.size*lineHeight, pdfText(o.text), "", o.align, false)
}

func (o gapOp) draw(d *drawer) {
	d.pdf.Ln(o.size * lineHeight)
}

func (o flowImageOp) draw(d *drawer) {
	y := d.pdf.GetY()
	w, h := o.img.w, o.img.h
	avail := pageHeight - borderInset - bottomPad - y
	if avail < minMapHeight {
		textOp{family: "Helvetica", size: 22, color: blue, text: MapPlaceholder, align: "L"}.draw(d)
		return
	}
	if h > avail {
		w, h = fitBox(w, h, w, avail)
	}
	d.image(o.img, (pageWidth-w)/2, y, w, h)
	d.pdf.SetY(y + h)
}

func (d *drawer) image(img *pdfImage, x, y, w, h float64) {
	opts := fpdf.ImageOptions{ImageType: "PNG"}
	d.pdf.RegisterImageOptionsReader(img.name, opts, bytes.NewReader(img.png))
	d.pdf.ImageOptions(img.name, x, y, w, h, false, opts, 0, "")
}
