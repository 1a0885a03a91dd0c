package epass

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/go-pdf/fpdf"

	"epass-backend/internal/visitor"
)

type Options struct {
	Institution string
	ShortName   string
	// Location is the zone the creation time is printed in, whatever the caller's zone.
	Location *time.Location
	QRCode   bool
	Compress bool
}

// Renderer turns a persisted record into a one-page PDF pass.
type Renderer struct {
	storage *Storage
	opts    Options
}

func NewRenderer(storage *Storage, opts Options) *Renderer {
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	return &Renderer{storage: storage, opts: opts}
}

// Render writes <record id>-epass.pdf. Missing logo or map files are not errors: the logo is
// left out and the map is replaced by a text line. Failing to write the file is an error.
func (r *Renderer) Render(ctx context.Context, rec visitor.VisitorRecord) (*PassArtifact, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	assets, err := r.loadAssets(rec)
	if err != nil {
		return nil, err
	}

	pdf := newDocument(rec, r.opts)
	d := &drawer{pdf: pdf}
	for _, step := range buildPlan(rec, r.opts, assets) {
		step.draw(d)
	}
	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("layout pass %s: %w", rec.ID, err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	filename := FilenameFor(rec.ID)
	path, size, err := r.storage.Write(filename, func(w io.Writer) error {
		return pdf.Output(w)
	})
	if err != nil {
		return nil, err
	}
	return &PassArtifact{RecordID: rec.ID, Filename: filename, Path: path, Size: size}, nil
}

func (r *Renderer) loadAssets(rec visitor.VisitorRecord) (passAssets, error) {
	var a passAssets
	var err error

	if a.logo, err = loadFitted("logo", r.storage.AssetPath(LogoFile), logoBox, logoBox); err != nil {
		return a, err
	}
	if a.site, err = loadFitted("map", r.storage.AssetPath(MapFile), mapBoxW, mapBoxH); err != nil {
		return a, err
	}
	if r.opts.QRCode {
		if a.qr, err = qrImage("qr", "epass:"+rec.ID, qrSide); err != nil {
			return a, err
		}
	}
	return a, nil
}

func newDocument(rec visitor.VisitorRecord, o Options) *fpdf.Fpdf {
	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCompression(o.Compress)
	// pin metadata to the record so the same record always yields the same bytes
	pdf.SetCreationDate(rec.CreatedAt)
	pdf.SetCatalogSort(true)
	pdf.SetTitle(PassHeading, true)
	pdf.SetSubject(rec.ID, true)
	pdf.SetAuthor(o.Institution, true)
	pdf.SetCreator("epass-backend", true)
	pdf.AddPage()
	return pdf
}
