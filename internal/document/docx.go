package document

import (
	"fmt"
	"math"
	"os"
	"strconv"

	docx "github.com/fumiama/go-docx"
)

// Docx implements Builder on top of github.com/fumiama/go-docx.
//
// Font name, font size, alignment, page breaks, space-before, and line
// spacing are applied per paragraph. SpaceAfter is accepted in Options
// but the paragraph spacing element does not expose an after attribute,
// so it is not mapped.
type Docx struct {
	doc  *docx.Docx
	opts Options
	size string // font size in half-points, the unit the format uses
}

// NewDocx returns an empty document styled with opts.
func NewDocx(opts Options) *Docx {
	return &Docx{
		doc:  docx.New().WithDefaultTheme(),
		opts: opts,
		size: strconv.Itoa(int(math.Round(opts.FontSize * 2))),
	}
}

// AddHeader implements Builder.
func (d *Docx) AddHeader(title string) {
	p := d.doc.AddParagraph().Justification(justification(d.opts.Alignment))
	d.space(p)
	d.style(p.AddText(title))
}

// AddParagraph implements Builder.
func (d *Docx) AddParagraph(text string, pageBreak bool) {
	p := d.doc.AddParagraph()
	d.space(p)
	d.style(p.AddText(text))
	if pageBreak {
		p.AddPageBreaks()
	}
}

// Save implements Builder.
func (d *Docx) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if _, err := d.doc.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}

// space applies the configured paragraph spacing. An "exact" line rule
// pins the line height the way a fixed line-spacing value does.
func (d *Docx) space(p *docx.Paragraph) {
	if p.Properties == nil {
		p.Properties = &docx.ParagraphProperties{}
	}
	p.Properties.Spacing = d.spacing()
}

func (d *Docx) spacing() *docx.Spacing {
	return &docx.Spacing{
		Before:   twips(d.opts.SpaceBefore),
		Line:     twips(d.opts.LineSpacing),
		LineRule: "exact",
	}
}

// twips converts points to twentieths of a point, the unit the spacing
// attributes use.
func twips(points float64) int {
	return int(math.Round(points * 20))
}

func (d *Docx) style(r *docx.Run) {
	r.Size(d.size)
	if d.opts.FontName != "" {
		r.Font(d.opts.FontName, d.opts.FontName, d.opts.FontName, "eastAsia")
	}
}

// justification maps an Alignment to the keyword the document format uses.
func justification(a Alignment) string {
	switch a {
	case AlignLeft:
		return "start"
	case AlignRight:
		return "end"
	}
	return "center"
}
