// Package document produces the output .docx. The rest of the tool only
// talks to the Builder interface; the go-docx binding lives behind it.
package document

// Alignment is a paragraph alignment keyword.
type Alignment string

const (
	AlignLeft   Alignment = "left"
	AlignCenter Alignment = "center"
	AlignRight  Alignment = "right"
)

// ParseAlignment maps a user-supplied keyword to an Alignment. Unknown
// values fall back to center.
func ParseAlignment(s string) Alignment {
	switch Alignment(s) {
	case AlignLeft, AlignCenter, AlignRight:
		return Alignment(s)
	}
	return AlignCenter
}

// Options carries the styling knobs applied to every emitted paragraph.
// Sizes and spacing are in points.
type Options struct {
	FontName    string
	FontSize    float64
	SpaceBefore float64
	SpaceAfter  float64
	LineSpacing float64
	Alignment   Alignment
}

// Builder is the document collaborator: a header paragraph, then one
// styled paragraph per code fragment, then a save.
type Builder interface {
	// AddHeader writes the title paragraph at the top of the document.
	AddHeader(title string)
	// AddParagraph appends one styled paragraph holding a single code
	// fragment. When pageBreak is set, a page break follows the text.
	AddParagraph(text string, pageBreak bool)
	// Save writes the document to path.
	Save(path string) error
}
