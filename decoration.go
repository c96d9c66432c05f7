package decorify

// DecorationKind represents the kind of a decoration instruction.
type DecorationKind int

const (
	// DecorationReplace replaces a text span with a rendered symbol.
	DecorationReplace DecorationKind = iota
	// DecorationMarker inserts a rendered symbol at a single position.
	DecorationMarker
)

// String returns the string representation of DecorationKind.
func (dk DecorationKind) String() string {
	switch dk {
	case DecorationReplace:
		return "replace"
	case DecorationMarker:
		return "marker"
	default:
		return "unknown"
	}
}

// Decoration is one non-destructive visual instruction over document text.
// The full set is rebuilt from scratch on every relevant host event and the
// previous set is discarded; instructions carry no persistent identity.
type Decoration interface {
	GetKind() DecorationKind
	// GetAnchor returns the absolute UTF-16 offset the rendering layer
	// sorts and places the instruction by.
	GetAnchor() int
}

// ReplaceSpan renders Symbol in place of the document span [From, To).
// The underlying text is never modified.
type ReplaceSpan struct {
	From   int
	To     int
	Symbol string
}

// GetKind returns DecorationReplace.
func (r *ReplaceSpan) GetKind() DecorationKind {
	return DecorationReplace
}

// GetAnchor returns the span start.
func (r *ReplaceSpan) GetAnchor() int {
	return r.From
}

// Width returns the display width of the rendered symbol in terminal cells.
func (r *ReplaceSpan) Width() int {
	return SymbolWidth(r.Symbol)
}

// InsertMarker renders Symbol adjacent to Position without consuming any
// document text. Side selects which side of Position the symbol lands on.
type InsertMarker struct {
	Position int
	Symbol   string
	Side     Side
}

// GetKind returns DecorationMarker.
func (m *InsertMarker) GetKind() DecorationKind {
	return DecorationMarker
}

// GetAnchor returns the insertion position.
func (m *InsertMarker) GetAnchor() int {
	return m.Position
}

// Width returns the display width of the rendered symbol in terminal cells.
func (m *InsertMarker) Width() int {
	return SymbolWidth(m.Symbol)
}
