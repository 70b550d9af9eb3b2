package retained

// DrawOpKind discriminates the variants of DrawOp.
type DrawOpKind uint8

const (
	OpRect DrawOpKind = iota
	OpRectOutline
	OpText
)

// DrawOp is one recorded drawing operation. Which fields are meaningful
// depends on Kind:
//
//	OpRect        - Rect, Color
//	OpRectOutline - Rect, Color, Thickness
//	OpText        - Text, Pos, Color
type DrawOp struct {
	Kind      DrawOpKind
	Rect      Rect
	Pos       Vec2
	Color     uint32
	Thickness float32
	Text      ShapedText
}

// DrawList accumulates drawing operations during the paint pass. The
// window resets it at the start of each paint; a backend walks Ops()
// afterwards and translates them to its own API.
type DrawList struct {
	ops []DrawOp
}

// NewDrawList creates an empty draw list.
func NewDrawList() *DrawList {
	return &DrawList{}
}

// Reset clears the list for the next paint pass, keeping capacity.
func (dl *DrawList) Reset() {
	dl.ops = dl.ops[:0]
}

// Ops returns the recorded operations in paint order.
func (dl *DrawList) Ops() []DrawOp {
	return dl.ops
}

// AddRect records a filled rectangle.
func (dl *DrawList) AddRect(r Rect, color uint32) {
	dl.ops = append(dl.ops, DrawOp{Kind: OpRect, Rect: r, Color: color})
}

// AddRectOutline records a stroked rectangle.
func (dl *DrawList) AddRectOutline(r Rect, color uint32, thickness float32) {
	dl.ops = append(dl.ops, DrawOp{Kind: OpRectOutline, Rect: r, Color: color, Thickness: thickness})
}

// AddText records a shaped text layout anchored at pos (top-left).
func (dl *DrawList) AddText(text ShapedText, pos Vec2, color uint32) {
	dl.ops = append(dl.ops, DrawOp{Kind: OpText, Text: text, Pos: pos, Color: color})
}

// focusRingOffset is how far the focus ring sits outside the widget's
// layout rect.
const focusRingOffset = 2

// DrawFocusRing records a focus indicator around r, in the focus color
// from env. Focusable widgets call this from Paint when the ambient
// focus node reports IsFocused.
func DrawFocusRing(dl *DrawList, r Rect, env *Env) {
	ring := Rect{
		X: r.X - focusRingOffset,
		Y: r.Y - focusRingOffset,
		W: r.W + focusRingOffset*2,
		H: r.H + focusRingOffset*2,
	}
	dl.AddRectOutline(ring, env.GetColor(KeyFocusColor, ColorCyan), 2)
}
