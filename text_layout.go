package retained

import (
	"log/slog"
	"os"
)

// textLogger is the logger for text shaping diagnostics.
var textLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: traceLogLevel}))

// TextLayout owns a text buffer together with its lazily computed shaped
// layout. The layout is rebuilt only when the buffer, the font
// parameters, or the wrap width change; repeated draws and size queries
// reuse the cached measurement.
//
// When the environment names a font the shaper cannot resolve, the
// layout degrades to empty: Size reports zero and Draw emits nothing.
// The error is logged once per rebuild rather than propagated, so a bad
// theme never takes down the paint pass.
type TextLayout struct {
	buffer string
	width  float32
	layout ShapedText
}

// NewTextLayout measures buffer with the font named in env, wrapping at
// width. Pass WidthUnbounded to disable wrapping.
func NewTextLayout(buffer string, shaper Shaper, env *Env, width float32) *TextLayout {
	t := &TextLayout{buffer: buffer, width: width}
	t.layout = shapeBuffer(buffer, shaper, env, width)
	return t
}

// Buffer returns the current text.
func (t *TextLayout) Buffer() string {
	return t.buffer
}

// UpdateBuffer replaces the text and re-measures it at the current
// width.
func (t *TextLayout) UpdateBuffer(buffer string, shaper Shaper, env *Env) {
	t.buffer = buffer
	t.layout = shapeBuffer(buffer, shaper, env, t.width)
}

// UpdateWidth changes the wrap width, re-wrapping the cached layout in
// place. A degraded layout stays empty; the new width still takes
// effect on the next successful rebuild.
func (t *TextLayout) UpdateWidth(width float32) {
	t.width = width
	if t.layout != nil {
		t.layout.UpdateWidth(width)
	}
}

// Size returns the layout's dimensions: the widest line by the
// cumulative height through the last line. A degraded or empty layout
// reports zero.
func (t *TextLayout) Size() Vec2 {
	if t.layout == nil {
		return Vec2{}
	}
	n := t.layout.LineCount()
	if n == 0 {
		return Vec2{}
	}
	lm, ok := t.layout.LineMetric(n - 1)
	if !ok {
		return Vec2{}
	}
	return Vec2{X: t.layout.Width(), Y: lm.CumulativeHeight}
}

// Draw records the layout on the draw list at origin, in the label
// color from env. A degraded layout draws nothing.
func (t *TextLayout) Draw(ctx *Context, origin Vec2, env *Env) {
	if t.layout == nil {
		return
	}
	ctx.DrawList().AddText(t.layout, origin, env.GetColor(KeyLabelColor, ColorWhite))
}

func shapeBuffer(buffer string, shaper Shaper, env *Env, width float32) ShapedText {
	name := env.GetString(KeyFontName, "default")
	size := env.GetFloat32(KeyTextSize, 14)

	font, err := shaper.BuildFont(name, size)
	if err != nil {
		textLogger.Warn("font resolution failed, text degrades to empty",
			"font", name, "error", err)
		return nil
	}
	layout, err := shaper.BuildLayout(font, buffer, width)
	if err != nil {
		textLogger.Warn("text layout failed, text degrades to empty",
			"font", name, "error", err)
		return nil
	}
	return layout
}
