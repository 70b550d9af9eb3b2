package retained

import "testing"

// Metrics for the fixed-advance shaper at the default 14px font:
// advance 8.4 per rune, line height 16.8.
const (
	testAdvance    = 14 * 0.6
	testLineHeight = 14 * 1.2
)

func TestTextLayout_SingleLineWhenWidthSuffices(t *testing.T) {
	shaper := NewBasicShaper()
	env := DefaultEnv()

	tl := NewTextLayout("The quick brown fox", shaper, env, 1000)

	size := tl.Size()
	if !approxEq(size.X, 19*testAdvance) {
		t.Errorf("Expected width %g, got %g", 19*testAdvance, size.X)
	}
	if !approxEq(size.Y, testLineHeight) {
		t.Errorf("Expected single-line height %g, got %g", float32(testLineHeight), size.Y)
	}
}

func TestTextLayout_UpdateWidthRewraps(t *testing.T) {
	shaper := NewBasicShaper()
	env := DefaultEnv()

	tl := NewTextLayout("The quick brown fox", shaper, env, 1000)
	before := tl.Size()

	tl.UpdateWidth(50)
	after := tl.Size()

	// At width 50 every word is its own line.
	if !approxEq(after.Y, 4*testLineHeight) {
		t.Errorf("Expected 4 wrapped lines (height %g), got height %g", 4*testLineHeight, after.Y)
	}
	if after.Y <= before.Y {
		t.Errorf("Expected wrapping to increase height, %g -> %g", before.Y, after.Y)
	}
	if !approxEq(after.X, 5*testAdvance) {
		t.Errorf("Expected widest line %q width %g, got %g", "quick", 5*testAdvance, after.X)
	}

	// Widening again restores the single line.
	tl.UpdateWidth(1000)
	if got := tl.Size(); !approxEq(got.Y, testLineHeight) {
		t.Errorf("Expected re-widening to restore one line, got height %g", got.Y)
	}
}

func TestTextLayout_UpdateBufferRemeasures(t *testing.T) {
	shaper := NewBasicShaper()
	env := DefaultEnv()

	tl := NewTextLayout("ab", shaper, env, WidthUnbounded)
	tl.UpdateBuffer("abcd", shaper, env)

	if tl.Buffer() != "abcd" {
		t.Errorf("Expected buffer %q, got %q", "abcd", tl.Buffer())
	}
	if got := tl.Size(); !approxEq(got.X, 4*testAdvance) {
		t.Errorf("Expected width %g after buffer change, got %g", 4*testAdvance, got.X)
	}
}

func TestTextLayout_UnknownFontDegradesToEmpty(t *testing.T) {
	shaper := NewBasicShaper()
	env := DefaultEnv()
	env.Set(KeyFontName, "no-such-face")

	tl := NewTextLayout("hello", shaper, env, WidthUnbounded)

	if size := tl.Size(); size.X != 0 || size.Y != 0 {
		t.Errorf("Expected zero size for unresolvable font, got (%g, %g)", size.X, size.Y)
	}

	w := NewWindow(&probeWidget{})
	tl.Draw(w.ctx, Vec2{}, env)
	if n := len(w.drawList.Ops()); n != 0 {
		t.Errorf("Expected degraded layout to draw nothing, got %d ops", n)
	}

	// Size and Draw stay safe on repeated calls.
	tl.UpdateWidth(50)
	if size := tl.Size(); size.X != 0 || size.Y != 0 {
		t.Errorf("Expected zero size after UpdateWidth on degraded layout, got (%g, %g)", size.X, size.Y)
	}
}

func TestTextLayout_EmptyBufferHasZeroSize(t *testing.T) {
	tl := NewTextLayout("", NewBasicShaper(), DefaultEnv(), WidthUnbounded)
	if size := tl.Size(); size.X != 0 || size.Y != 0 {
		t.Errorf("Expected zero size for empty buffer, got (%g, %g)", size.X, size.Y)
	}
}

func TestTextLayout_DrawUsesLabelColor(t *testing.T) {
	env := DefaultEnv()
	env.Set(KeyLabelColor, ColorRed)

	tl := NewTextLayout("hi", NewBasicShaper(), env, WidthUnbounded)

	w := NewWindow(&probeWidget{})
	tl.Draw(w.ctx, Vec2{X: 5, Y: 7}, env)

	ops := w.drawList.Ops()
	if len(ops) != 1 {
		t.Fatalf("Expected 1 draw op, got %d", len(ops))
	}
	if ops[0].Kind != OpText {
		t.Fatalf("Expected a text op, got kind %d", ops[0].Kind)
	}
	if ops[0].Color != ColorRed {
		t.Errorf("Expected color %#x, got %#x", ColorRed, ops[0].Color)
	}
	if !approxEq(ops[0].Pos.X, 5) || !approxEq(ops[0].Pos.Y, 7) {
		t.Errorf("Expected op at (5, 7), got (%g, %g)", ops[0].Pos.X, ops[0].Pos.Y)
	}
}

func TestBasicShaper_UnknownFaceFails(t *testing.T) {
	shaper := NewBasicShaper("default", "mono")

	if _, err := shaper.BuildFont("mono", 12); err != nil {
		t.Errorf("Expected whitelisted face to resolve, got %v", err)
	}
	if _, err := shaper.BuildFont("serif", 12); err == nil {
		t.Error("Expected unknown face to fail")
	}
}

func TestBasicShaper_WordWiderThanLimitGetsOwnLine(t *testing.T) {
	shaper := NewBasicShaper()
	font, err := shaper.BuildFont("default", 14)
	if err != nil {
		t.Fatalf("BuildFont: %v", err)
	}

	layout, err := shaper.BuildLayout(font, "a extraordinarily b", 40)
	if err != nil {
		t.Fatalf("BuildLayout: %v", err)
	}

	lines := layout.Lines()
	if len(lines) != 3 {
		t.Fatalf("Expected 3 lines, got %d", len(lines))
	}
	if lines[1].Text != "extraordinarily" {
		t.Errorf("Expected oversized word on its own line, got %q", lines[1].Text)
	}
}

func TestBasicShaper_NewlinesSplitParagraphs(t *testing.T) {
	shaper := NewBasicShaper()
	font, _ := shaper.BuildFont("default", 14)

	layout, err := shaper.BuildLayout(font, "one\ntwo three", WidthUnbounded)
	if err != nil {
		t.Fatalf("BuildLayout: %v", err)
	}
	if n := layout.LineCount(); n != 2 {
		t.Errorf("Expected 2 lines, got %d", n)
	}
}

func TestBasicShaper_BlankLinesKeepHeight(t *testing.T) {
	shaper := NewBasicShaper()
	font, _ := shaper.BuildFont("default", 14)

	layout, err := shaper.BuildLayout(font, "a\n\nb", WidthUnbounded)
	if err != nil {
		t.Fatalf("BuildLayout: %v", err)
	}
	if n := layout.LineCount(); n != 3 {
		t.Fatalf("Expected 3 lines including the blank one, got %d", n)
	}
	if layout.Lines()[1].Text != "" {
		t.Errorf("Expected middle line empty, got %q", layout.Lines()[1].Text)
	}
	lm, ok := layout.LineMetric(2)
	if !ok {
		t.Fatal("Expected metric for last line")
	}
	if !approxEq(lm.CumulativeHeight, 3*testLineHeight) {
		t.Errorf("Expected blank line to contribute height (total %g), got %g",
			3*testLineHeight, lm.CumulativeHeight)
	}
}

func TestBasicShaper_LineMetricOutOfRange(t *testing.T) {
	shaper := NewBasicShaper()
	font, _ := shaper.BuildFont("default", 14)
	layout, _ := shaper.BuildLayout(font, "one", WidthUnbounded)

	if _, ok := layout.LineMetric(0); !ok {
		t.Error("Expected metric for line 0")
	}
	if _, ok := layout.LineMetric(1); ok {
		t.Error("Expected no metric past the last line")
	}
	if _, ok := layout.LineMetric(-1); ok {
		t.Error("Expected no metric for negative index")
	}
}
