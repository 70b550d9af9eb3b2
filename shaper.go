package retained

import (
	"fmt"
	"strings"
)

// Shaper is the text measurement service the widget tree consumes.
// It abstracts font resolution and line-break computation, allowing
// different implementations to be injected (system fonts, GPU font
// atlases, fixed-metric fonts for testing).
type Shaper interface {
	// BuildFont resolves a font by name at the given size.
	// Returns an error for unknown font names.
	BuildFont(name string, size float32) (Font, error)

	// BuildLayout measures text under a maximum width and returns the
	// shaped result. Pass WidthUnbounded to disable wrapping.
	BuildLayout(font Font, text string, maxWidth float32) (ShapedText, error)
}

// Font measures text in layout-independent units.
type Font interface {
	// MeasureText returns the advance width of the text on one line.
	MeasureText(text string) float32

	// LineHeight returns the height of one line.
	LineHeight() float32
}

// LineMetric describes one line of a shaped layout.
type LineMetric struct {
	// CumulativeHeight is the total height through this line, inclusive.
	CumulativeHeight float32
}

// Line is one wrapped line of a shaped layout, ready to draw.
type Line struct {
	Text  string
	Width float32
}

// ShapedText is a measured, drawable representation of a text buffer.
type ShapedText interface {
	// UpdateWidth re-wraps the existing layout at a new maximum width
	// without rebuilding font state.
	UpdateWidth(width float32)

	// Width returns the widest line's width.
	Width() float32

	// LineCount returns the number of wrapped lines.
	LineCount() int

	// LineMetric returns the metric for line i, reporting false when i
	// is out of range.
	LineMetric(i int) (LineMetric, bool)

	// Lines returns the wrapped lines in top-to-bottom order.
	Lines() []Line
}

// BasicShaper is a fixed-advance Shaper: every rune has the same width,
// proportional to the font size. It is good enough for tests, examples,
// and monospace-style rendering; applications with real font stacks
// provide their own Shaper.
type BasicShaper struct {
	faces map[string]struct{}
}

// NewBasicShaper creates a shaper that resolves only the named faces.
// With no arguments it resolves just "default".
func NewBasicShaper(faces ...string) *BasicShaper {
	if len(faces) == 0 {
		faces = []string{"default"}
	}
	s := &BasicShaper{faces: make(map[string]struct{}, len(faces))}
	for _, f := range faces {
		s.faces[f] = struct{}{}
	}
	return s
}

// BuildFont implements Shaper.
func (s *BasicShaper) BuildFont(name string, size float32) (Font, error) {
	if _, ok := s.faces[name]; !ok {
		return nil, fmt.Errorf("unknown font face %q", name)
	}
	return &basicFont{name: name, size: size}, nil
}

// BuildLayout implements Shaper.
func (s *BasicShaper) BuildLayout(font Font, text string, maxWidth float32) (ShapedText, error) {
	st := &basicShaped{font: font, text: text, maxWidth: maxWidth}
	st.relayout()
	return st, nil
}

// basicFont has a fixed advance of 0.6em per rune and a line height of
// 1.2em, which approximates typical monospace metrics.
type basicFont struct {
	name string
	size float32
}

func (f *basicFont) MeasureText(text string) float32 {
	return float32(len([]rune(text))) * f.size * 0.6
}

func (f *basicFont) LineHeight() float32 {
	return f.size * 1.2
}

type basicShaped struct {
	font     Font
	text     string
	maxWidth float32
	lines    []Line
}

func (l *basicShaped) relayout() {
	l.lines = l.lines[:0]
	if l.text == "" {
		return
	}
	for _, para := range strings.Split(l.text, "\n") {
		for _, line := range wrapByWord(l.font, para, l.maxWidth) {
			l.lines = append(l.lines, Line{Text: line, Width: l.font.MeasureText(line)})
		}
	}
}

func (l *basicShaped) UpdateWidth(width float32) {
	l.maxWidth = width
	l.relayout()
}

func (l *basicShaped) Width() float32 {
	var w float32
	for _, line := range l.lines {
		w = maxf(w, line.Width)
	}
	return w
}

func (l *basicShaped) LineCount() int {
	return len(l.lines)
}

func (l *basicShaped) LineMetric(i int) (LineMetric, bool) {
	if i < 0 || i >= len(l.lines) {
		return LineMetric{}, false
	}
	return LineMetric{CumulativeHeight: float32(i+1) * l.font.LineHeight()}, true
}

func (l *basicShaped) Lines() []Line {
	return l.lines
}

// wrapByWord wraps text at word boundaries. A word wider than maxWidth
// gets a line of its own rather than being broken mid-word. A paragraph
// with no words still yields one empty line, so blank lines keep their
// line height.
func wrapByWord(font Font, text string, maxWidth float32) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	var currentLine string

	for _, word := range words {
		testLine := currentLine
		if testLine != "" {
			testLine += " "
		}
		testLine += word

		if font.MeasureText(testLine) > maxWidth && currentLine != "" {
			lines = append(lines, currentLine)
			currentLine = word
		} else {
			currentLine = testLine
		}
	}

	if currentLine != "" {
		lines = append(lines, currentLine)
	}

	return lines
}
