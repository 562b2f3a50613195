package scroll

import "scrolllog/internal/tui/render"

// MultiLineEntry 按宽度折行，可能占用多行。它不实现 Texter：
// StringAt 对其返回 ErrTypeMismatch。
type MultiLineEntry struct {
	value string
	width int
	attrs Attr
	// wrapped caches WrapText output for wrappedAt.
	wrapped   []string
	wrappedAt int
}

func NewMultiLineEntry(value string) *MultiLineEntry {
	return &MultiLineEntry{value: value, wrappedAt: -1}
}

func (e *MultiLineEntry) lines() []string {
	if e.wrappedAt != e.width || e.wrapped == nil {
		e.wrapped = render.WrapText(e.value, e.width)
		e.wrappedAt = e.width
	}
	return e.wrapped
}

func (e *MultiLineEntry) Render(buf *render.Buffer, palette Palette) {
	style := palette.Style(e.attrs)
	for _, l := range e.lines() {
		buf.WriteLine(render.TextLine(l, style))
	}
}

func (e *MultiLineEntry) DesiredHeight() int {
	return len(e.lines())
}

func (e *MultiLineEntry) SetWidth(width int) { e.width = width }

func (e *MultiLineEntry) Width() int { return e.width }

func (e *MultiLineEntry) SetAttrs(attr Attr) { e.attrs = attr }

func (e *MultiLineEntry) Attrs() Attr { return e.attrs }
