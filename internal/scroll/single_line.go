package scroll

import (
	"strings"

	"scrolllog/internal/tui/render"
)

// SingleLineEntry 渲染为恰好一行，超出宽度时截断。
type SingleLineEntry struct {
	value string
	width int
	attrs Attr
}

// NewSingleLineEntry 创建单行条目；换行符会被替换为空格。
func NewSingleLineEntry(value string) *SingleLineEntry {
	return &SingleLineEntry{value: strings.ReplaceAll(value, "\n", " ")}
}

func (e *SingleLineEntry) Render(buf *render.Buffer, palette Palette) {
	buf.WriteLine(render.TextLine(render.Truncate(e.value, e.width), palette.Style(e.attrs)))
}

func (e *SingleLineEntry) DesiredHeight() int { return 1 }

func (e *SingleLineEntry) SetWidth(width int) { e.width = width }

func (e *SingleLineEntry) Width() int { return e.width }

func (e *SingleLineEntry) SetAttrs(attr Attr) { e.attrs = attr }

func (e *SingleLineEntry) Attrs() Attr { return e.attrs }

func (e *SingleLineEntry) Value() string { return e.value }
