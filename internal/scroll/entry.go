package scroll

import (
	"scrolllog/internal/tui/render"

	"github.com/charmbracelet/lipgloss"
)

// Attr 描述条目的视觉属性，颜色由 Palette 在渲染时解析。
type Attr int

const (
	AttrDefault Attr = iota
	AttrHighlighted
	AttrDim
)

func (a Attr) String() string {
	switch a {
	case AttrHighlighted:
		return "highlighted"
	case AttrDim:
		return "dim"
	default:
		return "default"
	}
}

// Palette 将 Attr 映射到 lipgloss 样式；缺失的键按零值样式渲染。
type Palette map[Attr]lipgloss.Style

// Style 返回 attr 对应的样式。
func (p Palette) Style(a Attr) lipgloss.Style {
	if p == nil {
		return lipgloss.Style{}
	}
	return p[a]
}

// DefaultPalette 返回内置配色。
func DefaultPalette() Palette {
	return Palette{
		AttrDefault:     lipgloss.NewStyle(),
		AttrHighlighted: lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#7D56F4")),
		AttrDim:         lipgloss.NewStyle().Faint(true),
	}
}

// Entry 是列表中的一个可渲染单元（单行或多行）。
type Entry interface {
	// Render 以当前宽度把条目写入 buf。
	Render(buf *render.Buffer, palette Palette)
	// DesiredHeight 返回条目在当前宽度下占用的行数。
	DesiredHeight() int
	SetWidth(width int)
	Width() int
}

// Attributed 由带可变视觉属性的条目实现，选择高亮只作用于此类条目。
type Attributed interface {
	SetAttrs(attr Attr)
	Attrs() Attr
}

// Texter 由能提供单行文本的条目实现。
type Texter interface {
	Value() string
}
