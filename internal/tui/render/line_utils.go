package render

import "github.com/charmbracelet/lipgloss"

// TextLine 构造只有一个 Span 的行。
func TextLine(text string, style lipgloss.Style) Line {
	return Line{Spans: []Span{{Text: text, Style: style}}}
}

// PadLine 用空格把行补齐到 width 列，使整行背景色能铺满。
func PadLine(line Line, width int) Line {
	w := StringWidth(line.Plain())
	if width <= 0 || w >= width {
		return line
	}
	spans := make([]Span, 0, len(line.Spans)+1)
	spans = append(spans, line.Spans...)
	var style lipgloss.Style
	if n := len(line.Spans); n > 0 {
		style = line.Spans[n-1].Style
	}
	spans = append(spans, Span{Text: spaces(width - w), Style: style})
	return Line{Spans: spans, Style: line.Style}
}

func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
