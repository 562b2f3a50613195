package tui

import (
	"fmt"
	"strings"

	"scrolllog/internal/scroll"
	"scrolllog/internal/tui/render"
)

// statusLine 渲染底部状态栏：条目计数、跟随/选择状态与最近一条提示。
// 搜索时改为显示输入框。
func (m *Model) statusLine() string {
	if m.searching {
		return m.search.View()
	}
	count := fmt.Sprintf("%d", m.list.EntryCount())
	if maxEntries := m.list.MaxEntries(); maxEntries != scroll.Unbounded {
		count = fmt.Sprintf("%d/%d", m.list.EntryCount(), maxEntries)
	}
	parts := []string{count}
	if m.window.Follow() {
		parts = append(parts, "follow")
	} else {
		parts = append(parts, "paused")
	}
	if m.list.Selectable() {
		parts = append(parts, fmt.Sprintf("row %d", m.window.LogicalIndex()+1))
	}
	if m.status != "" {
		parts = append(parts, m.status)
	}
	text := render.Truncate(strings.Join(parts, " • "), m.width)
	return m.palette.Style(scroll.AttrDim).Render(text)
}
