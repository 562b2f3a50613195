package render

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// HighPerformanceViewport 包装 bubbles viewport，提供 diff 感知与行区间可见性控制。
type HighPerformanceViewport struct {
	viewport.Model
	lastLines []string
}

// NewHighPerformanceViewport 创建视口；Bubble Tea v1 推荐默认渲染器，因此不启用
// 兼容的高性能命令路径。
func NewHighPerformanceViewport(width, height int) HighPerformanceViewport {
	vp := viewport.New(width, height)
	return HighPerformanceViewport{Model: vp}
}

// Resize 更新宽高，宽度变化时清空 diff 缓存。
func (v *HighPerformanceViewport) Resize(width, height int) {
	if v == nil {
		return
	}
	widthChanged := v.Width != width
	if !widthChanged && v.Height == height {
		return
	}
	v.Width = width
	v.Height = height
	if widthChanged {
		v.Invalidate()
	}
}

// HandleUpdate 代理 bubbles 的 Update，保持内部状态。
func (v *HighPerformanceViewport) HandleUpdate(msg tea.Msg) tea.Cmd {
	if v == nil {
		return nil
	}
	var cmd tea.Cmd
	v.Model, cmd = v.Model.Update(msg)
	return cmd
}

// SetLines 更新内容；内容未变化时跳过。返回内容是否被替换。
func (v *HighPerformanceViewport) SetLines(lines []string) bool {
	if v == nil {
		return false
	}
	if v.lastLines != nil && slices.Equal(lines, v.lastLines) {
		return false
	}
	v.lastLines = append([]string{}, lines...)
	v.SetContent(strings.Join(lines, "\n"))
	return true
}

// EnsureVisible 调整 YOffset，使 [top, bottom) 行区间尽量落在可视区域内。
// 区间高于视口时优先显示首行。
func (v *HighPerformanceViewport) EnsureVisible(top, bottom int) {
	if v == nil || v.Height <= 0 {
		return
	}
	if bottom <= top {
		bottom = top + 1
	}
	offset := v.YOffset
	if bottom > offset+v.Height {
		offset = bottom - v.Height
	}
	if top < offset {
		offset = top
	}
	v.SetYOffset(offset)
}

// Invalidate 清空已缓存的行，强制下次 SetLines 全量替换。
func (v *HighPerformanceViewport) Invalidate() {
	if v == nil {
		return
	}
	v.lastLines = nil
}
