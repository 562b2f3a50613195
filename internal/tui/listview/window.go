// Package listview 是 BoundedEntryList 的滚动窗口：持有选中下标与视口尺寸，
// 在读取条目时把自身作为 ScrollPosition 传入，使高亮随光标移动自动更新。
package listview

import (
	"scrolllog/internal/scroll"
	"scrolllog/internal/tui/render"
)

// Window 显示一个 BoundedEntryList 并维护选中位置。
type Window struct {
	list    *scroll.BoundedEntryList
	vp      render.HighPerformanceViewport
	palette scroll.Palette
	sub     scroll.SubscriptionID

	selected int
	// top 是首个可见条目的下标。
	top    int
	follow bool
	width  int
	height int
	dirty  bool
	// selRows 是选中条目在 Lines 结果中的行区间 [start, end)。
	selRows [2]int
}

// New 创建窗口并订阅 list 的变更通知。
func New(list *scroll.BoundedEntryList, palette scroll.Palette) *Window {
	w := &Window{
		list:    list,
		vp:      render.NewHighPerformanceViewport(0, 0),
		palette: palette,
		follow:  true,
		dirty:   true,
	}
	w.sub = list.Subscribe(w.onChanged)
	return w
}

// Close 取消对 list 的订阅。
func (w *Window) Close() {
	if w == nil || w.sub == "" {
		return
	}
	w.list.Unsubscribe(w.sub)
	w.sub = ""
}

// LogicalIndex 实现 scroll.ScrollPosition。
func (w *Window) LogicalIndex() int {
	return w.selected
}

// List 返回绑定的列表。
func (w *Window) List() *scroll.BoundedEntryList {
	return w.list
}

func (w *Window) onChanged(*scroll.BoundedEntryList) {
	w.dirty = true
	count := w.list.EntryCount()
	if w.follow {
		w.selected = max(count-1, 0)
		return
	}
	w.clamp()
}

func (w *Window) clamp() {
	count := w.list.EntryCount()
	if w.selected >= count {
		w.selected = count - 1
	}
	if w.selected < 0 {
		w.selected = 0
	}
}

// Resize 更新窗口尺寸，并把新宽度推给列表及已有条目。
func (w *Window) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	if width == w.width && height == w.height {
		return
	}
	w.width = width
	w.height = height
	w.vp.Resize(width, height)
	w.list.SetWidth(width)
	for i := 0; i < w.list.EntryCount(); i++ {
		if e, err := w.list.Entry(nil, i); err == nil {
			e.SetWidth(width)
		}
	}
	w.dirty = true
}

// Size 返回窗口宽高。
func (w *Window) Size() (int, int) {
	return w.width, w.height
}

// Follow 返回是否跟随最新条目。
func (w *Window) Follow() bool {
	return w.follow
}

// SetFollow 开启时立即跳到最后一个条目。
func (w *Window) SetFollow(follow bool) {
	w.follow = follow
	if follow {
		w.Bottom()
		w.follow = true
	}
}

// SetSelectable 切换列表的选择模式；关闭时清掉残留的高亮属性。
func (w *Window) SetSelectable(selectable bool) {
	w.list.SetSelectable(selectable)
	if !selectable {
		for i := 0; i < w.list.EntryCount(); i++ {
			e, err := w.list.Entry(nil, i)
			if err != nil {
				continue
			}
			if a, ok := e.(scroll.Attributed); ok && a.Attrs() == scroll.AttrHighlighted {
				a.SetAttrs(scroll.AttrDefault)
			}
		}
	}
	w.dirty = true
}

// Select 选中下标 index；越界时返回 false 且不改变状态。
// 手动选择会关闭跟随，除非选中的是最后一个条目。
func (w *Window) Select(index int) bool {
	count := w.list.EntryCount()
	if index < 0 || index >= count {
		return false
	}
	if index != w.selected {
		w.selected = index
		w.dirty = true
	}
	w.follow = index == count-1
	return true
}

// MoveUp 向上移动 n 个条目。
func (w *Window) MoveUp(n int) {
	w.moveTo(w.selected - n)
}

// MoveDown 向下移动 n 个条目。
func (w *Window) MoveDown(n int) {
	w.moveTo(w.selected + n)
}

// PageUp 按窗口高度上翻。
func (w *Window) PageUp() {
	w.MoveUp(max(w.height, 1))
}

// PageDown 按窗口高度下翻。
func (w *Window) PageDown() {
	w.MoveDown(max(w.height, 1))
}

// Top 跳到第一个条目。
func (w *Window) Top() {
	w.moveTo(0)
}

// Bottom 跳到最后一个条目。
func (w *Window) Bottom() {
	w.moveTo(w.list.EntryCount() - 1)
}

func (w *Window) moveTo(index int) {
	count := w.list.EntryCount()
	if count == 0 {
		return
	}
	index = min(max(index, 0), count-1)
	w.Select(index)
}

// Lines 只渲染从首个可见条目开始、填满窗口所需的条目；每次读取都通过
// list.Entry 重算高亮。选中条目高于窗口时结果会多于 height 行。
func (w *Window) Lines() []render.Line {
	count := w.list.EntryCount()
	w.scrollToSelection(count)
	buf := render.Buffer{}
	w.selRows = [2]int{}
	for i := w.top; i < count; i++ {
		if buf.Len() >= w.height && i > w.selected {
			break
		}
		e, err := w.list.Entry(w, i)
		if err != nil {
			break
		}
		start := buf.Len()
		e.Render(&buf, w.palette)
		if i == w.selected {
			w.selRows = [2]int{start, buf.Len()}
		}
	}
	for i := range buf.Lines {
		buf.Lines[i] = render.PadLine(buf.Lines[i], w.width)
	}
	return buf.Lines
}

// scrollToSelection 调整 top，使选中条目落在窗口内；只回看至多 height 行。
func (w *Window) scrollToSelection(count int) {
	if count == 0 {
		w.top = 0
		return
	}
	w.top = min(max(w.top, 0), count-1)
	if w.selected < w.top {
		w.top = w.selected
		return
	}
	first := w.selected
	rows := w.entryHeight(first)
	for first > w.top {
		h := w.entryHeight(first - 1)
		if rows+h > w.height {
			break
		}
		rows += h
		first--
	}
	w.top = first
}

func (w *Window) entryHeight(index int) int {
	e, err := w.list.Entry(nil, index)
	if err != nil {
		return 1
	}
	return max(e.DesiredHeight(), 1)
}

// View 返回可视区域的内容，保证选中条目可见。
func (w *Window) View() string {
	if w.dirty {
		w.vp.SetLines(render.LinesToStrings(w.Lines()))
		w.dirty = false
		w.vp.SetYOffset(0)
		if w.list.EntryCount() > 0 {
			w.vp.EnsureVisible(w.selRows[0], w.selRows[1])
		}
	}
	return w.vp.View()
}

// FirstVisible 返回窗口首行所属条目的下标。
func (w *Window) FirstVisible() int {
	return w.top
}
