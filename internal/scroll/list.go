// Package scroll holds the bounded entry list that backs the scrolling list
// widget: insertion-ordered entries, FIFO eviction at a capacity, change
// notification, and read-time selection highlighting.
//
// The list is not safe for concurrent use. Producers running on other
// goroutines must hand lines to the UI goroutine (for Bubble Tea, via
// Program.Send) before calling into it. Observers must not mutate the list
// from inside a change notification.
package scroll

import (
	"fmt"
	"math"

	"scrolllog/internal/logger"
)

// Unbounded 是默认容量，表示不淘汰。
const Unbounded uint = math.MaxUint

// ScrollPosition 是外部视口暴露的光标状态。
type ScrollPosition interface {
	// LogicalIndex 返回当前选中（高亮）的条目下标。
	LogicalIndex() int
}

// BoundedEntryList 维护有序条目，超过容量时从头部淘汰最旧条目。
type BoundedEntryList struct {
	entries    []Entry
	maxEntries uint
	selectable bool
	width      int
	changed    changedSignal
	log        *logger.LogEntry
}

// NewBoundedEntryList 创建容量不受限、不可选择的空列表。
func NewBoundedEntryList() *BoundedEntryList {
	return &BoundedEntryList{
		maxEntries: Unbounded,
		log:        logger.Named("scroll"),
	}
}

// SetSelectable 切换读取时是否计算高亮。不触发变更通知。
func (l *BoundedEntryList) SetSelectable(selectable bool) {
	l.selectable = selectable
}

// Selectable 返回当前是否计算高亮。
func (l *BoundedEntryList) Selectable() bool {
	return l.selectable
}

// Clear 清空全部条目并触发一次变更通知。
func (l *BoundedEntryList) Clear() {
	dropped := len(l.entries)
	l.entries = nil
	l.log.WithField("dropped", dropped).Debug("cleared entries")
	l.changed.emit(l)
}

// EntryCount 返回当前条目数。
func (l *BoundedEntryList) EntryCount() int {
	return len(l.entries)
}

// SetMaxEntries 设置容量，只在下一次 AddEntry 时生效，不会立即裁剪已有条目。
func (l *BoundedEntryList) SetMaxEntries(maxEntries uint) {
	l.maxEntries = maxEntries
}

// MaxEntries 返回当前容量。
func (l *BoundedEntryList) MaxEntries() uint {
	return l.maxEntries
}

// SetWidth 由所属控件在尺寸变化时调用；只影响之后追加的条目。
func (l *BoundedEntryList) SetWidth(width int) {
	l.width = width
}

// Width 返回当前显示宽度。
func (l *BoundedEntryList) Width() int {
	return l.width
}

// AddEntry 设置条目宽度后追加到尾部，循环淘汰头部直到不超过容量，最后触发一次通知。
// 容量为 0 时追加的条目会被立即淘汰。
func (l *BoundedEntryList) AddEntry(entry Entry) {
	if entry == nil {
		return
	}
	entry.SetWidth(l.width)
	l.entries = append(l.entries, entry)

	evicted := 0
	for uint(len(l.entries)) > l.maxEntries {
		l.entries[0] = nil
		l.entries = l.entries[1:]
		evicted++
	}
	if evicted > 0 {
		l.log.WithField("evicted", evicted).WithField("max", l.maxEntries).Debug("evicted oldest entries")
	}
	l.changed.emit(l)
}

// AddText 以 SingleLineEntry 包装 value 后调用 AddEntry。
func (l *BoundedEntryList) AddText(value string) {
	l.AddEntry(NewSingleLineEntry(value))
}

// Entry 返回下标 index 处的条目。可选择且 vp 非空时，
// 条目的属性在每次读取时重算：先置为 AttrDefault，下标等于 vp.LogicalIndex() 时置为 AttrHighlighted。
// 不实现 Attributed 的条目保持不变。
func (l *BoundedEntryList) Entry(vp ScrollPosition, index int) (Entry, error) {
	entry, err := l.at(index)
	if err != nil {
		return nil, err
	}
	if l.selectable && vp != nil {
		if attributed, ok := entry.(Attributed); ok {
			attributed.SetAttrs(AttrDefault)
			if index == vp.LogicalIndex() {
				attributed.SetAttrs(AttrHighlighted)
			}
		}
	}
	return entry, nil
}

// StringAt 返回下标 index 处条目的单行文本，不修改属性。
func (l *BoundedEntryList) StringAt(index int) (string, error) {
	entry, err := l.at(index)
	if err != nil {
		return "", err
	}
	texter, ok := entry.(Texter)
	if !ok {
		return "", fmt.Errorf("%w: entry %d is %T, not a single-line entry", ErrTypeMismatch, index, entry)
	}
	return texter.Value(), nil
}

// Subscribe 注册变更观察者，在 Clear 与 AddEntry 之后同步调用。
func (l *BoundedEntryList) Subscribe(fn func(*BoundedEntryList)) SubscriptionID {
	if fn == nil {
		return ""
	}
	return l.changed.subscribe(fn)
}

// Unsubscribe 取消订阅，返回 id 是否存在。
func (l *BoundedEntryList) Unsubscribe(id SubscriptionID) bool {
	return l.changed.unsubscribe(id)
}

func (l *BoundedEntryList) at(index int) (Entry, error) {
	if index < 0 || index >= len(l.entries) {
		return nil, fmt.Errorf("%w: index %d, count %d", ErrIndexOutOfRange, index, len(l.entries))
	}
	return l.entries[index], nil
}
