package tui

import (
	"fmt"
	"sort"
	"strings"

	"scrolllog/internal/scroll"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"
)

// entrySource 让 fuzzy 直接遍历列表；非单行条目按空串参与匹配。
type entrySource struct {
	list *scroll.BoundedEntryList
}

func (s entrySource) String(i int) string {
	text, err := s.list.StringAt(i)
	if err != nil {
		return ""
	}
	return text
}

func (s entrySource) Len() int {
	return s.list.EntryCount()
}

func (m *Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.searching = false
		m.search.Blur()
		m.runSearch(strings.TrimSpace(m.search.Value()))
		return m, nil
	case "esc", "ctrl+c":
		m.searching = false
		m.search.Blur()
		m.queries.ResetBrowsing()
		return m, nil
	case "up":
		if q, ok := m.queries.Prev(m.search.Value()); ok {
			m.search.SetValue(q)
			m.search.CursorEnd()
		}
		return m, nil
	case "down":
		if q, ok := m.queries.Next(); ok {
			m.search.SetValue(q)
			m.search.CursorEnd()
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

// runSearch 选中得分最高的匹配，并记录全部匹配下标供 n/N 跳转。
func (m *Model) runSearch(query string) {
	m.query = query
	m.matches = nil
	if query == "" {
		m.status = ""
		return
	}
	if m.queries.Add(query) && m.store != nil {
		if err := m.store.Append(query); err != nil {
			m.log.WithError(err).Warn("failed to save search history")
		}
	}
	best, ok := m.findMatches()
	if !ok {
		return
	}
	m.window.Select(best)
}

// findMatches 对当前列表重新匹配 m.query，刷新 m.matches 与状态栏。
// 淘汰会让下标整体前移，所以匹配结果不能跨变更复用。
func (m *Model) findMatches() (int, bool) {
	m.matches = nil
	results := fuzzy.FindFrom(m.query, entrySource{list: m.list})
	if len(results) == 0 {
		m.status = fmt.Sprintf("no match for %q", m.query)
		return 0, false
	}
	for _, r := range results {
		m.matches = append(m.matches, r.Index)
	}
	sort.Ints(m.matches)
	m.status = fmt.Sprintf("%d matches for %q", len(m.matches), m.query)
	return results[0].Index, true
}

// nextMatch 以当前选中位置为起点向前/向后循环跳转到下一个匹配。
func (m *Model) nextMatch(dir int) {
	if m.query == "" {
		return
	}
	if _, ok := m.findMatches(); !ok {
		return
	}
	cur := m.window.LogicalIndex()
	if dir > 0 {
		i := sort.SearchInts(m.matches, cur+1)
		if i == len(m.matches) {
			i = 0
		}
		m.window.Select(m.matches[i])
		return
	}
	i := sort.SearchInts(m.matches, cur) - 1
	if i < 0 {
		i = len(m.matches) - 1
	}
	m.window.Select(m.matches[i])
}
