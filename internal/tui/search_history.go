package tui

import "strings"

// searchHistory 负责搜索框的历史浏览状态（上下箭头）。
// cursor == len(entries) 表示当前在“正在输入”的位置。
type searchHistory struct {
	entries []string
	cursor  int
	draft   string
}

func (h *searchHistory) Set(entries []string) {
	h.entries = append([]string(nil), entries...)
	h.cursor = len(h.entries)
	h.draft = ""
}

// Add 记录一条查询；与上一条相同时不重复记录。
func (h *searchHistory) Add(query string) bool {
	query = strings.TrimSpace(query)
	if query == "" {
		h.ResetBrowsing()
		return false
	}
	if n := len(h.entries); n > 0 && h.entries[n-1] == query {
		h.ResetBrowsing()
		return false
	}
	h.entries = append(h.entries, query)
	h.ResetBrowsing()
	return true
}

func (h *searchHistory) ResetBrowsing() {
	h.cursor = len(h.entries)
	h.draft = ""
}

func (h *searchHistory) Prev(current string) (string, bool) {
	if len(h.entries) == 0 {
		return "", false
	}
	if h.cursor == len(h.entries) {
		h.draft = current
	}
	if h.cursor > 0 {
		h.cursor--
	}
	return h.entries[h.cursor], true
}

func (h *searchHistory) Next() (string, bool) {
	if h.cursor >= len(h.entries) {
		return "", false
	}
	if h.cursor < len(h.entries)-1 {
		h.cursor++
		return h.entries[h.cursor], true
	}
	h.cursor = len(h.entries)
	return h.draft, true
}
