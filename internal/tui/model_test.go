package tui

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"scrolllog/internal/config"
	"scrolllog/internal/history"
	"scrolllog/internal/scroll"

	tea "github.com/charmbracelet/bubbletea"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel(t *testing.T, mutate func(*config.Config)) (*Model, *[]string) {
	t.Helper()
	cfg := config.Default()
	if mutate != nil {
		mutate(&cfg)
	}
	copied := []string{}
	m := New(Options{Config: cfg, Copy: func(s string) error {
		copied = append(copied, s)
		return nil
	}})
	m.Update(tea.WindowSizeMsg{Width: 40, Height: 6})
	return m, &copied
}

func feed(m *Model, lines ...string) {
	for _, l := range lines {
		m.Update(LineMsg{Text: l})
	}
}

func TestLineMsgAppendsAndFollows(t *testing.T) {
	m, _ := newTestModel(t, nil)
	feed(m, "one", "two", "three")
	if m.List().EntryCount() != 3 {
		t.Fatalf("EntryCount = %d, want 3", m.List().EntryCount())
	}
	if m.Window().LogicalIndex() != 2 {
		t.Fatalf("LogicalIndex = %d, want 2", m.Window().LogicalIndex())
	}
	if !strings.Contains(m.View(), "three") {
		t.Fatalf("view should show newest line")
	}
}

func TestMaxEntriesFromConfig(t *testing.T) {
	m, _ := newTestModel(t, func(c *config.Config) { c.MaxEntries = 3 })
	feed(m, "1", "2", "3", "4", "5")
	if m.List().EntryCount() != 3 {
		t.Fatalf("EntryCount = %d, want 3", m.List().EntryCount())
	}
	first, err := m.List().StringAt(0)
	if err != nil || first != "3" {
		t.Fatalf("oldest surviving entry = %q (%v), want 3", first, err)
	}
	if !strings.Contains(m.View(), "3/3") {
		t.Fatalf("status bar should show count/max: %q", m.View())
	}
}

func TestZeroMaxEntriesIsUnbounded(t *testing.T) {
	m, _ := newTestModel(t, func(c *config.Config) { c.MaxEntries = 0 })
	if m.List().MaxEntries() != scroll.Unbounded {
		t.Fatalf("MaxEntries = %d, want unbounded", m.List().MaxEntries())
	}
}

func TestWindowSizeLeavesRowForStatus(t *testing.T) {
	m, _ := newTestModel(t, nil)
	m.Update(tea.WindowSizeMsg{Width: 50, Height: 12})
	w, h := m.Window().Size()
	if w != 50 || h != 11 {
		t.Fatalf("window size = %dx%d, want 50x11", w, h)
	}
	if m.List().Width() != 50 {
		t.Fatalf("list width = %d, want 50", m.List().Width())
	}
}

func TestNavigationKeys(t *testing.T) {
	m, _ := newTestModel(t, nil)
	feed(m, "a", "b", "c", "d")
	m.Update(keyRunes("k"))
	m.Update(keyRunes("k"))
	if m.Window().LogicalIndex() != 1 || m.Window().Follow() {
		t.Fatalf("after k k: idx=%d follow=%v", m.Window().LogicalIndex(), m.Window().Follow())
	}
	m.Update(keyRunes("g"))
	if m.Window().LogicalIndex() != 0 {
		t.Fatalf("g should jump to top")
	}
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if m.Window().LogicalIndex() != 1 {
		t.Fatalf("down should move one entry")
	}
	m.Update(keyRunes("G"))
	if m.Window().LogicalIndex() != 3 || !m.Window().Follow() {
		t.Fatalf("G should jump to bottom and follow")
	}
	m.Update(keyRunes("f"))
	if m.Window().Follow() {
		t.Fatalf("f should toggle follow off")
	}
}

func TestToggleSelectable(t *testing.T) {
	m, _ := newTestModel(t, nil)
	feed(m, "a")
	m.Update(keyRunes("s"))
	if m.List().Selectable() {
		t.Fatalf("s should disable selection")
	}
	m.Update(keyRunes("s"))
	if !m.List().Selectable() {
		t.Fatalf("s should re-enable selection")
	}
}

func TestClearKey(t *testing.T) {
	m, _ := newTestModel(t, nil)
	feed(m, "a", "b")
	m.Update(keyRunes("c"))
	if m.List().EntryCount() != 0 {
		t.Fatalf("EntryCount = %d after clear", m.List().EntryCount())
	}
	if m.Status() != "cleared" {
		t.Fatalf("status = %q", m.Status())
	}
}

func TestCopySelected(t *testing.T) {
	m, copied := newTestModel(t, nil)
	m.Update(keyRunes("y"))
	if m.Status() != "nothing to copy" {
		t.Fatalf("status on empty list = %q", m.Status())
	}
	feed(m, "first", "second")
	m.Update(keyRunes("k"))
	m.Update(keyRunes("y"))
	if len(*copied) != 1 || (*copied)[0] != "first" {
		t.Fatalf("copied = %v, want [first]", *copied)
	}
}

func TestCopyReportsClipboardError(t *testing.T) {
	cfg := config.Default()
	m := New(Options{Config: cfg, Copy: func(string) error { return errors.New("no display") }})
	feed(m, "x")
	m.Update(keyRunes("y"))
	if !strings.Contains(m.Status(), "no display") {
		t.Fatalf("status = %q", m.Status())
	}
}

func TestWrapModeUsesMultiLineEntries(t *testing.T) {
	m, copied := newTestModel(t, func(c *config.Config) { c.Wrap = true })
	feed(m, strings.Repeat("word ", 20))
	lines := m.Window().Lines()
	if len(lines) < 2 {
		t.Fatalf("long line should wrap, got %d rows", len(lines))
	}
	m.Update(keyRunes("y"))
	if len(*copied) != 0 || m.Status() != "selected entry has no single-line text" {
		t.Fatalf("copy of wrapped entry: copied=%v status=%q", *copied, m.Status())
	}
}

func TestSearchSelectsMatchesAndCycles(t *testing.T) {
	m, _ := newTestModel(t, nil)
	feed(m, "alpha", "beta", "gamma", "beta two", "delta")

	m.Update(keyRunes("/"))
	m.Update(keyRunes("beta"))
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	first := m.Window().LogicalIndex()
	if first != 1 && first != 3 {
		t.Fatalf("search selected %d, want 1 or 3", first)
	}
	if !strings.Contains(m.Status(), "2 matches") {
		t.Fatalf("status = %q", m.Status())
	}
	m.Update(keyRunes("n"))
	second := m.Window().LogicalIndex()
	if second == first || (second != 1 && second != 3) {
		t.Fatalf("n moved from %d to %d", first, second)
	}
	m.Update(keyRunes("N"))
	if m.Window().LogicalIndex() != first {
		t.Fatalf("N should return to %d, got %d", first, m.Window().LogicalIndex())
	}
}

func TestSearchEscapeKeepsSelection(t *testing.T) {
	m, _ := newTestModel(t, nil)
	feed(m, "alpha", "beta")
	m.Update(keyRunes("/"))
	m.Update(keyRunes("alp"))
	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.Window().LogicalIndex() != 1 {
		t.Fatalf("esc should not move selection")
	}
}

func TestSearchNoMatch(t *testing.T) {
	m, _ := newTestModel(t, nil)
	feed(m, "alpha")
	m.Update(keyRunes("/"))
	m.Update(keyRunes("zzz"))
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !strings.Contains(m.Status(), "no match") {
		t.Fatalf("status = %q", m.Status())
	}
}

func searchFor(m *Model, query string) {
	m.Update(keyRunes("/"))
	m.Update(keyRunes(query))
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
}

func selectedText(t *testing.T, m *Model) string {
	t.Helper()
	text, err := m.List().StringAt(m.Window().LogicalIndex())
	if err != nil {
		t.Fatalf("StringAt(%d): %v", m.Window().LogicalIndex(), err)
	}
	return text
}

func TestNextMatchFollowsShiftedEntryAfterEviction(t *testing.T) {
	m, _ := newTestModel(t, func(c *config.Config) {
		c.MaxEntries = 3
		c.Follow = false
	})
	feed(m, "alpha", "target", "beta")
	searchFor(m, "target")
	if got := selectedText(t, m); got != "target" {
		t.Fatalf("search selected %q", got)
	}

	// alpha is evicted; target moves from index 1 to 0.
	feed(m, "gamma")
	m.Update(keyRunes("n"))
	if got := selectedText(t, m); got != "target" {
		t.Fatalf("n selected %q, want target", got)
	}
	if m.Window().LogicalIndex() != 0 {
		t.Fatalf("LogicalIndex = %d, want 0", m.Window().LogicalIndex())
	}
}

func TestNextMatchAfterMatchEvicted(t *testing.T) {
	m, _ := newTestModel(t, func(c *config.Config) {
		c.MaxEntries = 3
		c.Follow = false
	})
	feed(m, "alpha", "target", "beta")
	searchFor(m, "target")

	feed(m, "gamma", "delta")
	before := m.Window().LogicalIndex()
	m.Update(keyRunes("n"))
	if m.Window().LogicalIndex() != before {
		t.Fatalf("n moved selection to %q with no match left", selectedText(t, m))
	}
	if !strings.Contains(m.Status(), "no match") {
		t.Fatalf("status = %q", m.Status())
	}
	if len(m.matches) != 0 {
		t.Fatalf("matches = %v, want none", m.matches)
	}
}

func TestSourceDoneMsg(t *testing.T) {
	m, _ := newTestModel(t, nil)
	m.Update(SourceDoneMsg{Name: "stdin"})
	if m.Status() != "stdin: done" {
		t.Fatalf("status = %q", m.Status())
	}
	m.Update(SourceDoneMsg{Name: "cmd", Err: errors.New("exit status 1")})
	if m.Status() != "cmd: exit status 1" {
		t.Fatalf("status = %q", m.Status())
	}
}

func TestQuitKey(t *testing.T) {
	m, _ := newTestModel(t, nil)
	_, cmd := m.Update(keyRunes("q"))
	if cmd == nil {
		t.Fatalf("q should return a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("q should quit")
	}
}

func TestPaletteFromTheme(t *testing.T) {
	p := PaletteFromTheme(config.Theme{HighlightBG: "#000000"})
	if got := p[scroll.AttrHighlighted].GetBackground(); got == nil {
		t.Fatalf("highlight background not set")
	}
}

func TestSearchHistoryPersistsAndRecalls(t *testing.T) {
	store := &history.Store{Path: filepath.Join(t.TempDir(), "search_history.jsonl")}
	m := New(Options{Config: config.Default(), History: store, Copy: func(string) error { return nil }})
	feed(m, "alpha", "beta")

	m.Update(keyRunes("/"))
	m.Update(keyRunes("alp"))
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	saved, err := store.Load()
	if err != nil || len(saved) != 1 || saved[0] != "alp" {
		t.Fatalf("saved history = %v (%v)", saved, err)
	}

	reloaded := New(Options{Config: config.Default(), History: store, Copy: func(string) error { return nil }})
	reloaded.Update(keyRunes("/"))
	reloaded.Update(tea.KeyMsg{Type: tea.KeyUp})
	reloaded.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if reloaded.query != "alp" {
		t.Fatalf("recalled query = %q, want alp", reloaded.query)
	}
}
