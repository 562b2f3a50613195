package tui

import (
	"errors"
	"fmt"

	"scrolllog/internal/config"
	"scrolllog/internal/history"
	"scrolllog/internal/logger"
	"scrolllog/internal/scroll"
	"scrolllog/internal/tui/listview"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Options 控制 TUI 的初始状态。
type Options struct {
	Config config.Config
	// Sources 在程序启动后各自运行在独立 goroutine 中。
	Sources []Source
	// Copy 覆盖剪贴板写入，测试时注入。
	Copy func(string) error
	// History 持久化搜索历史；nil 时只保留在内存中。
	History *history.Store
}

// LineMsg 携带一行来自后台 source 的文本；只在 Update 中写入列表。
type LineMsg struct {
	Text string
}

// SourceDoneMsg 表示某个 source 结束。
type SourceDoneMsg struct {
	Name string
	Err  error
}

// Model 是 Bubble Tea 根模型：一个条目列表、一个滚动窗口与底部状态栏。
type Model struct {
	cfg     config.Config
	list    *scroll.BoundedEntryList
	window  *listview.Window
	palette scroll.Palette
	search  textinput.Model
	copy    func(string) error
	store   *history.Store
	log     *logger.LogEntry

	searching bool
	query     string
	queries   searchHistory
	matches   []int
	status    string
	width     int
	height    int
}

// New 根据配置构建模型。
func New(opts Options) *Model {
	cfg := opts.Config
	list := scroll.NewBoundedEntryList()
	list.SetMaxEntries(capacity(cfg.MaxEntries))
	list.SetSelectable(cfg.Selectable)

	palette := PaletteFromTheme(cfg.Theme)
	window := listview.New(list, palette)
	window.SetFollow(cfg.Follow)

	ti := textinput.New()
	ti.Prompt = "/"
	ti.Placeholder = "search"
	ti.CharLimit = 256

	copyFn := opts.Copy
	if copyFn == nil {
		copyFn = clipboard.WriteAll
	}

	m := &Model{
		cfg:     cfg,
		list:    list,
		window:  window,
		palette: palette,
		search:  ti,
		copy:    copyFn,
		store:   opts.History,
		log:     logger.Named("tui"),
		width:   80,
		height:  24,
	}
	if m.store != nil {
		queries, err := m.store.Load()
		if err != nil {
			m.log.WithError(err).Warn("failed to load search history")
		}
		m.queries.Set(queries)
	}
	m.resize(m.width, m.height)
	return m
}

func capacity(maxEntries uint) uint {
	if maxEntries == 0 {
		return scroll.Unbounded
	}
	return maxEntries
}

// PaletteFromTheme 将配置中的颜色转换为条目调色板。
func PaletteFromTheme(theme config.Theme) scroll.Palette {
	palette := scroll.DefaultPalette()
	hi := palette[scroll.AttrHighlighted]
	if theme.HighlightFG != "" {
		hi = hi.Foreground(lipgloss.Color(theme.HighlightFG))
	}
	if theme.HighlightBG != "" {
		hi = hi.Background(lipgloss.Color(theme.HighlightBG))
	}
	palette[scroll.AttrHighlighted] = hi
	if theme.DimFG != "" {
		palette[scroll.AttrDim] = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.DimFG))
	}
	return palette
}

// List 暴露底层列表，便于宿主程序预填内容。
func (m *Model) List() *scroll.BoundedEntryList {
	return m.list
}

// Window 返回滚动窗口。
func (m *Model) Window() *listview.Window {
	return m.window
}

// Status 返回状态栏上的临时消息。
func (m *Model) Status() string {
	return m.status
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case LineMsg:
		m.appendLine(msg.Text)
		return m, nil
	case SourceDoneMsg:
		if msg.Err != nil {
			m.status = fmt.Sprintf("%s: %v", msg.Name, msg.Err)
			m.log.WithError(msg.Err).WithField("source", msg.Name).Warn("source failed")
		} else {
			m.status = fmt.Sprintf("%s: done", msg.Name)
		}
		return m, nil
	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(msg)
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) appendLine(text string) {
	if m.cfg.Wrap {
		m.list.AddEntry(scroll.NewMultiLineEntry(text))
		return
	}
	m.list.AddText(text)
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "up", "k":
		m.window.MoveUp(1)
	case "down", "j":
		m.window.MoveDown(1)
	case "pgup", "ctrl+b":
		m.window.PageUp()
	case "pgdown", "ctrl+f", " ":
		m.window.PageDown()
	case "home", "g":
		m.window.Top()
	case "end", "G":
		m.window.Bottom()
	case "f":
		m.window.SetFollow(!m.window.Follow())
	case "s":
		m.window.SetSelectable(!m.list.Selectable())
	case "c":
		m.list.Clear()
		m.matches = nil
		m.status = "cleared"
	case "y":
		m.copySelected()
	case "/":
		m.searching = true
		m.search.SetValue(m.query)
		m.search.CursorEnd()
		return m, m.search.Focus()
	case "n":
		m.nextMatch(1)
	case "N":
		m.nextMatch(-1)
	}
	return m, nil
}

func (m *Model) copySelected() {
	text, err := m.list.StringAt(m.window.LogicalIndex())
	if err != nil {
		switch {
		case errors.Is(err, scroll.ErrIndexOutOfRange):
			m.status = "nothing to copy"
		case errors.Is(err, scroll.ErrTypeMismatch):
			m.status = "selected entry has no single-line text"
		default:
			m.status = err.Error()
		}
		return
	}
	if err := m.copy(text); err != nil {
		m.log.WithError(err).Warn("clipboard write failed")
		m.status = fmt.Sprintf("copy failed: %v", err)
		return
	}
	m.status = "copied"
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.search.Width = max(width-2, 1)
	// Last row is the status bar.
	m.window.Resize(width, max(height-1, 1))
}

func (m *Model) View() string {
	body := m.window.View()
	return lipgloss.JoinVertical(lipgloss.Left, body, m.statusLine())
}
