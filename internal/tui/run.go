package tui

import (
	"context"
	"errors"
	"io"

	"scrolllog/internal/source"

	tea "github.com/charmbracelet/bubbletea"
)

// Source 是一个会阻塞直到结束的行来源。
type Source struct {
	Name string
	Run  func(ctx context.Context, sink source.Sink) error
}

// RunOptions 是 Run 额外需要的终端参数。
type RunOptions struct {
	// Input 替代 stdin 作为键盘输入；stdin 被用作数据源时传入 /dev/tty。
	Input io.Reader
}

// Run 封装 Bubble Tea 入口：启动 sources，并把每一行通过 Program.Send
// 转交给 UI goroutine，列表只在 Update 中被修改。
func Run(ctx context.Context, opts Options, runOpts RunOptions) error {
	srcCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	programOptions := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if runOpts.Input != nil {
		programOptions = append(programOptions, tea.WithInput(runOpts.Input))
	}
	program := tea.NewProgram(New(opts), programOptions...)

	// Sources blocked on a read (stdin) are abandoned on exit, not joined.
	for _, src := range opts.Sources {
		go func(src Source) {
			err := src.Run(srcCtx, func(line string) {
				program.Send(LineMsg{Text: line})
			})
			if srcCtx.Err() != nil {
				return
			}
			program.Send(SourceDoneMsg{Name: src.Name, Err: err})
		}(src)
	}

	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
