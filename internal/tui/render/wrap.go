package render

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// WrapText 按显示宽度做词级别换行，宽字符按两列计算。
func WrapText(text string, width int) []string {
	if width <= 0 {
		return strings.Split(text, "\n")
	}
	lines := []string{}
	for _, raw := range strings.Split(text, "\n") {
		if raw == "" {
			lines = append(lines, "")
			continue
		}
		lines = append(lines, wrapLine(raw, width)...)
	}
	if len(lines) == 0 {
		lines = append(lines, "")
	}
	return lines
}

// Truncate 将单行截断到 width 列，超出时以省略号结尾。
func Truncate(line string, width int) string {
	if width <= 0 || runewidth.StringWidth(line) <= width {
		return line
	}
	if width == 1 {
		return runewidth.Truncate(line, width, "")
	}
	return runewidth.Truncate(line, width, "…")
}

// StringWidth 返回字符串占用的终端列数。
func StringWidth(s string) int {
	return runewidth.StringWidth(s)
}

func wrapLine(line string, width int) []string {
	if width <= 0 || runewidth.StringWidth(line) <= width {
		return []string{line}
	}
	out := []string{}
	current := ""
	for _, word := range strings.Fields(line) {
		ww := runewidth.StringWidth(word)
		if current == "" {
			if ww > width {
				out = append(out, breakLongWord(word, width)...)
				continue
			}
			current = word
			continue
		}
		if runewidth.StringWidth(current)+1+ww <= width {
			current += " " + word
			continue
		}
		out = append(out, current)
		if ww > width {
			out = append(out, breakLongWord(word, width)...)
			current = ""
			continue
		}
		current = word
	}
	if current != "" {
		out = append(out, current)
	}
	if len(out) == 0 {
		return []string{line}
	}
	return out
}

func breakLongWord(word string, width int) []string {
	if width <= 0 {
		return []string{word}
	}
	out := []string{}
	current := []rune{}
	w := 0
	for _, r := range word {
		rw := runewidth.RuneWidth(r)
		if w+rw > width && len(current) > 0 {
			out = append(out, string(current))
			current = current[:0]
			w = 0
		}
		current = append(current, r)
		w += rw
	}
	if len(current) > 0 {
		out = append(out, string(current))
	}
	return out
}
