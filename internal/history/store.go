// Package history persists search queries as JSON lines so the search prompt
// can recall them across runs.
package history

import (
	"bufio"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// DefaultLimit 是 Load 默认返回的最大条数。
const DefaultLimit = 200

type Entry struct {
	Query string    `json:"query"`
	TS    time.Time `json:"ts"`
}

type Store struct {
	Path string
	// Limit caps Load results to the newest entries; <= 0 uses DefaultLimit.
	Limit int
}

func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".scrolllog", "search_history.jsonl"), nil
}

func NewDefault() (*Store, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return &Store{Path: path}, nil
}

func (s *Store) ensureDir() error {
	if s == nil || strings.TrimSpace(s.Path) == "" {
		return errors.New("history store path is empty")
	}
	return os.MkdirAll(filepath.Dir(s.Path), 0o755)
}

// Append 追加一条查询；空白查询被忽略。
func (s *Store) Append(query string) error {
	if s == nil {
		return errors.New("history store is nil")
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}
	if err := s.ensureDir(); err != nil {
		return err
	}
	f, err := os.OpenFile(s.Path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	data, err := json.Marshal(Entry{Query: query, TS: time.Now()})
	if err != nil {
		return err
	}
	_, err = f.Write(append(data, '\n'))
	return err
}

// Load 按时间顺序返回最近的查询，跳过损坏的行并合并相邻重复项。
func (s *Store) Load() ([]string, error) {
	if s == nil {
		return nil, errors.New("history store is nil")
	}
	if strings.TrimSpace(s.Path) == "" {
		return nil, errors.New("history store path is empty")
	}
	f, err := os.Open(s.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var out []string
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var e Entry
		if err := json.Unmarshal([]byte(line), &e); err != nil {
			continue
		}
		q := strings.TrimSpace(e.Query)
		if q == "" || (len(out) > 0 && out[len(out)-1] == q) {
			continue
		}
		out = append(out, q)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	limit := s.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	if len(out) > limit {
		out = out[len(out)-limit:]
	}
	return out, nil
}
