package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// FileWatermarkStore keeps the last-sync timestamp as a single RFC
// 3339 line in a text file. A missing or unparsable file means
// "never synced".
type FileWatermarkStore struct {
	path string
}

func NewFileWatermarkStore(path string) *FileWatermarkStore {
	return &FileWatermarkStore{path: path}
}

func (s *FileWatermarkStore) Read() (time.Time, bool) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return time.Time{}, false
	}
	text := strings.TrimSpace(string(data))
	if text == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, text)
	if err != nil {
		return time.Time{}, false
	}
	return t.UTC(), true
}

func (s *FileWatermarkStore) Write(t time.Time) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create watermark dir: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(t.UTC().Format(time.RFC3339)), 0o644); err != nil {
		return fmt.Errorf("write watermark: %w", err)
	}
	return nil
}
