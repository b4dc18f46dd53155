package imageio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Storage 导出目录管理
type Storage struct {
	directory string
	format    string
	now       func() time.Time
}

// NewStorage 创建存储管理器
func NewStorage(directory, format string) *Storage {
	format = strings.ToLower(format)
	if format == "jpeg" {
		format = "jpg"
	}
	if format != "jpg" {
		format = "png"
	}
	return &Storage{
		directory: expandHome(directory),
		format:    format,
		now:       time.Now,
	}
}

// expandHome 展开 ~
func expandHome(dir string) string {
	if len(dir) > 0 && dir[0] == '~' {
		homeDir, _ := os.UserHomeDir()
		dir = filepath.Join(homeDir, dir[1:])
	}
	return dir
}

// SetDirectory 设置导出目录
func (s *Storage) SetDirectory(dir string) error {
	s.directory = expandHome(dir)
	return os.MkdirAll(s.directory, 0755)
}

// Directory 获取导出目录
func (s *Storage) Directory() string {
	return s.directory
}

// Format 获取导出格式
func (s *Storage) Format() string {
	return s.format
}

// NextPath 生成下一个导出文件路径，同一秒内重名时追加序号
func (s *Storage) NextPath() string {
	timestamp := s.now().Format("20060102_150405")
	name := fmt.Sprintf("masked_%s.%s", timestamp, s.format)
	path := filepath.Join(s.directory, name)

	for i := 1; ; i++ {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return path
		}
		name = fmt.Sprintf("masked_%s_%d.%s", timestamp, i, s.format)
		path = filepath.Join(s.directory, name)
	}
}

// Cleanup 清理导出目录中的旧文件
func (s *Storage) Cleanup(olderThan time.Duration) (int, error) {
	entries, err := os.ReadDir(s.directory)
	if err != nil {
		return 0, err
	}

	cutoff := s.now().Add(-olderThan)
	removed := 0

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), "masked_") {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}

		if info.ModTime().Before(cutoff) {
			if os.Remove(filepath.Join(s.directory, entry.Name())) == nil {
				removed++
			}
		}
	}

	return removed, nil
}
