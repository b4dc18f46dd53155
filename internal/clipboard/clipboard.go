package clipboard

import (
	"os/exec"
	"runtime"
	"strings"

	"github.com/atotto/clipboard"
)

// Clipboard 剪贴板接口
type Clipboard interface {
	SetText(text string) error
	GetText() (string, error)
}

// SystemClipboard 系统剪贴板
type SystemClipboard struct{}

// NewClipboard 创建剪贴板实例
func NewClipboard() Clipboard {
	return SystemClipboard{}
}

// SetText 设置剪贴板文本，macOS 优先使用 pbcopy
func (SystemClipboard) SetText(text string) error {
	if runtime.GOOS == "darwin" {
		cmd := exec.Command("pbcopy")
		cmd.Stdin = strings.NewReader(text)
		if err := cmd.Run(); err == nil {
			return nil
		}
	}
	return clipboard.WriteAll(text)
}

// GetText 获取剪贴板文本
func (SystemClipboard) GetText() (string, error) {
	return clipboard.ReadAll()
}

// Memory 内存剪贴板，用于无界面运行和测试
type Memory struct {
	Text string
}

// SetText 设置文本
func (m *Memory) SetText(text string) error {
	m.Text = text
	return nil
}

// GetText 获取文本
func (m *Memory) GetText() (string, error) {
	return m.Text, nil
}

// PathFromText 从剪贴板文本中取出文件路径：去掉首尾空白和引号，只取第一行
func PathFromText(text string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(text), "\n")
	line = strings.TrimSpace(line)
	line = strings.Trim(line, `"'`)
	return strings.TrimPrefix(line, "file://")
}
