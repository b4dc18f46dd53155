package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Binding 快捷键绑定
type Binding struct {
	Modifiers []string `json:"modifiers"` // ctrl, alt, shift, win(windows)/cmd(mac)
	Key       string   `json:"key"`       // 主键，如 s, a, 1, f1 等
}

// String 快捷键的字符串表示，如 ctrl+o
func (b Binding) String() string {
	parts := append([]string{}, b.Modifiers...)
	return strings.Join(append(parts, b.Key), "+")
}

// Hotkeys 快捷键配置，与菜单动作一一对应
type Hotkeys struct {
	Open Binding `json:"open"`
	Save Binding `json:"save"`
	Undo Binding `json:"undo"` // 进入恢复模式
}

// Storage 导出配置
type Storage struct {
	Directory string `json:"directory"` // 导出目录
	Format    string `json:"format"`    // 图片格式: png, jpg
	KeepDays  int    `json:"keepDays"`  // 启动时清理超过天数的导出文件，0 表示不清理
}

// Editor 编辑器配置
type Editor struct {
	DefaultAlpha string `json:"defaultAlpha"` // alpha 输入框初始文本
}

// Behavior 行为配置
type Behavior struct {
	ShowNotification bool `json:"showNotification"` // 显示通知
	WatchConfig      bool `json:"watchConfig"`      // 配置文件修改后自动重新加载
}

// Log 日志配置
type Log struct {
	Directory string `json:"directory"`
	Level     string `json:"level"` // debug, info, warn, error
}

// Config 主配置结构
type Config struct {
	Hotkeys  Hotkeys  `json:"hotkeys"`
	Storage  Storage  `json:"storage"`
	Editor   Editor   `json:"editor"`
	Behavior Behavior `json:"behavior"`
	Log      Log      `json:"log"`

	path string
}

// DefaultConfig 返回默认配置
func DefaultConfig() *Config {
	homeDir, _ := os.UserHomeDir()

	return &Config{
		Hotkeys: Hotkeys{
			Open: Binding{Modifiers: []string{"ctrl"}, Key: "o"},
			Save: Binding{Modifiers: []string{"ctrl"}, Key: "s"},
			Undo: Binding{Modifiers: []string{"ctrl"}, Key: "z"},
		},
		Storage: Storage{
			Directory: filepath.Join(homeDir, "Pictures", "maskedit"),
			Format:    "png",
		},
		Editor: Editor{
			DefaultAlpha: "50",
		},
		Behavior: Behavior{
			ShowNotification: true,
			WatchConfig:      true,
		},
		Log: Log{
			Directory: filepath.Join(configDir(), "logs"),
			Level:     "info",
		},
	}
}

// configDir 配置目录
func configDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		homeDir, _ := os.UserHomeDir()
		dir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(dir, "maskedit")
}

// GetConfigPath 获取配置文件路径
func GetConfigPath() string {
	return filepath.Join(configDir(), "config.json")
}

// Load 从默认路径加载配置
func Load() (*Config, error) {
	return LoadFrom(GetConfigPath())
}

// LoadFrom 从指定路径加载配置，文件不存在时写入默认配置
func LoadFrom(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		cfg := DefaultConfig()
		cfg.path = configPath
		_ = cfg.Save()
		return cfg, nil
	}

	cfg := DefaultConfig()
	cfg.path = configPath

	data, err := os.ReadFile(configPath)
	if err != nil {
		return cfg, err
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return DefaultConfig().withPath(configPath), err
	}

	// 验证并修正配置
	cfg.Validate()

	return cfg, nil
}

func (c *Config) withPath(p string) *Config {
	c.path = p
	return c
}

// Path 配置文件路径
func (c *Config) Path() string {
	if c.path == "" {
		return GetConfigPath()
	}
	return c.path
}

// Validate 验证并修正配置值
func (c *Config) Validate() {
	defaults := DefaultConfig()

	// 验证图片格式
	format := strings.ToLower(c.Storage.Format)
	switch format {
	case "png", "jpg":
		c.Storage.Format = format
	case "jpeg":
		c.Storage.Format = "jpg"
	default:
		c.Storage.Format = defaults.Storage.Format
	}

	// 防止路径遍历
	if c.Storage.Directory == "" || strings.Contains(c.Storage.Directory, "..") {
		c.Storage.Directory = defaults.Storage.Directory
	}
	if c.Storage.KeepDays < 0 {
		c.Storage.KeepDays = 0
	}

	// alpha 初始值必须是整数文本，具体范围在导出时校验
	if _, err := strconv.Atoi(strings.TrimSpace(c.Editor.DefaultAlpha)); err != nil {
		c.Editor.DefaultAlpha = defaults.Editor.DefaultAlpha
	}

	c.Hotkeys.Open = validBinding(c.Hotkeys.Open, defaults.Hotkeys.Open)
	c.Hotkeys.Save = validBinding(c.Hotkeys.Save, defaults.Hotkeys.Save)
	c.Hotkeys.Undo = validBinding(c.Hotkeys.Undo, defaults.Hotkeys.Undo)

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
		c.Log.Level = strings.ToLower(c.Log.Level)
	default:
		c.Log.Level = defaults.Log.Level
	}
	if c.Log.Directory == "" {
		c.Log.Directory = defaults.Log.Directory
	}
}

// validModifiers 支持的修饰键
var validModifiers = map[string]bool{"ctrl": true, "alt": true, "shift": true, "win": true, "cmd": true, "control": true, "option": true, "super": true, "command": true}

// validBinding 验证快捷键，主键为空或没有合法修饰键时使用默认值
func validBinding(b, def Binding) Binding {
	if b.Key == "" {
		return def
	}
	mods := []string{}
	for _, mod := range b.Modifiers {
		if validModifiers[strings.ToLower(mod)] {
			mods = append(mods, strings.ToLower(mod))
		}
	}
	if len(mods) == 0 {
		return def
	}
	return Binding{Modifiers: mods, Key: strings.ToLower(b.Key)}
}

// Save 保存配置
func (c *Config) Save() error {
	configPath := c.Path()

	// 确保目录存在
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "    ")
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}

// SetBinding 设置指定动作的快捷键并保存
func (c *Config) SetBinding(action string, b Binding) error {
	switch strings.ToLower(action) {
	case "open":
		c.Hotkeys.Open = b
	case "save":
		c.Hotkeys.Save = b
	case "undo":
		c.Hotkeys.Undo = b
	default:
		return &UnknownActionError{Action: action}
	}
	return c.Save()
}

// UnknownActionError 未知的快捷键动作
type UnknownActionError struct {
	Action string
}

func (e *UnknownActionError) Error() string {
	return "未知的动作: " + e.Action + "（可选 open, save, undo）"
}

// ParseBinding 解析快捷键字符串，如 "ctrl+alt+s"
func ParseBinding(s string) (Binding, bool) {
	parts := []string{}
	for _, p := range strings.Split(s, "+") {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, strings.ToLower(p))
		}
	}
	if len(parts) < 2 {
		return Binding{}, false
	}
	return Binding{Modifiers: parts[:len(parts)-1], Key: parts[len(parts)-1]}, true
}

// EnsureStorageDir 确保导出目录存在
func (c *Config) EnsureStorageDir() error {
	// 展开 ~
	dir := c.Storage.Directory
	if len(dir) > 0 && dir[0] == '~' {
		homeDir, _ := os.UserHomeDir()
		dir = filepath.Join(homeDir, dir[1:])
	}
	c.Storage.Directory = dir

	return os.MkdirAll(dir, 0755)
}
