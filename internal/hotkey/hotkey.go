package hotkey

import (
	"fmt"
	"strings"
	"sync"

	"maskedit/internal/logging"

	"golang.design/x/hotkey"
	"golang.design/x/hotkey/mainthread"
)

// entry 一个已注册的热键
type entry struct {
	name     string
	hk       *hotkey.Hotkey
	callback func()
}

// Manager 热键管理器，每个动作对应一个全局热键
type Manager struct {
	mu      sync.Mutex
	entries []*entry
}

// NewManager 创建热键管理器
func NewManager() *Manager {
	return &Manager{}
}

// parseModifiers 解析修饰键，未知名称返回错误
func parseModifiers(mods []string) ([]hotkey.Modifier, error) {
	var result []hotkey.Modifier
	for _, mod := range mods {
		m, ok := modifierTable[strings.ToLower(mod)]
		if !ok {
			return nil, fmt.Errorf("当前平台不支持修饰键 %q", mod)
		}
		result = append(result, m)
	}
	return result, nil
}

// parseKey 解析主键
func parseKey(key string) (hotkey.Key, error) {
	key = strings.ToLower(key)
	switch key {
	case "enter":
		key = "return"
	case "esc":
		key = "escape"
	case "del":
		key = "delete"
	}
	k, ok := keyTable[key]
	if !ok {
		return 0, fmt.Errorf("不支持的主键 %q", key)
	}
	return k, nil
}

// Register 注册热键，name 仅用于日志
func (m *Manager) Register(name string, modifiers []string, key string, callback func()) error {
	mods, err := parseModifiers(modifiers)
	if err != nil {
		return err
	}
	k, err := parseKey(key)
	if err != nil {
		return err
	}

	hk := hotkey.New(mods, k)
	if err := hk.Register(); err != nil {
		return fmt.Errorf("无法注册热键 %s (%s+%s): %w", name, strings.Join(modifiers, "+"), key, err)
	}
	logging.Debug("注册热键: %s = %s+%s", name, strings.Join(modifiers, "+"), key)

	m.mu.Lock()
	m.entries = append(m.entries, &entry{name: name, hk: hk, callback: callback})
	m.mu.Unlock()
	return nil
}

// Unregister 注销全部热键
func (m *Manager) Unregister() error {
	m.mu.Lock()
	entries := m.entries
	m.entries = nil
	m.mu.Unlock()

	var firstErr error
	for _, e := range entries {
		if err := e.hk.Unregister(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// listen 监听单个热键（阻塞，热键注销后返回）
func listen(e *entry) {
	for range e.hk.Keydown() {
		if e.callback != nil {
			e.callback()
		}
	}
}

// ListenAsync 为每个已注册的热键启动监听
func (m *Manager) ListenAsync() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.entries {
		go listen(e)
	}
}

// Run 在主线程中运行（某些平台需要）
func Run(fn func()) {
	mainthread.Init(fn)
}
