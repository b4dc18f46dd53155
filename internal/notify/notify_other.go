//go:build !windows

package notify

// NewNotifier 创建通知器，非 Windows 平台输出到标准错误
func NewNotifier() Notifier {
	return ConsoleNotifier{}
}
