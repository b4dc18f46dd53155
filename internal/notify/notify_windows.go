//go:build windows

package notify

import (
	"maskedit/internal/logging"

	"github.com/go-toast/toast"
)

// WindowsNotifier Windows 通知实现
type WindowsNotifier struct {
	appID string
}

// NewNotifier 创建通知器
func NewNotifier() Notifier {
	return &WindowsNotifier{
		appID: "MaskEdit",
	}
}

// Show 显示通知（异步，不阻塞事件循环）
func (n *WindowsNotifier) Show(title, message string) error {
	go func() {
		notification := toast.Notification{
			AppID:    n.appID,
			Title:    title,
			Message:  message,
			Duration: toast.Short,
		}
		if err := notification.Push(); err != nil {
			logging.WithError(err, "推送通知失败")
		}
	}()
	return nil
}
