package notify

import (
	"fmt"
	"os"
)

// Notifier 通知接口
type Notifier interface {
	Show(title, message string) error
}

// Recorder 记录通知内容，用于无界面运行和测试
type Recorder struct {
	Messages []Message
}

// Message 一条通知
type Message struct {
	Title   string
	Message string
}

// Show 记录通知
func (r *Recorder) Show(title, message string) error {
	r.Messages = append(r.Messages, Message{Title: title, Message: message})
	return nil
}

// Last 最后一条通知，没有时返回零值
func (r *Recorder) Last() Message {
	if len(r.Messages) == 0 {
		return Message{}
	}
	return r.Messages[len(r.Messages)-1]
}

// ConsoleNotifier 输出到标准错误，用于脚本回放
type ConsoleNotifier struct{}

// Show 输出通知
func (ConsoleNotifier) Show(title, message string) error {
	_, err := fmt.Fprintf(os.Stderr, "[%s] %s\n", title, message)
	return err
}
