package app

import (
	"maskedit/internal/edit"
	"maskedit/internal/script"
)

// Kind 动作类型
type Kind int

const (
	ActionOpen         Kind = iota // 打开图片，Path 为空时取剪贴板
	ActionSave                     // 导出，Path 为空时由存储目录生成
	ActionUndoMode                 // 进入恢复模式
	ActionZoom                     // 调整缩放
	ActionDown                     // 指针按下
	ActionMove                     // 指针拖拽
	ActionUp                       // 指针释放
	ActionAlpha                    // 修改 alpha 输入文本
	ActionPreview                  // 导出当前显示画面
	ActionOpenDir                  // 打开导出目录
	ActionReloadConfig             // 重新加载配置
	ActionQuit                     // 退出事件循环
	actionInspect                  // 测试/脚本读取会话状态
)

var kindNames = map[Kind]string{
	ActionOpen:         "open",
	ActionSave:         "save",
	ActionUndoMode:     "undo",
	ActionZoom:         "zoom",
	ActionDown:         "down",
	ActionMove:         "move",
	ActionUp:           "up",
	ActionAlpha:        "alpha",
	ActionPreview:      "preview",
	ActionOpenDir:      "open-dir",
	ActionReloadConfig: "reload-config",
	ActionQuit:         "quit",
	actionInspect:      "inspect",
}

// String 动作名称
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Action 发送到事件循环的一个动作
type Action struct {
	Kind  Kind
	Path  string
	Point edit.Point
	Zoom  float64
	Text  string

	inspect func(*edit.Session)
	done    chan error
}

// FromCommand 将脚本指令转换为动作，与快捷键、托盘共用同一处理路径
func FromCommand(cmd script.Command) Action {
	switch cmd.Op {
	case script.OpOpen:
		return Action{Kind: ActionOpen, Path: cmd.Arg}
	case script.OpSave:
		return Action{Kind: ActionSave, Path: cmd.Arg}
	case script.OpZoom:
		return Action{Kind: ActionZoom, Zoom: cmd.Zoom}
	case script.OpDown:
		return Action{Kind: ActionDown, Point: edit.Pt(cmd.X, cmd.Y)}
	case script.OpMove:
		return Action{Kind: ActionMove, Point: edit.Pt(cmd.X, cmd.Y)}
	case script.OpUp:
		return Action{Kind: ActionUp, Point: edit.Pt(cmd.X, cmd.Y)}
	case script.OpUndo:
		return Action{Kind: ActionUndoMode}
	case script.OpAlpha:
		return Action{Kind: ActionAlpha, Text: cmd.Arg}
	case script.OpPreview:
		return Action{Kind: ActionPreview, Path: cmd.Arg}
	}
	return Action{Kind: -1}
}
