package tray

import (
	"github.com/getlantern/systray"
)

// Item 菜单项
type Item int

const (
	ItemOpen    Item = iota // 打开剪贴板中的图片路径
	ItemSave                // 导出
	ItemUndo                // 进入恢复模式
	ItemOpenDir             // 打开导出目录
	ItemQuit                // 退出
)

// Tray 系统托盘
type Tray struct {
	handlers map[Item]func()
	labels   map[Item]string
}

// NewTray 创建系统托盘
func NewTray() *Tray {
	return &Tray{
		handlers: make(map[Item]func()),
		labels: map[Item]string{
			ItemOpen:    "打开",
			ItemSave:    "保存",
			ItemUndo:    "恢复模式",
			ItemOpenDir: "打开导出目录",
			ItemQuit:    "退出",
		},
	}
}

// SetShortcut 在菜单文字后显示快捷键
func (t *Tray) SetShortcut(item Item, text string) {
	if text != "" {
		t.labels[item] = t.labels[item] + " (" + text + ")"
	}
}

// Handle 设置菜单项回调
func (t *Tray) Handle(item Item, fn func()) {
	t.handlers[item] = fn
}

// Run 运行系统托盘（阻塞）
func (t *Tray) Run() {
	systray.Run(t.ready, t.exit)
}

func (t *Tray) ready() {
	systray.SetIcon(getIcon())
	systray.SetTitle("MaskEdit")
	systray.SetTooltip("MaskEdit - 图片遮罩与 alpha 导出")

	mOpen := systray.AddMenuItem(t.labels[ItemOpen], "打开剪贴板中的图片路径")
	mSave := systray.AddMenuItem(t.labels[ItemSave], "按 alpha 导出遮罩区域")
	mUndo := systray.AddMenuItem(t.labels[ItemUndo], "下一次拖拽从原图恢复")
	systray.AddSeparator()
	mOpenDir := systray.AddMenuItem(t.labels[ItemOpenDir], "打开导出文件所在目录")
	systray.AddSeparator()
	mQuit := systray.AddMenuItem(t.labels[ItemQuit], "退出程序")

	go func() {
		for {
			select {
			case <-mOpen.ClickedCh:
				t.fire(ItemOpen)
			case <-mSave.ClickedCh:
				t.fire(ItemSave)
			case <-mUndo.ClickedCh:
				t.fire(ItemUndo)
			case <-mOpenDir.ClickedCh:
				t.fire(ItemOpenDir)
			case <-mQuit.ClickedCh:
				t.fire(ItemQuit)
				systray.Quit()
				return
			}
		}
	}()
}

func (t *Tray) fire(item Item) {
	if fn := t.handlers[item]; fn != nil {
		fn()
	}
}

func (t *Tray) exit() {}
