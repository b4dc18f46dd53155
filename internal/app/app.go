package app

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"time"

	"maskedit/internal/clipboard"
	"maskedit/internal/config"
	"maskedit/internal/edit"
	"maskedit/internal/imageio"
	"maskedit/internal/logging"
	"maskedit/internal/notify"
	"maskedit/internal/script"
)

// 提示用户的文本
const (
	titleWarning     = "提示"
	titleSaved       = "导出完成"
	msgCannotRead    = "无法打开/读取文件：请检查文件路径或完整性。"
	msgInvalidAlpha  = "alpha 字段请输入 0-255 的整数。"
	msgNoPathInClip  = "剪贴板中没有图片路径。"
	msgNoImageLoaded = "请先打开一张图片。"
	msgJPEGNoAlpha   = "JPEG 不支持透明通道，遮罩的 alpha 未保存，请导出为 PNG。"
)

// ErrNoPath 剪贴板中没有可用路径
var ErrNoPath = errors.New("没有可用的图片路径")

// Options 构造 App 的依赖
type Options struct {
	Config    *config.Config
	Notifier  notify.Notifier
	Clipboard clipboard.Clipboard
	Storage   *imageio.Storage

	// Reload 重新加载配置，默认从 Config.Path() 读取
	Reload func() (*config.Config, error)
}

// App 事件循环：会话只在 Run 所在的 goroutine 中访问
type App struct {
	session *edit.Session
	cfg     *config.Config
	notify  notify.Notifier
	clip    clipboard.Clipboard
	store   *imageio.Storage
	reload  func() (*config.Config, error)

	actions chan Action
	stopped chan struct{}
}

// New 创建 App
func New(opts Options) *App {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	store := opts.Storage
	if store == nil {
		store = imageio.NewStorage(cfg.Storage.Directory, cfg.Storage.Format)
	}
	reload := opts.Reload
	if reload == nil {
		reload = func() (*config.Config, error) { return config.LoadFrom(cfg.Path()) }
	}
	n := opts.Notifier
	if n == nil {
		n = &notify.Recorder{}
	}
	clip := opts.Clipboard
	if clip == nil {
		clip = &clipboard.Memory{}
	}

	session := edit.NewSession()
	session.SetAlphaText(cfg.Editor.DefaultAlpha)

	return &App{
		session: session,
		cfg:     cfg,
		notify:  n,
		clip:    clip,
		store:   store,
		reload:  reload,
		actions: make(chan Action, 64),
		stopped: make(chan struct{}),
	}
}

// Run 处理动作直到收到 ActionQuit 或 ctx 取消
func (a *App) Run(ctx context.Context) error {
	defer close(a.stopped)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case act := <-a.actions:
			err := a.handle(act)
			if act.done != nil {
				act.done <- err
			}
			if act.Kind == ActionQuit {
				return nil
			}
		}
	}
}

// Post 异步投递动作（热键、托盘回调使用），循环已停止时丢弃
func (a *App) Post(act Action) {
	select {
	case a.actions <- act:
	case <-a.stopped:
		logging.Debug("事件循环已停止，丢弃动作 %s", act.Kind)
	}
}

// Do 投递动作并等待处理结果
func (a *App) Do(ctx context.Context, act Action) error {
	act.done = make(chan error, 1)
	select {
	case a.actions <- act:
	case <-a.stopped:
		return fmt.Errorf("事件循环已停止")
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case err := <-act.done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Inspect 在事件循环中读取会话状态
func (a *App) Inspect(ctx context.Context, fn func(*edit.Session)) error {
	return a.Do(ctx, Action{Kind: actionInspect, inspect: fn})
}

// RunScript 依次回放脚本指令
// 需要提示用户的错误（无法读取、alpha 无效等）已通过通知展示，回放继续；
// 其他错误终止回放
func (a *App) RunScript(ctx context.Context, cmds []script.Command) error {
	for _, cmd := range cmds {
		err := a.Do(ctx, FromCommand(cmd))
		if err == nil || isWarning(err) {
			continue
		}
		return fmt.Errorf("第 %d 行 %s: %w", cmd.Line, cmd.Op, err)
	}
	return nil
}

func isWarning(err error) bool {
	return edit.IsUserError(err) || errors.Is(err, edit.ErrNoImage) || errors.Is(err, ErrNoPath)
}

func (a *App) handle(act Action) error {
	s := a.session

	switch act.Kind {
	case ActionOpen:
		return a.open(act.Path)
	case ActionSave:
		return a.save(act.Path)
	case ActionUndoMode:
		if s.EnterUndoMode() {
			logging.Info("进入恢复模式")
		}
	case ActionZoom:
		if s.Dragging() {
			logging.Debug("拖拽中调整缩放，本次选区仍按按下时的缩放映射")
		}
		s.SetZoom(act.Zoom)
	case ActionDown:
		if s.PointerDown(act.Point) {
			logging.Debug("开始选区: %v (zoom %.0f)", act.Point, s.Zoom())
		}
	case ActionMove:
		s.PointerMove(act.Point)
	case ActionUp:
		mode := s.Mode()
		if r, ok := s.PointerUp(act.Point); ok {
			logging.Info("%s 选区 (%d,%d)-(%d,%d)", mode, r.X0, r.Y0, r.X1, r.Y1)
		}
	case ActionAlpha:
		s.SetAlphaText(act.Text)
	case ActionPreview:
		return a.preview(act.Path)
	case ActionOpenDir:
		return openDir(a.store.Directory())
	case ActionReloadConfig:
		return a.reloadConfig()
	case ActionQuit:
		logging.Info("退出")
	case actionInspect:
		if act.inspect != nil {
			act.inspect(s)
		}
	default:
		return fmt.Errorf("未知动作: %d", act.Kind)
	}
	return nil
}

func (a *App) open(path string) error {
	if path == "" {
		text, err := a.clip.GetText()
		if err != nil {
			logging.WithError(err, "读取剪贴板失败")
		}
		path = clipboard.PathFromText(text)
	}
	if path == "" {
		a.warn(msgNoPathInClip)
		return ErrNoPath
	}

	if err := a.session.Load(path); err != nil {
		logging.WithError(err, "打开 "+path)
		a.warn(msgCannotRead)
		return err
	}

	size := a.session.Size()
	logging.Info("已打开 %s (%dx%d, alpha: %v, %s)", path, size.Cols, size.Rows, size.HasAlpha(), size.Mode)
	return nil
}

func (a *App) save(path string) error {
	if !a.session.Loaded() {
		a.warn(msgNoImageLoaded)
		return edit.ErrNoImage
	}
	if path == "" {
		path = a.store.NextPath()
	}

	marked, err := a.session.Export(path)
	switch {
	case errors.Is(err, edit.ErrInvalidAlphaInput):
		logging.WithError(err, "导出")
		a.warn(msgInvalidAlpha)
		return err
	case err != nil:
		logging.WithError(err, "导出 "+path)
		a.warn(err.Error())
		return err
	}

	logging.Info("已导出 %s (%d 个遮罩像素, alpha %s)", path, marked, a.session.AlphaText())
	if imageio.FormatOf(path) == "jpg" {
		logging.Warn("%s 为 JPEG，alpha 通道已丢弃", path)
		a.warn(msgJPEGNoAlpha)
	}

	if err := a.clip.SetText(path); err != nil {
		logging.WithError(err, "复制路径到剪贴板失败")
	}
	if a.cfg.Behavior.ShowNotification {
		_ = a.notify.Show(titleSaved, path)
	}
	return nil
}

func (a *App) preview(path string) error {
	img := a.session.Preview()
	if img == nil {
		return edit.ErrNoImage
	}
	if err := imageio.Write(path, img, imageio.DefaultQuality); err != nil {
		return fmt.Errorf("保存预览失败: %w", err)
	}
	return nil
}

func (a *App) reloadConfig() error {
	cfg, err := a.reload()
	if err != nil {
		logging.WithError(err, "重新加载配置")
		return fmt.Errorf("重新加载配置失败: %w", err)
	}

	a.cfg = cfg
	a.store = imageio.NewStorage(cfg.Storage.Directory, cfg.Storage.Format)
	logging.SetLevel(logging.ParseLevel(cfg.Log.Level))
	logging.Info("配置已重新加载")
	return nil
}

func (a *App) warn(msg string) {
	if err := a.notify.Show(titleWarning, msg); err != nil {
		logging.WithError(err, "显示通知失败")
	}
}

// openDir 用系统文件管理器打开目录
func openDir(dir string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("explorer.exe", dir)
	case "darwin":
		cmd = exec.Command("open", dir)
	default:
		cmd = exec.Command("xdg-open", dir)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("打开目录失败: %w", err)
	}
	go cmd.Wait()
	return nil
}

// Cleanup 按配置清理旧的导出文件
func (a *App) Cleanup() {
	days := a.cfg.Storage.KeepDays
	if days <= 0 {
		return
	}
	removed, err := a.store.Cleanup(time.Duration(days) * 24 * time.Hour)
	if err != nil {
		logging.WithError(err, "清理导出目录")
		return
	}
	if removed > 0 {
		logging.Info("已清理 %d 个旧导出文件", removed)
	}
}
