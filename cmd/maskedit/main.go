package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"maskedit/internal/app"
	"maskedit/internal/clipboard"
	"maskedit/internal/config"
	"maskedit/internal/hotkey"
	"maskedit/internal/imageio"
	"maskedit/internal/logging"
	"maskedit/internal/notify"
	"maskedit/internal/script"
	"maskedit/internal/tray"
)

const version = "MaskEdit v1.0.0"

func main() {
	// 命令行参数
	scriptFlag := flag.String("script", "", "回放手势脚本后退出，- 表示从标准输入读取")
	openFlag := flag.String("open", "", "启动时打开的图片")
	showConfig := flag.Bool("config", false, "显示配置文件路径")
	showVersion := flag.Bool("version", false, "显示版本信息")
	setHotkeyFlag := flag.String("set-hotkey", "", "设置快捷键，格式：save=ctrl+alt+s")
	flag.Parse()

	if *showVersion {
		fmt.Println(version)
		fmt.Println("图片遮罩与 alpha 导出工具")
		return
	}

	if *showConfig {
		fmt.Println("配置文件路径:", config.GetConfigPath())
		return
	}

	if *setHotkeyFlag != "" {
		if err := updateHotkey(*setHotkeyFlag); err != nil {
			fmt.Println("设置快捷键失败:", err)
			os.Exit(1)
		}
		fmt.Println("快捷键已设置:", *setHotkeyFlag)
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Println("加载配置失败，使用默认配置:", err)
	}
	if err := logging.Initialize(cfg.Log.Directory, logging.ParseLevel(cfg.Log.Level)); err != nil {
		fmt.Println("初始化日志失败:", err)
	}
	defer logging.Close()

	if *scriptFlag != "" {
		if err := runScript(cfg, *scriptFlag, *openFlag); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	// 热键必须在主线程注册
	hotkey.Run(func() { runTray(cfg, *openFlag) })
}

// runScript 无界面回放脚本，提示输出到终端
func runScript(cfg *config.Config, path, open string) error {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("打开脚本失败: %w", err)
		}
		defer f.Close()
		r = f
	}

	cmds, err := script.Parse(r)
	if err != nil {
		return err
	}
	if open != "" {
		cmds = append([]script.Command{{Op: script.OpOpen, Arg: open}}, cmds...)
	}

	a := app.New(app.Options{
		Config:    cfg,
		Notifier:  notify.ConsoleNotifier{},
		Clipboard: &clipboard.Memory{},
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go a.Run(ctx)

	return a.RunScript(ctx, cmds)
}

func runTray(cfg *config.Config, open string) {
	if err := cfg.EnsureStorageDir(); err != nil {
		logging.WithError(err, "创建导出目录")
	}

	a := app.New(app.Options{
		Config:    cfg,
		Notifier:  notify.NewNotifier(),
		Clipboard: clipboard.NewClipboard(),
		Storage:   imageio.NewStorage(cfg.Storage.Directory, cfg.Storage.Format),
	})
	a.Cleanup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	loopDone := make(chan struct{})
	go func() {
		defer close(loopDone)
		if err := a.Run(ctx); err != nil && err != context.Canceled {
			logging.WithError(err, "事件循环")
		}
	}()

	if open != "" {
		a.Post(app.Action{Kind: app.ActionOpen, Path: open})
	}

	if cfg.Behavior.WatchConfig {
		w, err := config.NewWatcher(cfg.Path(), func() {
			a.Post(app.Action{Kind: app.ActionReloadConfig})
		})
		if err != nil {
			logging.WithError(err, "监听配置文件")
		} else {
			defer w.Close()
			go w.Run(ctx)
		}
	}

	hk := hotkey.NewManager()
	bindings := []struct {
		name string
		b    config.Binding
		kind app.Kind
		item tray.Item
	}{
		{"open", cfg.Hotkeys.Open, app.ActionOpen, tray.ItemOpen},
		{"save", cfg.Hotkeys.Save, app.ActionSave, tray.ItemSave},
		{"undo", cfg.Hotkeys.Undo, app.ActionUndoMode, tray.ItemUndo},
	}

	t := tray.NewTray()
	for _, bind := range bindings {
		kind := bind.kind
		post := func() { a.Post(app.Action{Kind: kind}) }

		t.Handle(bind.item, post)
		if err := hk.Register(bind.name, bind.b.Modifiers, bind.b.Key, post); err != nil {
			logging.WithError(err, "注册热键")
			fmt.Println("注册热键失败:", err)
			fmt.Println("提示: 可以通过 -set-hotkey 参数设置其他快捷键")
			continue
		}
		t.SetShortcut(bind.item, bind.b.String())
	}
	defer hk.Unregister()
	hk.ListenAsync()

	t.Handle(tray.ItemOpenDir, func() { a.Post(app.Action{Kind: app.ActionOpenDir}) })
	t.Handle(tray.ItemQuit, func() {
		a.Post(app.Action{Kind: app.ActionQuit})
	})

	fmt.Println(version, "已启动")
	fmt.Printf("导出目录: %s\n", cfg.Storage.Directory)
	fmt.Printf("日志文件: %s\n", logging.GetLogPath())
	logging.Info("启动，导出目录 %s", cfg.Storage.Directory)

	// 运行托盘（阻塞）
	t.Run()

	cancel()
	<-loopDone
}

// updateHotkey 解析 action=binding 并写入配置
func updateHotkey(arg string) error {
	action, spec, ok := strings.Cut(arg, "=")
	if !ok {
		return fmt.Errorf("格式应为 动作=快捷键，如 save=ctrl+s")
	}
	b, ok := config.ParseBinding(spec)
	if !ok {
		return fmt.Errorf("无效的快捷键格式: %s", spec)
	}

	cfg, _ := config.Load()
	return cfg.SetBinding(strings.TrimSpace(action), b)
}
