// Package script 解析手势脚本：每行一个事件，按顺序回放到编辑会话
//
//	open photo.png
//	zoom 50
//	down 10 10
//	move 30 20
//	up 40 40
//	undo
//	alpha 80
//	save out.png
//	preview view.png
package script

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Op 脚本指令
type Op int

const (
	OpOpen    Op = iota // open <path>
	OpSave              // save [path]
	OpZoom              // zoom <0-100>
	OpDown              // down x y
	OpMove              // move x y
	OpUp                // up x y
	OpUndo              // undo：进入恢复模式
	OpAlpha             // alpha <text>
	OpPreview           // preview <path>
)

var opNames = map[string]Op{
	"open":    OpOpen,
	"save":    OpSave,
	"zoom":    OpZoom,
	"down":    OpDown,
	"move":    OpMove,
	"up":      OpUp,
	"undo":    OpUndo,
	"alpha":   OpAlpha,
	"preview": OpPreview,
}

// String 指令名称
func (o Op) String() string {
	for name, op := range opNames {
		if op == o {
			return name
		}
	}
	return "unknown"
}

// Command 一条脚本指令
type Command struct {
	Op   Op
	Line int
	X, Y int     // down/move/up
	Zoom float64 // zoom
	Arg  string  // open/save/preview 的路径，alpha 的原始文本
}

// Parse 读取整个脚本，出错时返回带行号的错误
func Parse(r io.Reader) ([]Command, error) {
	var cmds []Command
	scanner := bufio.NewScanner(r)

	for n := 1; scanner.Scan(); n++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		cmd, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("第 %d 行: %w", n, err)
		}
		cmd.Line = n
		cmds = append(cmds, cmd)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("读取脚本失败: %w", err)
	}
	return cmds, nil
}

func parseLine(line string) (Command, error) {
	name, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)

	op, ok := opNames[strings.ToLower(name)]
	if !ok {
		return Command{}, fmt.Errorf("未知指令 %q", name)
	}
	cmd := Command{Op: op}

	switch op {
	case OpOpen, OpPreview:
		if rest == "" {
			return cmd, fmt.Errorf("%s 需要文件路径", op)
		}
		cmd.Arg = rest
	case OpSave:
		// 路径可省略，由存储目录生成
		cmd.Arg = rest
	case OpAlpha:
		// 原样保留，导出时再校验
		cmd.Arg = rest
	case OpZoom:
		z, err := strconv.ParseFloat(rest, 64)
		if err != nil {
			return cmd, fmt.Errorf("zoom 需要数值: %q", rest)
		}
		cmd.Zoom = z
	case OpDown, OpMove, OpUp:
		fields := strings.Fields(rest)
		if len(fields) != 2 {
			return cmd, fmt.Errorf("%s 需要两个整数坐标", op)
		}
		x, errX := strconv.Atoi(fields[0])
		y, errY := strconv.Atoi(fields[1])
		if errX != nil || errY != nil {
			return cmd, fmt.Errorf("%s 坐标必须是整数: %q", op, rest)
		}
		cmd.X, cmd.Y = x, y
	case OpUndo:
		if rest != "" {
			return cmd, fmt.Errorf("undo 不接受参数")
		}
	}
	return cmd, nil
}
