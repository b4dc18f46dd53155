package edit

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// DefaultAlpha alpha 输入框的默认值
const DefaultAlpha = "50"

// ValidateAlpha 解析用户输入的 alpha 值
// 非整数或负数返回 ErrInvalidAlphaInput，大于 255 时取 255
func ValidateAlpha(text string) (uint8, error) {
	v, err := strconv.Atoi(strings.TrimSpace(text))
	if errors.Is(err, strconv.ErrRange) && v > 0 {
		// 超出 int 范围的正整数同样按 255 处理
		return 255, nil
	}
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAlphaInput, text)
	}
	if v < 0 {
		return 0, fmt.Errorf("%w: %d 小于 0", ErrInvalidAlphaInput, v)
	}
	return uint8(min(v, 255)), nil
}

// isMarker 判断 RGB 是否等于标记色
func isMarker(r, g, b uint8) bool {
	return r == MarkerColor.R && g == MarkerColor.G && b == MarkerColor.B
}

// Composite 将标记像素写入 dst：颜色取标记色，alpha 取 alpha
// dst 缺少 alpha 通道时先补全为不透明，working 与 dst 行列必须一致
func Composite(dst, working *Buffer, alpha uint8) int {
	dst.WidenAlpha(255)

	marked := 0
	wc := working.Channels
	for i := 0; i < working.Rows*working.Cols; i++ {
		w := working.Pix[i*wc : i*wc+3]
		if isMarker(w[0], w[1], w[2]) {
			copy(dst.Pix[i*4:i*4+3], w)
			dst.Pix[i*4+3] = alpha
			marked++
		}
	}
	return marked
}
