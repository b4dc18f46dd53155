package edit

import "errors"

var (
	// ErrCannotReadImageFile 文件不存在、损坏或无法解码
	ErrCannotReadImageFile = errors.New("无法读取图片文件")

	// ErrInvalidAlphaInput alpha 输入不是合法整数
	ErrInvalidAlphaInput = errors.New("alpha 输入无效")

	// ErrNoImage 尚未加载图片
	ErrNoImage = errors.New("尚未加载图片")
)
