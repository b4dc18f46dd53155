package imageio

import (
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	// 注册 WebP 解码器
	_ "golang.org/x/image/webp"
)

// DefaultQuality jpg 编码质量
const DefaultQuality = 90

// Read 读取并解码图片文件，返回图片和格式名
func Read(path string) (image.Image, string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("无法打开文件: %w", err)
	}
	defer file.Close()

	img, format, err := image.Decode(file)
	if err != nil {
		return nil, "", fmt.Errorf("无法解码图片 %s: %w", filepath.Base(path), err)
	}
	if b := img.Bounds(); b.Dx() == 0 || b.Dy() == 0 {
		return nil, "", fmt.Errorf("图片尺寸为空: %s", filepath.Base(path))
	}
	return img, format, nil
}

// HasAlpha 判断解码结果是否带有 alpha 通道
func HasAlpha(img image.Image) bool {
	switch m := img.(type) {
	case *image.NRGBA, *image.NRGBA64:
		return true
	case *image.RGBA:
		return !m.Opaque()
	case *image.RGBA64:
		return !m.Opaque()
	case *image.Paletted:
		for _, c := range m.Palette {
			if _, _, _, a := c.RGBA(); a != 0xffff {
				return true
			}
		}
		return false
	default:
		return img.ColorModel() == color.NRGBAModel || img.ColorModel() == color.NRGBA64Model
	}
}

// FormatOf 根据扩展名返回编码格式：png 或 jpg
func FormatOf(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return "jpg"
	default:
		return "png"
	}
}

// Write 编码并保存图片
// 先写入同目录临时文件再重命名，失败时不会留下半个文件
func Write(path string, img image.Image, quality int) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("无法创建目录: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("无法创建文件: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	switch FormatOf(path) {
	case "jpg":
		if quality < 1 || quality > 100 {
			quality = DefaultQuality
		}
		err = jpeg.Encode(tmp, img, &jpeg.Options{Quality: quality})
	default:
		err = png.Encode(tmp, img)
	}
	if err != nil {
		tmp.Close()
		return fmt.Errorf("无法保存图片: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("无法保存图片: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("无法保存图片: %w", err)
	}
	return nil
}
