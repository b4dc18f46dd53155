package tray

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/color"
	"image/png"
	"runtime"
)

const iconSize = 16

// getIcon 托盘图标：Windows 需要 ICO，其余平台使用 PNG
func getIcon() []byte {
	data := iconPNG()
	if runtime.GOOS == "windows" {
		return wrapICO(data, iconSize)
	}
	return data
}

// iconPNG 绘制图标：深灰底，中间一个绿色遮罩矩形
func iconPNG() []byte {
	img := image.NewNRGBA(image.Rect(0, 0, iconSize, iconSize))
	frame := color.NRGBA{R: 60, G: 60, B: 60, A: 255}
	marker := color.NRGBA{R: 0, G: 255, B: 0, A: 255}

	for y := 0; y < iconSize; y++ {
		for x := 0; x < iconSize; x++ {
			switch {
			case x >= 4 && x < 12 && y >= 4 && y < 12:
				img.SetNRGBA(x, y, marker)
			case x >= 1 && x < iconSize-1 && y >= 1 && y < iconSize-1:
				img.SetNRGBA(x, y, frame)
			}
		}
	}

	var buf bytes.Buffer
	_ = png.Encode(&buf, img)
	return buf.Bytes()
}

// wrapICO 将 PNG 包装为单图 ICO（Vista 起支持内嵌 PNG）
func wrapICO(pngData []byte, size int) []byte {
	var buf bytes.Buffer

	// ICONDIR
	binary.Write(&buf, binary.LittleEndian, []uint16{0, 1, 1})

	// ICONDIRENTRY
	buf.Write([]byte{byte(size), byte(size), 0, 0})
	binary.Write(&buf, binary.LittleEndian, []uint16{1, 32})
	binary.Write(&buf, binary.LittleEndian, []uint32{uint32(len(pngData)), 6 + 16})

	buf.Write(pngData)
	return buf.Bytes()
}
