package ascii

import (
	"image"
	"image/color"
	"strings"
)

// ASCII 字符集 (从深到浅)，透明像素直接是空格
const asciiChars = "@%#*+=-:. "

// subImager 支持裁剪的图片 (标准库的图片类型都实现了)
type subImager interface {
	SubImage(r image.Rectangle) image.Image
}

// Convert 将图片转换为 ASCII 字符串切片
// img: 原始图片对象
// targetWidth: 生成的字符宽度，比如 16 或 32
func Convert(img image.Image, targetWidth int) []string {
	bounds := img.Bounds()
	if bounds.Empty() || targetWidth <= 0 {
		return nil
	}

	// 1. 计算缩放步长
	stepX := bounds.Dx() / targetWidth
	if stepX < 1 {
		stepX = 1
	}
	// 终端字符的高通常是宽的 2 倍，所以 Y 轴采样步长要翻倍
	stepY := stepX * 2

	var result []string

	// 2. 遍历像素 (采样)，从 Min 开始，裁剪过的子图也能用
	for y := bounds.Min.Y; y < bounds.Max.Y; y += stepY {
		var line strings.Builder
		for x := bounds.Min.X; x < bounds.Max.X; x += stepX {
			line.WriteByte(pixelToASCII(img.At(x, y)))
		}
		result = append(result, line.String())
	}

	return result
}

// Region 先裁出 rect 再转换；图片不支持裁剪或者区域完全在图外时返回 nil
func Region(img image.Image, rect image.Rectangle, targetWidth int) []string {
	si, ok := img.(subImager)
	if !ok {
		return nil
	}
	rect = rect.Intersect(img.Bounds())
	if rect.Empty() {
		return nil
	}
	return Convert(si.SubImage(rect), targetWidth)
}

func pixelToASCII(c color.Color) byte {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return ' '
	}
	// RGBA 是预乘过的 16bit 值，先还原再转 0-255
	r, g, b = r*0xffff/a, g*0xffff/a, b*0xffff/a
	gray := 0.299*float64(r>>8) + 0.587*float64(g>>8) + 0.114*float64(b>>8)

	idx := int(gray / 255 * float64(len(asciiChars)-1))
	// 防止浮点数精度问题导致 idx 越界
	if idx >= len(asciiChars) {
		idx = len(asciiChars) - 1
	}
	return asciiChars[idx]
}
