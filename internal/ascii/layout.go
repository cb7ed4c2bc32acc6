package ascii

import (
	"fmt"
	"image"
	"io"
	"strings"

	"oneko/internal/oneko"
)

// WriteLayout 把动画用到的每一帧都打印出来，
// 换了自定义精灵图以后可以用来对照帧表是否对得上。
func WriteLayout(w io.Writer, sheet image.Image, width int) error {
	b := sheet.Bounds()
	if _, err := fmt.Fprintf(w, "sheet %dx%d\n", b.Dx(), b.Dy()); err != nil {
		return err
	}

	for _, f := range oneko.NamedFrames() {
		rect := f.Offset.Rect()
		lines := Region(sheet, rect, width)

		header := fmt.Sprintf("== %s #%d (%d,%d)", f.Name, f.Index, f.Offset.X, f.Offset.Y)
		if !rect.In(b) {
			header += " [outside sheet]"
		}
		if _, err := fmt.Fprintln(w, header); err != nil {
			return err
		}
		if len(lines) > 0 {
			if _, err := fmt.Fprintln(w, strings.Join(lines, "\n")); err != nil {
				return err
			}
		}
	}
	return nil
}
