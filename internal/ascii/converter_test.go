package ascii

import (
	"bytes"
	"image"
	"image/color"
	"strings"
	"testing"
)

func TestConvertSize(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 32, 32))

	lines := Convert(img, 16)
	if len(lines) != 8 {
		t.Fatalf("got %d lines, want 8", len(lines))
	}
	for i, l := range lines {
		if len(l) != 16 {
			t.Errorf("line %d has %d chars, want 16", i, len(l))
		}
		if strings.TrimSpace(l) != "" {
			t.Errorf("line %d = %q, transparent image should be blank", i, l)
		}
	}
}

func TestPixelToASCII(t *testing.T) {
	tests := []struct {
		name string
		c    color.Color
		want byte
	}{
		{"黑色", color.NRGBA{A: 255}, '@'},
		{"透明", color.NRGBA{}, ' '},
		{"半透明黑色", color.NRGBA{A: 128}, '@'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pixelToASCII(tt.c); got != tt.want {
				t.Errorf("pixelToASCII(%v) = %q, want %q", tt.c, got, tt.want)
			}
		})
	}
}

func TestRegionUsesOffset(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 64, 64))
	// 只把右下角那一块涂黑
	for y := 32; y < 64; y++ {
		for x := 32; x < 64; x++ {
			img.Set(x, y, color.NRGBA{A: 255})
		}
	}

	dark := Region(img, image.Rect(32, 32, 64, 64), 32)
	if len(dark) == 0 || !strings.HasPrefix(dark[0], "@@@@") {
		t.Errorf("dark region = %q", dark)
	}
	blank := Region(img, image.Rect(0, 0, 32, 32), 32)
	if len(blank) == 0 || strings.TrimSpace(blank[0]) != "" {
		t.Errorf("blank region = %q", blank)
	}
	if out := Region(img, image.Rect(200, 200, 232, 232), 32); out != nil {
		t.Errorf("outside region = %q, want nil", out)
	}
}

func TestWriteLayout(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 64, 64))

	var buf bytes.Buffer
	if err := WriteLayout(&buf, img, 16); err != nil {
		t.Fatalf("WriteLayout() error: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"sheet 64x64", "== walk/right #0 (96,0) [outside sheet]", "== walk/up-left #0 (0,0)\n", "== sleeping"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}
