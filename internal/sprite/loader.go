// Package sprite 负责把设置里的精灵图来源变成一张图片。
// 来源可以是 http(s) 地址、data URL，或者本地文件路径。
package sprite

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"io"
	"mime"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png" // 必加，否则 image: unknown format

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// maxSheetBytes 精灵图最大体积，防止误填一个巨大的地址
const maxSheetBytes = 16 << 20

// ErrBadDataURL data URL 格式不对
var ErrBadDataURL = errors.New("sprite: malformed data URL")

// HTTPClient 下载远程精灵图用的客户端
var HTTPClient = &http.Client{Timeout: 15 * time.Second}

// Load 读取并解码精灵图
func Load(ctx context.Context, source string) (image.Image, error) {
	data, err := Fetch(ctx, source)
	if err != nil {
		return nil, err
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode sprite sheet: %w", err)
	}
	return img, nil
}

// Fetch 只取原始字节，不解码
func Fetch(ctx context.Context, source string) ([]byte, error) {
	source = strings.TrimSpace(source)
	switch {
	case source == "":
		return nil, errors.New("sprite: empty source")
	case strings.HasPrefix(source, "data:"):
		return DecodeDataURL(source)
	case strings.HasPrefix(source, "http://"), strings.HasPrefix(source, "https://"):
		return download(ctx, source)
	default:
		data, err := os.ReadFile(strings.TrimPrefix(source, "file://"))
		if err != nil {
			return nil, fmt.Errorf("read sprite sheet: %w", err)
		}
		return data, nil
	}
}

func download(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download sprite sheet: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download sprite sheet: %s", resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxSheetBytes))
	if err != nil {
		return nil, fmt.Errorf("read sprite sheet body: %w", err)
	}
	return data, nil
}

// DecodeDataURL 解析 data:[<mime>][;base64],<data>
func DecodeDataURL(s string) ([]byte, error) {
	rest, ok := strings.CutPrefix(s, "data:")
	if !ok {
		return nil, ErrBadDataURL
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return nil, ErrBadDataURL
	}

	if strings.HasSuffix(meta, ";base64") {
		data, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadDataURL, err)
		}
		return data, nil
	}

	text, err := url.PathUnescape(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadDataURL, err)
	}
	return []byte(text), nil
}

// EncodeDataURL 把文件内容编码成 base64 data URL。
// MIME 先看扩展名，认不出来再嗅探内容。
func EncodeDataURL(name string, data []byte) string {
	mimeType := mime.TypeByExtension(strings.ToLower(filepath.Ext(name)))
	if mimeType == "" {
		mimeType = http.DetectContentType(data)
	}
	// 去掉 "; charset=..." 之类的参数
	if i := strings.IndexByte(mimeType, ';'); i >= 0 {
		mimeType = strings.TrimSpace(mimeType[:i])
	}
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
}
