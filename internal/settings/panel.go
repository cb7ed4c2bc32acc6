package settings

import (
	"fmt"
	"os"

	"oneko/internal/sprite"
)

// Notice 给用户看的提示
type Notice struct {
	Title   string
	Message string
}

func (n Notice) String() string {
	return n.Title + ": " + n.Message
}

// Panel 设置面板背后的操作：改 URL、导入本地图片。
// 改完都要重启才生效，不做热加载。
type Panel struct {
	Store     Store
	Namespace string
	Key       string
}

// NewPanel 用默认的命名空间和键
func NewPanel(store Store) *Panel {
	return &Panel{Store: store, Namespace: Namespace, Key: Key}
}

// Current 当前保存的设置，读失败时是默认值
func (p *Panel) Current() Settings {
	s, err := p.Store.Load(p.Namespace, p.Key)
	if err != nil {
		// 坏数据不影响面板，显示默认值
		return Default()
	}
	return s
}

// SpriteURL 当前的精灵图来源
func (p *Panel) SpriteURL() string {
	return p.Current().SpriteURL
}

// SetSpriteURL 直接保存新的来源，不检查格式
func (p *Panel) SetSpriteURL(url string) (Notice, error) {
	s := p.Current()
	s.SpriteURL = url
	if err := p.Store.Save(p.Namespace, p.Key, s); err != nil {
		return Notice{}, err
	}
	return Notice{
		Title:   Namespace,
		Message: "Sprite URL updated. Please restart to apply the change.",
	}, nil
}

// ImportFile 读取本地图片，编码成 data URL 后保存。不检查能不能解码。
func (p *Panel) ImportFile(path string) (Notice, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Notice{}, fmt.Errorf("read sprite file: %w", err)
	}

	s := p.Current()
	s.SpriteURL = sprite.EncodeDataURL(path, data)
	if err := p.Store.Save(p.Namespace, p.Key, s); err != nil {
		return Notice{}, err
	}
	return Notice{
		Title:   Namespace,
		Message: "Local image loaded! Please restart to apply the change.",
	}, nil
}
