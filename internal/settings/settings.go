// Package settings 保存精灵图来源这一项设置。
// 存储后端是 gdata (跨平台的应用数据目录)，内容用 YAML 序列化。
package settings

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

const (
	// Namespace 设置所在的命名空间 (gdata 的应用名)
	Namespace = "OnekoSmart"
	// Key 设置条目的名字
	Key = "settings"

	// DefaultSpriteURL 默认的 oneko 精灵图
	DefaultSpriteURL = "https://raw.githubusercontent.com/ShadowieBunny/Onekocat-for-BD/refs/heads/main/skins/oneko.png"

	settingsProperty = "global"
)

// Settings 唯一的一项设置：精灵图来源 (URL、data URL 或本地路径)
type Settings struct {
	SpriteURL string `yaml:"spriteUrl"`
}

// Default 返回默认设置
func Default() Settings {
	return Settings{SpriteURL: DefaultSpriteURL}
}

// Store 设置的读写接口
type Store interface {
	// Load 读取设置，不存在时返回 Default()
	Load(namespace, key string) (Settings, error)
	// Save 持久化设置
	Save(namespace, key string, value Settings) error
}

// ErrMalformed 存储里的数据无法解析
var ErrMalformed = errors.New("settings: malformed data")

// GdataStore 用 gdata 持久化设置。每个命名空间对应一个 gdata 应用目录，
// 第一次用到时才打开。
type GdataStore struct {
	mu       sync.Mutex
	managers map[string]*gdata.Manager
	open     func(namespace string) (*gdata.Manager, error)
}

// NewGdataStore 创建默认的 gdata 存储
func NewGdataStore() *GdataStore {
	return &GdataStore{
		managers: make(map[string]*gdata.Manager),
		open: func(namespace string) (*gdata.Manager, error) {
			return gdata.Open(gdata.Config{AppName: namespace})
		},
	}
}

func (s *GdataStore) manager(namespace string) (*gdata.Manager, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if m, ok := s.managers[namespace]; ok {
		return m, nil
	}
	m, err := s.open(namespace)
	if err != nil {
		return nil, fmt.Errorf("open gdata %q: %w", namespace, err)
	}
	s.managers[namespace] = m
	return m, nil
}

// Load 读取设置。
// 不存在时返回默认值；数据坏了也返回默认值，同时带上错误方便调用方记日志。
func (s *GdataStore) Load(namespace, key string) (Settings, error) {
	m, err := s.manager(namespace)
	if err != nil {
		return Default(), err
	}

	if !m.ObjectPropExists(key, settingsProperty) {
		return Default(), nil
	}

	data, err := m.LoadObjectProp(key, settingsProperty)
	if err != nil {
		return Default(), fmt.Errorf("load %s/%s: %w", namespace, key, err)
	}
	return decode(data)
}

// Save 写入设置
func (s *GdataStore) Save(namespace, key string, value Settings) error {
	m, err := s.manager(namespace)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}
	if err := m.SaveObjectProp(key, settingsProperty, data); err != nil {
		return fmt.Errorf("save %s/%s: %w", namespace, key, err)
	}

	log.Printf("[Settings] Saved %s/%s", namespace, key)
	return nil
}

func decode(data []byte) (Settings, error) {
	var out Settings
	if err := yaml.Unmarshal(data, &out); err != nil {
		return Default(), fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return out, nil
}

// MemoryStore 只存在内存里的设置，gdata 打不开时的降级方案，也给测试用
type MemoryStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

// NewMemoryStore 创建空的内存存储
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (s *MemoryStore) Load(namespace, key string) (Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, ok := s.data[namespace+"/"+key]
	if !ok {
		return Default(), nil
	}
	return decode(data)
}

func (s *MemoryStore) Save(namespace, key string, value Settings) error {
	data, err := yaml.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[namespace+"/"+key] = data
	return nil
}

// putRaw 直接写入原始字节，用来模拟坏数据
func (s *MemoryStore) putRaw(namespace, key string, data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[namespace+"/"+key] = data
}
