package platform

import "fmt"

// Registry 是按平台索引的适配器只读注册表。
// 平台数量极小，用 map 保持简单即可。
type Registry struct {
	byPlatform map[Platform]Uploader
}

// NewRegistry 构造注册表，平台重复或适配器为空视为编程错误
func NewRegistry() *Registry {
	return &Registry{byPlatform: make(map[Platform]Uploader)}
}

// Register 注册一个平台适配器
func (r *Registry) Register(p Platform, u Uploader) error {
	if u == nil {
		return fmt.Errorf("适配器不能为空: %s", p)
	}
	if _, ok := r.byPlatform[p]; ok {
		return fmt.Errorf("重复注册平台: %s", p)
	}
	r.byPlatform[p] = u
	return nil
}

// Get 按平台取适配器
func (r *Registry) Get(p Platform) (Uploader, bool) {
	u, ok := r.byPlatform[p]
	return u, ok
}
