package game

import (
	"fmt"
	"log"

	"github.com/decker502/turborun/pkg/config"
	"github.com/decker502/turborun/pkg/types"
)

// VariantInfo 已注册变体的描述
type VariantInfo struct {
	ID       types.VariantID
	Name     string
	Category types.PoolCategory
	Def      config.VariantConfig
}

// VariantRegistry 为变体名称分配稳定的整数 ID
//
// ID 按注册顺序从 0 开始分配，会话内不变。
// 系统比较变体时只比较 ID，名称仅用于配置和日志。
type VariantRegistry struct {
	byName map[string]types.VariantID
	infos  []VariantInfo
}

// NewVariantRegistry 创建空的变体注册表
func NewVariantRegistry() *VariantRegistry {
	return &VariantRegistry{
		byName: make(map[string]types.VariantID),
	}
}

// NewVariantRegistryFromConfig 按配置文件中的顺序注册全部变体
func NewVariantRegistryFromConfig(cfg *config.RunnerConfig) (*VariantRegistry, error) {
	r := NewVariantRegistry()
	for _, def := range cfg.Variants {
		category, ok := types.ParsePoolCategory(def.Category)
		if !ok {
			return nil, fmt.Errorf("variant %q has unknown category %q", def.Name, def.Category)
		}
		id := r.Register(def.Name, category)
		r.infos[id].Def = def
	}
	return r, nil
}

// Register 注册变体并返回其 ID
// 同名变体重复注册返回已有 ID
func (r *VariantRegistry) Register(name string, category types.PoolCategory) types.VariantID {
	if id, ok := r.byName[name]; ok {
		if r.infos[id].Category != category {
			log.Printf("[VariantRegistry] WARNING: %q already registered as %s, ignoring %s", name, r.infos[id].Category, category)
		}
		return id
	}

	id := types.VariantID(len(r.infos))
	r.byName[name] = id
	r.infos = append(r.infos, VariantInfo{
		ID:       id,
		Name:     name,
		Category: category,
		Def:      config.VariantConfig{Name: name, Category: category.String()},
	})
	return id
}

// Lookup 按名称查找变体 ID
func (r *VariantRegistry) Lookup(name string) (types.VariantID, bool) {
	id, ok := r.byName[name]
	return id, ok
}

// MustLookupAll 批量查找，遇到未注册名称返回错误
func (r *VariantRegistry) MustLookupAll(names []string) ([]types.VariantID, error) {
	ids := make([]types.VariantID, 0, len(names))
	for _, name := range names {
		id, ok := r.byName[name]
		if !ok {
			return nil, fmt.Errorf("variant %q is not registered", name)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// Info 返回变体描述
func (r *VariantRegistry) Info(id types.VariantID) (VariantInfo, bool) {
	if id < 0 || int(id) >= len(r.infos) {
		return VariantInfo{}, false
	}
	return r.infos[id], true
}

// Name 返回变体名称，未知 ID 返回 "<none>"
func (r *VariantRegistry) Name(id types.VariantID) string {
	if info, ok := r.Info(id); ok {
		return info.Name
	}
	return "<none>"
}

// Len 返回已注册的变体数量
func (r *VariantRegistry) Len() int {
	return len(r.infos)
}
