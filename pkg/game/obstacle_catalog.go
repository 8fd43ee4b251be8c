package game

import (
	"fmt"
	"log"

	"github.com/decker502/turborun/pkg/config"
	"github.com/decker502/turborun/pkg/types"
)

// ObstacleCatalog 按解锁阶段划分的障碍物变体目录
//
// 每个阶段内保持配置中的顺序；同一变体只能属于一个阶段。
// 目录本身不关心时间，解锁由 SpawnTimeline 决定。
type ObstacleCatalog struct {
	tiers  map[types.ObstacleTier][]types.VariantID
	tierOf map[types.VariantID]types.ObstacleTier
}

// NewObstacleCatalog 创建空目录
func NewObstacleCatalog() *ObstacleCatalog {
	return &ObstacleCatalog{
		tiers:  make(map[types.ObstacleTier][]types.VariantID),
		tierOf: make(map[types.VariantID]types.ObstacleTier),
	}
}

// BuildObstacleCatalog 根据配置的 early/mid/late 列表构建目录
func BuildObstacleCatalog(cfg *config.RunnerConfig, registry *VariantRegistry) (*ObstacleCatalog, error) {
	c := NewObstacleCatalog()
	for _, tier := range types.AllTiers {
		ids, err := registry.MustLookupAll(cfg.Obstacles.TierNames(tier))
		if err != nil {
			return nil, fmt.Errorf("%s obstacle tier: %w", tier, err)
		}
		for _, id := range ids {
			c.Add(tier, id)
		}
	}
	return c, nil
}

// Add 将变体加入指定阶段
// 已在目录中的变体会被忽略
func (c *ObstacleCatalog) Add(tier types.ObstacleTier, id types.VariantID) {
	if existing, ok := c.tierOf[id]; ok {
		log.Printf("[ObstacleCatalog] WARNING: variant %d already in %s tier, ignoring %s", id, existing, tier)
		return
	}
	c.tiers[tier] = append(c.tiers[tier], id)
	c.tierOf[id] = tier
}

// Variants 返回指定阶段的变体副本
func (c *ObstacleCatalog) Variants(tier types.ObstacleTier) []types.VariantID {
	src := c.tiers[tier]
	out := make([]types.VariantID, len(src))
	copy(out, src)
	return out
}

// Len 返回指定阶段的变体数量
func (c *ObstacleCatalog) Len(tier types.ObstacleTier) int {
	return len(c.tiers[tier])
}

// TierOf 返回变体所属阶段
func (c *ObstacleCatalog) TierOf(id types.VariantID) (types.ObstacleTier, bool) {
	tier, ok := c.tierOf[id]
	return tier, ok
}

// Total 返回目录中的变体总数
func (c *ObstacleCatalog) Total() int {
	return len(c.tierOf)
}
