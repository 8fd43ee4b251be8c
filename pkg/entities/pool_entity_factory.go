package entities

import (
	"image/color"
	"log"

	"github.com/decker502/turborun/pkg/components"
	"github.com/decker502/turborun/pkg/config"
	"github.com/decker502/turborun/pkg/ecs"
	"github.com/decker502/turborun/pkg/game"
	"github.com/decker502/turborun/pkg/types"
)

// EntityFactory 按变体创建池化实体
// 新实体处于未激活状态（不可见、碰撞关闭），由对象池决定何时激活
type EntityFactory interface {
	Create(variant types.VariantID) ecs.EntityID
}

// PoolEntityFactory 根据变体注册表和配置创建池化实体
type PoolEntityFactory struct {
	em       *ecs.EntityManager
	registry *game.VariantRegistry
	scroll   config.ScrollConfig

	created int
}

// NewPoolEntityFactory 创建池化实体工厂
func NewPoolEntityFactory(em *ecs.EntityManager, registry *game.VariantRegistry, scroll config.ScrollConfig) *PoolEntityFactory {
	return &PoolEntityFactory{
		em:       em,
		registry: registry,
		scroll:   scroll,
	}
}

// Create 创建指定变体的实体
// 未注册的变体返回 ecs.InvalidEntity
func (f *PoolEntityFactory) Create(variant types.VariantID) ecs.EntityID {
	info, ok := f.registry.Info(variant)
	if !ok {
		log.Printf("[PoolEntityFactory] WARNING: unknown variant %d", variant)
		return ecs.InvalidEntity
	}
	def := info.Def

	id := f.em.CreateEntity()

	ecs.AddComponent(f.em, id, &components.PoolMemberComponent{
		Category: info.Category,
		Variant:  variant,
	})
	ecs.AddComponent(f.em, id, &components.PositionComponent{})
	ecs.AddComponent(f.em, id, &components.VelocityComponent{})
	ecs.AddComponent(f.em, id, &components.ScaleComponent{ScaleX: 1, ScaleY: 1, BaseX: 1, BaseY: 1})

	ecs.AddComponent(f.em, id, &components.CollisionComponent{
		Width:  def.Width,
		Height: def.Height,
	})
	ecs.AddComponent(f.em, id, &components.SpriteComponent{
		Color:  variantColor(def),
		Width:  def.Width,
		Height: def.Height,
	})

	// 只有装饰物在加速期间倍速卷动
	ecs.AddComponent(f.em, id, &components.ScrollMoverComponent{
		Speed:         f.scrollSpeed(info.Category),
		BoostAffected: info.Category == types.CategoryDecoration,
	})
	ecs.AddComponent(f.em, id, &components.PickupComponent{
		PointValue: def.Points,
		Damage:     def.Damage,
		FuelTanks:  def.Fuel,
	})

	if def.BounceAmplitude > 0 {
		ecs.AddComponent(f.em, id, &components.BounceComponent{
			Amplitude: def.BounceAmplitude,
			Frequency: def.BounceFrequency,
		})
	}

	f.created++
	log.Printf("[PoolEntityFactory] Created %s entity %d (variant=%s)", info.Category, id, info.Name)
	return id
}

// Created 返回工厂创建的实体总数
func (f *PoolEntityFactory) Created() int {
	return f.created
}

func (f *PoolEntityFactory) scrollSpeed(category types.PoolCategory) float64 {
	switch category {
	case types.CategoryDecoration:
		return f.scroll.DecorationSpeed
	case types.CategoryObstacle:
		return f.scroll.ObstacleSpeed
	case types.CategoryPowerUp:
		return f.scroll.PowerUpSpeed
	default:
		return 0
	}
}

func variantColor(def config.VariantConfig) color.RGBA {
	if def.Color == "" {
		return color.RGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 0xff}
	}
	c, err := config.ParseHexColor(def.Color)
	if err != nil {
		log.Printf("[PoolEntityFactory] WARNING: variant %q: %v", def.Name, err)
		return color.RGBA{R: 0xff, G: 0x00, B: 0xff, A: 0xff}
	}
	return c
}
