package entities

import (
	"image/color"

	"github.com/decker502/turborun/pkg/components"
	"github.com/decker502/turborun/pkg/config"
	"github.com/decker502/turborun/pkg/ecs"
)

// BusColor 巴士的绘制颜色
var BusColor = color.RGBA{R: 0xf8, G: 0xd8, B: 0x20, A: 0xff}

// NewPlayerEntity 创建玩家（巴士）实体
// 参数:
//   - em: EntityManager 实例
//   - cfg: 玩家配置（起点、尺寸、速度）
//
// 返回: 创建的实体ID
func NewPlayerEntity(em *ecs.EntityManager, cfg config.PlayerConfig) ecs.EntityID {
	id := em.CreateEntity()

	ecs.AddComponent(em, id, &components.PositionComponent{X: cfg.StartX, Y: cfg.StartY})
	ecs.AddComponent(em, id, &components.VelocityComponent{})

	ecs.AddComponent(em, id, &components.PlayerComponent{
		MoveSpeed:  cfg.BaseSpeed,
		GraceTimer: components.TimerComponent{Name: "damage_grace"},
	})

	ecs.AddComponent(em, id, &components.ScaleComponent{ScaleX: 1, ScaleY: 1, BaseX: 1, BaseY: 1})
	ecs.AddComponent(em, id, &components.ScaleRampComponent{})

	ecs.AddComponent(em, id, &components.CollisionComponent{
		Width:   cfg.Width,
		Height:  cfg.Height,
		Enabled: true,
	})
	ecs.AddComponent(em, id, &components.SpriteComponent{
		Visible: true,
		Color:   BusColor,
		Width:   cfg.Width,
		Height:  cfg.Height,
	})

	return id
}
