package systems

import (
	"math"

	"github.com/decker502/turborun/pkg/components"
	"github.com/decker502/turborun/pkg/ecs"
)

// BoostStatus 查询加速状态
type BoostStatus interface {
	IsActive() bool
}

// ScrollSystem 让活跃的池化实体向左卷动
//
// 受加速影响的实体（装饰物）在加速期间按倍率卷动。
// 带 BounceComponent 的实体在基准高度之上做 |sin| 弹跳。
type ScrollSystem struct {
	em              *ecs.EntityManager
	boost           BoostStatus
	boostMultiplier float64
}

// NewScrollSystem 创建卷动系统
// boost 为 nil 时不做加速倍率
func NewScrollSystem(em *ecs.EntityManager, boost BoostStatus, boostMultiplier float64) *ScrollSystem {
	return &ScrollSystem{
		em:              em,
		boost:           boost,
		boostMultiplier: boostMultiplier,
	}
}

// Update 移动所有活跃的池化实体
func (s *ScrollSystem) Update(deltaTime float64) {
	boosting := s.boost != nil && s.boost.IsActive()

	ids := ecs.GetEntitiesWith3[*components.PoolMemberComponent, *components.PositionComponent, *components.ScrollMoverComponent](s.em)
	for _, id := range ids {
		member, _ := ecs.GetComponent[*components.PoolMemberComponent](s.em, id)
		if !member.Active {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		mover, _ := ecs.GetComponent[*components.ScrollMoverComponent](s.em, id)

		speed := mover.Speed
		if boosting && mover.BoostAffected {
			speed *= s.boostMultiplier
		}
		pos.X -= speed * deltaTime

		if vel, ok := ecs.GetComponent[*components.VelocityComponent](s.em, id); ok {
			vel.VX = -speed
		}

		if bounce, ok := ecs.GetComponent[*components.BounceComponent](s.em, id); ok {
			bounce.Phase += deltaTime
			pos.Y = bounce.BaseY + math.Abs(math.Sin(2*math.Pi*bounce.Frequency*bounce.Phase))*bounce.Amplitude
		}
	}
}
