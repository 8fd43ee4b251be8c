package entities

import (
	"github.com/decker502/turborun/pkg/components"
	"github.com/decker502/turborun/pkg/ecs"
)

// ResetPoolEntity 把池化实体的瞬时状态恢复为干净状态
// 在实体重新投入使用、放置之前调用
func ResetPoolEntity(em *ecs.EntityManager, id ecs.EntityID) {
	if vel, ok := ecs.GetComponent[*components.VelocityComponent](em, id); ok {
		vel.VX, vel.VY = 0, 0
	}
	if scale, ok := ecs.GetComponent[*components.ScaleComponent](em, id); ok {
		scale.ScaleX, scale.ScaleY = scale.BaseX, scale.BaseY
	}
	if pickup, ok := ecs.GetComponent[*components.PickupComponent](em, id); ok {
		pickup.Collected = false
	}
	if bounce, ok := ecs.GetComponent[*components.BounceComponent](em, id); ok {
		bounce.Phase = 0
		bounce.BaseY = 0
	}
}

// PlacePoolEntity 设置实体位置
// 弹跳实体同时记录基准高度
func PlacePoolEntity(em *ecs.EntityManager, id ecs.EntityID, x, y float64) {
	if pos, ok := ecs.GetComponent[*components.PositionComponent](em, id); ok {
		pos.X, pos.Y = x, y
	}
	if bounce, ok := ecs.GetComponent[*components.BounceComponent](em, id); ok {
		bounce.BaseY = y
	}
}

// ActivatePoolEntity 使实体可见并参与碰撞
func ActivatePoolEntity(em *ecs.EntityManager, id ecs.EntityID) {
	setPoolEntityActive(em, id, true)
	if member, ok := ecs.GetComponent[*components.PoolMemberComponent](em, id); ok {
		member.Spawns++
	}
}

// DeactivatePoolEntity 隐藏实体并关闭碰撞
func DeactivatePoolEntity(em *ecs.EntityManager, id ecs.EntityID) {
	setPoolEntityActive(em, id, false)
}

func setPoolEntityActive(em *ecs.EntityManager, id ecs.EntityID, active bool) {
	if member, ok := ecs.GetComponent[*components.PoolMemberComponent](em, id); ok {
		member.Active = active
	}
	if sprite, ok := ecs.GetComponent[*components.SpriteComponent](em, id); ok {
		sprite.Visible = active
	}
	if col, ok := ecs.GetComponent[*components.CollisionComponent](em, id); ok {
		col.Enabled = active
	}
}
