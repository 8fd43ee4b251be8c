package systems

import (
	"github.com/decker502/turborun/pkg/components"
	"github.com/decker502/turborun/pkg/ecs"
	"github.com/decker502/turborun/pkg/utils"
)

// ScaleRampSystem 推进缩放渐变
// 最后一帧精确落在目标缩放上
type ScaleRampSystem struct {
	em *ecs.EntityManager
}

// NewScaleRampSystem 创建缩放渐变系统
func NewScaleRampSystem(em *ecs.EntityManager) *ScaleRampSystem {
	return &ScaleRampSystem{em: em}
}

// Update 推进所有进行中的渐变
func (s *ScaleRampSystem) Update(deltaTime float64) {
	ids := ecs.GetEntitiesWith2[*components.ScaleComponent, *components.ScaleRampComponent](s.em)
	for _, id := range ids {
		ramp, _ := ecs.GetComponent[*components.ScaleRampComponent](s.em, id)
		if !ramp.IsActive {
			continue
		}
		scale, _ := ecs.GetComponent[*components.ScaleComponent](s.em, id)

		ramp.Elapsed += deltaTime
		t := utils.Progress(ramp.Elapsed, ramp.Duration)
		if t >= 1 || components.TimeReached(ramp.Elapsed, ramp.Duration) {
			scale.ScaleX, scale.ScaleY = ramp.ToX, ramp.ToY
			ramp.Elapsed = ramp.Duration
			ramp.IsActive = false
			continue
		}
		scale.ScaleX = utils.Lerp(ramp.FromX, ramp.ToX, t)
		scale.ScaleY = utils.Lerp(ramp.FromY, ramp.ToY, t)
	}
}
