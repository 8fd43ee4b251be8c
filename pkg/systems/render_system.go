package systems

import (
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/turborun/pkg/components"
	"github.com/decker502/turborun/pkg/config"
	"github.com/decker502/turborun/pkg/ecs"
)

// Drawable 一个待绘制的矩形（屏幕坐标，像素）
type Drawable struct {
	Entity        ecs.EntityID
	X, Y          float64 // 左上角
	Width, Height float64
	Color         color.RGBA
	Layer         int // 越大越晚绘制
}

// 绘制层级
const (
	LayerPooled = 0
	LayerPlayer = 1
)

// RenderSystem 把可见实体绘制为彩色矩形
//
// 只读取 SpriteComponent、PositionComponent 和 ScaleComponent，
// 不修改任何游戏状态。
type RenderSystem struct {
	entityManager *ecs.EntityManager
	drawables     []Drawable // 每帧复用
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(em *ecs.EntityManager) *RenderSystem {
	return &RenderSystem{
		entityManager: em,
		drawables:     make([]Drawable, 0, 64),
	}
}

// CollectDrawables 收集本帧需要绘制的矩形
// 池化实体在前，玩家在最上层；同层按实体 ID 排序
func (s *RenderSystem) CollectDrawables() []Drawable {
	s.drawables = s.drawables[:0]

	ids := ecs.GetEntitiesWith2[*components.SpriteComponent, *components.PositionComponent](s.entityManager)
	for _, id := range ids {
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
		if !sprite.Visible {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		w, h := sprite.Width, sprite.Height
		if scale, ok := ecs.GetComponent[*components.ScaleComponent](s.entityManager, id); ok {
			w *= scale.ScaleX
			h *= scale.ScaleY
		}

		layer := LayerPooled
		if ecs.HasComponent[*components.PlayerComponent](s.entityManager, id) {
			layer = LayerPlayer
		}

		x, y, sw, sh := config.WorldRectToScreen(pos.X, pos.Y, w, h)
		s.drawables = append(s.drawables, Drawable{
			Entity: id,
			X:      x,
			Y:      y,
			Width:  sw,
			Height: sh,
			Color:  sprite.Color,
			Layer:  layer,
		})
	}

	sort.SliceStable(s.drawables, func(i, j int) bool {
		return s.drawables[i].Layer < s.drawables[j].Layer
	})
	return s.drawables
}

// Draw 绘制所有可见实体
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	for _, d := range s.CollectDrawables() {
		vector.DrawFilledRect(screen, float32(d.X), float32(d.Y), float32(d.Width), float32(d.Height), d.Color, true)
	}
}
