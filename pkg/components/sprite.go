package components

import "image/color"

// SpriteComponent 实体的视觉表现
// 渲染层只读取这里的可见性和颜色，绘制方式由渲染端决定
type SpriteComponent struct {
	Visible bool
	Color   color.RGBA
	Width   float64 // 绘制宽度（世界单位，未缩放）
	Height  float64 // 绘制高度（世界单位，未缩放）
}
