package components

import "github.com/solarlune/resolv"

// CollisionComponent 定义实体的碰撞检测边界框
// 尺寸为世界单位，盒子以实体位置为中心，可通过 Offset 偏移
type CollisionComponent struct {
	Width   float64 // 碰撞盒宽度
	Height  float64 // 碰撞盒高度
	OffsetX float64 // 相对实体位置的 X 偏移，正值向右
	OffsetY float64 // 相对实体位置的 Y 偏移，正值向上

	// Enabled 碰撞是否启用（回收时关闭，取出时由重置步骤重新打开）
	Enabled bool

	// Object 碰撞空间中的代理对象，由 CollisionSystem 维护
	Object *resolv.Object
}
