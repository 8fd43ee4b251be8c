package components

// PositionComponent 实体在世界坐标中的位置（世界单位，原点在画面中心，Y 轴向上）
type PositionComponent struct {
	X float64
	Y float64
}

// VelocityComponent 实体速度（世界单位/秒）
type VelocityComponent struct {
	VX float64
	VY float64
}
