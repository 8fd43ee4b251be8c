package components

// PlayerComponent 玩家（巴士）的控制状态
type PlayerComponent struct {
	MoveSpeed float64 // 当前移动速度

	InputX float64 // 水平输入 [-1, 1]
	InputY float64 // 竖直输入 [-1, 1]

	// BoostInvulnerable 加速期间的无敌
	BoostInvulnerable bool
	// GraceTimer 受伤后的短暂无敌
	GraceTimer TimerComponent

	// TanksCollected 已获得的速度升级次数
	TanksCollected int
}

// IsInvulnerable 当前是否免疫伤害
func (p *PlayerComponent) IsInvulnerable() bool {
	return p.BoostInvulnerable || p.GraceTimer.IsRunning
}
