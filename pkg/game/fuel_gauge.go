package game

import "log"

// FuelGauge 燃料槽
//
// 收集油桶填充燃料，满槽后才能触发加速。
// 加速期间燃料累积被锁定，由 BoostCoordinator 负责加锁和解锁。
type FuelGauge struct {
	maxTanks int
	tanks    int
	locked   bool

	onChange func(tanks, maxTanks int)
}

// NewFuelGauge 创建燃料槽
// maxTanks 小于 1 时按 1 处理
func NewFuelGauge(maxTanks int) *FuelGauge {
	if maxTanks < 1 {
		log.Printf("[FuelGauge] WARNING: maxTanks %d invalid, using 1", maxTanks)
		maxTanks = 1
	}
	return &FuelGauge{maxTanks: maxTanks}
}

// SetOnChange 设置燃料数量变化回调（用于 HUD 刷新）
func (g *FuelGauge) SetOnChange(fn func(tanks, maxTanks int)) {
	g.onChange = fn
}

func (g *FuelGauge) notify() {
	if g.onChange != nil {
		g.onChange(g.tanks, g.maxTanks)
	}
}

// AddFuel 增加一格燃料
// 锁定期间或已满时拒绝，返回 false
func (g *FuelGauge) AddFuel() bool {
	if g.locked {
		log.Printf("[FuelGauge] Fuel refused: accumulation locked during boost")
		return false
	}
	if g.tanks >= g.maxTanks {
		return false
	}
	g.tanks++
	log.Printf("[FuelGauge] Fuel added: %d/%d", g.tanks, g.maxTanks)
	g.notify()
	return true
}

// Reset 清空燃料
func (g *FuelGauge) Reset() {
	g.tanks = 0
	g.notify()
}

// LockAccumulation 锁定或解锁燃料累积
func (g *FuelGauge) LockAccumulation(locked bool) {
	g.locked = locked
}

// IsLocked 返回燃料累积是否被锁定
func (g *FuelGauge) IsLocked() bool {
	return g.locked
}

// IsFull 燃料是否已满
func (g *FuelGauge) IsFull() bool {
	return g.tanks >= g.maxTanks
}

// CanCollect 当前是否能接收燃料
func (g *FuelGauge) CanCollect() bool {
	return !g.locked && !g.IsFull()
}

// Tanks 当前燃料格数
func (g *FuelGauge) Tanks() int {
	return g.tanks
}

// MaxTanks 燃料格上限
func (g *FuelGauge) MaxTanks() int {
	return g.maxTanks
}

// Percentage 燃料百分比 [0, 1]
func (g *FuelGauge) Percentage() float64 {
	return float64(g.tanks) / float64(g.maxTanks)
}
