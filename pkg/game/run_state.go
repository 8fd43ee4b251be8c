package game

import "log"

// RunState 单局跑酷的计分与生命状态
// 由 Session 持有，不是全局单例
type RunState struct {
	score     int
	health    int
	maxHealth int
	gameOver  bool

	collected int // 收集的装饰物数量
	hits      int // 受到的有效伤害次数
}

// NewRunState 创建新的单局状态
func NewRunState(maxHealth int) *RunState {
	if maxHealth < 1 {
		maxHealth = 1
	}
	return &RunState{health: maxHealth, maxHealth: maxHealth}
}

// AddPoints 增加分数（游戏结束后忽略）
func (s *RunState) AddPoints(points int) {
	if s.gameOver {
		return
	}
	s.score += points
	s.collected++
}

// TakeDamage 扣除生命值，返回剩余生命值
// 生命值归零时进入游戏结束状态
func (s *RunState) TakeDamage(amount int) int {
	if s.gameOver || amount <= 0 {
		return s.health
	}
	s.health -= amount
	s.hits++
	if s.health <= 0 {
		s.health = 0
		s.gameOver = true
		log.Printf("[RunState] Game over: score=%d collected=%d", s.score, s.collected)
	}
	return s.health
}

// Score 当前分数
func (s *RunState) Score() int {
	return s.score
}

// Health 当前生命值
func (s *RunState) Health() int {
	return s.health
}

// MaxHealth 生命值上限
func (s *RunState) MaxHealth() int {
	return s.maxHealth
}

// Collected 收集的装饰物数量
func (s *RunState) Collected() int {
	return s.collected
}

// Hits 受到的有效伤害次数
func (s *RunState) Hits() int {
	return s.hits
}

// IsGameOver 是否已经结束
func (s *RunState) IsGameOver() bool {
	return s.gameOver
}

// Reset 重置为新一局
func (s *RunState) Reset() {
	*s = RunState{health: s.maxHealth, maxHealth: s.maxHealth}
}
