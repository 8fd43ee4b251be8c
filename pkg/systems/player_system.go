package systems

import (
	"log"
	"math"

	"github.com/decker502/turborun/pkg/components"
	"github.com/decker502/turborun/pkg/config"
	"github.com/decker502/turborun/pkg/ecs"
	"github.com/decker502/turborun/pkg/utils"
)

// PlayerSystem 控制玩家（巴士）的移动、速度升级和受伤
// 同时实现 Actor，供 BoostCoordinator 调整速度、无敌和缩放
type PlayerSystem struct {
	em       *ecs.EntityManager
	playerID ecs.EntityID
	cfg      config.PlayerConfig
}

// NewPlayerSystem 创建玩家系统
func NewPlayerSystem(em *ecs.EntityManager, playerID ecs.EntityID, cfg config.PlayerConfig) *PlayerSystem {
	return &PlayerSystem{
		em:       em,
		playerID: playerID,
		cfg:      cfg,
	}
}

func (s *PlayerSystem) player() *components.PlayerComponent {
	p, ok := ecs.GetComponent[*components.PlayerComponent](s.em, s.playerID)
	if !ok {
		return nil
	}
	return p
}

// PlayerID 返回玩家实体ID
func (s *PlayerSystem) PlayerID() ecs.EntityID {
	return s.playerID
}

// SetInput 设置方向输入，分量限制在 [-1, 1]
func (s *PlayerSystem) SetInput(x, y float64) {
	p := s.player()
	if p == nil {
		return
	}
	p.InputX = utils.Clamp(x, -1, 1)
	p.InputY = utils.Clamp(y, -1, 1)
}

// Update 推进受伤无敌计时并移动玩家
func (s *PlayerSystem) Update(deltaTime float64) {
	p := s.player()
	if p == nil {
		return
	}
	p.GraceTimer.Advance(deltaTime)

	pos, ok := ecs.GetComponent[*components.PositionComponent](s.em, s.playerID)
	if !ok {
		return
	}

	vx := p.InputX * p.MoveSpeed
	vy := p.InputY * p.MoveSpeed
	pos.X = utils.Clamp(pos.X+vx*deltaTime, s.cfg.MinX, s.cfg.MaxX)
	pos.Y = utils.Clamp(pos.Y+vy*deltaTime, s.cfg.MinY, s.cfg.MaxY)

	if vel, ok := ecs.GetComponent[*components.VelocityComponent](s.em, s.playerID); ok {
		vel.VX, vel.VY = vx, vy
	}
}

// SetSpeed 设置移动速度
func (s *PlayerSystem) SetSpeed(speed float64) {
	if p := s.player(); p != nil {
		p.MoveSpeed = speed
	}
}

// Speed 当前移动速度
func (s *PlayerSystem) Speed() float64 {
	if p := s.player(); p != nil {
		return p.MoveSpeed
	}
	return 0
}

// IncreaseSpeed 收集油桶后的速度升级
// 升级次数达到上限后返回 false
func (s *PlayerSystem) IncreaseSpeed() bool {
	p := s.player()
	if p == nil {
		return false
	}
	if p.TanksCollected >= s.cfg.MaxUpgrades {
		return false
	}
	p.TanksCollected++
	p.MoveSpeed = math.Min(p.MoveSpeed+s.cfg.SpeedIncreasePerTank, s.cfg.MaxSpeed)
	log.Printf("[PlayerSystem] Speed upgraded to %.2f (%d/%d)", p.MoveSpeed, p.TanksCollected, s.cfg.MaxUpgrades)
	return true
}

// SetInvulnerable 设置加速无敌
func (s *PlayerSystem) SetInvulnerable(invulnerable bool) {
	if p := s.player(); p != nil {
		p.BoostInvulnerable = invulnerable
	}
}

// IsInvulnerable 当前是否免疫伤害
func (s *PlayerSystem) IsInvulnerable() bool {
	if p := s.player(); p != nil {
		return p.IsInvulnerable()
	}
	return false
}

// TakeDamage 尝试对玩家造成伤害
// 无敌时忽略并返回 false；生效后开启短暂的受伤无敌
func (s *PlayerSystem) TakeDamage() bool {
	p := s.player()
	if p == nil || p.IsInvulnerable() {
		return false
	}
	p.GraceTimer.Start(s.cfg.InvulnerabilityTime)
	return true
}

// AnimateScale 在 duration 秒内把缩放渐变到原始缩放的 multiplier 倍
// 新的渐变覆盖正在进行的渐变，从当前缩放开始
func (s *PlayerSystem) AnimateScale(multiplier, duration float64) {
	scale, ok := ecs.GetComponent[*components.ScaleComponent](s.em, s.playerID)
	if !ok {
		return
	}
	ramp, ok := ecs.GetComponent[*components.ScaleRampComponent](s.em, s.playerID)
	if !ok {
		ramp = &components.ScaleRampComponent{}
		ecs.AddComponent(s.em, s.playerID, ramp)
	}

	ramp.FromX, ramp.FromY = scale.ScaleX, scale.ScaleY
	ramp.ToX, ramp.ToY = scale.BaseX*multiplier, scale.BaseY*multiplier
	ramp.Duration = duration
	ramp.Elapsed = 0
	ramp.IsActive = true

	if duration <= 0 {
		scale.ScaleX, scale.ScaleY = ramp.ToX, ramp.ToY
		ramp.IsActive = false
	}
}

// Position 玩家当前位置
func (s *PlayerSystem) Position() (float64, float64) {
	if pos, ok := ecs.GetComponent[*components.PositionComponent](s.em, s.playerID); ok {
		return pos.X, pos.Y
	}
	return 0, 0
}
