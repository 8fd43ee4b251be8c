package systems

import (
	"log"

	"github.com/decker502/turborun/pkg/components"
	"github.com/decker502/turborun/pkg/config"
)

// BoostPhase 加速状态
type BoostPhase int

const (
	// BoostIdle 未加速，可以在燃料满时触发
	BoostIdle BoostPhase = iota
	// BoostActive 加速中，持续固定时长后自动结束
	BoostActive
)

// String 返回状态的字符串表示
func (p BoostPhase) String() string {
	switch p {
	case BoostIdle:
		return "Idle"
	case BoostActive:
		return "Active"
	default:
		return "Unknown"
	}
}

// Actor 被加速影响的玩家
type Actor interface {
	SetSpeed(speed float64)
	Speed() float64
	SetInvulnerable(invulnerable bool)
	// AnimateScale 在 duration 秒内把缩放渐变到原始缩放的 multiplier 倍
	AnimateScale(multiplier, duration float64)
}

// Gauge 触发加速所需的燃料槽
type Gauge interface {
	IsFull() bool
	Reset()
	LockAccumulation(locked bool)
	Percentage() float64
}

// CadenceController 加速期间调整生成节奏（由 SpawnDirectorSystem 实现）
type CadenceController interface {
	SetBoostMode(enabled bool)
}

// BoostCoordinator 加速状态机
//
// Idle → Active：燃料满时由 TryActivate 触发，所有副作用在同一次调用内完成，
// 之后 IsActive 才返回 true。
// Active → Idle：持续时间到达后在 Update 中自动发生，不可被其他事件打断。
// 缺失的协作方（actor/director）只跳过对应效果并记录警告，状态机照常推进。
type BoostCoordinator struct {
	cfg config.BoostConfig

	actor    Actor
	gauge    Gauge
	director CadenceController

	phase       BoostPhase
	timer       components.TimerComponent
	cachedSpeed float64

	listeners []func(BoostPhase)
}

// NewBoostCoordinator 创建加速协调器
func NewBoostCoordinator(cfg config.BoostConfig, actor Actor, gauge Gauge, director CadenceController) *BoostCoordinator {
	return &BoostCoordinator{
		cfg:      cfg,
		actor:    actor,
		gauge:    gauge,
		director: director,
		phase:    BoostIdle,
		timer:    components.TimerComponent{Name: "boost_duration"},
	}
}

// OnPhaseChange 注册状态切换回调
func (b *BoostCoordinator) OnPhaseChange(fn func(BoostPhase)) {
	b.listeners = append(b.listeners, fn)
}

// CanActivate 当前是否可以触发加速（用于按钮可交互状态）
func (b *BoostCoordinator) CanActivate() bool {
	return b.phase == BoostIdle && b.gauge != nil && b.gauge.IsFull()
}

// TryActivate 尝试触发加速，成功返回 true
// 加速中再次触发是无操作
func (b *BoostCoordinator) TryActivate() bool {
	if b.phase == BoostActive {
		return false
	}
	if b.gauge == nil {
		log.Printf("[BoostCoordinator] WARNING: no fuel gauge, boost cannot be triggered")
		return false
	}
	if !b.gauge.IsFull() {
		return false
	}

	b.activate()
	return true
}

func (b *BoostCoordinator) activate() {
	b.gauge.Reset()
	b.gauge.LockAccumulation(true)

	if b.actor != nil {
		b.cachedSpeed = b.actor.Speed()
		b.actor.SetSpeed(b.cfg.Speed)
		b.actor.SetInvulnerable(true)
		b.actor.AnimateScale(b.cfg.ScaleMultiplier, b.cfg.ScaleRampDuration)
	} else {
		log.Printf("[BoostCoordinator] WARNING: no actor, speed and scale effects skipped")
	}

	if b.director != nil {
		b.director.SetBoostMode(true)
	} else {
		log.Printf("[BoostCoordinator] WARNING: no spawn director, cadence change skipped")
	}

	b.timer.Start(b.cfg.Duration)
	b.phase = BoostActive
	log.Printf("[BoostCoordinator] Boost activated for %.1fs (speed %.2f -> %.2f)", b.cfg.Duration, b.cachedSpeed, b.cfg.Speed)
	b.notify()
}

// Update 推进加速计时，到时后恢复所有效果
func (b *BoostCoordinator) Update(deltaTime float64) {
	if b.phase != BoostActive {
		return
	}
	if b.timer.Advance(deltaTime) {
		b.deactivate()
	}
}

func (b *BoostCoordinator) deactivate() {
	if b.actor != nil {
		b.actor.SetSpeed(b.cachedSpeed)
		b.actor.SetInvulnerable(false)
		b.actor.AnimateScale(1.0, b.cfg.ScaleRampDuration)
	} else {
		log.Printf("[BoostCoordinator] WARNING: no actor, restore skipped")
	}

	if b.director != nil {
		b.director.SetBoostMode(false)
	}
	if b.gauge != nil {
		b.gauge.LockAccumulation(false)
	}

	b.phase = BoostIdle
	log.Printf("[BoostCoordinator] Boost ended, speed restored to %.2f", b.cachedSpeed)
	b.notify()
}

func (b *BoostCoordinator) notify() {
	for _, fn := range b.listeners {
		fn(b.phase)
	}
}

// IsActive 是否处于加速中
func (b *BoostCoordinator) IsActive() bool {
	return b.phase == BoostActive
}

// Phase 当前状态
func (b *BoostCoordinator) Phase() BoostPhase {
	return b.phase
}

// Remaining 加速剩余时间（秒），未加速时为 0
func (b *BoostCoordinator) Remaining() float64 {
	if b.phase != BoostActive {
		return 0
	}
	return b.timer.Remaining()
}

// Gauge 返回燃料槽（可能为 nil）
func (b *BoostCoordinator) Gauge() Gauge {
	return b.gauge
}
