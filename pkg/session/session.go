// Package session 把跑酷的各个系统组装成一局可推进的游戏
//
// Session 是唯一的驱动者：桌面端、移动端和无界面模拟器都通过它推进时间。
// 它持有加速协调器、燃料槽和单局状态，并把玩家接触事件分派给对应的协作方。
package session

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/decker502/turborun/pkg/components"
	"github.com/decker502/turborun/pkg/config"
	"github.com/decker502/turborun/pkg/ecs"
	"github.com/decker502/turborun/pkg/entities"
	"github.com/decker502/turborun/pkg/game"
	"github.com/decker502/turborun/pkg/systems"
	"github.com/decker502/turborun/pkg/types"
)

// Options 会话启动选项
type Options struct {
	// Seed 随机种子，0 表示使用当前时间
	Seed int64
}

// TickReport 单次 Tick 发生的事件
type TickReport struct {
	Spawn         systems.SpawnReport
	Contacts      []systems.Contact
	UnlockedTiers []types.ObstacleTier

	BoostStarted bool
	BoostEnded   bool
	GameOver     bool // 本次 Tick 进入游戏结束
}

// Session 一局跑酷
type Session struct {
	cfg  *config.RunnerConfig
	seed int64

	em       *ecs.EntityManager
	registry *game.VariantRegistry
	catalog  *game.ObstacleCatalog

	timeline  *systems.SpawnTimeline
	director  *systems.SpawnDirectorSystem
	player    *systems.PlayerSystem
	boost     *systems.BoostCoordinator
	scroll    *systems.ScrollSystem
	scaleRamp *systems.ScaleRampSystem
	collision *systems.CollisionSystem

	gauge *game.FuelGauge
	state *game.RunState

	elapsed        float64
	boostRequested bool

	// 当前 Tick 的事件收集
	report *TickReport
}

// New 按配置组装一局游戏
// 配置中引用了未注册的变体时返回错误
func New(cfg *config.RunnerConfig, opts Options) (*Session, error) {
	if cfg == nil {
		cfg = config.DefaultRunnerConfig()
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	registry, err := game.NewVariantRegistryFromConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to build variant registry: %w", err)
	}
	catalog, err := game.BuildObstacleCatalog(cfg, registry)
	if err != nil {
		return nil, fmt.Errorf("failed to build obstacle catalog: %w", err)
	}
	variants, err := resolveSpawnVariants(cfg, registry)
	if err != nil {
		return nil, err
	}

	s := &Session{
		cfg:      cfg,
		seed:     seed,
		em:       ecs.NewEntityManager(),
		registry: registry,
		catalog:  catalog,
		gauge:    game.NewFuelGauge(cfg.Fuel.MaxTanks),
		state:    game.NewRunState(cfg.Player.Health),
	}

	factory := entities.NewPoolEntityFactory(s.em, registry, cfg.Scroll)
	s.timeline = systems.NewSpawnTimeline(catalog, cfg.Obstacles)
	s.director = systems.NewSpawnDirectorSystem(s.em, factory, s.timeline, catalog, variants, cfg, rand.New(rand.NewSource(seed)))

	playerID := entities.NewPlayerEntity(s.em, cfg.Player)
	s.player = systems.NewPlayerSystem(s.em, playerID, cfg.Player)

	s.boost = systems.NewBoostCoordinator(cfg.Boost, s.player, s.gauge, s.director)
	s.boost.OnPhaseChange(s.onBoostPhase)

	s.scroll = systems.NewScrollSystem(s.em, s.boost, cfg.Boost.ScrollMultiplier)
	s.scaleRamp = systems.NewScaleRampSystem(s.em)

	spaceCfg := systems.DefaultCollisionSpaceConfig(cfg.Field.SpawnX, cfg.Field.OffFieldX, config.PixelsPerUnit)
	s.collision = systems.NewCollisionSystem(s.em, playerID, s, spaceCfg)

	log.Printf("[Session] Started: seed=%d, %d variants, %d obstacle variants", seed, registry.Len(), catalog.Total())
	return s, nil
}

func resolveSpawnVariants(cfg *config.RunnerConfig, registry *game.VariantRegistry) (systems.SpawnVariants, error) {
	variants := systems.SpawnVariants{PowerUp: types.NoVariant}

	var err error
	if variants.CommonDecorations, err = registry.MustLookupAll(cfg.Decorations.Common); err != nil {
		return variants, fmt.Errorf("common decorations: %w", err)
	}
	if variants.RareDecorations, err = registry.MustLookupAll(cfg.Decorations.Rare); err != nil {
		return variants, fmt.Errorf("rare decorations: %w", err)
	}
	if cfg.PowerUp.Variant != "" {
		id, ok := registry.Lookup(cfg.PowerUp.Variant)
		if !ok {
			return variants, fmt.Errorf("power-up variant %q is not registered", cfg.PowerUp.Variant)
		}
		variants.PowerUp = id
	}
	return variants, nil
}

// SetInput 设置玩家方向输入
func (s *Session) SetInput(x, y float64) {
	s.player.SetInput(x, y)
}

// RequestBoost 请求触发加速，在下一次 Tick 中处理
// 燃料未满或已在加速时请求被忽略
func (s *Session) RequestBoost() {
	s.boostRequested = true
}

// Tick 推进一帧
// 游戏结束后不再推进
func (s *Session) Tick(deltaTime float64) TickReport {
	report := TickReport{}
	if s.state.IsGameOver() || deltaTime <= 0 {
		s.boostRequested = false
		return report
	}
	s.report = &report
	defer func() { s.report = nil }()

	s.elapsed += deltaTime

	s.boost.Update(deltaTime)
	if s.boostRequested {
		s.boostRequested = false
		s.boost.TryActivate()
	}

	report.UnlockedTiers = s.timeline.Advance(deltaTime)
	report.Spawn = s.director.Update(deltaTime)

	s.scroll.Update(deltaTime)
	report.Contacts = s.collision.Update(deltaTime)
	s.scaleRamp.Update(deltaTime)
	s.player.Update(deltaTime)

	return report
}

// OnPlayerContact 实现 systems.CollisionHandler
func (s *Session) OnPlayerContact(id ecs.EntityID, category types.PoolCategory) {
	pickup, ok := ecs.GetComponent[*components.PickupComponent](s.em, id)
	if !ok {
		log.Printf("[Session] WARNING: entity %d has no pickup component", id)
		s.director.Return(id)
		return
	}

	switch category {
	case types.CategoryDecoration:
		s.state.AddPoints(pickup.PointValue)

	case types.CategoryObstacle:
		if s.player.TakeDamage() {
			health := s.state.TakeDamage(pickup.Damage)
			log.Printf("[Session] Hit by %s, health=%d", s.variantName(id), health)
			if s.state.IsGameOver() && s.report != nil {
				s.report.GameOver = true
			}
		}

	case types.CategoryPowerUp:
		accepted := false
		for i := 0; i < max(1, pickup.FuelTanks); i++ {
			if s.gauge.AddFuel() {
				accepted = true
			}
		}
		if accepted {
			s.player.IncreaseSpeed()
		}
	}

	s.director.Return(id)
}

func (s *Session) onBoostPhase(phase systems.BoostPhase) {
	if s.report == nil {
		return
	}
	switch phase {
	case systems.BoostActive:
		s.report.BoostStarted = true
	case systems.BoostIdle:
		s.report.BoostEnded = true
	}
}

func (s *Session) variantName(id ecs.EntityID) string {
	if member, ok := ecs.GetComponent[*components.PoolMemberComponent](s.em, id); ok {
		return s.registry.Name(member.Variant)
	}
	return "<unknown>"
}

// Config 会话使用的配置
func (s *Session) Config() *config.RunnerConfig {
	return s.cfg
}

// Seed 会话使用的随机种子
func (s *Session) Seed() int64 {
	return s.seed
}

// Elapsed 会话开始以来经过的时间（秒）
func (s *Session) Elapsed() float64 {
	return s.elapsed
}

// EntityManager 返回实体管理器（渲染层只读）
func (s *Session) EntityManager() *ecs.EntityManager {
	return s.em
}

// Registry 返回变体注册表
func (s *Session) Registry() *game.VariantRegistry {
	return s.registry
}

// Timeline 返回障碍物时间线
func (s *Session) Timeline() *systems.SpawnTimeline {
	return s.timeline
}

// Director 返回生成调度系统
func (s *Session) Director() *systems.SpawnDirectorSystem {
	return s.director
}

// Player 返回玩家系统
func (s *Session) Player() *systems.PlayerSystem {
	return s.player
}

// Boost 返回加速协调器
func (s *Session) Boost() *systems.BoostCoordinator {
	return s.boost
}

// Gauge 返回燃料槽
func (s *Session) Gauge() *game.FuelGauge {
	return s.gauge
}

// State 返回单局状态
func (s *Session) State() *game.RunState {
	return s.state
}
