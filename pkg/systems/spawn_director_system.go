package systems

import (
	"log"
	"math/rand"
	"time"

	"github.com/decker502/turborun/pkg/components"
	"github.com/decker502/turborun/pkg/config"
	"github.com/decker502/turborun/pkg/ecs"
	"github.com/decker502/turborun/pkg/entities"
	"github.com/decker502/turborun/pkg/game"
	"github.com/decker502/turborun/pkg/pool"
	"github.com/decker502/turborun/pkg/types"
	"github.com/decker502/turborun/pkg/utils"
)

// EntityPool 以分类为键、实体 ID 为实例的对象池
type EntityPool = pool.RecyclablePool[types.PoolCategory, ecs.EntityID]

// SpawnVariants 装饰物和道具使用的变体
type SpawnVariants struct {
	CommonDecorations []types.VariantID
	RareDecorations   []types.VariantID
	PowerUp           types.VariantID // NoVariant 表示不生成道具
}

// SpawnReport 单次 Update 的生成结果
// 未生成的分类为 ecs.InvalidEntity
type SpawnReport struct {
	Decoration ecs.EntityID
	Obstacle   ecs.EntityID
	PowerUp    ecs.EntityID
	Reclaimed  int // 本次因离开画面而回收的实体数
}

// SpawnDirectorSystem 每帧决定生成什么、生成在哪里
//
// 三类实体各自独立计时：
//   - 装饰物：固定间隔，加速期间减半
//   - 障碍物：间隔由 SpawnTimeline 决定，只在有已解锁变体时生成
//   - 道具：固定间隔，不随时间和加速变化
//
// 所有实体都来自同一个按分类划分的对象池，离开画面或被玩家碰到后归还。
type SpawnDirectorSystem struct {
	em       *ecs.EntityManager
	pool     *EntityPool
	factory  entities.EntityFactory
	timeline *SpawnTimeline
	catalog  *game.ObstacleCatalog
	variants SpawnVariants
	rng      *rand.Rand

	field       config.FieldConfig
	poolCfg     config.PoolConfig
	decorations config.DecorationConfig
	obstacles   config.ObstacleConfig
	powerUp     config.PowerUpConfig

	decorationTimer float64
	obstacleTimer   float64
	powerUpTimer    float64

	// 加速期间 decorationInterval 为 baseDecorationInterval 的一半
	decorationInterval     float64
	baseDecorationInterval float64
	boostMode              bool

	lastVariant types.VariantID
	prewarmed   map[types.ObstacleTier]bool
}

// NewSpawnDirectorSystem 创建生成调度系统并预热对象池
// 参数:
//   - em: EntityManager 实例
//   - factory: 实体工厂（对象池按需分配时调用）
//   - timeline: 障碍物时间线
//   - catalog: 障碍物目录（阶段解锁时按阶段预热）
//   - variants: 装饰物和道具变体
//   - cfg: 跑酷配置
//   - rng: 随机源，为 nil 时使用当前时间作为种子
func NewSpawnDirectorSystem(
	em *ecs.EntityManager,
	factory entities.EntityFactory,
	timeline *SpawnTimeline,
	catalog *game.ObstacleCatalog,
	variants SpawnVariants,
	cfg *config.RunnerConfig,
	rng *rand.Rand,
) *SpawnDirectorSystem {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	d := &SpawnDirectorSystem{
		em:                     em,
		factory:                factory,
		timeline:               timeline,
		catalog:                catalog,
		variants:               variants,
		rng:                    rng,
		field:                  cfg.Field,
		poolCfg:                cfg.Pool,
		decorations:            cfg.Decorations,
		obstacles:              cfg.Obstacles,
		powerUp:                cfg.PowerUp,
		decorationInterval:     cfg.Decorations.SpawnInterval,
		baseDecorationInterval: cfg.Decorations.SpawnInterval,
		lastVariant:            types.NoVariant,
		prewarmed:              make(map[types.ObstacleTier]bool, len(types.AllTiers)),
	}

	d.pool = pool.New[types.PoolCategory, ecs.EntityID]("SpawnDirectorSystem", d.allocate,
		pool.WithHooks[types.PoolCategory, ecs.EntityID](pool.Hooks[ecs.EntityID]{
			Reset:      func(id ecs.EntityID) { entities.ResetPoolEntity(em, id) },
			Activate:   func(id ecs.EntityID) { entities.ActivatePoolEntity(em, id) },
			Deactivate: func(id ecs.EntityID) { entities.DeactivatePoolEntity(em, id) },
		}),
		pool.WithOrdering[types.PoolCategory, ecs.EntityID](func(a, b ecs.EntityID) bool { return a < b }),
	)

	d.prewarmDecorations()
	d.prewarmPowerUps()
	d.prewarmUnlockedTiers()

	log.Printf("[SpawnDirectorSystem] Initialized: decoration every %.2fs, power-up every %.2fs, %d entities pooled",
		d.decorationInterval, d.powerUp.SpawnInterval, d.pool.Stats().Allocated)
	return d
}

// Update 执行一帧的回收和生成
func (d *SpawnDirectorSystem) Update(deltaTime float64) SpawnReport {
	report := SpawnReport{}

	report.Reclaimed = d.reclaimOffField()
	d.prewarmUnlockedTiers()

	// 装饰物
	d.decorationTimer += deltaTime
	if components.TimeReached(d.decorationTimer, d.decorationInterval) {
		d.decorationTimer = 0
		report.Decoration = d.spawnDecoration()
	}

	// 障碍物：没有已解锁变体时不计时
	if active := d.timeline.ActiveVariants(); len(active) > 0 {
		d.obstacleTimer += deltaTime
		if components.TimeReached(d.obstacleTimer, d.timeline.CurrentInterval()) {
			d.obstacleTimer = 0
			report.Obstacle = d.spawnObstacle(active)
		}
	}

	// 道具
	if d.variants.PowerUp != types.NoVariant {
		d.powerUpTimer += deltaTime
		if components.TimeReached(d.powerUpTimer, d.powerUp.SpawnInterval) {
			d.powerUpTimer = 0
			report.PowerUp = d.spawnPowerUp()
		}
	}

	return report
}

// allocate 对象池的默认分配器
func (d *SpawnDirectorSystem) allocate(category types.PoolCategory) ecs.EntityID {
	switch category {
	case types.CategoryDecoration:
		return d.factory.Create(d.pickDecorationVariant())
	case types.CategoryObstacle:
		return d.factory.Create(d.pickMissVariant(d.timeline.ActiveVariants()))
	case types.CategoryPowerUp:
		return d.factory.Create(d.variants.PowerUp)
	default:
		log.Printf("[SpawnDirectorSystem] WARNING: no allocator for category %v", category)
		return ecs.InvalidEntity
	}
}

func (d *SpawnDirectorSystem) prewarm(category types.PoolCategory, variant types.VariantID) bool {
	id := d.factory.Create(variant)
	if id == ecs.InvalidEntity {
		return false
	}
	entities.DeactivatePoolEntity(d.em, id)
	d.pool.Prewarm(category, id)
	return true
}

func (d *SpawnDirectorSystem) prewarmDecorations() {
	for i := 0; i < d.poolCfg.DecorationSize; i++ {
		if !d.prewarm(types.CategoryDecoration, d.pickDecorationVariant()) {
			break
		}
	}
}

func (d *SpawnDirectorSystem) prewarmPowerUps() {
	if d.variants.PowerUp == types.NoVariant {
		return
	}
	for i := 0; i < d.poolCfg.PowerUpSize; i++ {
		if !d.prewarm(types.CategoryPowerUp, d.variants.PowerUp) {
			break
		}
	}
}

// prewarmUnlockedTiers 为新解锁的阶段预热障碍物
// 每个变体 max(2, poolSize/变体数) 个，单个阶段总数不超过 poolSize
func (d *SpawnDirectorSystem) prewarmUnlockedTiers() {
	for _, tier := range types.AllTiers {
		if d.prewarmed[tier] || !d.timeline.IsUnlocked(tier) {
			continue
		}
		d.prewarmed[tier] = true

		variants := d.catalog.Variants(tier)
		if len(variants) == 0 {
			continue
		}
		perVariant := max(2, d.poolCfg.ObstacleSize/len(variants))

		created := 0
		for _, variant := range variants {
			for i := 0; i < perVariant && created < d.poolCfg.ObstacleSize; i++ {
				if d.prewarm(types.CategoryObstacle, variant) {
					created++
				}
			}
		}
		log.Printf("[SpawnDirectorSystem] Prewarmed %d %s obstacles (%d per variant)", created, tier, perVariant)
	}
}

// reclaimOffField 回收所有越过离场边界的活跃实体
func (d *SpawnDirectorSystem) reclaimOffField() int {
	reclaimed := 0
	for _, id := range d.pool.Active() {
		pos, ok := ecs.GetComponent[*components.PositionComponent](d.em, id)
		if !ok {
			continue
		}
		if pos.X <= d.field.OffFieldX && d.pool.Release(id) {
			reclaimed++
		}
	}
	return reclaimed
}

func (d *SpawnDirectorSystem) spawnDecoration() ecs.EntityID {
	x := d.field.SpawnX
	y := utils.RandRange(d.rng, d.field.DecorationMinY, d.field.DecorationMaxY)
	return d.acquire(types.CategoryDecoration, nil, nil, x, y)
}

func (d *SpawnDirectorSystem) spawnPowerUp() ecs.EntityID {
	x := d.field.SpawnX
	y := utils.RandRange(d.rng, d.powerUp.MinY, d.powerUp.MaxY)
	id := d.acquire(types.CategoryPowerUp, nil, nil, x, y)
	if id != ecs.InvalidEntity {
		log.Printf("[SpawnDirectorSystem] Power-up %d spawned at (%.2f, %.2f)", id, x, y)
	}
	return id
}

func (d *SpawnDirectorSystem) spawnObstacle(active []types.VariantID) ecs.EntityID {
	// 高低两条车道各 50%，再加少量随机偏移
	laneY := d.obstacles.LowLaneY
	if d.rng.Float64() > 0.5 {
		laneY = d.obstacles.HighLaneY
	}
	y := laneY + utils.RandRange(d.rng, -d.obstacles.LaneVariance, d.obstacles.LaneVariance)

	alloc := func() ecs.EntityID {
		return d.factory.Create(d.pickMissVariant(active))
	}
	id := d.acquire(types.CategoryObstacle, d.selectObstacle, alloc, d.field.SpawnX, y)
	if id == ecs.InvalidEntity {
		return id
	}

	if member, ok := ecs.GetComponent[*components.PoolMemberComponent](d.em, id); ok {
		d.lastVariant = member.Variant
	}
	return id
}

func (d *SpawnDirectorSystem) acquire(category types.PoolCategory, sel pool.Selector[ecs.EntityID], alloc func() ecs.EntityID, x, y float64) ecs.EntityID {
	return d.pool.AcquireWith(category, sel, alloc, func(id ecs.EntityID) {
		entities.PlacePoolEntity(d.em, id, x, y)
	})
}

// selectObstacle 防重复挑选
//
// 队头变体与上一次相同且队列中剩余超过 antiRepeatMinQueue 个时，
// 把它放回队尾重新取，最多 antiRepeatRetries 次；仍未找到则接受重复。
func (d *SpawnDirectorSystem) selectObstacle(q *pool.FreeQueue[ecs.EntityID]) (ecs.EntityID, bool) {
	id, ok := q.Pop()
	for attempt := 0; ok && attempt < d.obstacles.AntiRepeatRetries; attempt++ {
		if d.lastVariant == types.NoVariant || d.variantOf(id) != d.lastVariant {
			break
		}
		if q.Len() <= d.obstacles.AntiRepeatMinQueue {
			break
		}
		q.Push(id)
		id, ok = q.Pop()
	}
	return id, ok
}

// pickMissVariant 对象池为空时选择要新建的障碍物变体
// 多于一个可选变体时尽量避开上一次的变体
func (d *SpawnDirectorSystem) pickMissVariant(active []types.VariantID) types.VariantID {
	if len(active) == 0 {
		return types.NoVariant
	}
	v := active[d.rng.Intn(len(active))]
	if len(active) > 1 && d.lastVariant != types.NoVariant {
		for attempt := 0; attempt < d.obstacles.AntiRepeatRetries && v == d.lastVariant; attempt++ {
			v = active[d.rng.Intn(len(active))]
		}
	}
	return v
}

// pickDecorationVariant 按权重选择普通或稀有装饰物
func (d *SpawnDirectorSystem) pickDecorationVariant() types.VariantID {
	common, rare := d.variants.CommonDecorations, d.variants.RareDecorations
	roll := d.rng.Float64()
	if len(common) > 0 && (len(rare) == 0 || roll < d.decorations.CommonWeight) {
		return common[d.rng.Intn(len(common))]
	}
	if len(rare) > 0 {
		return rare[d.rng.Intn(len(rare))]
	}
	return types.NoVariant
}

func (d *SpawnDirectorSystem) variantOf(id ecs.EntityID) types.VariantID {
	if member, ok := ecs.GetComponent[*components.PoolMemberComponent](d.em, id); ok {
		return member.Variant
	}
	return types.NoVariant
}

// Return 归还实体（碰撞路径）
// 重复归还是无操作，返回 false
func (d *SpawnDirectorSystem) Return(id ecs.EntityID) bool {
	return d.pool.Release(id)
}

// SetBoostMode 加速期间装饰物生成间隔减半，结束后精确恢复
func (d *SpawnDirectorSystem) SetBoostMode(enabled bool) {
	if enabled == d.boostMode {
		return
	}
	d.boostMode = enabled
	if enabled {
		d.baseDecorationInterval = d.decorationInterval
		d.decorationInterval = d.baseDecorationInterval / 2
	} else {
		d.decorationInterval = d.baseDecorationInterval
	}
	log.Printf("[SpawnDirectorSystem] Boost mode %v: decoration interval %.2fs", enabled, d.decorationInterval)
}

// IsBoostMode 是否处于加速生成模式
func (d *SpawnDirectorSystem) IsBoostMode() bool {
	return d.boostMode
}

// DecorationInterval 当前装饰物生成间隔（秒）
func (d *SpawnDirectorSystem) DecorationInterval() float64 {
	return d.decorationInterval
}

// LastVariant 上一次实际生成的障碍物变体
func (d *SpawnDirectorSystem) LastVariant() types.VariantID {
	return d.lastVariant
}

// ActiveEntities 当前活跃的池化实体（按 ID 升序）
func (d *SpawnDirectorSystem) ActiveEntities() []ecs.EntityID {
	return d.pool.Active()
}

// IsActive 实体是否处于活跃集合
func (d *SpawnDirectorSystem) IsActive(id ecs.EntityID) bool {
	return d.pool.IsActive(id)
}

// FreeLen 指定分类空闲队列的长度
func (d *SpawnDirectorSystem) FreeLen(category types.PoolCategory) int {
	return d.pool.FreeLen(category)
}

// Stats 对象池统计
func (d *SpawnDirectorSystem) Stats() pool.Stats {
	return d.pool.Stats()
}
