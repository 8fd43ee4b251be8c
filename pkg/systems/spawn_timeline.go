package systems

import (
	"log"
	"math"

	"github.com/decker502/turborun/pkg/components"
	"github.com/decker502/turborun/pkg/config"
	"github.com/decker502/turborun/pkg/game"
	"github.com/decker502/turborun/pkg/types"
)

// SpawnTimeline 按会话时间推进障碍物解锁和生成间隔
//
// 阶段解锁后不会再锁回；没有变体的阶段不会被标记为解锁，
// 直到目录中出现变体后的第一次 Advance。
// 生成间隔只在检查点处减小，且始终位于 [minimumInterval, initialInterval]。
type SpawnTimeline struct {
	catalog *game.ObstacleCatalog
	cfg     config.ObstacleConfig

	elapsed        float64
	interval       float64
	nextCheckpoint float64

	unlocked map[types.ObstacleTier]bool
	active   []types.VariantID
}

// NewSpawnTimeline 创建时间线，开局阶段立即解锁
func NewSpawnTimeline(catalog *game.ObstacleCatalog, cfg config.ObstacleConfig) *SpawnTimeline {
	t := &SpawnTimeline{
		catalog:        catalog,
		cfg:            cfg,
		interval:       cfg.InitialInterval,
		nextCheckpoint: cfg.IncreasePeriod,
		unlocked:       make(map[types.ObstacleTier]bool, len(types.AllTiers)),
	}
	t.checkUnlocks()

	log.Printf("[SpawnTimeline] Initialized: interval=%.2fs (min %.2fs, -%.2fs every %.0fs), unlocks mid=%.0fs late=%.0fs",
		cfg.InitialInterval, cfg.MinimumInterval, cfg.DecreaseStep, cfg.IncreasePeriod, cfg.MidUnlockTime, cfg.LateUnlockTime)
	return t
}

// Advance 推进会话时间，返回本次新解锁的阶段
func (t *SpawnTimeline) Advance(dt float64) []types.ObstacleTier {
	if dt < 0 {
		dt = 0
	}
	t.elapsed += dt

	newly := t.checkUnlocks()

	// 检查点之后的下一次检查点相对当前时间计算
	if components.TimeReached(t.elapsed, t.nextCheckpoint) && t.interval > t.cfg.MinimumInterval {
		t.interval = math.Max(t.interval-t.cfg.DecreaseStep, t.cfg.MinimumInterval)
		t.nextCheckpoint = t.elapsed + t.cfg.IncreasePeriod
		log.Printf("[SpawnTimeline] Checkpoint at %.2fs: obstacle interval -> %.2fs (next check %.2fs)",
			t.elapsed, t.interval, t.nextCheckpoint)
	}

	return newly
}

func (t *SpawnTimeline) checkUnlocks() []types.ObstacleTier {
	var newly []types.ObstacleTier
	for _, tier := range types.AllTiers {
		if t.unlocked[tier] || !components.TimeReached(t.elapsed, t.unlockTime(tier)) {
			continue
		}
		variants := t.catalog.Variants(tier)
		if len(variants) == 0 {
			continue
		}
		t.unlocked[tier] = true
		t.active = append(t.active, variants...)
		newly = append(newly, tier)
		log.Printf("[SpawnTimeline] %s tier unlocked at %.2fs (%d variants, %d active)",
			tier, t.elapsed, len(variants), len(t.active))
	}
	return newly
}

func (t *SpawnTimeline) unlockTime(tier types.ObstacleTier) float64 {
	switch tier {
	case types.TierMid:
		return t.cfg.MidUnlockTime
	case types.TierLate:
		return t.cfg.LateUnlockTime
	default:
		return 0
	}
}

// ActiveVariants 返回当前可生成的障碍物变体（按解锁顺序）
func (t *SpawnTimeline) ActiveVariants() []types.VariantID {
	out := make([]types.VariantID, len(t.active))
	copy(out, t.active)
	return out
}

// HasActiveVariants 是否存在可生成的障碍物
func (t *SpawnTimeline) HasActiveVariants() bool {
	return len(t.active) > 0
}

// IsUnlocked 返回阶段是否已解锁
func (t *SpawnTimeline) IsUnlocked(tier types.ObstacleTier) bool {
	return t.unlocked[tier]
}

// CurrentInterval 当前障碍物生成间隔（秒）
func (t *SpawnTimeline) CurrentInterval() float64 {
	return t.interval
}

// NextCheckpoint 下一次检查点的会话时间（秒）
func (t *SpawnTimeline) NextCheckpoint() float64 {
	return t.nextCheckpoint
}

// Elapsed 会话已进行的时间（秒）
func (t *SpawnTimeline) Elapsed() float64 {
	return t.elapsed
}
