package systems

import (
	"math/rand"
	"testing"

	"github.com/decker502/turborun/pkg/config"
	"github.com/decker502/turborun/pkg/ecs"
	"github.com/decker502/turborun/pkg/entities"
	"github.com/decker502/turborun/pkg/game"
	"github.com/decker502/turborun/pkg/types"
)

// testWorld 测试用的完整生成环境
type testWorld struct {
	em       *ecs.EntityManager
	cfg      *config.RunnerConfig
	registry *game.VariantRegistry
	catalog  *game.ObstacleCatalog
	timeline *SpawnTimeline
	factory  *entities.PoolEntityFactory
	director *SpawnDirectorSystem
}

// newTestWorld 使用默认配置（可通过 mutate 修改）构建生成环境
// 随机源固定种子，保证结果可复现
func newTestWorld(t *testing.T, mutate func(cfg *config.RunnerConfig)) *testWorld {
	t.Helper()

	cfg := config.DefaultRunnerConfig()
	if mutate != nil {
		mutate(cfg)
	}

	registry, err := game.NewVariantRegistryFromConfig(cfg)
	if err != nil {
		t.Fatalf("registry: %v", err)
	}
	catalog, err := game.BuildObstacleCatalog(cfg, registry)
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}

	em := ecs.NewEntityManager()
	factory := entities.NewPoolEntityFactory(em, registry, cfg.Scroll)
	timeline := NewSpawnTimeline(catalog, cfg.Obstacles)

	variants := SpawnVariants{PowerUp: types.NoVariant}
	if variants.CommonDecorations, err = registry.MustLookupAll(cfg.Decorations.Common); err != nil {
		t.Fatalf("common decorations: %v", err)
	}
	if variants.RareDecorations, err = registry.MustLookupAll(cfg.Decorations.Rare); err != nil {
		t.Fatalf("rare decorations: %v", err)
	}
	if cfg.PowerUp.Variant != "" {
		id, ok := registry.Lookup(cfg.PowerUp.Variant)
		if !ok {
			t.Fatalf("power-up variant %q not registered", cfg.PowerUp.Variant)
		}
		variants.PowerUp = id
	}

	director := NewSpawnDirectorSystem(em, factory, timeline, catalog, variants, cfg, rand.New(rand.NewSource(1)))

	return &testWorld{
		em:       em,
		cfg:      cfg,
		registry: registry,
		catalog:  catalog,
		timeline: timeline,
		factory:  factory,
		director: director,
	}
}

// step 按会话的顺序推进时间线和生成调度
func (w *testWorld) step(dt float64) SpawnReport {
	w.timeline.Advance(dt)
	return w.director.Update(dt)
}

// variant 按名称取变体 ID
func (w *testWorld) variant(t *testing.T, name string) types.VariantID {
	t.Helper()
	id, ok := w.registry.Lookup(name)
	if !ok {
		t.Fatalf("variant %q not registered", name)
	}
	return id
}
