package systems

import (
	"math"
	"math/rand"
	"testing"

	"github.com/decker502/turborun/pkg/config"
	"github.com/decker502/turborun/pkg/game"
	"github.com/decker502/turborun/pkg/types"
)

func newTestTimeline(early, mid, late []types.VariantID) (*SpawnTimeline, *game.ObstacleCatalog) {
	catalog := game.NewObstacleCatalog()
	for _, id := range early {
		catalog.Add(types.TierEarly, id)
	}
	for _, id := range mid {
		catalog.Add(types.TierMid, id)
	}
	for _, id := range late {
		catalog.Add(types.TierLate, id)
	}
	return NewSpawnTimeline(catalog, config.DefaultRunnerConfig().Obstacles), catalog
}

// TestSpawnTimeline_SingleEarlyVariant 开局只有一个早期变体
func TestSpawnTimeline_SingleEarlyVariant(t *testing.T) {
	timeline, _ := newTestTimeline([]types.VariantID{1}, nil, nil)

	if got := timeline.CurrentInterval(); got != 3.0 {
		t.Errorf("initial interval = %v, want 3.0", got)
	}
	if !timeline.IsUnlocked(types.TierEarly) {
		t.Error("early tier should be unlocked at start")
	}

	for i := 0; i < 120; i++ {
		timeline.Advance(1)
		active := timeline.ActiveVariants()
		if len(active) != 1 || active[0] != 1 {
			t.Fatalf("at %.0fs active = %v, want [1]", timeline.Elapsed(), active)
		}
	}
}

// TestSpawnTimeline_MidUnlock 中期阶段在 25 秒解锁
func TestSpawnTimeline_MidUnlock(t *testing.T) {
	timeline, _ := newTestTimeline([]types.VariantID{1}, []types.VariantID{2, 3}, []types.VariantID{4})

	if newly := timeline.Advance(24.5); len(newly) != 0 {
		t.Errorf("unexpected unlock before 25s: %v", newly)
	}
	if timeline.IsUnlocked(types.TierMid) {
		t.Fatal("mid tier unlocked too early")
	}

	newly := timeline.Advance(0.5)
	if len(newly) != 1 || newly[0] != types.TierMid {
		t.Fatalf("Advance to 25s returned %v, want [Mid]", newly)
	}
	want := []types.VariantID{1, 2, 3}
	active := timeline.ActiveVariants()
	if len(active) != len(want) {
		t.Fatalf("active = %v, want %v", active, want)
	}
	for i := range want {
		if active[i] != want[i] {
			t.Errorf("active[%d] = %d, want %d", i, active[i], want[i])
		}
	}

	// 解锁只发生一次
	if newly := timeline.Advance(1); len(newly) != 0 {
		t.Errorf("mid tier reported again: %v", newly)
	}

	timeline.Advance(24)
	if !timeline.IsUnlocked(types.TierLate) || len(timeline.ActiveVariants()) != 4 {
		t.Errorf("late tier should be unlocked at 50s, active=%v", timeline.ActiveVariants())
	}
}

// TestSpawnTimeline_IntervalDecay 检查点逐步缩短间隔并在下限处停止
func TestSpawnTimeline_IntervalDecay(t *testing.T) {
	timeline, _ := newTestTimeline([]types.VariantID{1}, nil, nil)

	tests := []struct {
		untilSeconds int
		want         float64
	}{
		{untilSeconds: 39, want: 3.0},
		{untilSeconds: 40, want: 2.8},
		{untilSeconds: 200, want: 2.0},
		{untilSeconds: 400, want: 1.0},
		{untilSeconds: 1000, want: 1.0},
	}

	elapsed := 0
	for _, tt := range tests {
		for elapsed < tt.untilSeconds {
			timeline.Advance(1)
			elapsed++
		}
		if got := timeline.CurrentInterval(); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("interval at %ds = %v, want %v", tt.untilSeconds, got, tt.want)
		}
	}

	if got := timeline.CurrentInterval(); got < 1.0 {
		t.Errorf("interval fell below minimum: %v", got)
	}
}

// TestSpawnTimeline_CheckpointRelative 下一次检查点相对触发时刻计算
func TestSpawnTimeline_CheckpointRelative(t *testing.T) {
	timeline, _ := newTestTimeline([]types.VariantID{1}, nil, nil)

	if timeline.NextCheckpoint() != 40 {
		t.Fatalf("first checkpoint = %v, want 40", timeline.NextCheckpoint())
	}
	timeline.Advance(41)
	if timeline.NextCheckpoint() != 81 {
		t.Errorf("next checkpoint = %v, want 81", timeline.NextCheckpoint())
	}
}

// TestSpawnTimeline_EmptyTierNotLatched 空阶段在补充变体后的下一次推进解锁
func TestSpawnTimeline_EmptyTierNotLatched(t *testing.T) {
	timeline, catalog := newTestTimeline([]types.VariantID{1}, nil, nil)

	timeline.Advance(30)
	if timeline.IsUnlocked(types.TierMid) {
		t.Fatal("empty mid tier must not be unlocked")
	}

	catalog.Add(types.TierMid, 7)
	newly := timeline.Advance(0.1)
	if len(newly) != 1 || newly[0] != types.TierMid {
		t.Fatalf("expected mid unlock after population, got %v", newly)
	}
}

// TestSpawnTimeline_EmptyCatalog 没有任何障碍物时不生成也不报错
func TestSpawnTimeline_EmptyCatalog(t *testing.T) {
	timeline, _ := newTestTimeline(nil, nil, nil)
	timeline.Advance(100)
	if timeline.HasActiveVariants() {
		t.Errorf("expected no active variants, got %v", timeline.ActiveVariants())
	}
}

// TestSpawnTimeline_Invariants 随机步长下解锁单调、间隔有界
func TestSpawnTimeline_Invariants(t *testing.T) {
	timeline, _ := newTestTimeline([]types.VariantID{1}, []types.VariantID{2}, []types.VariantID{3})
	rng := rand.New(rand.NewSource(42))

	prev := timeline.ActiveVariants()
	for i := 0; i < 2000; i++ {
		timeline.Advance(rng.Float64() * 0.5)

		active := timeline.ActiveVariants()
		if len(active) < len(prev) {
			t.Fatalf("active set shrank at %.2fs: %v -> %v", timeline.Elapsed(), prev, active)
		}
		for j := range prev {
			if active[j] != prev[j] {
				t.Fatalf("active set changed order at %.2fs: %v -> %v", timeline.Elapsed(), prev, active)
			}
		}
		prev = active

		interval := timeline.CurrentInterval()
		if interval < 1.0 || interval > 3.0 {
			t.Fatalf("interval %v out of bounds at %.2fs", interval, timeline.Elapsed())
		}
	}
}

// TestSpawnTimeline_FixedStepBoundaries 按 1/60 累加时，边界落在整数帧上
func TestSpawnTimeline_FixedStepBoundaries(t *testing.T) {
	timeline, _ := newTestTimeline([]types.VariantID{1}, []types.VariantID{2}, []types.VariantID{3})
	const frame = 1.0 / 60

	var midTick, lateTick, checkpointTick int
	for tick := 1; tick <= 50*60; tick++ {
		for _, tier := range timeline.Advance(frame) {
			switch tier {
			case types.TierMid:
				midTick = tick
			case types.TierLate:
				lateTick = tick
			}
		}
		if checkpointTick == 0 && timeline.CurrentInterval() < 3 {
			checkpointTick = tick
		}
	}

	if midTick != 1500 {
		t.Errorf("mid unlocked on tick %d, want 1500", midTick)
	}
	if checkpointTick != 2400 {
		t.Errorf("first checkpoint on tick %d, want 2400", checkpointTick)
	}
	if lateTick != 3000 {
		t.Errorf("late unlocked on tick %d, want 3000", lateTick)
	}
}
