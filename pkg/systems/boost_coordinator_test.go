package systems

import (
	"testing"

	"github.com/decker502/turborun/pkg/config"
	"github.com/decker502/turborun/pkg/game"
)

// fakeActor 记录 BoostCoordinator 对玩家的调用
type fakeActor struct {
	speed         float64
	invulnerable  bool
	scaleRequests [][2]float64
}

func (a *fakeActor) SetSpeed(speed float64) {
	a.speed = speed
}

func (a *fakeActor) Speed() float64 {
	return a.speed
}

func (a *fakeActor) SetInvulnerable(invulnerable bool) {
	a.invulnerable = invulnerable
}

func (a *fakeActor) AnimateScale(multiplier, duration float64) {
	a.scaleRequests = append(a.scaleRequests, [2]float64{multiplier, duration})
}

func fullGauge(maxTanks int) *game.FuelGauge {
	g := game.NewFuelGauge(maxTanks)
	for !g.IsFull() {
		g.AddFuel()
	}
	return g
}

func newTestBoost(t *testing.T) (*BoostCoordinator, *fakeActor, *game.FuelGauge, *SpawnDirectorSystem) {
	t.Helper()
	w := newTestWorld(t, nil)
	actor := &fakeActor{speed: 4.4}
	gauge := fullGauge(w.cfg.Fuel.MaxTanks)
	boost := NewBoostCoordinator(w.cfg.Boost, actor, gauge, w.director)
	return boost, actor, gauge, w.director
}

func TestBoostCoordinator_RequiresFullGauge(t *testing.T) {
	w := newTestWorld(t, nil)
	actor := &fakeActor{speed: 4}
	gauge := game.NewFuelGauge(5)
	gauge.AddFuel()
	boost := NewBoostCoordinator(w.cfg.Boost, actor, gauge, w.director)

	if boost.CanActivate() {
		t.Error("CanActivate should be false with a partial gauge")
	}
	if boost.TryActivate() {
		t.Fatal("TryActivate should fail with a partial gauge")
	}
	if boost.Phase() != BoostIdle || actor.speed != 4 || gauge.Tanks() != 1 {
		t.Errorf("failed trigger changed state: phase=%v speed=%v tanks=%d", boost.Phase(), actor.speed, gauge.Tanks())
	}
}

// TestBoostCoordinator_ActivationIsAtomic 触发后同一时刻所有效果都已生效
func TestBoostCoordinator_ActivationIsAtomic(t *testing.T) {
	boost, actor, gauge, director := newTestBoost(t)
	baseInterval := director.DecorationInterval()

	if !boost.CanActivate() {
		t.Fatal("CanActivate should be true with a full gauge")
	}
	if !boost.TryActivate() {
		t.Fatal("TryActivate failed")
	}

	if !boost.IsActive() {
		t.Fatal("boost should be active")
	}
	if gauge.Percentage() != 0 {
		t.Errorf("gauge percentage = %v, want 0", gauge.Percentage())
	}
	if !gauge.IsLocked() {
		t.Error("gauge should be locked")
	}
	if actor.speed != 6 {
		t.Errorf("actor speed = %v, want 6", actor.speed)
	}
	if !actor.invulnerable {
		t.Error("actor should be invulnerable")
	}
	if director.DecorationInterval() != baseInterval/2 {
		t.Errorf("decoration interval = %v, want %v", director.DecorationInterval(), baseInterval/2)
	}
	if len(actor.scaleRequests) != 1 || actor.scaleRequests[0] != [2]float64{2.2, 0.5} {
		t.Errorf("scale requests = %v, want [[2.2 0.5]]", actor.scaleRequests)
	}
	if boost.Remaining() != 8 {
		t.Errorf("Remaining() = %v, want 8", boost.Remaining())
	}
}

// TestBoostCoordinator_TriggerWhileActive 加速中再次触发不改变任何状态
func TestBoostCoordinator_TriggerWhileActive(t *testing.T) {
	boost, actor, gauge, director := newTestBoost(t)
	boost.TryActivate()
	boost.Update(2)

	// 加速中燃料被锁定，即使外部强行填满也不能叠加
	gauge.LockAccumulation(false)
	for !gauge.IsFull() {
		gauge.AddFuel()
	}
	gauge.LockAccumulation(true)

	speed, interval, remaining := actor.speed, director.DecorationInterval(), boost.Remaining()
	requests := len(actor.scaleRequests)

	if boost.CanActivate() {
		t.Error("CanActivate should be false while active")
	}
	if boost.TryActivate() {
		t.Error("TryActivate should be a no-op while active")
	}
	if actor.speed != speed || director.DecorationInterval() != interval || boost.Remaining() != remaining {
		t.Error("re-trigger changed boost state")
	}
	if len(actor.scaleRequests) != requests {
		t.Error("re-trigger issued another scale request")
	}
	if !gauge.IsFull() {
		t.Error("re-trigger must not consume the gauge")
	}
}

// TestBoostCoordinator_DurationAndRestore 8 秒后结束并精确恢复速度
func TestBoostCoordinator_DurationAndRestore(t *testing.T) {
	boost, actor, gauge, director := newTestBoost(t)
	baseInterval := director.DecorationInterval()

	boost.TryActivate()
	boost.Update(4)
	boost.Update(3.999)
	if !boost.IsActive() {
		t.Fatal("boost should still be active at 7.999s")
	}

	boost.Update(0.5)
	if boost.IsActive() {
		t.Fatal("boost should be idle after 8s")
	}
	if actor.speed != 4.4 {
		t.Errorf("actor speed = %v, want exactly 4.4", actor.speed)
	}
	if actor.invulnerable {
		t.Error("invulnerability should be cleared")
	}
	if director.DecorationInterval() != baseInterval {
		t.Errorf("decoration interval = %v, want %v", director.DecorationInterval(), baseInterval)
	}
	if gauge.IsLocked() {
		t.Error("gauge should be unlocked")
	}
	last := actor.scaleRequests[len(actor.scaleRequests)-1]
	if last != [2]float64{1.0, 0.5} {
		t.Errorf("last scale request = %v, want [1 0.5]", last)
	}
	if boost.Remaining() != 0 {
		t.Errorf("Remaining() = %v, want 0", boost.Remaining())
	}
}

func TestBoostCoordinator_EndsOnExactDuration(t *testing.T) {
	boost, _, _, _ := newTestBoost(t)
	boost.TryActivate()

	boost.Update(8.0)
	if boost.IsActive() {
		t.Error("boost should end on the tick that reaches the duration")
	}
}

func TestBoostCoordinator_PhaseListeners(t *testing.T) {
	boost, _, _, _ := newTestBoost(t)

	var phases []BoostPhase
	boost.OnPhaseChange(func(p BoostPhase) { phases = append(phases, p) })

	boost.TryActivate()
	boost.TryActivate()
	boost.Update(10)

	if len(phases) != 2 || phases[0] != BoostActive || phases[1] != BoostIdle {
		t.Errorf("phases = %v, want [Active Idle]", phases)
	}
}

// TestBoostCoordinator_MissingCollaborators 缺少协作方时只跳过对应效果
func TestBoostCoordinator_MissingCollaborators(t *testing.T) {
	cfg := config.DefaultRunnerConfig().Boost

	t.Run("no actor or director", func(t *testing.T) {
		gauge := fullGauge(5)
		boost := NewBoostCoordinator(cfg, nil, gauge, nil)

		if !boost.TryActivate() {
			t.Fatal("boost should activate without actor and director")
		}
		if gauge.Percentage() != 0 || !gauge.IsLocked() {
			t.Error("gauge effects should still apply")
		}
		boost.Update(cfg.Duration)
		if boost.IsActive() || gauge.IsLocked() {
			t.Error("state machine should still advance to idle")
		}
	})

	t.Run("no gauge", func(t *testing.T) {
		actor := &fakeActor{speed: 4}
		boost := NewBoostCoordinator(cfg, actor, nil, nil)

		if boost.CanActivate() || boost.TryActivate() {
			t.Error("boost without a gauge cannot be triggered")
		}
		if actor.speed != 4 {
			t.Error("actor must be untouched")
		}
		boost.Update(1)
	})
}

func TestBoostCoordinator_CanReactivateAfterRefill(t *testing.T) {
	boost, actor, gauge, _ := newTestBoost(t)

	boost.TryActivate()
	boost.Update(8)

	for !gauge.IsFull() {
		if !gauge.AddFuel() {
			t.Fatal("gauge should accept fuel after boost ends")
		}
	}
	if !boost.TryActivate() {
		t.Fatal("second boost should activate")
	}
	boost.Update(8)
	if actor.speed != 4.4 {
		t.Errorf("speed after second boost = %v, want 4.4", actor.speed)
	}
}
