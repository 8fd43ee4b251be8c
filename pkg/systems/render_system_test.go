package systems

import (
	"testing"

	"github.com/decker502/turborun/pkg/components"
	"github.com/decker502/turborun/pkg/config"
	"github.com/decker502/turborun/pkg/ecs"
	"github.com/decker502/turborun/pkg/entities"
)

func TestRenderSystem_CollectDrawables(t *testing.T) {
	em, registry := newScrollFixture(t)
	player := entities.NewPlayerEntity(em, config.DefaultRunnerConfig().Player)
	visible := spawnAt(t, em, registry, "donut", 0, 0)
	hidden := spawnAt(t, em, registry, "cone", 2, 0)
	entities.DeactivatePoolEntity(em, hidden)

	drawables := NewRenderSystem(em).CollectDrawables()

	if len(drawables) != 2 {
		t.Fatalf("got %d drawables, want 2", len(drawables))
	}
	if drawables[0].Entity != visible || drawables[1].Entity != player {
		t.Errorf("draw order = [%d %d], want [%d %d]", drawables[0].Entity, drawables[1].Entity, visible, player)
	}

	// donut 0.4×0.4 位于原点
	d := drawables[0]
	wantX := float64(config.GameWindowWidth)/2 - 0.2*config.PixelsPerUnit
	wantY := float64(config.GameWindowHeight)/2 - 0.2*config.PixelsPerUnit
	if d.X != wantX || d.Y != wantY {
		t.Errorf("donut at (%v, %v), want (%v, %v)", d.X, d.Y, wantX, wantY)
	}
	if d.Width != 0.4*config.PixelsPerUnit || d.Height != 0.4*config.PixelsPerUnit {
		t.Errorf("donut size = %vx%v", d.Width, d.Height)
	}
}

func TestRenderSystem_AppliesScale(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := config.DefaultRunnerConfig().Player
	player := entities.NewPlayerEntity(em, cfg)

	scale, _ := ecs.GetComponent[*components.ScaleComponent](em, player)
	scale.ScaleX, scale.ScaleY = 2, 2

	drawables := NewRenderSystem(em).CollectDrawables()
	if len(drawables) != 1 {
		t.Fatalf("got %d drawables, want 1", len(drawables))
	}
	if got, want := drawables[0].Width, cfg.Width*2*config.PixelsPerUnit; got != want {
		t.Errorf("width = %v, want %v", got, want)
	}
}
