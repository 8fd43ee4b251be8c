package game

import (
	"testing"

	"github.com/decker502/turborun/pkg/config"
	"github.com/decker502/turborun/pkg/types"
)

func TestObstacleCatalog_Add(t *testing.T) {
	c := NewObstacleCatalog()
	c.Add(types.TierEarly, 1)
	c.Add(types.TierEarly, 2)
	c.Add(types.TierMid, 3)

	// 同一变体不能进入两个阶段
	c.Add(types.TierLate, 1)

	if got := c.Variants(types.TierEarly); len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Errorf("early tier = %v, want [1 2]", got)
	}
	if c.Len(types.TierLate) != 0 {
		t.Errorf("late tier should be empty, got %v", c.Variants(types.TierLate))
	}
	if tier, ok := c.TierOf(3); !ok || tier != types.TierMid {
		t.Errorf("TierOf(3) = (%v, %v), want (Mid, true)", tier, ok)
	}
	if c.Total() != 3 {
		t.Errorf("Total() = %d, want 3", c.Total())
	}

	// 返回的是副本
	early := c.Variants(types.TierEarly)
	early[0] = 99
	if c.Variants(types.TierEarly)[0] != 1 {
		t.Error("Variants() must return a copy")
	}
}

func TestBuildObstacleCatalog(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	r, err := NewVariantRegistryFromConfig(cfg)
	if err != nil {
		t.Fatalf("registry: %v", err)
	}

	c, err := BuildObstacleCatalog(cfg, r)
	if err != nil {
		t.Fatalf("BuildObstacleCatalog() error = %v", err)
	}

	tests := []struct {
		tier  types.ObstacleTier
		names []string
	}{
		{types.TierEarly, cfg.Obstacles.Early},
		{types.TierMid, cfg.Obstacles.Mid},
		{types.TierLate, cfg.Obstacles.Late},
	}
	for _, tt := range tests {
		t.Run(tt.tier.String(), func(t *testing.T) {
			got := c.Variants(tt.tier)
			if len(got) != len(tt.names) {
				t.Fatalf("expected %d variants, got %d", len(tt.names), len(got))
			}
			for i, name := range tt.names {
				if r.Name(got[i]) != name {
					t.Errorf("variant %d = %q, want %q", i, r.Name(got[i]), name)
				}
			}
		})
	}

	cfg.Obstacles.Mid = append(cfg.Obstacles.Mid, "ghost")
	if _, err := BuildObstacleCatalog(cfg, r); err == nil {
		t.Error("expected error for unregistered obstacle")
	}
}
