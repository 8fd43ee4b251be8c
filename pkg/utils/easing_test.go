package utils

import (
	"math"
	"math/rand"
	"testing"
)

func TestLerp(t *testing.T) {
	tests := []struct {
		name     string
		a, b, t  float64
		expected float64
	}{
		{"起点", 1.0, 2.2, 0, 1.0},
		{"终点", 1.0, 2.2, 1, 2.2},
		{"中点", 1.0, 3.0, 0.5, 2.0},
		{"缩小", 2.2, 1.0, 0.5, 1.6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Lerp(tt.a, tt.b, tt.t)
			if math.Abs(result-tt.expected) > 1e-9 {
				t.Errorf("Lerp(%v, %v, %v) = %v, 期望 %v", tt.a, tt.b, tt.t, result, tt.expected)
			}
		})
	}
}

func TestEasing(t *testing.T) {
	if EaseLinear(0.3) != 0.3 {
		t.Errorf("EaseLinear(0.3) = %v", EaseLinear(0.3))
	}
	if got := EaseOutQuad(0.5); math.Abs(got-0.75) > 1e-9 {
		t.Errorf("EaseOutQuad(0.5) = %v, 期望 0.75", got)
	}
	if EaseOutQuad(1) != 1 || EaseOutQuad(0) != 0 {
		t.Error("EaseOutQuad 端点应为 0 和 1")
	}
}

func TestClampAndProgress(t *testing.T) {
	if Clamp(5, -1, 1) != 1 || Clamp(-5, -1, 1) != -1 || Clamp(0.2, -1, 1) != 0.2 {
		t.Error("Clamp 结果错误")
	}
	if Progress(0.25, 0.5) != 0.5 {
		t.Errorf("Progress(0.25, 0.5) = %v", Progress(0.25, 0.5))
	}
	if Progress(1, 0.5) != 1 {
		t.Error("Progress 超过时长应截断为 1")
	}
	if Progress(0, 0) != 1 {
		t.Error("零时长应视为已完成")
	}
}

func TestRandRange(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		v := RandRange(rng, -0.2, 0.4)
		if v < -0.2 || v >= 0.4 {
			t.Fatalf("RandRange 超出范围: %v", v)
		}
	}
	if RandRange(rng, 3, 3) != 3 {
		t.Error("空区间应返回下界")
	}
}
