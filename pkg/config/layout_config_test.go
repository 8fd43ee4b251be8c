package config

import (
	"math"
	"testing"
)

func TestWorldToScreen(t *testing.T) {
	tests := []struct {
		name   string
		x, y   float64
		wantSX float64
		wantSY float64
	}{
		{name: "原点位于画面中心", x: 0, y: 0, wantSX: 480, wantSY: 270},
		{name: "向右一个单位", x: 1, y: 0, wantSX: 540, wantSY: 270},
		{name: "Y 轴向上", x: 0, y: 1, wantSX: 480, wantSY: 210},
		{name: "左边缘", x: -8, y: 0, wantSX: 0, wantSY: 270},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sx, sy := WorldToScreen(tt.x, tt.y)
			if math.Abs(sx-tt.wantSX) > 1e-9 || math.Abs(sy-tt.wantSY) > 1e-9 {
				t.Errorf("WorldToScreen(%v, %v) = (%v, %v), want (%v, %v)", tt.x, tt.y, sx, sy, tt.wantSX, tt.wantSY)
			}

			// 往返转换应得到原坐标
			x, y := ScreenToWorld(sx, sy)
			if math.Abs(x-tt.x) > 1e-9 || math.Abs(y-tt.y) > 1e-9 {
				t.Errorf("ScreenToWorld round trip = (%v, %v), want (%v, %v)", x, y, tt.x, tt.y)
			}
		})
	}
}

func TestWorldRectToScreen(t *testing.T) {
	x, y, w, h := WorldRectToScreen(0, 0, 2, 1)
	if x != 420 || y != 240 || w != 120 || h != 60 {
		t.Errorf("WorldRectToScreen = (%v, %v, %v, %v), want (420, 240, 120, 60)", x, y, w, h)
	}
}
