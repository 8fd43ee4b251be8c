// Package utils 提供通用工具函数
package utils

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GetPointerState 获取指针的完整状态
// 优先检查触摸，没有触摸时返回鼠标左键状态
// 返回：是否按下、X坐标、Y坐标（屏幕像素）
func GetPointerState() (pressed bool, x, y int) {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y = ebiten.TouchPosition(touchIDs[0])
		return true, x, y
	}

	x, y = ebiten.CursorPosition()
	pressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	return pressed, x, y
}

// IsPointerJustPressed 检查是否刚刚按下指针（触摸或鼠标）
// 返回是否按下以及按下位置
func IsPointerJustPressed() (bool, int, int) {
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return true, x, y
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return true, x, y
	}

	return false, 0, 0
}

// SteerToward 计算从 (fromX, fromY) 指向 (toX, toY) 的方向输入
// 每个分量在 [-1, 1]；距离小于 deadZone 的分量为 0，
// 距离在 deadZone 到 2*deadZone 之间时线性增大，避免在目标点附近来回抖动
func SteerToward(fromX, fromY, toX, toY, deadZone float64) (float64, float64) {
	return steerAxis(toX-fromX, deadZone), steerAxis(toY-fromY, deadZone)
}

func steerAxis(d, deadZone float64) float64 {
	dist := math.Abs(d)
	if dist <= deadZone {
		return 0
	}
	v := 1.0
	if deadZone > 0 {
		v = Clamp01((dist - deadZone) / deadZone)
	}
	return math.Copysign(v, d)
}
