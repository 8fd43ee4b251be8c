package scenes

import (
	"github.com/decker502/turborun/pkg/config"
	"github.com/decker502/turborun/pkg/utils"
)

// BoostButton 触屏加速按钮区域（屏幕像素，右下角）
var BoostButton = struct{ X, Y, W, H float64 }{
	X: config.GameWindowWidth - 136,
	Y: config.GameWindowHeight - 96,
	W: 120,
	H: 80,
}

// steerDeadZone 触屏转向的死区（世界单位）
const steerDeadZone = 0.15

// PointerInput 触屏/鼠标输入：按住时巴士朝指针位置移动，点击加速按钮触发加速
type PointerInput struct {
	// playerPos 返回玩家当前世界坐标
	playerPos func() (float64, float64)

	pointer     func() (pressed bool, x, y int)
	justPressed func() (bool, int, int)
}

// NewPointerInput 创建指针输入
func NewPointerInput(playerPos func() (float64, float64)) *PointerInput {
	return &PointerInput{
		playerPos:   playerPos,
		pointer:     utils.GetPointerState,
		justPressed: utils.IsPointerJustPressed,
	}
}

// Axis 实现 Input
// 按在加速按钮上时不转向
func (in *PointerInput) Axis() (float64, float64) {
	pressed, sx, sy := in.pointer()
	if !pressed || inBoostButton(float64(sx), float64(sy)) {
		return 0, 0
	}
	tx, ty := config.ScreenToWorld(float64(sx), float64(sy))
	px, py := in.playerPos()
	return utils.SteerToward(px, py, tx, ty, steerDeadZone)
}

// BoostPressed 实现 Input
func (in *PointerInput) BoostPressed() bool {
	ok, x, y := in.justPressed()
	return ok && inBoostButton(float64(x), float64(y))
}

// RestartPressed 实现 Input：游戏结束后任意点击
func (in *PointerInput) RestartPressed() bool {
	ok, _, _ := in.justPressed()
	return ok
}

func inBoostButton(x, y float64) bool {
	b := BoostButton
	return x >= b.X && x < b.X+b.W && y >= b.Y && y < b.Y+b.H
}
