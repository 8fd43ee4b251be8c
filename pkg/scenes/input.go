package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input 场景读取的玩家输入
type Input interface {
	// Axis 方向输入，分量在 [-1, 1]
	Axis() (x, y float64)
	// BoostPressed 本帧是否按下加速键
	BoostPressed() bool
	// RestartPressed 本帧是否按下重新开始键
	RestartPressed() bool
}

// KeyboardInput 键盘输入：方向键 / WASD 移动，空格加速，回车或 R 重新开始
type KeyboardInput struct{}

// Axis 实现 Input
func (KeyboardInput) Axis() (float64, float64) {
	var x, y float64
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		x--
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		x++
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW) {
		y++
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS) {
		y--
	}
	return x, y
}

// BoostPressed 实现 Input
func (KeyboardInput) BoostPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeySpace)
}

// RestartPressed 实现 Input
func (KeyboardInput) RestartPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyR)
}
