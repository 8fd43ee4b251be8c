package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene 游戏场景接口
// 每个场景负责自己的更新和绘制逻辑
type Scene interface {
	// Update 按经过的时间（秒）更新场景逻辑
	Update(deltaTime float64)

	// Draw 把场景绘制到屏幕
	Draw(screen *ebiten.Image)
}
