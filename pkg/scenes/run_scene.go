package scenes

import (
	"fmt"
	"image/color"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/decker502/turborun/pkg/config"
	"github.com/decker502/turborun/pkg/game"
	"github.com/decker502/turborun/pkg/session"
	"github.com/decker502/turborun/pkg/systems"
)

var (
	skyColor       = color.RGBA{R: 0x87, G: 0xce, B: 0xeb, A: 0xff}
	roadColor      = color.RGBA{R: 0x55, G: 0x55, B: 0x5a, A: 0xff}
	laneMarkColor  = color.RGBA{R: 0xf0, G: 0xf0, B: 0xf0, A: 0xff}
	fuelColor      = color.RGBA{R: 0x7e, G: 0xd3, B: 0x21, A: 0xff}
	fuelEmptyColor = color.RGBA{R: 0x30, G: 0x30, B: 0x30, A: 0xff}
	boostColor     = color.RGBA{R: 0xff, G: 0x8c, B: 0x00, A: 0xff}
	overlayColor   = color.RGBA{A: 0xa0}
)

// hudFace HUD 使用的位图字体
var hudFace = text.NewGoXFace(basicfont.Face7x13)

// RunScene 一局跑酷的场景
// 读取输入、推进 Session，并把实体绘制为彩色矩形
type RunScene struct {
	session      *session.Session
	input        Input
	sceneManager *game.SceneManager
	renderSystem *systems.RenderSystem

	// laneOffset 车道线的卷动偏移（像素）
	laneOffset float64
	// ShowDebug 显示对象池统计
	ShowDebug bool
	// ShowTouchControls 绘制触屏加速按钮
	ShowTouchControls bool
}

// NewRunScene 创建跑酷场景
// sm 为 nil 时游戏结束后不能重新开始
func NewRunScene(sess *session.Session, input Input, sm *game.SceneManager) *RunScene {
	if input == nil {
		input = KeyboardInput{}
	}
	return &RunScene{
		session:      sess,
		input:        input,
		sceneManager: sm,
		renderSystem: systems.NewRenderSystem(sess.EntityManager()),
	}
}

// Session 返回场景驱动的会话
func (s *RunScene) Session() *session.Session {
	return s.session
}

// Update 处理输入并推进一帧
func (s *RunScene) Update(deltaTime float64) {
	if s.session.State().IsGameOver() {
		if s.input.RestartPressed() && s.sceneManager != nil {
			s.sceneManager.Restart()
		}
		return
	}

	s.session.SetInput(s.input.Axis())
	if s.input.BoostPressed() {
		s.session.RequestBoost()
	}

	report := s.session.Tick(deltaTime)
	for _, tier := range report.UnlockedTiers {
		log.Printf("[RunScene] %s obstacles unlocked at %.1fs", tier, s.session.Elapsed())
	}
	if report.BoostStarted {
		log.Printf("[RunScene] Boost started")
	}
	if report.GameOver {
		log.Printf("[RunScene] Game over at %.1fs, score %d", s.session.Elapsed(), s.session.State().Score())
	}

	speed := s.session.Config().Scroll.DecorationSpeed
	if s.session.Boost().IsActive() {
		speed *= s.session.Config().Boost.ScrollMultiplier
	}
	s.laneOffset += speed * deltaTime * config.PixelsPerUnit
}

// Draw 绘制道路、实体和 HUD
func (s *RunScene) Draw(screen *ebiten.Image) {
	s.drawRoad(screen)
	s.renderSystem.Draw(screen)
	s.drawHUD(screen)

	if s.ShowTouchControls {
		s.drawBoostButton(screen)
	}
	if s.ShowDebug {
		s.drawDebug(screen)
	}
	if s.session.State().IsGameOver() {
		s.drawGameOver(screen)
	}
}

func (s *RunScene) drawRoad(screen *ebiten.Image) {
	screen.Fill(skyColor)

	_, top := config.WorldToScreen(0, config.RoadTopY)
	_, bottom := config.WorldToScreen(0, config.RoadBottomY)
	vector.DrawFilledRect(screen, 0, float32(top), config.GameWindowWidth, float32(bottom-top), roadColor, false)

	// 中线虚线随卷动向左移动
	const dash, gap = 40.0, 30.0
	_, mid := config.WorldToScreen(0, (config.RoadTopY+config.RoadBottomY)/2)
	start := -math.Mod(s.laneOffset, dash+gap)
	for x := start; x < config.GameWindowWidth; x += dash + gap {
		vector.DrawFilledRect(screen, float32(x), float32(mid-2), dash, 4, laneMarkColor, false)
	}
}

func (s *RunScene) drawHUD(screen *ebiten.Image) {
	state := s.session.State()
	drawText(screen, fmt.Sprintf("SCORE %d", state.Score()), 16, 12, color.White)
	drawText(screen, fmt.Sprintf("HEALTH %d/%d", state.Health(), state.MaxHealth()), 16, 30, color.White)
	drawText(screen, fmt.Sprintf("TIME %.1f", s.session.Elapsed()), 16, 48, color.White)

	// 燃料槽：每个油桶一格
	gauge := s.session.Gauge()
	const cellW, cellH, cellGap = 28.0, 14.0, 4.0
	x0 := float64(config.GameWindowWidth) - 16 - float64(gauge.MaxTanks())*(cellW+cellGap)
	for i := 0; i < gauge.MaxTanks(); i++ {
		clr := fuelEmptyColor
		if i < gauge.Tanks() {
			clr = fuelColor
		}
		vector.DrawFilledRect(screen, float32(x0+float64(i)*(cellW+cellGap)), 14, cellW, cellH, clr, false)
	}

	boost := s.session.Boost()
	switch {
	case boost.IsActive():
		frac := boost.Remaining() / s.session.Config().Boost.Duration
		width := float64(gauge.MaxTanks())*(cellW+cellGap) - cellGap
		vector.DrawFilledRect(screen, float32(x0), 34, float32(width*frac), 6, boostColor, false)
		drawText(screen, fmt.Sprintf("BOOST %.1fs", boost.Remaining()), x0, 44, boostColor)
	case boost.CanActivate():
		drawText(screen, "SPACE: BOOST", x0, 34, fuelColor)
	}
}

func (s *RunScene) drawBoostButton(screen *ebiten.Image) {
	b := BoostButton
	clr := fuelEmptyColor
	if s.session.Boost().CanActivate() {
		clr = boostColor
	}
	vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), clr, false)
	drawText(screen, "BOOST", b.X+40, b.Y+34, color.White)
}

func (s *RunScene) drawDebug(screen *ebiten.Image) {
	stats := s.session.Director().Stats()
	timeline := s.session.Timeline()
	msg := fmt.Sprintf("pool: allocated=%d active=%d free=%d misses=%d\nobstacle interval=%.2f next checkpoint=%.1f variants=%d",
		stats.Allocated, stats.Active, stats.Free, stats.Misses,
		timeline.CurrentInterval(), timeline.NextCheckpoint(), len(timeline.ActiveVariants()))
	ebitenutil.DebugPrintAt(screen, msg, 16, config.GameWindowHeight-40)
}

func (s *RunScene) drawGameOver(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, config.GameWindowWidth, config.GameWindowHeight, overlayColor, false)
	cx := float64(config.GameWindowWidth)/2 - 60
	cy := float64(config.GameWindowHeight)/2 - 20
	drawText(screen, "GAME OVER", cx, cy, color.White)
	drawText(screen, fmt.Sprintf("SCORE %d", s.session.State().Score()), cx, cy+18, color.White)
	if s.sceneManager != nil {
		drawText(screen, "PRESS ENTER TO RESTART", cx-30, cy+36, color.White)
	}
}

func drawText(screen *ebiten.Image, str string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, hudFace, op)
}
