// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/turborun/pkg/config"
	"github.com/decker502/turborun/pkg/embedded"
	"github.com/decker502/turborun/pkg/game"
	"github.com/decker502/turborun/pkg/scenes"
	"github.com/decker502/turborun/pkg/session"
	"github.com/decker502/turborun/pkg/utils"
)

// FixedDeltaTime 每个 tick 推进的时间（秒）
const FixedDeltaTime = 1.0 / 60.0

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 跑酷配置文件路径，为空则使用嵌入的默认配置
	ConfigPath string
	// Seed 随机种子，0 表示每局使用当前时间
	Seed int64
	// Debug 显示对象池统计
	Debug bool
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	runnerConfig             *config.RunnerConfig
	verbose                  bool
	debug                    bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 使用嵌入配置时，调用此函数前必须先调用 embedded.Init()。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	runnerConfig, err := LoadRunnerConfig(cfg.ConfigPath)
	if err != nil {
		return nil, err
	}

	a := &App{
		sceneManager: game.NewSceneManager(),
		runnerConfig: runnerConfig,
		verbose:      cfg.Verbose,
		debug:        cfg.Debug,
	}

	seed := cfg.Seed
	a.sceneManager.SetSceneFactory(func() (game.Scene, error) {
		sess, err := session.New(runnerConfig, session.Options{Seed: seed})
		if err != nil {
			return nil, err
		}
		// 固定种子只用于第一局，之后每局重新随机
		seed = 0
		var input scenes.Input = scenes.KeyboardInput{}
		if utils.IsMobile() {
			input = scenes.NewPointerInput(sess.Player().Position)
		}
		scene := scenes.NewRunScene(sess, input, a.sceneManager)
		scene.ShowDebug = a.debug
		scene.ShowTouchControls = utils.IsMobile()
		return scene, nil
	})

	if !a.sceneManager.Restart() {
		return nil, fmt.Errorf("failed to start session")
	}

	log.Printf("[App] Started (config=%q, seed=%d)", cfg.ConfigPath, cfg.Seed)
	return a, nil
}

// LoadRunnerConfig 读取跑酷配置
// path 为空时读取嵌入的默认配置；嵌入资源未初始化时使用内置默认值
func LoadRunnerConfig(path string) (*config.RunnerConfig, error) {
	if path != "" {
		cfg, err := config.LoadRunnerConfig(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load runner config: %w", err)
		}
		return cfg, nil
	}

	if !embedded.IsInitialized() {
		log.Printf("[App] WARNING: embedded data not initialized, using built-in defaults")
		return config.DefaultRunnerConfig(), nil
	}

	data, err := embedded.ReadFile(embedded.DefaultConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded runner config: %w", err)
	}
	cfg, err := config.ParseRunnerConfig(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded runner config: %w", err)
	}
	return cfg, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	// F3 切换调试信息
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		a.debug = !a.debug
		if scene, ok := a.sceneManager.GetCurrentScene().(*scenes.RunScene); ok {
			scene.ShowDebug = a.debug
		}
	}

	a.sceneManager.Update(FixedDeltaTime)
	return nil
}

// Draw 绘制游戏画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// RunnerConfig 返回当前使用的跑酷配置
func (a *App) RunnerConfig() *config.RunnerConfig {
	return a.runnerConfig
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
