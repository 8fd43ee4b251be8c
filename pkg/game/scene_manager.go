package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneFactory 场景工厂函数类型
// 用于创建新一局的场景，避免 game 包依赖 scenes 包
type SceneFactory func() (Scene, error)

// SceneManager 管理当前活动的场景
// 任意时刻只有一个场景的 Update 和 Draw 会被调用
type SceneManager struct {
	currentScene Scene
	sceneFactory SceneFactory
	restarts     int
}

// NewSceneManager 创建场景管理器
// 初始没有活动场景，需要调用 SwitchTo 或 Restart 设置
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SetSceneFactory 设置场景工厂函数
func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.sceneFactory = factory
}

// SwitchTo 切换到指定场景
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
}

// GetCurrentScene 返回当前活动的场景，没有时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// Restart 用工厂创建新的一局并切换过去
// 工厂未设置或创建失败时保持当前场景，返回 false
func (sm *SceneManager) Restart() bool {
	if sm.sceneFactory == nil {
		log.Printf("[SceneManager] WARNING: SceneFactory not set")
		return false
	}

	newScene, err := sm.sceneFactory()
	if err != nil {
		log.Printf("[SceneManager] WARNING: failed to create scene: %v", err)
		return false
	}
	if newScene == nil {
		log.Printf("[SceneManager] WARNING: SceneFactory returned nil")
		return false
	}

	sm.SwitchTo(newScene)
	sm.restarts++
	log.Printf("[SceneManager] Started run #%d", sm.restarts)
	return true
}

// Restarts 返回通过 Restart 创建的场景数量
func (sm *SceneManager) Restarts() int {
	return sm.restarts
}

// Update 更新当前场景
// deltaTime 为距上次更新的时间（秒）
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw 绘制当前场景
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
