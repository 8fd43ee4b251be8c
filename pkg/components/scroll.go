package components

// ScrollMoverComponent 使实体沿 -X 方向卷动
type ScrollMoverComponent struct {
	// Speed 基础卷动速度（世界单位/秒）
	Speed float64
	// BoostAffected 加速期间是否以倍速卷动（只有装饰物受影响）
	BoostAffected bool
}

// BounceComponent 弹跳类障碍物（如轮胎）的竖直弹跳
// Phase 每次取出时由重置步骤清零
type BounceComponent struct {
	Amplitude float64 // 弹跳高度（世界单位）
	Frequency float64 // 弹跳频率（次/秒）
	Phase     float64 // 已经过的弹跳时间（秒）
	BaseY     float64 // 放置时的基准高度
}
