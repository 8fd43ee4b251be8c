package components

// ScaleComponent 存储实体级别的缩放因子
//
// BaseX/BaseY 是实体的原始缩放，加速时的放大倍数相对原始缩放计算，
// 结束时也是回到原始缩放而不是重新推算。
type ScaleComponent struct {
	// ScaleX X轴缩放因子（1.0 = 原始大小，2.2 = 加速放大）
	ScaleX float64
	// ScaleY Y轴缩放因子
	ScaleY float64

	BaseX float64
	BaseY float64
}

// ScaleRampComponent 缩放渐变的进度状态
//
// 新的渐变请求直接覆盖正在进行的渐变，并从当前瞬时缩放重新开始插值。
// 最后一帧精确落在目标值上。
type ScaleRampComponent struct {
	FromX, FromY float64
	ToX, ToY     float64
	Duration     float64 // 渐变总时长（秒）
	Elapsed      float64 // 已经过时间（秒）
	IsActive     bool
}
