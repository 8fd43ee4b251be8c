package config

// 布局配置常量
// 世界坐标原点在画面中心，X 轴向右，Y 轴向上，单位为"世界单位"。
// 屏幕坐标原点在左上角，Y 轴向下，单位为像素。
const (
	// GameWindowWidth 逻辑画面宽度（像素）
	GameWindowWidth = 960

	// GameWindowHeight 逻辑画面高度（像素）
	GameWindowHeight = 540

	// PixelsPerUnit 每个世界单位对应的像素数
	// 960 / 60 = 16 个单位，可视范围 X ∈ [-8, 8]
	PixelsPerUnit = 60.0

	// RoadTopY / RoadBottomY 道路在世界坐标中的上下边缘（仅用于绘制背景）
	RoadTopY    = 2.0
	RoadBottomY = -1.6
)

// WorldToScreen 将世界坐标转换为屏幕坐标
func WorldToScreen(x, y float64) (float64, float64) {
	sx := GameWindowWidth/2 + x*PixelsPerUnit
	sy := GameWindowHeight/2 - y*PixelsPerUnit
	return sx, sy
}

// ScreenToWorld 将屏幕坐标转换为世界坐标
func ScreenToWorld(sx, sy float64) (float64, float64) {
	x := (sx - GameWindowWidth/2) / PixelsPerUnit
	y := (GameWindowHeight/2 - sy) / PixelsPerUnit
	return x, y
}

// WorldRectToScreen 将以 (cx, cy) 为中心、尺寸为 w×h 的世界矩形转换为屏幕矩形
// 返回值：左上角 x, y 以及宽高（像素）
func WorldRectToScreen(cx, cy, w, h float64) (float64, float64, float64, float64) {
	sx, sy := WorldToScreen(cx-w/2, cy+h/2)
	return sx, sy, w * PixelsPerUnit, h * PixelsPerUnit
}
