package components

// TimeEpsilon 时间比较的容差（秒）
// 按固定步长累加时间会产生浮点误差，例如 480 次 1/60 之和略小于 8
const TimeEpsilon = 1e-9

// TimeReached 返回累计时间是否已到达目标时间
func TimeReached(elapsed, target float64) bool {
	return elapsed >= target-TimeEpsilon
}

// TimerComponent 通用计时器
// 用于需要时间延迟的行为（如加速持续时间、受伤无敌时间）
//
// 计时器在 CurrentTime 到达 TargetTime（见 TimeReached）的那一帧完成，完成时 CurrentTime 精确等于 TargetTime。
type TimerComponent struct {
	Name        string  // 计时器名称，如 "boost_duration"
	TargetTime  float64 // 目标时间（秒）
	CurrentTime float64 // 当前已过时间（秒）
	IsReady     bool    // 计时器是否已完成
	IsRunning   bool    // 计时器是否在计时
}

// Start 以指定目标时间重新开始计时
func (t *TimerComponent) Start(target float64) {
	t.TargetTime = target
	t.CurrentTime = 0
	t.IsReady = false
	t.IsRunning = true
}

// Stop 停止计时，不标记完成
func (t *TimerComponent) Stop() {
	t.IsRunning = false
}

// Advance 推进计时器，返回本次调用是否刚好完成
func (t *TimerComponent) Advance(dt float64) bool {
	if !t.IsRunning || t.IsReady {
		return false
	}
	t.CurrentTime += dt
	if TimeReached(t.CurrentTime, t.TargetTime) {
		t.CurrentTime = t.TargetTime
		t.IsReady = true
		t.IsRunning = false
		return true
	}
	return false
}

// Remaining 返回剩余时间（秒）
func (t *TimerComponent) Remaining() float64 {
	if !t.IsRunning {
		return 0
	}
	return t.TargetTime - t.CurrentTime
}
