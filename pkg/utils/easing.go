package utils

import (
	"math"
	"math/rand"
)

// 缩放/插值相关的数学工具
//
// 所有插值函数接受进度值 t ∈ [0, 1]。

// EaseLinear 线性缓动（无缓动）
func EaseLinear(t float64) float64 {
	return t
}

// EaseOutQuad 二次方缓出
// 公式：f(t) = 1 - (1-t)²
func EaseOutQuad(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

// Lerp 线性插值
// t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp 将 v 限制在 [lo, hi] 区间
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Clamp01 将 v 限制在 [0, 1] 区间
func Clamp01(v float64) float64 {
	return Clamp(v, 0, 1)
}

// RandRange 返回 [lo, hi) 区间内的均匀随机数
// lo >= hi 时直接返回 lo
func RandRange(rng *rand.Rand, lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + rng.Float64()*(hi-lo)
}

// Progress 计算已用时间占总时长的比例，时长非正时视为已完成
func Progress(elapsed, duration float64) float64 {
	if duration <= 0 {
		return 1
	}
	return Clamp01(elapsed / duration)
}
