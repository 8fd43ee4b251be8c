package types

// VariantID 实体变体的稳定整数标识
// 在变体注册时分配，比较变体时不依赖名称字符串
type VariantID int

// NoVariant 表示"没有变体"（例如尚未生成过任何障碍物）
const NoVariant VariantID = -1

// ObstacleTier 障碍物解锁阶段
type ObstacleTier int

const (
	// TierEarly 开局即可用
	TierEarly ObstacleTier = iota
	// TierMid 中期解锁（默认 25 秒）
	TierMid
	// TierLate 后期解锁（默认 50 秒）
	TierLate
)

// AllTiers 按解锁顺序列出所有阶段
var AllTiers = []ObstacleTier{TierEarly, TierMid, TierLate}

// String 返回阶段的字符串表示
func (t ObstacleTier) String() string {
	switch t {
	case TierEarly:
		return "Early"
	case TierMid:
		return "Mid"
	case TierLate:
		return "Late"
	default:
		return "Unknown"
	}
}
