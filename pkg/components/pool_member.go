package components

import "github.com/decker502/turborun/pkg/types"

// PoolMemberComponent 池化实体的身份标签
//
// Category 和 Variant 在实体创建时写入且之后不变，
// 系统通过它们分派行为，而不是探测实体上挂了哪些组件。
type PoolMemberComponent struct {
	Category types.PoolCategory
	Variant  types.VariantID

	// Active 是否处于活跃集合（可见、参与移动和碰撞）
	Active bool

	// Spawns 被取出使用的累计次数（调试统计）
	Spawns int
}
