// Package types 定义共享的基础类型
// 这个包不依赖任何其他业务包，用于解决循环引用问题
package types

// PoolCategory 定义池化实体的分类
// 分类在实体创建时写入 PoolMemberComponent，之后不再改变
type PoolCategory int

const (
	// CategoryDecoration 装饰/食物（可收集得分）
	CategoryDecoration PoolCategory = iota
	// CategoryObstacle 障碍物（碰撞扣血）
	CategoryObstacle
	// CategoryPowerUp 道具（油桶，填充燃料槽）
	CategoryPowerUp
)

// AllCategories 按固定顺序列出所有分类
var AllCategories = []PoolCategory{CategoryDecoration, CategoryObstacle, CategoryPowerUp}

// String 返回分类的字符串表示
func (c PoolCategory) String() string {
	switch c {
	case CategoryDecoration:
		return "Decoration"
	case CategoryObstacle:
		return "Obstacle"
	case CategoryPowerUp:
		return "PowerUp"
	default:
		return "Unknown"
	}
}

// ParsePoolCategory 解析配置文件中的分类名称
func ParsePoolCategory(name string) (PoolCategory, bool) {
	switch name {
	case "decoration", "food":
		return CategoryDecoration, true
	case "obstacle":
		return CategoryObstacle, true
	case "powerup", "powerUp", "fuel":
		return CategoryPowerUp, true
	default:
		return 0, false
	}
}
