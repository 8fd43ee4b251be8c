package components

// PickupComponent 玩家接触池化实体时产生的效果
// 效果的执行由碰撞协作方负责，这里只存放数值
type PickupComponent struct {
	PointValue int // 得分（装饰物）
	Damage     int // 伤害（障碍物）
	FuelTanks  int // 燃料（油桶）

	// Collected 本次出场是否已被接触（防止同一帧重复结算），取出时重置
	Collected bool
}
