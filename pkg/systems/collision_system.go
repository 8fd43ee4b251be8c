package systems

import (
	"log"
	"math"
	"sort"

	"github.com/solarlune/resolv"

	"github.com/decker502/turborun/pkg/components"
	"github.com/decker502/turborun/pkg/ecs"
	"github.com/decker502/turborun/pkg/types"
)

// 碰撞空间中的对象标签
const (
	CollisionTagPlayer     = "player"
	CollisionTagDecoration = "decoration"
	CollisionTagObstacle   = "obstacle"
	CollisionTagPowerUp    = "powerup"
)

// CollisionHandler 接收玩家与池化实体的接触事件
type CollisionHandler interface {
	OnPlayerContact(id ecs.EntityID, category types.PoolCategory)
}

// CollisionHandlerFunc 函数形式的 CollisionHandler
type CollisionHandlerFunc func(id ecs.EntityID, category types.PoolCategory)

// OnPlayerContact 实现 CollisionHandler
func (f CollisionHandlerFunc) OnPlayerContact(id ecs.EntityID, category types.PoolCategory) {
	f(id, category)
}

// Contact 一次玩家接触
type Contact struct {
	Entity   ecs.EntityID
	Category types.PoolCategory
}

// CollisionSpaceConfig 世界坐标到碰撞空间坐标的映射
//
// 碰撞空间使用像素坐标（左上角为原点，Y 轴向下），
// 覆盖世界矩形 [MinX, MaxX] × [MinY, MaxY]。
type CollisionSpaceConfig struct {
	MinX, MaxX    float64
	MinY, MaxY    float64
	PixelsPerUnit float64
	CellSize      int
}

// DefaultCollisionSpaceConfig 覆盖出生点到离场边界之间的整个道路区域
func DefaultCollisionSpaceConfig(spawnX, offFieldX, pixelsPerUnit float64) CollisionSpaceConfig {
	return CollisionSpaceConfig{
		MinX:          offFieldX - 1,
		MaxX:          spawnX + 1,
		MinY:          -5,
		MaxY:          5,
		PixelsPerUnit: pixelsPerUnit,
		CellSize:      32,
	}
}

// CollisionSystem 检测玩家与活跃池化实体的接触
//
// 宽相位使用 resolv 的网格空间，窄相位在世界坐标中做 AABB 判断。
// 每个实体每次出场最多上报一次接触（PickupComponent.Collected）。
type CollisionSystem struct {
	em       *ecs.EntityManager
	playerID ecs.EntityID
	handler  CollisionHandler

	cfg     CollisionSpaceConfig
	space   *resolv.Space
	inSpace map[ecs.EntityID]*resolv.Object
}

// NewCollisionSystem 创建碰撞系统
func NewCollisionSystem(em *ecs.EntityManager, playerID ecs.EntityID, handler CollisionHandler, cfg CollisionSpaceConfig) *CollisionSystem {
	if cfg.PixelsPerUnit <= 0 {
		cfg.PixelsPerUnit = 1
	}
	if cfg.CellSize <= 0 {
		cfg.CellSize = 32
	}
	width := int(math.Ceil((cfg.MaxX - cfg.MinX) * cfg.PixelsPerUnit))
	height := int(math.Ceil((cfg.MaxY - cfg.MinY) * cfg.PixelsPerUnit))

	s := &CollisionSystem{
		em:       em,
		playerID: playerID,
		handler:  handler,
		cfg:      cfg,
		space:    resolv.NewSpace(width, height, cfg.CellSize, cfg.CellSize),
		inSpace:  make(map[ecs.EntityID]*resolv.Object),
	}
	log.Printf("[CollisionSystem] Space %dx%d px, cell %d", width, height, cfg.CellSize)
	return s
}

// Update 同步碰撞空间并上报本帧的接触
func (s *CollisionSystem) Update(deltaTime float64) []Contact {
	s.syncPoolEntities()

	playerObj := s.syncPlayer()
	if playerObj == nil {
		return nil
	}

	collision := playerObj.Check(0, 0, CollisionTagDecoration, CollisionTagObstacle, CollisionTagPowerUp)
	if collision == nil {
		return nil
	}

	px, py, pw, ph, ok := s.worldBox(s.playerID)
	if !ok {
		return nil
	}

	var contacts []Contact
	seen := make(map[ecs.EntityID]bool)
	for _, obj := range collision.Objects {
		id, ok := obj.Data.(ecs.EntityID)
		if !ok || seen[id] {
			continue
		}
		seen[id] = true

		member, ok := ecs.GetComponent[*components.PoolMemberComponent](s.em, id)
		if !ok || !member.Active {
			continue
		}
		ex, ey, ew, eh, ok := s.worldBox(id)
		if !ok || !overlaps(px, py, pw, ph, ex, ey, ew, eh) {
			continue
		}
		if pickup, ok := ecs.GetComponent[*components.PickupComponent](s.em, id); ok {
			if pickup.Collected {
				continue
			}
			pickup.Collected = true
		}
		contacts = append(contacts, Contact{Entity: id, Category: member.Category})
	}

	sort.Slice(contacts, func(i, j int) bool { return contacts[i].Entity < contacts[j].Entity })
	if s.handler != nil {
		for _, c := range contacts {
			s.handler.OnPlayerContact(c.Entity, c.Category)
		}
	}
	return contacts
}

// syncPoolEntities 把启用碰撞的活跃实体放入空间，其余移出
func (s *CollisionSystem) syncPoolEntities() {
	ids := ecs.GetEntitiesWith3[*components.PoolMemberComponent, *components.PositionComponent, *components.CollisionComponent](s.em)
	for _, id := range ids {
		member, _ := ecs.GetComponent[*components.PoolMemberComponent](s.em, id)
		col, _ := ecs.GetComponent[*components.CollisionComponent](s.em, id)

		if !member.Active || !col.Enabled {
			if obj, ok := s.inSpace[id]; ok {
				s.space.Remove(obj)
				delete(s.inSpace, id)
			}
			continue
		}

		if col.Object == nil {
			col.Object = resolv.NewObject(0, 0, 1, 1, categoryTag(member.Category))
			col.Object.Data = id
		}
		s.place(id, col.Object)
		if _, ok := s.inSpace[id]; !ok {
			s.space.Add(col.Object)
			s.inSpace[id] = col.Object
		}
	}
}

func (s *CollisionSystem) syncPlayer() *resolv.Object {
	col, ok := ecs.GetComponent[*components.CollisionComponent](s.em, s.playerID)
	if !ok || !col.Enabled {
		return nil
	}
	if col.Object == nil {
		col.Object = resolv.NewObject(0, 0, 1, 1, CollisionTagPlayer)
		col.Object.Data = s.playerID
	}
	s.place(s.playerID, col.Object)
	if _, ok := s.inSpace[s.playerID]; !ok {
		s.space.Add(col.Object)
		s.inSpace[s.playerID] = col.Object
	}
	return col.Object
}

// place 把实体的世界碰撞盒写入 resolv 对象
func (s *CollisionSystem) place(id ecs.EntityID, obj *resolv.Object) {
	x, y, w, h, ok := s.worldBox(id)
	if !ok {
		return
	}
	obj.Position.X = (x - w/2 - s.cfg.MinX) * s.cfg.PixelsPerUnit
	obj.Position.Y = (s.cfg.MaxY - (y + h/2)) * s.cfg.PixelsPerUnit
	obj.Size.X = math.Max(1, w*s.cfg.PixelsPerUnit)
	obj.Size.Y = math.Max(1, h*s.cfg.PixelsPerUnit)
	obj.Update()
}

// worldBox 返回实体碰撞盒的中心和尺寸（世界单位，已乘缩放）
func (s *CollisionSystem) worldBox(id ecs.EntityID) (cx, cy, w, h float64, ok bool) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.em, id)
	if !ok {
		return 0, 0, 0, 0, false
	}
	col, ok := ecs.GetComponent[*components.CollisionComponent](s.em, id)
	if !ok {
		return 0, 0, 0, 0, false
	}
	w, h = col.Width, col.Height
	if scale, ok := ecs.GetComponent[*components.ScaleComponent](s.em, id); ok {
		w *= scale.ScaleX
		h *= scale.ScaleY
	}
	return pos.X + col.OffsetX, pos.Y + col.OffsetY, w, h, true
}

// SpaceObjectCount 碰撞空间中的对象数量（包括玩家）
func (s *CollisionSystem) SpaceObjectCount() int {
	return len(s.inSpace)
}

func overlaps(ax, ay, aw, ah, bx, by, bw, bh float64) bool {
	return math.Abs(ax-bx)*2 < aw+bw && math.Abs(ay-by)*2 < ah+bh
}

func categoryTag(category types.PoolCategory) string {
	switch category {
	case types.CategoryDecoration:
		return CollisionTagDecoration
	case types.CategoryObstacle:
		return CollisionTagObstacle
	case types.CategoryPowerUp:
		return CollisionTagPowerUp
	default:
		return "unknown"
	}
}
