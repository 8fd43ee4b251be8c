package ecs

import "testing"

// 测试组件类型定义
type testPositionComponent struct {
	X, Y float64
}

type testVelocityComponent struct {
	VX, VY float64
}

type testTagComponent struct {
	Name string
}

func TestCreateEntity(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()

	// 测试实体ID唯一性
	if id1 == id2 {
		t.Error("Entity IDs should be unique")
	}

	// 测试ID从1开始
	if id1 != 1 {
		t.Errorf("First entity ID should be 1, got %d", id1)
	}
	if id2 != 2 {
		t.Errorf("Second entity ID should be 2, got %d", id2)
	}
	if id1 == InvalidEntity || id2 == InvalidEntity {
		t.Error("Created entity must never use the invalid ID")
	}
}

func TestAddAndGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	AddComponent(em, id, &testPositionComponent{X: 100, Y: 200})

	pos, found := GetComponent[*testPositionComponent](em, id)
	if !found {
		t.Fatal("Component should be found")
	}
	if pos.X != 100 || pos.Y != 200 {
		t.Errorf("Component data mismatch, expected (100, 200), got (%f, %f)", pos.X, pos.Y)
	}

	// 组件是指针，修改应可见
	pos.X = 5
	again, _ := GetComponent[*testPositionComponent](em, id)
	if again.X != 5 {
		t.Errorf("Expected pointer component to be shared, got X=%f", again.X)
	}
}

func TestHasAndRemoveComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	if HasComponent[*testPositionComponent](em, id) {
		t.Error("Entity should not have position component yet")
	}

	AddComponent(em, id, &testPositionComponent{})
	if !HasComponent[*testPositionComponent](em, id) {
		t.Error("Entity should have position component")
	}

	RemoveComponent[*testPositionComponent](em, id)
	if HasComponent[*testPositionComponent](em, id) {
		t.Error("Position component should be removed")
	}
}

func TestDestroyEntity(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	AddComponent(em, id, &testPositionComponent{X: 1})

	em.DestroyEntity(id)

	// 标记后实体仍存在，直到 RemoveMarkedEntities
	if !em.Exists(id) {
		t.Error("Entity should still exist before RemoveMarkedEntities")
	}

	em.RemoveMarkedEntities()

	if em.Exists(id) {
		t.Error("Entity should be removed after RemoveMarkedEntities")
	}
	if _, ok := GetComponent[*testPositionComponent](em, id); ok {
		t.Error("Components of a removed entity must not be returned")
	}
	if em.Count() != 0 {
		t.Errorf("Expected 0 entities, got %d", em.Count())
	}
}

func TestGetEntitiesWith(t *testing.T) {
	em := NewEntityManager()

	e1 := em.CreateEntity()
	AddComponent(em, e1, &testPositionComponent{})
	AddComponent(em, e1, &testVelocityComponent{})

	e2 := em.CreateEntity()
	AddComponent(em, e2, &testPositionComponent{})

	e3 := em.CreateEntity()
	AddComponent(em, e3, &testPositionComponent{})
	AddComponent(em, e3, &testVelocityComponent{})
	AddComponent(em, e3, &testTagComponent{Name: "tag"})

	tests := []struct {
		name string
		got  []EntityID
		want []EntityID
	}{
		{"position only", GetEntitiesWith1[*testPositionComponent](em), []EntityID{e1, e2, e3}},
		{"position and velocity", GetEntitiesWith2[*testPositionComponent, *testVelocityComponent](em), []EntityID{e1, e3}},
		{"all three", GetEntitiesWith3[*testPositionComponent, *testVelocityComponent, *testTagComponent](em), []EntityID{e3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if len(tt.got) != len(tt.want) {
				t.Fatalf("expected %d entities, got %d (%v)", len(tt.want), len(tt.got), tt.got)
			}
			// 查询结果按 ID 升序
			for i := range tt.want {
				if tt.got[i] != tt.want[i] {
					t.Errorf("index %d: expected %d, got %d", i, tt.want[i], tt.got[i])
				}
			}
		})
	}
}

func TestAddComponentToUnknownEntity(t *testing.T) {
	em := NewEntityManager()

	// 不存在的实体：添加无效果，不应 panic
	AddComponent(em, EntityID(42), &testPositionComponent{})

	if HasComponent[*testPositionComponent](em, EntityID(42)) {
		t.Error("Unknown entity must not receive components")
	}
}
