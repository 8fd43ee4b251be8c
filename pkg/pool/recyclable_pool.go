// Package pool 提供按分类管理的可回收对象池
//
// 每个实例在任意时刻只属于两个集合之一：所属分类的空闲队列，或活跃集合。
// 空闲 → 活跃只能通过 Acquire/AcquireWith，活跃 → 空闲只能通过 Release。
// 池子不会因耗尽而报错：空闲队列为空时按需分配新实例（池子随之增长）。
package pool

import (
	"log"
	"sort"
)

// Allocator 在空闲队列为空时为指定分类创建新实例
type Allocator[K comparable, T comparable] func(category K) T

// Selector 从空闲队列中挑选一个实例
//
// 实现可以多次 Pop 并把不想要的实例 Push 回队尾，但必须只返回一个自己取出的实例。
// 返回 false 表示放弃挑选，池子会转为按需分配。
type Selector[T comparable] func(q *FreeQueue[T]) (T, bool)

// Hooks 实例生命周期回调，全部可选
type Hooks[T comparable] struct {
	// Reset 在实例进入活跃集合之前运行，把瞬时状态恢复为干净状态
	Reset func(item T)
	// Activate 在 Reset 和放置之后运行，使实例可见/可交互
	Activate func(item T)
	// Deactivate 在实例回到空闲队列之前运行
	Deactivate func(item T)
}

// Stats 池子统计信息
type Stats struct {
	Allocated int // 会话内创建的实例总数（预热 + 按需）
	Active    int // 当前活跃实例数
	Free      int // 当前空闲实例数（所有分类）
	Misses    int // 因空闲队列为空而按需分配的次数
	Acquires  int // Acquire 调用总数
	Releases  int // 实际生效的 Release 次数
}

type entryState[K comparable] struct {
	category K
	active   bool
}

// RecyclablePool 按分类 K 管理可复用实例 T
type RecyclablePool[K comparable, T comparable] struct {
	name    string
	free    map[K]*FreeQueue[T]
	entries map[T]entryState[K]
	alloc   Allocator[K, T]
	hooks   Hooks[T]
	less    func(a, b T) bool

	allocated int
	misses    int
	acquires  int
	releases  int
}

// Option 池子构造选项
type Option[K comparable, T comparable] func(p *RecyclablePool[K, T])

// WithHooks 设置生命周期回调
func WithHooks[K comparable, T comparable](hooks Hooks[T]) Option[K, T] {
	return func(p *RecyclablePool[K, T]) {
		p.hooks = hooks
	}
}

// WithOrdering 设置活跃实例快照的排序方式（保证遍历顺序稳定）
func WithOrdering[K comparable, T comparable](less func(a, b T) bool) Option[K, T] {
	return func(p *RecyclablePool[K, T]) {
		p.less = less
	}
}

// New 创建对象池
//
// 参数：
//   - name: 日志中使用的池子名称
//   - alloc: 默认分配器，空闲队列为空时调用；为 nil 时按需分配会失败并返回零值
func New[K comparable, T comparable](name string, alloc Allocator[K, T], opts ...Option[K, T]) *RecyclablePool[K, T] {
	p := &RecyclablePool[K, T]{
		name:    name,
		free:    make(map[K]*FreeQueue[T]),
		entries: make(map[T]entryState[K]),
		alloc:   alloc,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *RecyclablePool[K, T]) queue(category K) *FreeQueue[T] {
	q, ok := p.free[category]
	if !ok {
		q = &FreeQueue[T]{}
		p.free[category] = q
	}
	return q
}

// Prewarm 登记一个预先创建的空闲实例
// 已登记过的实例会被忽略
func (p *RecyclablePool[K, T]) Prewarm(category K, item T) {
	if _, known := p.entries[item]; known {
		log.Printf("[%s] WARNING: prewarm of already pooled item %v ignored", p.name, item)
		return
	}
	p.entries[item] = entryState[K]{category: category}
	p.queue(category).Push(item)
	p.allocated++
}

// Acquire 从分类的空闲队列头部取出实例，队列为空时使用默认分配器创建
//
// place 在 Reset 之后、Activate 之前调用，用于设置位置等放置信息。
func (p *RecyclablePool[K, T]) Acquire(category K, place func(item T)) T {
	return p.AcquireWith(category, nil, nil, place)
}

// AcquireWith 使用自定义挑选器和分配器取出实例
//
// sel 为 nil 时按 FIFO 取队头；alloc 为 nil 时使用默认分配器。
func (p *RecyclablePool[K, T]) AcquireWith(category K, sel Selector[T], alloc func() T, place func(item T)) T {
	p.acquires++

	item, ok := p.takeFree(category, sel)
	if !ok {
		item, ok = p.allocate(category, alloc)
		if !ok {
			var zero T
			return zero
		}
	}

	// 顺序固定：重置 → 放置 → 激活 → 进入活跃集合
	if p.hooks.Reset != nil {
		p.hooks.Reset(item)
	}
	if place != nil {
		place(item)
	}
	if p.hooks.Activate != nil {
		p.hooks.Activate(item)
	}
	p.entries[item] = entryState[K]{category: category, active: true}
	return item
}

func (p *RecyclablePool[K, T]) takeFree(category K, sel Selector[T]) (T, bool) {
	var zero T
	q := p.queue(category)
	if q.Len() == 0 {
		return zero, false
	}

	var (
		item T
		ok   bool
	)
	if sel != nil {
		item, ok = sel(q)
	} else {
		item, ok = q.Pop()
	}
	if !ok {
		return zero, false
	}

	st, known := p.entries[item]
	if !known || st.active || st.category != category {
		log.Printf("[%s] WARNING: selector returned item %v that is not free in this category", p.name, item)
		return zero, false
	}
	return item, true
}

func (p *RecyclablePool[K, T]) allocate(category K, alloc func() T) (T, bool) {
	var item T
	switch {
	case alloc != nil:
		item = alloc()
	case p.alloc != nil:
		item = p.alloc(category)
	default:
		log.Printf("[%s] WARNING: free queue empty and no allocator configured", p.name)
		return item, false
	}

	// 零值不是合法实例（例如工厂创建失败返回的无效 ID）
	var zero T
	if item == zero {
		log.Printf("[%s] WARNING: allocator returned zero value for category %v", p.name, category)
		return item, false
	}
	if _, known := p.entries[item]; known {
		log.Printf("[%s] WARNING: allocator returned already pooled item %v", p.name, item)
		return item, false
	}
	p.entries[item] = entryState[K]{category: category}
	p.allocated++
	p.misses++
	return item, true
}

// Release 将活跃实例归还到所属分类的空闲队列
//
// 对空闲实例或未知实例重复调用是无操作（同一帧内碰撞和出屏可能同时触发归还）。
// 返回 true 表示本次调用确实完成了归还。
func (p *RecyclablePool[K, T]) Release(item T) bool {
	st, known := p.entries[item]
	if !known {
		log.Printf("[%s] WARNING: release of unknown item %v ignored", p.name, item)
		return false
	}
	if !st.active {
		return false
	}

	if p.hooks.Deactivate != nil {
		p.hooks.Deactivate(item)
	}
	p.entries[item] = entryState[K]{category: st.category}
	p.queue(st.category).Push(item)
	p.releases++
	return true
}

// IsActive 返回实例是否处于活跃集合
func (p *RecyclablePool[K, T]) IsActive(item T) bool {
	return p.entries[item].active
}

// IsFree 返回实例是否处于空闲队列
func (p *RecyclablePool[K, T]) IsFree(item T) bool {
	st, known := p.entries[item]
	return known && !st.active
}

// CategoryOf 返回实例登记时的分类
func (p *RecyclablePool[K, T]) CategoryOf(item T) (K, bool) {
	st, known := p.entries[item]
	return st.category, known
}

// FreeLen 返回指定分类空闲队列的长度
func (p *RecyclablePool[K, T]) FreeLen(category K) int {
	if q, ok := p.free[category]; ok {
		return q.Len()
	}
	return 0
}

// FreeSnapshot 按出队顺序返回指定分类空闲队列的副本
func (p *RecyclablePool[K, T]) FreeSnapshot(category K) []T {
	if q, ok := p.free[category]; ok {
		return q.Snapshot()
	}
	return nil
}

// ActiveLen 返回活跃实例数量
func (p *RecyclablePool[K, T]) ActiveLen() int {
	n := 0
	for _, st := range p.entries {
		if st.active {
			n++
		}
	}
	return n
}

// Active 返回活跃实例的快照
// 配置了 WithOrdering 时结果有序
func (p *RecyclablePool[K, T]) Active() []T {
	out := make([]T, 0)
	for item, st := range p.entries {
		if st.active {
			out = append(out, item)
		}
	}
	if p.less != nil {
		sort.Slice(out, func(i, j int) bool { return p.less(out[i], out[j]) })
	}
	return out
}

// Stats 返回池子统计信息
func (p *RecyclablePool[K, T]) Stats() Stats {
	active := p.ActiveLen()
	free := 0
	for _, q := range p.free {
		free += q.Len()
	}
	return Stats{
		Allocated: p.allocated,
		Active:    active,
		Free:      free,
		Misses:    p.misses,
		Acquires:  p.acquires,
		Releases:  p.releases,
	}
}
