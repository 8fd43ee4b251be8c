package pool

// FreeQueue 某一分类的空闲实例队列（FIFO）
//
// 出队从头部，归还和重新入队都追加到尾部。
// 防重复选择依赖这个顺序：被跳过的实例回到队尾，下次不会立刻再次被取出。
type FreeQueue[T comparable] struct {
	items []T
	head  int
}

// Len 返回队列中的实例数量
func (q *FreeQueue[T]) Len() int {
	return len(q.items) - q.head
}

// Push 将实例追加到队尾
func (q *FreeQueue[T]) Push(item T) {
	q.items = append(q.items, item)
}

// Pop 取出队头实例，队列为空时返回 false
func (q *FreeQueue[T]) Pop() (T, bool) {
	var zero T
	if q.Len() == 0 {
		return zero, false
	}
	item := q.items[q.head]
	q.items[q.head] = zero
	q.head++

	// 头部空洞过多时压缩底层数组
	if q.head > 32 && q.head*2 >= len(q.items) {
		n := copy(q.items, q.items[q.head:])
		clear(q.items[n:])
		q.items = q.items[:n]
		q.head = 0
	}
	return item, true
}

// Peek 查看队头实例但不取出
func (q *FreeQueue[T]) Peek() (T, bool) {
	var zero T
	if q.Len() == 0 {
		return zero, false
	}
	return q.items[q.head], true
}

// Snapshot 按出队顺序返回队列内容的副本
func (q *FreeQueue[T]) Snapshot() []T {
	out := make([]T, q.Len())
	copy(out, q.items[q.head:])
	return out
}
