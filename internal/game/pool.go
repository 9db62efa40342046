package game

// Pool is an arena allocator: a slot array plus a free-index stack.
// Acquire never fails; when the free stack is empty the arena grows.
// Releasing an index twice without an intervening Acquire is a caller
// error; managers guarantee single ownership by dropping an index from
// their live list the moment it is released.
type Pool[T any] struct {
	slots []T
	free  []int32
}

func NewPool[T any](prewarm int) *Pool[T] {
	if prewarm < 0 {
		prewarm = 0
	}
	p := &Pool[T]{
		slots: make([]T, prewarm),
		free:  make([]int32, 0, prewarm),
	}
	for i := prewarm - 1; i >= 0; i-- {
		p.free = append(p.free, int32(i))
	}
	return p
}

// Acquire pops a free slot index, growing the arena when none remain.
// The slot is zeroed before it is handed out.
func (p *Pool[T]) Acquire() int32 {
	if n := len(p.free); n > 0 {
		idx := p.free[n-1]
		p.free = p.free[:n-1]
		var zero T
		p.slots[idx] = zero
		return idx
	}
	var zero T
	p.slots = append(p.slots, zero)
	return int32(len(p.slots) - 1)
}

// Release returns a slot to the free stack.
func (p *Pool[T]) Release(idx int32) {
	if idx < 0 || int(idx) >= len(p.slots) {
		return
	}
	var zero T
	p.slots[idx] = zero
	p.free = append(p.free, idx)
}

func (p *Pool[T]) Get(idx int32) *T {
	return &p.slots[idx]
}

// Live reports how many slots are currently acquired.
func (p *Pool[T]) Live() int {
	return len(p.slots) - len(p.free)
}

// Cap reports the arena size (acquired + free).
func (p *Pool[T]) Cap() int {
	return len(p.slots)
}
