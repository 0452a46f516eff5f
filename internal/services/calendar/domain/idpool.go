package domain

// IDPool hands out numeric identifiers for one entity kind, recycling
// released ids in FIFO order before growing the running maximum.
//
// The pool enforces no upper bound; protocol-level limits belong to the
// caller.
type IDPool struct {
	max  uint64
	free []uint64
}

// Allocate returns the oldest released id if any, otherwise it grows and
// returns the running maximum.
func (p *IDPool) Allocate() uint64 {
	if len(p.free) > 0 {
		id := p.free[0]
		p.free = p.free[1:]
		return id
	}
	p.max++
	return p.max
}

// Release makes id available again. Releasing the current maximum shrinks
// the id space instead of queueing the id for reuse.
func (p *IDPool) Release(id uint64) {
	if id == p.max {
		p.max--
		return
	}
	p.free = append(p.free, id)
}

// Reset rebuilds the pool from loaded state: the running maximum becomes
// max, and every id below it that inUse rejects joins the free list.
func (p *IDPool) Reset(max uint64, inUse func(uint64) bool) {
	p.max = max
	p.free = p.free[:0]
	for id := uint64(1); id < max; id++ {
		if !inUse(id) {
			p.free = append(p.free, id)
		}
	}
}
