package ecs

// column is dense storage for one component type, indexed by entity slot.
// Each occupied slot remembers the generation that wrote it so a stale
// handle never reads a recycled entity's data.
type column struct {
	typ   ComponentType
	slots []columnSlot
	count int
}

type columnSlot struct {
	generation uint32
	value      Component
	occupied   bool
}

func newColumn(t ComponentType) *column {
	return &column{typ: t}
}

func (c *column) has(e Entity) bool {
	if int(e.index) >= len(c.slots) {
		return false
	}
	s := c.slots[e.index]
	return s.occupied && s.generation == e.generation
}

func (c *column) get(e Entity) (Component, bool) {
	if !c.has(e) {
		return nil, false
	}
	return c.slots[e.index].value, true
}

func (c *column) set(e Entity, v Component) {
	if need := int(e.index) + 1; need > len(c.slots) {
		c.slots = append(c.slots, make([]columnSlot, need-len(c.slots))...)
	}
	s := &c.slots[e.index]
	if !s.occupied {
		c.count++
	}
	*s = columnSlot{generation: e.generation, value: v, occupied: true}
}

func (c *column) remove(e Entity) bool {
	if !c.has(e) {
		return false
	}
	c.slots[e.index] = columnSlot{}
	c.count--
	return true
}

func (c *column) clear() {
	for i := range c.slots {
		c.slots[i] = columnSlot{}
	}
	c.count = 0
}

// each visits occupied slots in index order.
func (c *column) each(fn func(Entity)) {
	for i, s := range c.slots {
		if s.occupied {
			fn(Entity{index: uint32(i), generation: s.generation})
		}
	}
}
