package filter

import (
	"container/list"
	"sync"
)

// programCache is a thread-safe LRU of compiled filters keyed by expression
type programCache struct {
	capacity int
	order    *list.List
	items    map[string]*list.Element
	mu       sync.Mutex
}

type cached struct {
	expression string
	filter     *Filter
}

func newProgramCache(capacity int) *programCache {
	return &programCache{
		capacity: capacity,
		order:    list.New(),
		items:    make(map[string]*list.Element),
	}
}

// get returns the cached filter and marks it most recently used
func (c *programCache) get(expression string) (*Filter, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	node, ok := c.items[expression]
	if !ok {
		return nil, false
	}
	c.order.MoveToFront(node)
	return node.Value.(*cached).filter, true
}

// put stores a filter, evicting the least recently used one when full
func (c *programCache) put(expression string, f *Filter) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if node, ok := c.items[expression]; ok {
		c.order.MoveToFront(node)
		node.Value.(*cached).filter = f
		return
	}

	c.items[expression] = c.order.PushFront(&cached{expression: expression, filter: f})

	if c.order.Len() > c.capacity {
		oldest := c.order.Back()
		c.order.Remove(oldest)
		delete(c.items, oldest.Value.(*cached).expression)
	}
}

func (c *programCache) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[string]*list.Element)
	c.order.Init()
}

func (c *programCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.order.Len()
}
