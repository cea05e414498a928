package caches

import (
	"sync"
)

type Options struct {
	MaxSize int
}

// Cache keeps up to MaxSize values, dropping the oldest first. Concurrent
// Gets of the same missing key share one loader call. Failed loads are not
// kept.
type Cache[K comparable, V any] struct {
	mutex sync.Mutex
	opts  Options
	m     map[K]*Lazy[V]
	order []K
}

func NewCache[K comparable, V any](opts ...Options) *Cache[K, V] {
	o := Options{
		MaxSize: 1000,
	}
	for _, opt := range opts {
		if opt.MaxSize > 0 {
			o.MaxSize = opt.MaxSize
		}
	}

	return &Cache[K, V]{
		opts: o,
		m:    make(map[K]*Lazy[V]),
	}
}

func (c *Cache[K, V]) Get(key K, loader func(K) (V, error)) (V, error) {
	c.mutex.Lock()
	val, ok := c.m[key]
	if !ok {
		val = NewLazy[V](func() (V, error) { return loader(key) })
		c.add(key, val)
	}
	c.mutex.Unlock()

	result, err := val.Get()
	if err != nil {
		c.forget(key, val)
	}

	return result, err
}

func (c *Cache[K, V]) add(key K, val *Lazy[V]) {
	for len(c.order) >= c.opts.MaxSize {
		delete(c.m, c.order[0])
		c.order = c.order[1:]
	}

	c.m[key] = val
	c.order = append(c.order, key)
}

func (c *Cache[K, V]) forget(key K, val *Lazy[V]) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if c.m[key] != val {
		return
	}

	delete(c.m, key)
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

func (c *Cache[K, V]) Len() int {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	return len(c.m)
}
