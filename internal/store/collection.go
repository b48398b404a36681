package store

import (
	"slices"
)

type Entity interface {
	EntityID() string
}

// Collection holds entities keyed by id and enumerates them in id order.
type Collection[T Entity] struct {
	ids      []string
	entities map[string]T
}

func NewCollection[T Entity]() *Collection[T] {
	return &Collection[T]{entities: map[string]T{}}
}

// AddOne inserts e unless its id is already present. It reports whether e was inserted.
func (c *Collection[T]) AddOne(e T) bool {
	id := e.EntityID()
	if _, ok := c.entities[id]; ok {
		return false
	}
	c.insertID(id)
	c.entities[id] = e
	return true
}

func (c *Collection[T]) UpsertOne(e T) {
	id := e.EntityID()
	if _, ok := c.entities[id]; !ok {
		c.insertID(id)
	}
	c.entities[id] = e
}

// UpdateOne replaces the entity with e's id. Unknown ids are ignored.
func (c *Collection[T]) UpdateOne(e T) bool {
	id := e.EntityID()
	if _, ok := c.entities[id]; !ok {
		return false
	}
	c.entities[id] = e
	return true
}

func (c *Collection[T]) RemoveOne(id string) bool {
	if _, ok := c.entities[id]; !ok {
		return false
	}
	delete(c.entities, id)
	if i, found := slices.BinarySearch(c.ids, id); found {
		c.ids = slices.Delete(c.ids, i, i+1)
	}
	return true
}

// SetAll replaces the whole content. A repeated id keeps the last entity given.
func (c *Collection[T]) SetAll(es []T) {
	c.ids = c.ids[:0]
	c.entities = make(map[string]T, len(es))
	for _, e := range es {
		c.UpsertOne(e)
	}
}

func (c *Collection[T]) Get(id string) (T, bool) {
	e, ok := c.entities[id]
	return e, ok
}

func (c *Collection[T]) All() []T {
	all := make([]T, 0, len(c.ids))
	for _, id := range c.ids {
		all = append(all, c.entities[id])
	}
	return all
}

func (c *Collection[T]) IDs() []string {
	return slices.Clone(c.ids)
}

func (c *Collection[T]) Len() int {
	return len(c.ids)
}

func (c *Collection[T]) insertID(id string) {
	i, _ := slices.BinarySearch(c.ids, id)
	c.ids = slices.Insert(c.ids, i, id)
}
