package repository

import "sync"

// arena is an insertion-ordered collection with a monotonic id counter.
// Ids start at 1 and are never reused, even when building a record fails.
type arena[T any] struct {
	mu    sync.RWMutex
	items []*T
	index map[int64]int
	next  int64
}

func newArena[T any]() *arena[T] {
	return &arena[T]{
		index: make(map[int64]int),
		next:  1,
	}
}

// insert assigns the next id, stores the record built for it and returns a copy
func (a *arena[T]) insert(build func(id int64) (*T, error)) (*T, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	id := a.next
	a.next++

	record, err := build(id)
	if err != nil {
		return nil, err
	}

	a.index[id] = len(a.items)
	a.items = append(a.items, record)

	out := *record
	return &out, nil
}

// get returns a copy of the record with the given id, or nil
func (a *arena[T]) get(id int64) *T {
	a.mu.RLock()
	defer a.mu.RUnlock()

	i, ok := a.index[id]
	if !ok {
		return nil
	}
	out := *a.items[i]
	return &out
}

// filter returns copies of the records accepted by keep, in insertion order.
// A nil keep accepts everything. The result is never nil.
func (a *arena[T]) filter(keep func(*T) bool) []*T {
	a.mu.RLock()
	defer a.mu.RUnlock()

	out := make([]*T, 0, len(a.items))
	for _, item := range a.items {
		if keep == nil || keep(item) {
			c := *item
			out = append(out, &c)
		}
	}
	return out
}

// first returns a copy of the earliest inserted record accepted by match, or nil
func (a *arena[T]) first(match func(*T) bool) *T {
	a.mu.RLock()
	defer a.mu.RUnlock()

	for _, item := range a.items {
		if match(item) {
			c := *item
			return &c
		}
	}
	return nil
}
