// Package orderlist keeps items in an in-memory list ordered by fractional
// order keys. Inserting or moving an item assigns it one new key and never
// touches its neighbours.
package orderlist

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/btree"
	"github.com/google/uuid"

	"github.com/ntauth/orderkey"
)

var (
	ErrNotFound  = errors.New("item not found")
	ErrDuplicate = errors.New("duplicate item")
)

// Item is a snapshot of a list entry. Key is what a caller would persist
// next to the value to restore its position.
type Item[T any] struct {
	ID    uuid.UUID
	Key   string
	Value T
}

type entry[T any] struct {
	id    uuid.UUID
	key   string
	value T
}

// List is safe for concurrent use.
type List[T any] struct {
	mu    sync.RWMutex
	gen   *orderkey.Generator
	byKey *btree.BTreeG[*entry[T]]
	byID  map[uuid.UUID]*entry[T]
}

// New returns an empty list. A nil gen uses the default base-62 generator.
func New[T any](gen *orderkey.Generator) *List[T] {
	if gen == nil {
		gen = orderkey.New()
	}
	return &List[T]{
		gen: gen,
		byKey: btree.NewG(32, func(a, b *entry[T]) bool {
			return a.key < b.key
		}),
		byID: map[uuid.UUID]*entry[T]{},
	}
}

// Len returns the number of items.
func (l *List[T]) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.byKey.Len()
}

// Get returns the item with the given id.
func (l *List[T]) Get(id uuid.UUID) (Item[T], error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	e, ok := l.byID[id]
	if !ok {
		return Item[T]{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return e.item(), nil
}

// PushFront inserts v before every other item.
func (l *List[T]) PushFront(v T) (Item[T], error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	first := ""
	if e, ok := l.byKey.Min(); ok {
		first = e.key
	}
	return l.insert(v, "", first)
}

// PushBack inserts v after every other item.
func (l *List[T]) PushBack(v T) (Item[T], error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	last := ""
	if e, ok := l.byKey.Max(); ok {
		last = e.key
	}
	return l.insert(v, last, "")
}

// InsertAfter inserts v right after the item mark.
func (l *List[T]) InsertAfter(mark uuid.UUID, v T) (Item[T], error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	a, b, err := l.boundsAfter(mark, uuid.Nil)
	if err != nil {
		return Item[T]{}, err
	}
	return l.insert(v, a, b)
}

// InsertBefore inserts v right before the item mark.
func (l *List[T]) InsertBefore(mark uuid.UUID, v T) (Item[T], error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	a, b, err := l.boundsBefore(mark, uuid.Nil)
	if err != nil {
		return Item[T]{}, err
	}
	return l.insert(v, a, b)
}

// MoveAfter moves item id right after mark. Only id receives a new key.
func (l *List[T]) MoveAfter(id, mark uuid.UUID) (Item[T], error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	e, ok := l.byID[id]
	if !ok {
		return Item[T]{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if id == mark {
		return e.item(), nil
	}
	a, b, err := l.boundsAfter(mark, id)
	if err != nil {
		return Item[T]{}, err
	}
	return l.rekey(e, a, b)
}

// MoveBefore moves item id right before mark. Only id receives a new key.
func (l *List[T]) MoveBefore(id, mark uuid.UUID) (Item[T], error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	e, ok := l.byID[id]
	if !ok {
		return Item[T]{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if id == mark {
		return e.item(), nil
	}
	a, b, err := l.boundsBefore(mark, id)
	if err != nil {
		return Item[T]{}, err
	}
	return l.rekey(e, a, b)
}

// Remove deletes the item with the given id.
func (l *List[T]) Remove(id uuid.UUID) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	e, ok := l.byID[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	l.byKey.Delete(e)
	delete(l.byID, id)
	return nil
}

// Ascend calls fn for each item in list order until fn returns false.
// fn must not modify the list.
func (l *List[T]) Ascend(fn func(Item[T]) bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.byKey.Ascend(func(e *entry[T]) bool {
		return fn(e.item())
	})
}

// Items returns every item in list order.
func (l *List[T]) Items() []Item[T] {
	items := make([]Item[T], 0, l.Len())
	l.Ascend(func(it Item[T]) bool {
		items = append(items, it)
		return true
	})
	return items
}

// Load adds items that already carry keys, e.g. rows read back from
// storage. Every key is validated; nothing is added if any item fails.
func (l *List[T]) Load(items []Item[T]) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	ids := make(map[uuid.UUID]bool, len(items))
	keys := make(map[string]bool, len(items))
	for _, it := range items {
		if err := l.gen.Validate(it.Key); err != nil {
			return fmt.Errorf("item %s: %w", it.ID, err)
		}
		if _, exists := l.byID[it.ID]; exists || ids[it.ID] {
			return fmt.Errorf("%w: id %s", ErrDuplicate, it.ID)
		}
		if l.byKey.Has(&entry[T]{key: it.Key}) || keys[it.Key] {
			return fmt.Errorf("%w: key %s", ErrDuplicate, it.Key)
		}
		ids[it.ID] = true
		keys[it.Key] = true
	}
	for _, it := range items {
		l.put(&entry[T]{id: it.ID, key: it.Key, value: it.Value})
	}
	return nil
}

// Rebalance gives every item a fresh, evenly spread key while keeping the
// order. Keys grown long by repeated inserts at one spot become short again.
func (l *List[T]) Rebalance() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	n := l.byKey.Len()
	keys, err := l.gen.NKeysBetween("", "", uint(n))
	if err != nil {
		return err
	}
	entries := make([]*entry[T], 0, n)
	l.byKey.Ascend(func(e *entry[T]) bool {
		entries = append(entries, e)
		return true
	})
	l.byKey.Clear(false)
	for i, e := range entries {
		e.key = keys[i]
		l.byKey.ReplaceOrInsert(e)
	}
	return nil
}

func (l *List[T]) insert(v T, a, b string) (Item[T], error) {
	key, err := l.gen.KeyBetween(a, b)
	if err != nil {
		return Item[T]{}, err
	}
	e := &entry[T]{id: uuid.New(), key: key, value: v}
	l.put(e)
	return e.item(), nil
}

func (l *List[T]) rekey(e *entry[T], a, b string) (Item[T], error) {
	key, err := l.gen.KeyBetween(a, b)
	if err != nil {
		return Item[T]{}, err
	}
	l.byKey.Delete(e)
	e.key = key
	l.byKey.ReplaceOrInsert(e)
	return e.item(), nil
}

func (l *List[T]) put(e *entry[T]) {
	l.byKey.ReplaceOrInsert(e)
	l.byID[e.id] = e
}

// boundsAfter returns the keys around the gap right after mark, skipping
// the item skip (the one being moved).
func (l *List[T]) boundsAfter(mark, skip uuid.UUID) (string, string, error) {
	m, ok := l.byID[mark]
	if !ok {
		return "", "", fmt.Errorf("%w: %s", ErrNotFound, mark)
	}
	next := ""
	l.byKey.AscendGreaterOrEqual(m, func(e *entry[T]) bool {
		if e == m || e.id == skip {
			return true
		}
		next = e.key
		return false
	})
	return m.key, next, nil
}

// boundsBefore returns the keys around the gap right before mark, skipping
// the item skip.
func (l *List[T]) boundsBefore(mark, skip uuid.UUID) (string, string, error) {
	m, ok := l.byID[mark]
	if !ok {
		return "", "", fmt.Errorf("%w: %s", ErrNotFound, mark)
	}
	prev := ""
	l.byKey.DescendLessOrEqual(m, func(e *entry[T]) bool {
		if e == m || e.id == skip {
			return true
		}
		prev = e.key
		return false
	})
	return prev, m.key, nil
}

func (e *entry[T]) item() Item[T] {
	return Item[T]{ID: e.id, Key: e.key, Value: e.value}
}
