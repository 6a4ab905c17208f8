package collection

import "github.com/hupe1980/arenakit"

// Stack is a last-in-first-out adapter over List.
type Stack[T any] struct {
	list *List[T]
}

// NewStack creates an empty stack that allocates through a.
func NewStack[T any](a arenakit.Allocator) *Stack[T] {
	return &Stack[T]{list: NewList[T](a)}
}

// Len returns the number of elements.
func (s *Stack[T]) Len() int { return s.list.Len() }

// Push adds v on top.
func (s *Stack[T]) Push(v T) error { return s.list.Append(v) }

// Pop removes and returns the top element. The second result is false if
// the stack is empty.
func (s *Stack[T]) Pop() (T, bool) { return s.list.Pop() }

// Peek returns the top element without removing it.
func (s *Stack[T]) Peek() (T, bool) {
	if s.list.Len() == 0 {
		var zero T
		return zero, false
	}
	return s.list.Get(s.list.Len() - 1), true
}

// Free releases the backing allocation.
func (s *Stack[T]) Free() { s.list.Free() }

// Queue is a first-in-first-out adapter over Deque.
type Queue[T any] struct {
	deque *Deque[T]
}

// NewQueue creates an empty queue that allocates through a.
func NewQueue[T any](a arenakit.Allocator) *Queue[T] {
	return &Queue[T]{deque: NewDeque[T](a)}
}

// Len returns the number of elements.
func (q *Queue[T]) Len() int { return q.deque.Len() }

// Enqueue adds v at the back.
func (q *Queue[T]) Enqueue(v T) error { return q.deque.PushBack(v) }

// Dequeue removes and returns the front element. The second result is
// false if the queue is empty.
func (q *Queue[T]) Dequeue() (T, bool) { return q.deque.PopFront() }

// Front returns the front element without removing it.
func (q *Queue[T]) Front() (T, bool) { return q.deque.Front() }

// Free releases the backing allocation.
func (q *Queue[T]) Free() { q.deque.Free() }
