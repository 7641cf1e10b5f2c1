package util

// Stack is a LIFO used to track the currently open ancestors while a tree
// is being built.
type Stack[T any] struct {
	items []T
}

func NewStack[T any](items ...T) *Stack[T] {
	s := &Stack[T]{}
	s.Reset(items...)
	return s
}

func (s *Stack[T]) Push(item T) {
	s.items = append(s.items, item)
}

// Pop removes up to amount items from the top and returns how many were
// actually removed.
func (s *Stack[T]) Pop(amount int) int {
	if amount <= 0 {
		return 0
	}
	amount = Min(amount, len(s.items))
	var zero T
	for i := len(s.items) - amount; i < len(s.items); i++ {
		s.items[i] = zero
	}
	s.items = s.items[:len(s.items)-amount]
	return amount
}

func (s *Stack[T]) Top() (T, bool) {
	if len(s.items) == 0 {
		var zero T
		return zero, false
	}
	return s.items[len(s.items)-1], true
}

func (s *Stack[T]) Len() int {
	return len(s.items)
}

// Reset replaces the contents with items, bottom first.
func (s *Stack[T]) Reset(items ...T) {
	s.items = append(s.items[:0], items...)
}
