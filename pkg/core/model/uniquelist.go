package model

import "slices"

// Entity is implemented by the value types a UniqueList can hold
type Entity[T any] interface {
	// IsSame is the coarse identity used to reject duplicates
	IsSame(other T) bool
	// Equal is full value equality
	Equal(other T) bool
}

// UniqueList is an ordered list in which no two elements are the same (per IsSame)
// Insertion order is preserved; a replaced element keeps its position
type UniqueList[T Entity[T]] struct {
	items []T
}

// NewUniqueList returns a list holding items, or ErrDuplicateEntity if any two are the same
func NewUniqueList[T Entity[T]](items []T) (*UniqueList[T], error) {
	l := &UniqueList[T]{}
	if err := l.SetAll(items); err != nil {
		return nil, err
	}
	return l, nil
}

// Contains reports whether an element that is the same as e is in the list
func (l *UniqueList[T]) Contains(e T) bool {
	return slices.ContainsFunc(l.items, func(item T) bool {
		return item.IsSame(e)
	})
}

// Add appends e to the end of the list
func (l *UniqueList[T]) Add(e T) error {
	if l.Contains(e) {
		return ErrDuplicateEntity
	}
	l.items = append(l.items, e)
	return nil
}

// Set replaces target with replacement at the same position
// replacement may be the same entity as target (e.g. only the phone changed)
// but may not be the same as any other element
func (l *UniqueList[T]) Set(target, replacement T) error {
	index := l.indexOf(target)
	if index == -1 {
		return ErrEntityNotFound
	}

	if !target.IsSame(replacement) && l.Contains(replacement) {
		return ErrDuplicateEntity
	}

	l.items[index] = replacement
	return nil
}

// Remove deletes e from the list
func (l *UniqueList[T]) Remove(e T) error {
	index := l.indexOf(e)
	if index == -1 {
		return ErrEntityNotFound
	}
	l.items = slices.Delete(l.items, index, index+1)
	return nil
}

// SetAll replaces the whole contents of the list
// The list is left untouched if items contains duplicates
func (l *UniqueList[T]) SetAll(items []T) error {
	for i := range items {
		for j := i + 1; j < len(items); j++ {
			if items[i].IsSame(items[j]) {
				return ErrDuplicateEntity
			}
		}
	}
	l.items = slices.Clone(items)
	return nil
}

// Items returns a copy of the list contents in order
func (l *UniqueList[T]) Items() []T {
	return slices.Clone(l.items)
}

// Len returns the number of elements
func (l *UniqueList[T]) Len() int {
	return len(l.items)
}

// Filter returns the elements matching keep, in list order
func (l *UniqueList[T]) Filter(keep func(T) bool) []T {
	out := make([]T, 0, len(l.items))
	for _, item := range l.items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}

// indexOf finds target by value equality
func (l *UniqueList[T]) indexOf(target T) int {
	return slices.IndexFunc(l.items, func(item T) bool {
		return item.Equal(target)
	})
}
