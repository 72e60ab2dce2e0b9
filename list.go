package nbt

import "fmt"

// List is an ordered, homogeneous sequence of unnamed tags. Elem is
// the element kind every member must share; KindEnd means the kind is
// not yet determined (an empty list) and is fixed by the first append.
type List struct {
	Elem  Kind
	items []*Tag
}

// Append adds t to the list. The first element appended to an
// undetermined list fixes its element kind; a later element of a
// different kind is rejected with ErrKindMismatch. Appended tags lose
// their name: list elements are unnamed.
func (l *List) Append(t *Tag) error {
	if t.Kind == KindEnd {
		return fmt.Errorf("%w: cannot append %s", ErrKindMismatch, t.Kind)
	}
	if l.Elem == KindEnd {
		l.Elem = t.Kind
	} else if t.Kind != l.Elem {
		return fmt.Errorf("%w: list of %s, got %s", ErrKindMismatch, l.Elem, t.Kind)
	}
	t.Name = ""
	l.items = append(l.items, t)
	return nil
}

// At returns the element at index i.
func (l *List) At(i int) *Tag {
	return l.items[i]
}

// Len returns the number of elements.
func (l *List) Len() int {
	return len(l.items)
}

// Items returns the backing element slice in order. The slice is
// borrowed: it remains owned by the list and must not be mutated.
func (l *List) Items() []*Tag {
	return l.items
}
