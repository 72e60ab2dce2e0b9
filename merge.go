package nbt

import "fmt"

// Merge combines two trees with right-biased semantics: where both
// sides carry a compound, members are merged recursively; everywhere
// else the right side wins. Neither input is mutated, and subtrees
// taken unchanged from either side are deep copies.
func Merge(left, right *Tag) (*Tag, error) {
	if left == nil || right == nil {
		return nil, fmt.Errorf("nbt: merge requires two non-nil tags")
	}
	if left.Kind != KindCompound || right.Kind != KindCompound {
		return nil, fmt.Errorf("%w: merge expects compound roots, got %s and %s",
			ErrKindMismatch, left.Kind, right.Kind)
	}
	out := mergeTags(left, right)
	out.Name = left.Name
	return out, nil
}

func mergeTags(left, right *Tag) *Tag {
	if left.Kind != KindCompound || right.Kind != KindCompound {
		return right.Clone()
	}
	out := NewCompound(right.Name)
	for _, child := range left.Compound.Tags() {
		out.Compound.Put(child.Name, child.Clone())
	}
	for _, child := range right.Compound.Tags() {
		if existing, ok := out.Compound.Get(child.Name); ok {
			out.Compound.Put(child.Name, mergeTags(existing, child))
			continue
		}
		out.Compound.Put(child.Name, child.Clone())
	}
	return out
}
