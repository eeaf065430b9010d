package editstate

// Mode distinguishes creating a fresh aggregate from editing an existing
// one. Update mode carries the original data the field diffs run against.
type Mode[T any] struct {
	original *T
}

// CreateMode returns the mode for a brand-new aggregate.
func CreateMode[T any]() Mode[T] { return Mode[T]{} }

// UpdateMode returns the mode for editing orig.
func UpdateMode[T any](orig T) Mode[T] { return Mode[T]{original: &orig} }

// IsCreate reports whether no original exists.
func (m Mode[T]) IsCreate() bool { return m.original == nil }

// Original returns the original aggregate and true in update mode.
func (m Mode[T]) Original() (T, bool) {
	if m.original == nil {
		var zero T
		return zero, false
	}
	return *m.original, true
}
