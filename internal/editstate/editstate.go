// Package editstate tracks the per-field editing state of a form.
//
// Every editable field maps through a four-state Input value: Empty (no
// value yet), Unchanged (equals the original), Updated (valid and
// changed), or Invalid (fails the field's rule). Form-level decisions —
// "is anything dirty", "may the user submit" — are derived from the set
// of field states, recomputed after every transition.
package editstate

// Kind enumerates the four editing states.
type Kind int

const (
	Empty Kind = iota
	Unchanged
	Updated
	Invalid
)

func (k Kind) String() string {
	switch k {
	case Empty:
		return "empty"
	case Unchanged:
		return "unchanged"
	case Updated:
		return "updated"
	case Invalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// Input is the state of one editable field. Exactly one Kind holds at a
// time; the carried value is meaningful only for Updated.
type Input[T any] struct {
	kind  Kind
	value T
}

// EmptyInput returns the state of a field with no value yet.
func EmptyInput[T any]() Input[T] { return Input[T]{kind: Empty} }

// UnchangedInput returns the state of a field equal to its original.
func UnchangedInput[T any]() Input[T] { return Input[T]{kind: Unchanged} }

// UpdatedInput returns the state of a field holding a valid new value.
func UpdatedInput[T any](v T) Input[T] { return Input[T]{kind: Updated, value: v} }

// InvalidInput returns the state of a field failing its validation rule.
func InvalidInput[T any]() Input[T] { return Input[T]{kind: Invalid} }

// Kind returns which state currently holds.
func (in Input[T]) Kind() Kind { return in.kind }

// NewValue yields the carried value and true only when the state is
// Updated.
func (in Input[T]) NewValue() (T, bool) {
	if in.kind != Updated {
		var zero T
		return zero, false
	}
	return in.value, true
}

// Acceptable reports whether the field would pass submission as-is.
func (in Input[T]) Acceptable() bool {
	return in.kind == Unchanged || in.kind == Updated
}

// IsUpdated reports whether the field holds a valid changed value.
func (in Input[T]) IsUpdated() bool { return in.kind == Updated }

// Classify runs the validate-then-diff transition for one field edit:
// an invalid value wins over everything, then equality with the original
// (when one exists) decides Unchanged versus Updated. In create mode pass
// original == nil; any valid value counts as changed.
func Classify[T comparable](original *T, newValue T, valid bool) Input[T] {
	return ClassifyFunc(original, newValue, valid, func(a, b T) bool { return a == b })
}

// ClassifyFunc is Classify for types without built-in equality, such as
// slices of settlement entries.
func ClassifyFunc[T any](original *T, newValue T, valid bool, eq func(a, b T) bool) Input[T] {
	if !valid {
		return InvalidInput[T]()
	}
	if original != nil && eq(*original, newValue) {
		return UnchangedInput[T]()
	}
	return UpdatedInput(newValue)
}
