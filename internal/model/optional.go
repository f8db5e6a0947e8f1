package model

// Optional holds a value that may be absent. The zero Optional is absent.
// Optional is a plain value: copying it never shares state.
type Optional[T comparable] struct {
	value T
	set   bool
}

// Some returns an Optional holding v.
func Some[T comparable](v T) Optional[T] {
	return Optional[T]{value: v, set: true}
}

// None returns an absent Optional.
func None[T comparable]() Optional[T] {
	return Optional[T]{}
}

// Get returns the held value and whether it is present.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.set
}

// IsSet reports whether a value is present.
func (o Optional[T]) IsSet() bool {
	return o.set
}

// Is reports whether the Optional is present and equal to v.
func (o Optional[T]) Is(v T) bool {
	return o.set && o.value == v
}
