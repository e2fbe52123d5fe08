package modal

// Setting is an optional configuration value. The zero Setting is unset,
// which is distinct from a set zero value: Set(false) overrides a lower
// source while Setting[bool]{} falls through to it.
type Setting[T any] struct {
	value T
	set   bool
}

// Set returns a Setting holding v.
func Set[T any](v T) Setting[T] {
	return Setting[T]{value: v, set: true}
}

// Get returns the value and whether it was set.
func (s Setting[T]) Get() (T, bool) {
	return s.value, s.set
}

// IsSet reports whether the setting carries a value.
func (s Setting[T]) IsSet() bool {
	return s.set
}

// Or returns the value if set, def otherwise.
func (s Setting[T]) Or(def T) T {
	if s.set {
		return s.value
	}
	return def
}

// over returns s if it is set, otherwise lower.
func (s Setting[T]) over(lower Setting[T]) Setting[T] {
	if s.set {
		return s
	}
	return lower
}
