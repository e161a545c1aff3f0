package variant

import (
	"errors"
	"fmt"
)

// ErrWrongAlternative reports type-directed access to an inactive alternative.
var ErrWrongAlternative = errors.New("variant: alternative is not active")

// Union is the read-side contract shared by every OfN type. The unexported
// method keeps the set closed to this package.
type Union interface {
	// Index returns the discriminant of the active alternative
	Index() int
	// Arity returns the number of alternatives
	Arity() int

	active() any
}

// Is reports whether the active alternative has type T.
func Is[T any](u Union) bool {
	_, ok := u.active().(T)
	return ok
}

// Get extracts the active alternative as T, or an error wrapping
// ErrWrongAlternative when a different alternative is active.
func Get[T any](u Union) (T, error) {
	v, ok := u.active().(T)
	if !ok {
		return v, fmt.Errorf("%w: want %T, active index is %d", ErrWrongAlternative, v, u.Index())
	}
	return v, nil
}

// MustGet is Get that panics instead of returning an error.
func MustGet[T any](u Union) T {
	v, err := Get[T](u)
	if err != nil {
		panic(err)
	}
	return v
}

// GetIf is the comma-ok form of Get.
func GetIf[T any](u Union) (T, bool) {
	v, ok := u.active().(T)
	return v, ok
}
