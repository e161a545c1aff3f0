package option

import (
	"errors"
	"fmt"

	"github.com/ib-77/variant/pkg/variant/result"
)

// ErrUnwrapOnNone reports Unwrap on a None option.
var ErrUnwrapOnNone = errors.New("option: called Unwrap on a None option")

// Option holds a value of type T when some is set. The zero value is None.
type Option[T any] struct {
	val  T
	some bool
}

func Some[T any](v T) Option[T] {
	return Option[T]{val: v, some: true}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

func (o Option[T]) IsSome() bool {
	return o.some
}

func (o Option[T]) IsNone() bool {
	return !o.some
}

// Unwrap returns the value or panics with ErrUnwrapOnNone.
func (o Option[T]) Unwrap() T {
	if !o.some {
		panic(ErrUnwrapOnNone)
	}
	return o.val
}

// UnwrapOr returns the value or fallback when the option is None.
func (o Option[T]) UnwrapOr(fallback T) T {
	if !o.some {
		return fallback
	}
	return o.val
}

func (o Option[T]) Get() (T, bool) {
	return o.val, o.some
}

// Ptr returns a pointer to a copy of the value, or nil for None.
func (o Option[T]) Ptr() *T {
	if !o.some {
		return nil
	}
	v := o.val
	return &v
}

func (o Option[T]) String() string {
	if !o.some {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.val)
}

// Map transforms the present value, passing None through untouched.
func Map[T, U any](o Option[T], f func(T) U) Option[U] {
	if !o.some {
		return None[U]()
	}
	return Some(f(o.val))
}

// AndThen sequences an option-returning step, short-circuiting on None.
func AndThen[T, U any](o Option[T], f func(T) Option[U]) Option[U] {
	if !o.some {
		return None[U]()
	}
	return f(o.val)
}

// Match reduces the option to a single value, calling exactly one handler.
func Match[T, R any](o Option[T], onSome func(T) R, onNone func() R) R {
	if !o.some {
		return onNone()
	}
	return onSome(o.val)
}

// Filter keeps Some only when the predicate accepts the value.
func Filter[T any](o Option[T], pred func(T) bool) Option[T] {
	if !o.some || !pred(o.val) {
		return None[T]()
	}
	return o
}

// OkOr converts to a Result, supplying the error for the None case.
func OkOr[T, E any](o Option[T], e E) result.Result[T, E] {
	if !o.some {
		return result.Err[T, E](e)
	}
	return result.Ok[T, E](o.val)
}

// FromResult keeps the Ok value and discards the error payload.
func FromResult[T, E any](r result.Result[T, E]) Option[T] {
	if v, ok := r.Get(); ok {
		return Some(v)
	}
	return None[T]()
}

// FromPtr treats nil as None and dereferences otherwise.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}
