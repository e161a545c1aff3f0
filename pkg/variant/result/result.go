package result

import (
	"errors"
	"fmt"

	"github.com/ib-77/variant/pkg/variant"
)

var (
	// ErrUnwrapOnErr reports Unwrap on an Err result.
	ErrUnwrapOnErr = errors.New("result: called Unwrap on an Err result")
	// ErrUnwrapOnOk reports UnwrapErr on an Ok result.
	ErrUnwrapOnOk = errors.New("result: called UnwrapErr on an Ok result")
)

// Result holds either an Ok value of type T or an Err value of type E.
type Result[T, E any] struct {
	u variant.Of2[T, E]
}

func Ok[T, E any](v T) Result[T, E] {
	return Result[T, E]{u: variant.Of2A[T, E](v)}
}

func Err[T, E any](e E) Result[T, E] {
	return Result[T, E]{u: variant.Of2B[T, E](e)}
}

func (r Result[T, E]) IsOk() bool {
	return r.u.Index() == 0
}

func (r Result[T, E]) IsErr() bool {
	return r.u.Index() == 1
}

// Unwrap returns the Ok value or panics with an error wrapping
// ErrUnwrapOnErr.
func (r Result[T, E]) Unwrap() T {
	v, ok := r.u.A()
	if !ok {
		e, _ := r.u.B()
		panic(fmt.Errorf("%w: %v", ErrUnwrapOnErr, e))
	}
	return v
}

// UnwrapErr returns the Err value or panics with an error wrapping
// ErrUnwrapOnOk.
func (r Result[T, E]) UnwrapErr() E {
	e, ok := r.u.B()
	if !ok {
		v, _ := r.u.A()
		panic(fmt.Errorf("%w: %v", ErrUnwrapOnOk, v))
	}
	return e
}

// UnwrapOr returns the Ok value or fallback when the result is Err.
func (r Result[T, E]) UnwrapOr(fallback T) T {
	if v, ok := r.u.A(); ok {
		return v
	}
	return fallback
}

func (r Result[T, E]) Get() (T, bool) {
	return r.u.A()
}

func (r Result[T, E]) GetErr() (E, bool) {
	return r.u.B()
}

func (r Result[T, E]) String() string {
	if v, ok := r.u.A(); ok {
		return fmt.Sprintf("Ok(%v)", v)
	}
	e, _ := r.u.B()
	return fmt.Sprintf("Err(%v)", e)
}

// Map transforms the Ok value, passing Err through untouched.
func Map[T, E, U any](r Result[T, E], f func(T) U) Result[U, E] {
	if v, ok := r.u.A(); ok {
		return Ok[U, E](f(v))
	}
	e, _ := r.u.B()
	return Err[U, E](e)
}

// MapErr transforms the Err value, passing Ok through untouched.
func MapErr[T, E, F any](r Result[T, E], f func(E) F) Result[T, F] {
	if e, ok := r.u.B(); ok {
		return Err[T, F](f(e))
	}
	v, _ := r.u.A()
	return Ok[T, F](v)
}

// AndThen sequences a fallible step, short-circuiting on Err.
func AndThen[T, E, U any](r Result[T, E], f func(T) Result[U, E]) Result[U, E] {
	if v, ok := r.u.A(); ok {
		return f(v)
	}
	e, _ := r.u.B()
	return Err[U, E](e)
}

// Match reduces the result to a single value, calling exactly one handler.
func Match[T, E, R any](r Result[T, E], onOk func(T) R, onErr func(E) R) R {
	return variant.Match2(r.u, onOk, onErr)
}

// Tee runs a side effect on the Ok value without changing the result.
func Tee[T, E any](r Result[T, E], f func(T)) Result[T, E] {
	if v, ok := r.u.A(); ok {
		f(v)
	}
	return r
}

// From converts a conventional (value, error) pair: nil error means Ok.
func From[T any](v T, err error) Result[T, error] {
	if err != nil {
		return Err[T, error](err)
	}
	return Ok[T, error](v)
}

// Unpack converts back to the (value, error) convention.
func Unpack[T any](r Result[T, error]) (T, error) {
	if v, ok := r.u.A(); ok {
		return v, nil
	}
	var zero T
	e, _ := r.u.B()
	return zero, e
}
