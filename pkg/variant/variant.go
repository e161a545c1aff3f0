package variant

import "fmt"

// Of2 is a closed union of two alternatives.
type Of2[T0, T1 any] struct {
	tag uint8
	a   T0
	b   T1
}

func Of2A[T0, T1 any](v T0) Of2[T0, T1] {
	return Of2[T0, T1]{tag: 0, a: v}
}

func Of2B[T0, T1 any](v T1) Of2[T0, T1] {
	return Of2[T0, T1]{tag: 1, b: v}
}

// SetA replaces the whole value, zeroing every other slot.
func (u *Of2[T0, T1]) SetA(v T0) {
	*u = Of2[T0, T1]{tag: 0, a: v}
}

func (u *Of2[T0, T1]) SetB(v T1) {
	*u = Of2[T0, T1]{tag: 1, b: v}
}

func (u Of2[T0, T1]) Index() int {
	return int(u.tag)
}

func (u Of2[T0, T1]) Arity() int {
	return 2
}

// A extracts the first alternative, reporting whether it is active.
func (u Of2[T0, T1]) A() (T0, bool) {
	if u.tag != 0 {
		var zero T0
		return zero, false
	}
	return u.a, true
}

func (u Of2[T0, T1]) B() (T1, bool) {
	if u.tag != 1 {
		var zero T1
		return zero, false
	}
	return u.b, true
}

func (u Of2[T0, T1]) active() any {
	if u.tag == 1 {
		return u.b
	}
	return u.a
}

func (u Of2[T0, T1]) String() string {
	return fmt.Sprintf("Of2(%d: %v)", u.tag, u.active())
}

// Of3 is a closed union of three alternatives.
type Of3[T0, T1, T2 any] struct {
	tag uint8
	a   T0
	b   T1
	c   T2
}

func Of3A[T0, T1, T2 any](v T0) Of3[T0, T1, T2] {
	return Of3[T0, T1, T2]{tag: 0, a: v}
}

func Of3B[T0, T1, T2 any](v T1) Of3[T0, T1, T2] {
	return Of3[T0, T1, T2]{tag: 1, b: v}
}

func Of3C[T0, T1, T2 any](v T2) Of3[T0, T1, T2] {
	return Of3[T0, T1, T2]{tag: 2, c: v}
}

func (u *Of3[T0, T1, T2]) SetA(v T0) {
	*u = Of3[T0, T1, T2]{tag: 0, a: v}
}

func (u *Of3[T0, T1, T2]) SetB(v T1) {
	*u = Of3[T0, T1, T2]{tag: 1, b: v}
}

func (u *Of3[T0, T1, T2]) SetC(v T2) {
	*u = Of3[T0, T1, T2]{tag: 2, c: v}
}

func (u Of3[T0, T1, T2]) Index() int {
	return int(u.tag)
}

func (u Of3[T0, T1, T2]) Arity() int {
	return 3
}

func (u Of3[T0, T1, T2]) A() (T0, bool) {
	if u.tag != 0 {
		var zero T0
		return zero, false
	}
	return u.a, true
}

func (u Of3[T0, T1, T2]) B() (T1, bool) {
	if u.tag != 1 {
		var zero T1
		return zero, false
	}
	return u.b, true
}

func (u Of3[T0, T1, T2]) C() (T2, bool) {
	if u.tag != 2 {
		var zero T2
		return zero, false
	}
	return u.c, true
}

func (u Of3[T0, T1, T2]) active() any {
	switch u.tag {
	case 1:
		return u.b
	case 2:
		return u.c
	default:
		return u.a
	}
}

func (u Of3[T0, T1, T2]) String() string {
	return fmt.Sprintf("Of3(%d: %v)", u.tag, u.active())
}

// Of4 is a closed union of four alternatives.
type Of4[T0, T1, T2, T3 any] struct {
	tag uint8
	a   T0
	b   T1
	c   T2
	d   T3
}

func Of4A[T0, T1, T2, T3 any](v T0) Of4[T0, T1, T2, T3] {
	return Of4[T0, T1, T2, T3]{tag: 0, a: v}
}

func Of4B[T0, T1, T2, T3 any](v T1) Of4[T0, T1, T2, T3] {
	return Of4[T0, T1, T2, T3]{tag: 1, b: v}
}

func Of4C[T0, T1, T2, T3 any](v T2) Of4[T0, T1, T2, T3] {
	return Of4[T0, T1, T2, T3]{tag: 2, c: v}
}

func Of4D[T0, T1, T2, T3 any](v T3) Of4[T0, T1, T2, T3] {
	return Of4[T0, T1, T2, T3]{tag: 3, d: v}
}

func (u *Of4[T0, T1, T2, T3]) SetA(v T0) {
	*u = Of4[T0, T1, T2, T3]{tag: 0, a: v}
}

func (u *Of4[T0, T1, T2, T3]) SetB(v T1) {
	*u = Of4[T0, T1, T2, T3]{tag: 1, b: v}
}

func (u *Of4[T0, T1, T2, T3]) SetC(v T2) {
	*u = Of4[T0, T1, T2, T3]{tag: 2, c: v}
}

func (u *Of4[T0, T1, T2, T3]) SetD(v T3) {
	*u = Of4[T0, T1, T2, T3]{tag: 3, d: v}
}

func (u Of4[T0, T1, T2, T3]) Index() int {
	return int(u.tag)
}

func (u Of4[T0, T1, T2, T3]) Arity() int {
	return 4
}

func (u Of4[T0, T1, T2, T3]) A() (T0, bool) {
	if u.tag != 0 {
		var zero T0
		return zero, false
	}
	return u.a, true
}

func (u Of4[T0, T1, T2, T3]) B() (T1, bool) {
	if u.tag != 1 {
		var zero T1
		return zero, false
	}
	return u.b, true
}

func (u Of4[T0, T1, T2, T3]) C() (T2, bool) {
	if u.tag != 2 {
		var zero T2
		return zero, false
	}
	return u.c, true
}

func (u Of4[T0, T1, T2, T3]) D() (T3, bool) {
	if u.tag != 3 {
		var zero T3
		return zero, false
	}
	return u.d, true
}

func (u Of4[T0, T1, T2, T3]) active() any {
	switch u.tag {
	case 1:
		return u.b
	case 2:
		return u.c
	case 3:
		return u.d
	default:
		return u.a
	}
}

func (u Of4[T0, T1, T2, T3]) String() string {
	return fmt.Sprintf("Of4(%d: %v)", u.tag, u.active())
}

// Of5 is a closed union of five alternatives.
type Of5[T0, T1, T2, T3, T4 any] struct {
	tag uint8
	a   T0
	b   T1
	c   T2
	d   T3
	e   T4
}

func Of5A[T0, T1, T2, T3, T4 any](v T0) Of5[T0, T1, T2, T3, T4] {
	return Of5[T0, T1, T2, T3, T4]{tag: 0, a: v}
}

func Of5B[T0, T1, T2, T3, T4 any](v T1) Of5[T0, T1, T2, T3, T4] {
	return Of5[T0, T1, T2, T3, T4]{tag: 1, b: v}
}

func Of5C[T0, T1, T2, T3, T4 any](v T2) Of5[T0, T1, T2, T3, T4] {
	return Of5[T0, T1, T2, T3, T4]{tag: 2, c: v}
}

func Of5D[T0, T1, T2, T3, T4 any](v T3) Of5[T0, T1, T2, T3, T4] {
	return Of5[T0, T1, T2, T3, T4]{tag: 3, d: v}
}

func Of5E[T0, T1, T2, T3, T4 any](v T4) Of5[T0, T1, T2, T3, T4] {
	return Of5[T0, T1, T2, T3, T4]{tag: 4, e: v}
}

func (u *Of5[T0, T1, T2, T3, T4]) SetA(v T0) {
	*u = Of5[T0, T1, T2, T3, T4]{tag: 0, a: v}
}

func (u *Of5[T0, T1, T2, T3, T4]) SetB(v T1) {
	*u = Of5[T0, T1, T2, T3, T4]{tag: 1, b: v}
}

func (u *Of5[T0, T1, T2, T3, T4]) SetC(v T2) {
	*u = Of5[T0, T1, T2, T3, T4]{tag: 2, c: v}
}

func (u *Of5[T0, T1, T2, T3, T4]) SetD(v T3) {
	*u = Of5[T0, T1, T2, T3, T4]{tag: 3, d: v}
}

func (u *Of5[T0, T1, T2, T3, T4]) SetE(v T4) {
	*u = Of5[T0, T1, T2, T3, T4]{tag: 4, e: v}
}

func (u Of5[T0, T1, T2, T3, T4]) Index() int {
	return int(u.tag)
}

func (u Of5[T0, T1, T2, T3, T4]) Arity() int {
	return 5
}

func (u Of5[T0, T1, T2, T3, T4]) A() (T0, bool) {
	if u.tag != 0 {
		var zero T0
		return zero, false
	}
	return u.a, true
}

func (u Of5[T0, T1, T2, T3, T4]) B() (T1, bool) {
	if u.tag != 1 {
		var zero T1
		return zero, false
	}
	return u.b, true
}

func (u Of5[T0, T1, T2, T3, T4]) C() (T2, bool) {
	if u.tag != 2 {
		var zero T2
		return zero, false
	}
	return u.c, true
}

func (u Of5[T0, T1, T2, T3, T4]) D() (T3, bool) {
	if u.tag != 3 {
		var zero T3
		return zero, false
	}
	return u.d, true
}

func (u Of5[T0, T1, T2, T3, T4]) E() (T4, bool) {
	if u.tag != 4 {
		var zero T4
		return zero, false
	}
	return u.e, true
}

func (u Of5[T0, T1, T2, T3, T4]) active() any {
	switch u.tag {
	case 1:
		return u.b
	case 2:
		return u.c
	case 3:
		return u.d
	case 4:
		return u.e
	default:
		return u.a
	}
}

func (u Of5[T0, T1, T2, T3, T4]) String() string {
	return fmt.Sprintf("Of5(%d: %v)", u.tag, u.active())
}
