// Package option provides Option[T], a value that is either present or
// absent without resorting to pointers or sentinel values.
//
// An Option is Some carrying a value of type T, or None. The zero value is
// None:
// - Some/None: constructors; IsSome/IsNone: case queries
// - Unwrap: unchecked extraction, panicking with ErrUnwrapOnNone on None
// - UnwrapOr: extraction with a fallback
// - Get: comma-ok extraction
//
// Composition follows the result package, with type-changing operations as
// package functions:
// - Map/AndThen: transform or sequence over the present value
// - Match: reduce both cases via handlers
// - Filter: demote Some to None when a predicate rejects the value
// - OkOr/FromResult: convert between Option and Result
// - FromPtr/Ptr: bridge to nilable pointers
//
// Options are values and compare with == when T does: two Somes are equal
// only when their payloads are, and None equals None.
package option
