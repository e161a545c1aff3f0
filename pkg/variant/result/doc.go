// Package result provides Result[T, E], a two-alternative union specialized
// for fallible computations.
//
// A Result is either Ok carrying a success value of type T or Err carrying a
// failure value of type E. Inspection never involves sentinel values:
// - Ok/Err: constructors; IsOk/IsErr: case queries
// - Unwrap/UnwrapErr: unchecked extraction, panicking with a taxonomy error
//   (ErrUnwrapOnErr, ErrUnwrapOnOk) on the wrong case
// - UnwrapOr: extraction with a fallback
// - Get/GetErr: comma-ok extraction
//
// Type-changing composition lives in package functions, since Go methods
// cannot introduce type parameters:
// - Map/MapErr: transform one side, pass the other through untouched
// - AndThen: sequence a fallible step, short-circuiting on Err
// - Match: reduce both cases to one value via handlers
// - Tee: run a side effect on Ok without changing the result
// - From/Unpack: bridge to and from Go's (T, error) convention
//
// Chain[T] composes same-type steps fluently on top of these primitives.
//
// Results are values: they copy freely, and when T and E are comparable two
// Results compare equal with == exactly when they hold the same case with
// equal payloads. The zero value is Ok of T's zero value.
package result
