// Package variant provides closed tagged unions with value semantics.
//
// A union type OfN holds exactly one of N alternatives at a time. The active
// alternative is selected by a runtime discriminant and can be inspected,
// extracted or replaced without heap indirection:
// - Of2..Of5: fixed-arity union types with per-slot constructors (Of2A,
//   Of2B, ...) and setters (SetA, SetB, ...)
// - Index/Arity: query the discriminant and the number of alternatives
// - A()/B()/...: per-slot comma-ok extraction, exact on the discriminant
// - Is/Get/MustGet/GetIf: type-directed access on any Union value
// - Match2..Match5: exhaustive dispatch, one handler per alternative
//
// Inactive slots always hold their zero values, so two unions built from the
// same alternative and equal payloads compare equal with ==, and unions with
// different discriminants never do. The zero value of every OfN is the first
// alternative holding its zero payload.
//
// When two alternatives instantiate to the same Go type, type-directed access
// (Is, Get, GetIf) sees only the active payload; use Index or the per-slot
// accessors to tell the slots apart.
package variant
