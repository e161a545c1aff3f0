// Package record provides fixed-shape payload records for union alternatives.
//
// Records are plain structs generated as an arity family:
// - Unit: the zero-field record; all Unit values are equal
// - R1..R7: records with one to seven typed fields F0..F6
// - New1..New7: positional constructors with full type inference
//
// Records compare with == field by field, so a union alternative carrying a
// record participates in union equality exactly like a scalar payload: two
// records are equal only when every field matches.
package record
