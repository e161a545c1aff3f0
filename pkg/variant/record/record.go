package record

// Unit is the record with no fields.
type Unit struct{}

type R1[T0 any] struct {
	F0 T0
}

type R2[T0, T1 any] struct {
	F0 T0
	F1 T1
}

type R3[T0, T1, T2 any] struct {
	F0 T0
	F1 T1
	F2 T2
}

type R4[T0, T1, T2, T3 any] struct {
	F0 T0
	F1 T1
	F2 T2
	F3 T3
}

type R5[T0, T1, T2, T3, T4 any] struct {
	F0 T0
	F1 T1
	F2 T2
	F3 T3
	F4 T4
}

type R6[T0, T1, T2, T3, T4, T5 any] struct {
	F0 T0
	F1 T1
	F2 T2
	F3 T3
	F4 T4
	F5 T5
}

type R7[T0, T1, T2, T3, T4, T5, T6 any] struct {
	F0 T0
	F1 T1
	F2 T2
	F3 T3
	F4 T4
	F5 T5
	F6 T6
}

func New1[T0 any](f0 T0) R1[T0] {
	return R1[T0]{F0: f0}
}

func New2[T0, T1 any](f0 T0, f1 T1) R2[T0, T1] {
	return R2[T0, T1]{F0: f0, F1: f1}
}

func New3[T0, T1, T2 any](f0 T0, f1 T1, f2 T2) R3[T0, T1, T2] {
	return R3[T0, T1, T2]{F0: f0, F1: f1, F2: f2}
}

func New4[T0, T1, T2, T3 any](f0 T0, f1 T1, f2 T2, f3 T3) R4[T0, T1, T2, T3] {
	return R4[T0, T1, T2, T3]{F0: f0, F1: f1, F2: f2, F3: f3}
}

func New5[T0, T1, T2, T3, T4 any](f0 T0, f1 T1, f2 T2, f3 T3, f4 T4) R5[T0, T1, T2, T3, T4] {
	return R5[T0, T1, T2, T3, T4]{F0: f0, F1: f1, F2: f2, F3: f3, F4: f4}
}

func New6[T0, T1, T2, T3, T4, T5 any](f0 T0, f1 T1, f2 T2, f3 T3, f4 T4, f5 T5) R6[T0, T1, T2, T3, T4, T5] {
	return R6[T0, T1, T2, T3, T4, T5]{F0: f0, F1: f1, F2: f2, F3: f3, F4: f4, F5: f5}
}

func New7[T0, T1, T2, T3, T4, T5, T6 any](f0 T0, f1 T1, f2 T2, f3 T3, f4 T4, f5 T5, f6 T6) R7[T0, T1, T2, T3, T4, T5, T6] {
	return R7[T0, T1, T2, T3, T4, T5, T6]{F0: f0, F1: f1, F2: f2, F3: f3, F4: f4, F5: f5, F6: f6}
}
