package variant

// Match2 dispatches on the active alternative of a two-way union. The
// compiler enforces exhaustiveness: one handler per alternative, all
// returning R.
func Match2[T0, T1, R any](u Of2[T0, T1], f0 func(T0) R, f1 func(T1) R) R {
	if u.tag == 1 {
		return f1(u.b)
	}
	return f0(u.a)
}

// Match3 dispatches on the active alternative of a three-way union.
func Match3[T0, T1, T2, R any](u Of3[T0, T1, T2], f0 func(T0) R, f1 func(T1) R, f2 func(T2) R) R {
	switch u.tag {
	case 1:
		return f1(u.b)
	case 2:
		return f2(u.c)
	default:
		return f0(u.a)
	}
}

// Match4 dispatches on the active alternative of a four-way union.
func Match4[T0, T1, T2, T3, R any](u Of4[T0, T1, T2, T3], f0 func(T0) R, f1 func(T1) R, f2 func(T2) R, f3 func(T3) R) R {
	switch u.tag {
	case 1:
		return f1(u.b)
	case 2:
		return f2(u.c)
	case 3:
		return f3(u.d)
	default:
		return f0(u.a)
	}
}

// Match5 dispatches on the active alternative of a five-way union.
func Match5[T0, T1, T2, T3, T4, R any](u Of5[T0, T1, T2, T3, T4], f0 func(T0) R, f1 func(T1) R, f2 func(T2) R, f3 func(T3) R, f4 func(T4) R) R {
	switch u.tag {
	case 1:
		return f1(u.b)
	case 2:
		return f2(u.c)
	case 3:
		return f3(u.d)
	case 4:
		return f4(u.e)
	default:
		return f0(u.a)
	}
}
