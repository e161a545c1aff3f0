package result

// Chain is a minimal fluent wrapper for composing same-type synchronous
// steps over Result[T, error]. Type-changing steps stay with the package
// functions.
type Chain[T any] struct {
	res Result[T, error]
}

func Start[T any](r Result[T, error]) Chain[T] {
	return Chain[T]{res: r}
}

func FromValue[T any](v T) Chain[T] {
	return Start(Ok[T, error](v))
}

func (c Chain[T]) Result() Result[T, error] {
	return c.res
}

// Then composes functions that already return a Result
func (c Chain[T]) Then(onOk func(t T) Result[T, error]) Chain[T] {
	if c.res.IsErr() {
		return c
	}
	v, _ := c.res.Get()
	return Chain[T]{res: onOk(v)}
}

// ThenTry composes functions that return (T, error), like repo calls
func (c Chain[T]) ThenTry(try func(t T) (T, error)) Chain[T] {
	if c.res.IsErr() {
		return c
	}
	v, _ := c.res.Get()
	return Chain[T]{res: From(try(v))}
}

// Map transforms the successful value to a new value
func (c Chain[T]) Map(onOk func(t T) T) Chain[T] {
	if c.res.IsErr() {
		return c
	}
	return Chain[T]{res: Map(c.res, onOk)}
}

// Ensure triggers side effects for success/failure without changing the result
func (c Chain[T]) Ensure(onOk func(T), onErr func(error)) Chain[T] {
	if e, failed := c.res.GetErr(); failed {
		if onErr != nil {
			onErr(e)
		}
		return c
	}
	if onOk != nil {
		v, _ := c.res.Get()
		onOk(v)
	}
	return c
}

// Finally collapses the chain to a final value via handlers
func (c Chain[T]) Finally(onOk func(T) T, onErr func(error) T) T {
	return Match(c.res, onOk, onErr)
}
