package functional

// Result represents the outcome of an operation that may fail.
type Result[T any] struct {
	value T
	err   error
	ok    bool
}

// Ok creates a successful Result.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value, ok: true}
}

// Err creates a failed Result.
func Err[T any](err error) Result[T] {
	return Result[T]{err: err}
}

// TryFunc wraps a (value, error) return into a Result.
func TryFunc[T any](value T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}
	return Ok(value)
}

// IsOk returns true if the Result is successful.
func (r Result[T]) IsOk() bool {
	return r.ok
}

// IsErr returns true if the Result is an error.
func (r Result[T]) IsErr() bool {
	return !r.ok
}

// Unwrap returns the success value or panics on error.
func (r Result[T]) Unwrap() T {
	if !r.ok {
		panic("called Unwrap on Err: " + r.err.Error())
	}
	return r.value
}

// UnwrapErr returns the error or panics on success.
func (r Result[T]) UnwrapErr() error {
	if r.ok {
		panic("called UnwrapErr on Ok")
	}
	return r.err
}

// UnwrapOr returns the success value or a default.
func (r Result[T]) UnwrapOr(defaultValue T) T {
	if r.ok {
		return r.value
	}
	return defaultValue
}

// ToOption converts Result to Option, discarding the error.
func (r Result[T]) ToOption() Option[T] {
	if r.ok {
		return Some(r.value)
	}
	return None[T]()
}
