package scalar

// Result represents either converted value or conversion failure
type Result[T any] struct {
	value T
	err   error
}

// Ok returns successful result
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Fail returns failed result
func Fail[T any](err error) Result[T] {
	return Result[T]{err: err}
}

// IsOk returns true if conversion succeeded
func (r Result[T]) IsOk() bool {
	return r.err == nil
}

// Err returns conversion error or nil
func (r Result[T]) Err() error {
	return r.err
}

// Value returns converted value and conversion error
func (r Result[T]) Value() (T, error) {
	return r.value, r.err
}

// Or returns converted value or supplied default if conversion failed
func (r Result[T]) Or(defaultValue T) T {
	if r.err != nil {
		return defaultValue
	}
	return r.value
}
